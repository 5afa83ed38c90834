package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/smartpark/garage/internal/delivery/http/middleware"
	"github.com/smartpark/garage/internal/domain"
	"github.com/smartpark/garage/internal/pkg/logger"
	"github.com/smartpark/garage/internal/usecase/invoice"
	"github.com/smartpark/garage/internal/usecase/payment"
)

// PaymentHandler обрабатывает запросы платежей и печатных форм
type PaymentHandler struct {
	paymentService *payment.Service
	invoiceService *invoice.Service
	logger         logger.Logger
}

// NewPaymentHandler создает новый handler
func NewPaymentHandler(
	paymentService *payment.Service,
	invoiceService *invoice.Service,
	logger logger.Logger,
) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		invoiceService: invoiceService,
		logger:         logger,
	}
}

// RecordPayment принимает платеж по записи об обслуживании
// POST /api/v1/payments
func (h *PaymentHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	var req payment.RecordPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.paymentService.RecordPayment(r.Context(), &req)
	if err != nil {
		switch err {
		case domain.ErrPaymentAlreadyExists:
			respondError(w, http.StatusConflict, "Payment already exists")
		case domain.ErrRecordAlreadyPaid:
			respondError(w, http.StatusConflict, "Record already paid")
		case domain.ErrRecordNotFound:
			respondError(w, http.StatusBadRequest, "Record not found")
		case domain.ErrInvalidPaymentData:
			respondError(w, http.StatusBadRequest, "Invalid payment data")
		default:
			h.logger.Error("Failed to record payment", map[string]interface{}{
				"error": err.Error(),
			})
			respondError(w, http.StatusInternalServerError, "Failed to record payment")
		}
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"data":    created,
	})
}

// GetPaymentByNumber возвращает платеж по номеру
// GET /api/v1/payments/{number}
func (h *PaymentHandler) GetPaymentByNumber(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")

	found, err := h.paymentService.GetPaymentByNumber(r.Context(), number)
	if err != nil {
		if err == domain.ErrPaymentNotFound {
			respondError(w, http.StatusNotFound, "Payment not found")
			return
		}
		h.logger.Error("Failed to get payment", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to get payment")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    found,
	})
}

// ListPayments возвращает все платежи
// GET /api/v1/payments
func (h *PaymentHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.paymentService.ListPayments(r.Context())
	if err != nil {
		h.logger.Error("Failed to list payments", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to list payments")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    payments,
		"count":   len(payments),
	})
}

// GetPaymentDetails возвращает платеж со всеми связанными сущностями
// GET /api/v1/payments/{number}/details
func (h *PaymentHandler) GetPaymentDetails(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")

	details, err := h.paymentService.PaymentDetails(r.Context(), number)
	if err != nil {
		switch err {
		case domain.ErrPaymentNotFound:
			respondError(w, http.StatusNotFound, "Payment not found")
		case domain.ErrRecordNotFound, domain.ErrServiceNotFound, domain.ErrCarNotFound:
			// Разорванная ссылка: детали отсутствуют целиком
			respondError(w, http.StatusNotFound, "Payment details unavailable")
		default:
			h.logger.Error("Failed to get payment details", map[string]interface{}{
				"error": err.Error(),
			})
			respondError(w, http.StatusInternalServerError, "Failed to get payment details")
		}
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    details,
	})
}

// GetSuggestedAmount возвращает цену услуги по номеру записи
// GET /api/v1/payments/suggested/{record_number}
func (h *PaymentHandler) GetSuggestedAmount(w http.ResponseWriter, r *http.Request) {
	recordNumber := chi.URLParam(r, "record_number")

	amount, err := h.paymentService.SuggestedAmount(r.Context(), recordNumber)
	if err != nil {
		switch err {
		case domain.ErrRecordNotFound:
			respondError(w, http.StatusNotFound, "Record not found")
		case domain.ErrServiceNotFound:
			respondError(w, http.StatusNotFound, "Service not found")
		default:
			h.logger.Error("Failed to get suggested amount", map[string]interface{}{
				"error": err.Error(),
			})
			respondError(w, http.StatusInternalServerError, "Failed to get suggested amount")
		}
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data": map[string]interface{}{
			"record_number":    recordNumber,
			"suggested_amount": amount,
		},
	})
}

// GenerateInvoice возвращает печатный счет в формате PDF
// GET /api/v1/payments/{number}/invoice
func (h *PaymentHandler) GenerateInvoice(w http.ResponseWriter, r *http.Request) {
	h.servePDF(w, r, "invoice", h.invoiceService.GenerateInvoice)
}

// GenerateReceipt возвращает квитанцию в формате PDF
// GET /api/v1/payments/{number}/receipt
func (h *PaymentHandler) GenerateReceipt(w http.ResponseWriter, r *http.Request) {
	h.servePDF(w, r, "receipt", h.invoiceService.GenerateReceipt)
}

// servePDF извлекает имя пользователя сеанса, рендерит форму и
// отдает ее inline с расчетом на печать из браузера
func (h *PaymentHandler) servePDF(
	w http.ResponseWriter,
	r *http.Request,
	kind string,
	generate func(ctx context.Context, paymentNumber, receivedBy string) (io.Reader, error),
) {
	number := chi.URLParam(r, "number")

	claims, ok := middleware.GetUserClaims(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	reader, err := generate(r.Context(), number, claims.Username)
	if err != nil {
		switch err {
		case domain.ErrPaymentNotFound:
			respondError(w, http.StatusNotFound, "Payment not found")
		case domain.ErrRecordNotFound, domain.ErrServiceNotFound, domain.ErrCarNotFound:
			respondError(w, http.StatusNotFound, "Payment details unavailable")
		default:
			h.logger.Error("Failed to generate document", map[string]interface{}{
				"kind":  kind,
				"error": err.Error(),
			})
			respondError(w, http.StatusInternalServerError, "Failed to generate document")
		}
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%s-%s.pdf", kind, number))
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, reader); err != nil {
		h.logger.Error("Failed to write document", map[string]interface{}{
			"kind":  kind,
			"error": err.Error(),
		})
	}
}
