package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/smartpark/garage/internal/domain"
	"github.com/smartpark/garage/internal/pkg/logger"
	"github.com/smartpark/garage/internal/usecase/record"
	"github.com/smartpark/garage/internal/usecase/report"
)

// RecordHandler обрабатывает запросы записей об обслуживании
type RecordHandler struct {
	recordService *record.Service
	reportService *report.Service
	logger        logger.Logger
}

// NewRecordHandler создает новый handler
func NewRecordHandler(recordService *record.Service, reportService *report.Service, logger logger.Logger) *RecordHandler {
	return &RecordHandler{
		recordService: recordService,
		reportService: reportService,
		logger:        logger,
	}
}

// CreateRecord создает запись об обслуживании
// POST /api/v1/records
func (h *RecordHandler) CreateRecord(w http.ResponseWriter, r *http.Request) {
	var req record.CreateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.recordService.CreateRecord(r.Context(), &req)
	if err != nil {
		switch err {
		case domain.ErrRecordAlreadyExists:
			respondError(w, http.StatusConflict, "Record already exists")
		case domain.ErrCarNotFound:
			respondError(w, http.StatusBadRequest, "Car not found")
		case domain.ErrServiceNotFound:
			respondError(w, http.StatusBadRequest, "Service not found")
		case domain.ErrInvalidRecordData:
			respondError(w, http.StatusBadRequest, "Invalid record data")
		default:
			h.logger.Error("Failed to create record", map[string]interface{}{
				"error": err.Error(),
			})
			respondError(w, http.StatusInternalServerError, "Failed to create record")
		}
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"data":    created,
	})
}

// UpdateRecord обновляет запись об обслуживании
// PUT /api/v1/records/{number}
func (h *RecordHandler) UpdateRecord(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")

	var req record.UpdateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.recordService.UpdateRecord(r.Context(), number, &req)
	if err != nil {
		switch err {
		case domain.ErrRecordNotFound:
			respondError(w, http.StatusNotFound, "Record not found")
		case domain.ErrCarNotFound:
			respondError(w, http.StatusBadRequest, "Car not found")
		case domain.ErrServiceNotFound:
			respondError(w, http.StatusBadRequest, "Service not found")
		case domain.ErrInvalidRecordData:
			respondError(w, http.StatusBadRequest, "Invalid record data")
		default:
			h.logger.Error("Failed to update record", map[string]interface{}{
				"error": err.Error(),
			})
			respondError(w, http.StatusInternalServerError, "Failed to update record")
		}
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    updated,
	})
}

// DeleteRecord удаляет запись об обслуживании
// DELETE /api/v1/records/{number}
func (h *RecordHandler) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")

	if err := h.recordService.DeleteRecord(r.Context(), number); err != nil {
		if err == domain.ErrRecordNotFound {
			respondError(w, http.StatusNotFound, "Record not found")
			return
		}
		h.logger.Error("Failed to delete record", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to delete record")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Record deleted successfully",
	})
}

// GetRecordByNumber возвращает запись по номеру
// GET /api/v1/records/{number}
func (h *RecordHandler) GetRecordByNumber(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")

	found, err := h.recordService.GetRecordByNumber(r.Context(), number)
	if err != nil {
		if err == domain.ErrRecordNotFound {
			respondError(w, http.StatusNotFound, "Record not found")
			return
		}
		h.logger.Error("Failed to get record", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to get record")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    found,
	})
}

// ListRecords возвращает все записи об обслуживании
// GET /api/v1/records
func (h *RecordHandler) ListRecords(w http.ResponseWriter, r *http.Request) {
	records, err := h.recordService.ListRecords(r.Context())
	if err != nil {
		h.logger.Error("Failed to list records", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to list records")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    records,
		"count":   len(records),
	})
}

// ListUnpaidRecords возвращает записи без платежа
// GET /api/v1/records/unpaid
func (h *RecordHandler) ListUnpaidRecords(w http.ResponseWriter, r *http.Request) {
	records, err := h.reportService.UnpaidRecords(r.Context())
	if err != nil {
		h.logger.Error("Failed to list unpaid records", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to list unpaid records")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    records,
		"count":   len(records),
	})
}
