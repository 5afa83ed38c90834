package invoice

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/smartpark/garage/internal/infrastructure/pdf"
	"github.com/smartpark/garage/internal/pkg/config"
	"github.com/smartpark/garage/internal/pkg/logger"
	"github.com/smartpark/garage/internal/usecase/payment"
)

// Service собирает печатные счета и квитанции из деталей платежа
type Service struct {
	payments *payment.Service
	provider pdf.Provider
	garage   config.GarageConfig
	logger   logger.Logger
}

// NewService создает новый экземпляр InvoiceService
func NewService(
	payments *payment.Service,
	provider pdf.Provider,
	garage config.GarageConfig,
	logger logger.Logger,
) *Service {
	return &Service{
		payments: payments,
		provider: provider,
		garage:   garage,
		logger:   logger,
	}
}

// GenerateInvoice рендерит счет по номеру платежа
// receivedBy - имя пользователя, принявшего платеж (из сессии)
func (s *Service) GenerateInvoice(ctx context.Context, paymentNumber, receivedBy string) (io.Reader, error) {
	data, err := s.buildData(ctx, paymentNumber, receivedBy)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Generating invoice", map[string]interface{}{
		"payment_number": paymentNumber,
	})

	return s.provider.GenerateInvoice(ctx, *data)
}

// GenerateReceipt рендерит квитанцию по номеру платежа
func (s *Service) GenerateReceipt(ctx context.Context, paymentNumber, receivedBy string) (io.Reader, error) {
	data, err := s.buildData(ctx, paymentNumber, receivedBy)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Generating receipt", map[string]interface{}{
		"payment_number": paymentNumber,
	})

	return s.provider.GenerateReceipt(ctx, pdf.ReceiptData{InvoiceData: *data})
}

// buildData строит данные печатной формы из трехшагового соединения
// Если любой шаг не состоялся, форма не строится вовсе
func (s *Service) buildData(ctx context.Context, paymentNumber, receivedBy string) (*pdf.InvoiceData, error) {
	details, err := s.payments.PaymentDetails(ctx, paymentNumber)
	if err != nil {
		return nil, err
	}

	return &pdf.InvoiceData{
		GarageName:    s.garage.Name,
		GarageAddress: s.garage.Address,
		InvoiceNumber: details.Payment.PaymentNumber,
		PaymentDate:   details.Payment.PaymentDate,
		PlateNumber:   details.Car.PlateNumber,
		CarModel:      details.Car.Model,
		DriverPhone:   details.Car.DriverPhone,
		ServiceName:   details.Service.ServiceName,
		ServiceCode:   details.Service.ServiceCode,
		RecordNumber:  details.Record.RecordNumber,
		ServiceDate:   details.Record.ServiceDate,
		AmountPaid:    FormatAmount(details.Payment.AmountPaid, s.garage.Currency),
		ReceivedBy:    receivedBy,
	}, nil
}

// FormatAmount форматирует сумму с разделителями тысяч и валютой,
// например 150000 -> "150,000 Rwf"
func FormatAmount(amount int64, currency string) string {
	digits := strconv.FormatInt(amount, 10)

	negative := false
	if len(digits) > 0 && digits[0] == '-' {
		negative = true
		digits = digits[1:]
	}

	var grouped []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped = append(grouped, ',')
		}
		grouped = append(grouped, d)
	}

	formatted := string(grouped)
	if negative {
		formatted = "-" + formatted
	}

	return fmt.Sprintf("%s %s", formatted, currency)
}
