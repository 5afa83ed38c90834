package payment

import (
	"context"
	"fmt"

	"github.com/smartpark/garage/internal/domain"
	"github.com/smartpark/garage/internal/pkg/logger"
	"github.com/smartpark/garage/internal/pkg/sequence"
	"github.com/smartpark/garage/internal/repository"
)

// RecordPaymentRequest - запрос на прием платежа
// Пустой PaymentNumber означает автонумерацию PAY + 4 цифры
type RecordPaymentRequest struct {
	PaymentNumber string `json:"payment_number,omitempty"`
	AmountPaid    int64  `json:"amount_paid" validate:"min=0"`
	PaymentDate   string `json:"payment_date" validate:"required"`
	RecordNumber  string `json:"record_number" validate:"required"`
}

// Service содержит бизнес-логику платежей
type Service struct {
	paymentRepo repository.PaymentRepository
	recordRepo  repository.RecordRepository
	serviceRepo repository.ServiceRepository
	carRepo     repository.CarRepository
	logger      logger.Logger
}

// NewService создает новый экземпляр PaymentService
func NewService(
	paymentRepo repository.PaymentRepository,
	recordRepo repository.RecordRepository,
	serviceRepo repository.ServiceRepository,
	carRepo repository.CarRepository,
	logger logger.Logger,
) *Service {
	return &Service{
		paymentRepo: paymentRepo,
		recordRepo:  recordRepo,
		serviceRepo: serviceRepo,
		carRepo:     carRepo,
		logger:      logger,
	}
}

// RecordPayment принимает платеж по записи об обслуживании
// Запись должна существовать и быть неоплаченной; на одну запись
// допускается не более одного платежа
func (s *Service) RecordPayment(ctx context.Context, req *RecordPaymentRequest) (*domain.Payment, error) {
	paymentNumber := req.PaymentNumber
	if paymentNumber == "" {
		count, err := s.paymentRepo.Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count payments: %w", err)
		}
		paymentNumber = sequence.Next(sequence.PaymentPrefix, count)
	}

	s.logger.Info("Recording payment", map[string]interface{}{
		"payment_number": paymentNumber,
		"record_number":  req.RecordNumber,
		"amount_paid":    req.AmountPaid,
	})

	// Проверяем, что платеж с таким номером еще не существует
	existing, err := s.paymentRepo.GetByNumber(ctx, paymentNumber)
	if err != nil && err != domain.ErrPaymentNotFound {
		return nil, fmt.Errorf("failed to check existing payment: %w", err)
	}

	if existing != nil {
		return nil, domain.ErrPaymentAlreadyExists
	}

	// Проверяем, что запись существует
	if _, err := s.recordRepo.GetByNumber(ctx, req.RecordNumber); err != nil {
		if err == domain.ErrRecordNotFound {
			return nil, domain.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to check record: %w", err)
	}

	// Проверяем, что запись еще не оплачена
	paid, err := s.paymentRepo.GetByRecordNumber(ctx, req.RecordNumber)
	if err != nil && err != domain.ErrPaymentNotFound {
		return nil, fmt.Errorf("failed to check record payment: %w", err)
	}

	if paid != nil {
		s.logger.Warn("Record already paid", map[string]interface{}{
			"record_number": req.RecordNumber,
		})
		return nil, domain.ErrRecordAlreadyPaid
	}

	payment := &domain.Payment{
		PaymentNumber: paymentNumber,
		AmountPaid:    req.AmountPaid,
		PaymentDate:   req.PaymentDate,
		RecordNumber:  req.RecordNumber,
	}

	// Валидируем данные
	if err := payment.Validate(); err != nil {
		return nil, err
	}

	// Сохраняем в хранилище
	if err := s.paymentRepo.Add(ctx, payment); err != nil {
		s.logger.Error("Failed to record payment", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	s.logger.Info("Payment recorded successfully", map[string]interface{}{
		"payment_number": payment.PaymentNumber,
	})

	return payment, nil
}

// PaymentDetails выполняет трехшаговое соединение
// payment -> record -> {service, car}
// Любой несостоявшийся шаг делает результат отсутствующим целиком:
// частично заполненная структура не возвращается
func (s *Service) PaymentDetails(ctx context.Context, paymentNumber string) (*domain.PaymentDetails, error) {
	payment, err := s.paymentRepo.GetByNumber(ctx, paymentNumber)
	if err != nil {
		return nil, err
	}

	record, err := s.recordRepo.GetByNumber(ctx, payment.RecordNumber)
	if err != nil {
		return nil, err
	}

	service, err := s.serviceRepo.GetByCode(ctx, record.ServiceCode)
	if err != nil {
		return nil, err
	}

	car, err := s.carRepo.GetByPlate(ctx, record.PlateNumber)
	if err != nil {
		return nil, err
	}

	return &domain.PaymentDetails{
		Payment: payment,
		Record:  record,
		Service: service,
		Car:     car,
	}, nil
}

// SuggestedAmount возвращает цену услуги по записи -
// значение для предзаполнения суммы платежа в форме
func (s *Service) SuggestedAmount(ctx context.Context, recordNumber string) (int64, error) {
	record, err := s.recordRepo.GetByNumber(ctx, recordNumber)
	if err != nil {
		return 0, err
	}

	service, err := s.serviceRepo.GetByCode(ctx, record.ServiceCode)
	if err != nil {
		return 0, err
	}

	return service.ServicePrice, nil
}

// GetPaymentByNumber возвращает платеж по номеру
func (s *Service) GetPaymentByNumber(ctx context.Context, number string) (*domain.Payment, error) {
	return s.paymentRepo.GetByNumber(ctx, number)
}

// ListPayments возвращает все платежи в порядке приема
func (s *Service) ListPayments(ctx context.Context) ([]*domain.Payment, error) {
	return s.paymentRepo.List(ctx)
}
