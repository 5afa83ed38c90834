package report

import (
	"context"
	"fmt"

	"github.com/smartpark/garage/internal/domain"
	"github.com/smartpark/garage/internal/pkg/logger"
	"github.com/smartpark/garage/internal/repository"
)

// ReportRow - строка дневного отчета: запись с присоединенными
// услугой, автомобилем и платежом. Висячие ссылки дают nil
// в под-сущностях - отображаются как "неизвестно", а не ошибка
type ReportRow struct {
	Record  *domain.ServiceRecord `json:"record"`
	Service *domain.Service       `json:"service,omitempty"`
	Car     *domain.Car           `json:"car,omitempty"`
	Payment *domain.Payment       `json:"payment,omitempty"`
}

// DailyReport - отчет за один день: услуги и платежи
type DailyReport struct {
	Date          string     `json:"date"`
	Rows          []ReportRow `json:"rows"`
	ServicesCount int        `json:"services_count"`
	DailyRevenue  int64      `json:"daily_revenue"`
}

// Summary - сводная статистика по сеансу
type Summary struct {
	TotalRevenue  int64 `json:"total_revenue"`
	TotalRecords  int   `json:"total_records"`
	PaidRecords   int   `json:"paid_records"`
	UnpaidRecords int   `json:"unpaid_records"`
}

// Service вычисляет производные значения над текущим снимком хранилища
// Все методы - чистые чтения, пересчитываемые при каждом вызове:
// объемы данных малы, кеширование не нужно
type Service struct {
	recordRepo  repository.RecordRepository
	paymentRepo repository.PaymentRepository
	serviceRepo repository.ServiceRepository
	carRepo     repository.CarRepository
	logger      logger.Logger
}

// NewService создает новый экземпляр ReportService
func NewService(
	recordRepo repository.RecordRepository,
	paymentRepo repository.PaymentRepository,
	serviceRepo repository.ServiceRepository,
	carRepo repository.CarRepository,
	logger logger.Logger,
) *Service {
	return &Service{
		recordRepo:  recordRepo,
		paymentRepo: paymentRepo,
		serviceRepo: serviceRepo,
		carRepo:     carRepo,
		logger:      logger,
	}
}

// UnpaidRecords возвращает записи без платежа -
// разность множеств по номеру записи
func (s *Service) UnpaidRecords(ctx context.Context) ([]*domain.ServiceRecord, error) {
	records, err := s.recordRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}

	payments, err := s.paymentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	paidBy := make(map[string]bool, len(payments))
	for _, p := range payments {
		paidBy[p.RecordNumber] = true
	}

	unpaid := make([]*domain.ServiceRecord, 0)
	for _, r := range records {
		if !paidBy[r.RecordNumber] {
			unpaid = append(unpaid, r)
		}
	}
	return unpaid, nil
}

// TotalRevenue возвращает сумму всех платежей
// Сумма целочисленная и не зависит от порядка платежей
func (s *Service) TotalRevenue(ctx context.Context) (int64, error) {
	payments, err := s.paymentRepo.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list payments: %w", err)
	}

	var total int64
	for _, p := range payments {
		total += p.AmountPaid
	}
	return total, nil
}

// DailyRecords возвращает записи с датой обслуживания, равной date
// Сравнение - строгое равенство строк, не диапазон
func (s *Service) DailyRecords(ctx context.Context, date string) ([]*domain.ServiceRecord, error) {
	records, err := s.recordRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}

	daily := make([]*domain.ServiceRecord, 0)
	for _, r := range records {
		if r.ServiceDate == date {
			daily = append(daily, r)
		}
	}
	return daily, nil
}

// DailyPayments возвращает платежи с датой оплаты, равной date
func (s *Service) DailyPayments(ctx context.Context, date string) ([]*domain.Payment, error) {
	payments, err := s.paymentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	daily := make([]*domain.Payment, 0)
	for _, p := range payments {
		if p.PaymentDate == date {
			daily = append(daily, p)
		}
	}
	return daily, nil
}

// BuildDailyReport собирает отчет за день: каждая запись дня
// с присоединенными услугой, автомобилем и платежом,
// плюс дневная выручка по платежам этого дня
func (s *Service) BuildDailyReport(ctx context.Context, date string) (*DailyReport, error) {
	records, err := s.DailyRecords(ctx, date)
	if err != nil {
		return nil, err
	}

	payments, err := s.DailyPayments(ctx, date)
	if err != nil {
		return nil, err
	}

	rows := make([]ReportRow, 0, len(records))
	for _, r := range records {
		row := ReportRow{Record: r}

		// Висячие ссылки не фатальны: под-сущность остается nil
		if service, err := s.serviceRepo.GetByCode(ctx, r.ServiceCode); err == nil {
			row.Service = service
		}
		if car, err := s.carRepo.GetByPlate(ctx, r.PlateNumber); err == nil {
			row.Car = car
		}
		if payment, err := s.paymentRepo.GetByRecordNumber(ctx, r.RecordNumber); err == nil {
			row.Payment = payment
		}

		rows = append(rows, row)
	}

	var revenue int64
	for _, p := range payments {
		revenue += p.AmountPaid
	}

	return &DailyReport{
		Date:          date,
		Rows:          rows,
		ServicesCount: len(records),
		DailyRevenue:  revenue,
	}, nil
}

// BuildSummary собирает сводную статистику:
// общая выручка, всего записей, оплаченных и неоплаченных
func (s *Service) BuildSummary(ctx context.Context) (*Summary, error) {
	total, err := s.TotalRevenue(ctx)
	if err != nil {
		return nil, err
	}

	recordsCount, err := s.recordRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count records: %w", err)
	}

	unpaid, err := s.UnpaidRecords(ctx)
	if err != nil {
		return nil, err
	}

	return &Summary{
		TotalRevenue:  total,
		TotalRecords:  recordsCount,
		PaidRecords:   recordsCount - len(unpaid),
		UnpaidRecords: len(unpaid),
	}, nil
}
