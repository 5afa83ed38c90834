package report

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartpark/garage/internal/domain"
	"github.com/smartpark/garage/internal/pkg/logger"
	"github.com/smartpark/garage/internal/repository"
	"github.com/smartpark/garage/internal/repository/memory"
)

type testEnv struct {
	svc         *Service
	recordRepo  repository.RecordRepository
	paymentRepo repository.PaymentRepository
	carRepo     repository.CarRepository
	serviceRepo repository.ServiceRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := memory.NewStore()
	recordRepo := memory.NewRecordRepository(store)
	paymentRepo := memory.NewPaymentRepository(store)
	serviceRepo := memory.NewServiceRepository(store)
	carRepo := memory.NewCarRepository(store)

	return &testEnv{
		svc:         NewService(recordRepo, paymentRepo, serviceRepo, carRepo, logger.NewNoop()),
		recordRepo:  recordRepo,
		paymentRepo: paymentRepo,
		carRepo:     carRepo,
		serviceRepo: serviceRepo,
	}
}

func (e *testEnv) addRecord(t *testing.T, number, date, plate, code string) {
	t.Helper()
	require.NoError(t, e.recordRepo.Add(context.Background(), &domain.ServiceRecord{
		RecordNumber: number,
		ServiceDate:  date,
		PlateNumber:  plate,
		ServiceCode:  code,
	}))
}

func (e *testEnv) addPayment(t *testing.T, number string, amount int64, date, recordNumber string) {
	t.Helper()
	require.NoError(t, e.paymentRepo.Add(context.Background(), &domain.Payment{
		PaymentNumber: number,
		AmountPaid:    amount,
		PaymentDate:   date,
		RecordNumber:  recordNumber,
	}))
}

// TestService_UnpaidRecords тестирует разность множеств по номеру записи
func TestService_UnpaidRecords(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	env.addRecord(t, "REC0001", "2024-01-15", "RAB123A", "SVC003")
	env.addRecord(t, "REC0002", "2024-01-15", "RAB456B", "SVC001")
	env.addRecord(t, "REC0003", "2024-01-16", "RAB123A", "SVC002")
	env.addPayment(t, "PAY0001", 60000, "2024-01-15", "REC0002")

	unpaid, err := env.svc.UnpaidRecords(ctx)
	require.NoError(t, err)
	require.Len(t, unpaid, 2)
	assert.Equal(t, "REC0001", unpaid[0].RecordNumber)
	assert.Equal(t, "REC0003", unpaid[1].RecordNumber)
}

// TestService_UnpaidRecords_Empty тестирует пустое хранилище
func TestService_UnpaidRecords_Empty(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	unpaid, err := env.svc.UnpaidRecords(ctx)
	require.NoError(t, err)
	assert.Empty(t, unpaid)
}

// TestService_TotalRevenue тестирует сумму всех платежей
func TestService_TotalRevenue(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	total, err := env.svc.TotalRevenue(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)

	env.addPayment(t, "PAY0001", 60000, "2024-01-15", "REC0001")
	env.addPayment(t, "PAY0002", 150000, "2024-01-16", "REC0002")
	env.addPayment(t, "PAY0003", 0, "2024-01-16", "REC0003")

	total, err = env.svc.TotalRevenue(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(210000), total)
}

// TestService_DailyRecords тестирует строгое равенство дат
func TestService_DailyRecords(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	env.addRecord(t, "REC0001", "2024-01-15", "RAB123A", "SVC003")
	env.addRecord(t, "REC0002", "2024-01-16", "RAB456B", "SVC001")

	daily, err := env.svc.DailyRecords(ctx, "2024-01-15")
	require.NoError(t, err)
	require.Len(t, daily, 1)
	assert.Equal(t, "REC0001", daily[0].RecordNumber)

	empty, err := env.svc.DailyRecords(ctx, "2024-01-17")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

// TestService_BuildDailyReport тестирует сборку дневного отчета
func TestService_BuildDailyReport(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	require.NoError(t, env.carRepo.Add(ctx, &domain.Car{
		PlateNumber:       "RAB123A",
		Model:             "Toyota Corolla",
		ManufacturingYear: 2015,
	}))
	require.NoError(t, env.serviceRepo.Add(ctx, &domain.Service{
		ServiceCode:  "SVC003",
		ServiceName:  "Oil Change",
		ServicePrice: 60000,
	}))

	env.addRecord(t, "REC0001", "2024-01-15", "RAB123A", "SVC003")
	env.addRecord(t, "REC0002", "2024-01-16", "RAB123A", "SVC003")
	env.addPayment(t, "PAY0001", 60000, "2024-01-15", "REC0001")

	report, err := env.svc.BuildDailyReport(ctx, "2024-01-15")
	require.NoError(t, err)

	assert.Equal(t, "2024-01-15", report.Date)
	assert.Equal(t, 1, report.ServicesCount)
	assert.Equal(t, int64(60000), report.DailyRevenue)

	require.Len(t, report.Rows, 1)
	row := report.Rows[0]
	assert.Equal(t, "REC0001", row.Record.RecordNumber)
	require.NotNil(t, row.Service)
	assert.Equal(t, "Oil Change", row.Service.ServiceName)
	require.NotNil(t, row.Car)
	assert.Equal(t, "Toyota Corolla", row.Car.Model)
	require.NotNil(t, row.Payment)
	assert.Equal(t, "PAY0001", row.Payment.PaymentNumber)
}

// TestService_BuildDailyReport_DanglingReferences проверяет, что
// висячие ссылки дают nil в под-сущностях, а не ошибку
func TestService_BuildDailyReport_DanglingReferences(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	// Запись ссылается на несуществующие автомобиль и услугу
	env.addRecord(t, "REC0001", "2024-01-15", "RAB999Z", "SVC999")

	report, err := env.svc.BuildDailyReport(ctx, "2024-01-15")
	require.NoError(t, err)

	require.Len(t, report.Rows, 1)
	row := report.Rows[0]
	assert.Equal(t, "REC0001", row.Record.RecordNumber)
	assert.Nil(t, row.Service)
	assert.Nil(t, row.Car)
	assert.Nil(t, row.Payment)
}

// TestService_BuildDailyReport_RevenueByPaymentDate проверяет, что
// дневная выручка считается по дате платежа, а не по дате обслуживания
func TestService_BuildDailyReport_RevenueByPaymentDate(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	env.addRecord(t, "REC0001", "2024-01-15", "RAB123A", "SVC003")
	// Обслуживание 15-го, оплата 16-го
	env.addPayment(t, "PAY0001", 60000, "2024-01-16", "REC0001")

	serviceDay, err := env.svc.BuildDailyReport(ctx, "2024-01-15")
	require.NoError(t, err)
	assert.Equal(t, 1, serviceDay.ServicesCount)
	assert.Equal(t, int64(0), serviceDay.DailyRevenue)

	paymentDay, err := env.svc.BuildDailyReport(ctx, "2024-01-16")
	require.NoError(t, err)
	assert.Equal(t, 0, paymentDay.ServicesCount)
	assert.Equal(t, int64(60000), paymentDay.DailyRevenue)
}

// TestService_BuildSummary тестирует сводную статистику
func TestService_BuildSummary(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	env.addRecord(t, "REC0001", "2024-01-15", "RAB123A", "SVC003")
	env.addRecord(t, "REC0002", "2024-01-15", "RAB456B", "SVC001")
	env.addRecord(t, "REC0003", "2024-01-16", "RAB123A", "SVC002")
	env.addPayment(t, "PAY0001", 60000, "2024-01-15", "REC0001")
	env.addPayment(t, "PAY0002", 150000, "2024-01-16", "REC0002")

	summary, err := env.svc.BuildSummary(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(210000), summary.TotalRevenue)
	assert.Equal(t, 3, summary.TotalRecords)
	assert.Equal(t, 2, summary.PaidRecords)
	assert.Equal(t, 1, summary.UnpaidRecords)
}
