package repository

import (
	"context"

	"github.com/smartpark/garage/internal/domain"
)

// Контракт хранилища намеренно слабый: Add* добавляет без проверок
// уникальности и внешних ссылок, Update/Delete молча пропускают
// отсутствующий ключ. Все проверки выполняет вызывающий слой (usecase).

// ServiceRepository определяет методы для работы с услугами
type ServiceRepository interface {
	// Add добавляет услугу в конец коллекции
	Add(ctx context.Context, service *domain.Service) error

	// GetByCode возвращает услугу по коду
	GetByCode(ctx context.Context, code string) (*domain.Service, error)

	// List возвращает все услуги в порядке добавления
	List(ctx context.Context) ([]*domain.Service, error)

	// Count возвращает размер коллекции
	Count(ctx context.Context) (int, error)
}

// CarRepository определяет методы для работы с автомобилями
type CarRepository interface {
	// Add добавляет автомобиль в конец коллекции
	Add(ctx context.Context, car *domain.Car) error

	// GetByPlate возвращает автомобиль по номеру
	GetByPlate(ctx context.Context, plate string) (*domain.Car, error)

	// List возвращает все автомобили в порядке добавления
	List(ctx context.Context) ([]*domain.Car, error)

	// Count возвращает размер коллекции
	Count(ctx context.Context) (int, error)
}

// RecordRepository определяет методы для работы с записями об обслуживании
type RecordRepository interface {
	// Add добавляет запись в конец коллекции
	Add(ctx context.Context, record *domain.ServiceRecord) error

	// GetByNumber возвращает запись по номеру
	GetByNumber(ctx context.Context, number string) (*domain.ServiceRecord, error)

	// Update заменяет первую запись с данным номером, сохраняя позицию
	// Отсутствующий ключ - молчаливый no-op
	Update(ctx context.Context, number string, record *domain.ServiceRecord) error

	// Delete удаляет все записи с данным номером
	// Отсутствующий ключ - молчаливый no-op
	Delete(ctx context.Context, number string) error

	// List возвращает все записи в порядке добавления
	List(ctx context.Context) ([]*domain.ServiceRecord, error)

	// Count возвращает размер коллекции
	Count(ctx context.Context) (int, error)
}

// PaymentRepository определяет методы для работы с платежами
type PaymentRepository interface {
	// Add добавляет платеж в конец коллекции
	Add(ctx context.Context, payment *domain.Payment) error

	// GetByNumber возвращает платеж по номеру
	GetByNumber(ctx context.Context, number string) (*domain.Payment, error)

	// GetByRecordNumber возвращает первый платеж по номеру записи
	GetByRecordNumber(ctx context.Context, recordNumber string) (*domain.Payment, error)

	// List возвращает все платежи в порядке добавления
	List(ctx context.Context) ([]*domain.Payment, error)

	// Count возвращает размер коллекции
	Count(ctx context.Context) (int, error)
}
