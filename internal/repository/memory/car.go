package memory

import (
	"context"

	"github.com/smartpark/garage/internal/domain"
	"github.com/smartpark/garage/internal/repository"
)

type carRepository struct {
	store *Store
}

func NewCarRepository(store *Store) repository.CarRepository {
	return &carRepository{store: store}
}

func (r *carRepository) Add(ctx context.Context, car *domain.Car) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.cars = append(r.store.cars, *car)
	return nil
}

func (r *carRepository) GetByPlate(ctx context.Context, plate string) (*domain.Car, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	// Нормализуем номер перед поиском
	normalized := domain.NormalizePlateNumber(plate)

	for i := range r.store.cars {
		if r.store.cars[i].PlateNumber == normalized {
			car := r.store.cars[i]
			return &car, nil
		}
	}
	return nil, domain.ErrCarNotFound
}

func (r *carRepository) List(ctx context.Context) ([]*domain.Car, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	cars := make([]*domain.Car, 0, len(r.store.cars))
	for i := range r.store.cars {
		car := r.store.cars[i]
		cars = append(cars, &car)
	}
	return cars, nil
}

func (r *carRepository) Count(ctx context.Context) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return len(r.store.cars), nil
}
