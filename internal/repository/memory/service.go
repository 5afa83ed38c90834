package memory

import (
	"context"

	"github.com/smartpark/garage/internal/domain"
	"github.com/smartpark/garage/internal/repository"
)

type serviceRepository struct {
	store *Store
}

func NewServiceRepository(store *Store) repository.ServiceRepository {
	return &serviceRepository{store: store}
}

func (r *serviceRepository) Add(ctx context.Context, service *domain.Service) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	// Добавляем без проверки уникальности - слабый контракт хранилища
	r.store.services = append(r.store.services, *service)
	return nil
}

func (r *serviceRepository) GetByCode(ctx context.Context, code string) (*domain.Service, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	// Линейный поиск по ключу
	for i := range r.store.services {
		if r.store.services[i].ServiceCode == code {
			service := r.store.services[i]
			return &service, nil
		}
	}
	return nil, domain.ErrServiceNotFound
}

func (r *serviceRepository) List(ctx context.Context) ([]*domain.Service, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	services := make([]*domain.Service, 0, len(r.store.services))
	for i := range r.store.services {
		service := r.store.services[i]
		services = append(services, &service)
	}
	return services, nil
}

func (r *serviceRepository) Count(ctx context.Context) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return len(r.store.services), nil
}
