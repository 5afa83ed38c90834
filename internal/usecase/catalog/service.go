package catalog

import (
	"context"
	"fmt"

	"github.com/smartpark/garage/internal/domain"
	"github.com/smartpark/garage/internal/pkg/logger"
	"github.com/smartpark/garage/internal/repository"
)

// AddServiceRequest - запрос на добавление услуги
type AddServiceRequest struct {
	ServiceCode  string `json:"service_code" validate:"required"`
	ServiceName  string `json:"service_name" validate:"required"`
	ServicePrice int64  `json:"service_price" validate:"min=0"`
}

// Service содержит бизнес-логику каталога услуг
type Service struct {
	serviceRepo repository.ServiceRepository
	logger      logger.Logger
}

// NewService создает новый экземпляр CatalogService
func NewService(serviceRepo repository.ServiceRepository, logger logger.Logger) *Service {
	return &Service{
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// SeedDefaults загружает шесть стартовых услуг при запуске
// Повторный вызов пропускает уже существующие коды
func (s *Service) SeedDefaults(ctx context.Context) error {
	for i := range domain.DefaultServices {
		service := domain.DefaultServices[i]

		if _, err := s.serviceRepo.GetByCode(ctx, service.ServiceCode); err == nil {
			continue
		}

		if err := s.serviceRepo.Add(ctx, &service); err != nil {
			return fmt.Errorf("failed to seed service %s: %w", service.ServiceCode, err)
		}
	}

	s.logger.Info("Default services seeded", map[string]interface{}{
		"count": len(domain.DefaultServices),
	})

	return nil
}

// AddService добавляет новую услугу в каталог
func (s *Service) AddService(ctx context.Context, req *AddServiceRequest) (*domain.Service, error) {
	s.logger.Info("Adding new service", map[string]interface{}{
		"service_code": req.ServiceCode,
	})

	// Проверяем, что услуга с таким кодом еще не существует
	existing, err := s.serviceRepo.GetByCode(ctx, req.ServiceCode)
	if err != nil && err != domain.ErrServiceNotFound {
		return nil, fmt.Errorf("failed to check existing service: %w", err)
	}

	if existing != nil {
		s.logger.Warn("Service already exists", map[string]interface{}{
			"service_code": req.ServiceCode,
		})
		return nil, domain.ErrServiceAlreadyExists
	}

	service := &domain.Service{
		ServiceCode:  req.ServiceCode,
		ServiceName:  req.ServiceName,
		ServicePrice: req.ServicePrice,
	}

	// Валидируем данные
	if err := service.Validate(); err != nil {
		return nil, err
	}

	// Сохраняем в хранилище
	if err := s.serviceRepo.Add(ctx, service); err != nil {
		s.logger.Error("Failed to add service", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("failed to add service: %w", err)
	}

	s.logger.Info("Service added successfully", map[string]interface{}{
		"service_code": service.ServiceCode,
	})

	return service, nil
}

// GetServiceByCode возвращает услугу по коду
func (s *Service) GetServiceByCode(ctx context.Context, code string) (*domain.Service, error) {
	return s.serviceRepo.GetByCode(ctx, code)
}

// ListServices возвращает все услуги в порядке добавления
func (s *Service) ListServices(ctx context.Context) ([]*domain.Service, error) {
	return s.serviceRepo.List(ctx)
}
