package car

import (
	"context"
	"fmt"

	"github.com/smartpark/garage/internal/domain"
	"github.com/smartpark/garage/internal/pkg/logger"
	"github.com/smartpark/garage/internal/repository"
)

// RegisterCarRequest - запрос на регистрацию автомобиля
type RegisterCarRequest struct {
	PlateNumber       string `json:"plate_number" validate:"required"`
	Type              string `json:"type"`
	Model             string `json:"model" validate:"required"`
	ManufacturingYear int    `json:"manufacturing_year"`
	DriverPhone       string `json:"driver_phone"`
	MechanicName      string `json:"mechanic_name"`
}

// Service содержит бизнес-логику регистрации автомобилей
type Service struct {
	carRepo repository.CarRepository
	logger  logger.Logger
}

// NewService создает новый экземпляр CarService
func NewService(carRepo repository.CarRepository, logger logger.Logger) *Service {
	return &Service{
		carRepo: carRepo,
		logger:  logger,
	}
}

// RegisterCar регистрирует новый автомобиль
func (s *Service) RegisterCar(ctx context.Context, req *RegisterCarRequest) (*domain.Car, error) {
	s.logger.Info("Registering new car", map[string]interface{}{
		"plate_number": req.PlateNumber,
	})

	// Проверяем, что автомобиль с таким номером еще не зарегистрирован
	existing, err := s.carRepo.GetByPlate(ctx, req.PlateNumber)
	if err != nil && err != domain.ErrCarNotFound {
		return nil, fmt.Errorf("failed to check existing car: %w", err)
	}

	if existing != nil {
		s.logger.Warn("Car already exists", map[string]interface{}{
			"plate_number": req.PlateNumber,
		})
		return nil, domain.ErrCarAlreadyExists
	}

	car := &domain.Car{
		PlateNumber:       req.PlateNumber,
		Type:              req.Type,
		Model:             req.Model,
		ManufacturingYear: req.ManufacturingYear,
		DriverPhone:       req.DriverPhone,
		MechanicName:      req.MechanicName,
	}

	// Валидируем данные (заодно нормализуется номер)
	if err := car.Validate(); err != nil {
		return nil, err
	}

	// Сохраняем в хранилище
	if err := s.carRepo.Add(ctx, car); err != nil {
		s.logger.Error("Failed to register car", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("failed to register car: %w", err)
	}

	s.logger.Info("Car registered successfully", map[string]interface{}{
		"plate_number": car.PlateNumber,
	})

	return car, nil
}

// GetCarByPlate возвращает автомобиль по номеру
func (s *Service) GetCarByPlate(ctx context.Context, plate string) (*domain.Car, error) {
	return s.carRepo.GetByPlate(ctx, plate)
}

// ListCars возвращает все автомобили в порядке регистрации
func (s *Service) ListCars(ctx context.Context) ([]*domain.Car, error) {
	return s.carRepo.List(ctx)
}
