package record

import (
	"context"
	"fmt"

	"github.com/smartpark/garage/internal/domain"
	"github.com/smartpark/garage/internal/pkg/logger"
	"github.com/smartpark/garage/internal/pkg/sequence"
	"github.com/smartpark/garage/internal/repository"
)

// CreateRecordRequest - запрос на создание записи об обслуживании
// Пустой RecordNumber означает автонумерацию REC + 4 цифры
type CreateRecordRequest struct {
	RecordNumber string `json:"record_number,omitempty"`
	ServiceDate  string `json:"service_date" validate:"required"`
	PlateNumber  string `json:"plate_number" validate:"required"`
	ServiceCode  string `json:"service_code" validate:"required"`
}

// UpdateRecordRequest - запрос на изменение записи
// Номер записи неизменяем; редактируются дата, автомобиль и услуга
type UpdateRecordRequest struct {
	ServiceDate string `json:"service_date" validate:"required"`
	PlateNumber string `json:"plate_number" validate:"required"`
	ServiceCode string `json:"service_code" validate:"required"`
}

// Service содержит бизнес-логику записей об обслуживании
type Service struct {
	recordRepo  repository.RecordRepository
	carRepo     repository.CarRepository
	serviceRepo repository.ServiceRepository
	logger      logger.Logger
}

// NewService создает новый экземпляр RecordService
func NewService(
	recordRepo repository.RecordRepository,
	carRepo repository.CarRepository,
	serviceRepo repository.ServiceRepository,
	logger logger.Logger,
) *Service {
	return &Service{
		recordRepo:  recordRepo,
		carRepo:     carRepo,
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// CreateRecord создает новую запись об обслуживании
// Проверки уникальности номера и существования автомобиля/услуги
// выполняются здесь: хранилище принимает записи без проверок
func (s *Service) CreateRecord(ctx context.Context, req *CreateRecordRequest) (*domain.ServiceRecord, error) {
	recordNumber := req.RecordNumber
	if recordNumber == "" {
		count, err := s.recordRepo.Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count records: %w", err)
		}
		recordNumber = sequence.Next(sequence.RecordPrefix, count)
	}

	s.logger.Info("Creating service record", map[string]interface{}{
		"record_number": recordNumber,
		"plate_number":  req.PlateNumber,
		"service_code":  req.ServiceCode,
	})

	// Проверяем, что запись с таким номером еще не существует
	existing, err := s.recordRepo.GetByNumber(ctx, recordNumber)
	if err != nil && err != domain.ErrRecordNotFound {
		return nil, fmt.Errorf("failed to check existing record: %w", err)
	}

	if existing != nil {
		s.logger.Warn("Record already exists", map[string]interface{}{
			"record_number": recordNumber,
		})
		return nil, domain.ErrRecordAlreadyExists
	}

	// Проверяем, что автомобиль зарегистрирован
	if _, err := s.carRepo.GetByPlate(ctx, req.PlateNumber); err != nil {
		if err == domain.ErrCarNotFound {
			return nil, domain.ErrCarNotFound
		}
		return nil, fmt.Errorf("failed to check car: %w", err)
	}

	// Проверяем, что услуга есть в каталоге
	if _, err := s.serviceRepo.GetByCode(ctx, req.ServiceCode); err != nil {
		if err == domain.ErrServiceNotFound {
			return nil, domain.ErrServiceNotFound
		}
		return nil, fmt.Errorf("failed to check service: %w", err)
	}

	record := &domain.ServiceRecord{
		RecordNumber: recordNumber,
		ServiceDate:  req.ServiceDate,
		PlateNumber:  domain.NormalizePlateNumber(req.PlateNumber),
		ServiceCode:  req.ServiceCode,
	}

	// Валидируем данные
	if err := record.Validate(); err != nil {
		return nil, err
	}

	// Сохраняем в хранилище
	if err := s.recordRepo.Add(ctx, record); err != nil {
		s.logger.Error("Failed to create record", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("failed to create record: %w", err)
	}

	s.logger.Info("Service record created successfully", map[string]interface{}{
		"record_number": record.RecordNumber,
	})

	return record, nil
}

// UpdateRecord изменяет дату, автомобиль или услугу существующей записи
// Позиция записи в коллекции сохраняется
func (s *Service) UpdateRecord(ctx context.Context, recordNumber string, req *UpdateRecordRequest) (*domain.ServiceRecord, error) {
	// Хранилище молча пропускает отсутствующий ключ,
	// поэтому существование проверяем здесь
	if _, err := s.recordRepo.GetByNumber(ctx, recordNumber); err != nil {
		return nil, err
	}

	if _, err := s.carRepo.GetByPlate(ctx, req.PlateNumber); err != nil {
		if err == domain.ErrCarNotFound {
			return nil, domain.ErrCarNotFound
		}
		return nil, fmt.Errorf("failed to check car: %w", err)
	}

	if _, err := s.serviceRepo.GetByCode(ctx, req.ServiceCode); err != nil {
		if err == domain.ErrServiceNotFound {
			return nil, domain.ErrServiceNotFound
		}
		return nil, fmt.Errorf("failed to check service: %w", err)
	}

	record := &domain.ServiceRecord{
		RecordNumber: recordNumber,
		ServiceDate:  req.ServiceDate,
		PlateNumber:  domain.NormalizePlateNumber(req.PlateNumber),
		ServiceCode:  req.ServiceCode,
	}

	if err := record.Validate(); err != nil {
		return nil, err
	}

	if err := s.recordRepo.Update(ctx, recordNumber, record); err != nil {
		s.logger.Error("Failed to update record", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("failed to update record: %w", err)
	}

	s.logger.Info("Service record updated", map[string]interface{}{
		"record_number": recordNumber,
	})

	return record, nil
}

// DeleteRecord удаляет запись об обслуживании
// Каскадного удаления нет: платеж по удаленной записи остается
// с висячей ссылкой, и его детали разрешаются как "не найдено"
func (s *Service) DeleteRecord(ctx context.Context, recordNumber string) error {
	if _, err := s.recordRepo.GetByNumber(ctx, recordNumber); err != nil {
		return err
	}

	if err := s.recordRepo.Delete(ctx, recordNumber); err != nil {
		s.logger.Error("Failed to delete record", map[string]interface{}{
			"error": err.Error(),
		})
		return fmt.Errorf("failed to delete record: %w", err)
	}

	s.logger.Info("Service record deleted", map[string]interface{}{
		"record_number": recordNumber,
	})

	return nil
}

// GetRecordByNumber возвращает запись по номеру
func (s *Service) GetRecordByNumber(ctx context.Context, number string) (*domain.ServiceRecord, error) {
	return s.recordRepo.GetByNumber(ctx, number)
}

// ListRecords возвращает все записи в порядке создания
func (s *Service) ListRecords(ctx context.Context) ([]*domain.ServiceRecord, error) {
	return s.recordRepo.List(ctx)
}
