package fleet

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rentovia/SDC-RentalService/internal/domain"
	carRepo "github.com/rentovia/SDC-RentalService/internal/infra/storage/car"
	"github.com/rentovia/SDC-RentalService/internal/service/fleet/models"
)

// Service сервис каталога и администрирования автопарка
type Service struct {
	carRepo CarRepository
	logger  Logger
}

// NewService создает новый экземпляр сервиса автопарка
func NewService(carRepo CarRepository, logger Logger) *Service {
	return &Service{
		carRepo: carRepo,
		logger:  logger,
	}
}

// List получает каталог автомобилей с сортировкой и поиском
func (s *Service) List(ctx context.Context, req *models.ListCarsRequest) (*models.CarListResponse, error) {
	if err := validateListRequest(req); err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, err
	}

	cars, err := s.carRepo.List(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d cars (sortBy=%s, order=%s, search=%q)",
		len(cars), req.SortBy, req.Order, req.Search)
	return models.FromDomainCarList(cars), nil
}

// GetByID получает автомобиль по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.CarResponse, error) {
	car, err := s.carRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, carRepo.ErrCarNotFound) {
			s.logger.Warn("GetByID: car id=%d not found", id)
			return nil, ErrCarNotFound
		}
		s.logger.Error("GetByID: repository error for car id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCar(car), nil
}

// Create добавляет автомобиль в автопарк
func (s *Service) Create(ctx context.Context, req *models.CreateCarRequest) (*models.CarResponse, error) {
	s.logger.Info("Create: adding car name=%s, brand=%s", req.Name, req.Brand)

	if err := validateCarRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.carRepo.Create(ctx, req.ToDomainCar())
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: car id=%d added", created.ID)
	return models.FromDomainCar(created), nil
}

// Update полностью обновляет автомобиль
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateCarRequest) (*models.CarResponse, error) {
	s.logger.Info("Update: updating car id=%d", id)

	if err := validateCarRequest(req); err != nil {
		s.logger.Warn("Update: validation failed for car id=%d: %v", id, err)
		return nil, err
	}

	car := req.ToDomainCar()
	car.ID = id

	if err := s.carRepo.Update(ctx, car); err != nil {
		if errors.Is(err, carRepo.ErrCarNotFound) {
			s.logger.Warn("Update: car id=%d not found", id)
			return nil, ErrCarNotFound
		}
		s.logger.Error("Update: repository error for car id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	return s.GetByID(ctx, id)
}

// Delete удаляет автомобиль из автопарка
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: removing car id=%d", id)

	if err := s.carRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, carRepo.ErrCarNotFound) {
			s.logger.Warn("Delete: car id=%d not found", id)
			return ErrCarNotFound
		}
		s.logger.Error("Delete: repository error for car id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	return nil
}

// validateListRequest валидирует параметры каталога
func validateListRequest(req *models.ListCarsRequest) error {
	switch req.SortBy {
	case "", "price", "name":
	default:
		return fmt.Errorf("%w: unknown sort field %q", ErrInvalidInput, req.SortBy)
	}

	switch req.Order {
	case "", "asc", "desc":
	default:
		return fmt.Errorf("%w: unknown sort order %q", ErrInvalidInput, req.Order)
	}

	return nil
}

// validateCarRequest валидирует данные автомобиля для Create и Update
func validateCarRequest(req *models.CreateCarRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Brand) == "" {
		return fmt.Errorf("%w: brand is required", ErrInvalidInput)
	}
	if req.Price <= 0 {
		return fmt.Errorf("%w: price must be positive", ErrInvalidInput)
	}

	// Тарифы длинных периодов опциональны, но заданные должны быть положительными
	for _, tier := range []struct {
		name string
		rate *float64
	}{
		{"price3Days", req.Price3Days},
		{"price7Days", req.Price7Days},
		{"price15Days", req.Price15Days},
	} {
		if tier.rate != nil && *tier.rate <= 0 {
			return fmt.Errorf("%w: %s must be positive", ErrInvalidInput, tier.name)
		}
	}

	if !domain.IsValidTransmission(domain.Transmission(req.Transmission)) {
		return fmt.Errorf("%w: unknown transmission %q", ErrInvalidInput, req.Transmission)
	}
	if !domain.IsValidFuelType(domain.FuelType(req.Fuel)) {
		return fmt.Errorf("%w: unknown fuel type %q", ErrInvalidInput, req.Fuel)
	}
	if req.KmLimit < 0 {
		return fmt.Errorf("%w: km limit must not be negative", ErrInvalidInput)
	}

	return nil
}
