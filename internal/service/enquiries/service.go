package enquiries

import (
	"context"
	"errors"
	"fmt"

	"github.com/rentovia/SDC-RentalService/internal/domain"
	enquiryRepo "github.com/rentovia/SDC-RentalService/internal/infra/storage/enquiry"
	"github.com/rentovia/SDC-RentalService/internal/service/enquiries/models"
)

// Service сервис триажа заявок для админ-зоны
type Service struct {
	enquiryRepo EnquiryRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса заявок
func NewService(enquiryRepo EnquiryRepository, logger Logger) *Service {
	return &Service{
		enquiryRepo: enquiryRepo,
		logger:      logger,
	}
}

// List получает заявки, сначала новые
// Опционально фильтрует по статусу
func (s *Service) List(ctx context.Context, status *string) (*models.EnquiryListResponse, error) {
	var domainStatus *domain.EnquiryStatus
	if status != nil {
		st := domain.EnquiryStatus(*status)
		if !domain.IsValidEnquiryStatus(st) {
			s.logger.Warn("List: invalid status=%s", *status)
			return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, *status)
		}
		domainStatus = &st
	}

	enquiries, err := s.enquiryRepo.List(ctx, domainStatus)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d enquiries (status=%v)", len(enquiries), status)
	return models.FromDomainEnquiryList(enquiries), nil
}

// UpdateStatus переводит заявку в новый статус триажа
func (s *Service) UpdateStatus(ctx context.Context, id int64, status string) error {
	s.logger.Info("UpdateStatus: enquiry id=%d -> status=%s", id, status)

	st := domain.EnquiryStatus(status)
	if !domain.IsValidEnquiryStatus(st) {
		s.logger.Warn("UpdateStatus: invalid status=%s for enquiry id=%d", status, id)
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	if err := s.enquiryRepo.UpdateStatus(ctx, id, st); err != nil {
		if errors.Is(err, enquiryRepo.ErrEnquiryNotFound) {
			s.logger.Warn("UpdateStatus: enquiry id=%d not found", id)
			return ErrEnquiryNotFound
		}
		s.logger.Error("UpdateStatus: repository error for enquiry id=%d: %v", id, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	return nil
}
