package rentals

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/rentovia/SDC-RentalService/internal/infra/storage/booking"
	"github.com/rentovia/SDC-RentalService/internal/service/rentals/models"
)

// Service сервис просмотра подтвержденных бронирований для админ-зоны
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// List получает бронирования, сначала новые
func (s *Service) List(ctx context.Context) (*models.BookingListResponse, error) {
	bookings, err := s.bookingRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// GetByRef получает бронирование по идентификатору
func (s *Service) GetByRef(ctx context.Context, ref string) (*models.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByRef(ctx, ref)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByRef: booking ref=%s not found", ref)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByRef: repository error for ref=%s: %v", ref, err)
		return nil, fmt.Errorf("%w: GetByRef - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}
