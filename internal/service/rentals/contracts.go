package rentals

import (
	"context"

	"github.com/rentovia/SDC-RentalService/internal/domain"
)

// BookingRepository интерфейс репозитория подтвержденных бронирований
type BookingRepository interface {
	List(ctx context.Context) ([]*domain.Booking, error)
	GetByRef(ctx context.Context, ref string) (*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
