package list_bookings

import (
	"context"

	"github.com/rentovia/SDC-RentalService/internal/service/rentals/models"
)

type RentalService interface {
	List(ctx context.Context) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
