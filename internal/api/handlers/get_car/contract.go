package get_car

import (
	"context"

	"github.com/rentovia/SDC-RentalService/internal/service/fleet/models"
)

type FleetService interface {
	GetByID(ctx context.Context, id int64) (*models.CarResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
