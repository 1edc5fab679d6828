package update_car

import (
	"context"

	"github.com/rentovia/SDC-RentalService/internal/service/fleet/models"
)

type FleetService interface {
	Update(ctx context.Context, id int64, req *models.UpdateCarRequest) (*models.CarResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
