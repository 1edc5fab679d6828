package create_car

import (
	"errors"
	"net/http"

	"github.com/rentovia/SDC-RentalService/internal/api/handlers"
	"github.com/rentovia/SDC-RentalService/internal/service/fleet"
	"github.com/rentovia/SDC-RentalService/internal/service/fleet/models"
)

const msgInvalidRequestBody = "invalid request body"

type Handler struct {
	service FleetService
	logger  Logger
}

func NewHandler(service FleetService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/cars
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCarRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/cars - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	car, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, fleet.ErrInvalidInput):
			h.logger.Warn("POST /admin/cars - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /admin/cars - Failed to create car: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/cars - Car created: car_id=%d", car.ID)
	handlers.RespondJSON(w, http.StatusCreated, car)
}
