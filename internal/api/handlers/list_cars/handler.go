package list_cars

import (
	"errors"
	"net/http"

	"github.com/rentovia/SDC-RentalService/internal/api/handlers"
	"github.com/rentovia/SDC-RentalService/internal/service/fleet"
	"github.com/rentovia/SDC-RentalService/internal/service/fleet/models"
)

const msgLoadFailed = "failed to load the fleet, please try again"

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

// Handle GET /api/v1/cars
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &models.ListCarsRequest{
		SortBy: query.Get("sortBy"),
		Order:  query.Get("order"),
		Search: query.Get("search"),
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, fleet.ErrInvalidInput):
			h.logger.Warn("GET /cars - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /cars - Failed to list cars: %v", err)
			handlers.RespondError(w, http.StatusInternalServerError, msgLoadFailed)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
