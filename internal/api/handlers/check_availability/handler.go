package check_availability

import (
	"errors"
	"net/http"

	"github.com/rentovia/SDC-RentalService/internal/api/handlers"
	"github.com/rentovia/SDC-RentalService/internal/api/middleware"
	"github.com/rentovia/SDC-RentalService/internal/domain"
	checkAvailability "github.com/rentovia/SDC-RentalService/internal/usecase/check_availability"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidSchedule    = "invalid date or time format, expected YYYY-MM-DD and HH:MM"
	msgMissingSessionID   = "missing session id"
	msgIncompleteSchedule = "pickup and drop date and time are required"
	msgUnavailable        = "failed to check availability, please try again"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Warn("POST /availability - Missing session ID")
		handlers.RespondUnauthorized(w, msgMissingSessionID)
		return
	}

	var req CheckAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(sessionID)
	if err != nil {
		h.logger.Warn("POST /availability - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSchedule)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrMinimumDuration):
			h.logger.Warn("POST /availability - Duration below minimum: session=%s", sessionID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, domain.MinimumDurationMessage)

		case errors.Is(err, checkAvailability.ErrIncompleteSchedule):
			h.logger.Warn("POST /availability - Incomplete schedule: session=%s", sessionID)
			handlers.RespondBadRequest(w, msgIncompleteSchedule)

		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("POST /availability - Invalid input: session=%s, error=%v", sessionID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /availability - Failed: session=%s, error=%v", sessionID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgUnavailable)
		}
		return
	}

	h.logger.Info("POST /availability - %d cars for session=%s", len(result.Cars), sessionID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
