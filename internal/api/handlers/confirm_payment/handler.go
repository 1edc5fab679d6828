package confirm_payment

import (
	"errors"
	"net/http"

	"github.com/rentovia/SDC-RentalService/internal/api/handlers"
	"github.com/rentovia/SDC-RentalService/internal/api/middleware"
	confirmPayment "github.com/rentovia/SDC-RentalService/internal/usecase/confirm_payment"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgMissingSessionID   = "missing session id"
	msgIncompleteDraft    = "booking details are incomplete, please start from the beginning"
	msgPaymentFailed      = "payment was not completed, you can retry or contact us"
	msgConfirmFailed      = "failed to confirm the booking, please contact us"
)

type Handler struct {
	useCase ConfirmPaymentUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmPaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/payments/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Warn("POST /payments/confirm - Missing session ID")
		handlers.RespondUnauthorized(w, msgMissingSessionID)
		return
	}

	var req ConfirmPaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /payments/confirm - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(sessionID))
	if err != nil {
		switch {
		case errors.Is(err, confirmPayment.ErrInvalidInput):
			h.logger.Warn("POST /payments/confirm - Invalid input: session=%s, error=%v", sessionID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, confirmPayment.ErrIncompleteDraft):
			h.logger.Warn("POST /payments/confirm - Incomplete draft: session=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgIncompleteDraft)

		case errors.Is(err, confirmPayment.ErrPaymentFailed):
			// Черновик не тронут, клиент может повторить оплату
			h.logger.Warn("POST /payments/confirm - Payment failed: session=%s, error=%v", sessionID, err)
			handlers.RespondError(w, http.StatusPaymentRequired, msgPaymentFailed)

		default:
			h.logger.Error("POST /payments/confirm - Failed: session=%s, error=%v", sessionID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgConfirmFailed)
		}
		return
	}

	if result.BookingRef != "" {
		h.logger.Info("POST /payments/confirm - Booking %s confirmed for session=%s",
			result.BookingRef, sessionID)
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}
