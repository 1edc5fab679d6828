package initiate_payment

import (
	"errors"
	"net/http"

	"github.com/rentovia/SDC-RentalService/internal/api/handlers"
	"github.com/rentovia/SDC-RentalService/internal/api/middleware"
	initiatePayment "github.com/rentovia/SDC-RentalService/internal/usecase/initiate_payment"
)

const (
	msgMissingSessionID   = "missing session id"
	msgIncompleteDraft    = "booking details are incomplete, please start from the beginning"
	msgTermsNotAccepted   = "please accept the terms and conditions first"
	msgNoCarSelected      = "please select a car first"
	msgGatewayRejected    = "payment could not be started, please try again or contact us"
	msgGatewayUnavailable = "payment service is temporarily unavailable, please try again later"
)

type Handler struct {
	useCase InitiatePaymentUseCase
	logger  Logger
}

func NewHandler(useCase InitiatePaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/payments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Warn("POST /payments - Missing session ID")
		handlers.RespondUnauthorized(w, msgMissingSessionID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &initiatePayment.Request{SessionID: sessionID})
	if err != nil {
		switch {
		case errors.Is(err, initiatePayment.ErrIncompleteDraft):
			h.logger.Warn("POST /payments - Incomplete draft: session=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgIncompleteDraft)

		case errors.Is(err, initiatePayment.ErrTermsNotAccepted):
			h.logger.Warn("POST /payments - Terms not accepted: session=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgTermsNotAccepted)

		case errors.Is(err, initiatePayment.ErrNoCarSelected):
			h.logger.Warn("POST /payments - No car selected: session=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgNoCarSelected)

		case errors.Is(err, initiatePayment.ErrGatewayRejected):
			h.logger.Warn("POST /payments - Gateway rejected order: session=%s, error=%v", sessionID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgGatewayRejected)

		case errors.Is(err, initiatePayment.ErrGatewayUnavailable):
			h.logger.Error("POST /payments - Gateway unavailable: session=%s, error=%v", sessionID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgGatewayUnavailable)

		default:
			h.logger.Error("POST /payments - Failed: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /payments - Order %s created for session=%s", result.OrderID, sessionID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
