package accept_terms

import (
	"net/http"

	"github.com/rentovia/SDC-RentalService/internal/api/handlers"
	"github.com/rentovia/SDC-RentalService/internal/api/middleware"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgMissingSessionID   = "missing session id"
)

// AcceptTermsRequest HTTP request model
type AcceptTermsRequest struct {
	Accepted bool `json:"accepted"`
}

// AcceptTermsResponse HTTP response model
type AcceptTermsResponse struct {
	TermsAccepted bool `json:"termsAccepted"`
}

type Handler struct {
	store  SessionStore
	logger Logger
}

func NewHandler(store SessionStore, logger Logger) *Handler {
	return &Handler{
		store:  store,
		logger: logger,
	}
}

// Handle POST /api/v1/sessions/terms
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Warn("POST /sessions/terms - Missing session ID")
		handlers.RespondUnauthorized(w, msgMissingSessionID)
		return
	}

	var req AcceptTermsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/terms - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	h.store.SetTermsAccepted(sessionID, req.Accepted)

	h.logger.Info("POST /sessions/terms - Terms accepted=%t for session=%s", req.Accepted, sessionID)
	handlers.RespondJSON(w, http.StatusOK, AcceptTermsResponse{TermsAccepted: req.Accepted})
}
