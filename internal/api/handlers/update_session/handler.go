package update_session

import (
	"net/http"

	"github.com/rentovia/SDC-RentalService/internal/api/handlers"
	"github.com/rentovia/SDC-RentalService/internal/api/middleware"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgMissingSessionID   = "missing session id"
)

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

// Handle PATCH /api/v1/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /sessions - Missing session ID")
		handlers.RespondUnauthorized(w, msgMissingSessionID)
		return
	}

	var req UpdateSessionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /sessions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	patch, err := req.ToDomainPatch()
	if err != nil {
		h.logger.Warn("PATCH /sessions - Invalid patch for session=%s: %v", sessionID, err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	draft := h.store.Update(sessionID, patch)
	_, termsAccepted := h.store.Get(sessionID)

	h.logger.Info("PATCH /sessions - Draft updated for session=%s", sessionID)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromDomainDraft(draft, termsAccepted))
}
