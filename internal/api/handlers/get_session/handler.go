package get_session

import (
	"net/http"

	"github.com/rentovia/SDC-RentalService/internal/api/handlers"
	"github.com/rentovia/SDC-RentalService/internal/api/middleware"
)

const msgMissingSessionID = "missing session id"

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

// Handle GET /api/v1/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Warn("GET /sessions - Missing session ID")
		handlers.RespondUnauthorized(w, msgMissingSessionID)
		return
	}

	draft, termsAccepted := h.store.Get(sessionID)

	handlers.RespondJSON(w, http.StatusOK, handlers.FromDomainDraft(draft, termsAccepted))
}
