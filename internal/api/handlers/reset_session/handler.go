package reset_session

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

// Handle POST /api/v1/sessions/reset
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Warn("POST /sessions/reset - Missing session ID")
		handlers.RespondUnauthorized(w, msgMissingSessionID)
		return
	}

	h.store.Reset(sessionID)

	h.logger.Info("POST /sessions/reset - Draft reset for session=%s", sessionID)
	handlers.RespondNoContent(w)
}
