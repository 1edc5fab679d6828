package resolve_step

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/rentovia/SDC-RentalService/internal/api/handlers"
	"github.com/rentovia/SDC-RentalService/internal/api/middleware"
	"github.com/rentovia/SDC-RentalService/internal/domain"
)

const (
	msgMissingSessionID = "missing session id"
	msgUnknownStep      = "unknown booking step"
)

// ResolveStepResponse куда фактически попадает сессия при входе на шаг
type ResolveStepResponse struct {
	Requested string `json:"requested"`
	Resolved  string `json:"resolved"`
	Allowed   bool   `json:"allowed"`
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

// Handle GET /api/v1/sessions/steps/{step}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Warn("GET /sessions/steps/{step} - Missing session ID")
		handlers.RespondUnauthorized(w, msgMissingSessionID)
		return
	}

	vars := mux.Vars(r)
	target, err := domain.ParseStep(vars["step"])
	if err != nil {
		h.logger.Warn("GET /sessions/steps/{step} - Unknown step %q", vars["step"])
		handlers.RespondBadRequest(w, msgUnknownStep)
		return
	}

	draft, termsAccepted := h.store.Get(sessionID)
	resolved := domain.GuardStep(target, &draft, termsAccepted)

	if resolved != target {
		h.logger.Info("GET /sessions/steps/{step} - session=%s redirected %s -> %s",
			sessionID, target, resolved)
	}

	handlers.RespondJSON(w, http.StatusOK, ResolveStepResponse{
		Requested: string(target),
		Resolved:  string(resolved),
		Allowed:   resolved == target,
	})
}
