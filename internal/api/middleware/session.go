package middleware

import (
	"context"
	"net/http"

	"github.com/rentovia/SDC-RentalService/internal/api/handlers"
)

type contextKey string

const sessionIDKey contextKey = "sessionID"

// SessionHeader заголовок с идентификатором сессии бронирования
const SessionHeader = "X-Session-ID"

// Session проверяет наличие X-Session-ID и кладет его в контекст
// Каждой сессии соответствует ровно один черновик бронирования
func Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := r.Header.Get(SessionHeader)
		if sessionID == "" {
			handlers.RespondUnauthorized(w, "missing session id")
			return
		}

		ctx := context.WithValue(r.Context(), sessionIDKey, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetSessionID извлекает идентификатор сессии из контекста
func GetSessionID(ctx context.Context) (string, bool) {
	sessionID, ok := ctx.Value(sessionIDKey).(string)
	return sessionID, ok
}
