package middleware

import (
	"context"
	"net/http"

	"github.com/rentovia/SDC-RentalService/internal/api/handlers"
)

const adminIDKey contextKey = "adminID"

// AdminHeader заголовок с идентификатором администратора
// Проверка подлинности делегирована внешнему identity провайдеру перед
// сервисом, здесь только наличие идентификатора
const AdminHeader = "X-Admin-ID"

// Admin проверяет наличие X-Admin-ID и кладет его в контекст
func Admin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		adminID := r.Header.Get(AdminHeader)
		if adminID == "" {
			handlers.RespondUnauthorized(w, "missing admin id")
			return
		}

		ctx := context.WithValue(r.Context(), adminIDKey, adminID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetAdminID извлекает идентификатор администратора из контекста
func GetAdminID(ctx context.Context) (string, bool) {
	adminID, ok := ctx.Value(adminIDKey).(string)
	return adminID, ok
}
