package resolve_step

import "github.com/rentovia/SDC-RentalService/internal/domain"

type SessionStore interface {
	Get(sessionID string) (domain.BookingDraft, bool)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
