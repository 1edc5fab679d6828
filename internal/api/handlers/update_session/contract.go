package update_session

import "github.com/rentovia/SDC-RentalService/internal/domain"

type SessionStore interface {
	Get(sessionID string) (domain.BookingDraft, bool)
	Update(sessionID string, patch domain.DraftPatch) domain.BookingDraft
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
