package confirm_payment

import (
	"context"
	"time"

	"github.com/rentovia/SDC-RentalService/internal/domain"
)

// DraftStore интерфейс хранилища черновиков бронирований
type DraftStore interface {
	Get(sessionID string) (domain.BookingDraft, bool)
	Update(sessionID string, patch domain.DraftPatch) domain.BookingDraft
}

// BookingRepository интерфейс репозитория подтвержденных бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	ExistsByRef(ctx context.Context, ref string) (bool, error)
}

// TransactionManager интерфейс для выполнения операций в транзакции
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реализация TimeProvider для продакшена
type RealTimeProvider struct{}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
