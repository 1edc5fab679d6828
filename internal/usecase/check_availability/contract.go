package check_availability

import (
	"context"
	"time"

	"github.com/rentovia/SDC-RentalService/internal/domain"
)

// CarRepository интерфейс репозитория автопарка
type CarRepository interface {
	ListOrderedByPrice(ctx context.Context) ([]*domain.Car, error)
}

// EnquiryRepository интерфейс репозитория заявок
type EnquiryRepository interface {
	Create(ctx context.Context, enq *domain.Enquiry) (*domain.Enquiry, error)
	CountByPhoneSince(ctx context.Context, phone string, since time.Time) (int, error)
}

// DraftStore интерфейс хранилища черновиков бронирований
type DraftStore interface {
	Update(sessionID string, patch domain.DraftPatch) domain.BookingDraft
}

// Mailer интерфейс почтового клиента для уведомлений о заявках
type Mailer interface {
	SendEnquiryNotification(ctx context.Context, enq *domain.Enquiry) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
