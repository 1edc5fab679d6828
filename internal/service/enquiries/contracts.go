package enquiries

import (
	"context"

	"github.com/rentovia/SDC-RentalService/internal/domain"
)

// EnquiryRepository интерфейс репозитория заявок
type EnquiryRepository interface {
	List(ctx context.Context, status *domain.EnquiryStatus) ([]*domain.Enquiry, error)
	UpdateStatus(ctx context.Context, id int64, status domain.EnquiryStatus) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
