package initiate_payment

import (
	"context"

	"github.com/rentovia/SDC-RentalService/internal/domain"
	"github.com/rentovia/SDC-RentalService/internal/integrations/paymentgw"
)

// DraftStore интерфейс хранилища черновиков бронирований
type DraftStore interface {
	Get(sessionID string) (domain.BookingDraft, bool)
}

// PaymentGateway интерфейс клиента платежного шлюза
type PaymentGateway interface {
	CreateOrder(ctx context.Context, req *paymentgw.CreateOrderRequest) (*paymentgw.Order, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
