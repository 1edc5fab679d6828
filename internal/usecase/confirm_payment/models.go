package confirm_payment

import "github.com/rentovia/SDC-RentalService/internal/domain"

// Статусы callback платежного шлюза
const (
	StatusSuccess   = "success"
	StatusFailed    = "failed"
	StatusCancelled = "cancelled"
)

// Request callback платежного шлюза по авансу
type Request struct {
	SessionID string

	// Status один из StatusSuccess, StatusFailed, StatusCancelled
	Status string

	// PaymentRef непрозрачная ссылка шлюза на платеж, обязательна при успехе
	PaymentRef string

	// FailureReason текст ошибки шлюза при неуспехе, показывается пользователю
	FailureReason string

	DepositType   domain.DepositType
	DepositAmount float64
}

// Response результат подтверждения оплаты
type Response struct {
	BookingRef string `json:"bookingRef,omitempty"`
	Status     string `json:"status"`
}
