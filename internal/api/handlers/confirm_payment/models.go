package confirm_payment

import (
	"github.com/rentovia/SDC-RentalService/internal/domain"
	confirmPayment "github.com/rentovia/SDC-RentalService/internal/usecase/confirm_payment"
)

// ConfirmPaymentRequest callback платежного шлюза, проброшенный клиентом
type ConfirmPaymentRequest struct {
	Status        string  `json:"status"` // success | failed | cancelled
	PaymentRef    string  `json:"paymentRef,omitempty"`
	FailureReason string  `json:"failureReason,omitempty"`
	DepositType   string  `json:"depositType,omitempty"` // cash | bike | none
	DepositAmount float64 `json:"depositAmount,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ConfirmPaymentRequest) ToUseCaseRequest(sessionID string) *confirmPayment.Request {
	return &confirmPayment.Request{
		SessionID:     sessionID,
		Status:        r.Status,
		PaymentRef:    r.PaymentRef,
		FailureReason: r.FailureReason,
		DepositType:   domain.DepositType(r.DepositType),
		DepositAmount: r.DepositAmount,
	}
}
