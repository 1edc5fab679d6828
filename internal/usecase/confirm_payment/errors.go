package confirm_payment

import "errors"

var (
	ErrInvalidInput    = errors.New("confirm_payment: invalid input")
	ErrIncompleteDraft = errors.New("confirm_payment: booking draft is incomplete")
	ErrPaymentFailed   = errors.New("confirm_payment: payment failed")
	ErrInternal        = errors.New("confirm_payment: internal error")
)
