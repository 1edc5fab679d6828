package initiate_payment

import "errors"

var (
	ErrIncompleteDraft    = errors.New("initiate_payment: booking draft is incomplete")
	ErrTermsNotAccepted   = errors.New("initiate_payment: terms and conditions not accepted")
	ErrNoCarSelected      = errors.New("initiate_payment: no car selected")
	ErrGatewayRejected    = errors.New("initiate_payment: payment gateway rejected the order")
	ErrGatewayUnavailable = errors.New("initiate_payment: payment gateway unavailable")
	ErrInternal           = errors.New("initiate_payment: internal error")
)
