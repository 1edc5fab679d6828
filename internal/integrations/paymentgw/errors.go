package paymentgw

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("paymentgw client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе шлюза
	ErrInvalidResponse = errors.New("paymentgw client: invalid response")

	// ErrOrderRejected возвращается, когда шлюз отклонил создание заказа
	ErrOrderRejected = errors.New("paymentgw client: order rejected")

	// ErrUnavailable возвращается, когда шлюз недоступен
	ErrUnavailable = errors.New("paymentgw client: gateway unavailable")
)
