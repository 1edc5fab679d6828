package mailer

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("mailer client: internal error")

	// ErrSendFailed возвращается, когда почтовый API отклонил отправку
	ErrSendFailed = errors.New("mailer client: send failed")
)
