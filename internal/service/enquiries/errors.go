package enquiries

import "errors"

var (
	// ErrEnquiryNotFound возвращается, когда заявка не найдена
	ErrEnquiryNotFound = errors.New("enquiry not found")

	// ErrInvalidStatus возвращается при неизвестном статусе заявки
	ErrInvalidStatus = errors.New("invalid enquiry status")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
