package check_availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_availability: invalid input data")

	// ErrIncompleteSchedule возвращается, когда даты или время еще не выбраны
	// Это не ошибка валидации: пользователю показывается подсказка, а не ошибка
	ErrIncompleteSchedule = errors.New("check_availability: schedule is incomplete")

	// ErrMinimumDuration возвращается при длительности аренды меньше 48 часов
	ErrMinimumDuration = errors.New("check_availability: rental duration below minimum")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_availability: internal error")
)
