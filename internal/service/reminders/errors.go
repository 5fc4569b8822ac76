package reminders

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование для напоминания не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
