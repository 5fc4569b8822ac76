package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrUnknownServiceType возвращается для типа услуги вне каталога
	ErrUnknownServiceType = errors.New("create_booking: unknown service type")

	// ErrInvalidDate возвращается при некорректной дате бронирования (например, в прошлом)
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrInsufficientNotice возвращается, когда до даты меньше MinimumNoticeDays
	ErrInsufficientNotice = errors.New("create_booking: booking date does not respect the minimum notice")

	// ErrDurationTooShort возвращается, когда длительность меньше минимальной для услуги
	ErrDurationTooShort = errors.New("create_booking: duration is below the service minimum")

	// ErrInvalidDuration возвращается для длительности не кратной 0.5 ч или вне допустимого диапазона
	ErrInvalidDuration = errors.New("create_booking: invalid duration")

	// ErrUnknownExtra возвращается, когда выбранная доп. услуга не относится к типу услуги
	ErrUnknownExtra = errors.New("create_booking: unknown extra for service type")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
