package extras

import "errors"

var (
	// ErrUnknownServiceType возвращается для ключа услуги, которого нет в каталоге
	ErrUnknownServiceType = errors.New("unknown service type")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
