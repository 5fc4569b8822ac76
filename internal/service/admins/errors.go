package admins

import "errors"

var (
	// ErrInvalidCredentials возвращается при неверном имени пользователя или пароле
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAdminAlreadyExists возвращается, когда имя пользователя или email заняты
	ErrAdminAlreadyExists = errors.New("admin already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
