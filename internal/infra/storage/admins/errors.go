package admins

import "errors"

var (
	// ErrAdminNotFound возвращается, когда администратор не найден
	ErrAdminNotFound = errors.New("admins.repository: admin not found")

	// ErrDuplicateAdmin возвращается при нарушении уникальности username/email
	ErrDuplicateAdmin = errors.New("admins.repository: admin with this username or email already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("admins.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("admins.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("admins.repository: failed to scan row")
)
