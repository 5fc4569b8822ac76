package reminders

import "errors"

var (
	// ErrReminderNotFound возвращается, когда напоминание не найдено
	ErrReminderNotFound = errors.New("reminders.repository: reminder not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("reminders.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("reminders.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("reminders.repository: failed to scan row")
)
