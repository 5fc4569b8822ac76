package mailer

import "errors"

var (
	// ErrNotConfigured возвращается, если API-ключ SendGrid не задан
	ErrNotConfigured = errors.New("mailer: sendgrid client not configured")

	// ErrSendFailed возвращается при сетевой ошибке отправки
	ErrSendFailed = errors.New("mailer: send failed")

	// ErrRejected возвращается, когда SendGrid ответил статусом >= 400
	ErrRejected = errors.New("mailer: message rejected")

	// ErrInvalidMessage возвращается для сообщения без получателя или темы
	ErrInvalidMessage = errors.New("mailer: invalid message")
)
