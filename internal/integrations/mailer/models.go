package mailer

// Message письмо для отправки
type Message struct {
	To      string
	ToName  string
	Subject string
	Text    string // Текстовая версия
	HTML    string // HTML-версия, опционально
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
