package notifications

import (
	"context"

	"github.com/urinakcleaning/booking-service/internal/integrations/mailer"
)

// Sender отправитель писем (mailer.Client или mailer.StubClient)
type Sender interface {
	Send(ctx context.Context, msg mailer.Message) error
}

// Metrics интерфейс для учёта отправленных писем
type Metrics interface {
	IncEmail(kind string, ok bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
