// Package reminders запускает периодическую отправку наступивших напоминаний.
package reminders

import (
	"context"
	"time"

	"github.com/urinakcleaning/booking-service/internal/service/reminders/models"
)

// Processor обрабатывает одну партию напоминаний (service/reminders.Service)
type Processor interface {
	ProcessPending(ctx context.Context) (*models.ProcessResult, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

const defaultInterval = time.Minute

// Worker вызывает Processor сразу после запуска и затем каждые interval
type Worker struct {
	processor Processor
	interval  time.Duration
	logger    Logger
}

// NewWorker создает воркер. interval <= 0 заменяется на одну минуту.
func NewWorker(processor Processor, interval time.Duration, logger Logger) *Worker {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Worker{
		processor: processor,
		interval:  interval,
		logger:    logger,
	}
}

// Run блокируется до отмены ctx
func (w *Worker) Run(ctx context.Context) {
	w.logger.Info("Reminder worker started, interval=%s", w.interval)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.tick(ctx)
	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Reminder worker stopped")
			return
		case <-ticker.C:
			w.tick(ctx)
		}
	}
}

func (w *Worker) tick(ctx context.Context) {
	if _, err := w.processor.ProcessPending(ctx); err != nil {
		w.logger.Error("Reminder worker: %v", err)
	}
}
