package notifications

import (
	"context"
	"fmt"
	"time"

	"github.com/urinakcleaning/booking-service/internal/domain"
	"github.com/urinakcleaning/booking-service/internal/integrations/mailer"
)

// Виды писем для метрик
const (
	KindConfirmation = "confirmation"
	KindOwnerAlert   = "owner_alert"
	KindReminder     = "reminder"
)

// Config параметры доставки
type Config struct {
	OwnerEmail  string
	MaxAttempts int
	RetryDelay  time.Duration
}

// Service составляет и отправляет письма клиентам и владельцу
type Service struct {
	sender  Sender
	cfg     Config
	metrics Metrics
	logger  Logger
}

// NewService создает сервис уведомлений
func NewService(sender Sender, cfg Config, metrics Metrics, logger Logger) *Service {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &Service{
		sender:  sender,
		cfg:     cfg,
		metrics: metrics,
		logger:  logger,
	}
}

// NotifyBookingCreated отправляет подтверждение клиенту и оповещение владельцу.
// Ошибки только логируются: письма не влияют на результат бронирования.
func (s *Service) NotifyBookingCreated(ctx context.Context, booking *domain.Booking, extras []domain.ServiceExtra) {
	if err := s.SendConfirmation(ctx, booking, extras); err != nil {
		s.logger.Error("Failed to send confirmation email for booking_id=%d: %v", booking.ID, err)
	}
	if s.cfg.OwnerEmail == "" {
		return
	}
	if err := s.SendOwnerAlert(ctx, booking, extras); err != nil {
		s.logger.Error("Failed to send owner alert for booking_id=%d: %v", booking.ID, err)
	}
}

// SendConfirmation письмо клиенту о созданном бронировании
func (s *Service) SendConfirmation(ctx context.Context, booking *domain.Booking, extras []domain.ServiceExtra) error {
	view := newBookingView(booking, extras)
	html, err := render(confirmationHTML, view)
	if err != nil {
		return err
	}

	return s.deliver(ctx, KindConfirmation, mailer.Message{
		To:      booking.Email,
		ToName:  booking.FullName,
		Subject: fmt.Sprintf("Booking Confirmation #%d - %s", booking.ID, brandName),
		Text:    confirmationText(view),
		HTML:    html,
	})
}

// SendOwnerAlert оповещение владельца о новом бронировании
func (s *Service) SendOwnerAlert(ctx context.Context, booking *domain.Booking, extras []domain.ServiceExtra) error {
	view := newBookingView(booking, extras)
	html, err := render(ownerAlertHTML, view)
	if err != nil {
		return err
	}

	return s.deliver(ctx, KindOwnerAlert, mailer.Message{
		To:      s.cfg.OwnerEmail,
		Subject: fmt.Sprintf("New Booking Alert #%d - %s Cleaning", booking.ID, booking.ServiceType),
		Text:    ownerAlertText(view),
		HTML:    html,
	})
}

// SendReminder письмо-напоминание клиенту
func (s *Service) SendReminder(ctx context.Context, booking *domain.Booking, message string) error {
	view := newBookingView(booking, nil)
	view.Message = message
	html, err := render(reminderHTML, view)
	if err != nil {
		return err
	}

	return s.deliver(ctx, KindReminder, mailer.Message{
		To:      booking.Email,
		ToName:  booking.FullName,
		Subject: fmt.Sprintf("Reminder: your %s appointment #%d", view.ServiceName, booking.ID),
		Text:    fmt.Sprintf("Dear %s,\n\n%s\n\nThe %s Team\n", booking.FullName, message, brandName),
		HTML:    html,
	})
}

// deliver отправляет письмо с ограниченным числом повторов
func (s *Service) deliver(ctx context.Context, kind string, msg mailer.Message) error {
	var lastErr error

	for attempt := 1; attempt <= s.cfg.MaxAttempts; attempt++ {
		lastErr = s.sender.Send(ctx, msg)
		if lastErr == nil {
			s.metrics.IncEmail(kind, true)
			return nil
		}

		s.logger.Warn("Email %s to %s failed (attempt %d/%d): %v", kind, msg.To, attempt, s.cfg.MaxAttempts, lastErr)
		if attempt == s.cfg.MaxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			s.metrics.IncEmail(kind, false)
			return fmt.Errorf("%w: %v", ErrDeliveryFailed, ctx.Err())
		case <-time.After(s.cfg.RetryDelay):
		}
	}

	s.metrics.IncEmail(kind, false)
	return fmt.Errorf("%w: %s after %d attempts: %v", ErrDeliveryFailed, kind, s.cfg.MaxAttempts, lastErr)
}
