package reminders

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/urinakcleaning/booking-service/internal/domain"
	bookingRepo "github.com/urinakcleaning/booking-service/internal/infra/storage/booking"
	"github.com/urinakcleaning/booking-service/internal/service/reminders/models"
)

// Service сервис напоминаний клиентам
type Service struct {
	reminderRepo ReminderRepository
	bookingRepo  BookingRepository
	sender       Sender
	metrics      Metrics
	location     *time.Location
	batchSize    int
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса напоминаний.
// batchSize ограничивает количество напоминаний за один проход ProcessPending.
func NewService(
	reminderRepo ReminderRepository,
	bookingRepo BookingRepository,
	sender Sender,
	metrics Metrics,
	location *time.Location,
	batchSize int,
	logger Logger,
) *Service {
	return &Service{
		reminderRepo: reminderRepo,
		bookingRepo:  bookingRepo,
		sender:       sender,
		metrics:      metrics,
		location:     location,
		batchSize:    batchSize,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Create планирует напоминание за 24 часа до бронирования
func (s *Service) Create(ctx context.Context, req *models.CreateReminderRequest) (*models.ReminderResponse, error) {
	s.logger.Info("Create: reminder for booking id=%d by admin=%d", req.BookingID, req.AdminID)

	message := strings.TrimSpace(req.CustomMessage)
	if len(message) > models.MaxMessageLength {
		return nil, fmt.Errorf("%w: message must be at most %d characters", ErrInvalidInput, models.MaxMessageLength)
	}

	booking, err := s.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Create: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Create: repository error for booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	if message == "" {
		message = domain.DefaultReminderMessage(booking)
	}

	created, err := s.reminderRepo.Create(ctx, &domain.CustomerReminder{
		BookingID:   booking.ID,
		Type:        domain.ReminderCustom,
		Message:     message,
		ScheduledAt: domain.ReminderTime(booking, s.location),
		Status:      domain.ReminderPending,
		CreatedBy:   req.AdminID,
	})
	if err != nil {
		s.logger.Error("Create: failed to create reminder for booking id=%d: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: reminder id=%d scheduled for %s", created.ID, created.ScheduledAt.Format(time.RFC3339))
	return models.FromDomainReminder(created), nil
}

// CreateMissing создает напоминания для будущих бронирований, у которых их нет
func (s *Service) CreateMissing(ctx context.Context, adminID int64) (*models.GenerateResponse, error) {
	now := s.timeProvider.Now().In(s.location)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.location)

	upcoming, err := s.bookingRepo.ListUpcomingWithoutReminder(ctx, today)
	if err != nil {
		s.logger.Error("CreateMissing: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateMissing - repository error: %v", ErrInternal, err)
	}

	created := 0
	for _, b := range upcoming {
		// Бронирования сегодня, которые уже начались, пропускаем
		if !b.StartsAt(s.location).After(now) {
			continue
		}

		_, err := s.reminderRepo.Create(ctx, &domain.CustomerReminder{
			BookingID:   b.ID,
			Type:        domain.Reminder24Hour,
			Message:     domain.DefaultReminderMessage(b),
			ScheduledAt: domain.ReminderTime(b, s.location),
			Status:      domain.ReminderPending,
			CreatedBy:   adminID,
		})
		if err != nil {
			s.logger.Error("CreateMissing: failed to create reminder for booking id=%d: %v", b.ID, err)
			return nil, fmt.Errorf("%w: CreateMissing - repository error: %v", ErrInternal, err)
		}
		created++
	}

	s.logger.Info("CreateMissing: created %d reminders", created)
	return &models.GenerateResponse{Created: created}, nil
}

// List возвращает все напоминания, новые сверху
func (s *Service) List(ctx context.Context) (*models.ReminderListResponse, error) {
	list, err := s.reminderRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainReminderList(list), nil
}

// ProcessPending отправляет наступившие напоминания.
// Напоминание без бронирования или с ошибкой отправки помечается failed,
// при ошибке чтения бронирования остается pending до следующего прохода.
func (s *Service) ProcessPending(ctx context.Context) (*models.ProcessResult, error) {
	now := s.timeProvider.Now()

	pending, err := s.reminderRepo.GetPending(ctx, now, s.batchSize)
	if err != nil {
		s.logger.Error("ProcessPending: repository error: %v", err)
		return nil, fmt.Errorf("%w: ProcessPending - repository error: %v", ErrInternal, err)
	}

	result := &models.ProcessResult{}
	for _, r := range pending {
		if ctx.Err() != nil {
			break
		}

		status := s.processOne(ctx, r)
		if status == "" {
			result.Skipped++
			continue
		}

		var sentAt *time.Time
		if status == domain.ReminderSent {
			at := s.timeProvider.Now()
			sentAt = &at
		}
		if err := s.reminderRepo.UpdateStatus(ctx, r.ID, status, sentAt); err != nil {
			// Письмо могло уйти, но статус не сохранен: следующий проход отправит его повторно
			s.logger.Error("ProcessPending: failed to update reminder id=%d to %s: %v", r.ID, status, err)
			result.Skipped++
			continue
		}

		if s.metrics != nil {
			s.metrics.IncReminderProcessed(string(status))
		}
		if status == domain.ReminderSent {
			result.Sent++
		} else {
			result.Failed++
		}
	}

	if len(pending) > 0 {
		s.logger.Info("ProcessPending: sent=%d, failed=%d, skipped=%d", result.Sent, result.Failed, result.Skipped)
	}
	return result, nil
}

// processOne возвращает итоговый статус напоминания или "" если его нужно оставить pending
func (s *Service) processOne(ctx context.Context, r *domain.CustomerReminder) domain.ReminderStatus {
	booking, err := s.bookingRepo.GetByID(ctx, r.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("ProcessPending: booking id=%d for reminder id=%d not found", r.BookingID, r.ID)
			return domain.ReminderFailed
		}
		s.logger.Error("ProcessPending: failed to get booking id=%d: %v", r.BookingID, err)
		return ""
	}

	if err := s.sender.SendReminder(ctx, booking, r.Message); err != nil {
		s.logger.Warn("ProcessPending: failed to send reminder id=%d: %v", r.ID, err)
		return domain.ReminderFailed
	}
	return domain.ReminderSent
}
