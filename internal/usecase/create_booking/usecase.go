package create_booking

import (
	"context"
	"fmt"
	"time"

	"github.com/urinakcleaning/booking-service/internal/domain"
	"github.com/urinakcleaning/booking-service/internal/pricing"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	reminderRepo ReminderRepository
	extrasRepo   ExtrasRepository
	notifier     Notifier
	txManager    TransactionManager
	metrics      Metrics
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	reminderRepo ReminderRepository,
	extrasRepo ExtrasRepository,
	notifier Notifier,
	txManager TransactionManager,
	metrics Metrics,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		reminderRepo: reminderRepo,
		extrasRepo:   extrasRepo,
		notifier:     notifier,
		txManager:    txManager,
		metrics:      metrics,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Бронирование и напоминание за 24 часа сохраняются в одной транзакции,
// письма отправляются асинхронно после коммита.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: service=%s, date=%s, time=%s",
		req.Draft.ServiceType, req.Draft.BookingDate.Format(domain.DateFormat), req.Draft.BookingTime)

	// 1. Валидация входных данных
	entry, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время в часовом поясе бизнеса
	now := uc.timeProvider.Now().In(uc.location)

	// 3. Проверяем минимальный срок предварительной записи
	if err := validateNotice(req.Draft.BookingDate, now, entry.MinimumNoticeDays); err != nil {
		uc.logger.Warn("CreateBooking: notice validation failed: %v", err)
		return nil, err
	}

	// 4. Загружаем каталог доп. услуг и проверяем выбор
	extras, err := uc.extrasRepo.GetByServiceType(ctx, entry.Key)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get extras for %s: %v", entry.Key, err)
		return nil, fmt.Errorf("%w: failed to get extras: %v", ErrInternal, err)
	}
	if err := validateExtras(req.Draft.SelectedExtras, extras); err != nil {
		uc.logger.Warn("CreateBooking: %v", err)
		return nil, err
	}

	// 5. Считаем и фиксируем цену
	breakdown := pricing.Compute(req.Draft, extras)
	if err := validateTotal(breakdown); err != nil {
		uc.logger.Warn("CreateBooking: %v", err)
		return nil, err
	}

	booking := &domain.Booking{
		BookingDraft: req.Draft,
		Pricing:      pricing.Freeze(breakdown),
	}
	booking.DurationHours = bookedDurationHours(req.Draft, entry, breakdown)

	var reminder *domain.CustomerReminder

	// 6. Сохраняем бронирование и напоминание в одной транзакции
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}
		booking = created

		reminder, err = uc.reminderRepo.Create(txCtx, &domain.CustomerReminder{
			BookingID:   created.ID,
			Type:        domain.Reminder24Hour,
			Message:     domain.DefaultReminderMessage(created),
			ScheduledAt: domain.ReminderTime(created, uc.location),
			Status:      domain.ReminderPending,
			CreatedBy:   domain.SystemActorID,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to schedule reminder for booking id=%d: %v", created.ID, err)
			return fmt.Errorf("%w: failed to schedule reminder: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.metrics.IncBookingCreated(string(booking.ServiceType))
	uc.logger.Info("CreateBooking: successfully created booking id=%d, total=%s, reminder at %s",
		booking.ID, booking.Pricing.TotalPrice, reminder.ScheduledAt.Format(time.RFC3339))

	// 7. Письма не должны блокировать ответ и зависеть от отмены запроса
	go uc.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), booking, extras)

	return &Response{
		Booking:   booking,
		Breakdown: breakdown,
		Reminder:  reminder,
	}, nil
}
