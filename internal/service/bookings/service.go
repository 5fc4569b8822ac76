package bookings

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/urinakcleaning/booking-service/internal/conflicts"
	"github.com/urinakcleaning/booking-service/internal/domain"
	bookingRepo "github.com/urinakcleaning/booking-service/internal/infra/storage/booking"
	"github.com/urinakcleaning/booking-service/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	extrasRepo  ExtrasRepository
	metrics     Metrics
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	extrasRepo ExtrasRepository,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		extrasRepo:  extrasRepo,
		metrics:     metrics,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID для страницы подтверждения.
// Выбранные доп. услуги дополняются названиями и ценами из каталога.
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	var extras []domain.ServiceExtra
	if len(booking.SelectedExtras) > 0 {
		extras, err = s.extrasRepo.GetByServiceType(ctx, booking.ServiceType)
		if err != nil {
			// Без каталога показываем только id и количество
			s.logger.Warn("GetByID: failed to get extras for booking id=%d: %v", id, err)
			extras = nil
		}
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking, extras), nil
}

// ListForAdmin возвращает отфильтрованный список бронирований и конфликты.
// Конфликты всегда считаются по всем бронированиям, а не только по отфильтрованным.
func (s *Service) ListForAdmin(ctx context.Context, req *models.AdminBookingsRequest) (*models.AdminBookingsResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("ListForAdmin: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	s.logger.Info("ListForAdmin: search=%q, date=%v, serviceType=%v, conflictsOnly=%t",
		filter.Search, req.Date, req.ServiceType, filter.ConflictsOnly)

	all, err := s.bookingRepo.List(ctx, domain.AdminBookingsFilter{})
	if err != nil {
		s.logger.Error("ListForAdmin: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListForAdmin - repository error: %v", ErrInternal, err)
	}

	pairs := s.detect(all)

	filtered := all
	if filter.Search != "" || filter.Date != nil || filter.ServiceType != nil {
		filtered, err = s.bookingRepo.List(ctx, filter)
		if err != nil {
			s.logger.Error("ListForAdmin: repository error: %v", err)
			return nil, fmt.Errorf("%w: ListForAdmin - repository error: %v", ErrInternal, err)
		}
	}

	if filter.ConflictsOnly {
		ids := conflicts.BookingIDs(pairs)
		kept := make([]*domain.Booking, 0, len(ids))
		for _, b := range filtered {
			if _, ok := ids[b.ID]; ok {
				kept = append(kept, b)
			}
		}
		filtered = kept
	}

	s.logger.Info("ListForAdmin: returning %d of %d bookings, %d conflicts", len(filtered), len(all), len(pairs))
	return &models.AdminBookingsResponse{
		Bookings:  models.FromDomainBookingList(filtered).Bookings,
		Conflicts: models.FromDomainConflicts(pairs),
	}, nil
}

// GetConflicts возвращает все пары пересекающихся бронирований
func (s *Service) GetConflicts(ctx context.Context) (*models.ConflictListResponse, error) {
	all, err := s.bookingRepo.List(ctx, domain.AdminBookingsFilter{})
	if err != nil {
		s.logger.Error("GetConflicts: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetConflicts - repository error: %v", ErrInternal, err)
	}

	pairs := s.detect(all)
	s.logger.Info("GetConflicts: %d conflicts among %d bookings", len(pairs), len(all))

	return &models.ConflictListResponse{Conflicts: models.FromDomainConflicts(pairs)}, nil
}

// detect ищет конфликты в порядке создания (id по возрастанию), независимо от сортировки списка
func (s *Service) detect(all []*domain.Booking) []domain.ConflictPair {
	ordered := slices.Clone(all)
	slices.SortFunc(ordered, func(a, b *domain.Booking) int {
		return cmp.Compare(a.ID, b.ID)
	})

	pairs := conflicts.Find(ordered)
	if s.metrics != nil {
		s.metrics.SetConflictsDetected(len(pairs))
	}
	return pairs
}
