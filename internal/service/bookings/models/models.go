package models

import (
	"errors"
	"time"

	"github.com/urinakcleaning/booking-service/internal/domain"
)

var (
	// ErrInvalidDate возвращается при некорректной дате фильтра
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

	// ErrInvalidServiceType возвращается при неизвестном типе услуги в фильтре
	ErrInvalidServiceType = errors.New("unknown service type")

	// ErrInvalidStatus возвращается при неизвестном значении status
	ErrInvalidStatus = errors.New("status must be all or conflicts")
)

// Значения параметра status списка бронирований
const (
	StatusAll       = "all"
	StatusConflicts = "conflicts"
)

// Request модели

// AdminBookingsRequest параметры списка бронирований в админ-панели
type AdminBookingsRequest struct {
	Search      string  `json:"search,omitempty"`
	Date        *string `json:"date,omitempty"`        // "2025-10-15"
	ServiceType *string `json:"serviceType,omitempty"` // Ключ услуги
	Status      string  `json:"status,omitempty"`      // all | conflicts
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *AdminBookingsRequest) ToDomainFilter() (domain.AdminBookingsFilter, error) {
	filter := domain.AdminBookingsFilter{Search: r.Search}

	if r.Date != nil && *r.Date != "" {
		date, err := time.Parse(domain.DateFormat, *r.Date)
		if err != nil {
			return filter, ErrInvalidDate
		}
		filter.Date = &date
	}

	if r.ServiceType != nil && *r.ServiceType != "" {
		st := domain.ServiceType(*r.ServiceType)
		if _, ok := domain.LookupService(st); !ok {
			return filter, ErrInvalidServiceType
		}
		filter.ServiceType = &st
	}

	switch r.Status {
	case "", StatusAll:
	case StatusConflicts:
		filter.ConflictsOnly = true
	default:
		return filter, ErrInvalidStatus
	}

	return filter, nil
}

// Response модели

// SelectedExtraResponse выбранная доп. услуга
type SelectedExtraResponse struct {
	ExtraID   int64    `json:"extraId"`
	Quantity  int      `json:"quantity"`
	Name      string   `json:"name,omitempty"`
	UnitPrice *float64 `json:"unitPrice,omitempty"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID            int64   `json:"id"`
	ServiceType   string  `json:"serviceType"`
	ServiceName   string  `json:"serviceName"`
	Frequency     string  `json:"frequency"`
	DurationHours float64 `json:"durationHours"`

	Bedrooms            int  `json:"bedrooms"`
	Bathrooms           int  `json:"bathrooms"`
	Toilets             int  `json:"toilets"`
	LivingRooms         int  `json:"livingRooms"`
	Kitchen             int  `json:"kitchen"`
	UtilityRoom         int  `json:"utilityRoom"`
	CarpetCleaningAreas int  `json:"carpetCleaningAreas"`
	SquareFootage       int  `json:"squareFootage"`
	NotifyMoreTime      bool `json:"notifyMoreTime"`

	PropertyType        string `json:"propertyType,omitempty"`
	PropertyStatus      string `json:"propertyStatus,omitempty"`
	SurfaceType         string `json:"surfaceType,omitempty"`
	SurfaceMaterial     string `json:"surfaceMaterial,omitempty"`
	QuoteRequest        string `json:"quoteRequest,omitempty"`
	SpecialInstructions string `json:"specialInstructions,omitempty"`

	BookingDate string `json:"bookingDate"` // "2025-10-15"
	BookingTime string `json:"bookingTime"` // "10:00"

	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address1 string `json:"address1"`
	Address2 string `json:"address2,omitempty"`
	City     string `json:"city"`
	Postcode string `json:"postcode"`

	SMSReminders   bool                    `json:"smsReminders"`
	SelectedExtras []SelectedExtraResponse `json:"selectedExtras"`

	// Зафиксированная цена
	BasePrice            string `json:"basePrice"`
	ExtrasTotal          string `json:"extrasTotal"`
	TipAmount            string `json:"tipAmount"`
	TotalPrice           string `json:"totalPrice"`
	TotalDurationMinutes int    `json:"totalDurationMinutes"`
	QuoteBased           bool   `json:"quoteBased"`

	CreatedAt time.Time `json:"createdAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// ConflictResponse пара пересекающихся бронирований
type ConflictResponse struct {
	BookingA       BookingResponse `json:"bookingA"`
	BookingB       BookingResponse `json:"bookingB"`
	OverlapMinutes int             `json:"overlapMinutes"`
}

// ConflictListResponse ответ со списком конфликтов
type ConflictListResponse struct {
	Conflicts []ConflictResponse `json:"conflicts"`
}

// AdminBookingsResponse список бронирований и конфликты по всем бронированиям
type AdminBookingsResponse struct {
	Bookings  []BookingResponse  `json:"bookings"`
	Conflicts []ConflictResponse `json:"conflicts"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO.
// extras может быть nil, тогда у доп. услуг остаются только id и количество.
func FromDomainBooking(b *domain.Booking, extras []domain.ServiceExtra) *BookingResponse {
	if b == nil {
		return nil
	}

	byID := make(map[int64]domain.ServiceExtra, len(extras))
	for _, e := range extras {
		byID[e.ID] = e
	}

	selected := make([]SelectedExtraResponse, 0, len(b.SelectedExtras))
	for _, sel := range b.SelectedExtras {
		item := SelectedExtraResponse{ExtraID: sel.ExtraID, Quantity: sel.Quantity}
		if e, ok := byID[sel.ExtraID]; ok {
			price := e.UnitPrice
			item.Name = e.Name
			item.UnitPrice = &price
		}
		selected = append(selected, item)
	}

	return &BookingResponse{
		ID:                   b.ID,
		ServiceType:          string(b.ServiceType),
		ServiceName:          b.ServiceType.DisplayName(),
		Frequency:            string(b.Frequency),
		DurationHours:        b.DurationHours,
		Bedrooms:             b.Bedrooms,
		Bathrooms:            b.Bathrooms,
		Toilets:              b.Toilets,
		LivingRooms:          b.LivingRooms,
		Kitchen:              b.Kitchen,
		UtilityRoom:          b.UtilityRoom,
		CarpetCleaningAreas:  b.CarpetCleaningAreas,
		SquareFootage:        b.SquareFootage,
		NotifyMoreTime:       b.NotifyMoreTime,
		PropertyType:         b.PropertyType,
		PropertyStatus:       b.PropertyStatus,
		SurfaceType:          b.SurfaceType,
		SurfaceMaterial:      b.SurfaceMaterial,
		QuoteRequest:         b.QuoteRequest,
		SpecialInstructions:  b.SpecialInstructions,
		BookingDate:          b.BookingDate.Format(domain.DateFormat),
		BookingTime:          b.BookingTime.String(),
		FullName:             b.FullName,
		Email:                b.Email,
		Phone:                b.Phone,
		Address1:             b.Address1,
		Address2:             b.Address2,
		City:                 b.City,
		Postcode:             b.Postcode,
		SMSReminders:         b.SMSReminders,
		SelectedExtras:       selected,
		BasePrice:            b.Pricing.BasePrice,
		ExtrasTotal:          b.Pricing.ExtrasTotal,
		TipAmount:            b.Pricing.TipAmount,
		TotalPrice:           b.Pricing.TotalPrice,
		TotalDurationMinutes: b.Pricing.TotalDurationMinutes,
		QuoteBased:           b.Pricing.QuoteBased,
		CreatedAt:            b.CreatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking, nil); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// FromDomainConflicts конвертирует пары конфликтов в DTO, сохраняя порядок
func FromDomainConflicts(pairs []domain.ConflictPair) []ConflictResponse {
	resp := make([]ConflictResponse, 0, len(pairs))
	for _, p := range pairs {
		resp = append(resp, ConflictResponse{
			BookingA:       *FromDomainBooking(p.BookingA, nil),
			BookingB:       *FromDomainBooking(p.BookingB, nil),
			OverlapMinutes: p.OverlapMinutes,
		})
	}
	return resp
}
