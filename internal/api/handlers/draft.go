package handlers

import (
	"errors"
	"time"

	"github.com/urinakcleaning/booking-service/internal/domain"
	"github.com/urinakcleaning/booking-service/pkg/types"
)

var (
	// ErrInvalidDateFormat дата не в формате YYYY-MM-DD
	ErrInvalidDateFormat = errors.New("invalid bookingDate, expected YYYY-MM-DD")

	// ErrInvalidTimeFormat время не в формате HH:MM
	ErrInvalidTimeFormat = errors.New("invalid bookingTime, expected HH:MM")
)

// TipRequest чаевые в черновике
type TipRequest struct {
	Type         string `json:"type"`                   // percentage | custom
	Percentage   int    `json:"percentage,omitempty"`   // 0, 10, 15, 20
	CustomAmount string `json:"customAmount,omitempty"` // "7.50"
}

// SelectedExtraRequest выбранная доп. услуга
type SelectedExtraRequest struct {
	ExtraID  int64 `json:"extraId"`
	Quantity int   `json:"quantity"`
}

// BookingDraftRequest черновик бронирования из мастера.
// Используется и для пересчета цены, и для создания бронирования.
type BookingDraftRequest struct {
	ServiceType   string  `json:"serviceType"`
	Frequency     string  `json:"frequency"`
	DurationHours float64 `json:"duration"`

	Bedrooms            int  `json:"bedrooms"`
	Bathrooms           int  `json:"bathrooms"`
	Toilets             int  `json:"toilets"`
	LivingRooms         int  `json:"livingRooms"`
	Kitchen             int  `json:"kitchen"`
	UtilityRoom         int  `json:"utilityRoom"`
	CarpetCleaningAreas int  `json:"carpetCleaningAreas"`
	SquareFootage       int  `json:"squareFootage"`
	NotifyMoreTime      bool `json:"notifyMoreTime"`

	PropertyType        string `json:"propertyType"`
	PropertyStatus      string `json:"propertyStatus"`
	SurfaceType         string `json:"surfaceType"`
	SurfaceMaterial     string `json:"surfaceMaterial"`
	QuoteRequest        string `json:"quoteRequest"`
	SpecialInstructions string `json:"specialInstructions"`

	BookingDate string `json:"bookingDate"` // "2025-10-15"
	BookingTime string `json:"bookingTime"` // "10:00"

	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address1 string `json:"address1"`
	Address2 string `json:"address2"`
	City     string `json:"city"`
	Postcode string `json:"postcode"`

	SMSReminders   bool                   `json:"smsReminders"`
	Tip            TipRequest             `json:"tip"`
	SelectedExtras []SelectedExtraRequest `json:"selectedExtras"`
}

// ToDomainDraft конвертирует запрос в черновик.
// Пустые дата и время допустимы: обязательность проверяет use case.
func (r *BookingDraftRequest) ToDomainDraft() (domain.BookingDraft, error) {
	draft := domain.BookingDraft{
		ServiceType:         domain.ServiceType(r.ServiceType),
		Frequency:           domain.Frequency(r.Frequency),
		DurationHours:       r.DurationHours,
		Bedrooms:            r.Bedrooms,
		Bathrooms:           r.Bathrooms,
		Toilets:             r.Toilets,
		LivingRooms:         r.LivingRooms,
		Kitchen:             r.Kitchen,
		UtilityRoom:         r.UtilityRoom,
		CarpetCleaningAreas: r.CarpetCleaningAreas,
		SquareFootage:       r.SquareFootage,
		NotifyMoreTime:      r.NotifyMoreTime,
		PropertyType:        r.PropertyType,
		PropertyStatus:      r.PropertyStatus,
		SurfaceType:         r.SurfaceType,
		SurfaceMaterial:     r.SurfaceMaterial,
		QuoteRequest:        r.QuoteRequest,
		SpecialInstructions: r.SpecialInstructions,
		FullName:            r.FullName,
		Email:               r.Email,
		Phone:               r.Phone,
		Address1:            r.Address1,
		Address2:            r.Address2,
		City:                r.City,
		Postcode:            r.Postcode,
		SMSReminders:        r.SMSReminders,
		Tip: domain.TipSpec{
			Kind:         domain.TipKind(r.Tip.Type),
			Percentage:   r.Tip.Percentage,
			CustomAmount: r.Tip.CustomAmount,
		},
	}

	if len(r.SelectedExtras) > 0 {
		draft.SelectedExtras = make([]domain.SelectedExtra, 0, len(r.SelectedExtras))
		for _, e := range r.SelectedExtras {
			draft.SelectedExtras = append(draft.SelectedExtras, domain.SelectedExtra{ExtraID: e.ExtraID, Quantity: e.Quantity})
		}
	}

	if r.BookingDate != "" {
		date, err := time.Parse(domain.DateFormat, r.BookingDate)
		if err != nil {
			return draft, ErrInvalidDateFormat
		}
		draft.BookingDate = date
	}

	if r.BookingTime != "" {
		ts, err := types.NewTimeStringFromString(r.BookingTime)
		if err != nil {
			return draft, ErrInvalidTimeFormat
		}
		draft.BookingTime = ts
	}

	return draft, nil
}
