package create_booking

import (
	"time"

	bookingModels "github.com/urinakcleaning/booking-service/internal/service/bookings/models"
	createBooking "github.com/urinakcleaning/booking-service/internal/usecase/create_booking"
)

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	Booking              *bookingModels.BookingResponse `json:"booking"`
	ReminderScheduledFor *time.Time                     `json:"reminderScheduledFor,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	out := &CreateBookingResponse{
		Booking: bookingModels.FromDomainBooking(resp.Booking, nil),
	}
	if resp.Reminder != nil {
		at := resp.Reminder.ScheduledAt
		out.ReminderScheduledFor = &at
	}
	return out
}
