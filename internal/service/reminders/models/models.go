package models

import (
	"time"

	"github.com/urinakcleaning/booking-service/internal/domain"
)

// MaxMessageLength предельная длина текста напоминания
const MaxMessageLength = 1000

// Request модели

// CreateReminderRequest запрос на создание напоминания администратором
type CreateReminderRequest struct {
	AdminID       int64  `json:"-"`
	BookingID     int64  `json:"-"`
	CustomMessage string `json:"customMessage,omitempty"` // Пусто = стандартный текст
}

// Response модели

// ReminderResponse ответ с данными напоминания
type ReminderResponse struct {
	ID          int64      `json:"id"`
	BookingID   int64      `json:"bookingId"`
	Type        string     `json:"reminderType"`
	Message     string     `json:"message"`
	ScheduledAt time.Time  `json:"scheduledFor"`
	SentAt      *time.Time `json:"sentAt,omitempty"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	CreatedBy   int64      `json:"createdBy"`
}

// ReminderListResponse ответ со списком напоминаний
type ReminderListResponse struct {
	Reminders []ReminderResponse `json:"reminders"`
}

// GenerateResponse результат создания недостающих напоминаний
type GenerateResponse struct {
	Created int `json:"created"`
}

// ProcessResult результат одного прохода обработки очереди
type ProcessResult struct {
	Sent    int
	Failed  int
	Skipped int
}

// FromDomainReminder конвертирует domain модель в DTO
func FromDomainReminder(r *domain.CustomerReminder) *ReminderResponse {
	if r == nil {
		return nil
	}
	return &ReminderResponse{
		ID:          r.ID,
		BookingID:   r.BookingID,
		Type:        string(r.Type),
		Message:     r.Message,
		ScheduledAt: r.ScheduledAt,
		SentAt:      r.SentAt,
		Status:      string(r.Status),
		CreatedAt:   r.CreatedAt,
		CreatedBy:   r.CreatedBy,
	}
}

// FromDomainReminderList конвертирует список domain моделей в DTO
func FromDomainReminderList(list []*domain.CustomerReminder) *ReminderListResponse {
	resp := &ReminderListResponse{Reminders: make([]ReminderResponse, 0, len(list))}
	for _, r := range list {
		if item := FromDomainReminder(r); item != nil {
			resp.Reminders = append(resp.Reminders, *item)
		}
	}
	return resp
}
