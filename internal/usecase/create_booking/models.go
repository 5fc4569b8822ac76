package create_booking

import "github.com/urinakcleaning/booking-service/internal/domain"

// Request модель запроса на создание бронирования
type Request struct {
	Draft domain.BookingDraft // Заполненный черновик из мастера бронирования
}

// Response модель ответа с созданным бронированием
type Response struct {
	Booking   *domain.Booking          // Сохранённое бронирование с зафиксированной ценой
	Breakdown domain.PriceBreakdown    // Расчёт, из которого получена цена
	Reminder  *domain.CustomerReminder // Запланированное напоминание за 24 часа
}
