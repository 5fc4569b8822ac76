package domain

// ConflictPair two bookings on the same date whose time intervals intersect
type ConflictPair struct {
	BookingA       *Booking
	BookingB       *Booking
	OverlapMinutes int
}
