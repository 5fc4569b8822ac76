// Package conflicts finds bookings on the same date whose time intervals overlap.
package conflicts

import "github.com/urinakcleaning/booking-service/internal/domain"

// Find returns every overlapping pair in bookings, in discovery order (i < j).
// Touching intervals (one ends when the next starts) are not a conflict.
func Find(bookings []*domain.Booking) []domain.ConflictPair {
	var pairs []domain.ConflictPair

	for i := 0; i < len(bookings); i++ {
		a := bookings[i]
		for j := i + 1; j < len(bookings); j++ {
			b := bookings[j]
			if !sameDate(a, b) {
				continue
			}

			startA, endA := interval(a)
			startB, endB := interval(b)

			// Интервалы пересекаются, если start1 < end2 AND start2 < end1
			start := max(startA, startB)
			end := min(endA, endB)
			if start < end {
				pairs = append(pairs, domain.ConflictPair{
					BookingA:       a,
					BookingB:       b,
					OverlapMinutes: end - start,
				})
			}
		}
	}

	return pairs
}

// BookingIDs returns the ids of all bookings taking part in at least one conflict
func BookingIDs(pairs []domain.ConflictPair) map[int64]struct{} {
	ids := make(map[int64]struct{}, len(pairs)*2)
	for _, p := range pairs {
		ids[p.BookingA.ID] = struct{}{}
		ids[p.BookingB.ID] = struct{}{}
	}
	return ids
}

func interval(b *domain.Booking) (int, int) {
	start := b.BookingTime.Minutes()
	return start, start + b.DurationMinutes()
}

func sameDate(a, b *domain.Booking) bool {
	ya, ma, da := a.BookingDate.Date()
	yb, mb, db := b.BookingDate.Date()
	return ya == yb && ma == mb && da == db
}
