package pricing

import "github.com/urinakcleaning/booking-service/internal/domain"

type roomRate struct {
	count   int
	price   float64
	minutes int
}

// roomTally sums per-room prices and durations, each floored independently
func roomTally(d domain.BookingDraft) (float64, int) {
	rooms := []roomRate{
		{d.Bedrooms, domain.BedroomPrice, domain.BedroomMinutes},
		{d.Bathrooms, domain.BathroomPrice, domain.BathroomMinutes},
		{d.Toilets, domain.ToiletPrice, domain.ToiletMinutes},
		{d.LivingRooms, domain.LivingRoomPrice, domain.LivingRoomMinutes},
		{d.Kitchen, domain.KitchenPrice, domain.KitchenMinutes},
		{d.UtilityRoom, domain.UtilityRoomPrice, domain.UtilityRoomMinutes},
		{d.CarpetCleaningAreas, domain.CarpetAreaPrice, domain.CarpetAreaMinutes},
	}

	var price float64
	var minutes int
	for _, r := range rooms {
		if r.count <= 0 {
			continue
		}
		price += r.price * float64(r.count)
		minutes += r.minutes * r.count
	}

	if price < domain.RoomTallyMinPrice {
		price = domain.RoomTallyMinPrice
	}
	if minutes < domain.RoomTallyMinMinutes {
		minutes = domain.RoomTallyMinMinutes
	}
	return price, minutes
}
