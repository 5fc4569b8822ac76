package domain

import "time"

// Room tally unit prices (GBP) and durations (minutes)
const (
	BedroomPrice         = 20.0
	BedroomMinutes       = 60
	BathroomPrice        = 25.0
	BathroomMinutes      = 60
	ToiletPrice          = 15.0
	ToiletMinutes        = 30
	LivingRoomPrice      = 25.0
	LivingRoomMinutes    = 60
	KitchenPrice         = 25.0
	KitchenMinutes       = 60
	UtilityRoomPrice     = 15.0
	UtilityRoomMinutes   = 30
	CarpetAreaPrice      = 35.0
	CarpetAreaMinutes    = 60
	RoomTallyMinPrice    = 60.0
	RoomTallyMinMinutes  = 120
	BedroomTierExtraHour = 1
)

// Tip percentages offered in the wizard
var TipPercentages = []int{0, 10, 15, 20}

// Business validation constants
const (
	DurationStepHours        = 0.5
	MaxDurationHours         = 12
	MaxRoomCount             = 20
	MaxExtraQuantity         = 10
	MaxSpecialInstructionLen = 2000
	MaxQuoteRequestLen       = 2000
	ReminderLeadTime         = 24 * time.Hour

	// MaxCustomTip верхняя граница произвольных чаевых, фунты
	MaxCustomTip = 500.0
	// MaxStoredAmount наибольшая сумма, помещающаяся в NUMERIC(10,2)
	MaxStoredAmount = 99999999.99
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
