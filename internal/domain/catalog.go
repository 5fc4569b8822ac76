package domain

// ServiceType key of a cleaning offering in the catalog
type ServiceType string

const (
	ServiceGeneral    ServiceType = "general"
	ServiceDeep       ServiceType = "deep"
	ServiceTenancy    ServiceType = "tenancy"
	ServiceAirbnb     ServiceType = "airbnb"
	ServiceJetWashing ServiceType = "jet"
	ServiceCommercial ServiceType = "commercial"
)

// PricingCategory selects the pricing formula of a service
type PricingCategory int

const (
	// CategoryStandardHourly price = hourly rate × requested hours
	CategoryStandardHourly PricingCategory = iota + 1
	// CategoryRoomTally price and duration summed over room counts
	CategoryRoomTally
	// CategoryBedroomTiered hours derived from the bedroom count
	CategoryBedroomTiered
	// CategoryQuoteBased no computed base price, final price is quoted manually
	CategoryQuoteBased
)

func (c PricingCategory) String() string {
	switch c {
	case CategoryStandardHourly:
		return "standard_hourly"
	case CategoryRoomTally:
		return "room_tally"
	case CategoryBedroomTiered:
		return "bedroom_tiered"
	case CategoryQuoteBased:
		return "quote_based"
	default:
		return "unknown"
	}
}

// ServiceCatalogEntry immutable reference data for one service type
type ServiceCatalogEntry struct {
	Key                  ServiceType
	Name                 string
	ShortName            string
	BaseHourlyRate       float64
	MinimumDurationHours float64
	MinimumNoticeDays    int
	Category             PricingCategory
}

// IsQuoteBased returns true if the service awaits a manual quote
func (e ServiceCatalogEntry) IsQuoteBased() bool {
	return e.Category == CategoryQuoteBased
}

var catalog = map[ServiceType]ServiceCatalogEntry{
	ServiceGeneral: {
		Key: ServiceGeneral, Name: "General / Standard Cleaning", ShortName: "General Cleaning",
		BaseHourlyRate: 20, MinimumDurationHours: 2, MinimumNoticeDays: 2, Category: CategoryStandardHourly,
	},
	ServiceDeep: {
		Key: ServiceDeep, Name: "Deep Cleaning", ShortName: "Deep Cleaning",
		BaseHourlyRate: 30, MinimumDurationHours: 3, MinimumNoticeDays: 3, Category: CategoryRoomTally,
	},
	ServiceTenancy: {
		Key: ServiceTenancy, Name: "End of Tenancy Cleaning", ShortName: "End of Tenancy Cleaning",
		BaseHourlyRate: 30, MinimumDurationHours: 4, MinimumNoticeDays: 7, Category: CategoryRoomTally,
	},
	ServiceAirbnb: {
		Key: ServiceAirbnb, Name: "AirBnB Cleaning", ShortName: "AirBnB Cleaning",
		BaseHourlyRate: 20, MinimumDurationHours: 2, MinimumNoticeDays: 1, Category: CategoryBedroomTiered,
	},
	ServiceJetWashing: {
		Key: ServiceJetWashing, Name: "Jet Washing / Garden Cleaning", ShortName: "Jet Washing/Garden Cleaning",
		BaseHourlyRate: 0, MinimumDurationHours: 2, MinimumNoticeDays: 2, Category: CategoryQuoteBased,
	},
	ServiceCommercial: {
		Key: ServiceCommercial, Name: "Commercial Cleaning", ShortName: "Commercial Cleaning",
		BaseHourlyRate: 0, MinimumDurationHours: 3, MinimumNoticeDays: 3, Category: CategoryQuoteBased,
	},
}

// LookupService returns the catalog entry for a service type key
func LookupService(key ServiceType) (ServiceCatalogEntry, bool) {
	entry, ok := catalog[key]
	return entry, ok
}

// ServiceTypes lists catalog keys in display order
func ServiceTypes() []ServiceType {
	return []ServiceType{
		ServiceGeneral,
		ServiceDeep,
		ServiceTenancy,
		ServiceAirbnb,
		ServiceJetWashing,
		ServiceCommercial,
	}
}

// DisplayName returns the short service name, or the raw key for unknown types
func (s ServiceType) DisplayName() string {
	if entry, ok := catalog[s]; ok {
		return entry.ShortName
	}
	return string(s)
}
