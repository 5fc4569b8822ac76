package domain

// ServiceExtra optional add-on offered for a service type
type ServiceExtra struct {
	ID           int64
	ServiceType  ServiceType
	Name         string
	Description  string
	UnitPrice    float64
	DurationText *string // "1hr 30mins", "45mins", "1hr"
}

// SelectedExtra an extra picked in the wizard with its quantity
type SelectedExtra struct {
	ExtraID  int64 `json:"extraId"`
	Quantity int   `json:"quantity"`
}
