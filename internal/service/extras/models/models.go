package models

import "github.com/urinakcleaning/booking-service/internal/domain"

// ExtraResponse доп. услуга в каталоге
type ExtraResponse struct {
	ID           int64   `json:"id"`
	ServiceType  string  `json:"serviceType"`
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	Price        float64 `json:"price"`
	DurationText *string `json:"duration,omitempty"`
}

// ExtraListResponse доп. услуги одного типа услуги
type ExtraListResponse struct {
	ServiceType string          `json:"serviceType"`
	ServiceName string          `json:"serviceName"`
	Extras      []ExtraResponse `json:"extras"`
}

// FromDomainExtras конвертирует каталог в DTO
func FromDomainExtras(serviceType domain.ServiceType, extras []domain.ServiceExtra) *ExtraListResponse {
	resp := &ExtraListResponse{
		ServiceType: string(serviceType),
		ServiceName: serviceType.DisplayName(),
		Extras:      make([]ExtraResponse, 0, len(extras)),
	}
	for _, e := range extras {
		resp.Extras = append(resp.Extras, ExtraResponse{
			ID:           e.ID,
			ServiceType:  string(e.ServiceType),
			Name:         e.Name,
			Description:  e.Description,
			Price:        e.UnitPrice,
			DurationText: e.DurationText,
		})
	}
	return resp
}
