package models

import "github.com/m04kA/SMC-BarberBooking/internal/domain"

// ServiceResponse услуга каталога
type ServiceResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
}

// BarberResponse барбер с рабочими часами (умолчания уже подставлены)
type BarberResponse struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	WorkingHoursStart int    `json:"workingHoursStart"`
	WorkingHoursEnd   int    `json:"workingHoursEnd"`
}

func FromDomainServices(services []*domain.Service) []ServiceResponse {
	result := make([]ServiceResponse, len(services))
	for i, s := range services {
		result[i] = ServiceResponse{
			ID:              s.ID,
			Name:            s.Name,
			Price:           s.Price,
			DurationMinutes: s.DurationMinutes,
		}
	}
	return result
}

func FromDomainBarbers(barbers []*domain.Barber) []BarberResponse {
	result := make([]BarberResponse, len(barbers))
	for i, b := range barbers {
		start, end := b.WorkingHours()
		result[i] = BarberResponse{
			ID:                b.ID,
			Name:              b.Name,
			WorkingHoursStart: start,
			WorkingHoursEnd:   end,
		}
	}
	return result
}
