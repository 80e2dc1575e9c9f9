package models

import (
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// AppointmentResponse данные записи для панели администратора
type AppointmentResponse struct {
	ID          string `json:"id"`
	ClientName  string `json:"clientName"`
	ClientPhone string `json:"clientPhone"`
	ServiceID   string `json:"serviceId"`
	ServiceName string `json:"serviceName"`
	BarberID    string `json:"barberId"`
	BarberName  string `json:"barberName"`
	StartTime   string `json:"startTime"` // RFC3339
	EndTime     string `json:"endTime"`   // RFC3339
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
	CanConfirm  bool   `json:"canConfirm"`
	CanReject   bool   `json:"canReject"`
}

// FromDomainAppointment конвертирует доменную модель в ответ
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:          a.ID,
		ClientName:  a.ClientName,
		ClientPhone: a.ClientPhone,
		ServiceID:   a.ServiceID,
		ServiceName: a.ServiceName,
		BarberID:    a.BarberID,
		BarberName:  a.BarberName,
		StartTime:   a.StartTime.Format(time.RFC3339),
		EndTime:     a.EndTime.Format(time.RFC3339),
		Status:      string(a.Status),
		CreatedAt:   a.CreatedAt.Format(time.RFC3339),
		CanConfirm:  a.CanBeConfirmed(),
		CanReject:   a.CanBeRejected(),
	}
}
