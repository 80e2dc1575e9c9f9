package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	createBooking "github.com/m04kA/SMC-BarberBooking/internal/usecase/create_booking"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	ServiceID   string `json:"serviceId"`
	BarberID    string `json:"barberId"`
	Date        string `json:"date"`      // "2025-10-15"
	StartTime   string `json:"startTime"` // "10:30"
	ClientName  string `json:"clientName"`
	ClientPhone string `json:"clientPhone"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID          string `json:"id"`
	ClientName  string `json:"clientName"`
	ClientPhone string `json:"clientPhone"`
	ServiceID   string `json:"serviceId"`
	ServiceName string `json:"serviceName"`
	BarberID    string `json:"barberId"`
	BarberName  string `json:"barberName"`
	Date        string `json:"date"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Формат времени и обязательность полей проверяет use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	var date time.Time
	if r.Date != "" {
		parsed, err := time.Parse(domain.DateFormat, r.Date)
		if err != nil {
			return nil, err
		}
		date = parsed
	}

	return &createBooking.Request{
		ServiceID:   r.ServiceID,
		BarberID:    r.BarberID,
		Date:        date,
		StartTime:   r.StartTime,
		ClientName:  r.ClientName,
		ClientPhone: r.ClientPhone,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:          resp.ID,
		ClientName:  resp.ClientName,
		ClientPhone: resp.ClientPhone,
		ServiceID:   resp.ServiceID,
		ServiceName: resp.ServiceName,
		BarberID:    resp.BarberID,
		BarberName:  resp.BarberName,
		Date:        resp.StartTime.Format(domain.DateFormat),
		StartTime:   resp.StartTime.Format(domain.TimeFormat),
		EndTime:     resp.EndTime.Format(domain.TimeFormat),
		Status:      resp.Status,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
	}
}
