package create_booking

import (
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// Request модель запроса на создание записи (заполненный выбор мастера записи)
type Request struct {
	ServiceID   string
	BarberID    string
	Date        time.Time // учитываются только год, месяц и день
	StartTime   string    // "HH:MM"
	ClientName  string
	ClientPhone string
}

// Response модель ответа с созданной записью
type Response struct {
	ID          string
	ClientName  string
	ClientPhone string
	ServiceID   string
	ServiceName string
	BarberID    string
	BarberName  string
	StartTime   time.Time
	EndTime     time.Time
	Status      string
	BarberDate  string
	CreatedAt   time.Time
}

// Policy бизнес-настройки создания записи
type Policy struct {
	// InitialStatus статус новой записи: pending (ждет подтверждения) или confirmed
	InitialStatus domain.AppointmentStatus
	// Location локальная зона салона
	Location *time.Location
}

func fromDomain(a *domain.Appointment) *Response {
	return &Response{
		ID:          a.ID,
		ClientName:  a.ClientName,
		ClientPhone: a.ClientPhone,
		ServiceID:   a.ServiceID,
		ServiceName: a.ServiceName,
		BarberID:    a.BarberID,
		BarberName:  a.BarberName,
		StartTime:   a.StartTime,
		EndTime:     a.EndTime,
		Status:      string(a.Status),
		BarberDate:  a.BarberDate,
		CreatedAt:   a.CreatedAt,
	}
}
