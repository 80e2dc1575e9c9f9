package notifications

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// EventTypeAppointmentCreated тип события о новой записи
const EventTypeAppointmentCreated = "appointment.created"

// AppointmentEvent событие о новой записи для внешних получателей
type AppointmentEvent struct {
	EventID     string           `json:"event_id"`
	EventType   string           `json:"event_type"`
	OccurredAt  time.Time        `json:"occurred_at"`
	Appointment AppointmentModel `json:"appointment"`
}

// AppointmentModel запись в составе события
type AppointmentModel struct {
	ID          string    `json:"id"`
	ClientName  string    `json:"client_name"`
	ClientPhone string    `json:"client_phone"`
	ServiceID   string    `json:"service_id"`
	ServiceName string    `json:"service_name"`
	BarberID    string    `json:"barber_id"`
	BarberName  string    `json:"barber_name"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Status      string    `json:"status"`
}

// NewAppointmentEvent собирает событие о новой записи
func NewAppointmentEvent(a *domain.Appointment, occurredAt time.Time) *AppointmentEvent {
	return &AppointmentEvent{
		EventID:    uuid.NewString(),
		EventType:  EventTypeAppointmentCreated,
		OccurredAt: occurredAt.UTC(),
		Appointment: AppointmentModel{
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
		},
	}
}
