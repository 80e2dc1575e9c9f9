package get_available_slots

import (
	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-BarberBooking/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date            string          `json:"date"`
	BarberID        string          `json:"barberId"`
	BarberName      string          `json:"barberName,omitempty"`
	ServiceID       string          `json:"serviceId"`
	ServiceName     string          `json:"serviceName,omitempty"`
	DurationMinutes int             `json:"durationMinutes,omitempty"`
	Slots           []AvailableSlot `json:"slots"`
	Message         string          `json:"message,omitempty"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	StartTime string `json:"startTime"` // HH:MM
	EndTime   string `json:"endTime"`   // HH:MM
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			StartTime: slot.StartTime.Format(domain.TimeFormat),
			EndTime:   slot.EndTime.Format(domain.TimeFormat),
		}
	}

	return &AvailableSlotsResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		BarberID:        resp.BarberID,
		BarberName:      resp.BarberName,
		ServiceID:       resp.ServiceID,
		ServiceName:     resp.ServiceName,
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
	}
}

// noAvailabilityResponse ответ для дня без свободных слотов
func noAvailabilityResponse(req *getAvailableSlots.Request, message string) *AvailableSlotsResponse {
	return &AvailableSlotsResponse{
		Date:      req.Date.Format(domain.DateFormat),
		BarberID:  req.BarberID,
		ServiceID: req.ServiceID,
		Slots:     []AvailableSlot{},
		Message:   message,
	}
}
