package get_available_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-BarberBooking/internal/usecase/get_available_slots"
)

const (
	msgMissingParams   = "выберите барбера, услугу и дату"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgDateInPast      = "нельзя записаться на прошедшую дату"
	msgServiceNotFound = "услуга не найдена"
	msgBarberNotFound  = "барбер не найден"
	msgNoAvailability  = "на этот день нет свободного времени, выберите другую дату"
	msgInvalidService  = "у услуги некорректная длительность"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/barbers/{barberId}/available-slots?serviceId=...&date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	barberID := mux.Vars(r)["barberId"]
	serviceID := r.URL.Query().Get("serviceId")
	dateStr := r.URL.Query().Get("date")

	if barberID == "" || serviceID == "" || dateStr == "" {
		h.logger.Warn("GET /barbers/{id}/available-slots - Missing params: barber=%q, service=%q, date=%q",
			barberID, serviceID, dateStr)
		handlers.RespondBadRequest(w, msgMissingParams)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /barbers/{id}/available-slots - Invalid date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	req := &getAvailableSlots.Request{
		BarberID:  barberID,
		ServiceID: serviceID,
		Date:      date,
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrNoAvailability):
			h.logger.Info("GET /barbers/{id}/available-slots - No availability: barber=%s, date=%s", barberID, dateStr)
			handlers.RespondJSON(w, http.StatusOK, noAvailabilityResponse(req, msgNoAvailability))

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /barbers/{id}/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidService)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /barbers/{id}/available-slots - Date in past: barber=%s, date=%s", barberID, dateStr)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /barbers/{id}/available-slots - Service not found: service=%s", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrBarberNotFound):
			h.logger.Warn("GET /barbers/{id}/available-slots - Barber not found: barber=%s", barberID)
			handlers.RespondNotFound(w, msgBarberNotFound)

		default:
			h.logger.Error("GET /barbers/{id}/available-slots - Failed to get slots: barber=%s, service=%s, date=%s, error=%v",
				barberID, serviceID, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /barbers/{id}/available-slots - %d slots: barber=%s, service=%s, date=%s",
		len(result.Slots), barberID, serviceID, dateStr)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
