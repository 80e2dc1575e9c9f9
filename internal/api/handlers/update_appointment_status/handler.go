package update_appointment_status

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBooking/internal/api/middleware"
	"github.com/m04kA/SMC-BarberBooking/internal/service/appointments"
)

const (
	msgInvalidAppointmentID = "некорректный ID записи"
	msgNotFound             = "запись не найдена"
	msgNotPending           = "подтвердить или отклонить можно только ожидающую запись"
	msgUpdateFailed         = "не удалось обновить статус, попробуйте еще раз"
)

// StatusResponse ответ на запрос смены статуса
// Новое состояние записи приходит в панель через поток изменений
type StatusResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Confirm PATCH /api/v1/admin/appointments/{appointmentId}/confirm
func (h *Handler) Confirm(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, "confirm", "confirmed", h.service.Confirm)
}

// Reject PATCH /api/v1/admin/appointments/{appointmentId}/reject
func (h *Handler) Reject(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, "reject", "rejected", h.service.Reject)
}

func (h *Handler) handle(
	w http.ResponseWriter,
	r *http.Request,
	action string,
	status string,
	apply func(ctx context.Context, id string) error,
) {
	appointmentID := mux.Vars(r)["appointmentId"]
	userID, _ := middleware.GetUserID(r.Context())

	if err := apply(r.Context(), appointmentID); err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("PATCH /admin/appointments/{id}/%s - Invalid appointment ID: %q", action, appointmentID)
			handlers.RespondBadRequest(w, msgInvalidAppointmentID)

		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /admin/appointments/{id}/%s - Appointment not found: id=%s", action, appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, appointments.ErrInvalidTransition):
			h.logger.Warn("PATCH /admin/appointments/{id}/%s - Invalid transition: id=%s, error=%v", action, appointmentID, err)
			handlers.RespondConflict(w, msgNotPending)

		default:
			h.logger.Error("PATCH /admin/appointments/{id}/%s - Failed: id=%s, error=%v", action, appointmentID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgUpdateFailed)
		}
		return
	}

	h.logger.Info("PATCH /admin/appointments/{id}/%s - Done: id=%s, admin=%s", action, appointmentID, userID)
	handlers.RespondJSON(w, http.StatusOK, StatusResponse{ID: appointmentID, Status: status})
}
