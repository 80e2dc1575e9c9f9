package delete_appointment

import (
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
	msgCannotDelete         = "отклоненную запись нельзя удалить"
	msgDeleteFailed         = "не удалось удалить запись, попробуйте еще раз"
)

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

// Handle DELETE /api/v1/admin/appointments/{appointmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID := mux.Vars(r)["appointmentId"]
	userID, _ := middleware.GetUserID(r.Context())

	if err := h.service.Delete(r.Context(), appointmentID); err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("DELETE /admin/appointments/{id} - Invalid appointment ID: %q", appointmentID)
			handlers.RespondBadRequest(w, msgInvalidAppointmentID)

		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("DELETE /admin/appointments/{id} - Appointment not found: id=%s", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, appointments.ErrInvalidTransition):
			h.logger.Warn("DELETE /admin/appointments/{id} - Cannot delete: id=%s", appointmentID)
			handlers.RespondConflict(w, msgCannotDelete)

		default:
			h.logger.Error("DELETE /admin/appointments/{id} - Failed: id=%s, error=%v", appointmentID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgDeleteFailed)
		}
		return
	}

	h.logger.Info("DELETE /admin/appointments/{id} - Deleted: id=%s, admin=%s", appointmentID, userID)
	handlers.RespondNoContent(w)
}
