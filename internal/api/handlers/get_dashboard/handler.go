package get_dashboard

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBooking/internal/dashboard"
)

const msgNotReady = "панель загружается, повторите запрос через несколько секунд"

type Handler struct {
	session DashboardSession
	logger  Logger
}

func NewHandler(session DashboardSession, logger Logger) *Handler {
	return &Handler{
		session: session,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/dashboard
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	view, err := h.session.View()
	if err != nil {
		switch {
		case errors.Is(err, dashboard.ErrNotReady), errors.Is(err, dashboard.ErrNotStarted):
			h.logger.Warn("GET /admin/dashboard - Not ready: %v", err)
			w.Header().Set("Retry-After", "2")
			handlers.RespondServiceUnavailable(w, msgNotReady)

		default:
			h.logger.Error("GET /admin/dashboard - Failed to render: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, view)
}
