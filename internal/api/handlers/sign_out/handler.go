package sign_out

import (
	"net/http"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBooking/internal/api/middleware"
)

const msgMissingSession = "требуется авторизация"

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/auth/sign-out
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		h.logger.Warn("POST /auth/sign-out - Missing session")
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	if err := h.service.SignOut(r.Context(), session.Token); err != nil {
		h.logger.Error("POST /auth/sign-out - Failed to sign out: user_id=%s, error=%v", session.UserID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /auth/sign-out - Signed out: user_id=%s", session.UserID)
	handlers.RespondNoContent(w)
}
