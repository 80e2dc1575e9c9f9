package get_me

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBooking/internal/api/middleware"
)

const msgMissingSession = "требуется авторизация"

// MeResponse текущий администратор
type MeResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	ExpiresAt string `json:"expiresAt"`
}

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Handle GET /api/v1/auth/me
// Сессию уже проверил middleware.Auth
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, MeResponse{
		ID:        session.UserID,
		Email:     session.Email,
		ExpiresAt: session.ExpiresAt.Format(time.RFC3339),
	})
}
