package sign_in

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBooking/internal/service/auth"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingCredentials = "введите email и пароль"
	msgInvalidEmail       = "некорректный формат email"
	msgInvalidCredentials = "неверный email или пароль"
	msgSignInFailed       = "не удалось выполнить вход, попробуйте позже"
)

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

// Handle POST /api/v1/auth/sign-in
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SignInRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/sign-in - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	session, err := h.service.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrMissingCredentials):
			handlers.RespondBadRequest(w, msgMissingCredentials)

		case errors.Is(err, auth.ErrInvalidEmail):
			handlers.RespondBadRequest(w, msgInvalidEmail)

		case errors.Is(err, auth.ErrInvalidCredentials):
			h.logger.Warn("POST /auth/sign-in - Wrong credentials")
			handlers.RespondUnauthorized(w, msgInvalidCredentials)

		default:
			h.logger.Error("POST /auth/sign-in - Failed to sign in: %v", err)
			handlers.RespondError(w, http.StatusInternalServerError, msgSignInFailed)
		}
		return
	}

	h.logger.Info("POST /auth/sign-in - Signed in: email=%s", session.Email)
	handlers.RespondJSON(w, http.StatusOK, session)
}
