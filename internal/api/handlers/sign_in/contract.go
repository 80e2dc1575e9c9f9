package sign_in

import (
	"context"

	"github.com/m04kA/SMC-BarberBooking/internal/service/auth"
)

type AuthService interface {
	SignIn(ctx context.Context, email, password string) (*auth.SessionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
