package get_dashboard

import "github.com/m04kA/SMC-BarberBooking/internal/dashboard"

type DashboardSession interface {
	View() (dashboard.View, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
