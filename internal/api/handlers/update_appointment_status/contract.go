package update_appointment_status

import "context"

type AppointmentService interface {
	Confirm(ctx context.Context, id string) error
	Reject(ctx context.Context, id string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
