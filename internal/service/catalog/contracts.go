package catalog

import (
	"context"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// ServiceRepository интерфейс каталога услуг
type ServiceRepository interface {
	List(ctx context.Context) ([]*domain.Service, error)
}

// BarberRepository интерфейс репозитория барберов
type BarberRepository interface {
	List(ctx context.Context) ([]*domain.Barber, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
