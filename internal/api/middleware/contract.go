package middleware

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// AuthService проверка сессии администратора
type AuthService interface {
	CurrentUser(ctx context.Context, token string) (*domain.Session, error)
}

// HTTPMetrics учет HTTP запросов (*metrics.Metrics)
type HTTPMetrics interface {
	ObserveHTTPRequest(method, path, status string, seconds float64)
}

// Counter счетчик запросов в фиксированном окне
type Counter interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
