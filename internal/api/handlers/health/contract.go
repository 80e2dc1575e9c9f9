package health

import "context"

// Pinger проверяемая зависимость (БД, Redis)
type Pinger interface {
	PingContext(ctx context.Context) error
}

// ReadinessProbe компонент с собственным признаком готовности (панель администратора)
type ReadinessProbe interface {
	Ready() bool
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
