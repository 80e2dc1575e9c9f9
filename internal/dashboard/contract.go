package dashboard

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/internal/infra/changefeed"
)

// ChangeFeed источник пакетов изменений коллекции записей
type ChangeFeed interface {
	Subscribe(ctx context.Context, onNext func(domain.ChangeBatch), onError func(error)) (*changefeed.Subscription, error)
}

// Notifier получает записи, появившиеся после первичной загрузки
type Notifier interface {
	NotifyNewAppointment(ctx context.Context, appointment *domain.Appointment)
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реализация TimeProvider
type RealTimeProvider struct{}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
