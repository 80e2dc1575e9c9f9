package changefeed

import (
	"context"

	"github.com/lib/pq"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// AppointmentRepository источник полного состояния коллекции и отдельных записей
type AppointmentRepository interface {
	List(ctx context.Context) ([]*domain.Appointment, error)
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
}

// Listener подписка на уведомления PostgreSQL (*pq.Listener)
// После переподключения в канал приходит nil
type Listener interface {
	Listen(channel string) error
	NotificationChannel() <-chan *pq.Notification
	Ping() error
	Close() error
}

// Metrics интерфейс для учета отправленных пакетов
type Metrics interface {
	FeedBatch(kind string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
