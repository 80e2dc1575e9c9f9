package notifications

import (
	"context"

	"github.com/segmentio/kafka-go"
)

// Sender канал доставки уведомления о новой записи
type Sender interface {
	Name() string
	Send(ctx context.Context, event *AppointmentEvent) error
}

// MessageWriter интерфейс для публикации в Kafka (*kafka.Writer)
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Metrics интерфейс для учета доставок
type Metrics interface {
	Notification(channel string, err error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
