package notifications

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// LogSender пишет событие в лог; канал по умолчанию, который всегда включен
type LogSender struct {
	logger Logger
}

// NewLogSender создает канал доставки в лог
func NewLogSender(logger Logger) *LogSender {
	return &LogSender{logger: logger}
}

// Name имя канала для логов и метрик
func (s *LogSender) Name() string {
	return "log"
}

// Send пишет событие в лог
func (s *LogSender) Send(_ context.Context, event *AppointmentEvent) error {
	a := event.Appointment
	s.logger.Info("New appointment: id=%s client=%q service=%q barber=%q start=%s status=%s",
		a.ID, a.ClientName, a.ServiceName, a.BarberName, a.StartTime.Format(time.RFC3339), a.Status)
	return nil
}

// Notifier рассылает уведомление о новой записи во все каналы
// Ошибка канала не влияет на остальные каналы и не возвращается вызывающему
type Notifier struct {
	senders []Sender
	timeout time.Duration
	now     func() time.Time
	metrics Metrics
	logger  Logger
}

// NewNotifier создает рассылку по каналам senders; timeout ограничивает доставку в один канал
func NewNotifier(senders []Sender, timeout time.Duration, metrics Metrics, logger Logger) *Notifier {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Notifier{
		senders: senders,
		timeout: timeout,
		now:     time.Now,
		metrics: metrics,
		logger:  logger,
	}
}

// NotifyNewAppointment доставляет событие о новой записи
func (n *Notifier) NotifyNewAppointment(ctx context.Context, appointment *domain.Appointment) {
	event := NewAppointmentEvent(appointment, n.now())

	for _, sender := range n.senders {
		sendCtx, cancel := context.WithTimeout(ctx, n.timeout)
		err := sender.Send(sendCtx, event)
		cancel()

		n.metrics.Notification(sender.Name(), err)
		if err != nil {
			n.logger.Error("Notifier: channel=%s failed for appointment id=%s: %v", sender.Name(), appointment.ID, err)
		}
	}
}
