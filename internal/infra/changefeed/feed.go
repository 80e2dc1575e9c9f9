package changefeed

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/lib/pq"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/appointment"
)

// Виды пакетов для метрик
const (
	batchSnapshot = "snapshot"
	batchResync   = "resync"
	batchDelta    = "delta"
)

// Config настройки потока изменений
type Config struct {
	Channel      string
	BatchWindow  time.Duration
	MinReconnect time.Duration
	MaxReconnect time.Duration
	PingInterval time.Duration
}

func (c Config) withDefaults() Config {
	if c.Channel == "" {
		c.Channel = "appointments_changes"
	}
	if c.BatchWindow <= 0 {
		c.BatchWindow = 100 * time.Millisecond
	}
	if c.MinReconnect <= 0 {
		c.MinReconnect = time.Second
	}
	if c.MaxReconnect <= 0 {
		c.MaxReconnect = time.Minute
	}
	if c.PingInterval <= 0 {
		c.PingInterval = 90 * time.Second
	}
	return c
}

// Feed поток изменений коллекции записей поверх LISTEN/NOTIFY
// Первый пакет подписки содержит полное состояние, следующие пакеты содержат дельты
type Feed struct {
	cfg         Config
	repo        AppointmentRepository
	newListener func() Listener
	metrics     Metrics
	logger      Logger
}

// NewFeed создает поток изменений, который слушает PostgreSQL по dsn
func NewFeed(dsn string, cfg Config, repo AppointmentRepository, metrics Metrics, logger Logger) *Feed {
	cfg = cfg.withDefaults()
	f := &Feed{
		cfg:     cfg,
		repo:    repo,
		metrics: metrics,
		logger:  logger,
	}
	f.newListener = func() Listener {
		return pq.NewListener(dsn, cfg.MinReconnect, cfg.MaxReconnect, f.onListenerEvent)
	}
	return f
}

func (f *Feed) onListenerEvent(ev pq.ListenerEventType, err error) {
	switch ev {
	case pq.ListenerEventConnected:
		f.logger.Info("ChangeFeed: listener connected")
	case pq.ListenerEventDisconnected:
		f.logger.Warn("ChangeFeed: listener disconnected: %v", err)
	case pq.ListenerEventReconnected:
		f.logger.Info("ChangeFeed: listener reconnected")
	case pq.ListenerEventConnectionAttemptFailed:
		f.logger.Warn("ChangeFeed: connection attempt failed: %v", err)
	}
}

// Subscription активная подписка на поток изменений
type Subscription struct {
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// Go запускает fn в отдельной горутине и возвращает подписку, которая ее останавливает
func Go(ctx context.Context, fn func(ctx context.Context)) *Subscription {
	runCtx, cancel := context.WithCancel(ctx)
	sub := &Subscription{cancel: cancel, done: make(chan struct{})}

	go func() {
		defer close(sub.done)
		fn(runCtx)
	}()

	return sub
}

// Unsubscribe останавливает подписку и ждет завершения обработчика
func (s *Subscription) Unsubscribe() {
	s.once.Do(s.cancel)
	<-s.done
}

// Done закрывается, когда подписка завершилась
func (s *Subscription) Done() <-chan struct{} {
	return s.done
}

// Subscribe открывает подписку. onNext вызывается из одной горутины в порядке пакетов,
// onError получает ошибки, после которых подписка продолжает работу
func (f *Feed) Subscribe(
	ctx context.Context,
	onNext func(domain.ChangeBatch),
	onError func(error),
) (*Subscription, error) {
	listener := f.newListener()

	// Подписываемся до чтения снимка, чтобы не потерять изменения между ними
	if err := listener.Listen(f.cfg.Channel); err != nil {
		_ = listener.Close()
		return nil, fmt.Errorf("%w: channel=%s: %v", ErrListen, f.cfg.Channel, err)
	}

	snapshot, err := f.snapshot(ctx)
	if err != nil {
		_ = listener.Close()
		return nil, err
	}

	sub := Go(ctx, func(runCtx context.Context) {
		defer func() {
			if err := listener.Close(); err != nil {
				f.logger.Warn("ChangeFeed: failed to close listener: %v", err)
			}
		}()

		f.emit(onNext, snapshot, batchSnapshot)
		f.run(runCtx, listener, onNext, onError)
	})

	f.logger.Info("ChangeFeed: subscribed to channel=%s, snapshot size=%d", f.cfg.Channel, len(snapshot.Changes))
	return sub, nil
}

func (f *Feed) run(ctx context.Context, listener Listener, onNext func(domain.ChangeBatch), onError func(error)) {
	pending := newPendingSet()
	ping := time.NewTicker(f.cfg.PingInterval)
	defer ping.Stop()

	var window *time.Timer
	var windowC <-chan time.Time
	stopWindow := func() {
		if window != nil {
			window.Stop()
		}
		window, windowC = nil, nil
	}
	defer stopWindow()

	for {
		select {
		case <-ctx.Done():
			return

		case n, ok := <-listener.NotificationChannel():
			if !ok {
				onError(ErrClosed)
				return
			}

			// nil означает переподключение: уведомления за время разрыва потеряны
			if n == nil {
				pending.reset()
				stopWindow()

				batch, err := f.snapshot(ctx)
				if err != nil {
					onError(err)
					continue
				}
				f.emit(onNext, batch, batchResync)
				continue
			}

			ev, err := parsePayload(n.Extra)
			if err != nil {
				f.logger.Warn("ChangeFeed: skip notification %q: %v", n.Extra, err)
				continue
			}

			pending.add(ev)
			if window == nil {
				window = time.NewTimer(f.cfg.BatchWindow)
				windowC = window.C
			}

		case <-windowC:
			window, windowC = nil, nil

			batch, err := f.resolve(ctx, pending)
			pending.reset()
			if err != nil {
				onError(err)

				// Дельты окна потеряны, восстанавливаем состояние полным снимком
				resync, snapErr := f.snapshot(ctx)
				if snapErr != nil {
					onError(snapErr)
					continue
				}
				f.emit(onNext, resync, batchResync)
				continue
			}
			if len(batch.Changes) > 0 {
				f.emit(onNext, batch, batchDelta)
			}

		case <-ping.C:
			if err := listener.Ping(); err != nil {
				f.logger.Warn("ChangeFeed: listener ping failed: %v", err)
			}
		}
	}
}

func (f *Feed) emit(onNext func(domain.ChangeBatch), batch domain.ChangeBatch, kind string) {
	f.metrics.FeedBatch(kind)
	onNext(batch)
}

// snapshot строит пакет с полным состоянием коллекции
func (f *Feed) snapshot(ctx context.Context) (domain.ChangeBatch, error) {
	appointments, err := f.repo.List(ctx)
	if err != nil {
		return domain.ChangeBatch{}, fmt.Errorf("%w: %v", ErrSnapshot, err)
	}

	changes := make([]domain.Change, 0, len(appointments))
	for _, a := range appointments {
		changes = append(changes, domain.Change{Type: domain.ChangeAdded, ID: a.ID, Appointment: a})
	}

	return domain.ChangeBatch{Snapshot: true, Changes: changes}, nil
}

// resolve превращает накопленные уведомления в дельты по текущему состоянию записей
func (f *Feed) resolve(ctx context.Context, pending *pendingSet) (domain.ChangeBatch, error) {
	changes := make([]domain.Change, 0, pending.len())

	for _, id := range pending.order {
		item := pending.items[id]
		if item.deleted {
			changes = append(changes, domain.Change{Type: domain.ChangeRemoved, ID: id})
			continue
		}

		appointment, err := f.repo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				// Запись удалили после уведомления; DELETE придет следующим пакетом
				changes = append(changes, domain.Change{Type: domain.ChangeRemoved, ID: id})
				continue
			}
			return domain.ChangeBatch{}, fmt.Errorf("%w: id=%s: %v", ErrFetch, id, err)
		}

		changeType := domain.ChangeModified
		if item.inserted {
			changeType = domain.ChangeAdded
		}
		changes = append(changes, domain.Change{Type: changeType, ID: id, Appointment: appointment})
	}

	return domain.ChangeBatch{Changes: changes}, nil
}
