package dashboard

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/internal/infra/changefeed"
)

// Session состояние панели администратора на время ее жизни:
// Start создает пустую коллекцию и подписывается на поток изменений, Stop отписывается и сбрасывает ее.
// Коллекция меняется только пакетами из потока; операции администратора идут в хранилище
type Session struct {
	feed         ChangeFeed
	notifier     Notifier
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger

	mu      sync.RWMutex
	reducer *Reducer
	sub     *changefeed.Subscription
}

// NewSession создает сессию панели
func NewSession(feed ChangeFeed, notifier Notifier, location *time.Location, logger Logger) *Session {
	if location == nil {
		location = time.Local
	}
	return &Session{
		feed:         feed,
		notifier:     notifier,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Start подписывает сессию на поток изменений
func (s *Session) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.reducer != nil {
		s.mu.Unlock()
		return ErrAlreadyStarted
	}
	reducer := NewReducer(s.location)
	s.reducer = reducer
	s.mu.Unlock()

	sub, err := s.feed.Subscribe(ctx,
		func(batch domain.ChangeBatch) { s.handle(ctx, reducer, batch) },
		func(err error) { s.logger.Error("Dashboard: change feed error: %v", err) },
	)
	if err != nil {
		s.mu.Lock()
		if s.reducer == reducer {
			s.reducer = nil
		}
		s.mu.Unlock()
		return err
	}

	s.mu.Lock()
	// Stop успел сбросить сессию, пока шла подписка
	if s.reducer != reducer {
		s.mu.Unlock()
		sub.Unsubscribe()
		return ErrNotStarted
	}
	s.sub = sub
	s.mu.Unlock()

	s.logger.Info("Dashboard: session started")
	return nil
}

// Stop отписывается от потока и сбрасывает коллекцию
func (s *Session) Stop() {
	s.mu.Lock()
	sub := s.sub
	s.sub = nil
	s.reducer = nil
	s.mu.Unlock()

	if sub != nil {
		sub.Unsubscribe()
		s.logger.Info("Dashboard: session stopped")
	}
}

// View текущее представление панели
func (s *Session) View() (View, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.reducer == nil {
		return View{}, ErrNotStarted
	}
	if !s.reducer.Loaded() {
		return View{}, ErrNotReady
	}

	return s.reducer.Render(s.timeProvider.Now()), nil
}

// Ready сообщает, что первичная загрузка завершена
func (s *Session) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reducer != nil && s.reducer.Loaded()
}

func (s *Session) handle(ctx context.Context, reducer *Reducer, batch domain.ChangeBatch) {
	s.mu.Lock()
	// Пакет от прошлой подписки
	if s.reducer != reducer {
		s.mu.Unlock()
		return
	}
	result := reducer.Apply(batch, s.timeProvider.Now())
	counters := reducer.Counters()
	size := reducer.Len()
	s.mu.Unlock()

	s.logger.Info("Dashboard: applied batch snapshot=%t changes=%d, total=%d today=%d pending=%d confirmed=%d",
		batch.Snapshot, len(batch.Changes), size, counters.Today, counters.Pending, counters.Confirmed)

	for _, appointment := range result.New {
		s.notifier.NotifyNewAppointment(ctx, appointment)
	}
}
