package create_booking

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

type mockAppointmentRepo struct{ mock.Mock }

func (m *mockAppointmentRepo) Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	args := m.Called(ctx, a)
	if fn, ok := args.Get(0).(func(*domain.Appointment) *domain.Appointment); ok {
		return fn(a), args.Error(1)
	}
	if v := args.Get(0); v != nil {
		return v.(*domain.Appointment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAppointmentRepo) GetActiveByBarberDate(ctx context.Context, barberDate string) ([]*domain.Appointment, error) {
	args := m.Called(ctx, barberDate)
	if v := args.Get(0); v != nil {
		return v.([]*domain.Appointment), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockServiceRepo struct{ mock.Mock }

func (m *mockServiceRepo) GetByID(ctx context.Context, id string) (*domain.Service, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*domain.Service), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockBarberRepo struct{ mock.Mock }

func (m *mockBarberRepo) GetByID(ctx context.Context, id string) (*domain.Barber, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*domain.Barber), args.Error(1)
	}
	return nil, args.Error(1)
}

// inlineTx выполняет функцию без реальной транзакции; commitErr имитирует ошибку фиксации
type inlineTx struct {
	calls     int
	commitErr error
}

func (tx *inlineTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	tx.calls++
	if err := fn(ctx); err != nil {
		return err
	}
	return tx.commitErr
}

type countingMetrics struct {
	created   map[string]int
	conflicts map[string]int
}

func newCountingMetrics() *countingMetrics {
	return &countingMetrics{created: map[string]int{}, conflicts: map[string]int{}}
}

func (m *countingMetrics) AppointmentCreated(status string) { m.created[status]++ }
func (m *countingMetrics) SlotConflict(reason string)       { m.conflicts[reason]++ }

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
