package appointments

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/appointment"
)

type mockRepo struct{ mock.Mock }

func (m *mockRepo) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*domain.Appointment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepo) UpdateStatus(ctx context.Context, id string, from, to domain.AppointmentStatus) error {
	return m.Called(ctx, id, from, to).Error(0)
}

func (m *mockRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestConfirm_Pending(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo, nopLogger{})
	ctx := context.Background()

	repo.On("GetByID", ctx, "a-1").Return(&domain.Appointment{ID: "a-1", Status: domain.StatusPending}, nil)
	repo.On("UpdateStatus", ctx, "a-1", domain.StatusPending, domain.StatusConfirmed).Return(nil)

	require.NoError(t, svc.Confirm(ctx, "a-1"))
	repo.AssertExpectations(t)
}

func TestReject_Pending(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo, nopLogger{})
	ctx := context.Background()

	repo.On("GetByID", ctx, "a-1").Return(&domain.Appointment{ID: "a-1", Status: domain.StatusPending}, nil)
	repo.On("UpdateStatus", ctx, "a-1", domain.StatusPending, domain.StatusRejected).Return(nil)

	require.NoError(t, svc.Reject(ctx, "a-1"))
}

func TestTransitions_NotFromPending(t *testing.T) {
	for _, status := range []domain.AppointmentStatus{domain.StatusConfirmed, domain.StatusRejected} {
		t.Run(string(status), func(t *testing.T) {
			repo := &mockRepo{}
			svc := NewService(repo, nopLogger{})
			ctx := context.Background()

			repo.On("GetByID", ctx, "a-1").Return(&domain.Appointment{ID: "a-1", Status: status}, nil)

			assert.ErrorIs(t, svc.Confirm(ctx, "a-1"), ErrInvalidTransition)
			assert.ErrorIs(t, svc.Reject(ctx, "a-1"), ErrInvalidTransition)
			repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestConfirm_StatusChangedConcurrently(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo, nopLogger{})
	ctx := context.Background()

	repo.On("GetByID", ctx, "a-1").Return(&domain.Appointment{ID: "a-1", Status: domain.StatusPending}, nil)
	repo.On("UpdateStatus", ctx, "a-1", domain.StatusPending, domain.StatusConfirmed).Return(appointmentRepo.ErrStatusChanged)

	assert.ErrorIs(t, svc.Confirm(ctx, "a-1"), ErrInvalidTransition)
}

func TestConfirm_NotFound(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo, nopLogger{})
	ctx := context.Background()

	repo.On("GetByID", ctx, "missing").Return(nil, appointmentRepo.ErrAppointmentNotFound)

	assert.ErrorIs(t, svc.Confirm(ctx, "missing"), ErrAppointmentNotFound)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("confirmed can be deleted", func(t *testing.T) {
		repo := &mockRepo{}
		svc := NewService(repo, nopLogger{})
		repo.On("GetByID", ctx, "a-1").Return(&domain.Appointment{ID: "a-1", Status: domain.StatusConfirmed}, nil)
		repo.On("Delete", ctx, "a-1").Return(nil)

		assert.NoError(t, svc.Delete(ctx, "a-1"))
	})

	t.Run("rejected cannot be deleted", func(t *testing.T) {
		repo := &mockRepo{}
		svc := NewService(repo, nopLogger{})
		repo.On("GetByID", ctx, "a-1").Return(&domain.Appointment{ID: "a-1", Status: domain.StatusRejected}, nil)

		assert.ErrorIs(t, svc.Delete(ctx, "a-1"), ErrInvalidTransition)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("repository failure", func(t *testing.T) {
		repo := &mockRepo{}
		svc := NewService(repo, nopLogger{})
		repo.On("GetByID", ctx, "a-1").Return(&domain.Appointment{ID: "a-1", Status: domain.StatusPending}, nil)
		repo.On("Delete", ctx, "a-1").Return(errors.New("timeout"))

		assert.ErrorIs(t, svc.Delete(ctx, "a-1"), ErrInternal)
	})
}

func TestGetByID_EmptyID(t *testing.T) {
	svc := NewService(&mockRepo{}, nopLogger{})

	_, err := svc.GetByID(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
