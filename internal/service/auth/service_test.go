package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	adminUserRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/adminuser"
	sessionStore "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/session"
)

type memUsers struct {
	byEmail map[string]*domain.AdminUser
	err     error
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (*domain.AdminUser, error) {
	if m.err != nil {
		return nil, m.err
	}
	u, ok := m.byEmail[email]
	if !ok {
		return nil, adminUserRepo.ErrUserNotFound
	}
	return u, nil
}

func (m *memUsers) Create(_ context.Context, u *domain.AdminUser) (*domain.AdminUser, error) {
	if _, ok := m.byEmail[u.Email]; ok {
		return nil, adminUserRepo.ErrEmailTaken
	}
	u.ID = "admin-" + u.Email
	m.byEmail[u.Email] = u
	return u, nil
}

type memSessions struct {
	sessions map[string]*domain.Session
	err      error
}

func (m *memSessions) Save(_ context.Context, s *domain.Session) error {
	if m.err != nil {
		return m.err
	}
	m.sessions[s.Token] = s
	return nil
}

func (m *memSessions) Get(_ context.Context, token string) (*domain.Session, error) {
	if m.err != nil {
		return nil, m.err
	}
	s, ok := m.sessions[token]
	if !ok {
		return nil, sessionStore.ErrSessionNotFound
	}
	return s, nil
}

func (m *memSessions) Delete(_ context.Context, token string) error {
	delete(m.sessions, token)
	return nil
}

type fixedTime struct{ now time.Time }

func (f *fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newService(t *testing.T) (*Service, *memSessions, *fixedTime) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	users := &memUsers{byEmail: map[string]*domain.AdminUser{
		"admin@barbearia.com": {ID: "u-1", Email: "admin@barbearia.com", PasswordHash: string(hash)},
	}}
	sessions := &memSessions{sessions: map[string]*domain.Session{}}
	clock := &fixedTime{now: time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)}

	svc := NewService(users, sessions, time.Hour, bcrypt.MinCost, nopLogger{})
	svc.timeProvider = clock
	return svc, sessions, clock
}

func TestSignIn_Success(t *testing.T) {
	svc, sessions, clock := newService(t)

	resp, err := svc.SignIn(context.Background(), " admin@barbearia.com ", "s3cret-pass")
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, clock.now.Add(time.Hour), resp.ExpiresAt)
	assert.Contains(t, sessions.sessions, resp.Token)

	session, err := svc.CurrentUser(context.Background(), resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", session.UserID)
}

func TestSignIn_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		want     error
	}{
		{"empty fields", "", "", ErrMissingCredentials},
		{"malformed email", "admin-at-barbearia", "x", ErrInvalidEmail},
		{"display name is not an email", "Admin <admin@barbearia.com>", "x", ErrInvalidEmail},
		{"unknown user", "nobody@barbearia.com", "s3cret-pass", ErrInvalidCredentials},
		{"wrong password", "admin@barbearia.com", "nope", ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newService(t)

			_, err := svc.SignIn(context.Background(), tt.email, tt.password)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSignIn_StoreFailureIsInternal(t *testing.T) {
	svc, sessions, _ := newService(t)
	sessions.err = errors.New("redis down")

	_, err := svc.SignIn(context.Background(), "admin@barbearia.com", "s3cret-pass")
	assert.ErrorIs(t, err, ErrInternal)
}

func TestCurrentUser_ExpiredAndSignedOut(t *testing.T) {
	svc, _, clock := newService(t)
	ctx := context.Background()

	resp, err := svc.SignIn(ctx, "admin@barbearia.com", "s3cret-pass")
	require.NoError(t, err)

	clock.now = clock.now.Add(2 * time.Hour)
	_, err = svc.CurrentUser(ctx, resp.Token)
	assert.ErrorIs(t, err, ErrUnauthenticated)

	clock.now = clock.now.Add(-2 * time.Hour)
	require.NoError(t, svc.SignOut(ctx, resp.Token))
	_, err = svc.CurrentUser(ctx, resp.Token)
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = svc.CurrentUser(ctx, "")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestCreateAdmin(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := context.Background()

	_, err := svc.CreateAdmin(ctx, "new@barbearia.com", "short")
	assert.ErrorIs(t, err, ErrWeakPassword)

	user, err := svc.CreateAdmin(ctx, "new@barbearia.com", "long-enough")
	require.NoError(t, err)
	assert.Equal(t, "new@barbearia.com", user.Email)

	_, err = svc.SignIn(ctx, "new@barbearia.com", "long-enough")
	assert.NoError(t, err)

	_, err = svc.CreateAdmin(ctx, "new@barbearia.com", "long-enough")
	assert.ErrorIs(t, err, ErrEmailTaken)
}
