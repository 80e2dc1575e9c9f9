package get_me

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBooking/internal/api/middleware"
	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/internal/service/auth"
)

type sessions map[string]*domain.Session

func (s sessions) CurrentUser(_ context.Context, token string) (*domain.Session, error) {
	if session, ok := s[token]; ok {
		return session, nil
	}
	return nil, auth.ErrUnauthenticated
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle(t *testing.T) {
	session := &domain.Session{
		Token:     "token-1",
		UserID:    "admin-1",
		Email:     "admin@barber.local",
		ExpiresAt: time.Date(2025, 10, 22, 12, 0, 0, 0, time.UTC),
	}
	h := middleware.Auth(sessions{session.Token: session}, nopLogger{})(http.HandlerFunc(NewHandler().Handle))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	req.Header.Set("Authorization", "Bearer token-1")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got MeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, MeResponse{
		ID:        "admin-1",
		Email:     "admin@barber.local",
		ExpiresAt: "2025-10-22T12:00:00Z",
	}, got)
}

func TestHandle_WithoutSession(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler().Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
