package sign_in

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBooking/internal/service/auth"
)

type mockAuth struct{ mock.Mock }

func (m *mockAuth) SignIn(ctx context.Context, email, password string) (*auth.SessionResponse, error) {
	args := m.Called(ctx, email, password)
	if v := args.Get(0); v != nil {
		return v.(*auth.SessionResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func post(svc *mockAuth, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/sign-in", strings.NewReader(body))
	NewHandler(svc, nopLogger{}).Handle(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	expires := time.Date(2025, 10, 15, 6, 0, 0, 0, time.UTC)
	svc := &mockAuth{}
	svc.On("SignIn", mock.Anything, "admin@barber.com", "secret123").
		Return(&auth.SessionResponse{Token: "tok", Email: "admin@barber.com", ExpiresAt: expires}, nil)

	rec := post(svc, `{"email":"admin@barber.com","password":"secret123"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp auth.SessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "tok", resp.Token)
	assert.True(t, expires.Equal(resp.ExpiresAt))
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{name: "missing", err: auth.ErrMissingCredentials, code: http.StatusBadRequest, message: msgMissingCredentials},
		{name: "invalid email", err: auth.ErrInvalidEmail, code: http.StatusBadRequest, message: msgInvalidEmail},
		{name: "wrong credentials", err: auth.ErrInvalidCredentials, code: http.StatusUnauthorized, message: msgInvalidCredentials},
		{name: "internal", err: auth.ErrInternal, code: http.StatusInternalServerError, message: msgSignInFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockAuth{}
			svc.On("SignIn", mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := post(svc, `{"email":"x","password":"y"}`)

			assert.Equal(t, tt.code, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.message)
		})
	}
}

func TestHandle_InvalidBody(t *testing.T) {
	svc := &mockAuth{}
	rec := post(svc, `{"email":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "SignIn", mock.Anything, mock.Anything, mock.Anything)
}
