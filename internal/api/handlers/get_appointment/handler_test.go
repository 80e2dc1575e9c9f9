package get_appointment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBooking/internal/service/appointments"
	"github.com/m04kA/SMC-BarberBooking/internal/service/appointments/models"
)

type mockService struct{ mock.Mock }

func (m *mockService) GetByID(ctx context.Context, id string) (*models.AppointmentResponse, error) {
	args := m.Called(ctx, id)
	appointment, _ := args.Get(0).(*models.AppointmentResponse)
	return appointment, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(svc *mockService, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/admin/appointments/{appointmentId}", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle(t *testing.T) {
	svc := &mockService{}
	svc.On("GetByID", mock.Anything, "appt-1").Return(&models.AppointmentResponse{
		ID:         "appt-1",
		ClientName: "Анна",
		Status:     "pending",
		CanConfirm: true,
		CanReject:  true,
	}, nil)

	rec := serve(svc, "/admin/appointments/appt-1")

	require.Equal(t, http.StatusOK, rec.Code)
	var got models.AppointmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "appt-1", got.ID)
	assert.Equal(t, "pending", got.Status)
	assert.True(t, got.CanConfirm)
	svc.AssertExpectations(t)
}

func TestHandle_NotFound(t *testing.T) {
	svc := &mockService{}
	svc.On("GetByID", mock.Anything, "missing").
		Return(nil, fmt.Errorf("%w: GetByID - id=missing", appointments.ErrAppointmentNotFound))

	rec := serve(svc, "/admin/appointments/missing")

	require.Equal(t, http.StatusNotFound, rec.Code)
	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Equal(t, msgNotFound, resp.Message)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "invalid id", err: appointments.ErrInvalidInput, code: http.StatusBadRequest},
		{name: "internal", err: appointments.ErrInternal, code: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			svc.On("GetByID", mock.Anything, "appt-1").Return(nil, fmt.Errorf("%w: GetByID", tt.err))

			rec := serve(svc, "/admin/appointments/appt-1")
			assert.Equal(t, tt.code, rec.Code)
		})
	}
}
