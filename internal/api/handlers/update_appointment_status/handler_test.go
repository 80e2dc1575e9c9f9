package update_appointment_status

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

	"github.com/m04kA/SMC-BarberBooking/internal/service/appointments"
)

type mockService struct{ mock.Mock }

func (m *mockService) Confirm(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockService) Reject(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(svc *mockService, target string) *httptest.ResponseRecorder {
	h := NewHandler(svc, nopLogger{})
	r := mux.NewRouter()
	r.HandleFunc("/admin/appointments/{appointmentId}/confirm", h.Confirm).Methods(http.MethodPatch)
	r.HandleFunc("/admin/appointments/{appointmentId}/reject", h.Reject).Methods(http.MethodPatch)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, target, nil))
	return rec
}

func TestConfirmAndReject(t *testing.T) {
	svc := &mockService{}
	svc.On("Confirm", mock.Anything, "appt-1").Return(nil).Once()
	svc.On("Reject", mock.Anything, "appt-2").Return(nil).Once()

	rec := serve(svc, "/admin/appointments/appt-1/confirm")
	require.Equal(t, http.StatusOK, rec.Code)
	var resp StatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, StatusResponse{ID: "appt-1", Status: "confirmed"}, resp)

	rec = serve(svc, "/admin/appointments/appt-2/reject")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, StatusResponse{ID: "appt-2", Status: "rejected"}, resp)

	svc.AssertExpectations(t)
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{err: appointments.ErrInvalidInput, code: http.StatusBadRequest},
		{err: appointments.ErrAppointmentNotFound, code: http.StatusNotFound},
		{err: appointments.ErrInvalidTransition, code: http.StatusConflict},
		{err: appointments.ErrInternal, code: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			svc := &mockService{}
			svc.On("Confirm", mock.Anything, "appt-1").Return(fmt.Errorf("%w: Confirm", tt.err))

			rec := serve(svc, "/admin/appointments/appt-1/confirm")
			assert.Equal(t, tt.code, rec.Code)
		})
	}
}
