package create_appointment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-BarberBooking/internal/usecase/create_booking"
)

type mockUseCase struct{ mock.Mock }

func (m *mockUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	args := m.Called(ctx, req)
	if v := args.Get(0); v != nil {
		return v.(*createBooking.Response), args.Error(1)
	}
	return nil, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const validBody = `{"serviceId":"svc-1","barberId":"b-1","date":"2025-10-15","startTime":"10:30","clientName":"Ana","clientPhone":"+55 11 99999-0000"}`

func doRequest(t *testing.T, uc *mockUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()
	h := NewHandler(uc, nopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(r *createBooking.Request) bool {
		return r.BarberID == "b-1" && r.StartTime == "10:30" && r.Date.Day() == 15
	})).Return(&createBooking.Response{
		ID:          "appt-1",
		ClientName:  "Ana",
		ClientPhone: "+55 11 99999-0000",
		ServiceID:   "svc-1",
		ServiceName: "Corte",
		BarberID:    "b-1",
		BarberName:  "João",
		StartTime:   time.Date(2025, 10, 15, 10, 30, 0, 0, loc),
		EndTime:     time.Date(2025, 10, 15, 11, 0, 0, 0, loc),
		Status:      "pending",
		CreatedAt:   time.Date(2025, 10, 14, 18, 0, 0, 0, loc),
	}, nil)

	rec := doRequest(t, uc, validBody)

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp AppointmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "appt-1", resp.ID)
	assert.Equal(t, "2025-10-15", resp.Date)
	assert.Equal(t, "10:30", resp.StartTime)
	assert.Equal(t, "11:00", resp.EndTime)
	assert.Equal(t, "pending", resp.Status)
	uc.AssertExpectations(t)
}

func TestHandle_BadBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "{"},
		{name: "unknown field", body: `{"serviceId":"svc-1","price":10}`},
		{name: "bad date", body: `{"serviceId":"svc-1","barberId":"b-1","date":"15/10/2025","startTime":"10:30","clientName":"Ana","clientPhone":"1"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			rec := doRequest(t, uc, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
		})
	}
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		err     error
		code    int
		message string
	}{
		{err: createBooking.ErrSlotNotAvailable, code: http.StatusConflict, message: msgSlotNotAvailable},
		{err: createBooking.ErrInvalidInput, code: http.StatusBadRequest, message: msgInvalidInput},
		{err: createBooking.ErrServiceNotFound, code: http.StatusNotFound, message: msgServiceNotFound},
		{err: createBooking.ErrBarberNotFound, code: http.StatusNotFound, message: msgBarberNotFound},
		{err: createBooking.ErrInvalidDate, code: http.StatusBadRequest, message: msgDateInPast},
		{err: createBooking.ErrInvalidTimeSlot, code: http.StatusBadRequest, message: msgInvalidTimeSlot},
		{err: createBooking.ErrInternal, code: http.StatusInternalServerError, message: msgCreateFailed},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			uc := &mockUseCase{}
			uc.On("Execute", mock.Anything, mock.Anything).
				Return(nil, fmt.Errorf("%w: wrapped", tt.err))

			rec := doRequest(t, uc, validBody)

			assert.Equal(t, tt.code, rec.Code)
			var resp handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.message, resp.Message)
			assert.NotContains(t, rec.Body.String(), "wrapped")
		})
	}
}
