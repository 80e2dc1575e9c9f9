package get_dashboard

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBooking/internal/dashboard"
)

type stubSession struct {
	view dashboard.View
	err  error
}

func (s stubSession) View() (dashboard.View, error) {
	return s.view, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func get(session DashboardSession) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewHandler(session, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/dashboard", nil))
	return rec
}

func TestHandle_View(t *testing.T) {
	view := dashboard.View{
		Rows:     []dashboard.Row{{ID: "appt-1", ClientName: "Ana", Status: "pending", CanConfirm: true, CanReject: true, CanDelete: true}},
		Counters: dashboard.Counters{Today: 1, Pending: 1},
	}

	rec := get(stubSession{view: view})

	require.Equal(t, http.StatusOK, rec.Code)
	var got dashboard.View
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, view.Counters, got.Counters)
	require.Len(t, got.Rows, 1)
	assert.Equal(t, "appt-1", got.Rows[0].ID)
}

func TestHandle_NotReady(t *testing.T) {
	for _, err := range []error{dashboard.ErrNotReady, dashboard.ErrNotStarted} {
		rec := get(stubSession{err: err})

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "2", rec.Header().Get("Retry-After"))
	}
}
