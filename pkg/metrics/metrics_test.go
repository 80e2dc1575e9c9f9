package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New("barber-booking")

	m.AppointmentCreated("pending")
	m.AppointmentCreated("pending")
	m.SlotConflict("overlap")
	m.Notification("kafka", errors.New("broker down"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.AppointmentsCreated.WithLabelValues("pending")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SlotConflicts.WithLabelValues("overlap")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Notifications.WithLabelValues("kafka", "error")))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.AppointmentCreated("pending")
		m.ObserveHTTPRequest("GET", "/", "200", 0.1)
		m.ObserveDBQuery("query", 0.1, nil)
		m.FeedBatch("snapshot")
	})
}

func TestMetrics_Handler(t *testing.T) {
	m := New("barber-booking")
	m.ObserveHTTPRequest(http.MethodGet, "/api/v1/services", "200", 0.01)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "http_requests_total")
}
