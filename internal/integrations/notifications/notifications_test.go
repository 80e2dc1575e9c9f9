package notifications

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testAppointment() *domain.Appointment {
	start := time.Date(2025, 10, 15, 10, 30, 0, 0, time.UTC)
	return &domain.Appointment{
		ID:          "a-1",
		ClientName:  "João",
		ClientPhone: "+55 11 99999-0000",
		ServiceID:   "s-1",
		ServiceName: "Corte",
		BarberID:    "b-1",
		BarberName:  "Carlos",
		StartTime:   start,
		EndTime:     start.Add(30 * time.Minute),
		Status:      domain.StatusPending,
	}
}

func TestWebhookClient_Send(t *testing.T) {
	var got AppointmentEvent
	var auth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	client := NewWebhookClient(server.URL, "s3cret", time.Second)
	event := NewAppointmentEvent(testAppointment(), time.Now())

	require.NoError(t, client.Send(context.Background(), event))
	assert.Equal(t, "Bearer s3cret", auth)
	assert.Equal(t, EventTypeAppointmentCreated, got.EventType)
	assert.Equal(t, "a-1", got.Appointment.ID)
	assert.Equal(t, "pending", got.Appointment.Status)
}

func TestWebhookClient_UnexpectedStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewWebhookClient(server.URL, "", time.Second)

	err := client.Send(context.Background(), NewAppointmentEvent(testAppointment(), time.Now()))
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

type fakeWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestKafkaPublisher_Send(t *testing.T) {
	writer := &fakeWriter{}
	publisher := NewKafkaPublisher(writer, "barberbooking.appointments")
	event := NewAppointmentEvent(testAppointment(), time.Now())

	require.NoError(t, publisher.Send(context.Background(), event))
	require.Len(t, writer.messages, 1)

	msg := writer.messages[0]
	assert.Equal(t, []byte("a-1"), msg.Key)
	assert.Contains(t, msg.Headers, kafka.Header{Key: "event_type", Value: []byte(EventTypeAppointmentCreated)})
	assert.Contains(t, msg.Headers, kafka.Header{Key: "event_id", Value: []byte(event.EventID)})

	var decoded AppointmentEvent
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, "Carlos", decoded.Appointment.BarberName)

	require.NoError(t, publisher.Close())
	assert.True(t, writer.closed)
}

func TestKafkaPublisher_WriteFailure(t *testing.T) {
	publisher := NewKafkaPublisher(&fakeWriter{err: errors.New("leader not available")}, "t")

	err := publisher.Send(context.Background(), NewAppointmentEvent(testAppointment(), time.Now()))
	assert.ErrorIs(t, err, ErrPublish)
}

type stubSender struct {
	name  string
	err   error
	calls int
}

func (s *stubSender) Name() string { return s.name }

func (s *stubSender) Send(ctx context.Context, _ *AppointmentEvent) error {
	s.calls++
	if _, ok := ctx.Deadline(); !ok {
		return errors.New("no deadline")
	}
	return s.err
}

type recordingMetrics struct {
	results map[string]error
}

func (m *recordingMetrics) Notification(channel string, err error) {
	m.results[channel] = err
}

func TestNotifier_FailingChannelDoesNotStopOthers(t *testing.T) {
	failing := &stubSender{name: "webhook", err: errors.New("timeout")}
	ok := &stubSender{name: "kafka"}
	metrics := &recordingMetrics{results: map[string]error{}}

	notifier := NewNotifier([]Sender{failing, ok, NewLogSender(nopLogger{})}, time.Second, metrics, nopLogger{})
	notifier.NotifyNewAppointment(context.Background(), testAppointment())

	assert.Equal(t, 1, failing.calls)
	assert.Equal(t, 1, ok.calls)
	assert.Error(t, metrics.results["webhook"])
	assert.NoError(t, metrics.results["kafka"])
	assert.Contains(t, metrics.results, "log")
}
