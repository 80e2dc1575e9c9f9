package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBarberDateKey(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	date := time.Date(2025, 3, 7, 23, 30, 0, 0, loc)

	assert.Equal(t, "b-42_2025-03-07", BarberDateKey("b-42", date))
}

func TestInterval_Overlaps(t *testing.T) {
	at := func(h, m int) time.Time { return time.Date(2025, 3, 7, h, m, 0, 0, time.UTC) }
	booked := Interval{Start: at(10, 0), End: at(10, 30)}

	assert.True(t, booked.Overlaps(Interval{Start: at(9, 45), End: at(10, 15)}))
	assert.True(t, booked.Overlaps(Interval{Start: at(10, 10), End: at(10, 20)}))
	assert.False(t, booked.Overlaps(Interval{Start: at(9, 30), End: at(10, 0)}))
	assert.False(t, booked.Overlaps(Interval{Start: at(10, 30), End: at(11, 0)}))
}

func TestAppointment_Transitions(t *testing.T) {
	pending := Appointment{Status: StatusPending}
	confirmed := Appointment{Status: StatusConfirmed}
	rejected := Appointment{Status: StatusRejected}

	assert.True(t, pending.CanBeConfirmed())
	assert.True(t, pending.CanBeRejected())
	assert.True(t, pending.CanBeDeleted())

	assert.False(t, confirmed.CanBeConfirmed())
	assert.False(t, confirmed.CanBeRejected())
	assert.True(t, confirmed.CanBeDeleted())

	assert.False(t, rejected.CanBeConfirmed())
	assert.False(t, rejected.CanBeDeleted())
	assert.False(t, rejected.IsActive())
}

func TestParseAppointmentStatus(t *testing.T) {
	s, err := ParseAppointmentStatus("confirmed")
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, s)

	_, err = ParseAppointmentStatus("Confirmed")
	assert.Error(t, err)
}

func TestBarber_WorkingHoursDefaults(t *testing.T) {
	start, end := (&Barber{}).WorkingHours()
	assert.Equal(t, 9, start)
	assert.Equal(t, 18, end)

	ten := 10
	start, end = (&Barber{WorkingHoursStart: &ten}).WorkingHours()
	assert.Equal(t, 10, start)
	assert.Equal(t, 18, end)
}
