package domain

import (
	"fmt"
	"time"
)

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusRejected  AppointmentStatus = "rejected"
)

// ParseAppointmentStatus converts a raw value into a known status
func ParseAppointmentStatus(s string) (AppointmentStatus, error) {
	switch AppointmentStatus(s) {
	case StatusPending, StatusConfirmed, StatusRejected:
		return AppointmentStatus(s), nil
	default:
		return "", fmt.Errorf("unknown appointment status %q", s)
	}
}

// Appointment represents a client booking with one barber
type Appointment struct {
	ID          string
	ClientName  string
	ClientPhone string

	ServiceID string
	BarberID  string

	// Denormalized at creation time, never refreshed from the catalog
	ServiceName string
	BarberName  string

	StartTime time.Time
	EndTime   time.Time
	Status    AppointmentStatus

	// BarberDate is the composite lookup key, see BarberDateKey
	BarberDate string

	CreatedAt time.Time
}

// Interval returns the half-open [start, end) range occupied by the appointment
func (a *Appointment) Interval() Interval {
	return Interval{Start: a.StartTime, End: a.EndTime}
}

// IsActive returns true if the appointment still occupies its interval
func (a *Appointment) IsActive() bool {
	return a.Status != StatusRejected
}

// CanBeConfirmed returns true if an operator may confirm the appointment
func (a *Appointment) CanBeConfirmed() bool {
	return a.Status == StatusPending
}

// CanBeRejected returns true if an operator may reject the appointment
func (a *Appointment) CanBeRejected() bool {
	return a.Status == StatusPending
}

// CanBeDeleted returns true if an operator may delete the appointment
func (a *Appointment) CanBeDeleted() bool {
	return a.Status != StatusRejected
}

// BarberDateKey builds the "<barberId>_<YYYY-MM-DD>" key used to scope queries
// to one barber on one calendar day. The date is taken in its own location.
func BarberDateKey(barberID string, date time.Time) string {
	return barberID + "_" + date.Format(DateFormat)
}
