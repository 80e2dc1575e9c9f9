package domain

import "time"

// Working hours used when a barber has none configured
const (
	DefaultWorkingHoursStart = 9
	DefaultWorkingHoursEnd   = 18
)

// SlotQuantum is the step of the availability grid
const SlotQuantum = 15 * time.Minute

// Business validation constants
const (
	MaxClientNameLength  = 120
	MaxClientPhoneLength = 32
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses statuses that occupy a barber's time
var ActiveStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
}
