// Package availability computes bookable start times for one barber on one day.
package availability

import (
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// ComputeAvailableSlots returns, in ascending order, every start time on the
// 15-minute grid anchored at workStart:00 of date for which a service of
// durationMinutes fits before workEnd:00 and overlaps none of booked.
//
// The time-of-day of date is ignored; its location is kept. Booked intervals
// may come in any order and may overlap each other. Invalid bounds or a
// non-positive duration yield an empty result.
func ComputeAvailableSlots(workStart, workEnd, durationMinutes int, booked []domain.Interval, date time.Time) []time.Time {
	slots := make([]time.Time, 0)

	if !validBounds(workStart, workEnd) || durationMinutes <= 0 {
		return slots
	}

	y, m, d := date.Date()
	open := time.Date(y, m, d, workStart, 0, 0, 0, date.Location())
	closing := time.Date(y, m, d, workEnd, 0, 0, 0, date.Location())
	duration := time.Duration(durationMinutes) * time.Minute

	for start := open; start.Before(closing); start = start.Add(domain.SlotQuantum) {
		end := start.Add(duration)
		// Слот должен целиком помещаться в рабочие часы, окончание ровно в closing допустимо
		if end.After(closing) {
			break
		}

		if overlapsAny(domain.Interval{Start: start, End: end}, booked) {
			continue
		}

		slots = append(slots, start)
	}

	return slots
}

// IsSlotAvailable reports whether start is one of the slots ComputeAvailableSlots
// would return for the same inputs.
func IsSlotAvailable(workStart, workEnd, durationMinutes int, booked []domain.Interval, start time.Time) bool {
	for _, s := range ComputeAvailableSlots(workStart, workEnd, durationMinutes, booked, start) {
		if s.Equal(start) {
			return true
		}
	}
	return false
}

func validBounds(workStart, workEnd int) bool {
	return workStart >= 0 && workEnd <= 24 && workStart < workEnd
}

func overlapsAny(candidate domain.Interval, booked []domain.Interval) bool {
	for _, b := range booked {
		if b.Overlaps(candidate) {
			return true
		}
	}
	return false
}
