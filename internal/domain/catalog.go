package domain

// Service is a bookable service from the catalog
type Service struct {
	ID              string
	Name            string
	Price           float64
	DurationMinutes int
}

// Barber is a staff member who takes appointments
type Barber struct {
	ID   string
	Name string

	// Nil when not configured; callers fall back to DefaultWorkingHours*
	WorkingHoursStart *int
	WorkingHoursEnd   *int
}

// WorkingHours returns the barber's day window with defaults applied
func (b *Barber) WorkingHours() (start, end int) {
	start, end = DefaultWorkingHoursStart, DefaultWorkingHoursEnd
	if b.WorkingHoursStart != nil {
		start = *b.WorkingHoursStart
	}
	if b.WorkingHoursEnd != nil {
		end = *b.WorkingHoursEnd
	}
	return start, end
}
