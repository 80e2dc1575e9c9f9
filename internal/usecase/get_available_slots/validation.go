package get_available_slots

import (
	"fmt"
	"strings"
	"time"
)

// validateRequest проверяет, что выбраны барбер, услуга и дата
// Без них запрос к хранилищу не выполняется
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.BarberID) == "" {
		return fmt.Errorf("%w: barberID is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ServiceID) == "" {
		return fmt.Errorf("%w: serviceID is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, date.Location())
	return dateOnly.Before(nowOnly)
}
