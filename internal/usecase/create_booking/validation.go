package create_booking

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// validateRequest проверяет, что выбор заполнен полностью, до любых обращений к хранилищу
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.ServiceID) == "" {
		return fmt.Errorf("%w: serviceID is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.BarberID) == "" {
		return fmt.Errorf("%w: barberID is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.StartTime) == "" {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if _, err := time.Parse(domain.TimeFormat, req.StartTime); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	name := strings.TrimSpace(req.ClientName)
	if name == "" {
		return fmt.Errorf("%w: clientName is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(name) > domain.MaxClientNameLength {
		return fmt.Errorf("%w: clientName is too long", ErrInvalidInput)
	}

	phone := strings.TrimSpace(req.ClientPhone)
	if phone == "" {
		return fmt.Errorf("%w: clientPhone is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(phone) > domain.MaxClientPhoneLength {
		return fmt.Errorf("%w: clientPhone is too long", ErrInvalidInput)
	}

	return nil
}

// slotStart собирает абсолютное время начала из даты и "HH:MM" в зоне loc
func slotStart(date time.Time, hhmm string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse(domain.TimeFormat, hhmm)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, loc), nil
}
