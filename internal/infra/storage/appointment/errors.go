package appointment

import (
	"errors"

	"github.com/lib/pq"
)

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointment.repository: appointment not found")

	// ErrSlotNotAvailable возвращается, когда интервал пересекается с существующей записью
	ErrSlotNotAvailable = errors.New("appointment.repository: slot not available")

	// ErrStatusChanged возвращается, когда статус записи изменился до обновления
	ErrStatusChanged = errors.New("appointment.repository: status changed concurrently")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("appointment.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("appointment.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("appointment.repository: failed to scan row")
)

// Коды ошибок PostgreSQL, означающие конфликт при записи
const (
	pgExclusionViolation   = "23P01"
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
)

// IsConflict сообщает, что ошибка вызвана конкурентной записью в тот же интервал:
// сработало exclusion-ограничение или сериализуемая транзакция не смогла зафиксироваться
func IsConflict(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrSlotNotAvailable) {
		return true
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case pgExclusionViolation, pgSerializationFailure, pgDeadlockDetected:
			return true
		}
	}
	return false
}
