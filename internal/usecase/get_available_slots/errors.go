package get_available_slots

import "errors"

var (
	// ErrInvalidInput возвращается, когда не выбраны барбер, услуга или дата
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("get_available_slots: service not found")

	// ErrBarberNotFound возвращается, когда барбер не найден
	ErrBarberNotFound = errors.New("get_available_slots: barber not found")

	// ErrInvalidDate возвращается, когда дата в прошлом
	ErrInvalidDate = errors.New("get_available_slots: invalid date")

	// ErrNoAvailability возвращается, когда на выбранный день нет свободных слотов
	ErrNoAvailability = errors.New("get_available_slots: no availability on this date")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
