package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается, когда выбор не заполнен (услуга, барбер, дата, время, имя, телефон)
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrBarberNotFound возвращается, когда барбер не найден
	ErrBarberNotFound = errors.New("create_booking: barber not found")

	// ErrInvalidDate возвращается, когда выбранное время уже прошло
	ErrInvalidDate = errors.New("create_booking: booking time is in the past")

	// ErrInvalidTimeSlot возвращается, когда время не лежит на сетке слотов или выходит за рабочие часы
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrSlotNotAvailable возвращается, когда слот уже занят (в том числе конкурентной записью)
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
