package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/availability"
	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	barberRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/barber"
	serviceRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/service"
)

// UseCase use case для получения свободных слотов барбера на дату
type UseCase struct {
	appointmentRepo AppointmentRepository
	serviceRepo     ServiceRepository
	barberRepo      BarberRepository
	location        *time.Location
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
// location - локальная зона салона, в которой трактуются даты и рабочие часы
func NewUseCase(
	appointmentRepo AppointmentRepository,
	serviceRepo ServiceRepository,
	barberRepo BarberRepository,
	location *time.Location,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.Local
	}
	return &UseCase{
		appointmentRepo: appointmentRepo,
		serviceRepo:     serviceRepo,
		barberRepo:      barberRepo,
		location:        location,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: barber=%s, service=%s, date=%s",
		req.BarberID, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных: без барбера, услуги и даты не обращаемся к хранилищу
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Приводим дату и текущее время к локальной зоне салона
	now := uc.timeProvider.Now().In(uc.location)
	date := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, uc.location)

	if isDateInPast(date, now) {
		uc.logger.Warn("GetAvailableSlots: date %s is in the past", date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	// 3. Получаем услугу (длительность)
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if service.DurationMinutes <= 0 {
		uc.logger.Warn("GetAvailableSlots: service id=%s has non-positive duration %d", service.ID, service.DurationMinutes)
		return nil, fmt.Errorf("%w: service duration must be positive", ErrInvalidInput)
	}

	// 4. Получаем барбера (рабочие часы)
	barber, err := uc.barberRepo.GetByID(ctx, req.BarberID)
	if err != nil {
		if errors.Is(err, barberRepo.ErrBarberNotFound) {
			uc.logger.Warn("GetAvailableSlots: barber id=%s not found", req.BarberID)
			return nil, ErrBarberNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get barber id=%s: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: failed to get barber: %v", ErrInternal, err)
	}

	// 5. Получаем записи барбера на этот день одним запросом по составному ключу
	key := domain.BarberDateKey(barber.ID, date)
	appointments, err := uc.appointmentRepo.GetActiveByBarberDate(ctx, key)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments for key=%s: %v", key, err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	booked := make([]domain.Interval, 0, len(appointments))
	for _, a := range appointments {
		if a.IsActive() {
			booked = append(booked, a.Interval())
		}
	}

	// 6. Считаем свободные слоты
	workStart, workEnd := barber.WorkingHours()
	starts := availability.ComputeAvailableSlots(workStart, workEnd, service.DurationMinutes, booked, date)

	duration := time.Duration(service.DurationMinutes) * time.Minute
	slots := make([]Slot, 0, len(starts))
	for _, start := range starts {
		// Сегодня не предлагаем слоты, которые уже начались
		if start.Before(now) {
			continue
		}
		slots = append(slots, Slot{StartTime: start, EndTime: start.Add(duration)})
	}

	if len(slots) == 0 {
		uc.logger.Info("GetAvailableSlots: no availability for barber=%s on %s", barber.ID, date.Format(domain.DateFormat))
		return nil, ErrNoAvailability
	}

	uc.logger.Info("GetAvailableSlots: %d slots for barber=%s, service=%s, date=%s",
		len(slots), barber.ID, service.ID, date.Format(domain.DateFormat))

	return &Response{
		Date:            date,
		BarberID:        barber.ID,
		BarberName:      barber.Name,
		ServiceID:       service.ID,
		ServiceName:     service.Name,
		DurationMinutes: service.DurationMinutes,
		Slots:           slots,
	}, nil
}
