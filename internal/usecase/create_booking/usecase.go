package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/availability"
	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/appointment"
	barberRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/barber"
	serviceRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/service"
)

// UseCase use case для создания записи клиента
type UseCase struct {
	appointmentRepo AppointmentRepository
	serviceRepo     ServiceRepository
	barberRepo      BarberRepository
	txManager       TransactionManager
	metrics         Metrics
	policy          Policy
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	serviceRepo ServiceRepository,
	barberRepo BarberRepository,
	txManager TransactionManager,
	metrics Metrics,
	policy Policy,
	logger Logger,
) *UseCase {
	if policy.InitialStatus == "" {
		policy.InitialStatus = domain.StatusPending
	}
	if policy.Location == nil {
		policy.Location = time.Local
	}
	return &UseCase{
		appointmentRepo: appointmentRepo,
		serviceRepo:     serviceRepo,
		barberRepo:      barberRepo,
		txManager:       txManager,
		metrics:         metrics,
		policy:          policy,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
// Проверка пересечений и вставка выполняются в одной сериализуемой транзакции,
// поэтому две конкурентные записи на один интервал не могут зафиксироваться обе
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: barber=%s, service=%s, date=%s, time=%s",
		req.BarberID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Собираем время начала в зоне салона и проверяем, что оно не в прошлом
	now := uc.timeProvider.Now().In(uc.policy.Location)
	start, err := slotStart(req.Date, req.StartTime, uc.policy.Location)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if start.Before(now) {
		uc.logger.Warn("CreateBooking: start %s is in the past", start.Format(time.RFC3339))
		return nil, ErrInvalidDate
	}

	// 3. Получаем услугу
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if service.DurationMinutes <= 0 {
		uc.logger.Warn("CreateBooking: service id=%s has non-positive duration", service.ID)
		return nil, fmt.Errorf("%w: service duration must be positive", ErrInvalidInput)
	}

	// 4. Получаем барбера
	barber, err := uc.barberRepo.GetByID(ctx, req.BarberID)
	if err != nil {
		if errors.Is(err, barberRepo.ErrBarberNotFound) {
			uc.logger.Warn("CreateBooking: barber id=%s not found", req.BarberID)
			return nil, ErrBarberNotFound
		}
		uc.logger.Error("CreateBooking: failed to get barber id=%s: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: failed to get barber: %v", ErrInternal, err)
	}

	workStart, workEnd := barber.WorkingHours()

	// 5. Время должно лежать на сетке слотов и помещаться в рабочие часы
	if !availability.IsSlotAvailable(workStart, workEnd, service.DurationMinutes, nil, start) {
		uc.logger.Warn("CreateBooking: %s is not a valid slot for barber=%s (%d-%d, %d min)",
			req.StartTime, barber.ID, workStart, workEnd, service.DurationMinutes)
		return nil, ErrInvalidTimeSlot
	}

	appointment := &domain.Appointment{
		ClientName:  strings.TrimSpace(req.ClientName),
		ClientPhone: strings.TrimSpace(req.ClientPhone),
		ServiceID:   service.ID,
		BarberID:    barber.ID,
		// Денормализация имен на момент записи
		ServiceName: service.Name,
		BarberName:  barber.Name,
		StartTime:   start,
		EndTime:     start.Add(time.Duration(service.DurationMinutes) * time.Minute),
		Status:      uc.policy.InitialStatus,
		BarberDate:  domain.BarberDateKey(barber.ID, start),
	}

	var result *domain.Appointment

	// 6. Проверка и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Записи барбера на день с блокировкой (FOR UPDATE)
		existing, err := uc.appointmentRepo.GetActiveByBarberDate(txCtx, appointment.BarberDate)
		if err != nil {
			// Конкурентная транзакция по тем же строкам: обрабатывается как занятый слот
			if appointmentRepo.IsConflict(err) {
				return err
			}
			uc.logger.Error("CreateBooking: failed to get appointments for key=%s: %v", appointment.BarberDate, err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 6.2. Повторная проверка пересечений
		booked := make([]domain.Interval, 0, len(existing))
		for _, a := range existing {
			if a.IsActive() {
				booked = append(booked, a.Interval())
			}
		}
		if !availability.IsSlotAvailable(workStart, workEnd, service.DurationMinutes, booked, start) {
			return ErrSlotNotAvailable
		}

		// 6.3. Сохраняем запись
		created, err := uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			return err
		}

		result = created
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrSlotNotAvailable):
			uc.metrics.SlotConflict("overlap")
			uc.logger.Warn("CreateBooking: slot %s taken for barber=%s", start.Format(time.RFC3339), barber.ID)
			return nil, ErrSlotNotAvailable
		case appointmentRepo.IsConflict(err):
			uc.metrics.SlotConflict("concurrent_write")
			uc.logger.Warn("CreateBooking: concurrent write for barber=%s at %s: %v", barber.ID, start.Format(time.RFC3339), err)
			return nil, ErrSlotNotAvailable
		case errors.Is(err, ErrInternal):
			return nil, err
		default:
			uc.logger.Error("CreateBooking: failed to create appointment: %v", err)
			return nil, fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}
	}

	uc.metrics.AppointmentCreated(string(result.Status))
	uc.logger.Info("CreateBooking: successfully created appointment id=%s, status=%s", result.ID, result.Status)

	return fromDomain(result), nil
}
