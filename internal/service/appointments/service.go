package appointments

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-BarberBooking/internal/service/appointments/models"
)

// Service операции администратора над записями
// Сервис только отправляет запросы в хранилище: панель администратора
// узнает о результате из потока изменений, а не из ответа этих методов
type Service struct {
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(appointmentRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.AppointmentResponse, error) {
	appointment, err := s.get(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainAppointment(appointment), nil
}

// Confirm переводит запись pending -> confirmed
func (s *Service) Confirm(ctx context.Context, id string) error {
	return s.transition(ctx, "Confirm", id, domain.StatusConfirmed, (*domain.Appointment).CanBeConfirmed)
}

// Reject переводит запись pending -> rejected
func (s *Service) Reject(ctx context.Context, id string) error {
	return s.transition(ctx, "Reject", id, domain.StatusRejected, (*domain.Appointment).CanBeRejected)
}

// Delete удаляет не отклоненную запись
func (s *Service) Delete(ctx context.Context, id string) error {
	appointment, err := s.get(ctx, "Delete", id)
	if err != nil {
		return err
	}

	if !appointment.CanBeDeleted() {
		s.logger.Warn("Delete: appointment id=%s has status=%s and cannot be deleted", id, appointment.Status)
		return fmt.Errorf("%w: cannot delete %s appointment", ErrInvalidTransition, appointment.Status)
	}

	if err := s.appointmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Delete: appointment id=%s already removed", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Delete: repository error for appointment id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: appointment id=%s deleted", id)
	return nil
}

func (s *Service) transition(
	ctx context.Context,
	op string,
	id string,
	to domain.AppointmentStatus,
	allowed func(*domain.Appointment) bool,
) error {
	appointment, err := s.get(ctx, op, id)
	if err != nil {
		return err
	}

	if !allowed(appointment) {
		s.logger.Warn("%s: appointment id=%s has status=%s", op, id, appointment.Status)
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, appointment.Status, to)
	}

	// Условное обновление: статус меняется, только если он все еще тот, который мы прочитали
	err = s.appointmentRepo.UpdateStatus(ctx, id, appointment.Status, to)
	if err != nil {
		switch {
		case errors.Is(err, appointmentRepo.ErrAppointmentNotFound):
			s.logger.Warn("%s: appointment id=%s removed concurrently", op, id)
			return ErrAppointmentNotFound
		case errors.Is(err, appointmentRepo.ErrStatusChanged):
			s.logger.Warn("%s: appointment id=%s status changed concurrently", op, id)
			return fmt.Errorf("%w: status changed concurrently", ErrInvalidTransition)
		default:
			s.logger.Error("%s: repository error for appointment id=%s: %v", op, id, err)
			return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
		}
	}

	s.logger.Info("%s: appointment id=%s %s -> %s", op, id, appointment.Status, to)
	return nil
}

func (s *Service) get(ctx context.Context, op, id string) (*domain.Appointment, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: id is required", ErrInvalidInput)
	}

	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("%s: appointment id=%s not found", op, id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("%s: repository error for appointment id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	return appointment, nil
}
