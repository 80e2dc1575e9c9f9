package catalog

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-BarberBooking/internal/service/catalog/models"
)

// Service чтение каталога: услуги и барберы (шаги 1-2 мастера записи)
type Service struct {
	serviceRepo ServiceRepository
	barberRepo  BarberRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(serviceRepo ServiceRepository, barberRepo BarberRepository, logger Logger) *Service {
	return &Service{
		serviceRepo: serviceRepo,
		barberRepo:  barberRepo,
		logger:      logger,
	}
}

// ListServices возвращает все услуги
func (s *Service) ListServices(ctx context.Context) ([]models.ServiceResponse, error) {
	services, err := s.serviceRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListServices: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListServices - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListServices: fetched %d services", len(services))
	return models.FromDomainServices(services), nil
}

// ListBarbers возвращает всех барберов
func (s *Service) ListBarbers(ctx context.Context) ([]models.BarberResponse, error) {
	barbers, err := s.barberRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListBarbers: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListBarbers - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListBarbers: fetched %d barbers", len(barbers))
	return models.FromDomainBarbers(barbers), nil
}
