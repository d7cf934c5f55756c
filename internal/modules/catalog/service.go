package catalog

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"taartu/internal/domain"
)

var (
	ErrBusinessNotFound = errors.New("business not found")
	ErrServiceNotFound  = errors.New("service not found")
	ErrNegativePrice    = errors.New("price must not be negative")
)

type ServiceRepository interface {
	Create(ctx context.Context, s *domain.Service) error
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	ListByBusiness(ctx context.Context, businessID int64) ([]domain.Service, error)
}

type BusinessRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.Business, error)
}

type Service struct {
	services   ServiceRepository
	businesses BusinessRepository
}

func NewService(services ServiceRepository, businesses BusinessRepository) *Service {
	return &Service{services: services, businesses: businesses}
}

// CreateService lists a new offering under the caller's business.
func (s *Service) CreateService(ctx context.Context, userID int64, req CreateServiceRequest) (*domain.Service, error) {
	biz, err := s.businesses.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBusinessNotFound
		}
		return nil, err
	}

	if req.Price.IsNegative() {
		return nil, ErrNegativePrice
	}

	svc := &domain.Service{
		BusinessID:      biz.ID,
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
	}
	if err := s.services.Create(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *Service) GetService(ctx context.Context, id int64) (*domain.Service, error) {
	svc, err := s.services.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	return svc, nil
}

func (s *Service) ListServices(ctx context.Context, businessID int64) ([]domain.Service, error) {
	return s.services.ListByBusiness(ctx, businessID)
}
