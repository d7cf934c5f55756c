package business

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"taartu/internal/analytics"
	"taartu/internal/domain"
)

// Service is the commission policy engine: it decides which businesses may
// transact and within which rate bounds, and owns the business lifecycle
// operations around those rules.
type Service struct {
	businesses BusinessRepository
	tracker    EventTracker
}

func NewService(businesses BusinessRepository, tracker EventTracker) *Service {
	return &Service{businesses: businesses, tracker: tracker}
}

// ValidateTransactable reports whether the business may take bookings and, if
// so, at which commission rate. An unset rate falls back to the 10% default,
// never to zero.
func (s *Service) ValidateTransactable(b *domain.Business) (decimal.Decimal, error) {
	if b == nil || !b.CommissionOnlyModel {
		return decimal.Decimal{}, ErrModelNotEligible
	}
	return b.CommissionRate(), nil
}

// ValidateRateUpdate checks the requested rate against the [10, 15] bounds,
// both inclusive.
func (s *Service) ValidateRateUpdate(rate decimal.Decimal) error {
	if rate.LessThan(domain.MinCommissionRate) || rate.GreaterThan(domain.MaxCommissionRate) {
		return ErrRateOutOfBounds
	}
	return nil
}

// Initialize registers a new business on the commission-only model with the
// default rate, regardless of business type.
func (s *Service) Initialize(ctx context.Context, userID int64, req InitializeBusinessRequest) (*domain.Business, error) {
	b := &domain.Business{
		UserID:                   userID,
		Name:                     req.BusinessName,
		Type:                     req.BusinessType,
		Location:                 req.Location,
		Status:                   domain.BusinessActive,
		PlatformFeePercentage:    domain.DefaultCommissionRate,
		CommissionOnlyModel:      true,
		SubscriptionModelEnabled: false,
	}
	if err := s.businesses.Create(ctx, b); err != nil {
		return nil, err
	}

	if s.tracker != nil {
		s.tracker.Track(analytics.EventBusinessInitialized, map[string]any{
			"business_id":     b.ID,
			"user_id":         userID,
			"business_type":   req.BusinessType,
			"commission_rate": domain.DefaultCommissionRate.StringFixed(2),
		})
	}

	return b, nil
}

// UpdateRate applies a new commission rate to the caller's business.
// Confirming a rate also confirms the commission-only model, so the model
// flags are forced in the same write.
func (s *Service) UpdateRate(ctx context.Context, userID int64, rate decimal.Decimal) (*domain.Business, error) {
	b, err := s.getOwned(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.ValidateRateUpdate(rate); err != nil {
		return nil, err
	}

	if err := s.businesses.UpdateCommissionRate(ctx, b.ID, rate); err != nil {
		return nil, err
	}

	if s.tracker != nil {
		s.tracker.Track(analytics.EventPlatformFeeConfirmed, map[string]any{
			"business_id":     b.ID,
			"commission_rate": rate.StringFixed(2),
			"user_id":         userID,
		})
	}

	b.PlatformFeePercentage = rate
	b.CommissionOnlyModel = true
	b.SubscriptionModelEnabled = false
	return b, nil
}

// GetOwned returns the caller's business.
func (s *Service) GetOwned(ctx context.Context, userID int64) (*domain.Business, error) {
	return s.getOwned(ctx, userID)
}

func (s *Service) getOwned(ctx context.Context, userID int64) (*domain.Business, error) {
	b, err := s.businesses.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}
