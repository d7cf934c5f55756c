package business

import (
	"context"

	"github.com/shopspring/decimal"

	"taartu/internal/domain"
)

type BusinessRepository interface {
	Create(ctx context.Context, b *domain.Business) error
	GetByID(ctx context.Context, id int64) (*domain.Business, error)
	GetByUserID(ctx context.Context, userID int64) (*domain.Business, error)
	UpdateCommissionRate(ctx context.Context, id int64, rate decimal.Decimal) error
}

// EventTracker records an analytics event. Implementations must never block.
type EventTracker interface {
	Track(name string, props map[string]any)
}
