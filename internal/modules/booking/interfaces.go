package booking

import (
	"context"

	"github.com/shopspring/decimal"

	"taartu/internal/domain"
)

type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByIDForCustomer(ctx context.Context, id, customerID int64) (*domain.Booking, error)
}

type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

type BusinessRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Business, error)
}

// CommissionPolicy gates booking creation and supplies the rate to freeze
// into the booking.
type CommissionPolicy interface {
	ValidateTransactable(b *domain.Business) (decimal.Decimal, error)
}

// EventTracker records an analytics event. Implementations must never block
// and failures must never surface here.
type EventTracker interface {
	Track(name string, props map[string]any)
}
