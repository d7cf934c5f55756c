package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service is a bookable offering listed by a business. Read-only input to
// price calculation: the unit price is snapshotted into the booking.
type Service struct {
	ID              int64           `json:"id"`
	BusinessID      int64           `json:"business_id"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	Price           decimal.Decimal `json:"price"`
	DurationMinutes int             `json:"duration_minutes,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
