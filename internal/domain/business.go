package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Commission rate bounds for the commission-only model, in percent.
var (
	MinCommissionRate     = decimal.NewFromFloat(10.00)
	MaxCommissionRate     = decimal.NewFromFloat(15.00)
	DefaultCommissionRate = decimal.NewFromFloat(10.00)
)

type BusinessModel string

const (
	ModelCommissionOnly BusinessModel = "commission_only"
	ModelSubscription   BusinessModel = "subscription"
)

type BusinessStatus string

const (
	BusinessActive    BusinessStatus = "active"
	BusinessSuspended BusinessStatus = "suspended"
)

type Business struct {
	ID                       int64           `json:"id"`
	UserID                   int64           `json:"user_id"`
	Name                     string          `json:"name"`
	Type                     string          `json:"type"`
	Location                 string          `json:"location"`
	Status                   BusinessStatus  `json:"status"`
	PlatformFeePercentage    decimal.Decimal `json:"platform_fee_percentage"`
	CommissionOnlyModel      bool            `json:"commission_only_model"`
	SubscriptionModelEnabled bool            `json:"subscription_model_enabled"`
	CreatedAt                time.Time       `json:"created_at"`
	UpdatedAt                time.Time       `json:"updated_at"`
}

// CommissionRate returns the business's platform fee. A missing rate means
// the default, never zero.
func (b *Business) CommissionRate() decimal.Decimal {
	if b.PlatformFeePercentage.IsZero() {
		return DefaultCommissionRate
	}
	return b.PlatformFeePercentage
}

// ModelType collapses the two stored flags into one label. The flags stay
// persisted separately for compatibility with existing rows.
func (b *Business) ModelType() BusinessModel {
	if b.CommissionOnlyModel {
		return ModelCommissionOnly
	}
	return ModelSubscription
}
