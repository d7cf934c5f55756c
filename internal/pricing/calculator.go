package pricing

import (
	"errors"

	"github.com/shopspring/decimal"

	"taartu/internal/domain"
)

var (
	ErrInvalidQuantity   = errors.New("quantity must be at least 1")
	ErrInvalidRate       = errors.New("commission rate outside allowed bounds")
	ErrNegativeSubtotal  = errors.New("discount exceeds service price")
	ErrNegativePrice     = errors.New("service price must not be negative")
	ErrNegativeAdjusting = errors.New("discount and tax amounts must not be negative")
)

var oneHundred = decimal.NewFromInt(100)

// Input carries everything Calculate needs. UnitPrice is the per-unit service
// price; DiscountAmount and TaxAmount arrive already resolved (offer codes and
// tax rules live in external collaborators).
type Input struct {
	UnitPrice      decimal.Decimal
	Quantity       int
	DiscountAmount decimal.Decimal
	TaxAmount      decimal.Decimal
	CommissionRate decimal.Decimal
}

// Calculate produces the price breakdown for a booking. It is a pure
// function: no I/O, deterministic, safe for concurrent use.
//
// Order is fixed: subtotal = price*qty - discount, then commission =
// subtotal * rate / 100 rounded half-up to 2 decimal places, then
// grand total = subtotal + tax + commission.
func Calculate(in Input) (domain.PriceBreakdown, error) {
	if in.Quantity < 1 {
		return domain.PriceBreakdown{}, ErrInvalidQuantity
	}
	if in.UnitPrice.IsNegative() {
		return domain.PriceBreakdown{}, ErrNegativePrice
	}
	if in.DiscountAmount.IsNegative() || in.TaxAmount.IsNegative() {
		return domain.PriceBreakdown{}, ErrNegativeAdjusting
	}
	// Bounds hold even for callers that bypass the policy engine.
	if in.CommissionRate.LessThan(domain.MinCommissionRate) || in.CommissionRate.GreaterThan(domain.MaxCommissionRate) {
		return domain.PriceBreakdown{}, ErrInvalidRate
	}

	servicePrice := in.UnitPrice.Mul(decimal.NewFromInt(int64(in.Quantity)))

	subtotal := servicePrice.Sub(in.DiscountAmount)
	if subtotal.IsNegative() {
		return domain.PriceBreakdown{}, ErrNegativeSubtotal
	}

	commission := subtotal.Mul(in.CommissionRate).Div(oneHundred).Round(2)
	grandTotal := subtotal.Add(in.TaxAmount).Add(commission)

	return domain.PriceBreakdown{
		ServicePrice:     servicePrice,
		DiscountAmount:   in.DiscountAmount,
		Subtotal:         subtotal,
		TaxAmount:        in.TaxAmount,
		TaartuCommission: commission,
		GrandTotal:       grandTotal,
		CommissionRate:   in.CommissionRate,
	}, nil
}
