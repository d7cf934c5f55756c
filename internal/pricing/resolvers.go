package pricing

import (
	"context"

	"github.com/shopspring/decimal"
)

// OfferResolver turns an offer code into a discount amount for the given
// service price. Implementations must return a non-negative amount; an empty
// or unknown code resolves to zero rather than an error.
type OfferResolver interface {
	ResolveDiscount(ctx context.Context, offerCode string, servicePrice decimal.Decimal) (decimal.Decimal, error)
}

// TaxResolver supplies the tax amount owed on a subtotal. Jurisdiction rules
// live behind this interface.
type TaxResolver interface {
	ResolveTax(ctx context.Context, businessID int64, subtotal decimal.Decimal) (decimal.Decimal, error)
}

// NoOffers ignores every offer code.
type NoOffers struct{}

func (NoOffers) ResolveDiscount(context.Context, string, decimal.Decimal) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

// ZeroTax applies no tax.
type ZeroTax struct{}

func (ZeroTax) ResolveTax(context.Context, int64, decimal.Decimal) (decimal.Decimal, error) {
	return decimal.Zero, nil
}
