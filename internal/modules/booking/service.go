package booking

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"taartu/internal/analytics"
	"taartu/internal/domain"
	"taartu/internal/pricing"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

type Service struct {
	bookings   BookingRepository
	services   ServiceRepository
	businesses BusinessRepository
	policy     CommissionPolicy
	offers     pricing.OfferResolver
	taxes      pricing.TaxResolver
	tracker    EventTracker

	now func() time.Time
}

func NewService(
	bookings BookingRepository,
	services ServiceRepository,
	businesses BusinessRepository,
	policy CommissionPolicy,
	offers pricing.OfferResolver,
	taxes pricing.TaxResolver,
	tracker EventTracker,
) *Service {
	return &Service{
		bookings:   bookings,
		services:   services,
		businesses: businesses,
		policy:     policy,
		offers:     offers,
		taxes:      taxes,
		tracker:    tracker,
		now:        time.Now,
	}
}

// CalculatePrice produces the breakdown a booking would freeze right now,
// without writing anything.
func (s *Service) CalculatePrice(ctx context.Context, req CalculatePriceRequest) (*domain.PriceBreakdown, error) {
	svc, biz, rate, err := s.loadTransactable(ctx, req.ServiceID, req.BusinessID)
	if err != nil {
		return nil, err
	}

	breakdown, err := s.calculate(ctx, svc, biz, rate, req.Quantity, req.OfferCode)
	if err != nil {
		return nil, err
	}
	return breakdown, nil
}

// CreateBooking validates the schedule and the business model, computes the
// breakdown, and persists the booking with the breakdown frozen in. The
// analytics event is best-effort.
func (s *Service) CreateBooking(ctx context.Context, customerID int64, req CreateBookingRequest) (*domain.Booking, error) {
	svc, biz, rate, err := s.loadTransactable(ctx, req.ServiceID, req.BusinessID)
	if err != nil {
		return nil, err
	}

	scheduledDate, err := s.validateSchedule(req.ScheduledDate, req.ScheduledTime)
	if err != nil {
		return nil, err
	}

	breakdown, err := s.calculate(ctx, svc, biz, rate, req.Quantity, req.OfferCode)
	if err != nil {
		return nil, err
	}

	b := &domain.Booking{
		CustomerID:    customerID,
		BusinessID:    biz.ID,
		ServiceID:     svc.ID,
		EmployeeID:    req.EmployeeID,
		ScheduledDate: scheduledDate,
		ScheduledTime: req.ScheduledTime,
		CustomerNotes: req.CustomerNotes,
		Status:        domain.BookingPending,
		PaymentStatus: domain.PaymentPending,
		Breakdown:     *breakdown,
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}

	if s.tracker != nil {
		s.tracker.Track(analytics.EventBookingCreated, map[string]any{
			"booking_id":        b.ID,
			"business_id":       biz.ID,
			"service_id":        svc.ID,
			"customer_id":       customerID,
			"commission_rate":   breakdown.CommissionRate.StringFixed(2),
			"total_amount":      breakdown.GrandTotal.StringFixed(2),
			"commission_amount": breakdown.TaartuCommission.StringFixed(2),
		})
	}

	return b, nil
}

// GetSummary returns the booking with its frozen breakdown. Only the
// booking's customer may read it; anyone else gets not-found.
func (s *Service) GetSummary(ctx context.Context, customerID, bookingID int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByIDForCustomer(ctx, bookingID, customerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *Service) loadTransactable(ctx context.Context, serviceID, businessID int64) (*domain.Service, *domain.Business, decimal.Decimal, error) {
	svc, err := s.services.GetByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, decimal.Decimal{}, ErrServiceNotFound
		}
		return nil, nil, decimal.Decimal{}, err
	}

	biz, err := s.businesses.GetByID(ctx, businessID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, decimal.Decimal{}, ErrBusinessNotFound
		}
		return nil, nil, decimal.Decimal{}, err
	}

	rate, err := s.policy.ValidateTransactable(biz)
	if err != nil {
		return nil, nil, decimal.Decimal{}, err
	}
	return svc, biz, rate, nil
}

func (s *Service) calculate(ctx context.Context, svc *domain.Service, biz *domain.Business, rate decimal.Decimal, quantity int, offerCode string) (*domain.PriceBreakdown, error) {
	if quantity == 0 {
		quantity = 1
	}

	servicePrice := svc.Price.Mul(decimal.NewFromInt(int64(quantity)))

	discount, err := s.offers.ResolveDiscount(ctx, offerCode, servicePrice)
	if err != nil {
		return nil, err
	}

	tax := decimal.Zero
	if subtotal := servicePrice.Sub(discount); !subtotal.IsNegative() {
		tax, err = s.taxes.ResolveTax(ctx, biz.ID, subtotal)
		if err != nil {
			return nil, err
		}
	}

	breakdown, err := pricing.Calculate(pricing.Input{
		UnitPrice:      svc.Price,
		Quantity:       quantity,
		DiscountAmount: discount,
		TaxAmount:      tax,
		CommissionRate: rate,
	})
	if err != nil {
		return nil, err
	}
	return &breakdown, nil
}

// validateSchedule parses the date and time-of-day and requires the combined
// instant to be strictly in the future.
func (s *Service) validateSchedule(dateStr, timeStr string) (time.Time, error) {
	day, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return time.Time{}, ErrInvalidSchedule
	}
	tod, err := time.Parse(timeLayout, timeStr)
	if err != nil {
		return time.Time{}, ErrInvalidSchedule
	}

	at := time.Date(day.Year(), day.Month(), day.Day(), tod.Hour(), tod.Minute(), 0, 0, time.UTC)
	if !at.After(s.now().UTC()) {
		return time.Time{}, ErrInvalidSchedule
	}
	return day, nil
}
