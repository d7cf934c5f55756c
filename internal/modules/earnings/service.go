package earnings

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"taartu/internal/domain"
)

var ErrBusinessNotFound = errors.New("business not found")

const dateLayout = "2006-01-02"

type BookingLister interface {
	ListCompleted(ctx context.Context, businessID int64, from, to time.Time) ([]domain.Booking, error)
}

type BusinessRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.Business, error)
}

// Query selects the reporting window. An explicit date range wins over the
// period shorthand; otherwise period is "month" or "week" of the current
// calendar (weeks start on Monday), defaulting to month.
type Query struct {
	Period    string
	StartDate string
	EndDate   string
}

type Summary struct {
	Period                string
	TotalBookings         int
	TotalRevenue          decimal.Decimal
	TotalCommission       decimal.Decimal
	BusinessEarnings      decimal.Decimal
	AverageCommissionRate decimal.Decimal
}

// Service rolls completed bookings up into a period summary. Read-only.
type Service struct {
	bookings   BookingLister
	businesses BusinessRepository

	now func() time.Time
}

func NewService(bookings BookingLister, businesses BusinessRepository) *Service {
	return &Service{bookings: bookings, businesses: businesses, now: time.Now}
}

// Summarize aggregates the caller's completed bookings over the selected
// window. The sums come from the frozen per-booking breakdowns, so a later
// rate change never rewrites history.
func (s *Service) Summarize(ctx context.Context, userID int64, q Query) (*Summary, error) {
	biz, err := s.businesses.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBusinessNotFound
		}
		return nil, err
	}

	period, from, to, err := s.resolveWindow(q)
	if err != nil {
		return nil, err
	}

	rows, err := s.bookings.ListCompleted(ctx, biz.ID, from, to)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		Period:                period,
		TotalBookings:         len(rows),
		AverageCommissionRate: domain.DefaultCommissionRate,
	}

	if len(rows) == 0 {
		return summary, nil
	}

	rateSum := decimal.Zero
	for _, b := range rows {
		summary.TotalRevenue = summary.TotalRevenue.Add(b.Breakdown.GrandTotal)
		summary.TotalCommission = summary.TotalCommission.Add(b.Breakdown.TaartuCommission)
		rateSum = rateSum.Add(b.Breakdown.CommissionRate)
	}
	summary.BusinessEarnings = summary.TotalRevenue.Sub(summary.TotalCommission)
	summary.AverageCommissionRate = rateSum.Div(decimal.NewFromInt(int64(len(rows)))).Round(2)

	return summary, nil
}

// resolveWindow returns a half-open [from, to) range.
func (s *Service) resolveWindow(q Query) (string, time.Time, time.Time, error) {
	if q.StartDate != "" && q.EndDate != "" {
		from, err := time.Parse(dateLayout, q.StartDate)
		if err != nil {
			return "", time.Time{}, time.Time{}, err
		}
		end, err := time.Parse(dateLayout, q.EndDate)
		if err != nil {
			return "", time.Time{}, time.Time{}, err
		}
		return "custom", from, end.AddDate(0, 0, 1), nil
	}

	now := s.now().UTC()
	switch q.Period {
	case "week":
		// Monday 00:00 of the current week.
		offset := (int(now.Weekday()) + 6) % 7
		monday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -offset)
		return "week", monday, monday.AddDate(0, 0, 7), nil
	default:
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		return "month", first, first.AddDate(0, 1, 0), nil
	}
}
