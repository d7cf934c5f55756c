package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

// PriceBreakdown is the itemized price of a booking. It is computed once at
// booking time and embedded into the booking row; the stored copy never
// changes even if the business's commission rate does.
type PriceBreakdown struct {
	ServicePrice     decimal.Decimal `json:"service_price"`
	DiscountAmount   decimal.Decimal `json:"discount_amount"`
	Subtotal         decimal.Decimal `json:"subtotal"`
	TaxAmount        decimal.Decimal `json:"tax_amount"`
	TaartuCommission decimal.Decimal `json:"taartu_commission"`
	GrandTotal       decimal.Decimal `json:"grand_total"`
	CommissionRate   decimal.Decimal `json:"commission_rate"`
}

type Booking struct {
	ID            int64         `json:"id"`
	CustomerID    int64         `json:"customer_id"`
	BusinessID    int64         `json:"business_id"`
	ServiceID     int64         `json:"service_id"`
	EmployeeID    *int64        `json:"employee_id,omitempty"`
	ScheduledDate time.Time     `json:"scheduled_date"`
	ScheduledTime string        `json:"scheduled_time"`
	CustomerNotes string        `json:"customer_notes,omitempty"`
	Status        BookingStatus `json:"status"`
	PaymentStatus PaymentStatus `json:"payment_status"`

	Breakdown PriceBreakdown `json:"price_breakdown"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
