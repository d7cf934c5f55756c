package booking

import "taartu/internal/domain"

type CalculatePriceRequest struct {
	ServiceID  int64  `json:"service_id" binding:"required"`
	BusinessID int64  `json:"business_id" binding:"required"`
	Quantity   int    `json:"quantity" binding:"omitempty,min=1"`
	OfferCode  string `json:"offer_code"`
}

type CreateBookingRequest struct {
	ServiceID     int64  `json:"service_id" binding:"required"`
	BusinessID    int64  `json:"business_id" binding:"required"`
	EmployeeID    *int64 `json:"employee_id"`
	ScheduledDate string `json:"scheduled_date" binding:"required"`
	ScheduledTime string `json:"scheduled_time" binding:"required"`
	Quantity      int    `json:"quantity" binding:"omitempty,min=1"`
	CustomerNotes string `json:"customer_notes" binding:"omitempty,max=500"`
	OfferCode     string `json:"offer_code"`
}

// BreakdownResponse renders every monetary field with two decimal places.
type BreakdownResponse struct {
	ServicePrice     string `json:"service_price"`
	DiscountAmount   string `json:"discount_amount"`
	Subtotal         string `json:"subtotal"`
	TaxAmount        string `json:"tax_amount"`
	TaartuCommission string `json:"taartu_commission"`
	GrandTotal       string `json:"grand_total"`
	CommissionRate   string `json:"commission_rate"`
}

func toBreakdownResponse(b domain.PriceBreakdown) BreakdownResponse {
	return BreakdownResponse{
		ServicePrice:     b.ServicePrice.StringFixed(2),
		DiscountAmount:   b.DiscountAmount.StringFixed(2),
		Subtotal:         b.Subtotal.StringFixed(2),
		TaxAmount:        b.TaxAmount.StringFixed(2),
		TaartuCommission: b.TaartuCommission.StringFixed(2),
		GrandTotal:       b.GrandTotal.StringFixed(2),
		CommissionRate:   b.CommissionRate.StringFixed(2),
	}
}

type BookingResponse struct {
	ID            int64             `json:"id"`
	ServiceID     int64             `json:"service_id"`
	BusinessID    int64             `json:"business_id"`
	EmployeeID    *int64            `json:"employee_id,omitempty"`
	ScheduledDate string            `json:"scheduled_date"`
	ScheduledTime string            `json:"scheduled_time"`
	CustomerNotes string            `json:"customer_notes,omitempty"`
	Status        string            `json:"status"`
	PaymentStatus string            `json:"payment_status"`
	Breakdown     BreakdownResponse `json:"price_breakdown"`
}

func toBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID,
		ServiceID:     b.ServiceID,
		BusinessID:    b.BusinessID,
		EmployeeID:    b.EmployeeID,
		ScheduledDate: b.ScheduledDate.Format("2006-01-02"),
		ScheduledTime: b.ScheduledTime,
		CustomerNotes: b.CustomerNotes,
		Status:        string(b.Status),
		PaymentStatus: string(b.PaymentStatus),
		Breakdown:     toBreakdownResponse(b.Breakdown),
	}
}
