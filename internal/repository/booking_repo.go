package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"taartu/internal/domain"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID            int64     `gorm:"column:id;primaryKey"`
	CustomerID    int64     `gorm:"column:customer_id;index"`
	BusinessID    int64     `gorm:"column:business_id;index"`
	ServiceID     int64     `gorm:"column:service_id"`
	EmployeeID    *int64    `gorm:"column:employee_id"`
	ScheduledDate time.Time `gorm:"column:scheduled_date"`
	ScheduledTime string    `gorm:"column:scheduled_time"`
	CustomerNotes string    `gorm:"column:customer_notes;type:text"`
	Status        string    `gorm:"column:status;index"`
	PaymentStatus string    `gorm:"column:payment_status"`

	// Breakdown columns are written once at creation and never updated.
	ServicePrice     decimal.Decimal `gorm:"column:service_price;type:decimal(10,2)"`
	DiscountAmount   decimal.Decimal `gorm:"column:discount_amount;type:decimal(10,2)"`
	Subtotal         decimal.Decimal `gorm:"column:subtotal;type:decimal(10,2)"`
	TaxAmount        decimal.Decimal `gorm:"column:tax_amount;type:decimal(10,2)"`
	TaartuCommission decimal.Decimal `gorm:"column:taartu_commission;type:decimal(10,2)"`
	GrandTotal       decimal.Decimal `gorm:"column:grand_total;type:decimal(10,2)"`
	CommissionRate   decimal.Decimal `gorm:"column:commission_rate;type:decimal(5,2)"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	return &domain.Booking{
		ID:            m.ID,
		CustomerID:    m.CustomerID,
		BusinessID:    m.BusinessID,
		ServiceID:     m.ServiceID,
		EmployeeID:    m.EmployeeID,
		ScheduledDate: m.ScheduledDate,
		ScheduledTime: m.ScheduledTime,
		CustomerNotes: m.CustomerNotes,
		Status:        domain.BookingStatus(m.Status),
		PaymentStatus: domain.PaymentStatus(m.PaymentStatus),
		Breakdown: domain.PriceBreakdown{
			ServicePrice:     m.ServicePrice,
			DiscountAmount:   m.DiscountAmount,
			Subtotal:         m.Subtotal,
			TaxAmount:        m.TaxAmount,
			TaartuCommission: m.TaartuCommission,
			GrandTotal:       m.GrandTotal,
			CommissionRate:   m.CommissionRate,
		},
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:               b.ID,
		CustomerID:       b.CustomerID,
		BusinessID:       b.BusinessID,
		ServiceID:        b.ServiceID,
		EmployeeID:       b.EmployeeID,
		ScheduledDate:    b.ScheduledDate,
		ScheduledTime:    b.ScheduledTime,
		CustomerNotes:    b.CustomerNotes,
		Status:           string(b.Status),
		PaymentStatus:    string(b.PaymentStatus),
		ServicePrice:     b.Breakdown.ServicePrice,
		DiscountAmount:   b.Breakdown.DiscountAmount,
		Subtotal:         b.Breakdown.Subtotal,
		TaxAmount:        b.Breakdown.TaxAmount,
		TaartuCommission: b.Breakdown.TaartuCommission,
		GrandTotal:       b.Breakdown.GrandTotal,
		CommissionRate:   b.Breakdown.CommissionRate,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return toDomainBooking(m), nil
}

// GetByIDForCustomer returns the booking only when it belongs to the given
// customer; otherwise gorm.ErrRecordNotFound, so callers cannot distinguish
// "absent" from "not yours".
func (r *BookingRepository) GetByIDForCustomer(ctx context.Context, id, customerID int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).Where("id = ? AND customer_id = ?", id, customerID).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

// ListCompleted returns completed bookings for one business scheduled inside
// [from, to).
func (r *BookingRepository) ListCompleted(ctx context.Context, businessID int64, from, to time.Time) ([]domain.Booking, error) {
	var rows []bookingModel
	tx := r.db.WithContext(ctx).
		Where("business_id = ? AND status = ?", businessID, string(domain.BookingCompleted)).
		Where("scheduled_date >= ? AND scheduled_date < ?", from, to).
		Order("scheduled_date")
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	return r.db.WithContext(ctx).Model(&bookingModel{}).Where("id = ?", id).
		Update("status", string(status)).Error
}
