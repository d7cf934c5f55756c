package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"taartu/internal/domain"
)

type BusinessRepository struct {
	db *gorm.DB
}

func NewBusinessRepository(db *gorm.DB) *BusinessRepository {
	return &BusinessRepository{db: db}
}

type businessModel struct {
	ID                       int64           `gorm:"column:id;primaryKey"`
	UserID                   int64           `gorm:"column:user_id;index"`
	Name                     string          `gorm:"column:name"`
	Type                     string          `gorm:"column:type"`
	Location                 string          `gorm:"column:location"`
	Status                   string          `gorm:"column:status"`
	PlatformFeePercentage    decimal.Decimal `gorm:"column:platform_fee_percentage;type:decimal(5,2)"`
	CommissionOnlyModel      bool            `gorm:"column:commission_only_model"`
	SubscriptionModelEnabled bool            `gorm:"column:subscription_model_enabled"`
	CreatedAt                time.Time       `gorm:"column:created_at"`
	UpdatedAt                time.Time       `gorm:"column:updated_at"`
}

func (businessModel) TableName() string { return "businesses" }

func toDomainBusiness(m businessModel) *domain.Business {
	return &domain.Business{
		ID:                       m.ID,
		UserID:                   m.UserID,
		Name:                     m.Name,
		Type:                     m.Type,
		Location:                 m.Location,
		Status:                   domain.BusinessStatus(m.Status),
		PlatformFeePercentage:    m.PlatformFeePercentage,
		CommissionOnlyModel:      m.CommissionOnlyModel,
		SubscriptionModelEnabled: m.SubscriptionModelEnabled,
		CreatedAt:                m.CreatedAt,
		UpdatedAt:                m.UpdatedAt,
	}
}

func (r *BusinessRepository) Create(ctx context.Context, b *domain.Business) error {
	m := businessModel{
		UserID:                   b.UserID,
		Name:                     b.Name,
		Type:                     b.Type,
		Location:                 b.Location,
		Status:                   string(b.Status),
		PlatformFeePercentage:    b.PlatformFeePercentage,
		CommissionOnlyModel:      b.CommissionOnlyModel,
		SubscriptionModelEnabled: b.SubscriptionModelEnabled,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*b = *toDomainBusiness(m)
	return nil
}

func (r *BusinessRepository) GetByID(ctx context.Context, id int64) (*domain.Business, error) {
	var m businessModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return toDomainBusiness(m), nil
}

func (r *BusinessRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Business, error) {
	var m businessModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		return nil, err
	}
	return toDomainBusiness(m), nil
}

// UpdateCommissionRate applies a confirmed rate. Confirming a rate is also a
// model confirmation, so both model flags are forced in the same write.
// Last write wins on concurrent updates.
func (r *BusinessRepository) UpdateCommissionRate(ctx context.Context, id int64, rate decimal.Decimal) error {
	return r.db.WithContext(ctx).Model(&businessModel{}).Where("id = ?", id).Updates(map[string]any{
		"platform_fee_percentage":    rate,
		"commission_only_model":      true,
		"subscription_model_enabled": false,
	}).Error
}
