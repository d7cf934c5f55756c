package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"taartu/internal/domain"
)

type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

type serviceModel struct {
	ID              int64           `gorm:"column:id;primaryKey"`
	BusinessID      int64           `gorm:"column:business_id;index"`
	Name            string          `gorm:"column:name"`
	Description     string          `gorm:"column:description"`
	Price           decimal.Decimal `gorm:"column:price;type:decimal(10,2)"`
	DurationMinutes int             `gorm:"column:duration_minutes"`
	CreatedAt       time.Time       `gorm:"column:created_at"`
	UpdatedAt       time.Time       `gorm:"column:updated_at"`
}

func (serviceModel) TableName() string { return "services" }

func toDomainService(m serviceModel) *domain.Service {
	return &domain.Service{
		ID:              m.ID,
		BusinessID:      m.BusinessID,
		Name:            m.Name,
		Description:     m.Description,
		Price:           m.Price,
		DurationMinutes: m.DurationMinutes,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func (r *ServiceRepository) Create(ctx context.Context, s *domain.Service) error {
	m := serviceModel{
		BusinessID:      s.BusinessID,
		Name:            s.Name,
		Description:     s.Description,
		Price:           s.Price,
		DurationMinutes: s.DurationMinutes,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*s = *toDomainService(m)
	return nil
}

func (r *ServiceRepository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	var m serviceModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return toDomainService(m), nil
}

func (r *ServiceRepository) ListByBusiness(ctx context.Context, businessID int64) ([]domain.Service, error) {
	var rows []serviceModel
	if err := r.db.WithContext(ctx).Where("business_id = ?", businessID).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Service, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainService(m))
	}
	return out, nil
}
