package repository

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/gorm"

	"taartu/internal/analytics"
)

// AnalyticsRepository persists tracked events. It backs the async tracker,
// which already shields callers from failures here.
type AnalyticsRepository struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

type analyticsEventModel struct {
	ID         string    `gorm:"column:id;primaryKey;type:uuid"`
	Name       string    `gorm:"column:name;index"`
	Properties string    `gorm:"column:properties;type:text"`
	OccurredAt time.Time `gorm:"column:occurred_at"`
}

func (analyticsEventModel) TableName() string { return "analytics_events" }

func (r *AnalyticsRepository) Save(ctx context.Context, e analytics.Event) error {
	props, err := json.Marshal(e.Properties)
	if err != nil {
		return err
	}

	m := analyticsEventModel{
		ID:         e.ID.String(),
		Name:       e.Name,
		Properties: string(props),
		OccurredAt: e.OccurredAt,
	}
	return r.db.WithContext(ctx).Create(&m).Error
}
