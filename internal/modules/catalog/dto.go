package catalog

import "github.com/shopspring/decimal"

type CreateServiceRequest struct {
	Name            string          `json:"name" binding:"required,max=255"`
	Description     string          `json:"description" binding:"omitempty,max=1000"`
	Price           decimal.Decimal `json:"price"`
	DurationMinutes int             `json:"duration_minutes" binding:"omitempty,min=5"`
}
