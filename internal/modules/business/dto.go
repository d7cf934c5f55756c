package business

import "github.com/shopspring/decimal"

type InitializeBusinessRequest struct {
	BusinessName string `json:"business_name" binding:"required,max=255"`
	BusinessType string `json:"business_type" binding:"required,max=100"`
	Location     string `json:"location" binding:"required,max=255"`
}

type UpdateCommissionRateRequest struct {
	CommissionRate decimal.Decimal `json:"commission_rate" binding:"required"`
}

type rateConstraints struct {
	MinCommissionRate     string `json:"min_commission_rate"`
	MaxCommissionRate     string `json:"max_commission_rate"`
	DefaultCommissionRate string `json:"default_commission_rate"`
}
