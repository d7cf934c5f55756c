package business

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"taartu/internal/domain"
	"taartu/internal/pkg/response"
	"taartu/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/initialize", h.Initialize)
	rg.GET("/commission-rate", h.GetCommissionRate)
	rg.PUT("/commission-rate", h.UpdateCommissionRate)
	rg.GET("/model", h.GetBusinessModel)
}

func (h *Handler) Initialize(c *gin.Context) {
	var req InitializeBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, http.StatusUnprocessableEntity, "Validation failed", bindingErrors(err))
		return
	}

	b, err := h.service.Initialize(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to initialize business")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"business_id":     b.ID,
		"commission_rate": b.PlatformFeePercentage.StringFixed(2),
		"model_type":      b.ModelType(),
	})
}

func (h *Handler) GetCommissionRate(c *gin.Context) {
	b, err := h.service.GetOwned(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		h.respondError(c, err, "Failed to get commission rate")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"commission_rate":       b.CommissionRate().StringFixed(2),
		"commission_only_model": b.CommissionOnlyModel,
		"min_rate":              domain.MinCommissionRate.StringFixed(2),
		"max_rate":              domain.MaxCommissionRate.StringFixed(2),
		"default_rate":          domain.DefaultCommissionRate.StringFixed(2),
	})
}

func (h *Handler) UpdateCommissionRate(c *gin.Context) {
	var req UpdateCommissionRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, http.StatusUnprocessableEntity, "Validation failed", bindingErrors(err))
		return
	}

	b, err := h.service.UpdateRate(c.Request.Context(), c.GetInt64("user_id"), req.CommissionRate)
	if err != nil {
		h.respondError(c, err, "Failed to update commission rate")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"commission_rate": b.PlatformFeePercentage.StringFixed(2),
		"business_id":     b.ID,
	})
}

func (h *Handler) GetBusinessModel(c *gin.Context) {
	b, err := h.service.GetOwned(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		h.respondError(c, err, "Failed to get business model")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"model_type":                 b.ModelType(),
		"commission_rate":            b.CommissionRate().StringFixed(2),
		"commission_only_model":      b.CommissionOnlyModel,
		"subscription_model_enabled": b.SubscriptionModelEnabled,
		"constraints": rateConstraints{
			MinCommissionRate:     domain.MinCommissionRate.StringFixed(2),
			MaxCommissionRate:     domain.MaxCommissionRate.StringFixed(2),
			DefaultCommissionRate: domain.DefaultCommissionRate.StringFixed(2),
		},
	})
}

func (h *Handler) respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "Business not found")
	case errors.Is(err, ErrRateOutOfBounds):
		response.Error(c, http.StatusUnprocessableEntity, ErrRateOutOfBounds.Error())
	default:
		response.Error(c, http.StatusInternalServerError, fallback)
	}
}

func bindingErrors(err error) map[string]string {
	return validator.FromBindingError(err)
}
