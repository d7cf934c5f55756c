package booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"taartu/internal/domain"
	"taartu/internal/modules/business"
	"taartu/internal/pkg/response"
	"taartu/internal/pkg/validator"
	"taartu/internal/pricing"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings/calculate-price", h.CalculatePrice)
	rg.POST("/bookings", h.CreateBooking)
	rg.GET("/bookings/:bookingId/summary", h.GetBookingSummary)
}

func (h *Handler) CalculatePrice(c *gin.Context) {
	var req CalculatePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, http.StatusUnprocessableEntity, "Validation failed", validator.FromBindingError(err))
		return
	}

	breakdown, err := h.service.CalculatePrice(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err, "Failed to calculate price")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"price_breakdown": toBreakdownResponse(*breakdown),
		"business_model":  domain.ModelCommissionOnly,
		"commission_rate": breakdown.CommissionRate.StringFixed(2),
	})
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, http.StatusUnprocessableEntity, "Validation failed", validator.FromBindingError(err))
		return
	}

	b, err := h.service.CreateBooking(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		h.respondError(c, err, "Failed to create booking")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"booking_id":      b.ID,
		"price_breakdown": toBreakdownResponse(b.Breakdown),
		"business_model":  domain.ModelCommissionOnly,
		"commission_rate": b.Breakdown.CommissionRate.StringFixed(2),
	})
}

func (h *Handler) GetBookingSummary(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("bookingId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "Booking not found")
		return
	}

	b, err := h.service.GetSummary(c.Request.Context(), c.GetInt64("user_id"), bookingID)
	if err != nil {
		h.respondError(c, err, "Failed to get booking summary")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"booking":         toBookingResponse(b),
		"price_breakdown": toBreakdownResponse(b.Breakdown),
		"business_model":  domain.ModelCommissionOnly,
	})
}

func (h *Handler) respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrServiceNotFound):
		response.ValidationError(c, http.StatusUnprocessableEntity, "Validation failed",
			map[string]string{"service_id": "service does not exist"})
	case errors.Is(err, ErrBusinessNotFound):
		response.ValidationError(c, http.StatusUnprocessableEntity, "Validation failed",
			map[string]string{"business_id": "business does not exist"})
	case errors.Is(err, business.ErrModelNotEligible):
		response.Error(c, http.StatusUnprocessableEntity, "Business must use commission-only model")
	case errors.Is(err, ErrInvalidSchedule):
		response.ValidationError(c, http.StatusUnprocessableEntity, "Validation failed",
			map[string]string{"scheduled_date": "must be a valid date and time in the future"})
	case errors.Is(err, pricing.ErrInvalidQuantity):
		response.ValidationError(c, http.StatusUnprocessableEntity, "Validation failed",
			map[string]string{"quantity": "must be at least 1"})
	case errors.Is(err, pricing.ErrNegativeSubtotal):
		response.ValidationError(c, http.StatusUnprocessableEntity, "Validation failed",
			map[string]string{"offer_code": "discount exceeds service price"})
	case errors.Is(err, pricing.ErrInvalidRate):
		response.Error(c, http.StatusUnprocessableEntity, pricing.ErrInvalidRate.Error())
	case errors.Is(err, ErrBookingNotFound):
		response.Error(c, http.StatusNotFound, "Booking not found")
	default:
		response.Error(c, http.StatusInternalServerError, fallback)
	}
}
