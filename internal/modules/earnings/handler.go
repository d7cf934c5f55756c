package earnings

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"taartu/internal/domain"
	"taartu/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/earnings", h.GetBusinessEarnings)
}

func (h *Handler) GetBusinessEarnings(c *gin.Context) {
	summary, err := h.service.Summarize(c.Request.Context(), c.GetInt64("user_id"), Query{
		Period:    c.DefaultQuery("period", "month"),
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	})
	if err != nil {
		if errors.Is(err, ErrBusinessNotFound) {
			response.Error(c, http.StatusNotFound, "Business not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to get business earnings")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"period":                  summary.Period,
		"total_bookings":          summary.TotalBookings,
		"total_revenue":           summary.TotalRevenue.StringFixed(2),
		"taartu_commission":       summary.TotalCommission.StringFixed(2),
		"business_earnings":       summary.BusinessEarnings.StringFixed(2),
		"average_commission_rate": summary.AverageCommissionRate.StringFixed(2),
		"business_model":          domain.ModelCommissionOnly,
	})
}
