package catalog

import (
	"errors"
	"net/http"
	"strconv"

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
	rg.POST("/services", h.CreateService)
	rg.GET("/services", h.ListServices)
	rg.GET("/services/:id", h.GetService)
}

func (h *Handler) CreateService(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, http.StatusUnprocessableEntity, "Validation failed", validator.FromBindingError(err))
		return
	}

	svc, err := h.service.CreateService(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrBusinessNotFound):
			response.Error(c, http.StatusNotFound, "Business not found")
		case errors.Is(err, ErrNegativePrice):
			response.ValidationError(c, http.StatusUnprocessableEntity, "Validation failed",
				map[string]string{"price": "must not be negative"})
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to create service")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"service": toServiceResponse(svc)})
}

func (h *Handler) ListServices(c *gin.Context) {
	businessID, err := strconv.ParseInt(c.Query("business_id"), 10, 64)
	if err != nil {
		response.ValidationError(c, http.StatusUnprocessableEntity, "Validation failed",
			map[string]string{"business_id": "required"})
		return
	}

	services, err := h.service.ListServices(c.Request.Context(), businessID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list services")
		return
	}

	out := make([]gin.H, 0, len(services))
	for i := range services {
		out = append(out, toServiceResponse(&services[i]))
	}
	response.Success(c, http.StatusOK, gin.H{"services": out})
}

func (h *Handler) GetService(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "Service not found")
		return
	}

	svc, err := h.service.GetService(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrServiceNotFound) {
			response.Error(c, http.StatusNotFound, "Service not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to get service")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"service": toServiceResponse(svc)})
}

func toServiceResponse(s *domain.Service) gin.H {
	return gin.H{
		"id":               s.ID,
		"business_id":      s.BusinessID,
		"name":             s.Name,
		"description":      s.Description,
		"price":            s.Price.StringFixed(2),
		"duration_minutes": s.DurationMinutes,
	}
}
