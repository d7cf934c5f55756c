package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

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
	rg.POST("/auth/register", h.Register)
	rg.POST("/auth/login", h.Login)
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, http.StatusUnprocessableEntity, "Validation failed", validator.FromBindingError(err))
		return
	}

	result, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			response.Error(c, http.StatusUnprocessableEntity, ErrEmailTaken.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to register")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"token": result.Token,
		"user":  toUserPublic(result),
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, http.StatusUnprocessableEntity, "Validation failed", validator.FromBindingError(err))
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, ErrInvalidCredentials.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to login")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"token": result.Token,
		"user":  toUserPublic(result),
	})
}

func toUserPublic(r *AuthResult) UserPublic {
	return UserPublic{
		ID:    r.User.ID,
		Role:  string(r.User.Role),
		Name:  r.User.Name,
		Email: r.User.Email,
	}
}
