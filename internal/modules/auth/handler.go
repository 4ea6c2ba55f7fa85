package auth

import (
	"net/http"

	"bengkel/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/auth/users", h.Users)
	rg.POST("/auth/login", h.Login)
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.GET("/auth/me", h.Me)
}

func (h *Handler) Users(c *gin.Context) {
	users, err := h.service.Users(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load users")
		return
	}
	response.Success(c, http.StatusOK, users)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	res, err := h.service.Login(c.Request.Context(), req.Username)
	if err != nil {
		switch err {
		case ErrUserNotFound:
			response.Error(c, http.StatusUnauthorized, "USER_NOT_FOUND", "Unknown username")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to log in")
		}
		return
	}

	response.Success(c, http.StatusOK, res)
}

func (h *Handler) Me(c *gin.Context) {
	u, err := h.service.Me(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		switch err {
		case ErrUserNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User no longer exists")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load user")
		}
		return
	}
	response.Success(c, http.StatusOK, u)
}
