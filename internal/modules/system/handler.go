package system

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
	rg.GET("/system/profile", h.Profile)
	rg.POST("/system/reset", h.Reset)
}

func (h *Handler) Profile(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.Profile())
}

func (h *Handler) Reset(c *gin.Context) {
	if err := h.service.Reset(c.Request.Context()); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to reset data")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reset": true})
}
