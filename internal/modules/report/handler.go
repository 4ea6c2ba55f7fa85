package report

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

// RegisterDashboard and RegisterReports are split because the two screens
// sit behind different capabilities.
func (h *Handler) RegisterDashboard(rg *gin.RouterGroup) {
	rg.GET("/dashboard", h.Dashboard)
}

func (h *Handler) RegisterReports(rg *gin.RouterGroup) {
	rg.GET("/reports", h.Report)
}

func (h *Handler) Dashboard(c *gin.Context) {
	dash, err := h.service.Dashboard(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build dashboard")
		return
	}
	response.Success(c, http.StatusOK, dash)
}

func (h *Handler) Report(c *gin.Context) {
	rep, err := h.service.Report(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build report")
		return
	}
	response.Success(c, http.StatusOK, rep)
}
