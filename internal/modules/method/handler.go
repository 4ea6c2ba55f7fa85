package method

import (
	"net/http"
	"strconv"

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
	rg.GET("/payment-methods", h.List)
	rg.GET("/payment-methods/active", h.Active)
	rg.GET("/payment-methods/:id", h.Get)
	rg.POST("/payment-methods", h.Create)
	rg.PUT("/payment-methods/:id", h.Update)
	rg.DELETE("/payment-methods/:id", h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	methods, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load payment methods")
		return
	}
	response.Success(c, http.StatusOK, methods)
}

func (h *Handler) Active(c *gin.Context) {
	methods, err := h.service.Active(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load payment methods")
		return
	}
	response.Success(c, http.StatusOK, methods)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid payment method ID")
		return
	}

	m, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Payment method not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load payment method")
		}
		return
	}
	response.Success(c, http.StatusOK, m)
}

func (h *Handler) Create(c *gin.Context) {
	var req MethodPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	m, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create payment method")
		return
	}
	response.Success(c, http.StatusCreated, m)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid payment method ID")
		return
	}

	var req MethodPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	m, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update payment method")
		return
	}
	response.Success(c, http.StatusOK, m)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid payment method ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete payment method")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
