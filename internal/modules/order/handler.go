package order

import (
	"net/http"
	"strconv"

	"bengkel/internal/pkg/csvutil"
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
	rg.GET("/orders", h.List)
	rg.GET("/orders/export", h.Export)
	rg.GET("/orders/:id", h.Get)
	rg.POST("/orders", h.Create)
	rg.PUT("/orders/:id", h.Update)
	rg.DELETE("/orders/:id", h.Delete)
	rg.POST("/orders/:id/parts", h.AddPart)
	rg.DELETE("/orders/:id/parts/:partId", h.RemovePart)
	rg.POST("/orders/:id/payment", h.RecordPayment)
	rg.POST("/orders/:id/recommendation", h.Recommend)
}

func (h *Handler) List(c *gin.Context) {
	orders, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load orders")
		return
	}
	response.Success(c, http.StatusOK, orders)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid order ID")
		return
	}

	order, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Order not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load order")
		}
		return
	}
	response.Success(c, http.StatusOK, order)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreatePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	order, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrCustomerNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Customer not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create order")
		}
		return
	}
	response.Success(c, http.StatusCreated, order)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid order ID")
		return
	}

	var req UpdatePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	order, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update order")
		return
	}
	response.Success(c, http.StatusOK, order)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid order ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete order")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) AddPart(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid order ID")
		return
	}

	var req AddPartPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	order, err := h.service.AddPart(c.Request.Context(), id, req)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Order not found")
		case ErrPartNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Part not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to add part")
		}
		return
	}
	response.Success(c, http.StatusOK, order)
}

func (h *Handler) RemovePart(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid order ID")
		return
	}
	partID, err := strconv.ParseInt(c.Param("partId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid part ID")
		return
	}

	order, err := h.service.RemovePart(c.Request.Context(), id, partID)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Order not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to remove part")
		}
		return
	}
	response.Success(c, http.StatusOK, order)
}

func (h *Handler) RecordPayment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid order ID")
		return
	}

	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	result, err := h.service.RecordPayment(c.Request.Context(), id, req)
	if err != nil {
		switch err {
		case ErrMethodNotAllowed:
			response.Error(c, http.StatusBadRequest, "METHOD_NOT_ALLOWED", "Payment method is not active")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to record payment")
		}
		return
	}
	response.Success(c, http.StatusCreated, result)
}

func (h *Handler) Recommend(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid order ID")
		return
	}

	rec, err := h.service.Recommend(c.Request.Context(), id)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Order not found")
		default:
			response.Error(c, http.StatusBadGateway, "RECOMMENDATION_FAILED", "Could not produce a recommendation")
		}
		return
	}
	response.Success(c, http.StatusOK, rec)
}

func (h *Handler) Export(c *gin.Context) {
	rows, err := h.service.ExportRows(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to export orders")
		return
	}
	if err := csvutil.WriteAttachment(c.Writer, "daftar_order_servis.csv", rows); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to write CSV")
	}
}
