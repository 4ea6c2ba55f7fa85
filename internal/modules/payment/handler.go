package payment

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
	rg.GET("/payments", h.List)
	rg.GET("/payments/export", h.Export)
	rg.GET("/payments/invoice/:orderId", h.Invoice)
}

func (h *Handler) List(c *gin.Context) {
	payments, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load payments")
		return
	}
	response.Success(c, http.StatusOK, payments)
}

func (h *Handler) Invoice(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("orderId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid order ID")
		return
	}

	invoice, err := h.service.Invoice(c.Request.Context(), orderID)
	if err != nil {
		switch err {
		case ErrOrderNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Order not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build invoice")
		}
		return
	}
	response.Success(c, http.StatusOK, invoice)
}

func (h *Handler) Export(c *gin.Context) {
	rows, err := h.service.ExportRows(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to export payments")
		return
	}
	if err := csvutil.WriteAttachment(c.Writer, "riwayat_pembayaran.csv", rows); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to write CSV")
	}
}
