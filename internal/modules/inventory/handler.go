package inventory

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
	rg.GET("/parts", h.List)
	rg.GET("/parts/low-stock", h.LowStock)
	rg.GET("/parts/export", h.Export)
	rg.GET("/parts/:id", h.Get)
	rg.POST("/parts", h.Create)
	rg.PUT("/parts/:id", h.Update)
	rg.DELETE("/parts/:id", h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	parts, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load parts")
		return
	}
	response.Success(c, http.StatusOK, parts)
}

func (h *Handler) LowStock(c *gin.Context) {
	threshold, _ := strconv.Atoi(c.DefaultQuery("threshold", "0"))
	parts, err := h.service.LowStock(c.Request.Context(), threshold)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load parts")
		return
	}
	response.Success(c, http.StatusOK, parts)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid part ID")
		return
	}

	part, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Part not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load part")
		}
		return
	}
	response.Success(c, http.StatusOK, part)
}

func (h *Handler) Create(c *gin.Context) {
	var req PartPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	part, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create part")
		return
	}
	response.Success(c, http.StatusCreated, part)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid part ID")
		return
	}

	var req PartPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	part, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update part")
		return
	}
	response.Success(c, http.StatusOK, part)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid part ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete part")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) Export(c *gin.Context) {
	rows, err := h.service.ExportRows(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to export parts")
		return
	}
	if err := csvutil.WriteAttachment(c.Writer, "inventori_suku_cadang.csv", rows); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to write CSV")
	}
}
