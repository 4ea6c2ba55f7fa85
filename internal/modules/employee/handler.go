package employee

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
	rg.GET("/employees", h.List)
	rg.GET("/employees/mechanics", h.Mechanics)
	rg.GET("/employees/export", h.Export)
	rg.GET("/employees/:id", h.Get)
	rg.POST("/employees", h.Create)
	rg.PUT("/employees/:id", h.Update)
	rg.DELETE("/employees/:id", h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	employees, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load employees")
		return
	}
	response.Success(c, http.StatusOK, employees)
}

func (h *Handler) Mechanics(c *gin.Context) {
	mechanics, err := h.service.Mechanics(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load mechanics")
		return
	}
	response.Success(c, http.StatusOK, mechanics)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid employee ID")
		return
	}

	employee, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Employee not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load employee")
		}
		return
	}
	response.Success(c, http.StatusOK, employee)
}

func (h *Handler) Create(c *gin.Context) {
	var req EmployeePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	employee, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create employee")
		return
	}
	response.Success(c, http.StatusCreated, employee)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid employee ID")
		return
	}

	var req EmployeePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	employee, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update employee")
		return
	}
	response.Success(c, http.StatusOK, employee)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid employee ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete employee")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) Export(c *gin.Context) {
	rows, err := h.service.ExportRows(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to export employees")
		return
	}
	if err := csvutil.WriteAttachment(c.Writer, "daftar_karyawan.csv", rows); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to write CSV")
	}
}
