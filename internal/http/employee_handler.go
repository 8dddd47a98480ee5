package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"datosempleado/internal/domain"
	"datosempleado/internal/repository"
)

const (
	defaultPage  = 1
	defaultLimit = 5
	maxLimit     = 100
)

// employeeRequest es el cuerpo de create/update: el registro completo menos
// el identificador. Age usa binding required, así que cero cuenta como
// ausente, igual que los campos de texto vacíos.
type employeeRequest struct {
	FirstName     string `json:"firstName" binding:"required"`
	LastName      string `json:"lastName" binding:"required"`
	Address       string `json:"address"`
	Age           int    `json:"age" binding:"required"`
	Profession    string `json:"profession"`
	MaritalStatus string `json:"maritalStatus"`
}

func (r employeeRequest) toEmployee(id int) domain.Employee {
	return domain.Employee{
		ID:            id,
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Address:       r.Address,
		Age:           r.Age,
		Profession:    r.Profession,
		MaritalStatus: r.MaritalStatus,
	}
}

// EmployeeHandler mantiene dependencias para los endpoints de registros.
type EmployeeHandler struct {
	logger    *zap.Logger
	employees repository.EmployeeRepository
	ping      func(ctx context.Context) error
}

// NewEmployeeHandler crea una instancia de EmployeeHandler. ping puede ser
// nil cuando no hay base de datos que chequear (tests).
func NewEmployeeHandler(logger *zap.Logger, employees repository.EmployeeRepository, ping func(ctx context.Context) error) *EmployeeHandler {
	return &EmployeeHandler{logger: logger, employees: employees, ping: ping}
}

// List maneja GET /records. page y limit inválidos caen a los defaults en
// silencio; páginas fuera de rango devuelven data vacía con metadatos válidos.
func (h *EmployeeHandler) List(c *gin.Context) {
	page := atoiDefault(c.Query("page"), defaultPage)
	limit := atoiDefault(c.Query("limit"), defaultLimit)
	if limit > maxLimit {
		limit = maxLimit
	}
	offset := (page - 1) * limit

	total, err := h.employees.Count(c.Request.Context())
	if err != nil {
		h.logger.Error("count employees failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not read records"})
		return
	}

	data, err := h.employees.List(c.Request.Context(), limit, offset)
	if err != nil {
		h.logger.Error("list employees failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not read records"})
		return
	}
	if data == nil {
		data = []domain.Employee{}
	}

	totalPages := (total + limit - 1) / limit
	c.JSON(http.StatusOK, gin.H{
		"data":       data,
		"page":       page,
		"limit":      limit,
		"total":      total,
		"totalPages": totalPages,
	})
}

// Create maneja POST /records. La respuesta es el id generado más los campos
// enviados tal cual, sin releer el registro.
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req employeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "firstName, lastName and age are required"})
		return
	}

	id, err := h.employees.Create(c.Request.Context(), req.toEmployee(0))
	if err != nil {
		h.logger.Error("create employee failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create record"})
		return
	}

	c.JSON(http.StatusCreated, req.toEmployee(id))
}

// Update maneja PUT /records/:id. Sobrescribe todos los campos sin condición;
// cero filas afectadas es 404.
func (h *EmployeeHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
		return
	}

	var req employeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "firstName, lastName and age are required"})
		return
	}

	if err := h.employees.Update(c.Request.Context(), req.toEmployee(id)); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
			return
		}
		h.logger.Error("update employee failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update record"})
		return
	}

	c.JSON(http.StatusOK, req.toEmployee(id))
}

// Delete maneja DELETE /records/:id.
func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
		return
	}

	if err := h.employees.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
			return
		}
		h.logger.Error("delete employee failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete record"})
		return
	}

	c.Status(http.StatusNoContent)
}

// Health maneja GET /health.
func (h *EmployeeHandler) Health(c *gin.Context) {
	if h.ping != nil {
		if err := h.ping(c.Request.Context()); err != nil {
			h.logger.Warn("health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "down"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// atoiDefault convierte s a entero positivo, cayendo al default en silencio.
func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return def
	}
	return n
}
