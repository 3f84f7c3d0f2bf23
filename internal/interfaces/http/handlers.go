package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/TabularInc/invoice-test-cases-generator/internal/application/service"
)

// Handlers contains all HTTP request handlers
type Handlers struct {
	suiteService service.SuiteService
	logger       Logger
}

// NewHandlers creates a new Handlers instance
func NewHandlers(suiteService service.SuiteService, logger Logger) *Handlers {
	return &Handlers{suiteService: suiteService, logger: logger}
}

// Response represents a standard JSON response
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data: HealthResponse{
			Status:    "healthy",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Version:   "1.0.0",
		},
	})
}

// GenerateSuite handles POST /api/suites
func (h *Handlers) GenerateSuite(c *gin.Context) {
	var req service.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, Response{
			Success: false,
			Error:   "invalid request body",
		})
		return
	}

	suite, err := h.suiteService.Generate(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err, "suite generation failed")
		return
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    suite,
	})
}

// GenerateBundle handles POST /api/suites/bundle
func (h *Handlers) GenerateBundle(c *gin.Context) {
	var req service.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, Response{
			Success: false,
			Error:   "invalid request body",
		})
		return
	}

	data, filename, err := h.suiteService.GenerateBundle(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err, "bundle generation failed")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/zip", data)
}

// respondError maps validation errors to 400 and everything else to 500.
func (h *Handlers) respondError(c *gin.Context, err error, internalMsg string) {
	if service.IsClientFault(err) {
		h.logger.Info("Rejected generation request", "error", err)
		c.JSON(http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	h.logger.Error(internalMsg, "error", err)
	c.JSON(http.StatusInternalServerError, Response{
		Success: false,
		Error:   internalMsg,
	})
}
