package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"smarttrack-backend/internal/domains/alert/model"
	"smarttrack-backend/internal/domains/alert/service"
	"smarttrack-backend/internal/shared/response"
)

type Handler struct {
	service service.Service
}

// NewHandler creates a new alert handler
func NewHandler(service service.Service) *Handler {
	return &Handler{service: service}
}

// List handles GET /api/v1/alerts
func (h *Handler) List(c *gin.Context) {
	alerts, err := h.service.ListUnacknowledged(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list alerts", err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Alerts retrieved successfully", alerts)
}

// Critical handles GET /api/v1/alerts/critical
func (h *Handler) Critical(c *gin.Context) {
	alerts, err := h.service.ListCritical(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list critical alerts", err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Critical alerts retrieved successfully", alerts)
}

// Count handles GET /api/v1/alerts/count
func (h *Handler) Count(c *gin.Context) {
	count, err := h.service.CountUnacknowledged(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to count alerts", err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Alert count retrieved successfully", gin.H{"count": count})
}

// Acknowledge handles PUT /api/v1/alerts/:id/acknowledge
func (h *Handler) Acknowledge(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid alert ID format", err.Error())
		return
	}

	userID, exists := c.Get("userID")
	if !exists {
		response.Error(c, http.StatusUnauthorized, "User not authenticated", nil)
		return
	}

	if err := h.service.Acknowledge(c.Request.Context(), id, userID.(uuid.UUID)); err != nil {
		switch {
		case errors.Is(err, model.ErrAlertNotFound):
			response.Error(c, http.StatusNotFound, "Alert not found", err.Error())
		case errors.Is(err, model.ErrAlertAlreadyAcknowledged):
			response.Error(c, http.StatusConflict, "Alert already acknowledged", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to acknowledge alert", err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, "Alert acknowledged successfully", nil)
}

// Generate handles POST /api/v1/alerts/generate
func (h *Handler) Generate(c *gin.Context) {
	result, err := h.service.GenerateExpiryAlerts(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to generate alerts", err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Expiry alerts generated successfully", result)
}
