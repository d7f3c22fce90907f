package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smarttrack-backend/internal/domains/dashboard/service"
	"smarttrack-backend/internal/shared/response"
)

type Handler struct {
	service service.Service
}

// NewHandler creates a new dashboard handler
func NewHandler(service service.Service) *Handler {
	return &Handler{service: service}
}

// Overview handles GET /api/v1/dashboard/overview
func (h *Handler) Overview(c *gin.Context) {
	overview, err := h.service.GetOverview(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to build dashboard overview", err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Dashboard overview retrieved successfully", overview)
}
