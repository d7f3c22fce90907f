package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"smarttrack-backend/internal/domains/inventory/model"
	"smarttrack-backend/internal/domains/inventory/service"
	"smarttrack-backend/internal/shared/response"
)

type Handler struct {
	service service.Service
}

// NewHandler creates a new inventory handler
func NewHandler(service service.Service) *Handler {
	return &Handler{service: service}
}

// List handles GET /api/v1/inventory
func (h *Handler) List(c *gin.Context) {
	batches, err := h.service.ListBatches(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list batches", err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Batches retrieved successfully", batches)
}

// NearExpiry handles GET /api/v1/inventory/near-expiry?days=30
func (h *Handler) NearExpiry(c *gin.Context) {
	days := model.NearExpiryWindowDays
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			response.Error(c, http.StatusBadRequest, "Invalid days parameter", "days must be a non-negative integer")
			return
		}
		days = parsed
	}

	batches, err := h.service.GetNearExpiryBatches(c.Request.Context(), days)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list near-expiry batches", err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Near-expiry batches retrieved successfully", batches)
}

// Expired handles GET /api/v1/inventory/expired
func (h *Handler) Expired(c *gin.Context) {
	batches, err := h.service.GetExpiredBatches(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list expired batches", err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Expired batches retrieved successfully", batches)
}

// Search handles GET /api/v1/inventory/search?keyword=
func (h *Handler) Search(c *gin.Context) {
	keyword := c.Query("keyword")
	if keyword == "" {
		response.Error(c, http.StatusBadRequest, "Missing search keyword", "keyword query parameter is required")
		return
	}

	batches, err := h.service.SearchBatches(c.Request.Context(), keyword)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to search batches", err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Batches retrieved successfully", batches)
}

// Create handles POST /api/v1/inventory
func (h *Handler) Create(c *gin.Context) {
	var req model.CreateBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	batch, err := h.service.CreateBatch(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err, "Failed to create batch")
		return
	}

	response.Success(c, http.StatusCreated, "Batch created successfully", batch)
}

// Update handles PUT /api/v1/inventory/:id
func (h *Handler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid batch ID format", err.Error())
		return
	}

	var req model.UpdateBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	batch, err := h.service.UpdateBatch(c.Request.Context(), id, req)
	if err != nil {
		h.writeServiceError(c, err, "Failed to update batch")
		return
	}

	response.Success(c, http.StatusOK, "Batch updated successfully", batch)
}

// Delete handles DELETE /api/v1/inventory/:id
func (h *Handler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid batch ID format", err.Error())
		return
	}

	if err := h.service.DeleteBatch(c.Request.Context(), id); err != nil {
		h.writeServiceError(c, err, "Failed to delete batch")
		return
	}

	response.Success(c, http.StatusOK, "Batch deleted successfully", nil)
}

func (h *Handler) writeServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case model.IsNotFoundError(err):
		response.Error(c, http.StatusNotFound, "Resource not found", err.Error())
	case model.IsValidationError(err):
		response.Error(c, http.StatusBadRequest, "Validation failed", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, fallback, err.Error())
	}
}
