package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"smarttrack-backend/internal/domains/category/model"
	"smarttrack-backend/internal/domains/category/service"
	"smarttrack-backend/internal/shared/response"
)

type Handler struct {
	service service.Service
}

// NewHandler creates a new category handler
func NewHandler(service service.Service) *Handler {
	return &Handler{service: service}
}

// Create handles POST /api/v1/categories
func (h *Handler) Create(c *gin.Context) {
	var req model.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	category, err := h.service.CreateCategory(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, model.ErrCategoryAlreadyExists) {
			response.Error(c, http.StatusConflict, "Category already exists", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to create category", err.Error())
		return
	}

	response.Success(c, http.StatusCreated, "Category created successfully", category)
}

// List handles GET /api/v1/categories
func (h *Handler) List(c *gin.Context) {
	categories, err := h.service.ListCategories(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list categories", err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Categories retrieved successfully", categories)
}
