package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"smarttrack-backend/internal/domains/product/model"
	"smarttrack-backend/internal/domains/product/service"
	"smarttrack-backend/internal/shared/response"
)

type Handler struct {
	service service.Service
}

// NewHandler creates a new product handler
func NewHandler(service service.Service) *Handler {
	return &Handler{service: service}
}

// Create handles POST /api/v1/products
func (h *Handler) Create(c *gin.Context) {
	var req model.UpsertProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	product, err := h.service.CreateProduct(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrProductSKUAlreadyExists):
			response.Error(c, http.StatusConflict, "Product SKU already exists", err.Error())
		case errors.Is(err, model.ErrReferencedRowMissing):
			response.Error(c, http.StatusBadRequest, "Referenced category or supplier not found", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to create product", err.Error())
		}
		return
	}

	response.Success(c, http.StatusCreated, "Product created successfully", product)
}

// GetByID handles GET /api/v1/products/:id
func (h *Handler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid product ID format", err.Error())
		return
	}

	product, err := h.service.GetProduct(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			response.Error(c, http.StatusNotFound, "Product not found", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to get product", err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Product retrieved successfully", product)
}

// List handles GET /api/v1/products
func (h *Handler) List(c *gin.Context) {
	products, err := h.service.ListProducts(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list products", err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Products retrieved successfully", products)
}

// Update handles PUT /api/v1/products/:id
func (h *Handler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid product ID format", err.Error())
		return
	}

	var req model.UpsertProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	product, err := h.service.UpdateProduct(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrProductNotFound):
			response.Error(c, http.StatusNotFound, "Product not found", err.Error())
		case errors.Is(err, model.ErrProductSKUAlreadyExists):
			response.Error(c, http.StatusConflict, "Product SKU already exists", err.Error())
		case errors.Is(err, model.ErrReferencedRowMissing):
			response.Error(c, http.StatusBadRequest, "Referenced category or supplier not found", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to update product", err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, "Product updated successfully", product)
}

// Delete handles DELETE /api/v1/products/:id
func (h *Handler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid product ID format", err.Error())
		return
	}

	if err := h.service.DeleteProduct(c.Request.Context(), id); err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			response.Error(c, http.StatusNotFound, "Product not found", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to delete product", err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Product deleted successfully", nil)
}
