package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"smarttrack-backend/internal/domains/supplier/model"
	"smarttrack-backend/internal/domains/supplier/service"
	"smarttrack-backend/internal/shared/response"
)

type Handler struct {
	service service.Service
}

// NewHandler creates a new supplier handler
func NewHandler(service service.Service) *Handler {
	return &Handler{service: service}
}

// Create handles POST /api/v1/suppliers
func (h *Handler) Create(c *gin.Context) {
	var req model.UpsertSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	supplier, err := h.service.CreateSupplier(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to create supplier", err.Error())
		return
	}

	response.Success(c, http.StatusCreated, "Supplier created successfully", supplier)
}

// GetByID handles GET /api/v1/suppliers/:id
func (h *Handler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid supplier ID format", err.Error())
		return
	}

	supplier, err := h.service.GetSupplier(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrSupplierNotFound) {
			response.Error(c, http.StatusNotFound, "Supplier not found", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to get supplier", err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Supplier retrieved successfully", supplier)
}

// List handles GET /api/v1/suppliers
func (h *Handler) List(c *gin.Context) {
	suppliers, err := h.service.ListSuppliers(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list suppliers", err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Suppliers retrieved successfully", suppliers)
}

// Update handles PUT /api/v1/suppliers/:id
func (h *Handler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid supplier ID format", err.Error())
		return
	}

	var req model.UpsertSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	supplier, err := h.service.UpdateSupplier(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, model.ErrSupplierNotFound) {
			response.Error(c, http.StatusNotFound, "Supplier not found", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to update supplier", err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Supplier updated successfully", supplier)
}

// Delete handles DELETE /api/v1/suppliers/:id
func (h *Handler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid supplier ID format", err.Error())
		return
	}

	if err := h.service.DeleteSupplier(c.Request.Context(), id); err != nil {
		if errors.Is(err, model.ErrSupplierNotFound) {
			response.Error(c, http.StatusNotFound, "Supplier not found", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to delete supplier", err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Supplier deleted successfully", nil)
}
