package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ===================================
// REQUEST DTOs
// ===================================

// CreateBatchRequest is the payload for registering a new batch.
// Dates travel as YYYY-MM-DD strings; the service parses and validates them.
// A caller-supplied status is accepted but always overwritten by the
// recomputed one.
type CreateBatchRequest struct {
	ProductID         uuid.UUID        `json:"product_id" binding:"required"`
	BatchNumber       string           `json:"batch_number" binding:"required,max=100"`
	Quantity          int              `json:"quantity" binding:"min=0"`
	UnitPrice         *decimal.Decimal `json:"unit_price"`
	ManufacturingDate *string          `json:"manufacturing_date"`
	ExpiryDate        string           `json:"expiry_date" binding:"required"`
	Status            *string          `json:"status"` // ignored, recomputed on write
	StorageLocation   *string          `json:"storage_location" binding:"omitempty,max=100"`
	Notes             *string          `json:"notes"`
}

// UpdateBatchRequest replaces all mutable batch fields wholesale.
// The product reference is immutable after creation.
type UpdateBatchRequest struct {
	BatchNumber       string           `json:"batch_number" binding:"required,max=100"`
	Quantity          int              `json:"quantity" binding:"min=0"`
	UnitPrice         *decimal.Decimal `json:"unit_price"`
	ManufacturingDate *string          `json:"manufacturing_date"`
	ExpiryDate        string           `json:"expiry_date" binding:"required"`
	Status            *string          `json:"status"` // ignored, recomputed on write
	StorageLocation   *string          `json:"storage_location" binding:"omitempty,max=100"`
	Notes             *string          `json:"notes"`
}

// ===================================
// RESPONSE DTOs
// ===================================

// BatchResponse is the read model for a batch, enriched with the product
// and category names and the display-only days-until-expiry counter.
type BatchResponse struct {
	ID                uuid.UUID        `json:"id"`
	ProductID         uuid.UUID        `json:"product_id"`
	ProductName       string           `json:"product_name"`
	CategoryName      string           `json:"category_name"`
	BatchNumber       string           `json:"batch_number"`
	Quantity          int              `json:"quantity"`
	UnitPrice         *decimal.Decimal `json:"unit_price"`
	ManufacturingDate *string          `json:"manufacturing_date"`
	ExpiryDate        string           `json:"expiry_date"`
	Status            BatchStatus      `json:"status"`
	DaysUntilExpiry   int              `json:"days_until_expiry"`
	StorageLocation   *string          `json:"storage_location"`
	Notes             *string          `json:"notes"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

// ===================================
// MAPPERS (Model <-> DTO)
// ===================================

// ToResponse converts a Batch to its response DTO, evaluating the
// days-until-expiry counter against asOf.
func (b *Batch) ToResponse(asOf time.Time) BatchResponse {
	categoryName := "Uncategorized"
	if b.CategoryName != nil {
		categoryName = *b.CategoryName
	}

	var manufacturingDate *string
	if b.ManufacturingDate != nil {
		s := b.ManufacturingDate.Format(time.DateOnly)
		manufacturingDate = &s
	}

	return BatchResponse{
		ID:                b.ID,
		ProductID:         b.ProductID,
		ProductName:       b.ProductName,
		CategoryName:      categoryName,
		BatchNumber:       b.BatchNumber,
		Quantity:          b.Quantity,
		UnitPrice:         b.UnitPrice,
		ManufacturingDate: manufacturingDate,
		ExpiryDate:        b.ExpiryDate.Format(time.DateOnly),
		Status:            b.Status,
		DaysUntilExpiry:   DaysUntilExpiry(b.ExpiryDate, asOf),
		StorageLocation:   b.StorageLocation,
		Notes:             b.Notes,
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
	}
}

// ToResponseList converts a slice of batches with a single shared asOf.
func ToResponseList(batches []Batch, asOf time.Time) []BatchResponse {
	responses := make([]BatchResponse, len(batches))
	for i := range batches {
		responses[i] = batches[i].ToResponse(asOf)
	}
	return responses
}
