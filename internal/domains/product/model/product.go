package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrProductNotFound is returned when the product id does not exist
	ErrProductNotFound = errors.New("product not found")

	// ErrProductSKUAlreadyExists is returned on duplicate SKU
	ErrProductSKUAlreadyExists = errors.New("product with this SKU already exists")

	// ErrReferencedRowMissing is returned when category or supplier id does not exist
	ErrReferencedRowMissing = errors.New("referenced category or supplier does not exist")
)

// Product is the catalog entry that inventory batches belong to.
// Category and supplier are optional; a product without a category falls
// into the dashboard's "Uncategorized" bucket.
type Product struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	Name        string     `json:"name" db:"name"`
	SKU         string     `json:"sku" db:"sku"`
	Description *string    `json:"description" db:"description"`
	Unit        *string    `json:"unit" db:"unit"` // e.g. "kg", "pcs", "L"
	CategoryID  *uuid.UUID `json:"category_id" db:"category_id"`
	SupplierID  *uuid.UUID `json:"supplier_id" db:"supplier_id"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`

	// Joined for read paths
	CategoryName *string `json:"category_name,omitempty" db:"category_name"`
	SupplierName *string `json:"supplier_name,omitempty" db:"supplier_name"`
}

// UpsertProductRequest is the payload for creating or updating a product.
type UpsertProductRequest struct {
	Name        string     `json:"name" binding:"required,max=150"`
	SKU         string     `json:"sku" binding:"required,max=50"`
	Description *string    `json:"description"`
	Unit        *string    `json:"unit" binding:"omitempty,max=20"`
	CategoryID  *uuid.UUID `json:"category_id"`
	SupplierID  *uuid.UUID `json:"supplier_id"`
}
