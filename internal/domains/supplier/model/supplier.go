package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrSupplierNotFound is returned when the supplier id does not exist
	ErrSupplierNotFound = errors.New("supplier not found")
)

// Supplier is master data for where a product is sourced from.
type Supplier struct {
	ID            uuid.UUID `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	ContactPerson *string   `json:"contact_person" db:"contact_person"`
	Email         *string   `json:"email" db:"email"`
	Phone         *string   `json:"phone" db:"phone"`
	Address       *string   `json:"address" db:"address"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// UpsertSupplierRequest is the payload for creating or updating a supplier.
type UpsertSupplierRequest struct {
	Name          string  `json:"name" binding:"required,max=100"`
	ContactPerson *string `json:"contact_person" binding:"omitempty,max=100"`
	Email         *string `json:"email" binding:"omitempty,email"`
	Phone         *string `json:"phone" binding:"omitempty,max=20"`
	Address       *string `json:"address"`
}
