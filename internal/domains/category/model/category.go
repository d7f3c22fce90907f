package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrCategoryNotFound is returned when the category id does not exist
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryAlreadyExists is returned on duplicate category name
	ErrCategoryAlreadyExists = errors.New("category with this name already exists")
)

// Category groups products for the dashboard stock distribution.
// Color is the display color used by the dashboard charts.
type Category struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Color     string    `json:"color" db:"color"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// CreateCategoryRequest is the payload for creating a category.
type CreateCategoryRequest struct {
	Name  string `json:"name" binding:"required,max=100"`
	Color string `json:"color" binding:"omitempty,max=20"`
}
