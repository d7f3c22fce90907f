package model

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrBatchNotFound is returned when the batch id does not exist
	ErrBatchNotFound = errors.New("batch not found")

	// ErrProductNotFound is returned when the referenced product does not exist
	ErrProductNotFound = errors.New("product not found")

	// ErrExpiryDateRequired is returned when a write omits the expiry date
	ErrExpiryDateRequired = errors.New("expiry date is required")

	// ErrInvalidDateFormat is returned when a date field does not parse as YYYY-MM-DD
	ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")

	// ErrInvalidQuantity is returned when quantity is negative
	ErrInvalidQuantity = errors.New("quantity cannot be negative")
)

// NewBatchNotFoundError creates a detailed not found error
func NewBatchNotFoundError(id uuid.UUID) error {
	return fmt.Errorf("%w: id=%s", ErrBatchNotFound, id)
}

// IsNotFoundError checks if error is a not found error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrBatchNotFound) || errors.Is(err, ErrProductNotFound)
}

// IsValidationError checks if error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrExpiryDateRequired) ||
		errors.Is(err, ErrInvalidDateFormat) ||
		errors.Is(err, ErrInvalidQuantity)
}
