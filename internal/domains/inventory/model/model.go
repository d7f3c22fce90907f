package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BatchStatus is the lifecycle state of a batch relative to its expiry date.
// It is always derived from the expiry date at write time, never trusted
// from the caller.
type BatchStatus string

const (
	StatusGood       BatchStatus = "GOOD"
	StatusNearExpiry BatchStatus = "NEAR_EXPIRY"
	StatusExpired    BatchStatus = "EXPIRED"
)

// Batch represents a tracked lot of a product: its own quantity, price and
// expiry date. A batch with quantity 0 is inactive and excluded from all
// aggregates.
type Batch struct {
	// Identity
	ID        uuid.UUID `db:"id"`
	ProductID uuid.UUID `db:"product_id"`

	BatchNumber string           `db:"batch_number"`
	Quantity    int              `db:"quantity"`
	UnitPrice   *decimal.Decimal `db:"unit_price"`

	ManufacturingDate *time.Time `db:"manufacturing_date"`
	ExpiryDate        time.Time  `db:"expiry_date"`

	Status          BatchStatus `db:"status"`
	StorageLocation *string     `db:"storage_location"`
	Notes           *string     `db:"notes"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`

	// Joined from products/categories for read paths
	ProductName  string     `db:"product_name"`
	CategoryID   *uuid.UUID `db:"category_id"`
	CategoryName *string    `db:"category_name"`
}

// IsActive reports whether the batch still holds stock.
func (b *Batch) IsActive() bool {
	return b.Quantity > 0
}

// LineValue is quantity x unit price; a missing price counts as zero.
func (b *Batch) LineValue() decimal.Decimal {
	if b.UnitPrice == nil {
		return decimal.Zero
	}
	return b.UnitPrice.Mul(decimal.NewFromInt(int64(b.Quantity)))
}
