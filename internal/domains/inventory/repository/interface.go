package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"smarttrack-backend/internal/domains/inventory/model"
)

// Repository is the batch data access contract. Active means quantity > 0;
// inactive batches are invisible to every aggregate and range query.
// The dashboard and chatbot services consume the count/sum subset.
type Repository interface {
	// CRUD
	Create(ctx context.Context, batch *model.Batch) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Batch, error)
	Update(ctx context.Context, batch *model.Batch) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Listing and search
	ListAll(ctx context.Context) ([]model.Batch, error)
	FindExpired(ctx context.Context, asOf time.Time) ([]model.Batch, error)
	FindExpiringBetween(ctx context.Context, start, end time.Time) ([]model.Batch, error)
	FindAllActiveOrderedByExpiry(ctx context.Context) ([]model.Batch, error)
	Search(ctx context.Context, keyword string) ([]model.Batch, error)

	// Aggregates. SUM over zero rows yields a nil decimal, normalized to
	// zero by the callers, not by the repository.
	CountActive(ctx context.Context) (int64, error)
	CountExpired(ctx context.Context, asOf time.Time) (int64, error)
	CountExpiringBetween(ctx context.Context, start, end time.Time) (int64, error)
	TotalInventoryValue(ctx context.Context) (*decimal.Decimal, error)

	// RefreshStatuses recomputes the stored status of every batch against
	// asOf and returns the number of rows that changed. Run nightly so the
	// stored column tracks the calendar.
	RefreshStatuses(ctx context.Context, asOf time.Time) (int64, error)
}
