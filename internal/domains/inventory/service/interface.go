package service

import (
	"context"

	"github.com/google/uuid"

	"smarttrack-backend/internal/domains/inventory/model"
)

// Service is the inventory business logic contract. All read paths evaluate
// expiry against a single "today" captured at the start of the call.
type Service interface {
	ListBatches(ctx context.Context) ([]model.BatchResponse, error)
	GetNearExpiryBatches(ctx context.Context, days int) ([]model.BatchResponse, error)
	GetExpiredBatches(ctx context.Context) ([]model.BatchResponse, error)
	SearchBatches(ctx context.Context, keyword string) ([]model.BatchResponse, error)

	CreateBatch(ctx context.Context, req model.CreateBatchRequest) (*model.BatchResponse, error)
	UpdateBatch(ctx context.Context, id uuid.UUID, req model.UpdateBatchRequest) (*model.BatchResponse, error)
	DeleteBatch(ctx context.Context, id uuid.UUID) error
}
