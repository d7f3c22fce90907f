package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"smarttrack-backend/internal/domains/inventory/model"
	"smarttrack-backend/internal/domains/inventory/repository"
	productModel "smarttrack-backend/internal/domains/product/model"
	productRepo "smarttrack-backend/internal/domains/product/repository"
)

type inventoryService struct {
	repo     repository.Repository
	products productRepo.Repository
	now      func() time.Time
}

// NewService creates a new inventory service
func NewService(repo repository.Repository, products productRepo.Repository) Service {
	return NewServiceWithClock(repo, products, time.Now)
}

// NewServiceWithClock allows injecting a fixed clock in tests.
func NewServiceWithClock(repo repository.Repository, products productRepo.Repository, now func() time.Time) Service {
	return &inventoryService{
		repo:     repo,
		products: products,
		now:      now,
	}
}

// ListBatches implements Service.ListBatches
func (s *inventoryService) ListBatches(ctx context.Context) ([]model.BatchResponse, error) {
	batches, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list batches: %w", err)
	}
	return model.ToResponseList(batches, s.now()), nil
}

// GetNearExpiryBatches implements Service.GetNearExpiryBatches. Returns the
// active batches expiring within [today, today+days], nearest expiry first.
func (s *inventoryService) GetNearExpiryBatches(ctx context.Context, days int) ([]model.BatchResponse, error) {
	if days < 0 {
		days = model.NearExpiryWindowDays
	}

	today := model.ToDay(s.now())
	batches, err := s.repo.FindExpiringBetween(ctx, today, today.AddDate(0, 0, days))
	if err != nil {
		return nil, fmt.Errorf("failed to find near-expiry batches: %w", err)
	}
	return model.ToResponseList(batches, today), nil
}

// GetExpiredBatches implements Service.GetExpiredBatches
func (s *inventoryService) GetExpiredBatches(ctx context.Context) ([]model.BatchResponse, error) {
	today := model.ToDay(s.now())
	batches, err := s.repo.FindExpired(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("failed to find expired batches: %w", err)
	}
	return model.ToResponseList(batches, today), nil
}

// SearchBatches implements Service.SearchBatches
func (s *inventoryService) SearchBatches(ctx context.Context, keyword string) ([]model.BatchResponse, error) {
	batches, err := s.repo.Search(ctx, keyword)
	if err != nil {
		return nil, fmt.Errorf("failed to search batches: %w", err)
	}
	return model.ToResponseList(batches, s.now()), nil
}

// CreateBatch implements Service.CreateBatch. The referenced product must
// exist, the expiry date is mandatory, and the stored status is always the
// one recomputed from the expiry date at this moment, never the caller's.
func (s *inventoryService) CreateBatch(ctx context.Context, req model.CreateBatchRequest) (*model.BatchResponse, error) {
	product, err := s.products.GetByID(ctx, req.ProductID)
	if err != nil {
		// Only an absent product is a not-found; an outage in the product
		// lookup must not masquerade as one.
		if errors.Is(err, productModel.ErrProductNotFound) {
			return nil, model.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to look up product: %w", err)
	}

	expiryDate, manufacturingDate, err := parseBatchDates(req.ExpiryDate, req.ManufacturingDate)
	if err != nil {
		return nil, err
	}

	now := s.now()
	batch := &model.Batch{
		ID:                uuid.New(),
		ProductID:         product.ID,
		BatchNumber:       req.BatchNumber,
		Quantity:          req.Quantity,
		UnitPrice:         req.UnitPrice,
		ManufacturingDate: manufacturingDate,
		ExpiryDate:        expiryDate,
		Status:            model.ClassifyStatus(expiryDate, now),
		StorageLocation:   req.StorageLocation,
		Notes:             req.Notes,
	}

	if err := s.repo.Create(ctx, batch); err != nil {
		return nil, err
	}

	batch.ProductName = product.Name
	batch.CategoryID = product.CategoryID
	batch.CategoryName = product.CategoryName

	res := batch.ToResponse(now)
	return &res, nil
}

// UpdateBatch implements Service.UpdateBatch: whole-field replacement of the
// mutable fields, with the status recomputed before the write so the stored
// value can never go stale relative to this update.
func (s *inventoryService) UpdateBatch(ctx context.Context, id uuid.UUID, req model.UpdateBatchRequest) (*model.BatchResponse, error) {
	batch, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	expiryDate, manufacturingDate, err := parseBatchDates(req.ExpiryDate, req.ManufacturingDate)
	if err != nil {
		return nil, err
	}

	now := s.now()
	batch.BatchNumber = req.BatchNumber
	batch.Quantity = req.Quantity
	batch.UnitPrice = req.UnitPrice
	batch.ManufacturingDate = manufacturingDate
	batch.ExpiryDate = expiryDate
	batch.Status = model.ClassifyStatus(expiryDate, now)
	batch.StorageLocation = req.StorageLocation
	batch.Notes = req.Notes

	if err := s.repo.Update(ctx, batch); err != nil {
		return nil, err
	}

	res := batch.ToResponse(now)
	return &res, nil
}

// DeleteBatch implements Service.DeleteBatch
func (s *inventoryService) DeleteBatch(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// parseBatchDates validates the date strings of a write request.
func parseBatchDates(expiry string, manufacturing *string) (time.Time, *time.Time, error) {
	if expiry == "" {
		return time.Time{}, nil, model.ErrExpiryDateRequired
	}

	expiryDate, err := time.Parse(time.DateOnly, expiry)
	if err != nil {
		return time.Time{}, nil, fmt.Errorf("%w: expiry_date=%q", model.ErrInvalidDateFormat, expiry)
	}

	var manufacturingDate *time.Time
	if manufacturing != nil && *manufacturing != "" {
		d, err := time.Parse(time.DateOnly, *manufacturing)
		if err != nil {
			return time.Time{}, nil, fmt.Errorf("%w: manufacturing_date=%q", model.ErrInvalidDateFormat, *manufacturing)
		}
		manufacturingDate = &d
	}

	return expiryDate, manufacturingDate, nil
}
