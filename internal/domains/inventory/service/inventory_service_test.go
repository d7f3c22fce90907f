package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smarttrack-backend/internal/domains/inventory/model"
	"smarttrack-backend/internal/domains/inventory/repository"
	productModel "smarttrack-backend/internal/domains/product/model"
	productRepo "smarttrack-backend/internal/domains/product/repository"
)

type fakeBatchRepo struct {
	repository.Repository

	created *model.Batch
	updated *model.Batch
	byID    map[uuid.UUID]*model.Batch

	expiringStart, expiringEnd time.Time
	expiring                   []model.Batch
}

func (f *fakeBatchRepo) Create(_ context.Context, b *model.Batch) error {
	f.created = b
	return nil
}

func (f *fakeBatchRepo) Update(_ context.Context, b *model.Batch) error {
	f.updated = b
	return nil
}

func (f *fakeBatchRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Batch, error) {
	if b, ok := f.byID[id]; ok {
		clone := *b
		return &clone, nil
	}
	return nil, model.NewBatchNotFoundError(id)
}

func (f *fakeBatchRepo) FindExpiringBetween(_ context.Context, start, end time.Time) ([]model.Batch, error) {
	f.expiringStart, f.expiringEnd = start, end
	return f.expiring, nil
}

type fakeProductRepo struct {
	productRepo.Repository

	products map[uuid.UUID]*productModel.Product
	err      error
}

func (f *fakeProductRepo) GetByID(_ context.Context, id uuid.UUID) (*productModel.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	if p, ok := f.products[id]; ok {
		return p, nil
	}
	return nil, productModel.ErrProductNotFound
}

func fixedNow() time.Time {
	return time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)
}

func newTestService(batches *fakeBatchRepo, products *fakeProductRepo) Service {
	return NewServiceWithClock(batches, products, fixedNow)
}

func productFixture() (*fakeProductRepo, uuid.UUID) {
	id := uuid.New()
	return &fakeProductRepo{products: map[uuid.UUID]*productModel.Product{
		id: {ID: id, Name: "Whole Milk 1L", SKU: "MILK-1L"},
	}}, id
}

func TestCreateBatchOverwritesSuppliedStatus(t *testing.T) {
	repo := &fakeBatchRepo{}
	products, productID := productFixture()
	svc := newTestService(repo, products)

	supplied := "GOOD"
	res, err := svc.CreateBatch(context.Background(), model.CreateBatchRequest{
		ProductID:   productID,
		BatchNumber: "B-001",
		Quantity:    10,
		ExpiryDate:  "2025-06-20", // five days out
		Status:      &supplied,    // caller lies, must be recomputed
	})

	require.NoError(t, err)
	assert.Equal(t, model.StatusNearExpiry, res.Status)
	assert.Equal(t, model.StatusNearExpiry, repo.created.Status)
	assert.Equal(t, 5, res.DaysUntilExpiry)
}

func TestCreateBatchClassifiesExpired(t *testing.T) {
	repo := &fakeBatchRepo{}
	products, productID := productFixture()
	svc := newTestService(repo, products)

	res, err := svc.CreateBatch(context.Background(), model.CreateBatchRequest{
		ProductID:   productID,
		BatchNumber: "B-002",
		Quantity:    3,
		ExpiryDate:  "2025-06-14",
	})

	require.NoError(t, err)
	assert.Equal(t, model.StatusExpired, res.Status)
	assert.Equal(t, -1, res.DaysUntilExpiry)
}

func TestCreateBatchUnknownProduct(t *testing.T) {
	repo := &fakeBatchRepo{}
	svc := newTestService(repo, &fakeProductRepo{})

	_, err := svc.CreateBatch(context.Background(), model.CreateBatchRequest{
		ProductID:   uuid.New(),
		BatchNumber: "B-003",
		ExpiryDate:  "2025-06-20",
	})

	assert.ErrorIs(t, err, model.ErrProductNotFound)
	assert.Nil(t, repo.created)
}

func TestCreateBatchProductLookupFailure(t *testing.T) {
	repo := &fakeBatchRepo{}
	dbDown := errors.New("connection refused")
	svc := newTestService(repo, &fakeProductRepo{err: dbDown})

	_, err := svc.CreateBatch(context.Background(), model.CreateBatchRequest{
		ProductID:   uuid.New(),
		BatchNumber: "B-007",
		ExpiryDate:  "2025-06-20",
	})

	// An outage in the product lookup propagates; it is not a missing product.
	require.Error(t, err)
	assert.ErrorIs(t, err, dbDown)
	assert.False(t, errors.Is(err, model.ErrProductNotFound))
	assert.Nil(t, repo.created)
}

func TestCreateBatchRequiresExpiryDate(t *testing.T) {
	repo := &fakeBatchRepo{}
	products, productID := productFixture()
	svc := newTestService(repo, products)

	_, err := svc.CreateBatch(context.Background(), model.CreateBatchRequest{
		ProductID:   productID,
		BatchNumber: "B-004",
	})

	assert.ErrorIs(t, err, model.ErrExpiryDateRequired)
}

func TestCreateBatchRejectsBadDateFormat(t *testing.T) {
	repo := &fakeBatchRepo{}
	products, productID := productFixture()
	svc := newTestService(repo, products)

	tests := []string{"20-06-2025", "2025/06/20", "June 20, 2025"}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			_, err := svc.CreateBatch(context.Background(), model.CreateBatchRequest{
				ProductID:   productID,
				BatchNumber: "B-005",
				ExpiryDate:  in,
			})
			assert.ErrorIs(t, err, model.ErrInvalidDateFormat)
		})
	}
}

func TestUpdateBatchReplacesFieldsAndRecomputesStatus(t *testing.T) {
	id := uuid.New()
	oldPrice := decimal.NewFromInt(2)
	repo := &fakeBatchRepo{byID: map[uuid.UUID]*model.Batch{
		id: {
			ID:          id,
			ProductID:   uuid.New(),
			BatchNumber: "B-OLD",
			Quantity:    10,
			UnitPrice:   &oldPrice,
			ExpiryDate:  time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
			Status:      model.StatusGood,
			ProductName: "Whole Milk 1L",
		},
	}}
	svc := newTestService(repo, &fakeProductRepo{})

	res, err := svc.UpdateBatch(context.Background(), id, model.UpdateBatchRequest{
		BatchNumber: "B-NEW",
		Quantity:    4,
		ExpiryDate:  "2025-06-10", // moved into the past
	})

	require.NoError(t, err)
	assert.Equal(t, "B-NEW", res.BatchNumber)
	assert.Equal(t, 4, res.Quantity)
	assert.Equal(t, model.StatusExpired, res.Status)
	// Whole-field replacement: the omitted price is cleared, not kept.
	assert.Nil(t, res.UnitPrice)
	assert.Equal(t, model.StatusExpired, repo.updated.Status)
}

func TestUpdateBatchNotFound(t *testing.T) {
	repo := &fakeBatchRepo{}
	svc := newTestService(repo, &fakeProductRepo{})

	_, err := svc.UpdateBatch(context.Background(), uuid.New(), model.UpdateBatchRequest{
		BatchNumber: "B-006",
		ExpiryDate:  "2025-06-20",
	})

	assert.ErrorIs(t, err, model.ErrBatchNotFound)
}

func TestGetNearExpiryBatchesWindow(t *testing.T) {
	repo := &fakeBatchRepo{}
	svc := newTestService(repo, &fakeProductRepo{})

	_, err := svc.GetNearExpiryBatches(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), repo.expiringStart)
	assert.Equal(t, time.Date(2025, 6, 22, 0, 0, 0, 0, time.UTC), repo.expiringEnd)
}

func TestGetNearExpiryBatchesNegativeDaysFallsBack(t *testing.T) {
	repo := &fakeBatchRepo{}
	svc := newTestService(repo, &fakeProductRepo{})

	_, err := svc.GetNearExpiryBatches(context.Background(), -1)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC), repo.expiringEnd)
}
