package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	categoryModel "smarttrack-backend/internal/domains/category/model"
	categoryRepo "smarttrack-backend/internal/domains/category/repository"
	"smarttrack-backend/internal/domains/dashboard/model"
	inventoryModel "smarttrack-backend/internal/domains/inventory/model"
	inventoryRepo "smarttrack-backend/internal/domains/inventory/repository"
)

// fakeBatchRepo serves the aggregate queries from an in-memory batch list,
// mirroring the SQL filters (quantity > 0, inclusive date bounds).
type fakeBatchRepo struct {
	inventoryRepo.Repository

	batches []inventoryModel.Batch
}

func (f *fakeBatchRepo) active() []inventoryModel.Batch {
	var out []inventoryModel.Batch
	for _, b := range f.batches {
		if b.Quantity > 0 {
			out = append(out, b)
		}
	}
	return out
}

func (f *fakeBatchRepo) CountActive(_ context.Context) (int64, error) {
	return int64(len(f.active())), nil
}

func (f *fakeBatchRepo) CountExpired(_ context.Context, asOf time.Time) (int64, error) {
	var n int64
	for _, b := range f.active() {
		if b.ExpiryDate.Before(asOf) {
			n++
		}
	}
	return n, nil
}

func (f *fakeBatchRepo) CountExpiringBetween(_ context.Context, start, end time.Time) (int64, error) {
	var n int64
	for _, b := range f.active() {
		if !b.ExpiryDate.Before(start) && !b.ExpiryDate.After(end) {
			n++
		}
	}
	return n, nil
}

func (f *fakeBatchRepo) TotalInventoryValue(_ context.Context) (*decimal.Decimal, error) {
	active := f.active()
	if len(active) == 0 {
		return nil, nil
	}

	sum := decimal.Zero
	for i := range active {
		sum = sum.Add(active[i].LineValue())
	}
	return &sum, nil
}

func (f *fakeBatchRepo) FindAllActiveOrderedByExpiry(_ context.Context) ([]inventoryModel.Batch, error) {
	return f.active(), nil
}

type fakeCategoryRepo struct {
	categoryRepo.Repository

	categories []categoryModel.Category
}

func (f *fakeCategoryRepo) ListAll(_ context.Context) ([]categoryModel.Category, error) {
	return f.categories, nil
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func price(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
}

func batch(expiry time.Time, qty int, unitPrice *decimal.Decimal, category string) inventoryModel.Batch {
	b := inventoryModel.Batch{
		Quantity:   qty,
		UnitPrice:  unitPrice,
		ExpiryDate: expiry,
	}
	if category != "" {
		b.CategoryName = &category
	}
	return b
}

func overview(t *testing.T, inv *fakeBatchRepo, cats *fakeCategoryRepo, now time.Time) *model.Overview {
	t.Helper()

	svc := NewServiceWithClock(inv, cats, func() time.Time { return now })
	got, err := svc.GetOverview(context.Background())
	require.NoError(t, err)
	return got
}

func TestGetOverviewEmptyInventory(t *testing.T) {
	got := overview(t, &fakeBatchRepo{}, &fakeCategoryRepo{}, day(2025, 6, 15))

	assert.Equal(t, int64(0), got.TotalStock)
	assert.True(t, got.InventoryValue.IsZero())
	assert.Equal(t, int64(0), got.NearExpiryCount)
	assert.Equal(t, int64(0), got.ExpiredCount)
	assert.Equal(t, model.StatusHealthy, got.SystemStatus)

	require.Len(t, got.ExpiryForecast, 6)
	for _, bucket := range got.ExpiryForecast {
		assert.Equal(t, int64(0), bucket.ExpiryVolume)
	}

	// Only the Uncategorized slice, empty.
	require.Len(t, got.StockDistribution, 1)
	assert.Equal(t, "Uncategorized", got.StockDistribution[0].Category)
	assert.Equal(t, 0, got.StockDistribution[0].Count)
}

func TestGetOverviewCounts(t *testing.T) {
	now := day(2025, 6, 15)
	inv := &fakeBatchRepo{batches: []inventoryModel.Batch{
		batch(day(2025, 6, 10), 5, price(2), "Dairy"),   // expired
		batch(day(2025, 6, 20), 10, price(1), "Dairy"),  // near expiry
		batch(day(2025, 9, 1), 3, price(10), "Frozen"),  // good
		batch(day(2025, 6, 1), 0, price(100), "Frozen"), // depleted, invisible
	}}

	got := overview(t, inv, &fakeCategoryRepo{}, now)

	assert.Equal(t, int64(3), got.TotalStock)
	assert.Equal(t, int64(1), got.ExpiredCount)
	assert.Equal(t, int64(1), got.NearExpiryCount)
	// 5*2 + 10*1 + 3*10
	assert.True(t, got.InventoryValue.Equal(decimal.NewFromInt(50)), "got %s", got.InventoryValue)
}

func TestSystemStatusPriority(t *testing.T) {
	tests := []struct {
		name    string
		expired int64
		near    int64
		want    model.SystemStatus
	}{
		{"healthy", 0, 0, model.StatusHealthy},
		{"warning on near expiry", 0, 5, model.StatusWarning},
		{"critical on expired", 1, 0, model.StatusCritical},
		{"critical beats warning", 1, 5, model.StatusCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, systemStatus(tt.expired, tt.near))
		})
	}
}

func TestExpiryForecastBuckets(t *testing.T) {
	now := day(2025, 6, 15)
	inv := &fakeBatchRepo{batches: []inventoryModel.Batch{
		batch(day(2025, 6, 1), 1, nil, ""),  // current month, before today: still June's bucket
		batch(day(2025, 6, 30), 1, nil, ""), // current month
		batch(day(2025, 8, 31), 1, nil, ""), // August
		batch(day(2025, 11, 30), 1, nil, ""),
		batch(day(2025, 12, 1), 1, nil, ""), // past the window
	}}

	got := overview(t, inv, &fakeCategoryRepo{}, now)

	require.Len(t, got.ExpiryForecast, 6)
	months := make([]string, 0, 6)
	volumes := make([]int64, 0, 6)
	for _, b := range got.ExpiryForecast {
		months = append(months, b.Month)
		volumes = append(volumes, b.ExpiryVolume)
	}

	assert.Equal(t, []string{"Jun", "Jul", "Aug", "Sep", "Oct", "Nov"}, months)
	assert.Equal(t, []int64{2, 0, 1, 0, 0, 1}, volumes)
}

func TestExpiryForecastYearRollover(t *testing.T) {
	now := day(2025, 10, 20)
	inv := &fakeBatchRepo{batches: []inventoryModel.Batch{
		batch(day(2026, 1, 15), 1, nil, ""),
		batch(day(2026, 2, 28), 1, nil, ""), // last day of February 2026
		batch(day(2026, 3, 31), 1, nil, ""),
	}}

	got := overview(t, inv, &fakeCategoryRepo{}, now)

	months := make([]string, 0, 6)
	for _, b := range got.ExpiryForecast {
		months = append(months, b.Month)
	}

	assert.Equal(t, []string{"Oct", "Nov", "Dec", "Jan", "Feb", "Mar"}, months)
	assert.Equal(t, int64(1), got.ExpiryForecast[3].ExpiryVolume)
	assert.Equal(t, int64(1), got.ExpiryForecast[4].ExpiryVolume)
	assert.Equal(t, int64(1), got.ExpiryForecast[5].ExpiryVolume)
}

func TestStockDistribution(t *testing.T) {
	now := day(2025, 6, 15)
	inv := &fakeBatchRepo{batches: []inventoryModel.Batch{
		batch(day(2025, 7, 1), 2, price(3), "Dairy"),
		batch(day(2025, 8, 1), 1, price(5), "Dairy"),
		batch(day(2025, 9, 1), 4, price(1), ""), // no category
	}}
	cats := &fakeCategoryRepo{categories: []categoryModel.Category{
		{Name: "Dairy", Color: "#ff0000"},
		{Name: "Frozen", Color: "#00ff00"},
	}}

	got := overview(t, inv, cats, now)

	require.Len(t, got.StockDistribution, 3)

	dairy := got.StockDistribution[0]
	assert.Equal(t, "Dairy", dairy.Category)
	assert.Equal(t, 2, dairy.Count)
	assert.True(t, dairy.Value.Equal(decimal.NewFromInt(11)), "got %s", dairy.Value)
	assert.Equal(t, "#ff0000", dairy.Color)

	// Frozen has no stock but still shows up.
	frozen := got.StockDistribution[1]
	assert.Equal(t, "Frozen", frozen.Category)
	assert.Equal(t, 0, frozen.Count)
	assert.True(t, frozen.Value.IsZero())

	uncategorized := got.StockDistribution[2]
	assert.Equal(t, "Uncategorized", uncategorized.Category)
	assert.Equal(t, 1, uncategorized.Count)
	assert.True(t, uncategorized.Value.Equal(decimal.NewFromInt(4)))
}
