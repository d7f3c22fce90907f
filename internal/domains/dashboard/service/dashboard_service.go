package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	categoryRepo "smarttrack-backend/internal/domains/category/repository"
	"smarttrack-backend/internal/domains/dashboard/model"
	inventoryModel "smarttrack-backend/internal/domains/inventory/model"
	inventoryRepo "smarttrack-backend/internal/domains/inventory/repository"
)

// uncategorizedName labels the distribution slice for batches whose product
// has no category.
const uncategorizedName = "Uncategorized"

// uncategorizedColor matches the default category color so uncategorized
// stock renders the same as an unthemed category.
const uncategorizedColor = "#8884d8"

// Service computes dashboard aggregates.
type Service interface {
	GetOverview(ctx context.Context) (*model.Overview, error)
}

type dashboardService struct {
	inventory  inventoryRepo.Repository
	categories categoryRepo.Repository
	now        func() time.Time
}

// NewService creates a new dashboard service
func NewService(inventory inventoryRepo.Repository, categories categoryRepo.Repository) Service {
	return NewServiceWithClock(inventory, categories, time.Now)
}

// NewServiceWithClock allows injecting a fixed clock in tests.
func NewServiceWithClock(inventory inventoryRepo.Repository, categories categoryRepo.Repository, now func() time.Time) Service {
	return &dashboardService{
		inventory:  inventory,
		categories: categories,
		now:        now,
	}
}

// GetOverview implements Service.GetOverview. Every aggregate is computed
// fresh from the store against a single evaluation date captured here; no
// derived numbers are cached.
func (s *dashboardService) GetOverview(ctx context.Context) (*model.Overview, error) {
	today := inventoryModel.ToDay(s.now())

	totalStock, err := s.inventory.CountActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count active batches: %w", err)
	}

	value, err := s.inventory.TotalInventoryValue(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to sum inventory value: %w", err)
	}
	inventoryValue := decimal.Zero
	if value != nil {
		inventoryValue = *value
	}

	nearExpiryCount, err := s.inventory.CountExpiringBetween(ctx, today, today.AddDate(0, 0, inventoryModel.NearExpiryWindowDays))
	if err != nil {
		return nil, fmt.Errorf("failed to count near-expiry batches: %w", err)
	}

	expiredCount, err := s.inventory.CountExpired(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("failed to count expired batches: %w", err)
	}

	forecast, err := s.expiryForecast(ctx, today)
	if err != nil {
		return nil, err
	}

	distribution, err := s.stockDistribution(ctx)
	if err != nil {
		return nil, err
	}

	return &model.Overview{
		TotalStock:        totalStock,
		InventoryValue:    inventoryValue,
		NearExpiryCount:   nearExpiryCount,
		ExpiredCount:      expiredCount,
		SystemStatus:      systemStatus(expiredCount, nearExpiryCount),
		ExpiryForecast:    forecast,
		StockDistribution: distribution,
	}, nil
}

// systemStatus derives the header badge. Expired stock dominates near-expiry
// stock.
func systemStatus(expired, nearExpiry int64) model.SystemStatus {
	switch {
	case expired > 0:
		return model.StatusCritical
	case nearExpiry > 0:
		return model.StatusWarning
	default:
		return model.StatusHealthy
	}
}

// expiryForecast builds the fixed six-month forecast starting with the
// current calendar month. Month arithmetic leans on time.Date normalization
// so the window rolls over year boundaries.
func (s *dashboardService) expiryForecast(ctx context.Context, today time.Time) ([]model.ForecastBucket, error) {
	forecast := make([]model.ForecastBucket, 0, model.ForecastMonths)

	for i := 0; i < model.ForecastMonths; i++ {
		monthStart := time.Date(today.Year(), today.Month()+time.Month(i), 1, 0, 0, 0, 0, time.UTC)
		monthEnd := monthStart.AddDate(0, 1, -1)

		count, err := s.inventory.CountExpiringBetween(ctx, monthStart, monthEnd)
		if err != nil {
			return nil, fmt.Errorf("failed to build expiry forecast: %w", err)
		}

		forecast = append(forecast, model.ForecastBucket{
			Month:        monthStart.Format("Jan"),
			ExpiryVolume: count,
		})
	}

	return forecast, nil
}

// stockDistribution groups active batches by category. Every known category
// appears even with zero stock, and batches without a category land in an
// explicit Uncategorized slice at the end.
func (s *dashboardService) stockDistribution(ctx context.Context) ([]model.CategorySlice, error) {
	categories, err := s.categories.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	batches, err := s.inventory.FindAllActiveOrderedByExpiry(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active batches: %w", err)
	}

	slices := make([]model.CategorySlice, 0, len(categories)+1)
	index := make(map[string]int, len(categories)+1)

	for _, c := range categories {
		index[c.Name] = len(slices)
		slices = append(slices, model.CategorySlice{
			Category: c.Name,
			Value:    decimal.Zero,
			Color:    c.Color,
		})
	}

	index[uncategorizedName] = len(slices)
	slices = append(slices, model.CategorySlice{
		Category: uncategorizedName,
		Value:    decimal.Zero,
		Color:    uncategorizedColor,
	})

	for i := range batches {
		name := uncategorizedName
		if batches[i].CategoryName != nil {
			name = *batches[i].CategoryName
		}

		pos, ok := index[name]
		if !ok {
			// Category created after the list query; tack it on.
			pos = len(slices)
			index[name] = pos
			slices = append(slices, model.CategorySlice{
				Category: name,
				Value:    decimal.Zero,
				Color:    uncategorizedColor,
			})
		}

		slices[pos].Count++
		slices[pos].Value = slices[pos].Value.Add(batches[i].LineValue())
	}

	return slices, nil
}
