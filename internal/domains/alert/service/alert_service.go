package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"smarttrack-backend/internal/domains/alert/model"
	"smarttrack-backend/internal/domains/alert/repository"
	inventoryModel "smarttrack-backend/internal/domains/inventory/model"
	inventoryRepo "smarttrack-backend/internal/domains/inventory/repository"
	"smarttrack-backend/pkg/logger"
)

// Service manages expiry alerts.
type Service interface {
	ListUnacknowledged(ctx context.Context) ([]model.Alert, error)
	ListCritical(ctx context.Context) ([]model.Alert, error)
	CountUnacknowledged(ctx context.Context) (int64, error)
	Acknowledge(ctx context.Context, id, userID uuid.UUID) error
	GenerateExpiryAlerts(ctx context.Context) (*model.GenerateResult, error)
}

type alertService struct {
	repo      repository.Repository
	inventory inventoryRepo.Repository
	now       func() time.Time
}

// NewService creates a new alert service
func NewService(repo repository.Repository, inventory inventoryRepo.Repository) Service {
	return NewServiceWithClock(repo, inventory, time.Now)
}

// NewServiceWithClock allows injecting a fixed clock in tests.
func NewServiceWithClock(repo repository.Repository, inventory inventoryRepo.Repository, now func() time.Time) Service {
	return &alertService{repo: repo, inventory: inventory, now: now}
}

func (s *alertService) ListUnacknowledged(ctx context.Context) ([]model.Alert, error) {
	return s.repo.ListUnacknowledged(ctx)
}

func (s *alertService) ListCritical(ctx context.Context) ([]model.Alert, error) {
	return s.repo.ListUnacknowledgedCritical(ctx)
}

func (s *alertService) CountUnacknowledged(ctx context.Context) (int64, error) {
	return s.repo.CountUnacknowledged(ctx)
}

func (s *alertService) Acknowledge(ctx context.Context, id, userID uuid.UUID) error {
	return s.repo.Acknowledge(ctx, id, userID, s.now())
}

// GenerateExpiryAlerts sweeps the active batches and raises an EXPIRY alert
// per batch: CRITICAL for expired stock, WARNING for stock inside the
// near-expiry window. A batch with an open EXPIRY alert is skipped so
// repeated sweeps stay idempotent.
func (s *alertService) GenerateExpiryAlerts(ctx context.Context) (*model.GenerateResult, error) {
	today := inventoryModel.ToDay(s.now())

	expired, err := s.inventory.FindExpired(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("failed to find expired batches: %w", err)
	}

	nearExpiry, err := s.inventory.FindExpiringBetween(ctx, today, today.AddDate(0, 0, inventoryModel.NearExpiryWindowDays))
	if err != nil {
		return nil, fmt.Errorf("failed to find near-expiry batches: %w", err)
	}

	result := &model.GenerateResult{}

	for i := range expired {
		b := &expired[i]
		message := fmt.Sprintf("Batch %s of %s expired on %s",
			b.BatchNumber, b.ProductName, b.ExpiryDate.Format(time.DateOnly))
		if err := s.raise(ctx, b.ID, model.SeverityCritical, message, result); err != nil {
			return nil, err
		}
	}

	for i := range nearExpiry {
		b := &nearExpiry[i]
		message := fmt.Sprintf("Batch %s of %s expires in %d day(s)",
			b.BatchNumber, b.ProductName, inventoryModel.DaysUntilExpiry(b.ExpiryDate, today))
		if err := s.raise(ctx, b.ID, model.SeverityWarning, message, result); err != nil {
			return nil, err
		}
	}

	logger.Info("Expiry alert sweep finished", map[string]interface{}{
		"created": result.Created,
		"skipped": result.Skipped,
	})

	return result, nil
}

func (s *alertService) raise(ctx context.Context, batchID uuid.UUID, severity model.Severity, message string, result *model.GenerateResult) error {
	open, err := s.repo.HasOpenAlert(ctx, batchID, model.TypeExpiry)
	if err != nil {
		return err
	}
	if open {
		result.Skipped++
		return nil
	}

	alert := &model.Alert{
		ID:        uuid.New(),
		BatchID:   batchID,
		AlertType: model.TypeExpiry,
		Severity:  severity,
		Message:   message,
	}
	if err := s.repo.Create(ctx, alert); err != nil {
		return err
	}

	result.Created++
	return nil
}
