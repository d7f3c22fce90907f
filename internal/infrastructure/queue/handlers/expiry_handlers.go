package handlers

import (
	"context"
	"time"

	"github.com/hibiken/asynq"

	alertService "smarttrack-backend/internal/domains/alert/service"
	inventoryRepo "smarttrack-backend/internal/domains/inventory/repository"
	"smarttrack-backend/pkg/logger"
)

// RefreshBatchStatusesHandler re-derives the stored status of every batch
// from its expiry date.
func RefreshBatchStatusesHandler(repo inventoryRepo.Repository) func(ctx context.Context, t *asynq.Task) error {
	return func(ctx context.Context, t *asynq.Task) error {
		changed, err := repo.RefreshStatuses(ctx, time.Now())
		if err != nil {
			return err // transient DB error, let asynq retry
		}

		logger.Info("Batch statuses refreshed", map[string]interface{}{
			"changed": changed,
		})
		return nil
	}
}

// GenerateExpiryAlertsHandler runs the expiry alert sweep.
func GenerateExpiryAlertsHandler(alerts alertService.Service) func(ctx context.Context, t *asynq.Task) error {
	return func(ctx context.Context, t *asynq.Task) error {
		result, err := alerts.GenerateExpiryAlerts(ctx)
		if err != nil {
			return err
		}

		logger.Info("Expiry alerts generated", map[string]interface{}{
			"created": result.Created,
			"skipped": result.Skipped,
		})
		return nil
	}
}
