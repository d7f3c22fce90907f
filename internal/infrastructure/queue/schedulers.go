package queue

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"

	"smarttrack-backend/internal/shared"
	"smarttrack-backend/pkg/logger"
)

type Scheduler struct {
	scheduler *asynq.Scheduler
}

func NewScheduler(redisAddress, redisPassword string, redisDB int) *Scheduler {
	scheduler := asynq.NewScheduler(
		asynq.RedisClientOpt{
			Addr:     redisAddress,
			Password: redisPassword,
			DB:       redisDB,
		},
		&asynq.SchedulerOpts{
			Location: time.UTC,
			LogLevel: asynq.InfoLevel,
		},
	)

	return &Scheduler{scheduler: scheduler}
}

func (s *Scheduler) RegisterJobs() error {
	if err := s.registerRefreshBatchStatusesJob(); err != nil {
		return err
	}

	if err := s.registerGenerateExpiryAlertsJob(); err != nil {
		return err
	}

	return nil
}

// ================================================
// JOB 1: Refresh Batch Statuses (Daily at 00:05 UTC)
// ================================================
// Stored statuses are snapshots of the expiry classification at write time.
// They go stale when the calendar moves, so the first job after midnight
// re-derives every row.
func (s *Scheduler) registerRefreshBatchStatusesJob() error {
	payload, err := json.Marshal(shared.RefreshBatchStatusesPayload{})
	if err != nil {
		return err
	}

	task := asynq.NewTask(shared.TypeRefreshBatchStatuses, payload)

	_, err = s.scheduler.Register(
		"5 0 * * *", // Daily at 00:05 UTC, right after the day rolls over
		task,
		asynq.Queue(shared.QueueInventory),
		asynq.MaxRetry(2),
		asynq.Timeout(10*time.Minute),
	)

	if err != nil {
		logger.Error("Failed to register RefreshBatchStatuses job", err)
		return err
	}

	logger.Info("✓ Registered RefreshBatchStatuses: daily at 00:05 UTC", map[string]interface{}{})
	return nil
}

// ================================================
// JOB 2: Generate Expiry Alerts (Daily at 6 AM UTC)
// ================================================
// Runs after the status refresh so the sweep sees up-to-date rows, and
// early enough that alerts are waiting when the workday starts.
func (s *Scheduler) registerGenerateExpiryAlertsJob() error {
	payload, err := json.Marshal(shared.GenerateExpiryAlertsPayload{})
	if err != nil {
		return err
	}

	task := asynq.NewTask(shared.TypeGenerateExpiryAlerts, payload)

	_, err = s.scheduler.Register(
		"0 6 * * *", // Daily at 6 AM UTC
		task,
		asynq.Queue(shared.QueueAlert),
		asynq.MaxRetry(3),
		asynq.Timeout(5*time.Minute),
	)

	if err != nil {
		logger.Error("Failed to register GenerateExpiryAlerts job", err)
		return err
	}

	logger.Info("✓ Registered GenerateExpiryAlerts: daily at 6 AM UTC", map[string]interface{}{})
	return nil
}

func (s *Scheduler) Start() error {
	return s.scheduler.Run()
}

func (s *Scheduler) Shutdown() {
	s.scheduler.Shutdown()
}
