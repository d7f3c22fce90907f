package main

import (
	"fmt"
	"log"

	"smarttrack-backend/internal/infrastructure/queue"
	"smarttrack-backend/pkg/container"
)

// asynqScheduler wraps queue.Scheduler with graceful shutdown.
type asynqScheduler struct {
	*queue.Scheduler
}

func setupScheduler(c *container.Container, fatal chan<- error) (*asynqScheduler, error) {
	scheduler := queue.NewScheduler(
		c.Config.Redis.Host,
		c.Config.Redis.Password,
		c.Config.Redis.DB,
	)

	if err := scheduler.RegisterJobs(); err != nil {
		return nil, fmt.Errorf("scheduler registration: %w", err)
	}

	go func() {
		log.Println("[Scheduler] Starting...")
		if err := scheduler.Start(); err != nil {
			fatal <- fmt.Errorf("scheduler: %w", err)
		}
	}()

	return &asynqScheduler{Scheduler: scheduler}, nil
}

// Shutdown gracefully shuts down the scheduler.
func (s *asynqScheduler) Shutdown() {
	log.Println("[Scheduler] Shutting down...")
	s.Scheduler.Shutdown()
	log.Println("[Scheduler] ✓ Stopped")
}
