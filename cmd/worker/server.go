package main

import (
	"fmt"
	"log"

	"github.com/hibiken/asynq"

	"smarttrack-backend/internal/infrastructure/queue/handlers"
	"smarttrack-backend/internal/shared"
	"smarttrack-backend/pkg/container"
)

// asynqServer wraps the asynq server together with its mux.
type asynqServer struct {
	server *asynq.Server
}

func setupAsynqServer(c *container.Container, fatal chan<- error) *asynqServer {
	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     c.Config.Redis.Host,
			Password: c.Config.Redis.Password,
			DB:       c.Config.Redis.DB,
		},
		asynq.Config{
			Concurrency: 2,
			Queues: map[string]int{
				shared.QueueInventory: 2,
				shared.QueueAlert:     1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(shared.TypeRefreshBatchStatuses, handlers.RefreshBatchStatusesHandler(c.InventoryRepo))
	mux.HandleFunc(shared.TypeGenerateExpiryAlerts, handlers.GenerateExpiryAlertsHandler(c.AlertService))

	go func() {
		log.Println("[Worker] Starting...")
		if err := srv.Run(mux); err != nil {
			fatal <- fmt.Errorf("task server: %w", err)
		}
	}()

	return &asynqServer{server: srv}
}

// Shutdown gracefully stops the worker.
func (s *asynqServer) Shutdown() {
	log.Println("[Worker] Shutting down...")
	s.server.Shutdown()
	log.Println("[Worker] ✓ Stopped")
}
