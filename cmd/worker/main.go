package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"smarttrack-backend/pkg/container"
	"smarttrack-backend/pkg/logger"
)

// The worker owns the scheduled jobs: the nightly batch status refresh and
// the daily expiry alert sweep. It shares the container with the API but
// serves no HTTP traffic.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, using system environment variables")
	}

	c, err := container.NewContainer()
	if err != nil {
		log.Fatalf("[Container] Failed to initialize: %v", err)
	}

	logger.Init(c.Config.App.Environment)

	err = run(c)
	c.Cleanup()
	if err != nil {
		log.Fatalf("[Worker] %v", err)
	}
}

// run blocks until a shutdown signal or a fatal component error, then stops
// the scheduler and server in order. Fatal errors from the run goroutines
// land on a channel instead of exiting, so cleanup in main always happens.
func run(c *container.Container) error {
	fatal := make(chan error, 2)

	srv := setupAsynqServer(c, fatal)

	scheduler, err := setupScheduler(c, fatal)
	if err != nil {
		srv.Shutdown()
		return err
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	return awaitShutdown(quit, fatal, scheduler, srv)
}

type stoppable interface {
	Shutdown()
}

func awaitShutdown(quit <-chan os.Signal, fatal <-chan error, components ...stoppable) error {
	var runErr error
	select {
	case <-quit:
		log.Println("[Shutdown] Gracefully stopping...")
	case runErr = <-fatal:
		log.Printf("[Shutdown] Stopping after fatal error: %v", runErr)
	}

	for _, c := range components {
		c.Shutdown()
	}
	log.Println("[Shutdown] ✓ Stopped")
	return runErr
}
