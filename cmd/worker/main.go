package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"journal-backend/internal/infrastructure/queue"
	"journal-backend/pkg/container"
	"journal-backend/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}
	logger.Init(env)

	c, err := container.NewContainer()
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}

	handlers := initializeHandlers(c)
	srv := setupAsynqServer(c, handlers)

	scheduler := queue.NewScheduler(c.Config.Redis.Host, c.Config.Redis.Password, c.Config.Redis.DB)
	if err := scheduler.RegisterMaintenanceJobs(); err != nil {
		log.Fatalf("Failed to register maintenance jobs: %v", err)
	}
	go func() {
		if err := scheduler.Start(); err != nil {
			log.Fatalf("Scheduler failed: %v", err)
		}
	}()

	waitForShutdown(srv, scheduler, c)
}

func waitForShutdown(srv *asynqServer, scheduler *queue.Scheduler, c *container.Container) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Worker shutting down", nil)

	scheduler.Shutdown()
	srv.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := c.Cleanup(ctx); err != nil {
		logger.Error("Cleanup failed", err)
	}

	logger.Info("Worker stopped", nil)
}
