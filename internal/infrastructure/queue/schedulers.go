package queue

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"

	"journal-backend/internal/shared"
	"journal-backend/pkg/logger"
)

type Scheduler struct {
	scheduler *asynq.Scheduler
}

func NewScheduler(redisAddr, password string, db int) *Scheduler {
	scheduler := asynq.NewScheduler(
		asynq.RedisClientOpt{Addr: redisAddr, Password: password, DB: db},
		&asynq.SchedulerOpts{
			Location: time.UTC,
			LogLevel: asynq.InfoLevel,
		},
	)

	return &Scheduler{scheduler: scheduler}
}

// RegisterMaintenanceJobs wires all cron-style jobs.
func (s *Scheduler) RegisterMaintenanceJobs() error {
	return s.registerSweepStagingJob()
}

// Sweep the staging directory every 5 minutes. Catches archives whose
// delayed deletion task was lost (e.g. redis flushed) or that were
// written by a process killed before the task was enqueued.
func (s *Scheduler) registerSweepStagingJob() error {
	payload, err := json.Marshal(shared.SweepStagingPayload{})
	if err != nil {
		return err
	}

	task := asynq.NewTask(shared.TypeSweepStaging, payload)

	_, err = s.scheduler.Register(
		"*/5 * * * *",
		task,
		asynq.Queue(shared.QueueLow),
		asynq.MaxRetry(1),
		asynq.Timeout(2*time.Minute),
	)

	if err != nil {
		logger.Error("Failed to register SweepStaging job", err)
		return err
	}

	return nil
}

func (s *Scheduler) Start() error {
	return s.scheduler.Run()
}

func (s *Scheduler) Shutdown() {
	s.scheduler.Shutdown()
}
