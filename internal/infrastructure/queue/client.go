package queue

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"journal-backend/internal/shared"
)

// Client wraps the asynq client with typed enqueue helpers.
type Client struct {
	client *asynq.Client
}

func NewClient(redisAddr, password string, db int) *Client {
	return &Client{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     redisAddr,
			Password: password,
			DB:       db,
		}),
	}
}

// ScheduleArchiveDeletion enqueues a delayed delete task for one staged
// archive. The task lives in redis, so it survives a process restart.
func (c *Client) ScheduleArchiveDeletion(fileName string, delay time.Duration) error {
	payload, err := json.Marshal(shared.DeleteArchivePayload{FileName: fileName})
	if err != nil {
		return fmt.Errorf("marshal delete archive payload: %w", err)
	}

	task := asynq.NewTask(shared.TypeDeleteArchive, payload)
	_, err = c.client.Enqueue(task,
		asynq.ProcessIn(delay),
		asynq.Queue(shared.QueueLow),
		asynq.MaxRetry(3),
	)
	if err != nil {
		return fmt.Errorf("enqueue archive deletion: %w", err)
	}
	return nil
}

// EnqueueReviewRequest queues one review-request email for the worker.
func (c *Client) EnqueueReviewRequest(p shared.ReviewRequestPayload) error {
	payload, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal review request payload: %w", err)
	}

	task := asynq.NewTask(shared.TypeSendReviewRequest, payload)
	_, err = c.client.Enqueue(task,
		asynq.Queue(shared.QueueDefault),
		asynq.MaxRetry(1),
		asynq.Timeout(1*time.Minute),
	)
	if err != nil {
		return fmt.Errorf("enqueue review request: %w", err)
	}
	return nil
}

func (c *Client) Close() error {
	return c.client.Close()
}
