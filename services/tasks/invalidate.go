package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"goodjob/config"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

const TypeStatsInvalidate = "stats:invalidate"

// InvalidatePayload describes one request to evict cached statistics.
type InvalidatePayload struct {
	RequestID   string    `json:"requestId"`
	RequestedAt time.Time `json:"requestedAt"`
}

// RedisOpt returns the asynq connection settings for the task queue DB.
func RedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

func NewStatsInvalidateTask(requestedAt time.Time) (*asynq.Task, []asynq.Option, error) {
	payload := InvalidatePayload{
		RequestID:   uuid.New().String(),
		RequestedAt: requestedAt,
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeStatsInvalidate, b)
	opts := []asynq.Option{
		asynq.TaskID(payload.RequestID),
		asynq.MaxRetry(5),
		asynq.Timeout(30 * time.Second),
	}

	return task, opts, nil
}

// AsynqInvalidator enqueues stats:invalidate tasks.
type AsynqInvalidator struct {
	client *asynq.Client
}

func NewAsynqInvalidator(client *asynq.Client) *AsynqInvalidator {
	return &AsynqInvalidator{client: client}
}

func (i *AsynqInvalidator) Invalidate(ctx context.Context) error {
	task, opts, err := NewStatsInvalidateTask(time.Now().UTC())
	if err != nil {
		return err
	}
	if _, err := i.client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("enqueue %s: %w", TypeStatsInvalidate, err)
	}
	return nil
}
