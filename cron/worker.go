package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"goodjob/services/tasks"
	"goodjob/services/workings"
	"goodjob/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitStatsWorker runs the asynq worker that evicts cached statistics in the
// background. The returned server must be shut down on exit.
func InitStatsWorker(cache workings.StatsCache) *asynq.Server {
	logger := utils.GetLogger().With(zap.String("component", "StatsWorker"))

	srv := asynq.NewServer(
		tasks.RedisOpt(),
		asynq.Config{
			Concurrency: 2,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeStatsInvalidate, handleStatsInvalidate(cache, logger))

	// Start async worker with retry logic
	go func() {
		logger.Info("Starting async worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Start(mux)
			if err == nil {
				return
			}
			logger.Warn("Failed to start worker",
				zap.Int("attempt", attempts),
				zap.Int("maxAttempts", maxAttempts),
				zap.Error(err),
			)
			if attempts == maxAttempts {
				logger.Error("Max retry attempts reached, cached statistics will only expire by TTL")
				return
			}
			time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
		}
	}()

	return srv
}

func handleStatsInvalidate(cache workings.StatsCache, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.InvalidatePayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("Invalid payload", zap.Error(err))
			return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
		}

		if err := cache.Invalidate(ctx); err != nil {
			logger.Warn("Failed to invalidate stats cache", zap.String("requestID", p.RequestID), zap.Error(err))
			return err
		}
		logger.Info("Stats cache invalidated",
			zap.String("requestID", p.RequestID),
			zap.Duration("lag", time.Since(p.RequestedAt)),
		)
		return nil
	}
}
