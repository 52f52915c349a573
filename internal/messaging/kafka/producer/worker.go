package producer

import (
	"context"
	"time"

	"go-leave/internal/messaging/kafka"

	"go.uber.org/zap"
)

const (
	batchSize       = 50
	sentRetention   = 7 * 24 * time.Hour
	purgeEveryTicks = 200
)

// ProcessOutboxEvents relays committed outbox rows to kafka until ctx is done.
// Leave and employee events are keyed by aggregate id so every event of one
// leave request lands on the same partition in commit order.
func ProcessOutboxEvents(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer MessageWriter,
	logger *zap.Logger,
	pollInterval time.Duration,
) {
	if pollInterval <= 0 {
		pollInterval = 3 * time.Second
	}

	log := logger.Named("kafka.producer.worker")
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	log.Info("outbox worker started", zap.Duration("poll_interval", pollInterval))

	ticks := 0
	for {
		select {
		case <-ctx.Done():
			log.Info("outbox worker stopped")
			return
		case <-ticker.C:
			if _, err := ProcessPendingEvents(ctx, repo, writer, log); err != nil {
				log.Error("process outbox events failed", zap.Error(err))
			}

			ticks++
			if ticks%purgeEveryTicks == 0 {
				purgeSent(ctx, repo, log)
			}
		}
	}
}

// ProcessPendingEvents publishes one batch and returns how many were sent.
func ProcessPendingEvents(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer MessageWriter,
	logger *zap.Logger,
) (int, error) {
	events, err := repo.ListPending(ctx, batchSize)
	if err != nil {
		return 0, err
	}

	if len(events) == 0 {
		return 0, nil
	}

	logger.Debug("processing pending outbox events", zap.Int("count", len(events)))

	sent := 0
	for _, event := range events {
		if err := publishEvent(ctx, writer, event); err != nil {
			fields := []zap.Field{
				zap.String("outbox_id", event.ID),
				zap.String("event_type", event.EventType),
				zap.String("topic", event.Topic),
				zap.Int("retry_count", event.RetryCount+1),
				zap.Error(err),
			}
			if event.RetryCount+1 >= kafka.MaxOutboxRetries {
				logger.Error("outbox event exhausted retries", fields...)
			} else {
				logger.Warn("publish outbox event failed", fields...)
			}

			if markErr := repo.MarkFailed(ctx, event.ID, err.Error()); markErr != nil {
				logger.Error("mark outbox failed failed", zap.String("outbox_id", event.ID), zap.Error(markErr))
			}
			continue
		}

		if err := repo.MarkSent(ctx, event.ID); err != nil {
			logger.Error("mark outbox sent failed",
				zap.String("outbox_id", event.ID),
				zap.Error(err),
			)
			continue
		}

		sent++
		logger.Info("outbox event sent",
			zap.String("outbox_id", event.ID),
			zap.String("request_id", event.RequestID),
			zap.String("event_type", event.EventType),
			zap.String("topic", event.Topic),
		)
	}

	return sent, nil
}

func purgeSent(ctx context.Context, repo kafka.OutboxRepository, logger *zap.Logger) {
	n, err := repo.PurgeSent(ctx, time.Now().Add(-sentRetention))
	if err != nil {
		logger.Error("purge sent outbox events failed", zap.Error(err))
		return
	}
	if n > 0 {
		logger.Info("purged sent outbox events", zap.Int64("count", n))
	}
}
