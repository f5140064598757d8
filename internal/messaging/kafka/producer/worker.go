package producer

import (
	"context"
	"time"

	"go-hrms/internal/messaging/kafka"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ProcessOutboxEvents polls undelivered audit events and publishes them to
// the audit topic until the context is cancelled. Failed publishes are
// retried with backoff via MarkFailed's next_retry_at.
func ProcessOutboxEvents(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer *kafkago.Writer,
	topic string,
	logger *zap.Logger,
	pollInterval time.Duration,
) {
	if pollInterval <= 0 {
		pollInterval = 3 * time.Second
	}

	log := logger.Named("kafka.producer.worker")
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	log.Info("audit outbox worker started",
		zap.String("topic", topic),
		zap.Duration("poll_interval", pollInterval),
	)

	for {
		select {
		case <-ctx.Done():
			log.Info("audit outbox worker stopped")
			return
		case <-ticker.C:
			if err := processPendingEvents(ctx, repo, writer, topic, log); err != nil {
				log.Error("process audit outbox failed", zap.Error(err))
			}
		}
	}
}

func processPendingEvents(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer *kafkago.Writer,
	topic string,
	logger *zap.Logger,
) error {
	events, err := repo.ListPending(ctx, 50)
	if err != nil {
		return err
	}

	if len(events) == 0 {
		return nil
	}

	logger.Info("publishing pending audit events", zap.Int("count", len(events)))

	for _, event := range events {
		if err := publishEvent(ctx, writer, topic, event); err != nil {
			logger.Error("publish audit event failed",
				zap.String("outbox_id", event.ID),
				zap.String("action", event.Action),
				zap.String("org_id", event.OrgID),
				zap.Error(err),
			)
			_ = repo.MarkFailed(ctx, event.ID, err.Error())
			continue
		}

		if err := repo.MarkSent(ctx, event.ID); err != nil {
			logger.Error("mark audit event sent failed",
				zap.String("outbox_id", event.ID),
				zap.Error(err),
			)
		}
	}

	return nil
}
