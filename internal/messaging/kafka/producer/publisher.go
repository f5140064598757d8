package producer

import (
	"context"

	"go-hrms/internal/messaging/kafka"

	kafkago "github.com/segmentio/kafka-go"
)

// Messages are keyed by the audit log id so retries of the same record
// land in the same partition.
func publishEvent(ctx context.Context, writer *kafkago.Writer, topic string, event kafka.AuditEvent) error {
	msg := kafkago.Message{
		Topic: topic,
		Key:   []byte(event.AuditLogID),
		Value: event.Payload,
		Headers: []kafkago.Header{
			{Key: "action", Value: []byte(event.Action)},
			{Key: "entity_type", Value: []byte(event.EntityType)},
			{Key: "org_id", Value: []byte(event.OrgID)},
		},
	}

	return writer.WriteMessages(ctx, msg)
}
