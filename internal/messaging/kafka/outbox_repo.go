package kafka

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending = "pending"
	StatusSent    = "sent"
	StatusFailed  = "failed"
)

// AuditEvent is one undelivered audit record in audit_outbox. Rows are
// written in the same database as the audit log itself; cmd/worker drains
// them to Kafka.
type AuditEvent struct {
	ID          string
	AuditLogID  string
	OrgID       string
	Action      string
	EntityType  string
	Payload     []byte
	Status      string
	RetryCount  int
	NextRetryAt time.Time
}

//go:generate mockgen -source=outbox_repo.go -destination=mock/outbox_repo_mock.go -package=mock

type OutboxRepository interface {
	WithTx(tx *sql.Tx) OutboxRepository
	Enqueue(ctx context.Context, event AuditEvent) error
	ListPending(ctx context.Context, limit int) ([]AuditEvent, error)
	MarkSent(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id string, reason string) error
}

type outboxRepository struct {
	db *sql.DB
	tx *sql.Tx
}

func NewOutboxRepository(db *sql.DB) OutboxRepository {
	return &outboxRepository{db: db}
}

func (r *outboxRepository) WithTx(tx *sql.Tx) OutboxRepository {
	return &outboxRepository{db: r.db, tx: tx}
}

// Enqueue assigns the row identity and pending status itself, so callers
// only describe the audit record being exported.
func (r *outboxRepository) Enqueue(ctx context.Context, event AuditEvent) error {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	event.Status = StatusPending
	if err := validateAuditEvent(event); err != nil {
		return err
	}

	query := `
        INSERT INTO audit_outbox (
            id, audit_log_id, org_id, action, entity_type, payload, status
        ) VALUES ($1, $2, $3, $4, $5, $6, $7)
    `

	_, err := r.execer().ExecContext(
		ctx, query,
		event.ID, event.AuditLogID, event.OrgID,
		event.Action, event.EntityType, event.Payload, event.Status,
	)
	return err
}

func (r *outboxRepository) ListPending(ctx context.Context, limit int) ([]AuditEvent, error) {
	query := `
SELECT
	id::text,
	audit_log_id::text,
	org_id::text,
	action,
	entity_type,
	payload,
	status,
	retry_count,
	COALESCE(next_retry_at, created_at)
FROM audit_outbox
WHERE status IN ($1, $2)
	AND (next_retry_at IS NULL OR next_retry_at <= NOW())
ORDER BY created_at ASC
LIMIT $3
`

	rows, err := r.db.QueryContext(ctx, query, StatusPending, StatusFailed, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]AuditEvent, 0, limit)
	for rows.Next() {
		var e AuditEvent
		if err := rows.Scan(
			&e.ID,
			&e.AuditLogID,
			&e.OrgID,
			&e.Action,
			&e.EntityType,
			&e.Payload,
			&e.Status,
			&e.RetryCount,
			&e.NextRetryAt,
		); err != nil {
			return nil, err
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

func (r *outboxRepository) MarkSent(ctx context.Context, id string) error {
	query := `
UPDATE audit_outbox
SET
	status = $2,
	processed_at = NOW(),
	error_message = NULL,
	updated_at = NOW()
WHERE id = $1
`
	_, err := r.db.ExecContext(ctx, query, id, StatusSent)
	return err
}

func (r *outboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	query := `
UPDATE audit_outbox
SET
	status = $2,
	retry_count = retry_count + 1,
	error_message = LEFT($3, 500),
	next_retry_at = NOW() + (LEAST(retry_count + 1, 10) * INTERVAL '15 seconds'),
	updated_at = NOW()
WHERE id = $1
`
	_, err := r.db.ExecContext(ctx, query, id, StatusFailed, reason)
	return err
}

func (r *outboxRepository) execer() interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
} {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

func validateAuditEvent(event AuditEvent) error {
	if event.AuditLogID == "" {
		return errors.New("audit log id is required")
	}
	if event.Action == "" {
		return errors.New("audit action is required")
	}
	if len(event.Payload) == 0 {
		return errors.New("audit payload is required")
	}
	switch event.Status {
	case StatusPending, StatusSent, StatusFailed:
		return nil
	default:
		return fmt.Errorf("invalid outbox status: %s", event.Status)
	}
}
