package audit

import (
	"context"
	"encoding/json"

	"go-hrms/internal/messaging/kafka"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Entry is one auditable action. Actor fields are optional so pre-auth
// events (failed logins excluded, server lifecycle) can still be recorded.
type Entry struct {
	OrgID           string
	ActorUserID     string
	ActorEmployeeID string
	Action          string
	EntityType      string
	EntityID        string
	IP              string
	UserAgent       string
	Metadata        map[string]any
}

//go:generate mockgen -source=audit_writer.go -destination=mock/audit_writer_mock.go -package=mock

// Writer appends audit entries. Writes are best-effort and deliberately
// decoupled from the caller's transaction: a failed audit insert is logged
// and never rolls back or fails the primary mutation.
type Writer interface {
	Write(ctx context.Context, entry Entry)
}

type writer struct {
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewWriter(repo Repository, outbox kafka.OutboxRepository, logger ...*zap.Logger) Writer {
	l := zap.L().Named("audit.writer")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("audit.writer")
	}
	return &writer{repo: repo, outbox: outbox, logger: l}
}

func (w *writer) Write(ctx context.Context, entry Entry) {
	row, err := w.toRow(entry)
	if err != nil {
		w.logger.Error("build audit row failed", zap.String("action", entry.Action), zap.Error(err))
		return
	}

	if err := w.repo.Insert(ctx, row); err != nil {
		w.logger.Error("insert audit log failed",
			zap.String("action", entry.Action),
			zap.String("org_id", entry.OrgID),
			zap.Error(err),
		)
		return
	}

	w.enqueueEvent(ctx, row)
}

func (w *writer) toRow(entry Entry) (*AuditLog, error) {
	orgID, err := uuid.Parse(entry.OrgID)
	if err != nil {
		return nil, err
	}

	metadata := entry.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}
	payload, err := json.Marshal(metadata)
	if err != nil {
		return nil, err
	}

	row := &AuditLog{
		ID:         uuid.New(),
		OrgID:      orgID,
		Action:     entry.Action,
		EntityType: entry.EntityType,
		Metadata:   payload,
	}
	if id, err := uuid.Parse(entry.ActorUserID); err == nil {
		row.ActorUserID = &id
	}
	if id, err := uuid.Parse(entry.ActorEmployeeID); err == nil {
		row.ActorEmployeeID = &id
	}
	if id, err := uuid.Parse(entry.EntityID); err == nil {
		row.EntityID = &id
	}
	if entry.IP != "" {
		row.IP = &entry.IP
	}
	if entry.UserAgent != "" {
		row.UserAgent = &entry.UserAgent
	}
	return row, nil
}

func (w *writer) enqueueEvent(ctx context.Context, row *AuditLog) {
	if w.outbox == nil {
		return
	}

	payload, err := json.Marshal(map[string]any{
		"audit_log_id": row.ID.String(),
		"org_id":       row.OrgID.String(),
		"action":       row.Action,
		"entity_type":  row.EntityType,
	})
	if err != nil {
		w.logger.Error("marshal audit event failed", zap.Error(err))
		return
	}

	event := kafka.AuditEvent{
		AuditLogID: row.ID.String(),
		OrgID:      row.OrgID.String(),
		Action:     row.Action,
		EntityType: row.EntityType,
		Payload:    payload,
	}
	if err := w.outbox.Enqueue(ctx, event); err != nil {
		w.logger.Error("enqueue audit event failed",
			zap.String("audit_log_id", row.ID.String()),
			zap.Error(err),
		)
	}
}
