package audit

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"

	"go-hrms/internal/messaging/kafka"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeRepo struct {
	insertFn func(ctx context.Context, row *AuditLog) error
	findFn   func(ctx context.Context, orgID string, limit int) ([]AuditLog, error)
}

func (f *fakeRepo) Insert(ctx context.Context, row *AuditLog) error { return f.insertFn(ctx, row) }
func (f *fakeRepo) FindRecentByOrg(ctx context.Context, orgID string, limit int) ([]AuditLog, error) {
	return f.findFn(ctx, orgID, limit)
}

type outboxSpy struct {
	enqueued []kafka.AuditEvent
	err      error
}

func (f *outboxSpy) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }
func (f *outboxSpy) Enqueue(ctx context.Context, event kafka.AuditEvent) error {
	if f.err != nil {
		return f.err
	}
	f.enqueued = append(f.enqueued, event)
	return nil
}
func (f *outboxSpy) ListPending(ctx context.Context, limit int) ([]kafka.AuditEvent, error) {
	return nil, nil
}
func (f *outboxSpy) MarkSent(ctx context.Context, id string) error { return nil }
func (f *outboxSpy) MarkFailed(ctx context.Context, id string, r string) error {
	return nil
}

func TestWriter_WritesRowAndOutboxEvent(t *testing.T) {
	orgID := uuid.New().String()
	userID := uuid.New().String()

	var saved *AuditLog
	repo := &fakeRepo{insertFn: func(ctx context.Context, row *AuditLog) error {
		saved = row
		return nil
	}}
	outbox := &outboxSpy{}

	w := NewWriter(repo, outbox)
	w.Write(context.Background(), Entry{
		OrgID:       orgID,
		ActorUserID: userID,
		Action:      "employee.create",
		EntityType:  "employee",
		EntityID:    uuid.New().String(),
		Metadata:    map[string]any{"employee_code": "EMP-7"},
	})

	assert.NotNil(t, saved)
	assert.Equal(t, "employee.create", saved.Action)
	assert.Equal(t, orgID, saved.OrgID.String())
	assert.NotNil(t, saved.ActorUserID)

	var meta map[string]any
	assert.NoError(t, json.Unmarshal(saved.Metadata, &meta))
	assert.Equal(t, "EMP-7", meta["employee_code"])

	assert.Len(t, outbox.enqueued, 1)
	event := outbox.enqueued[0]
	assert.Equal(t, saved.ID.String(), event.AuditLogID)
	assert.Equal(t, orgID, event.OrgID)
	assert.Equal(t, "employee.create", event.Action)
	assert.Equal(t, "employee", event.EntityType)

	var payload map[string]any
	assert.NoError(t, json.Unmarshal(event.Payload, &payload))
	assert.Equal(t, saved.ID.String(), payload["audit_log_id"])
}

func TestWriter_InsertFailureDoesNotPropagate(t *testing.T) {
	repo := &fakeRepo{insertFn: func(ctx context.Context, row *AuditLog) error {
		return errors.New("db down")
	}}
	outbox := &outboxSpy{}

	w := NewWriter(repo, outbox)
	// Must not panic and must not enqueue an event for a row never written.
	w.Write(context.Background(), Entry{
		OrgID:      uuid.New().String(),
		Action:     "leave.apply",
		EntityType: "leave_request",
	})

	assert.Empty(t, outbox.enqueued)
}

func TestWriter_BadOrgIDSkipped(t *testing.T) {
	called := false
	repo := &fakeRepo{insertFn: func(ctx context.Context, row *AuditLog) error {
		called = true
		return nil
	}}

	w := NewWriter(repo, &outboxSpy{})
	w.Write(context.Background(), Entry{OrgID: "not-a-uuid", Action: "x", EntityType: "y"})

	assert.False(t, called)
}

func TestService_GetRecentCapsLimit(t *testing.T) {
	var gotLimit int
	repo := &fakeRepo{findFn: func(ctx context.Context, orgID string, limit int) ([]AuditLog, error) {
		gotLimit = limit
		return []AuditLog{}, nil
	}}

	svc := NewService(repo)

	_, err := svc.GetRecent(context.Background(), uuid.New().String(), 0)
	assert.NoError(t, err)
	assert.Equal(t, 200, gotLimit)

	_, err = svc.GetRecent(context.Background(), uuid.New().String(), 10_000)
	assert.NoError(t, err)
	assert.Equal(t, 500, gotLimit)
}
