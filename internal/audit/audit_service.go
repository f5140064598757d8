package audit

import (
	"context"
	"encoding/json"
)

const (
	defaultListLimit = 200
	maxListLimit     = 500
)

//go:generate mockgen -source=audit_service.go -destination=mock/audit_service_mock.go -package=mock
type Service interface {
	GetRecent(ctx context.Context, orgID string, limit int) ([]AuditLogResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetRecent(ctx context.Context, orgID string, limit int) ([]AuditLogResponse, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	rows, err := s.repo.FindRecentByOrg(ctx, orgID, limit)
	if err != nil {
		return nil, err
	}

	resp := make([]AuditLogResponse, len(rows))
	for i, row := range rows {
		resp[i] = mapToResponse(row)
	}
	return resp, nil
}

func decodeMetadata(raw []byte) map[string]any {
	if len(raw) == 0 {
		return map[string]any{}
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil || m == nil {
		return map[string]any{}
	}
	return m
}
