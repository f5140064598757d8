package audit

import (
	"context"

	"go-hrms/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=audit_repo.go -destination=mock/audit_repo_mock.go -package=mock
type Repository interface {
	Insert(ctx context.Context, row *AuditLog) error
	FindRecentByOrg(ctx context.Context, orgID string, limit int) ([]AuditLog, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Insert(ctx context.Context, row *AuditLog) error {
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *repository) FindRecentByOrg(ctx context.Context, orgID string, limit int) ([]AuditLog, error) {
	var rows []AuditLog
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(orgID)).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}
