package payroll

import (
	"context"

	"go-hrms/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	FindCyclesByOrg(ctx context.Context, orgID string, limit int) ([]PayrollCycle, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindCyclesByOrg(ctx context.Context, orgID string, limit int) ([]PayrollCycle, error) {
	var rows []PayrollCycle
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(orgID)).
		Order("start_date DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}
