package employee

import (
	"context"

	"go-hrms/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, e *Employee) error
	FindAllByOrg(ctx context.Context, orgID string, limit, offset int) ([]Employee, error)
	CountByOrg(ctx context.Context, orgID string) (int64, error)
	FindByIDAndOrg(ctx context.Context, orgID, id string) (*Employee, error)
	FindReportees(ctx context.Context, orgID, managerID string) ([]Employee, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) FindAllByOrg(ctx context.Context, orgID string, limit, offset int) ([]Employee, error) {
	var rows []Employee
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(orgID)).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error
	return rows, err
}

func (r *repository) CountByOrg(ctx context.Context, orgID string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Scopes(tenant.Scope(orgID)).
		Count(&total).Error
	return total, err
}

func (r *repository) FindByIDAndOrg(ctx context.Context, orgID, id string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(orgID)).
		First(&e, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) FindReportees(ctx context.Context, orgID, managerID string) ([]Employee, error) {
	var rows []Employee
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(orgID)).
		Where("manager_employee_id = ?", managerID).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}
