package principal

import (
	"context"

	"gorm.io/gorm"
)

type UserRow struct {
	ID       string
	OrgID    string
	IsActive bool
}

//go:generate mockgen -source=principal_repo.go -destination=mock/principal_repo_mock.go -package=mock
type Repository interface {
	GetActiveUser(ctx context.Context, orgID, userID string) (*UserRow, error)
	GetRoleNames(ctx context.Context, userID string) ([]string, error)
	GetPermissionKeys(ctx context.Context, userID string) ([]string, error)
	GetEmployeeID(ctx context.Context, userID string) (*string, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetActiveUser(ctx context.Context, orgID, userID string) (*UserRow, error) {
	var user UserRow
	err := r.db.WithContext(ctx).
		Table("users").
		Select("id::text AS id, org_id::text AS org_id, is_active").
		Where("id = ?", userID).
		Where("org_id = ?", orgID).
		Where("is_active = true").
		Take(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *repository) GetRoleNames(ctx context.Context, userID string) ([]string, error) {
	var roles []string
	err := r.db.WithContext(ctx).
		Table("user_roles ur").
		Select("r.name").
		Joins("JOIN roles r ON r.id = ur.role_id").
		Where("ur.user_id = ?", userID).
		Scan(&roles).Error
	return roles, err
}

func (r *repository) GetPermissionKeys(ctx context.Context, userID string) ([]string, error) {
	var keys []string
	err := r.db.WithContext(ctx).
		Table("user_roles ur").
		Distinct("p.key").
		Joins("JOIN role_permissions rp ON rp.role_id = ur.role_id").
		Joins("JOIN permissions p ON p.id = rp.permission_id").
		Where("ur.user_id = ?", userID).
		Scan(&keys).Error
	return keys, err
}

func (r *repository) GetEmployeeID(ctx context.Context, userID string) (*string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Table("employees").
		Select("id::text").
		Where("user_id = ?", userID).
		Limit(1).
		Scan(&ids).Error
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}
	return &ids[0], nil
}
