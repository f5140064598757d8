package auth

import (
	"context"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_repo.go -destination=mock/auth_repo_mock.go -package=mock
type Repository interface {
	GetOrgBySlug(ctx context.Context, slug string) (*Organization, error)
	GetUserByEmail(ctx context.Context, orgID, email string) (*User, error)
	GetUserByID(ctx context.Context, orgID, userID string) (*User, error)
	UpdateLastLogin(ctx context.Context, userID string, at time.Time) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetOrgBySlug(ctx context.Context, slug string) (*Organization, error) {
	var org Organization
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&org).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

func (r *repository) GetUserByEmail(ctx context.Context, orgID, email string) (*User, error) {
	var user User
	err := r.db.WithContext(ctx).
		Where("org_id = ?", orgID).
		Where("lower(email) = lower(?)", email).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *repository) GetUserByID(ctx context.Context, orgID, userID string) (*User, error) {
	var user User
	err := r.db.WithContext(ctx).
		Where("org_id = ?", orgID).
		First(&user, "id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *repository) UpdateLastLogin(ctx context.Context, userID string, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&User{}).
		Where("id = ?", userID).
		Updates(map[string]any{"last_login_at": at, "updated_at": at}).Error
}
