package attendance

import (
	"context"
	"time"

	"go-hrms/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, s *Session) error
	Update(ctx context.Context, s *Session) error
	FindByEmployeeAndDate(ctx context.Context, orgID, employeeID string, date time.Time) (*Session, error)
	FindByOrgAndRange(ctx context.Context, orgID string, start, end time.Time, employeeID string, limit int) ([]Session, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, s *Session) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) Update(ctx context.Context, s *Session) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *repository) FindByEmployeeAndDate(ctx context.Context, orgID, employeeID string, date time.Time) (*Session, error) {
	var s Session
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(orgID)).
		Where("employee_id = ?", employeeID).
		Where("session_date = ?", date.Format("2006-01-02")).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) FindByOrgAndRange(ctx context.Context, orgID string, start, end time.Time, employeeID string, limit int) ([]Session, error) {
	q := r.db.WithContext(ctx).
		Scopes(tenant.Scope(orgID)).
		Where("session_date BETWEEN ? AND ?", start.Format("2006-01-02"), end.Format("2006-01-02"))
	if employeeID != "" {
		q = q.Where("employee_id = ?", employeeID)
	}

	var rows []Session
	err := q.Order("session_date DESC, clock_in_at DESC").Limit(limit).Find(&rows).Error
	return rows, err
}
