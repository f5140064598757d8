package leave

import (
	"context"
	"database/sql"
	"time"

	"go-hrms/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindTypeByIDAndOrg(ctx context.Context, orgID, id string) (*LeaveType, error)
	CreateRequest(ctx context.Context, req *LeaveRequest) error
	FindRequests(ctx context.Context, orgID, status, employeeID string, limit int) ([]LeaveRequest, error)
	FindRequestByIDAndOrg(ctx context.Context, orgID, id string) (*LeaveRequest, error)
	UpdateRequestDecision(ctx context.Context, requestID, status string, decidedAt time.Time) error
	CreateApproval(ctx context.Context, a *LeaveApproval) error
	FindBalancesByEmployee(ctx context.Context, orgID, employeeID string) ([]LeaveBalance, error)
}

type repository struct {
	db    *gorm.DB
	sqlDB *sql.DB
	tx    *sql.Tx
}

func NewRepository(db *gorm.DB, sqlDB *sql.DB) Repository {
	return &repository{db: db, sqlDB: sqlDB}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, sqlDB: r.sqlDB, tx: tx}
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (r *repository) execer() execer {
	if r.tx != nil {
		return r.tx
	}
	return r.sqlDB
}

func (r *repository) FindTypeByIDAndOrg(ctx context.Context, orgID, id string) (*LeaveType, error) {
	var t LeaveType
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(orgID)).
		Where("id = ?", id).
		First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) CreateRequest(ctx context.Context, req *LeaveRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *repository) FindRequests(ctx context.Context, orgID, status, employeeID string, limit int) ([]LeaveRequest, error) {
	q := r.db.WithContext(ctx).Scopes(tenant.Scope(orgID))
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if employeeID != "" {
		q = q.Where("employee_id = ?", employeeID)
	}

	var rows []LeaveRequest
	err := q.Order("requested_at DESC").Limit(limit).Find(&rows).Error
	return rows, err
}

func (r *repository) FindRequestByIDAndOrg(ctx context.Context, orgID, id string) (*LeaveRequest, error) {
	var req LeaveRequest
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(orgID)).
		Where("id = ?", id).
		First(&req).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// UpdateRequestDecision and CreateApproval run through execer so the
// decision flow can commit both writes in one transaction.
func (r *repository) UpdateRequestDecision(ctx context.Context, requestID, status string, decidedAt time.Time) error {
	query := `
        UPDATE leave_requests
        SET status = $1, decided_at = $2
        WHERE id = $3
    `
	_, err := r.execer().ExecContext(ctx, query, status, decidedAt, requestID)
	return err
}

func (r *repository) CreateApproval(ctx context.Context, a *LeaveApproval) error {
	query := `
        INSERT INTO leave_approvals (
            id, org_id, leave_request_id, approver_employee_id, decision, comment, decided_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7)
    `
	_, err := r.execer().ExecContext(
		ctx, query,
		a.ID, a.OrgID, a.LeaveRequestID, a.ApproverEmployeeID, a.Decision, a.Comment, a.DecidedAt,
	)
	return err
}

func (r *repository) FindBalancesByEmployee(ctx context.Context, orgID, employeeID string) ([]LeaveBalance, error) {
	var rows []LeaveBalance
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(orgID)).
		Where("employee_id = ?", employeeID).
		Find(&rows).Error
	return rows, err
}
