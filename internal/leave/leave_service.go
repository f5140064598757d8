package leave

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go-hrms/internal/audit"
	leaveerrors "go-hrms/internal/leave/errors"
	"go-hrms/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const maxRequestRows = 500

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Apply(ctx context.Context, orgID string, actor Actor, req ApplyRequest) (LeaveRequestResponse, error)
	GetRequests(ctx context.Context, orgID string, q ListRequestsQuery) ([]LeaveRequestResponse, error)
	Decide(ctx context.Context, orgID string, actor Actor, requestID string, req DecideRequest) (LeaveRequestResponse, error)
	GetMyBalances(ctx context.Context, orgID string, actor Actor) ([]BalanceResponse, error)
}

type Actor struct {
	UserID     string
	EmployeeID string
	IP         string
	UserAgent  string
}

type service struct {
	db     *sql.DB
	repo   Repository
	audit  audit.Writer
	logger *zap.Logger
	now    func() time.Time
}

func NewService(db *sql.DB, repo Repository, auditWriter audit.Writer, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{db: db, repo: repo, audit: auditWriter, logger: l, now: func() time.Time { return time.Now().UTC() }}
}

func (s *service) Apply(ctx context.Context, orgID string, actor Actor, req ApplyRequest) (LeaveRequestResponse, error) {
	if actor.EmployeeID == "" {
		return LeaveRequestResponse{}, leaveerrors.ErrNoEmployeeProfile
	}

	// The date range is validated before any storage access.
	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return LeaveRequestResponse{}, leaveerrors.ErrInvalidDateFormat
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return LeaveRequestResponse{}, leaveerrors.ErrInvalidDateFormat
	}
	if end.Before(start) {
		return LeaveRequestResponse{}, leaveerrors.ErrInvalidDateRange
	}

	typeID, err := uuid.Parse(req.LeaveTypeID)
	if err != nil {
		return LeaveRequestResponse{}, leaveerrors.ErrUnknownLeaveType
	}

	leaveType, err := s.repo.FindTypeByIDAndOrg(ctx, orgID, typeID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveRequestResponse{}, leaveerrors.ErrUnknownLeaveType
		}
		return LeaveRequestResponse{}, err
	}

	now := s.now()
	row := &LeaveRequest{
		ID:          uuid.New(),
		OrgID:       uuid.MustParse(orgID),
		EmployeeID:  uuid.MustParse(actor.EmployeeID),
		LeaveTypeID: leaveType.ID,
		StartDate:   start,
		EndDate:     end,
		Reason:      req.Reason,
		Status:      StatusPending,
		RequestedAt: now,
	}
	if !leaveType.RequiresApproval {
		row.Status = StatusApproved
		row.DecidedAt = &now
	}

	if err := s.repo.CreateRequest(ctx, row); err != nil {
		s.logger.Error("create leave request failed",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.Error(err),
		)
		return LeaveRequestResponse{}, err
	}

	s.audit.Write(ctx, audit.Entry{
		OrgID:           orgID,
		ActorUserID:     actor.UserID,
		ActorEmployeeID: actor.EmployeeID,
		Action:          "leave.apply",
		EntityType:      "leave_request",
		EntityID:        row.ID.String(),
		IP:              actor.IP,
		UserAgent:       actor.UserAgent,
		Metadata:        map[string]any{"status": row.Status, "leave_type_id": leaveType.ID.String()},
	})
	return mapToResponse(*row), nil
}

func (s *service) GetRequests(ctx context.Context, orgID string, q ListRequestsQuery) ([]LeaveRequestResponse, error) {
	if q.Status != "" && q.Status != StatusPending && q.Status != StatusApproved && q.Status != StatusRejected {
		return nil, leaveerrors.ErrInvalidStatus
	}
	if q.EmployeeID != "" {
		if _, err := uuid.Parse(q.EmployeeID); err != nil {
			return nil, leaveerrors.ErrInvalidEmployeeID
		}
	}

	rows, err := s.repo.FindRequests(ctx, orgID, q.Status, q.EmployeeID, maxRequestRows)
	if err != nil {
		return nil, err
	}

	resp := make([]LeaveRequestResponse, len(rows))
	for i, row := range rows {
		resp[i] = mapToResponse(row)
	}
	return resp, nil
}

func (s *service) Decide(ctx context.Context, orgID string, actor Actor, requestID string, req DecideRequest) (LeaveRequestResponse, error) {
	if req.Decision != StatusApproved && req.Decision != StatusRejected {
		return LeaveRequestResponse{}, leaveerrors.ErrInvalidDecision
	}
	if actor.EmployeeID == "" {
		return LeaveRequestResponse{}, leaveerrors.ErrNoEmployeeProfile
	}
	if _, err := uuid.Parse(requestID); err != nil {
		return LeaveRequestResponse{}, leaveerrors.ErrInvalidRequestID
	}

	row, err := s.repo.FindRequestByIDAndOrg(ctx, orgID, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveRequestResponse{}, leaveerrors.ErrRequestNotFound
		}
		return LeaveRequestResponse{}, err
	}
	if row.Status != StatusPending {
		return LeaveRequestResponse{}, leaveerrors.ErrRequestNotPending
	}

	now := s.now()
	approval := &LeaveApproval{
		ID:                 uuid.New(),
		OrgID:              row.OrgID,
		LeaveRequestID:     row.ID,
		ApproverEmployeeID: uuid.MustParse(actor.EmployeeID),
		Decision:           req.Decision,
		Comment:            req.Comment,
		DecidedAt:          now,
	}

	// Status update and approval record commit atomically.
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return LeaveRequestResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.UpdateRequestDecision(ctx, row.ID.String(), req.Decision, now); err != nil {
		return LeaveRequestResponse{}, err
	}
	if err := qtx.CreateApproval(ctx, approval); err != nil {
		return LeaveRequestResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return LeaveRequestResponse{}, err
	}

	row.Status = req.Decision
	row.DecidedAt = &now

	s.audit.Write(ctx, audit.Entry{
		OrgID:           orgID,
		ActorUserID:     actor.UserID,
		ActorEmployeeID: actor.EmployeeID,
		Action:          "leave.decide",
		EntityType:      "leave_request",
		EntityID:        row.ID.String(),
		IP:              actor.IP,
		UserAgent:       actor.UserAgent,
		Metadata:        map[string]any{"decision": req.Decision},
	})
	return mapToResponse(*row), nil
}

func (s *service) GetMyBalances(ctx context.Context, orgID string, actor Actor) ([]BalanceResponse, error) {
	if actor.EmployeeID == "" {
		return nil, leaveerrors.ErrNoEmployeeProfile
	}

	rows, err := s.repo.FindBalancesByEmployee(ctx, orgID, actor.EmployeeID)
	if err != nil {
		return nil, err
	}

	resp := make([]BalanceResponse, len(rows))
	for i, row := range rows {
		resp[i] = BalanceResponse{
			LeaveTypeID: row.LeaveTypeID.String(),
			Balance:     row.Balance,
		}
	}
	return resp, nil
}

func mapToResponse(r LeaveRequest) LeaveRequestResponse {
	resp := LeaveRequestResponse{
		ID:          r.ID.String(),
		OrgID:       r.OrgID.String(),
		EmployeeID:  r.EmployeeID.String(),
		LeaveTypeID: r.LeaveTypeID.String(),
		StartDate:   r.StartDate.Format("2006-01-02"),
		EndDate:     r.EndDate.Format("2006-01-02"),
		Reason:      r.Reason,
		Status:      r.Status,
		RequestedAt: r.RequestedAt.UTC().Format(time.RFC3339),
	}
	if r.DecidedAt != nil {
		v := r.DecidedAt.UTC().Format(time.RFC3339)
		resp.DecidedAt = &v
	}
	return resp
}
