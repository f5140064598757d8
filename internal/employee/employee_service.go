package employee

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-hrms/internal/audit"
	employeeerrors "go-hrms/internal/employee/errors"
	"go-hrms/internal/shared/contextutil"
	"go-hrms/internal/shared/counter"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const uniqueViolation = "23505"

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, orgID string, actor Actor, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, orgID string, limit, offset int) ([]EmployeeResponse, int64, error)
	GetReportees(ctx context.Context, orgID, managerID string) ([]EmployeeResponse, error)
}

// Actor identifies who performed a mutation, for the audit trail.
type Actor struct {
	UserID     string
	EmployeeID string
	IP         string
	UserAgent  string
}

type service struct {
	repo    Repository
	counter counter.Repository
	audit   audit.Writer
	logger  *zap.Logger
}

func NewService(repo Repository, counterRepo counter.Repository, auditWriter audit.Writer, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{repo: repo, counter: counterRepo, audit: auditWriter, logger: l}
}

func (s *service) Create(ctx context.Context, orgID string, actor Actor, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("org_id", orgID),
		zap.String("work_email", req.WorkEmail),
	)

	orgUUID, err := uuid.Parse(orgID)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	code := req.EmployeeCode
	if code == "" {
		next, err := s.counter.GetNextValue(ctx, orgID, "employee_code")
		if err != nil {
			s.logger.Error("generate employee code failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
		code = fmt.Sprintf("EMP-%04d", next)
	}

	e := &Employee{
		ID:            uuid.New(),
		OrgID:         orgUUID,
		EmployeeCode:  code,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		WorkEmail:     req.WorkEmail,
		PersonalEmail: req.PersonalEmail,
		Phone:         req.Phone,
		JobTitle:      req.JobTitle,
		Department:    req.Department,
		Location:      req.Location,
	}

	e.EmploymentType = req.EmploymentType
	if e.EmploymentType == "" {
		e.EmploymentType = "FULL_TIME"
	}
	e.Status = req.Status
	if e.Status == "" {
		e.Status = "ACTIVE"
	}

	if req.DateOfJoining != nil && *req.DateOfJoining != "" {
		joined, err := time.Parse("2006-01-02", *req.DateOfJoining)
		if err != nil {
			return EmployeeResponse{}, employeeerrors.ErrInvalidDateFormat
		}
		e.DateOfJoining = &joined
	}

	if req.ManagerEmployeeID != nil && *req.ManagerEmployeeID != "" {
		managerID, err := uuid.Parse(*req.ManagerEmployeeID)
		if err != nil {
			return EmployeeResponse{}, employeeerrors.ErrInvalidManagerID
		}
		if _, err := s.repo.FindByIDAndOrg(ctx, orgID, managerID.String()); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return EmployeeResponse{}, employeeerrors.ErrInvalidManagerID
			}
			return EmployeeResponse{}, err
		}
		e.ManagerEmployeeID = &managerID
	}

	if err := s.repo.Create(ctx, e); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return EmployeeResponse{}, employeeerrors.ErrDuplicateEmployee
		}
		s.logger.Error("create employee persist failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.audit.Write(ctx, audit.Entry{
		OrgID:           orgID,
		ActorUserID:     actor.UserID,
		ActorEmployeeID: actor.EmployeeID,
		Action:          "employee.create",
		EntityType:      "employee",
		EntityID:        e.ID.String(),
		IP:              actor.IP,
		UserAgent:       actor.UserAgent,
		Metadata:        map[string]any{"employee_code": e.EmployeeCode},
	})

	s.logger.Info("create employee success",
		zap.String("employee_id", e.ID.String()),
		zap.String("org_id", orgID),
	)
	return mapToResponse(*e), nil
}

func (s *service) GetAll(ctx context.Context, orgID string, limit, offset int) ([]EmployeeResponse, int64, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := s.repo.FindAllByOrg(ctx, orgID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.CountByOrg(ctx, orgID)
	if err != nil {
		return nil, 0, err
	}

	resp := make([]EmployeeResponse, len(rows))
	for i, row := range rows {
		resp[i] = mapToResponse(row)
	}
	return resp, total, nil
}

// GetReportees returns direct reports only; the org chart is not walked
// transitively.
func (s *service) GetReportees(ctx context.Context, orgID, managerID string) ([]EmployeeResponse, error) {
	if _, err := uuid.Parse(managerID); err != nil {
		return nil, employeeerrors.ErrInvalidEmployeeID
	}

	rows, err := s.repo.FindReportees(ctx, orgID, managerID)
	if err != nil {
		return nil, err
	}

	resp := make([]EmployeeResponse, len(rows))
	for i, row := range rows {
		resp[i] = mapToResponse(row)
	}
	return resp, nil
}

func mapToResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:             e.ID.String(),
		OrgID:          e.OrgID.String(),
		EmployeeCode:   e.EmployeeCode,
		FirstName:      e.FirstName,
		LastName:       e.LastName,
		WorkEmail:      e.WorkEmail,
		PersonalEmail:  e.PersonalEmail,
		Phone:          e.Phone,
		JobTitle:       e.JobTitle,
		Department:     e.Department,
		Location:       e.Location,
		EmploymentType: e.EmploymentType,
		Status:         e.Status,
		CreatedAt:      e.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:      e.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if e.UserID != nil {
		v := e.UserID.String()
		resp.UserID = &v
	}
	if e.DateOfJoining != nil {
		v := e.DateOfJoining.Format("2006-01-02")
		resp.DateOfJoining = &v
	}
	if e.ManagerEmployeeID != nil {
		v := e.ManagerEmployeeID.String()
		resp.ManagerEmployeeID = &v
	}
	return resp
}
