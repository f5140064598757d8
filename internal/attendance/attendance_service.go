package attendance

import (
	"context"
	"errors"
	"time"

	attendanceerrors "go-hrms/internal/attendance/errors"
	"go-hrms/internal/audit"
	"go-hrms/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const maxSessionRows = 500

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	ClockIn(ctx context.Context, orgID string, actor Actor, req ClockInRequest) (SessionResponse, error)
	ClockOut(ctx context.Context, orgID string, actor Actor, req ClockOutRequest) (SessionResponse, error)
	GetSessions(ctx context.Context, orgID string, q ListSessionsQuery) ([]SessionResponse, error)
}

// Actor is the authenticated caller. EmployeeID is the linked employee
// profile, empty when the account has none.
type Actor struct {
	UserID     string
	EmployeeID string
	IP         string
	UserAgent  string
}

type service struct {
	repo   Repository
	audit  audit.Writer
	logger *zap.Logger
	now    func() time.Time
}

func NewService(repo Repository, auditWriter audit.Writer, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{repo: repo, audit: auditWriter, logger: l, now: func() time.Time { return time.Now().UTC() }}
}

func (s *service) ClockIn(ctx context.Context, orgID string, actor Actor, req ClockInRequest) (SessionResponse, error) {
	if actor.EmployeeID == "" {
		return SessionResponse{}, attendanceerrors.ErrNoEmployeeProfile
	}

	now := s.now()
	today := now.Truncate(24 * time.Hour)

	existing, err := s.repo.FindByEmployeeAndDate(ctx, orgID, actor.EmployeeID, today)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return SessionResponse{}, err
	}

	if existing != nil {
		if existing.IsOpen() {
			return SessionResponse{}, attendanceerrors.ErrAlreadyClockedIn
		}
		// A closed session for today is reopened rather than duplicated.
		existing.ClockInAt = &now
		existing.ClockOutAt = nil
		existing.MinutesWorked = 0
		if req.WorkMode != "" {
			existing.WorkMode = req.WorkMode
		}
		if req.Notes != nil {
			existing.Notes = req.Notes
		}
		if err := s.repo.Update(ctx, existing); err != nil {
			return SessionResponse{}, err
		}
		s.writeAudit(ctx, orgID, actor, "attendance.clock_in", existing.ID.String(), map[string]any{"reopened": true})
		return mapToResponse(*existing), nil
	}

	source := req.Source
	if source == "" {
		source = "MANUAL"
	}

	row := &Session{
		ID:          uuid.New(),
		OrgID:       uuid.MustParse(orgID),
		EmployeeID:  uuid.MustParse(actor.EmployeeID),
		SessionDate: today,
		ClockInAt:   &now,
		WorkMode:    req.WorkMode,
		Source:      source,
		Notes:       req.Notes,
	}
	if err := s.repo.Create(ctx, row); err != nil {
		s.logger.Error("clock-in persist failed",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.Error(err),
		)
		return SessionResponse{}, err
	}

	s.writeAudit(ctx, orgID, actor, "attendance.clock_in", row.ID.String(), map[string]any{"reopened": false})
	return mapToResponse(*row), nil
}

func (s *service) ClockOut(ctx context.Context, orgID string, actor Actor, req ClockOutRequest) (SessionResponse, error) {
	if actor.EmployeeID == "" {
		return SessionResponse{}, attendanceerrors.ErrNoEmployeeProfile
	}

	now := s.now()
	today := now.Truncate(24 * time.Hour)

	row, err := s.repo.FindByEmployeeAndDate(ctx, orgID, actor.EmployeeID, today)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SessionResponse{}, attendanceerrors.ErrNoOpenSession
		}
		return SessionResponse{}, err
	}
	if !row.IsOpen() {
		return SessionResponse{}, attendanceerrors.ErrNoOpenSession
	}

	minutes := int(now.Sub(*row.ClockInAt) / time.Minute)
	if minutes < 0 {
		minutes = 0
	}

	row.ClockOutAt = &now
	row.MinutesWorked = minutes
	if req.Notes != nil {
		row.Notes = req.Notes
	}

	if err := s.repo.Update(ctx, row); err != nil {
		return SessionResponse{}, err
	}

	s.writeAudit(ctx, orgID, actor, "attendance.clock_out", row.ID.String(), map[string]any{"minutes_worked": minutes})
	return mapToResponse(*row), nil
}

func (s *service) GetSessions(ctx context.Context, orgID string, q ListSessionsQuery) ([]SessionResponse, error) {
	start, err := time.Parse("2006-01-02", q.StartDate)
	if err != nil {
		return nil, attendanceerrors.ErrInvalidDateFormat
	}
	end, err := time.Parse("2006-01-02", q.EndDate)
	if err != nil {
		return nil, attendanceerrors.ErrInvalidDateFormat
	}
	if end.Before(start) {
		return nil, attendanceerrors.ErrInvalidDateRange
	}
	if q.EmployeeID != "" {
		if _, err := uuid.Parse(q.EmployeeID); err != nil {
			return nil, attendanceerrors.ErrInvalidEmployeeID
		}
	}

	rows, err := s.repo.FindByOrgAndRange(ctx, orgID, start, end, q.EmployeeID, maxSessionRows)
	if err != nil {
		return nil, err
	}

	resp := make([]SessionResponse, len(rows))
	for i, row := range rows {
		resp[i] = mapToResponse(row)
	}
	return resp, nil
}

func (s *service) writeAudit(ctx context.Context, orgID string, actor Actor, action, entityID string, meta map[string]any) {
	s.audit.Write(ctx, audit.Entry{
		OrgID:           orgID,
		ActorUserID:     actor.UserID,
		ActorEmployeeID: actor.EmployeeID,
		Action:          action,
		EntityType:      "attendance_session",
		EntityID:        entityID,
		IP:              actor.IP,
		UserAgent:       actor.UserAgent,
		Metadata:        meta,
	})
}

func mapToResponse(s Session) SessionResponse {
	resp := SessionResponse{
		ID:            s.ID.String(),
		OrgID:         s.OrgID.String(),
		EmployeeID:    s.EmployeeID.String(),
		SessionDate:   s.SessionDate.Format("2006-01-02"),
		MinutesWorked: s.MinutesWorked,
		WorkMode:      s.WorkMode,
		Source:        s.Source,
		Notes:         s.Notes,
	}
	if s.ClockInAt != nil {
		v := s.ClockInAt.Format(time.RFC3339)
		resp.ClockInAt = &v
	}
	if s.ClockOutAt != nil {
		v := s.ClockOutAt.Format(time.RFC3339)
		resp.ClockOutAt = &v
	}
	return resp
}
