package attendance

import (
	"context"
	"testing"
	"time"

	attendanceerrors "go-hrms/internal/attendance/errors"
	"go-hrms/internal/audit"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fakeRepo struct {
	createFn  func(ctx context.Context, s *Session) error
	updateFn  func(ctx context.Context, s *Session) error
	findOneFn func(ctx context.Context, orgID, employeeID string, date time.Time) (*Session, error)
	findAllFn func(ctx context.Context, orgID string, start, end time.Time, employeeID string, limit int) ([]Session, error)
}

func (f *fakeRepo) Create(ctx context.Context, s *Session) error { return f.createFn(ctx, s) }
func (f *fakeRepo) Update(ctx context.Context, s *Session) error { return f.updateFn(ctx, s) }
func (f *fakeRepo) FindByEmployeeAndDate(ctx context.Context, orgID, employeeID string, date time.Time) (*Session, error) {
	return f.findOneFn(ctx, orgID, employeeID, date)
}
func (f *fakeRepo) FindByOrgAndRange(ctx context.Context, orgID string, start, end time.Time, employeeID string, limit int) ([]Session, error) {
	return f.findAllFn(ctx, orgID, start, end, employeeID, limit)
}

type auditSpy struct {
	entries []audit.Entry
}

func (a *auditSpy) Write(ctx context.Context, entry audit.Entry) {
	a.entries = append(a.entries, entry)
}

func newTestService(repo Repository, spy *auditSpy, now time.Time) *service {
	return &service{
		repo:   repo,
		audit:  spy,
		logger: zap.NewNop(),
		now:    func() time.Time { return now },
	}
}

func TestService_ClockInCreatesSession(t *testing.T) {
	orgID := uuid.New().String()
	employeeID := uuid.New().String()
	now := time.Date(2026, 3, 2, 9, 4, 0, 0, time.UTC)

	var saved *Session
	repo := &fakeRepo{
		findOneFn: func(ctx context.Context, o, e string, date time.Time) (*Session, error) {
			assert.Equal(t, "2026-03-02", date.Format("2006-01-02"))
			return nil, gorm.ErrRecordNotFound
		},
		createFn: func(ctx context.Context, s *Session) error { saved = s; return nil },
	}
	spy := &auditSpy{}
	svc := newTestService(repo, spy, now)

	resp, err := svc.ClockIn(context.Background(), orgID, Actor{UserID: uuid.New().String(), EmployeeID: employeeID}, ClockInRequest{WorkMode: "REMOTE"})
	assert.NoError(t, err)
	assert.Equal(t, "2026-03-02", resp.SessionDate)
	assert.Equal(t, "REMOTE", resp.WorkMode)
	assert.Equal(t, "MANUAL", resp.Source)
	assert.Equal(t, 0, saved.MinutesWorked)
	assert.True(t, saved.IsOpen())

	assert.Len(t, spy.entries, 1)
	assert.Equal(t, "attendance.clock_in", spy.entries[0].Action)
}

func TestService_ClockInRejectsOpenSession(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	in := now.Add(-2 * time.Hour)

	repo := &fakeRepo{
		findOneFn: func(ctx context.Context, o, e string, date time.Time) (*Session, error) {
			return &Session{ID: uuid.New(), ClockInAt: &in}, nil
		},
	}
	svc := newTestService(repo, &auditSpy{}, now)

	_, err := svc.ClockIn(context.Background(), uuid.New().String(), Actor{EmployeeID: uuid.New().String()}, ClockInRequest{})
	assert.ErrorIs(t, err, attendanceerrors.ErrAlreadyClockedIn)
}

func TestService_ClockInReopensClosedSession(t *testing.T) {
	now := time.Date(2026, 3, 2, 14, 0, 0, 0, time.UTC)
	in := now.Add(-6 * time.Hour)
	out := now.Add(-2 * time.Hour)

	existing := &Session{
		ID:            uuid.New(),
		OrgID:         uuid.New(),
		EmployeeID:    uuid.New(),
		SessionDate:   now.Truncate(24 * time.Hour),
		ClockInAt:     &in,
		ClockOutAt:    &out,
		MinutesWorked: 240,
	}
	var updated *Session
	repo := &fakeRepo{
		findOneFn: func(ctx context.Context, o, e string, date time.Time) (*Session, error) {
			return existing, nil
		},
		updateFn: func(ctx context.Context, s *Session) error { updated = s; return nil },
	}
	spy := &auditSpy{}
	svc := newTestService(repo, spy, now)

	resp, err := svc.ClockIn(context.Background(), existing.OrgID.String(), Actor{EmployeeID: existing.EmployeeID.String()}, ClockInRequest{})
	assert.NoError(t, err)
	assert.Nil(t, updated.ClockOutAt)
	assert.Equal(t, 0, updated.MinutesWorked)
	assert.Equal(t, now, *updated.ClockInAt)
	assert.Nil(t, resp.ClockOutAt)
	assert.Equal(t, true, spy.entries[0].Metadata["reopened"])
}

func TestService_ClockOutComputesMinutes(t *testing.T) {
	now := time.Date(2026, 3, 2, 17, 31, 45, 0, time.UTC)
	in := time.Date(2026, 3, 2, 9, 1, 0, 0, time.UTC)

	row := &Session{
		ID:          uuid.New(),
		OrgID:       uuid.New(),
		EmployeeID:  uuid.New(),
		SessionDate: now.Truncate(24 * time.Hour),
		ClockInAt:   &in,
	}
	repo := &fakeRepo{
		findOneFn: func(ctx context.Context, o, e string, date time.Time) (*Session, error) { return row, nil },
		updateFn:  func(ctx context.Context, s *Session) error { return nil },
	}
	svc := newTestService(repo, &auditSpy{}, now)

	resp, err := svc.ClockOut(context.Background(), row.OrgID.String(), Actor{EmployeeID: row.EmployeeID.String()}, ClockOutRequest{})
	assert.NoError(t, err)
	// 8h30m45s elapsed floors to 510 whole minutes.
	assert.Equal(t, 510, resp.MinutesWorked)
	assert.NotNil(t, resp.ClockOutAt)
}

func TestService_ClockOutWithoutOpenSession(t *testing.T) {
	now := time.Date(2026, 3, 2, 17, 0, 0, 0, time.UTC)

	repo := &fakeRepo{
		findOneFn: func(ctx context.Context, o, e string, date time.Time) (*Session, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := newTestService(repo, &auditSpy{}, now)

	_, err := svc.ClockOut(context.Background(), uuid.New().String(), Actor{EmployeeID: uuid.New().String()}, ClockOutRequest{})
	assert.ErrorIs(t, err, attendanceerrors.ErrNoOpenSession)

	in := now.Add(-8 * time.Hour)
	out := now.Add(-1 * time.Hour)
	repo.findOneFn = func(ctx context.Context, o, e string, date time.Time) (*Session, error) {
		return &Session{ID: uuid.New(), ClockInAt: &in, ClockOutAt: &out}, nil
	}
	_, err = svc.ClockOut(context.Background(), uuid.New().String(), Actor{EmployeeID: uuid.New().String()}, ClockOutRequest{})
	assert.ErrorIs(t, err, attendanceerrors.ErrNoOpenSession)
}

func TestService_ClockRequiresEmployeeProfile(t *testing.T) {
	svc := newTestService(&fakeRepo{}, &auditSpy{}, time.Now().UTC())

	_, err := svc.ClockIn(context.Background(), uuid.New().String(), Actor{UserID: uuid.New().String()}, ClockInRequest{})
	assert.ErrorIs(t, err, attendanceerrors.ErrNoEmployeeProfile)

	_, err = svc.ClockOut(context.Background(), uuid.New().String(), Actor{UserID: uuid.New().String()}, ClockOutRequest{})
	assert.ErrorIs(t, err, attendanceerrors.ErrNoEmployeeProfile)
}

func TestService_GetSessionsValidatesRange(t *testing.T) {
	svc := newTestService(&fakeRepo{}, &auditSpy{}, time.Now().UTC())

	_, err := svc.GetSessions(context.Background(), uuid.New().String(), ListSessionsQuery{StartDate: "2026/03/01", EndDate: "2026-03-02"})
	assert.ErrorIs(t, err, attendanceerrors.ErrInvalidDateFormat)

	_, err = svc.GetSessions(context.Background(), uuid.New().String(), ListSessionsQuery{StartDate: "2026-03-05", EndDate: "2026-03-02"})
	assert.ErrorIs(t, err, attendanceerrors.ErrInvalidDateRange)

	_, err = svc.GetSessions(context.Background(), uuid.New().String(), ListSessionsQuery{StartDate: "2026-03-01", EndDate: "2026-03-02", EmployeeID: "nope"})
	assert.ErrorIs(t, err, attendanceerrors.ErrInvalidEmployeeID)
}

func TestService_GetSessionsCapsRows(t *testing.T) {
	var gotLimit int
	repo := &fakeRepo{
		findAllFn: func(ctx context.Context, orgID string, start, end time.Time, employeeID string, limit int) ([]Session, error) {
			gotLimit = limit
			return []Session{}, nil
		},
	}
	svc := newTestService(repo, &auditSpy{}, time.Now().UTC())

	_, err := svc.GetSessions(context.Background(), uuid.New().String(), ListSessionsQuery{StartDate: "2026-01-01", EndDate: "2026-03-01"})
	assert.NoError(t, err)
	assert.Equal(t, 500, gotLimit)
}
