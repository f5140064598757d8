package holiday

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeRepo struct {
	findFn func(ctx context.Context, orgID string, start, end time.Time) ([]Holiday, error)
}

func (f *fakeRepo) FindByOrgAndRange(ctx context.Context, orgID string, start, end time.Time) ([]Holiday, error) {
	return f.findFn(ctx, orgID, start, end)
}

func TestService_GetAll(t *testing.T) {
	orgID := uuid.New()
	repo := &fakeRepo{
		findFn: func(ctx context.Context, o string, start, end time.Time) ([]Holiday, error) {
			assert.Equal(t, "2026-01-01", start.Format("2006-01-02"))
			assert.Equal(t, "2026-12-31", end.Format("2006-01-02"))
			return []Holiday{
				{ID: uuid.New(), OrgID: orgID, Name: "New Year", HolidayDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
			}, nil
		},
	}
	svc := NewService(repo)

	resp, err := svc.GetAll(context.Background(), orgID.String(), ListQuery{StartDate: "2026-01-01", EndDate: "2026-12-31"})
	assert.NoError(t, err)
	assert.Len(t, resp, 1)
	assert.Equal(t, "2026-01-01", resp[0].HolidayDate)
}

func TestService_GetAllValidatesRange(t *testing.T) {
	svc := NewService(&fakeRepo{})

	_, err := svc.GetAll(context.Background(), uuid.New().String(), ListQuery{StartDate: "2026-13-01", EndDate: "2026-12-31"})
	assert.ErrorIs(t, err, errInvalidDateFormat)

	_, err = svc.GetAll(context.Background(), uuid.New().String(), ListQuery{StartDate: "2026-06-01", EndDate: "2026-01-01"})
	assert.ErrorIs(t, err, errInvalidDateRange)
}
