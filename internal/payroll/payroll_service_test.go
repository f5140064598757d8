package payroll

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeRepo struct {
	findFn func(ctx context.Context, orgID string, limit int) ([]PayrollCycle, error)
}

func (f *fakeRepo) FindCyclesByOrg(ctx context.Context, orgID string, limit int) ([]PayrollCycle, error) {
	return f.findFn(ctx, orgID, limit)
}

func TestService_GetCyclesFromDatabase(t *testing.T) {
	orgID := uuid.New()
	rdb, mock := redismock.NewClientMock()

	cycle := PayrollCycle{
		ID:        uuid.New(),
		OrgID:     orgID,
		Name:      "March 2026",
		StartDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		Status:    "paid",
	}
	repo := &fakeRepo{
		findFn: func(ctx context.Context, o string, limit int) ([]PayrollCycle, error) {
			assert.Equal(t, 200, limit)
			return []PayrollCycle{cycle}, nil
		},
	}

	key := cycleListKey(orgID.String())
	mock.ExpectGet(key).RedisNil()
	mock.Regexp().ExpectSet(key, `.*`, cycleListTTL).SetVal("OK")

	svc := NewService(repo, rdb)
	resp, err := svc.GetCycles(context.Background(), orgID.String())
	assert.NoError(t, err)
	assert.Len(t, resp, 1)
	assert.Equal(t, "March 2026", resp[0].Name)
	assert.Equal(t, "2026-03-01", resp[0].StartDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_GetCyclesServedFromCache(t *testing.T) {
	orgID := uuid.New()
	rdb, mock := redismock.NewClientMock()

	cached := []CycleResponse{{ID: uuid.New().String(), OrgID: orgID.String(), Name: "Feb 2026"}}
	payload, _ := json.Marshal(cached)
	mock.ExpectGet(cycleListKey(orgID.String())).SetVal(string(payload))

	repo := &fakeRepo{
		findFn: func(ctx context.Context, o string, limit int) ([]PayrollCycle, error) {
			t.Fatal("database must not be queried on a cache hit")
			return nil, nil
		},
	}

	svc := NewService(repo, rdb)
	resp, err := svc.GetCycles(context.Background(), orgID.String())
	assert.NoError(t, err)
	assert.Equal(t, cached, resp)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_GetCyclesCacheFailureFallsThrough(t *testing.T) {
	orgID := uuid.New()
	rdb, mock := redismock.NewClientMock()

	key := cycleListKey(orgID.String())
	mock.ExpectGet(key).SetErr(assert.AnError)
	mock.Regexp().ExpectSet(key, `.*`, cycleListTTL).SetErr(assert.AnError)

	repo := &fakeRepo{
		findFn: func(ctx context.Context, o string, limit int) ([]PayrollCycle, error) {
			return []PayrollCycle{}, nil
		},
	}

	svc := NewService(repo, rdb)
	resp, err := svc.GetCycles(context.Background(), orgID.String())
	assert.NoError(t, err)
	assert.Empty(t, resp)
}
