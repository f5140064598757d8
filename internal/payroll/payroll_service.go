package payroll

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	maxCycleRows = 200
	cycleListTTL = 5 * time.Minute

	cycleListKeyPrefix = "payroll:cycles:"
)

func cycleListKey(orgID string) string {
	return cycleListKeyPrefix + orgID
}

type CycleResponse struct {
	ID        string  `json:"id"`
	OrgID     string  `json:"org_id"`
	Name      string  `json:"name"`
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	Status    string  `json:"status"`
	PaidAt    *string `json:"paid_at"`
}

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	GetCycles(ctx context.Context, orgID string) ([]CycleResponse, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{repo: repo, rdb: rdb, sf: &singleflight.Group{}, logger: l}
}

// GetCycles serves from redis when possible. Cache failures are logged and
// fall through to the database, so the listing stays available when redis
// is down.
func (s *service) GetCycles(ctx context.Context, orgID string) ([]CycleResponse, error) {
	cacheKey := cycleListKey(orgID)

	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, cacheKey).Result()
		if err == nil {
			var resp []CycleResponse
			if unmarshalErr := json.Unmarshal([]byte(cached), &resp); unmarshalErr == nil {
				return resp, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn("payroll cycle cache read failed", zap.Error(err))
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		rows, err := s.repo.FindCyclesByOrg(ctx, orgID, maxCycleRows)
		if err != nil {
			return nil, err
		}

		resp := make([]CycleResponse, len(rows))
		for i, row := range rows {
			resp[i] = mapToResponse(row)
		}

		if s.rdb != nil {
			if payload, marshalErr := json.Marshal(resp); marshalErr == nil {
				if setErr := s.rdb.Set(ctx, cacheKey, payload, cycleListTTL).Err(); setErr != nil {
					s.logger.Warn("payroll cycle cache write failed", zap.Error(setErr))
				}
			}
		}
		return resp, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]CycleResponse), nil
}

func mapToResponse(c PayrollCycle) CycleResponse {
	resp := CycleResponse{
		ID:        c.ID.String(),
		OrgID:     c.OrgID.String(),
		Name:      c.Name,
		StartDate: c.StartDate.Format("2006-01-02"),
		EndDate:   c.EndDate.Format("2006-01-02"),
		Status:    c.Status,
	}
	if c.PaidAt != nil {
		v := c.PaidAt.UTC().Format(time.RFC3339)
		resp.PaidAt = &v
	}
	return resp
}
