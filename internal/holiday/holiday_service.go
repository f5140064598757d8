package holiday

import (
	"context"
	"net/http"
	"time"

	"go-hrms/internal/shared/apperror"
)

var (
	errInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	errInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"start_date must be before or equal end_date",
		http.StatusBadRequest,
	)
)

type ListQuery struct {
	StartDate string `form:"start_date" binding:"required"`
	EndDate   string `form:"end_date" binding:"required"`
}

type HolidayResponse struct {
	ID          string `json:"id"`
	OrgID       string `json:"org_id"`
	Name        string `json:"name"`
	HolidayDate string `json:"holiday_date"`
	IsOptional  bool   `json:"is_optional"`
}

//go:generate mockgen -source=holiday_service.go -destination=mock/holiday_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, orgID string, q ListQuery) ([]HolidayResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetAll(ctx context.Context, orgID string, q ListQuery) ([]HolidayResponse, error) {
	start, err := time.Parse("2006-01-02", q.StartDate)
	if err != nil {
		return nil, errInvalidDateFormat
	}
	end, err := time.Parse("2006-01-02", q.EndDate)
	if err != nil {
		return nil, errInvalidDateFormat
	}
	if end.Before(start) {
		return nil, errInvalidDateRange
	}

	rows, err := s.repo.FindByOrgAndRange(ctx, orgID, start, end)
	if err != nil {
		return nil, err
	}

	resp := make([]HolidayResponse, len(rows))
	for i, row := range rows {
		resp[i] = HolidayResponse{
			ID:          row.ID.String(),
			OrgID:       row.OrgID.String(),
			Name:        row.Name,
			HolidayDate: row.HolidayDate.Format("2006-01-02"),
			IsOptional:  row.IsOptional,
		}
	}
	return resp, nil
}
