package leave

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockGorm(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db, PreferSimpleProtocol: true}), &gorm.Config{})
	assert.NoError(t, err)
	return gdb, mock
}

func TestRepository_FindRequestsIsOrgScoped(t *testing.T) {
	gdb, mock := newMockGorm(t)
	orgID := uuid.New().String()

	mock.ExpectQuery(`SELECT \* FROM "leave_requests" WHERE org_id = \$1 ORDER BY requested_at DESC`).
		WithArgs(orgID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "org_id"}))

	repo := NewRepository(gdb, nil)
	_, err := repo.FindRequests(context.Background(), orgID, "", "", 500)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindRequestsAppliesFiltersInsideOrgScope(t *testing.T) {
	gdb, mock := newMockGorm(t)
	orgID := uuid.New().String()
	employeeID := uuid.New().String()

	mock.ExpectQuery(`SELECT \* FROM "leave_requests" WHERE org_id = \$1 AND status = \$2 AND employee_id = \$3`).
		WithArgs(orgID, StatusPending, employeeID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "org_id"}))

	repo := NewRepository(gdb, nil)
	_, err := repo.FindRequests(context.Background(), orgID, StatusPending, employeeID, 500)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindBalancesIsOrgScoped(t *testing.T) {
	gdb, mock := newMockGorm(t)
	orgID := uuid.New().String()
	employeeID := uuid.New().String()

	mock.ExpectQuery(`SELECT \* FROM "leave_balances" WHERE org_id = \$1 AND employee_id = \$2`).
		WithArgs(orgID, employeeID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "org_id"}))

	repo := NewRepository(gdb, nil)
	_, err := repo.FindBalancesByEmployee(context.Background(), orgID, employeeID)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
