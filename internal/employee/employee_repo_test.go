package employee

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

func TestRepository_FindAllByOrgIsOrgScoped(t *testing.T) {
	gdb, mock := newMockGorm(t)
	orgID := uuid.New().String()

	mock.ExpectQuery(`SELECT \* FROM "employees" WHERE org_id = \$1 ORDER BY created_at DESC`).
		WithArgs(orgID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "org_id"}))

	repo := NewRepository(gdb)
	_, err := repo.FindAllByOrg(context.Background(), orgID, 50, 0)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CountByOrgIsOrgScoped(t *testing.T) {
	gdb, mock := newMockGorm(t)
	orgID := uuid.New().String()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "employees" WHERE org_id = \$1`).
		WithArgs(orgID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	repo := NewRepository(gdb)
	_, err := repo.CountByOrg(context.Background(), orgID)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindReporteesIsOrgScoped(t *testing.T) {
	gdb, mock := newMockGorm(t)
	orgID := uuid.New().String()
	managerID := uuid.New().String()

	mock.ExpectQuery(`SELECT \* FROM "employees" WHERE org_id = \$1 AND manager_employee_id = \$2`).
		WithArgs(orgID, managerID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "org_id"}))

	repo := NewRepository(gdb)
	_, err := repo.FindReportees(context.Background(), orgID, managerID)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
