package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"company-services-backend/internal/database/models"
	apperrors "company-services-backend/internal/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, *sql.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, sqlDB, mock
}

func TestGateway_WithConnection_PassesThroughCallbackError(t *testing.T) {
	db, sqlDB, mock := newMockDB(t)
	defer sqlDB.Close()

	want := apperrors.NewNotFoundError("department", 4)
	err := NewGateway(db).WithConnection(context.Background(), func(store Store) error {
		return want
	})

	assert.Same(t, want, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGateway_WithConnection_AcquireFailure(t *testing.T) {
	db, sqlDB, _ := newMockDB(t)
	require.NoError(t, sqlDB.Close())

	called := false
	err := NewGateway(db).WithConnection(context.Background(), func(store Store) error {
		called = true
		return nil
	})

	assert.False(t, called)
	assert.True(t, apperrors.IsStorage(err))
}

func TestGateway_WithConnection_ReleasesConnection(t *testing.T) {
	db, sqlDB, _ := newMockDB(t)
	defer sqlDB.Close()
	sqlDB.SetMaxOpenConns(1)

	gateway := NewGateway(db)
	for i := 0; i < 3; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		err := gateway.WithConnection(ctx, func(store Store) error { return nil })
		cancel()
		require.NoError(t, err, "acquisition %d", i)
	}
	assert.Equal(t, 0, sqlDB.Stats().InUse)
}

func TestStore_QueriesDoNotShareConditions(t *testing.T) {
	db, sqlDB, mock := newMockDB(t)
	defer sqlDB.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "departments" WHERE dept_no = $1 AND id <> $2`)).
		WithArgs("D10", 5).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`^` + regexp.QuoteMeta(`SELECT * FROM "departments" WHERE company = $1 ORDER BY id`) + `$`).
		WithArgs("acme").
		WillReturnRows(sqlmock.NewRows([]string{"id", "company", "dept_name", "dept_no", "location"}).
			AddRow(1, "acme", "Engineering", "D10", "Rochester"))

	err := NewGateway(db).WithConnection(context.Background(), func(store Store) error {
		exists, err := store.DepartmentNoExists("D10", 5)
		if err != nil {
			return err
		}
		assert.False(t, exists)

		depts, err := store.GetAllDepartments("acme")
		if err != nil {
			return err
		}
		assert.Len(t, depts, 1)
		return nil
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDepartmentRepository_Insert(t *testing.T) {
	db, sqlDB, mock := newMockDB(t)
	defer sqlDB.Close()

	mock.ExpectQuery(`INSERT INTO "departments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))

	dept := &models.Department{Company: "acme", DeptName: "Sales", DeptNo: "S1", Location: "Buffalo"}
	require.NoError(t, NewDepartmentRepository(db).InsertDepartment(dept))

	assert.Equal(t, 11, dept.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDepartmentRepository_GetMissing(t *testing.T) {
	db, sqlDB, mock := newMockDB(t)
	defer sqlDB.Close()

	mock.ExpectQuery(`SELECT \* FROM "departments" WHERE company = \$1 AND id = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	dept, err := NewDepartmentRepository(db).GetDepartment("acme", 99)

	assert.Nil(t, dept)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDepartmentRepository_DeleteReportsRows(t *testing.T) {
	db, sqlDB, mock := newMockDB(t)
	defer sqlDB.Close()

	mock.ExpectExec(`DELETE FROM "departments" WHERE company = \$1 AND id = \$2`).
		WithArgs("acme", 3).
		WillReturnResult(sqlmock.NewResult(0, 0))

	rows, err := NewDepartmentRepository(db).DeleteDepartment("acme", 3)

	require.NoError(t, err)
	assert.Equal(t, int64(0), rows)
}

func TestEmployeeRepository_NoExistsWithoutExclusion(t *testing.T) {
	db, sqlDB, mock := newMockDB(t)
	defer sqlDB.Close()

	mock.ExpectQuery(`^` + regexp.QuoteMeta(`SELECT count(*) FROM "employees" WHERE emp_no = $1`) + `$`).
		WithArgs("E1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := NewEmployeeRepository(db).EmployeeNoExists("E1", 0)

	require.NoError(t, err)
	assert.True(t, exists)
}

func TestTimecardRepository_Update(t *testing.T) {
	db, sqlDB, mock := newMockDB(t)
	defer sqlDB.Close()

	mock.ExpectExec(`UPDATE "timecards" SET .* WHERE company = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	tc := &models.Timecard{
		ID:        4,
		Company:   "acme",
		EmpID:     7,
		StartTime: time.Date(2024, 1, 3, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2024, 1, 3, 17, 0, 0, 0, time.UTC),
	}
	require.NoError(t, NewTimecardRepository(db).UpdateTimecard(tc))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTimecardRepository_UpdateMissingRowIsNotReinserted(t *testing.T) {
	db, sqlDB, mock := newMockDB(t)
	defer sqlDB.Close()

	// any INSERT would be an unexpected call
	mock.ExpectExec(`UPDATE "timecards" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	tc := &models.Timecard{
		ID:        4,
		Company:   "acme",
		EmpID:     7,
		StartTime: time.Date(2024, 1, 3, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2024, 1, 3, 17, 0, 0, 0, time.UTC),
	}
	err := NewTimecardRepository(db).UpdateTimecard(tc)

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_UpdateMissingRowIsNotReinserted(t *testing.T) {
	db, sqlDB, mock := newMockDB(t)
	defer sqlDB.Close()

	mock.ExpectExec(`UPDATE "employees" SET .* WHERE company = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	emp := &models.Employee{ID: 3, Company: "acme", EmpName: "Grace", EmpNo: "E1", Job: "Dev", DeptID: 1}
	err := NewEmployeeRepository(db).UpdateEmployee(emp)

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDepartmentRepository_UpdateScopedToCompany(t *testing.T) {
	db, sqlDB, mock := newMockDB(t)
	defer sqlDB.Close()

	mock.ExpectExec(`UPDATE "departments" SET .* WHERE company = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	dept := &models.Department{ID: 5, Company: "acme", DeptName: "Ops", DeptNo: "D10", Location: "Albany"}
	require.NoError(t, NewDepartmentRepository(db).UpdateDepartment(dept))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_GetScopedToCompany(t *testing.T) {
	db, sqlDB, mock := newMockDB(t)
	defer sqlDB.Close()

	// employee 7 belongs to another company, so the scoped query finds nothing
	mock.ExpectQuery(`SELECT \* FROM "employees" WHERE company = \$1 AND id = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "company"}))

	emp, err := NewEmployeeRepository(db).GetEmployee("acme", 7)

	assert.Nil(t, emp)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_DeleteScopedToCompany(t *testing.T) {
	db, sqlDB, mock := newMockDB(t)
	defer sqlDB.Close()

	mock.ExpectExec(`DELETE FROM "employees" WHERE company = \$1 AND id = \$2`).
		WithArgs("acme", 7).
		WillReturnResult(sqlmock.NewResult(0, 0))

	rows, err := NewEmployeeRepository(db).DeleteEmployee("acme", 7)

	require.NoError(t, err)
	assert.Equal(t, int64(0), rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_ClearManager(t *testing.T) {
	db, sqlDB, mock := newMockDB(t)
	defer sqlDB.Close()

	mock.ExpectExec(`UPDATE "employees" SET "mng_id"=\$1 WHERE company = \$2 AND mng_id = \$3`).
		WithArgs(0, "acme", 3).
		WillReturnResult(sqlmock.NewResult(0, 2))

	rows, err := NewEmployeeRepository(db).ClearManager("acme", 3)

	require.NoError(t, err)
	assert.Equal(t, int64(2), rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTimecardRepository_ScopedToCompany(t *testing.T) {
	db, sqlDB, mock := newMockDB(t)
	defer sqlDB.Close()

	mock.ExpectQuery(`SELECT \* FROM "timecards" WHERE company = \$1 AND emp_id = \$2 ORDER BY start_time`).
		WithArgs("acme", 7).
		WillReturnRows(sqlmock.NewRows([]string{"id", "company", "emp_id"}))
	mock.ExpectQuery(`SELECT \* FROM "timecards" WHERE company = \$1 AND id = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectExec(`DELETE FROM "timecards" WHERE company = \$1 AND id = \$2`).
		WithArgs("acme", 4).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := NewGateway(db).WithConnection(context.Background(), func(store Store) error {
		cards, err := store.GetAllTimecards("acme", 7)
		require.NoError(t, err)
		assert.Empty(t, cards)

		_, err = store.GetTimecard("acme", 4)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

		rows, err := store.DeleteTimecard("acme", 4)
		require.NoError(t, err)
		assert.Equal(t, int64(0), rows)
		return nil
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
