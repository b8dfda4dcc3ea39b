package repository

import (
	"context"
	"time"

	"company-services-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// DepartmentRepositoryInterface defines the interface for department repository operations
type DepartmentRepositoryInterface interface {
	GetDepartment(company string, id int) (*models.Department, error)
	GetAllDepartments(company string) ([]models.Department, error)
	DepartmentNoExists(deptNo string, excludeID int) (bool, error)
	InsertDepartment(dept *models.Department) error
	UpdateDepartment(dept *models.Department) error
	DeleteDepartment(company string, id int) (int64, error)
}

// EmployeeRepositoryInterface defines the interface for employee repository operations
type EmployeeRepositoryInterface interface {
	GetEmployee(company string, id int) (*models.Employee, error)
	GetAllEmployees(company string) ([]models.Employee, error)
	EmployeeNoExists(empNo string, excludeID int) (bool, error)
	InsertEmployee(emp *models.Employee) error
	UpdateEmployee(emp *models.Employee) error
	ClearManager(company string, mngID int) (int64, error)
	DeleteEmployee(company string, id int) (int64, error)
}

// TimecardRepositoryInterface defines the interface for timecard repository operations
type TimecardRepositoryInterface interface {
	GetTimecard(company string, id int) (*models.Timecard, error)
	GetAllTimecards(company string, empID int) ([]models.Timecard, error)
	TimecardStartExists(empID int, start time.Time, excludeID int) (bool, error)
	InsertTimecard(tc *models.Timecard) error
	UpdateTimecard(tc *models.Timecard) error
	DeleteTimecard(company string, id int) (int64, error)
}

// Store is the storage gateway bound to one acquired connection
type Store interface {
	DepartmentRepositoryInterface
	EmployeeRepositoryInterface
	TimecardRepositoryInterface
}

// Gateway hands out a Store for the duration of fn and releases the underlying
// connection when fn returns, whatever the outcome. Errors returned by fn are
// passed through untouched; failing to acquire a connection yields a StorageError.
type Gateway interface {
	WithConnection(ctx context.Context, fn func(store Store) error) error
}
