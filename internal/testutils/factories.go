package testutils

import (
	"fmt"
	"sync/atomic"
	"time"

	"company-services-backend/internal/database/models"
)

var sequence atomic.Int64

func nextNo(prefix string) string {
	return fmt.Sprintf("%s%d", prefix, sequence.Add(1))
}

// DepartmentFactory provides methods to create test Department data
type DepartmentFactory struct{}

// NewDepartmentFactory creates a new DepartmentFactory
func NewDepartmentFactory() *DepartmentFactory {
	return &DepartmentFactory{}
}

// Create creates a test Department of TestCompany with a unique dept_no
func (f *DepartmentFactory) Create() *models.Department {
	return &models.Department{
		Company:  TestCompany,
		DeptName: "Engineering",
		DeptNo:   nextNo("D"),
		Location: "Rochester",
	}
}

// EmployeeFactory provides methods to create test Employee data
type EmployeeFactory struct{}

// NewEmployeeFactory creates a new EmployeeFactory
func NewEmployeeFactory() *EmployeeFactory {
	return &EmployeeFactory{}
}

// Create creates a test Employee in deptID, hired on a Wednesday
func (f *EmployeeFactory) Create(deptID int) *models.Employee {
	return &models.Employee{
		Company:  TestCompany,
		EmpName:  "John Doe",
		EmpNo:    nextNo("E"),
		HireDate: time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
		Job:      "Developer",
		Salary:   4200,
		DeptID:   deptID,
		MngID:    models.NoManager,
	}
}

// TimecardFactory provides methods to create test Timecard data
type TimecardFactory struct{}

// NewTimecardFactory creates a new TimecardFactory
func NewTimecardFactory() *TimecardFactory {
	return &TimecardFactory{}
}

// Create creates an eight hour Timecard for empID starting at start
func (f *TimecardFactory) Create(empID int, start time.Time) *models.Timecard {
	return &models.Timecard{
		Company:   TestCompany,
		EmpID:     empID,
		StartTime: start,
		EndTime:   start.Add(8 * time.Hour),
	}
}
