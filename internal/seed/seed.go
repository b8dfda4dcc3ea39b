// Package seed loads an initial company dataset from YAML through the
// services, so seeded records pass the same rules as API writes.
package seed

import (
	"context"
	"fmt"
	"os"

	"company-services-backend/internal/logger"
	"company-services-backend/internal/service"

	"gopkg.in/yaml.v3"
)

// DepartmentData is a department of the seed file
type DepartmentData struct {
	DeptName string `yaml:"dept_name"`
	DeptNo   string `yaml:"dept_no"`
	Location string `yaml:"location"`
}

// EmployeeData is an employee of the seed file. DeptNo and ManagerEmpNo refer
// to records listed earlier in the file.
type EmployeeData struct {
	EmpName      string  `yaml:"emp_name"`
	EmpNo        string  `yaml:"emp_no"`
	HireDate     string  `yaml:"hire_date"`
	Job          string  `yaml:"job"`
	Salary       float64 `yaml:"salary"`
	DeptNo       string  `yaml:"dept_no"`
	ManagerEmpNo string  `yaml:"manager_emp_no,omitempty"`
}

// TimecardData is a timecard of the seed file
type TimecardData struct {
	EmpNo     string `yaml:"emp_no"`
	StartTime string `yaml:"start_time"`
	EndTime   string `yaml:"end_time"`
}

// File is the layout of the seed YAML
type File struct {
	Departments []DepartmentData `yaml:"departments"`
	Employees   []EmployeeData   `yaml:"employees"`
	Timecards   []TimecardData   `yaml:"timecards"`
}

// Services are the write paths used by Apply
type Services struct {
	Departments service.DepartmentServiceInterface
	Employees   service.EmployeeServiceInterface
	Timecards   service.TimecardServiceInterface
}

// Summary counts the records Apply created
type Summary struct {
	Departments int
	Employees   int
	Timecards   int
}

// Load reads and parses the seed file at path
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	return &file, nil
}

// Apply creates every record of file for company in file order and stops at
// the first rejected record
func Apply(ctx context.Context, file *File, company string, svc Services) (*Summary, error) {
	summary := &Summary{}
	deptIDs := make(map[string]int, len(file.Departments))
	empIDs := make(map[string]int, len(file.Employees))

	for _, d := range file.Departments {
		dept, err := svc.Departments.CreateDepartment(ctx, &service.CreateDepartmentRequest{
			Company:  company,
			DeptName: d.DeptName,
			DeptNo:   d.DeptNo,
			Location: d.Location,
		})
		if err != nil {
			return summary, fmt.Errorf("department %s: %w", d.DeptNo, err)
		}
		deptIDs[d.DeptNo] = dept.ID
		summary.Departments++
	}

	for _, e := range file.Employees {
		deptID, ok := deptIDs[e.DeptNo]
		if !ok {
			return summary, fmt.Errorf("employee %s: unknown dept_no %q", e.EmpNo, e.DeptNo)
		}
		mngID := 0
		if e.ManagerEmpNo != "" {
			if mngID, ok = empIDs[e.ManagerEmpNo]; !ok {
				return summary, fmt.Errorf("employee %s: manager %q must be listed before the employee", e.EmpNo, e.ManagerEmpNo)
			}
		}

		salary := e.Salary
		emp, err := svc.Employees.CreateEmployee(ctx, &service.CreateEmployeeRequest{
			Company:  company,
			EmpName:  e.EmpName,
			EmpNo:    e.EmpNo,
			HireDate: e.HireDate,
			Job:      e.Job,
			Salary:   &salary,
			DeptID:   deptID,
			MngID:    mngID,
		})
		if err != nil {
			return summary, fmt.Errorf("employee %s: %w", e.EmpNo, err)
		}
		empIDs[e.EmpNo] = emp.ID
		summary.Employees++
	}

	for _, t := range file.Timecards {
		empID, ok := empIDs[t.EmpNo]
		if !ok {
			return summary, fmt.Errorf("timecard %s: unknown emp_no %q", t.StartTime, t.EmpNo)
		}
		if _, err := svc.Timecards.CreateTimecard(ctx, &service.CreateTimecardRequest{
			Company:   company,
			EmpID:     empID,
			StartTime: t.StartTime,
			EndTime:   t.EndTime,
		}); err != nil {
			return summary, fmt.Errorf("timecard %s %s: %w", t.EmpNo, t.StartTime, err)
		}
		summary.Timecards++
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"departments": summary.Departments,
		"employees":   summary.Employees,
		"timecards":   summary.Timecards,
	}).Info("seed data loaded")
	return summary, nil
}
