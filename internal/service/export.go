package service

import (
	"bytes"
	"context"
	"fmt"

	"company-services-backend/internal/database/models"
	apperrors "company-services-backend/internal/errors"
	"company-services-backend/internal/logger"
	"company-services-backend/internal/repository"

	"github.com/xuri/excelize/v2"
)

// EmployeesSheet is the name of the sheet written by ExportEmployees
const EmployeesSheet = "Employees"

var employeeColumns = []string{"emp_id", "emp_no", "emp_name", "job", "hire_date", "salary", "dept_no", "dept_name", "mng_id"}

// ExportService renders company data as spreadsheets
type ExportService struct {
	gateway repository.Gateway
	company string
}

// Ensure ExportService implements ExportServiceInterface
var _ ExportServiceInterface = (*ExportService)(nil)

// NewExportService creates a new export service for the tenant company
func NewExportService(gateway repository.Gateway, company string) *ExportService {
	return &ExportService{
		gateway: gateway,
		company: company,
	}
}

// ExportEmployees writes every employee of company, with its department
// resolved, to an xlsx workbook. It returns the workbook and a suggested file name.
func (s *ExportService) ExportEmployees(ctx context.Context, company string) (*bytes.Buffer, string, error) {
	var (
		emps  []models.Employee
		depts []models.Department
	)
	err := s.gateway.WithConnection(ctx, func(store repository.Store) error {
		if err := NewRules(store, s.company).ValidateCompany(company); err != nil {
			return err
		}

		var err error
		if emps, err = store.GetAllEmployees(company); err != nil {
			return apperrors.NewStorageError("list employees", err)
		}
		if depts, err = store.GetAllDepartments(company); err != nil {
			return apperrors.NewStorageError("list departments", err)
		}
		return nil
	})
	if err != nil {
		return nil, "", err
	}

	deptByID := make(map[int]models.Department, len(depts))
	for _, d := range depts {
		deptByID[d.ID] = d
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", EmployeesSheet); err != nil {
		return nil, "", fmt.Errorf("failed to name sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to create header style: %w", err)
	}

	for i, name := range employeeColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(EmployeesSheet, cell, name); err != nil {
			return nil, "", fmt.Errorf("failed to write header: %w", err)
		}
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(employeeColumns), 1)
	_ = f.SetCellStyle(EmployeesSheet, "A1", lastHeader, headerStyle)
	_ = f.SetPanes(EmployeesSheet, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"})

	for i, emp := range emps {
		dept := deptByID[emp.DeptID]
		var manager interface{}
		if emp.HasManager() {
			manager = emp.MngID
		}
		values := []interface{}{
			emp.ID,
			emp.EmpNo,
			emp.EmpName,
			emp.Job,
			emp.HireDate.Format(DateLayout),
			emp.Salary,
			dept.DeptNo,
			dept.DeptName,
			manager,
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(EmployeesSheet, cell, &values); err != nil {
			return nil, "", fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		logger.WithContext(ctx).WithError(err).Error("failed to write employees workbook")
		return nil, "", fmt.Errorf("failed to write workbook: %w", err)
	}

	logger.WithContext(ctx).WithField("employees", len(emps)).Info("employees exported")
	return buf, fmt.Sprintf("%s_employees.xlsx", company), nil
}
