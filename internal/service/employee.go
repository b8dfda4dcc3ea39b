package service

import (
	"context"
	"errors"

	"company-services-backend/internal/database/models"
	apperrors "company-services-backend/internal/errors"
	"company-services-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// EmployeeService handles business logic for employees
type EmployeeService struct {
	gateway   repository.Gateway
	validator *validator.Validate
	company   string
}

// Ensure EmployeeService implements EmployeeServiceInterface
var _ EmployeeServiceInterface = (*EmployeeService)(nil)

// NewEmployeeService creates a new employee service for the tenant company
func NewEmployeeService(gateway repository.Gateway, validator *validator.Validate, company string) *EmployeeService {
	return &EmployeeService{
		gateway:   gateway,
		validator: validator,
		company:   company,
	}
}

// CreateEmployeeRequest represents the request to create an employee.
// MngID 0 means the employee reports to nobody.
type CreateEmployeeRequest struct {
	Company  string   `json:"company" form:"company" validate:"required"`
	EmpName  string   `json:"emp_name" form:"emp_name" validate:"required,max=100"`
	EmpNo    string   `json:"emp_no" form:"emp_no" validate:"required,recordno"`
	HireDate string   `json:"hire_date" form:"hire_date" validate:"required"`
	Job      string   `json:"job" form:"job" validate:"required,max=100"`
	Salary   *float64 `json:"salary" form:"salary" validate:"required,gte=0"`
	DeptID   int      `json:"dept_id" form:"dept_id" validate:"required,gt=0,lte=2147483647"`
	MngID    int      `json:"mng_id" form:"mng_id" validate:"gte=0,lte=2147483647"`
}

// UpdateEmployeeRequest carries the full replacement record of an employee
type UpdateEmployeeRequest struct {
	Company  string   `json:"company" form:"company" validate:"required"`
	EmpID    int      `json:"emp_id" form:"emp_id" validate:"required,gt=0,lte=2147483647"`
	EmpName  string   `json:"emp_name" form:"emp_name" validate:"required,max=100"`
	EmpNo    string   `json:"emp_no" form:"emp_no" validate:"required,recordno"`
	HireDate string   `json:"hire_date" form:"hire_date" validate:"required"`
	Job      string   `json:"job" form:"job" validate:"required,max=100"`
	Salary   *float64 `json:"salary" form:"salary" validate:"required,gte=0"`
	DeptID   int      `json:"dept_id" form:"dept_id" validate:"required,gt=0,lte=2147483647"`
	MngID    int      `json:"mng_id" form:"mng_id" validate:"gte=0,lte=2147483647"`
}

// EmployeeResponse represents the response for employee operations
type EmployeeResponse struct {
	ID       int     `json:"emp_id"`
	EmpName  string  `json:"emp_name"`
	EmpNo    string  `json:"emp_no"`
	HireDate string  `json:"hire_date"`
	Job      string  `json:"job"`
	Salary   float64 `json:"salary"`
	DeptID   int     `json:"dept_id"`
	MngID    int     `json:"mng_id"`
}

// CreateEmployee inserts an employee after checking its department, manager,
// hire date and number
func (s *EmployeeService) CreateEmployee(ctx context.Context, req *CreateEmployeeRequest) (*EmployeeResponse, error) {
	var emp *models.Employee
	err := s.gateway.WithConnection(ctx, func(store repository.Store) error {
		rules := NewRules(store, s.company)

		if err := validateRequest(s.validator, req); err != nil {
			return err
		}
		if err := rules.ValidateCompany(req.Company); err != nil {
			return err
		}
		if err := rules.ValidateDepartmentExists(req.Company, req.DeptID); err != nil {
			return err
		}
		if err := rules.ValidateManagerExists(req.MngID); err != nil {
			return err
		}
		hired, err := rules.ValidateHireDate(req.HireDate)
		if err != nil {
			return err
		}
		if err := rules.ValidateEmployeeNumberUnique(req.EmpNo, 0); err != nil {
			return err
		}

		emp = &models.Employee{
			Company:  req.Company,
			EmpName:  req.EmpName,
			EmpNo:    req.EmpNo,
			HireDate: hired,
			Job:      req.Job,
			Salary:   *req.Salary,
			DeptID:   req.DeptID,
			MngID:    req.MngID,
		}
		return writeError("insert employee", store.InsertEmployee(emp), nil, duplicateEmpNo(req.EmpNo))
	})
	logOutcome(ctx, "create employee", map[string]interface{}{"emp_no": req.EmpNo}, err)
	if err != nil {
		return nil, err
	}

	return toEmployeeResponse(emp), nil
}

// GetEmployee retrieves an employee by ID
func (s *EmployeeService) GetEmployee(ctx context.Context, company string, id int) (*EmployeeResponse, error) {
	var emp *models.Employee
	err := s.gateway.WithConnection(ctx, func(store repository.Store) error {
		rules := NewRules(store, s.company)

		if err := rules.ValidateCompany(company); err != nil {
			return err
		}
		if err := rules.ValidateID("emp_id", id); err != nil {
			return err
		}

		var err error
		emp, err = fetchEmployee(store, company, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	return toEmployeeResponse(emp), nil
}

// GetEmployees retrieves every employee of company
func (s *EmployeeService) GetEmployees(ctx context.Context, company string) ([]EmployeeResponse, error) {
	var emps []models.Employee
	err := s.gateway.WithConnection(ctx, func(store repository.Store) error {
		if err := NewRules(store, s.company).ValidateCompany(company); err != nil {
			return err
		}

		var err error
		emps, err = store.GetAllEmployees(company)
		return apperrors.NewStorageError("list employees", err)
	})
	if err != nil {
		return nil, err
	}

	responses := make([]EmployeeResponse, len(emps))
	for i := range emps {
		responses[i] = *toEmployeeResponse(&emps[i])
	}
	return responses, nil
}

// UpdateEmployee replaces every field of an existing employee. The employee's
// own emp_no does not count as a duplicate.
func (s *EmployeeService) UpdateEmployee(ctx context.Context, req *UpdateEmployeeRequest) (*EmployeeResponse, error) {
	var emp *models.Employee
	err := s.gateway.WithConnection(ctx, func(store repository.Store) error {
		rules := NewRules(store, s.company)

		if err := validateRequest(s.validator, req); err != nil {
			return err
		}
		if err := rules.ValidateCompany(req.Company); err != nil {
			return err
		}
		if err := rules.ValidateID("emp_id", req.EmpID); err != nil {
			return err
		}

		var err error
		emp, err = fetchEmployee(store, req.Company, req.EmpID)
		if err != nil {
			return err
		}
		if err := rules.ValidateDepartmentExists(req.Company, req.DeptID); err != nil {
			return err
		}
		if err := rules.ValidateManagerExists(req.MngID); err != nil {
			return err
		}
		hired, err := rules.ValidateHireDate(req.HireDate)
		if err != nil {
			return err
		}
		if err := rules.ValidateEmployeeNumberUnique(req.EmpNo, emp.ID); err != nil {
			return err
		}

		emp.Company = req.Company
		emp.EmpName = req.EmpName
		emp.EmpNo = req.EmpNo
		emp.HireDate = hired
		emp.Job = req.Job
		emp.Salary = *req.Salary
		emp.DeptID = req.DeptID
		emp.MngID = req.MngID
		return writeError("update employee", store.UpdateEmployee(emp),
			apperrors.NewNotFoundError("employee", req.EmpID), duplicateEmpNo(req.EmpNo))
	})
	logOutcome(ctx, "update employee", map[string]interface{}{"emp_id": req.EmpID}, err)
	if err != nil {
		return nil, err
	}

	return toEmployeeResponse(emp), nil
}

// DeleteEmployee deletes an employee together with its timecards. Employees
// reporting to it are left without a manager.
func (s *EmployeeService) DeleteEmployee(ctx context.Context, company string, id int) error {
	err := s.gateway.WithConnection(ctx, func(store repository.Store) error {
		rules := NewRules(store, s.company)

		if err := rules.ValidateCompany(company); err != nil {
			return err
		}
		if err := rules.ValidateID("emp_id", id); err != nil {
			return err
		}

		if _, err := store.ClearManager(company, id); err != nil {
			return apperrors.NewStorageError("clear manager", err)
		}
		rows, err := store.DeleteEmployee(company, id)
		if err != nil {
			return apperrors.NewStorageError("delete employee", err)
		}
		if rows == 0 {
			return apperrors.NewNotFoundError("employee", id)
		}
		return nil
	})
	logOutcome(ctx, "delete employee", map[string]interface{}{"emp_id": id}, err)
	return err
}

func fetchEmployee(store repository.Store, company string, id int) (*models.Employee, error) {
	emp, err := store.GetEmployee(company, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("employee", id)
		}
		return nil, apperrors.NewStorageError("get employee", err)
	}
	return emp, nil
}

// toEmployeeResponse converts an Employee model to API response
func toEmployeeResponse(emp *models.Employee) *EmployeeResponse {
	return &EmployeeResponse{
		ID:       emp.ID,
		EmpName:  emp.EmpName,
		EmpNo:    emp.EmpNo,
		HireDate: emp.HireDate.Format(DateLayout),
		Job:      emp.Job,
		Salary:   emp.Salary,
		DeptID:   emp.DeptID,
		MngID:    emp.MngID,
	}
}
