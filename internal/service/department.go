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

// DepartmentService handles business logic for departments
type DepartmentService struct {
	gateway   repository.Gateway
	validator *validator.Validate
	company   string
}

// Ensure DepartmentService implements DepartmentServiceInterface
var _ DepartmentServiceInterface = (*DepartmentService)(nil)

// NewDepartmentService creates a new department service for the tenant company
func NewDepartmentService(gateway repository.Gateway, validator *validator.Validate, company string) *DepartmentService {
	return &DepartmentService{
		gateway:   gateway,
		validator: validator,
		company:   company,
	}
}

// CreateDepartmentRequest represents the request to create a department
type CreateDepartmentRequest struct {
	Company  string `json:"company" form:"company" validate:"required"`
	DeptName string `json:"dept_name" form:"dept_name" validate:"required,max=100"`
	DeptNo   string `json:"dept_no" form:"dept_no" validate:"required,recordno"`
	Location string `json:"location" form:"location" validate:"required,max=100"`
}

// UpdateDepartmentRequest carries the full replacement record of a department
type UpdateDepartmentRequest struct {
	Company  string `json:"company" form:"company" validate:"required"`
	DeptID   int    `json:"dept_id" form:"dept_id" validate:"required,gt=0,lte=2147483647"`
	DeptName string `json:"dept_name" form:"dept_name" validate:"required,max=100"`
	DeptNo   string `json:"dept_no" form:"dept_no" validate:"required,recordno"`
	Location string `json:"location" form:"location" validate:"required,max=100"`
}

// DepartmentResponse represents the response for department operations
type DepartmentResponse struct {
	ID       int    `json:"dept_id"`
	Company  string `json:"company"`
	DeptName string `json:"dept_name"`
	DeptNo   string `json:"dept_no"`
	Location string `json:"location"`
}

// CreateDepartment inserts a department whose dept_no is unused by every company
func (s *DepartmentService) CreateDepartment(ctx context.Context, req *CreateDepartmentRequest) (*DepartmentResponse, error) {
	var dept *models.Department
	err := s.gateway.WithConnection(ctx, func(store repository.Store) error {
		rules := NewRules(store, s.company)

		if err := validateRequest(s.validator, req); err != nil {
			return err
		}
		if err := rules.ValidateCompany(req.Company); err != nil {
			return err
		}
		if err := rules.ValidateDeptNoUnique(req.DeptNo, 0); err != nil {
			return err
		}

		dept = &models.Department{
			Company:  req.Company,
			DeptName: req.DeptName,
			DeptNo:   req.DeptNo,
			Location: req.Location,
		}
		return writeError("insert department", store.InsertDepartment(dept), nil, duplicateDeptNo(req.DeptNo))
	})
	logOutcome(ctx, "create department", map[string]interface{}{"dept_no": req.DeptNo}, err)
	if err != nil {
		return nil, err
	}

	return toDepartmentResponse(dept), nil
}

// GetDepartment retrieves a department of company by ID
func (s *DepartmentService) GetDepartment(ctx context.Context, company string, id int) (*DepartmentResponse, error) {
	var dept *models.Department
	err := s.gateway.WithConnection(ctx, func(store repository.Store) error {
		rules := NewRules(store, s.company)

		if err := rules.ValidateCompany(company); err != nil {
			return err
		}
		if err := rules.ValidateID("dept_id", id); err != nil {
			return err
		}

		var err error
		dept, err = fetchDepartment(store, company, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	return toDepartmentResponse(dept), nil
}

// GetDepartments retrieves every department of company
func (s *DepartmentService) GetDepartments(ctx context.Context, company string) ([]DepartmentResponse, error) {
	var depts []models.Department
	err := s.gateway.WithConnection(ctx, func(store repository.Store) error {
		if err := NewRules(store, s.company).ValidateCompany(company); err != nil {
			return err
		}

		var err error
		depts, err = store.GetAllDepartments(company)
		return apperrors.NewStorageError("list departments", err)
	})
	if err != nil {
		return nil, err
	}

	responses := make([]DepartmentResponse, len(depts))
	for i := range depts {
		responses[i] = *toDepartmentResponse(&depts[i])
	}
	return responses, nil
}

// UpdateDepartment replaces every field of an existing department
func (s *DepartmentService) UpdateDepartment(ctx context.Context, req *UpdateDepartmentRequest) (*DepartmentResponse, error) {
	var dept *models.Department
	err := s.gateway.WithConnection(ctx, func(store repository.Store) error {
		rules := NewRules(store, s.company)

		if err := validateRequest(s.validator, req); err != nil {
			return err
		}
		if err := rules.ValidateCompany(req.Company); err != nil {
			return err
		}
		if err := rules.ValidateID("dept_id", req.DeptID); err != nil {
			return err
		}

		var err error
		dept, err = fetchDepartment(store, req.Company, req.DeptID)
		if err != nil {
			return err
		}
		if err := rules.ValidateDeptNoUnique(req.DeptNo, dept.ID); err != nil {
			return err
		}

		dept.Company = req.Company
		dept.DeptName = req.DeptName
		dept.DeptNo = req.DeptNo
		dept.Location = req.Location
		return writeError("update department", store.UpdateDepartment(dept),
			apperrors.NewNotFoundError("department", req.DeptID), duplicateDeptNo(req.DeptNo))
	})
	logOutcome(ctx, "update department", map[string]interface{}{"dept_id": req.DeptID}, err)
	if err != nil {
		return nil, err
	}

	return toDepartmentResponse(dept), nil
}

// DeleteDepartment deletes a department of company. A department that still
// has employees is kept and reported as a conflict.
func (s *DepartmentService) DeleteDepartment(ctx context.Context, company string, id int) error {
	err := s.gateway.WithConnection(ctx, func(store repository.Store) error {
		rules := NewRules(store, s.company)

		if err := rules.ValidateCompany(company); err != nil {
			return err
		}
		if err := rules.ValidateID("dept_id", id); err != nil {
			return err
		}

		rows, err := store.DeleteDepartment(company, id)
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return apperrors.NewInUseError("department", id, "employees")
		}
		if err != nil {
			return apperrors.NewStorageError("delete department", err)
		}
		if rows == 0 {
			return apperrors.NewNotFoundError("department", id)
		}
		return nil
	})
	logOutcome(ctx, "delete department", map[string]interface{}{"dept_id": id}, err)
	return err
}

func fetchDepartment(store repository.Store, company string, id int) (*models.Department, error) {
	dept, err := store.GetDepartment(company, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("department", id)
		}
		return nil, apperrors.NewStorageError("get department", err)
	}
	return dept, nil
}

// toDepartmentResponse converts a Department model to API response
func toDepartmentResponse(dept *models.Department) *DepartmentResponse {
	return &DepartmentResponse{
		ID:       dept.ID,
		Company:  dept.Company,
		DeptName: dept.DeptName,
		DeptNo:   dept.DeptNo,
		Location: dept.Location,
	}
}
