package service

import (
	"bytes"
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// DepartmentServiceInterface defines the interface for department service
type DepartmentServiceInterface interface {
	CreateDepartment(ctx context.Context, req *CreateDepartmentRequest) (*DepartmentResponse, error)
	GetDepartment(ctx context.Context, company string, id int) (*DepartmentResponse, error)
	GetDepartments(ctx context.Context, company string) ([]DepartmentResponse, error)
	UpdateDepartment(ctx context.Context, req *UpdateDepartmentRequest) (*DepartmentResponse, error)
	DeleteDepartment(ctx context.Context, company string, id int) error
}

// EmployeeServiceInterface defines the interface for employee service
type EmployeeServiceInterface interface {
	CreateEmployee(ctx context.Context, req *CreateEmployeeRequest) (*EmployeeResponse, error)
	GetEmployee(ctx context.Context, company string, id int) (*EmployeeResponse, error)
	GetEmployees(ctx context.Context, company string) ([]EmployeeResponse, error)
	UpdateEmployee(ctx context.Context, req *UpdateEmployeeRequest) (*EmployeeResponse, error)
	DeleteEmployee(ctx context.Context, company string, id int) error
}

// TimecardServiceInterface defines the interface for timecard service
type TimecardServiceInterface interface {
	CreateTimecard(ctx context.Context, req *CreateTimecardRequest) (*TimecardResponse, error)
	GetTimecard(ctx context.Context, company string, id int) (*TimecardResponse, error)
	GetTimecards(ctx context.Context, company string, empID int) ([]TimecardResponse, error)
	UpdateTimecard(ctx context.Context, req *UpdateTimecardRequest) (*TimecardResponse, error)
	DeleteTimecard(ctx context.Context, company string, id int) error
}

// ExportServiceInterface defines the interface for export service
type ExportServiceInterface interface {
	ExportEmployees(ctx context.Context, company string) (*bytes.Buffer, string, error)
}
