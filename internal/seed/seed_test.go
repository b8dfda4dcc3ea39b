package seed_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	apperrors "company-services-backend/internal/errors"
	"company-services-backend/internal/mocks"
	"company-services-backend/internal/seed"
	"company-services-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const seedYAML = `
departments:
  - dept_name: Engineering
    dept_no: D1
    location: Rochester
employees:
  - emp_name: Grace
    emp_no: E1
    hire_date: "2024-01-03"
    job: Lead
    salary: 9000
    dept_no: D1
  - emp_name: Alan
    emp_no: E2
    hire_date: "2024-01-04"
    job: Developer
    salary: 7000
    dept_no: D1
    manager_emp_no: E1
timecards:
  - emp_no: E2
    start_time: "2024-01-08 09:00:00"
    end_time: "2024-01-08 17:00:00"
`

type SeedTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	departments *mocks.MockDepartmentServiceInterface
	employees   *mocks.MockEmployeeServiceInterface
	timecards   *mocks.MockTimecardServiceInterface
	file        *seed.File
}

func (suite *SeedTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.departments = mocks.NewMockDepartmentServiceInterface(suite.ctrl)
	suite.employees = mocks.NewMockEmployeeServiceInterface(suite.ctrl)
	suite.timecards = mocks.NewMockTimecardServiceInterface(suite.ctrl)

	path := filepath.Join(suite.T().TempDir(), "seed.yaml")
	suite.Require().NoError(os.WriteFile(path, []byte(seedYAML), 0o600))

	file, err := seed.Load(path)
	suite.Require().NoError(err)
	suite.file = file
}

func (suite *SeedTestSuite) services() seed.Services {
	return seed.Services{Departments: suite.departments, Employees: suite.employees, Timecards: suite.timecards}
}

func (suite *SeedTestSuite) TestApply_ResolvesReferences() {
	suite.departments.EXPECT().CreateDepartment(gomock.Any(), gomock.Any()).Return(&service.DepartmentResponse{ID: 10}, nil)
	suite.employees.EXPECT().CreateEmployee(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *service.CreateEmployeeRequest) (*service.EmployeeResponse, error) {
			assert.Equal(suite.T(), 10, req.DeptID)
			assert.Equal(suite.T(), 0, req.MngID)
			assert.Equal(suite.T(), "acme", req.Company)
			return &service.EmployeeResponse{ID: 20}, nil
		})
	suite.employees.EXPECT().CreateEmployee(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *service.CreateEmployeeRequest) (*service.EmployeeResponse, error) {
			assert.Equal(suite.T(), 20, req.MngID)
			assert.Equal(suite.T(), 7000.0, *req.Salary)
			return &service.EmployeeResponse{ID: 21}, nil
		})
	suite.timecards.EXPECT().CreateTimecard(gomock.Any(), &service.CreateTimecardRequest{
		Company: "acme", EmpID: 21, StartTime: "2024-01-08 09:00:00", EndTime: "2024-01-08 17:00:00",
	}).Return(&service.TimecardResponse{ID: 30}, nil)

	summary, err := seed.Apply(context.Background(), suite.file, "acme", suite.services())

	suite.Require().NoError(err)
	assert.Equal(suite.T(), seed.Summary{Departments: 1, Employees: 2, Timecards: 1}, *summary)
}

func (suite *SeedTestSuite) TestApply_StopsOnFirstRejection() {
	suite.departments.EXPECT().CreateDepartment(gomock.Any(), gomock.Any()).Return(&service.DepartmentResponse{ID: 10}, nil)
	suite.employees.EXPECT().CreateEmployee(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.NewValidationError("hire_date", "falls on a Sunday"))

	summary, err := seed.Apply(context.Background(), suite.file, "acme", suite.services())

	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.Contains(suite.T(), err.Error(), "employee E1")
	assert.Equal(suite.T(), 0, summary.Employees)
}

func (suite *SeedTestSuite) TestApply_ManagerListedLater() {
	suite.file.Employees[0].ManagerEmpNo = "E2"
	suite.departments.EXPECT().CreateDepartment(gomock.Any(), gomock.Any()).Return(&service.DepartmentResponse{ID: 10}, nil)

	_, err := seed.Apply(context.Background(), suite.file, "acme", suite.services())

	assert.ErrorContains(suite.T(), err, "must be listed before")
}

func TestSeedTestSuite(t *testing.T) {
	suite.Run(t, new(SeedTestSuite))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := seed.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
