package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"company-services-backend/internal/database/models"
	apperrors "company-services-backend/internal/errors"
	"company-services-backend/internal/mocks"
	"company-services-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type EmployeeServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockStore       *mocks.MockStore
	gateway         *countingGateway
	employeeService *service.EmployeeService
	ctx             context.Context
}

func (suite *EmployeeServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockStore = mocks.NewMockStore(suite.ctrl)
	suite.gateway = &countingGateway{store: suite.mockStore}
	suite.employeeService = service.NewEmployeeService(suite.gateway, service.NewValidator(), testCompany)
	suite.ctx = context.Background()
}

func (suite *EmployeeServiceTestSuite) TearDownTest() {
	assert.Equal(suite.T(), suite.gateway.acquired, suite.gateway.released)
	suite.ctrl.Finish()
}

func (suite *EmployeeServiceTestSuite) createRequest() *service.CreateEmployeeRequest {
	return &service.CreateEmployeeRequest{
		Company:  testCompany,
		EmpName:  "Grace Hopper",
		EmpNo:    "E100",
		HireDate: "2024-01-03",
		Job:      "Programmer",
		Salary:   floatPtr(5000),
		DeptID:   1,
		MngID:    models.NoManager,
	}
}

func (suite *EmployeeServiceTestSuite) expectDepartment(id int) {
	suite.mockStore.EXPECT().GetDepartment(testCompany, id).Return(&models.Department{ID: id, Company: testCompany}, nil)
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_Success() {
	suite.expectDepartment(1)
	suite.mockStore.EXPECT().EmployeeNoExists("E100", 0).Return(false, nil)
	suite.mockStore.EXPECT().InsertEmployee(gomock.Any()).DoAndReturn(func(emp *models.Employee) error {
		assert.Equal(suite.T(), time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), emp.HireDate)
		assert.Equal(suite.T(), 5000.0, emp.Salary)
		emp.ID = 12
		return nil
	})

	resp, err := suite.employeeService.CreateEmployee(suite.ctx, suite.createRequest())

	suite.Require().NoError(err)
	assert.Equal(suite.T(), 12, resp.ID)
	assert.Equal(suite.T(), "2024-01-03", resp.HireDate)
	assert.Equal(suite.T(), models.NoManager, resp.MngID)
	assert.Equal(suite.T(), 1, suite.gateway.acquired)
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_HireDateWeekdays() {
	// 2024-01-01 is a Monday
	days := map[string]bool{
		"2024-01-01": true,
		"2024-01-02": true,
		"2024-01-03": true,
		"2024-01-04": true,
		"2024-01-05": true,
		"2024-01-06": false,
		"2024-01-07": false,
	}

	for date, accepted := range days {
		suite.expectDepartment(1)
		if accepted {
			suite.mockStore.EXPECT().EmployeeNoExists("E100", 0).Return(false, nil)
			suite.mockStore.EXPECT().InsertEmployee(gomock.Any()).Return(nil)
		}

		req := suite.createRequest()
		req.HireDate = date
		_, err := suite.employeeService.CreateEmployee(suite.ctx, req)

		if accepted {
			assert.NoError(suite.T(), err, date)
		} else {
			assert.True(suite.T(), apperrors.IsValidation(err), date)
			assert.Contains(suite.T(), err.Error(), "hire_date", date)
		}
	}
	assert.Equal(suite.T(), len(days), suite.gateway.acquired)
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_SundayNeverInserts() {
	suite.expectDepartment(1)
	// no EmployeeNoExists or InsertEmployee expectation: any call fails the test

	req := suite.createRequest()
	req.HireDate = "2024-01-07"
	resp, err := suite.employeeService.CreateEmployee(suite.ctx, req)

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_MalformedHireDate() {
	suite.expectDepartment(1)

	req := suite.createRequest()
	req.HireDate = "03/01/2024"
	_, err := suite.employeeService.CreateEmployee(suite.ctx, req)

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_DepartmentNotFound() {
	suite.mockStore.EXPECT().GetDepartment(testCompany, 1).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.employeeService.CreateEmployee(suite.ctx, suite.createRequest())

	assert.True(suite.T(), errors.Is(err, apperrors.ErrDepartmentNotFound))
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_ManagerNotFound() {
	suite.expectDepartment(1)
	suite.mockStore.EXPECT().GetEmployee(testCompany, 40).Return(nil, gorm.ErrRecordNotFound)

	req := suite.createRequest()
	req.MngID = 40
	_, err := suite.employeeService.CreateEmployee(suite.ctx, req)

	assert.True(suite.T(), errors.Is(err, apperrors.ErrManagerNotFound))
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_WithManager() {
	suite.expectDepartment(1)
	suite.mockStore.EXPECT().GetEmployee(testCompany, 40).Return(&models.Employee{ID: 40}, nil)
	suite.mockStore.EXPECT().EmployeeNoExists("E100", 0).Return(false, nil)
	suite.mockStore.EXPECT().InsertEmployee(gomock.Any()).Return(nil)

	req := suite.createRequest()
	req.MngID = 40
	resp, err := suite.employeeService.CreateEmployee(suite.ctx, req)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), 40, resp.MngID)
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_DuplicateEmpNo() {
	suite.expectDepartment(1)
	suite.mockStore.EXPECT().EmployeeNoExists("E100", 0).Return(true, nil)

	_, err := suite.employeeService.CreateEmployee(suite.ctx, suite.createRequest())

	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.Contains(suite.T(), err.Error(), "emp_no")
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_NegativeSalary() {
	req := suite.createRequest()
	req.Salary = floatPtr(-1)

	_, err := suite.employeeService.CreateEmployee(suite.ctx, req)

	var validationErr *apperrors.ValidationError
	suite.Require().True(errors.As(err, &validationErr))
	assert.Equal(suite.T(), "salary", validationErr.Field)
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_MissingSalary() {
	req := suite.createRequest()
	req.Salary = nil

	_, err := suite.employeeService.CreateEmployee(suite.ctx, req)

	var validationErr *apperrors.ValidationError
	suite.Require().True(errors.As(err, &validationErr))
	assert.Equal(suite.T(), "salary", validationErr.Field)
	assert.Equal(suite.T(), "is required", validationErr.Message)
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_ZeroSalaryAllowed() {
	suite.expectDepartment(1)
	suite.mockStore.EXPECT().EmployeeNoExists("E100", 0).Return(false, nil)
	suite.mockStore.EXPECT().InsertEmployee(gomock.Any()).Return(nil)

	req := suite.createRequest()
	req.Salary = floatPtr(0)
	_, err := suite.employeeService.CreateEmployee(suite.ctx, req)

	assert.NoError(suite.T(), err)
}

func (suite *EmployeeServiceTestSuite) TestGetEmployee_NotFound() {
	suite.mockStore.EXPECT().GetEmployee(testCompany, 8).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.employeeService.GetEmployee(suite.ctx, testCompany, 8)

	assert.True(suite.T(), errors.Is(err, apperrors.ErrEmployeeNotFound))
}

func (suite *EmployeeServiceTestSuite) TestGetEmployees_Success() {
	suite.mockStore.EXPECT().GetAllEmployees(testCompany).Return([]models.Employee{
		{ID: 1, EmpNo: "E1", HireDate: time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)},
	}, nil)

	resp, err := suite.employeeService.GetEmployees(suite.ctx, testCompany)

	suite.Require().NoError(err)
	suite.Require().Len(resp, 1)
	assert.Equal(suite.T(), "2023-05-01", resp[0].HireDate)
}

func (suite *EmployeeServiceTestSuite) TestGetEmployees_WrongCompany() {
	_, err := suite.employeeService.GetEmployees(suite.ctx, "globex")

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *EmployeeServiceTestSuite) TestUpdateEmployee_KeepsOwnEmpNo() {
	existing := &models.Employee{ID: 3, Company: testCompany, EmpNo: "E100", DeptID: 1}
	suite.mockStore.EXPECT().GetEmployee(testCompany, 3).Return(existing, nil)
	suite.expectDepartment(2)
	suite.mockStore.EXPECT().EmployeeNoExists("E100", 3).Return(false, nil)
	suite.mockStore.EXPECT().UpdateEmployee(existing).Return(nil)

	resp, err := suite.employeeService.UpdateEmployee(suite.ctx, &service.UpdateEmployeeRequest{
		Company:  testCompany,
		EmpID:    3,
		EmpName:  "Grace Hopper",
		EmpNo:    "E100",
		HireDate: "2024-01-03",
		Job:      "Rear Admiral",
		Salary:   floatPtr(9000),
		DeptID:   2,
	})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), 2, resp.DeptID)
	assert.Equal(suite.T(), "Rear Admiral", resp.Job)
}

func (suite *EmployeeServiceTestSuite) TestUpdateEmployee_NotFound() {
	suite.mockStore.EXPECT().GetEmployee(testCompany, 3).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.employeeService.UpdateEmployee(suite.ctx, &service.UpdateEmployeeRequest{
		Company: testCompany, EmpID: 3, EmpName: "x", EmpNo: "E1", HireDate: "2024-01-03",
		Job: "x", Salary: floatPtr(1), DeptID: 1,
	})

	assert.True(suite.T(), errors.Is(err, apperrors.ErrEmployeeNotFound))
}

func (suite *EmployeeServiceTestSuite) TestUpdateEmployee_WeekendHireDate() {
	suite.mockStore.EXPECT().GetEmployee(testCompany, 3).Return(&models.Employee{ID: 3}, nil)
	suite.expectDepartment(1)

	_, err := suite.employeeService.UpdateEmployee(suite.ctx, &service.UpdateEmployeeRequest{
		Company: testCompany, EmpID: 3, EmpName: "x", EmpNo: "E1", HireDate: "2024-01-06",
		Job: "x", Salary: floatPtr(1), DeptID: 1,
	})

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *EmployeeServiceTestSuite) TestDeleteEmployee_Success() {
	gomock.InOrder(
		suite.mockStore.EXPECT().ClearManager(testCompany, 3).Return(int64(0), nil),
		suite.mockStore.EXPECT().DeleteEmployee(testCompany, 3).Return(int64(1), nil),
	)

	assert.NoError(suite.T(), suite.employeeService.DeleteEmployee(suite.ctx, testCompany, 3))
}

func (suite *EmployeeServiceTestSuite) TestDeleteEmployee_DetachesReports() {
	gomock.InOrder(
		suite.mockStore.EXPECT().ClearManager(testCompany, 3).Return(int64(2), nil),
		suite.mockStore.EXPECT().DeleteEmployee(testCompany, 3).Return(int64(1), nil),
	)
	assert.NoError(suite.T(), suite.employeeService.DeleteEmployee(suite.ctx, testCompany, 3))

	// a former report can be saved unchanged afterwards
	report := &models.Employee{ID: 5, Company: testCompany, EmpNo: "E105", DeptID: 1, MngID: models.NoManager}
	suite.mockStore.EXPECT().GetEmployee(testCompany, 5).Return(report, nil)
	suite.expectDepartment(1)
	suite.mockStore.EXPECT().EmployeeNoExists("E105", 5).Return(false, nil)
	suite.mockStore.EXPECT().UpdateEmployee(report).Return(nil)

	_, err := suite.employeeService.UpdateEmployee(suite.ctx, &service.UpdateEmployeeRequest{
		Company: testCompany, EmpID: 5, EmpName: "Alan", EmpNo: "E105", HireDate: "2024-01-03",
		Job: "Developer", Salary: floatPtr(7000), DeptID: 1, MngID: models.NoManager,
	})
	assert.NoError(suite.T(), err)
}

func (suite *EmployeeServiceTestSuite) TestDeleteEmployee_ClearManagerFails() {
	suite.mockStore.EXPECT().ClearManager(testCompany, 3).Return(int64(0), errors.New("connection reset"))

	err := suite.employeeService.DeleteEmployee(suite.ctx, testCompany, 3)

	assert.True(suite.T(), apperrors.IsStorage(err))
}

func (suite *EmployeeServiceTestSuite) TestDeleteEmployee_NotFound() {
	suite.mockStore.EXPECT().ClearManager(testCompany, 3).Return(int64(0), nil)
	suite.mockStore.EXPECT().DeleteEmployee(testCompany, 3).Return(int64(0), nil)

	err := suite.employeeService.DeleteEmployee(suite.ctx, testCompany, 3)

	assert.True(suite.T(), errors.Is(err, apperrors.ErrEmployeeNotFound))
}

func (suite *EmployeeServiceTestSuite) TestGetEmployee_OtherCompanyRowIsNotFound() {
	// the store only sees rows of the configured company
	suite.mockStore.EXPECT().GetEmployee(testCompany, 7).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.employeeService.GetEmployee(suite.ctx, testCompany, 7)

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), errors.Is(err, apperrors.ErrEmployeeNotFound))
}

func (suite *EmployeeServiceTestSuite) TestGetEmployee_IDOutOfRange() {
	_, err := suite.employeeService.GetEmployee(suite.ctx, testCompany, service.MaxRecordID+1)

	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.Contains(suite.T(), err.Error(), "emp_id")
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_ManagerOutOfRange() {
	req := suite.createRequest()
	req.MngID = service.MaxRecordID + 1

	_, err := suite.employeeService.CreateEmployee(suite.ctx, req)

	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.Contains(suite.T(), err.Error(), "mng_id")
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_LostRaceOnEmpNo() {
	suite.expectDepartment(1)
	suite.mockStore.EXPECT().EmployeeNoExists("E100", 0).Return(false, nil)
	suite.mockStore.EXPECT().InsertEmployee(gomock.Any()).Return(gorm.ErrDuplicatedKey)

	_, err := suite.employeeService.CreateEmployee(suite.ctx, suite.createRequest())

	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.Contains(suite.T(), err.Error(), "emp_no")
}

func (suite *EmployeeServiceTestSuite) TestUpdateEmployee_RowVanishedBeforeWrite() {
	existing := &models.Employee{ID: 3, Company: testCompany, EmpNo: "E100", DeptID: 1}
	suite.mockStore.EXPECT().GetEmployee(testCompany, 3).Return(existing, nil)
	suite.expectDepartment(1)
	suite.mockStore.EXPECT().EmployeeNoExists("E100", 3).Return(false, nil)
	suite.mockStore.EXPECT().UpdateEmployee(existing).Return(gorm.ErrRecordNotFound)

	_, err := suite.employeeService.UpdateEmployee(suite.ctx, &service.UpdateEmployeeRequest{
		Company: testCompany, EmpID: 3, EmpName: "Grace", EmpNo: "E100", HireDate: "2024-01-03",
		Job: "Programmer", Salary: floatPtr(5000), DeptID: 1,
	})

	assert.True(suite.T(), errors.Is(err, apperrors.ErrEmployeeNotFound))
}

func TestEmployeeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EmployeeServiceTestSuite))
}
