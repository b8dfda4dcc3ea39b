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

type TimecardServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockStore       *mocks.MockStore
	gateway         *countingGateway
	timecardService *service.TimecardService
	ctx             context.Context
}

func (suite *TimecardServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockStore = mocks.NewMockStore(suite.ctrl)
	suite.gateway = &countingGateway{store: suite.mockStore}
	suite.timecardService = service.NewTimecardService(suite.gateway, service.NewValidator(), testCompany)
	suite.ctx = context.Background()
}

func (suite *TimecardServiceTestSuite) TearDownTest() {
	assert.Equal(suite.T(), 1, suite.gateway.acquired)
	assert.Equal(suite.T(), suite.gateway.acquired, suite.gateway.released)
	suite.ctrl.Finish()
}

var (
	shiftStart = time.Date(2024, 1, 3, 9, 0, 0, 0, time.UTC)
	shiftEnd   = time.Date(2024, 1, 3, 17, 30, 0, 0, time.UTC)
)

func (suite *TimecardServiceTestSuite) createRequest() *service.CreateTimecardRequest {
	return &service.CreateTimecardRequest{
		Company:   testCompany,
		EmpID:     7,
		StartTime: "2024-01-03 09:00:00",
		EndTime:   "2024-01-03 17:30:00",
	}
}

func (suite *TimecardServiceTestSuite) TestCreateTimecard_Success() {
	suite.mockStore.EXPECT().GetEmployee(testCompany, 7).Return(&models.Employee{ID: 7}, nil)
	suite.mockStore.EXPECT().TimecardStartExists(7, shiftStart, 0).Return(false, nil)
	suite.mockStore.EXPECT().InsertTimecard(gomock.Any()).DoAndReturn(func(tc *models.Timecard) error {
		assert.Equal(suite.T(), shiftEnd, tc.EndTime)
		tc.ID = 21
		return nil
	})

	resp, err := suite.timecardService.CreateTimecard(suite.ctx, suite.createRequest())

	suite.Require().NoError(err)
	assert.Equal(suite.T(), service.TimecardResponse{
		ID: 21, EmpID: 7, StartTime: "2024-01-03 09:00:00", EndTime: "2024-01-03 17:30:00",
	}, *resp)
}

func (suite *TimecardServiceTestSuite) TestCreateTimecard_AcceptsRFC3339() {
	suite.mockStore.EXPECT().GetEmployee(testCompany, 7).Return(&models.Employee{ID: 7}, nil)
	suite.mockStore.EXPECT().TimecardStartExists(7, shiftStart, 0).Return(false, nil)
	suite.mockStore.EXPECT().InsertTimecard(gomock.Any()).Return(nil)

	req := suite.createRequest()
	req.StartTime = "2024-01-03T10:00:00+01:00"
	resp, err := suite.timecardService.CreateTimecard(suite.ctx, req)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), "2024-01-03 09:00:00", resp.StartTime)
}

func (suite *TimecardServiceTestSuite) TestCreateTimecard_EndEqualsStart() {
	suite.mockStore.EXPECT().GetEmployee(testCompany, 7).Return(&models.Employee{ID: 7}, nil)

	req := suite.createRequest()
	req.EndTime = req.StartTime
	_, err := suite.timecardService.CreateTimecard(suite.ctx, req)

	var validationErr *apperrors.ValidationError
	suite.Require().True(errors.As(err, &validationErr))
	assert.Equal(suite.T(), "end_time", validationErr.Field)
}

func (suite *TimecardServiceTestSuite) TestCreateTimecard_EndBeforeStart() {
	suite.mockStore.EXPECT().GetEmployee(testCompany, 7).Return(&models.Employee{ID: 7}, nil)

	req := suite.createRequest()
	req.EndTime = "2024-01-03 08:59:59"
	_, err := suite.timecardService.CreateTimecard(suite.ctx, req)

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *TimecardServiceTestSuite) TestCreateTimecard_MalformedStart() {
	suite.mockStore.EXPECT().GetEmployee(testCompany, 7).Return(&models.Employee{ID: 7}, nil)

	req := suite.createRequest()
	req.StartTime = "yesterday"
	_, err := suite.timecardService.CreateTimecard(suite.ctx, req)

	var validationErr *apperrors.ValidationError
	suite.Require().True(errors.As(err, &validationErr))
	assert.Equal(suite.T(), "start_time", validationErr.Field)
}

func (suite *TimecardServiceTestSuite) TestCreateTimecard_EmployeeNotFound() {
	suite.mockStore.EXPECT().GetEmployee(testCompany, 7).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.timecardService.CreateTimecard(suite.ctx, suite.createRequest())

	assert.True(suite.T(), errors.Is(err, apperrors.ErrEmployeeNotFound))
}

func (suite *TimecardServiceTestSuite) TestCreateTimecard_Duplicate() {
	suite.mockStore.EXPECT().GetEmployee(testCompany, 7).Return(&models.Employee{ID: 7}, nil)
	suite.mockStore.EXPECT().TimecardStartExists(7, shiftStart, 0).Return(true, nil)

	resp, err := suite.timecardService.CreateTimecard(suite.ctx, suite.createRequest())

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsConflict(err))
	assert.True(suite.T(), errors.Is(err, apperrors.ErrTimecardExists))
}

func (suite *TimecardServiceTestSuite) TestGetTimecard_NotFound() {
	suite.mockStore.EXPECT().GetTimecard(testCompany, 2).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.timecardService.GetTimecard(suite.ctx, testCompany, 2)

	assert.True(suite.T(), errors.Is(err, apperrors.ErrTimecardNotFound))
}

func (suite *TimecardServiceTestSuite) TestGetTimecards_UnknownEmployee() {
	suite.mockStore.EXPECT().GetEmployee(testCompany, 7).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.timecardService.GetTimecards(suite.ctx, testCompany, 7)

	assert.True(suite.T(), errors.Is(err, apperrors.ErrEmployeeNotFound))
}

func (suite *TimecardServiceTestSuite) TestGetTimecards_Success() {
	suite.mockStore.EXPECT().GetEmployee(testCompany, 7).Return(&models.Employee{ID: 7}, nil)
	suite.mockStore.EXPECT().GetAllTimecards(testCompany, 7).Return([]models.Timecard{
		{ID: 1, EmpID: 7, StartTime: shiftStart, EndTime: shiftEnd},
	}, nil)

	resp, err := suite.timecardService.GetTimecards(suite.ctx, testCompany, 7)

	suite.Require().NoError(err)
	suite.Require().Len(resp, 1)
	assert.Equal(suite.T(), "2024-01-03 17:30:00", resp[0].EndTime)
}

func (suite *TimecardServiceTestSuite) TestUpdateTimecard_KeepsOwnStart() {
	existing := &models.Timecard{ID: 4, EmpID: 7, StartTime: shiftStart, EndTime: shiftEnd}
	suite.mockStore.EXPECT().GetTimecard(testCompany, 4).Return(existing, nil)
	suite.mockStore.EXPECT().GetEmployee(testCompany, 7).Return(&models.Employee{ID: 7}, nil)
	suite.mockStore.EXPECT().TimecardStartExists(7, shiftStart, 4).Return(false, nil)
	suite.mockStore.EXPECT().UpdateTimecard(existing).Return(nil)

	resp, err := suite.timecardService.UpdateTimecard(suite.ctx, &service.UpdateTimecardRequest{
		Company:    testCompany,
		TimecardID: 4,
		EmpID:      7,
		StartTime:  "2024-01-03 09:00:00",
		EndTime:    "2024-01-03 18:00:00",
	})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), "2024-01-03 18:00:00", resp.EndTime)
}

func (suite *TimecardServiceTestSuite) TestUpdateTimecard_NotFound() {
	suite.mockStore.EXPECT().GetTimecard(testCompany, 4).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.timecardService.UpdateTimecard(suite.ctx, &service.UpdateTimecardRequest{
		Company: testCompany, TimecardID: 4, EmpID: 7,
		StartTime: "2024-01-03 09:00:00", EndTime: "2024-01-03 18:00:00",
	})

	assert.True(suite.T(), errors.Is(err, apperrors.ErrTimecardNotFound))
}

func (suite *TimecardServiceTestSuite) TestDeleteTimecard_NotFound() {
	suite.mockStore.EXPECT().DeleteTimecard(testCompany, 4).Return(int64(0), nil)

	err := suite.timecardService.DeleteTimecard(suite.ctx, testCompany, 4)

	assert.True(suite.T(), errors.Is(err, apperrors.ErrTimecardNotFound))
}

func (suite *TimecardServiceTestSuite) TestDeleteTimecard_Success() {
	suite.mockStore.EXPECT().DeleteTimecard(testCompany, 4).Return(int64(1), nil)

	assert.NoError(suite.T(), suite.timecardService.DeleteTimecard(suite.ctx, testCompany, 4))
}

func (suite *TimecardServiceTestSuite) TestCreateTimecard_LostRaceOnStart() {
	suite.mockStore.EXPECT().GetEmployee(testCompany, 7).Return(&models.Employee{ID: 7}, nil)
	suite.mockStore.EXPECT().TimecardStartExists(7, shiftStart, 0).Return(false, nil)
	suite.mockStore.EXPECT().InsertTimecard(gomock.Any()).Return(gorm.ErrDuplicatedKey)

	_, err := suite.timecardService.CreateTimecard(suite.ctx, suite.createRequest())

	assert.True(suite.T(), errors.Is(err, apperrors.ErrTimecardExists))
}

func (suite *TimecardServiceTestSuite) TestUpdateTimecard_RowVanishedBeforeWrite() {
	existing := &models.Timecard{ID: 4, Company: testCompany, EmpID: 7, StartTime: shiftStart, EndTime: shiftEnd}
	suite.mockStore.EXPECT().GetTimecard(testCompany, 4).Return(existing, nil)
	suite.mockStore.EXPECT().GetEmployee(testCompany, 7).Return(&models.Employee{ID: 7}, nil)
	suite.mockStore.EXPECT().TimecardStartExists(7, shiftStart, 4).Return(false, nil)
	suite.mockStore.EXPECT().UpdateTimecard(existing).Return(gorm.ErrRecordNotFound)

	_, err := suite.timecardService.UpdateTimecard(suite.ctx, &service.UpdateTimecardRequest{
		Company: testCompany, TimecardID: 4, EmpID: 7,
		StartTime: "2024-01-03 09:00:00", EndTime: "2024-01-03 18:00:00",
	})

	assert.True(suite.T(), errors.Is(err, apperrors.ErrTimecardNotFound))
}

func (suite *TimecardServiceTestSuite) TestGetTimecards_EmployeeOfOtherCompany() {
	suite.mockStore.EXPECT().GetEmployee(testCompany, 9).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.timecardService.GetTimecards(suite.ctx, testCompany, 9)

	assert.True(suite.T(), errors.Is(err, apperrors.ErrEmployeeNotFound))
}

func (suite *TimecardServiceTestSuite) TestDeleteTimecard_IDOutOfRange() {
	err := suite.timecardService.DeleteTimecard(suite.ctx, testCompany, service.MaxRecordID+1)

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func TestTimecardServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TimecardServiceTestSuite))
}
