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

// TimecardService handles business logic for timecards
type TimecardService struct {
	gateway   repository.Gateway
	validator *validator.Validate
	company   string
}

// Ensure TimecardService implements TimecardServiceInterface
var _ TimecardServiceInterface = (*TimecardService)(nil)

// NewTimecardService creates a new timecard service for the tenant company
func NewTimecardService(gateway repository.Gateway, validator *validator.Validate, company string) *TimecardService {
	return &TimecardService{
		gateway:   gateway,
		validator: validator,
		company:   company,
	}
}

// CreateTimecardRequest represents the request to create a timecard.
// Times use TimestampLayout.
type CreateTimecardRequest struct {
	Company   string `json:"company" form:"company" validate:"required"`
	EmpID     int    `json:"emp_id" form:"emp_id" validate:"required,gt=0,lte=2147483647"`
	StartTime string `json:"start_time" form:"start_time" validate:"required"`
	EndTime   string `json:"end_time" form:"end_time" validate:"required"`
}

// UpdateTimecardRequest carries the full replacement record of a timecard
type UpdateTimecardRequest struct {
	Company    string `json:"company" form:"company" validate:"required"`
	TimecardID int    `json:"timecard_id" form:"timecard_id" validate:"required,gt=0,lte=2147483647"`
	EmpID      int    `json:"emp_id" form:"emp_id" validate:"required,gt=0,lte=2147483647"`
	StartTime  string `json:"start_time" form:"start_time" validate:"required"`
	EndTime    string `json:"end_time" form:"end_time" validate:"required"`
}

// TimecardResponse represents the response for timecard operations
type TimecardResponse struct {
	ID        int    `json:"timecard_id"`
	EmpID     int    `json:"emp_id"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// CreateTimecard records a work interval for an existing employee
func (s *TimecardService) CreateTimecard(ctx context.Context, req *CreateTimecardRequest) (*TimecardResponse, error) {
	var card *models.Timecard
	err := s.gateway.WithConnection(ctx, func(store repository.Store) error {
		rules := NewRules(store, s.company)

		if err := validateRequest(s.validator, req); err != nil {
			return err
		}
		if err := rules.ValidateCompany(req.Company); err != nil {
			return err
		}
		if err := rules.ValidateEmployeeExists(req.EmpID); err != nil {
			return err
		}
		start, err := rules.ValidateStartTime(req.StartTime)
		if err != nil {
			return err
		}
		end, err := rules.ValidateEndTime(start, req.EndTime)
		if err != nil {
			return err
		}
		if err := rules.ValidateNoDuplicateTimecard(req.EmpID, start, 0); err != nil {
			return err
		}

		card = &models.Timecard{
			Company:   req.Company,
			EmpID:     req.EmpID,
			StartTime: start,
			EndTime:   end,
		}
		return writeError("insert timecard", store.InsertTimecard(card), nil, duplicateTimecard(req.EmpID, start))
	})
	logOutcome(ctx, "create timecard", map[string]interface{}{"emp_id": req.EmpID}, err)
	if err != nil {
		return nil, err
	}

	return toTimecardResponse(card), nil
}

// GetTimecard retrieves a timecard by ID
func (s *TimecardService) GetTimecard(ctx context.Context, company string, id int) (*TimecardResponse, error) {
	var card *models.Timecard
	err := s.gateway.WithConnection(ctx, func(store repository.Store) error {
		rules := NewRules(store, s.company)

		if err := rules.ValidateCompany(company); err != nil {
			return err
		}
		if err := rules.ValidateID("timecard_id", id); err != nil {
			return err
		}

		var err error
		card, err = fetchTimecard(store, company, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	return toTimecardResponse(card), nil
}

// GetTimecards retrieves every timecard of an existing employee
func (s *TimecardService) GetTimecards(ctx context.Context, company string, empID int) ([]TimecardResponse, error) {
	var cards []models.Timecard
	err := s.gateway.WithConnection(ctx, func(store repository.Store) error {
		rules := NewRules(store, s.company)

		if err := rules.ValidateCompany(company); err != nil {
			return err
		}
		if err := rules.ValidateID("emp_id", empID); err != nil {
			return err
		}
		if err := rules.ValidateEmployeeExists(empID); err != nil {
			return err
		}

		var err error
		cards, err = store.GetAllTimecards(company, empID)
		return apperrors.NewStorageError("list timecards", err)
	})
	if err != nil {
		return nil, err
	}

	responses := make([]TimecardResponse, len(cards))
	for i := range cards {
		responses[i] = *toTimecardResponse(&cards[i])
	}
	return responses, nil
}

// UpdateTimecard replaces every field of an existing timecard. The timecard's
// own start_time does not count as a duplicate.
func (s *TimecardService) UpdateTimecard(ctx context.Context, req *UpdateTimecardRequest) (*TimecardResponse, error) {
	var card *models.Timecard
	err := s.gateway.WithConnection(ctx, func(store repository.Store) error {
		rules := NewRules(store, s.company)

		if err := validateRequest(s.validator, req); err != nil {
			return err
		}
		if err := rules.ValidateCompany(req.Company); err != nil {
			return err
		}
		if err := rules.ValidateID("timecard_id", req.TimecardID); err != nil {
			return err
		}

		var err error
		card, err = fetchTimecard(store, req.Company, req.TimecardID)
		if err != nil {
			return err
		}
		if err := rules.ValidateEmployeeExists(req.EmpID); err != nil {
			return err
		}
		start, err := rules.ValidateStartTime(req.StartTime)
		if err != nil {
			return err
		}
		end, err := rules.ValidateEndTime(start, req.EndTime)
		if err != nil {
			return err
		}
		if err := rules.ValidateNoDuplicateTimecard(req.EmpID, start, card.ID); err != nil {
			return err
		}

		card.Company = req.Company
		card.EmpID = req.EmpID
		card.StartTime = start
		card.EndTime = end
		return writeError("update timecard", store.UpdateTimecard(card),
			apperrors.NewNotFoundError("timecard", req.TimecardID), duplicateTimecard(req.EmpID, start))
	})
	logOutcome(ctx, "update timecard", map[string]interface{}{"timecard_id": req.TimecardID}, err)
	if err != nil {
		return nil, err
	}

	return toTimecardResponse(card), nil
}

// DeleteTimecard deletes a timecard
func (s *TimecardService) DeleteTimecard(ctx context.Context, company string, id int) error {
	err := s.gateway.WithConnection(ctx, func(store repository.Store) error {
		rules := NewRules(store, s.company)

		if err := rules.ValidateCompany(company); err != nil {
			return err
		}
		if err := rules.ValidateID("timecard_id", id); err != nil {
			return err
		}

		rows, err := store.DeleteTimecard(company, id)
		if err != nil {
			return apperrors.NewStorageError("delete timecard", err)
		}
		if rows == 0 {
			return apperrors.NewNotFoundError("timecard", id)
		}
		return nil
	})
	logOutcome(ctx, "delete timecard", map[string]interface{}{"timecard_id": id}, err)
	return err
}

func fetchTimecard(store repository.Store, company string, id int) (*models.Timecard, error) {
	card, err := store.GetTimecard(company, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("timecard", id)
		}
		return nil, apperrors.NewStorageError("get timecard", err)
	}
	return card, nil
}

// toTimecardResponse converts a Timecard model to API response
func toTimecardResponse(card *models.Timecard) *TimecardResponse {
	return &TimecardResponse{
		ID:        card.ID,
		EmpID:     card.EmpID,
		StartTime: card.StartTime.UTC().Format(TimestampLayout),
		EndTime:   card.EndTime.UTC().Format(TimestampLayout),
	}
}
