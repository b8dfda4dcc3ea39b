package repository

import (
	"time"

	"company-services-backend/internal/database/models"

	"gorm.io/gorm"
)

// TimecardRepository handles database operations for timecards
type TimecardRepository struct {
	db *gorm.DB
}

// NewTimecardRepository creates a new timecard repository
func NewTimecardRepository(db *gorm.DB) *TimecardRepository {
	return &TimecardRepository{db: db}
}

// GetTimecard retrieves a timecard of company by ID
func (r *TimecardRepository) GetTimecard(company string, id int) (*models.Timecard, error) {
	var tc models.Timecard
	err := r.db.Scopes(CompanyScope(company)).First(&tc, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &tc, nil
}

// GetAllTimecards retrieves the timecards of an employee ordered by start time
func (r *TimecardRepository) GetAllTimecards(company string, empID int) ([]models.Timecard, error) {
	var tcs []models.Timecard
	err := r.db.Scopes(CompanyScope(company)).Where("emp_id = ?", empID).Order("start_time").Find(&tcs).Error
	if err != nil {
		return nil, err
	}
	return tcs, nil
}

// TimecardStartExists checks whether the employee already has a timecard
// starting exactly at start, ignoring excludeID when non-zero
func (r *TimecardRepository) TimecardStartExists(empID int, start time.Time, excludeID int) (bool, error) {
	query := r.db.Model(&models.Timecard{}).Where("emp_id = ? AND start_time = ?", empID, start)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}

// InsertTimecard creates a timecard and sets its generated ID
func (r *TimecardRepository) InsertTimecard(tc *models.Timecard) error {
	return r.db.Create(tc).Error
}

// UpdateTimecard writes every column of tc. It returns gorm.ErrRecordNotFound
// when the row no longer exists.
func (r *TimecardRepository) UpdateTimecard(tc *models.Timecard) error {
	result := r.db.Model(tc).Scopes(CompanyScope(tc.Company)).Select("*").Updates(tc)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteTimecard deletes a timecard of company and reports the rows removed
func (r *TimecardRepository) DeleteTimecard(company string, id int) (int64, error) {
	result := r.db.Scopes(CompanyScope(company)).Where("id = ?", id).Delete(&models.Timecard{})
	return result.RowsAffected, result.Error
}
