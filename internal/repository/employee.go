package repository

import (
	"company-services-backend/internal/database/models"

	"gorm.io/gorm"
)

// EmployeeRepository handles database operations for employees
type EmployeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// GetEmployee retrieves an employee of company by ID
func (r *EmployeeRepository) GetEmployee(company string, id int) (*models.Employee, error) {
	var emp models.Employee
	err := r.db.Scopes(CompanyScope(company)).First(&emp, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

// GetAllEmployees retrieves every employee of company ordered by ID
func (r *EmployeeRepository) GetAllEmployees(company string) ([]models.Employee, error) {
	var emps []models.Employee
	err := r.db.Scopes(CompanyScope(company)).Order("id").Find(&emps).Error
	if err != nil {
		return nil, err
	}
	return emps, nil
}

// EmployeeNoExists checks whether an employee other than excludeID uses empNo
func (r *EmployeeRepository) EmployeeNoExists(empNo string, excludeID int) (bool, error) {
	query := r.db.Model(&models.Employee{}).Where("emp_no = ?", empNo)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}

// InsertEmployee creates an employee and sets its generated ID
func (r *EmployeeRepository) InsertEmployee(emp *models.Employee) error {
	return r.db.Create(emp).Error
}

// UpdateEmployee writes every column of emp. It returns gorm.ErrRecordNotFound
// when the row no longer exists.
func (r *EmployeeRepository) UpdateEmployee(emp *models.Employee) error {
	result := r.db.Model(emp).Scopes(CompanyScope(emp.Company)).Select("*").Updates(emp)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ClearManager detaches every employee of company that reports to mngID
func (r *EmployeeRepository) ClearManager(company string, mngID int) (int64, error) {
	result := r.db.Model(&models.Employee{}).
		Scopes(CompanyScope(company)).
		Where("mng_id = ?", mngID).
		Update("mng_id", models.NoManager)
	return result.RowsAffected, result.Error
}

// DeleteEmployee deletes an employee of company and reports the rows removed
func (r *EmployeeRepository) DeleteEmployee(company string, id int) (int64, error) {
	result := r.db.Scopes(CompanyScope(company)).Where("id = ?", id).Delete(&models.Employee{})
	return result.RowsAffected, result.Error
}
