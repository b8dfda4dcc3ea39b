package repository

import (
	"company-services-backend/internal/database/models"

	"gorm.io/gorm"
)

// DepartmentRepository handles database operations for departments
type DepartmentRepository struct {
	db *gorm.DB
}

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(db *gorm.DB) *DepartmentRepository {
	return &DepartmentRepository{db: db}
}

// GetDepartment retrieves a department of company by ID
func (r *DepartmentRepository) GetDepartment(company string, id int) (*models.Department, error) {
	var dept models.Department
	err := r.db.Scopes(CompanyScope(company)).First(&dept, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &dept, nil
}

// GetAllDepartments retrieves every department of company ordered by ID
func (r *DepartmentRepository) GetAllDepartments(company string) ([]models.Department, error) {
	var depts []models.Department
	err := r.db.Scopes(CompanyScope(company)).Order("id").Find(&depts).Error
	if err != nil {
		return nil, err
	}
	return depts, nil
}

// DepartmentNoExists checks whether any department of any company uses deptNo.
// A non-zero excludeID leaves that department out of the check.
func (r *DepartmentRepository) DepartmentNoExists(deptNo string, excludeID int) (bool, error) {
	query := r.db.Model(&models.Department{}).Where("dept_no = ?", deptNo)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}

// InsertDepartment creates a department and sets its generated ID
func (r *DepartmentRepository) InsertDepartment(dept *models.Department) error {
	return r.db.Create(dept).Error
}

// UpdateDepartment writes every column of dept. It returns
// gorm.ErrRecordNotFound when the row no longer exists.
func (r *DepartmentRepository) UpdateDepartment(dept *models.Department) error {
	result := r.db.Model(dept).Scopes(CompanyScope(dept.Company)).Select("*").Updates(dept)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteDepartment deletes a department of company and reports the rows removed
func (r *DepartmentRepository) DeleteDepartment(company string, id int) (int64, error) {
	result := r.db.Scopes(CompanyScope(company)).Where("id = ?", id).Delete(&models.Department{})
	return result.RowsAffected, result.Error
}
