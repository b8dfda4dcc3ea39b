package repository

import "gorm.io/gorm"

// CompanyScope restricts a query to rows owned by company
func CompanyScope(company string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("company = ?", company)
	}
}
