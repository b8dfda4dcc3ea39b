package models

// Department is an organisational unit of a company. DeptNo is unique across
// every company, not only within the owning one.
type Department struct {
	ID       int    `json:"dept_id" gorm:"primaryKey;autoIncrement"`
	Company  string `json:"company" gorm:"size:50;not null;index"`
	DeptName string `json:"dept_name" gorm:"size:100;not null"`
	DeptNo   string `json:"dept_no" gorm:"size:20;not null;uniqueIndex"`
	Location string `json:"location" gorm:"size:100;not null"`
}

// TableName returns the table name for Department
func (Department) TableName() string {
	return "departments"
}
