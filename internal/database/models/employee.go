package models

import "time"

// NoManager is the MngID of an employee that reports to nobody
const NoManager = 0

// Employee represents a person on the company payroll
type Employee struct {
	ID       int       `json:"emp_id" gorm:"primaryKey;autoIncrement"`
	Company  string    `json:"company" gorm:"size:50;not null;index"`
	EmpName  string    `json:"emp_name" gorm:"size:100;not null"`
	EmpNo    string    `json:"emp_no" gorm:"size:20;not null;uniqueIndex"`
	HireDate time.Time `json:"hire_date" gorm:"type:date;not null"`
	Job      string    `json:"job" gorm:"size:100;not null"`
	Salary   float64   `json:"salary" gorm:"type:numeric(12,2);not null"`
	DeptID   int       `json:"dept_id" gorm:"not null;index"`
	MngID    int       `json:"mng_id" gorm:"not null;default:0"`
}

// TableName returns the table name for Employee
func (Employee) TableName() string {
	return "employees"
}

// HasManager reports whether MngID refers to another employee
func (e *Employee) HasManager() bool {
	return e.MngID != NoManager
}
