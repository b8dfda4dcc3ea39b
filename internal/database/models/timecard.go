package models

import "time"

// Timecard is one worked interval of an employee
type Timecard struct {
	ID        int       `json:"timecard_id" gorm:"primaryKey;autoIncrement"`
	Company   string    `json:"company" gorm:"size:50;not null"`
	EmpID     int       `json:"emp_id" gorm:"not null;uniqueIndex:idx_timecards_emp_start"`
	StartTime time.Time `json:"start_time" gorm:"type:timestamp;not null;uniqueIndex:idx_timecards_emp_start"`
	EndTime   time.Time `json:"end_time" gorm:"type:timestamp;not null"`
}

// TableName returns the table name for Timecard
func (Timecard) TableName() string {
	return "timecards"
}
