package service

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"company-services-backend/internal/database/models"
	apperrors "company-services-backend/internal/errors"
	"company-services-backend/internal/repository"

	"gorm.io/gorm"
)

// MaxRecordID is the largest id the SERIAL key columns can hold
const MaxRecordID = math.MaxInt32

// Rules holds the business checks of the company dataset. Every check either
// passes or returns the most specific typed error; none of them writes.
// A Rules value lives for one operation and reads through that operation's store.
type Rules struct {
	store   repository.Store
	company string
}

// NewRules creates the checks for one operation against store. company is the
// configured tenant.
func NewRules(store repository.Store, company string) *Rules {
	return &Rules{
		store:   store,
		company: company,
	}
}

// ValidateCompany checks that company names the configured tenant
func (r *Rules) ValidateCompany(company string) error {
	if strings.TrimSpace(company) == "" {
		return apperrors.NewValidationError("company", "is required")
	}
	if company != r.company {
		return apperrors.NewValidationError("company", fmt.Sprintf("%q is not the configured company", company))
	}
	return nil
}

// ValidateID checks that id is a usable record id
func (r *Rules) ValidateID(field string, id int) error {
	if id <= 0 {
		return apperrors.NewValidationError(field, "must be a positive integer")
	}
	if id > MaxRecordID {
		return apperrors.NewValidationError(field, fmt.Sprintf("must not exceed %d", MaxRecordID))
	}
	return nil
}

// ValidateDepartmentExists checks that company owns a department with deptID
func (r *Rules) ValidateDepartmentExists(company string, deptID int) error {
	if _, err := r.store.GetDepartment(company, deptID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFoundError("department", deptID)
		}
		return apperrors.NewStorageError("get department", err)
	}
	return nil
}

// ValidateManagerExists checks that mngID is an existing employee of the
// tenant. The no-manager sentinel always passes.
func (r *Rules) ValidateManagerExists(mngID int) error {
	if mngID == models.NoManager {
		return nil
	}
	if _, err := r.store.GetEmployee(r.company, mngID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFoundError("manager", mngID)
		}
		return apperrors.NewStorageError("get manager", err)
	}
	return nil
}

// ValidateHireDate parses date and rejects Saturdays and Sundays
func (r *Rules) ValidateHireDate(date string) (time.Time, error) {
	hired, err := time.Parse(DateLayout, strings.TrimSpace(date))
	if err != nil {
		return time.Time{}, apperrors.NewValidationError("hire_date", "must be a date formatted as YYYY-MM-DD")
	}
	switch hired.Weekday() {
	case time.Saturday, time.Sunday:
		return time.Time{}, apperrors.NewValidationError("hire_date", fmt.Sprintf("%s falls on a %s, must be Monday through Friday", date, hired.Weekday()))
	}
	return hired, nil
}

// ValidateEmployeeNumberUnique checks that no employee other than excludeID uses empNo
func (r *Rules) ValidateEmployeeNumberUnique(empNo string, excludeID int) error {
	exists, err := r.store.EmployeeNoExists(empNo, excludeID)
	if err != nil {
		return apperrors.NewStorageError("check emp_no", err)
	}
	if exists {
		return duplicateEmpNo(empNo)
	}
	return nil
}

// ValidateDeptNoUnique checks deptNo against the departments of every company,
// leaving excludeID out of the comparison
func (r *Rules) ValidateDeptNoUnique(deptNo string, excludeID int) error {
	exists, err := r.store.DepartmentNoExists(deptNo, excludeID)
	if err != nil {
		return apperrors.NewStorageError("check dept_no", err)
	}
	if exists {
		return duplicateDeptNo(deptNo)
	}
	return nil
}

// ValidateEmployeeExists checks that empID is an existing employee of the tenant
func (r *Rules) ValidateEmployeeExists(empID int) error {
	if _, err := r.store.GetEmployee(r.company, empID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFoundError("employee", empID)
		}
		return apperrors.NewStorageError("get employee", err)
	}
	return nil
}

// ValidateStartTime parses the start of a timecard
func (r *Rules) ValidateStartTime(start string) (time.Time, error) {
	if strings.TrimSpace(start) == "" {
		return time.Time{}, apperrors.NewValidationError("start_time", "is required")
	}
	t, err := parseTimestamp(start)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError("start_time", "must be a timestamp formatted as YYYY-MM-DD HH:MM:SS")
	}
	return t, nil
}

// ValidateEndTime parses end and checks that it is strictly after start
func (r *Rules) ValidateEndTime(start time.Time, end string) (time.Time, error) {
	if strings.TrimSpace(end) == "" {
		return time.Time{}, apperrors.NewValidationError("end_time", "is required")
	}
	t, err := parseTimestamp(end)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError("end_time", "must be a timestamp formatted as YYYY-MM-DD HH:MM:SS")
	}
	if !t.After(start) {
		return time.Time{}, apperrors.NewValidationError("end_time", "must be after start_time")
	}
	return t, nil
}

// ValidateNoDuplicateTimecard checks that the employee has no other timecard
// starting at start
func (r *Rules) ValidateNoDuplicateTimecard(empID int, start time.Time, excludeID int) error {
	exists, err := r.store.TimecardStartExists(empID, start, excludeID)
	if err != nil {
		return apperrors.NewStorageError("check timecard start", err)
	}
	if exists {
		return duplicateTimecard(empID, start)
	}
	return nil
}

// parseTimestamp accepts TimestampLayout (read as UTC) or RFC 3339
func parseTimestamp(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(TimestampLayout, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

func duplicateDeptNo(deptNo string) error {
	return apperrors.NewValidationError("dept_no", fmt.Sprintf("%q is not unique across all companies", deptNo))
}

func duplicateEmpNo(empNo string) error {
	return apperrors.NewValidationError("emp_no", fmt.Sprintf("%q is already used by another employee", empNo))
}

func duplicateTimecard(empID int, start time.Time) error {
	return apperrors.NewConflictError("timecard", fmt.Sprintf("for employee %d starting at %s", empID, start.Format(TimestampLayout)))
}

// writeError maps a failed insert or update onto the error of the rule the
// store enforced: a vanished row becomes missing, a unique index hit becomes
// duplicate. Anything else is a StorageError.
func writeError(op string, err error, missing, duplicate error) error {
	switch {
	case err == nil:
		return nil
	case missing != nil && errors.Is(err, gorm.ErrRecordNotFound):
		return missing
	case duplicate != nil && errors.Is(err, gorm.ErrDuplicatedKey):
		return duplicate
	default:
		return apperrors.NewStorageError(op, err)
	}
}
