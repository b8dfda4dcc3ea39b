package service

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	apperrors "company-services-backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

// DateLayout is the wire format of hire dates
const DateLayout = "2006-01-02"

// TimestampLayout is the wire format of timecard start and end times
const TimestampLayout = "2006-01-02 15:04:05"

// recordNoPattern is the format of dept_no and emp_no codes
var recordNoPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]{0,19}$`)

// NewValidator returns a validator that reports json field names and knows the
// "recordno" tag used by department and employee numbers
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("recordno", func(fl validator.FieldLevel) bool {
		return recordNoPattern.MatchString(fl.Field().String())
	})
	return v
}

// validateRequest runs the struct tags of req and converts the first failing
// field into a ValidationError
func validateRequest(v *validator.Validate, req interface{}) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return apperrors.NewValidationError("", err.Error())
	}

	fe := fieldErrs[0]
	return apperrors.NewValidationError(fe.Field(), fieldMessage(fe))
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "recordno":
		return "must start with a letter or digit and contain only letters, digits, '-' or '_' (max 20)"
	case "gt":
		return "must be a positive integer"
	case "gte":
		return "must not be negative"
	case "lte":
		return fmt.Sprintf("must not exceed %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	default:
		return "is invalid"
	}
}
