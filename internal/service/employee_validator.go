package service

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"staffdesk/internal/errors"
	"staffdesk/internal/model"
)

// phonePattern allows an optional leading + followed by 7 to 15 digits.
var phonePattern = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

// maxSalary bounds salary at 10 integer digits (decimal(12,2)).
var maxSalary = decimal.New(1, 10)

// EmployeeValidator validates employee field constraints.
type EmployeeValidator struct{}

// NewEmployeeValidator creates a new employee validator.
func NewEmployeeValidator() *EmployeeValidator {
	return &EmployeeValidator{}
}

// ValidateName checks that a name field is non-blank.
func (v *EmployeeValidator) ValidateName(field, name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.BadRequest(field + " cannot be null or blank")
	}
	return nil
}

// ValidateEmail checks that the email is non-blank.
func (v *EmployeeValidator) ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return errors.BadRequest("email cannot be null or blank")
	}
	return nil
}

// ValidatePosition checks that the position is non-blank.
func (v *EmployeeValidator) ValidatePosition(position string) error {
	if strings.TrimSpace(position) == "" {
		return errors.BadRequest("position cannot be null or blank")
	}
	return nil
}

// ValidateSalary checks that the salary is non-negative with at most two
// fraction digits and at most ten integer digits.
func (v *EmployeeValidator) ValidateSalary(salary decimal.Decimal) error {
	if salary.IsNegative() {
		return errors.BadRequest("salary cannot be negative")
	}
	if !salary.Round(2).Equal(salary) {
		return errors.BadRequest("salary must have at most 2 decimal places")
	}
	if salary.GreaterThanOrEqual(maxSalary) {
		return errors.BadRequest("salary must have at most 10 integer digits")
	}
	return nil
}

// ValidateHireDate checks that the hire date is present and not in the future.
func (v *EmployeeValidator) ValidateHireDate(hireDate model.Date) error {
	if hireDate.IsZero() {
		return errors.BadRequest("hireDate cannot be null")
	}
	if hireDate.After(model.Today()) {
		return errors.BadRequest("hire date cannot be in the future")
	}
	return nil
}

// ValidatePhoneNumber checks presence and the phone pattern.
func (v *EmployeeValidator) ValidatePhoneNumber(phoneNumber string) error {
	if strings.TrimSpace(phoneNumber) == "" {
		return errors.BadRequest("phone number cannot be null or blank")
	}
	if !phonePattern.MatchString(phoneNumber) {
		return errors.BadRequest("phone number must be a valid phone number")
	}
	return nil
}
