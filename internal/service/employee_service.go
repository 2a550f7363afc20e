package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"staffdesk/internal/errors"
	"staffdesk/internal/model"
	"staffdesk/internal/repository"
)

// EmployeeDraft carries validated-but-not-yet-persisted employee fields
// submitted for creation.
type EmployeeDraft struct {
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	Position    string
	Salary      decimal.Decimal
	HireDate    model.Date
}

// EmployeeUpdate carries the fields replaced by a full update. First name,
// last name and hire date are not touched by updates.
type EmployeeUpdate struct {
	Email       string
	PhoneNumber string
	Position    string
	Salary      decimal.Decimal
}

// EmployeePatch carries an optional subset of fields; nil means "leave as is".
type EmployeePatch struct {
	FirstName *string
	LastName  *string
	Salary    *decimal.Decimal
	HireDate  *model.Date
}

// EmployeeService validates employee requests and coordinates persistence.
type EmployeeService struct {
	repo      repository.EmployeeRepository
	validator *EmployeeValidator
}

// NewEmployeeService creates a new employee service.
func NewEmployeeService(repo repository.EmployeeRepository) *EmployeeService {
	return &EmployeeService{
		repo:      repo,
		validator: NewEmployeeValidator(),
	}
}

// List returns every employee in persistence-layer default order.
func (s *EmployeeService) List(ctx context.Context) ([]model.Employee, error) {
	return s.repo.List(ctx)
}

// Get returns the employee with the given id.
func (s *EmployeeService) Get(ctx context.Context, id uuid.UUID) (*model.Employee, error) {
	employee, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NotFound(fmt.Sprintf("Employee with id %s not found", id))
		}
		return nil, err
	}
	return employee, nil
}

// Create validates the draft, checks email and phone uniqueness, assigns a
// fresh identifier and persists the record. Field checks run before
// uniqueness checks so malformed input reports BadRequest, not Conflict.
func (s *EmployeeService) Create(ctx context.Context, draft EmployeeDraft) (*model.Employee, error) {
	if err := s.validator.ValidateName("first name", draft.FirstName); err != nil {
		return nil, err
	}
	if err := s.validator.ValidateName("last name", draft.LastName); err != nil {
		return nil, err
	}
	if err := s.validator.ValidateEmail(draft.Email); err != nil {
		return nil, err
	}
	if err := s.validator.ValidatePosition(draft.Position); err != nil {
		return nil, err
	}
	if err := s.validator.ValidateSalary(draft.Salary); err != nil {
		return nil, err
	}
	if err := s.validator.ValidateHireDate(draft.HireDate); err != nil {
		return nil, err
	}
	if err := s.validator.ValidatePhoneNumber(draft.PhoneNumber); err != nil {
		return nil, err
	}

	taken, err := s.repo.ExistsByEmail(ctx, draft.Email)
	if err != nil {
		return nil, fmt.Errorf("check email uniqueness: %w", err)
	}
	if taken {
		return nil, errors.Conflict(fmt.Sprintf("Email %s is already in use", draft.Email))
	}

	taken, err = s.repo.ExistsByPhoneNumber(ctx, draft.PhoneNumber)
	if err != nil {
		return nil, fmt.Errorf("check phone uniqueness: %w", err)
	}
	if taken {
		return nil, errors.Conflict(fmt.Sprintf("Phone number %s is already in use", draft.PhoneNumber))
	}

	employee := &model.Employee{
		ID:          uuid.New(),
		FirstName:   draft.FirstName,
		LastName:    draft.LastName,
		Email:       draft.Email,
		PhoneNumber: draft.PhoneNumber,
		Position:    draft.Position,
		Salary:      draft.Salary,
		HireDate:    draft.HireDate,
	}

	if err := s.repo.Create(ctx, employee); err != nil {
		return nil, fmt.Errorf("create employee: %w", err)
	}
	return employee, nil
}

// Update replaces email, position, salary and phone number on an existing
// record. Uniqueness is re-checked only for values that actually changed.
// Update never creates a record.
func (s *EmployeeService) Update(ctx context.Context, id uuid.UUID, upd EmployeeUpdate) (*model.Employee, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.validator.ValidateEmail(upd.Email); err != nil {
		return nil, err
	}
	if err := s.validator.ValidatePosition(upd.Position); err != nil {
		return nil, err
	}
	if err := s.validator.ValidateSalary(upd.Salary); err != nil {
		return nil, err
	}
	if err := s.validator.ValidatePhoneNumber(upd.PhoneNumber); err != nil {
		return nil, err
	}

	if upd.Email != existing.Email {
		taken, err := s.repo.ExistsByEmail(ctx, upd.Email)
		if err != nil {
			return nil, fmt.Errorf("check email uniqueness: %w", err)
		}
		if taken {
			return nil, errors.Conflict(fmt.Sprintf("Email %s is already in use", upd.Email))
		}
	}
	if upd.PhoneNumber != existing.PhoneNumber {
		taken, err := s.repo.ExistsByPhoneNumber(ctx, upd.PhoneNumber)
		if err != nil {
			return nil, fmt.Errorf("check phone uniqueness: %w", err)
		}
		if taken {
			return nil, errors.Conflict(fmt.Sprintf("Phone number %s is already in use", upd.PhoneNumber))
		}
	}

	existing.Email = upd.Email
	existing.Position = upd.Position
	existing.Salary = upd.Salary
	existing.PhoneNumber = upd.PhoneNumber

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("update employee: %w", err)
	}
	return existing, nil
}

// Patch applies only the fields present in the request, each validated
// against its own constraint.
func (s *EmployeeService) Patch(ctx context.Context, id uuid.UUID, patch EmployeePatch) (*model.Employee, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.FirstName != nil {
		if err := s.validator.ValidateName("first name", *patch.FirstName); err != nil {
			return nil, err
		}
		existing.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		if err := s.validator.ValidateName("last name", *patch.LastName); err != nil {
			return nil, err
		}
		existing.LastName = *patch.LastName
	}
	if patch.Salary != nil {
		if err := s.validator.ValidateSalary(*patch.Salary); err != nil {
			return nil, err
		}
		existing.Salary = *patch.Salary
	}
	if patch.HireDate != nil {
		if err := s.validator.ValidateHireDate(*patch.HireDate); err != nil {
			return nil, err
		}
		existing.HireDate = *patch.HireDate
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("patch employee: %w", err)
	}
	return existing, nil
}

// Delete removes an existing employee. Deleting a missing employee is an
// error, not a no-op.
func (s *EmployeeService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	return nil
}
