package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "staffdesk/internal/errors"
	"staffdesk/internal/model"
)

func validDraft() EmployeeDraft {
	return EmployeeDraft{
		FirstName:   "Ada",
		LastName:    "Lovelace",
		Email:       "ada@x.com",
		PhoneNumber: "+12345678",
		Position:    "Engineer",
		Salary:      decimal.NewFromFloat(1000.00),
		HireDate:    model.NewDate(time.Now().UTC().AddDate(0, 0, -1)),
	}
}

func storedEmployee() *model.Employee {
	return &model.Employee{
		ID:          uuid.New(),
		FirstName:   "Ada",
		LastName:    "Lovelace",
		Email:       "ada@x.com",
		PhoneNumber: "+12345678",
		Position:    "Engineer",
		Salary:      decimal.NewFromFloat(1000.00),
		HireDate:    model.NewDate(time.Now().UTC().AddDate(0, 0, -365)),
	}
}

func assertAppError(t *testing.T, err error, status int) {
	t.Helper()
	assert.Error(t, err)
	typed, ok := err.(*apperrors.Error)
	if assert.True(t, ok, "expected *errors.Error, got %T", err) {
		assert.Equal(t, status, typed.Status)
	}
}

func TestEmployeeService_Create(t *testing.T) {
	tests := []struct {
		name           string
		mutate         func(*EmployeeDraft)
		setupMock      func(*MockEmployeeRepository)
		expectedStatus int
	}{
		{
			name:   "successful creation",
			mutate: func(d *EmployeeDraft) {},
			setupMock: func(m *MockEmployeeRepository) {
				m.On("ExistsByEmail", mock.Anything, "ada@x.com").Return(false, nil)
				m.On("ExistsByPhoneNumber", mock.Anything, "+12345678").Return(false, nil)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Employee")).Return(nil)
			},
		},
		{
			name:           "blank first name",
			mutate:         func(d *EmployeeDraft) { d.FirstName = "  " },
			setupMock:      func(m *MockEmployeeRepository) {},
			expectedStatus: 400,
		},
		{
			name:           "blank email fails before uniqueness check",
			mutate:         func(d *EmployeeDraft) { d.Email = "" },
			setupMock:      func(m *MockEmployeeRepository) {},
			expectedStatus: 400,
		},
		{
			name:           "negative salary",
			mutate:         func(d *EmployeeDraft) { d.Salary = decimal.NewFromInt(-1) },
			setupMock:      func(m *MockEmployeeRepository) {},
			expectedStatus: 400,
		},
		{
			name:           "future hire date",
			mutate:         func(d *EmployeeDraft) { d.HireDate = model.NewDate(time.Now().UTC().AddDate(0, 0, 2)) },
			setupMock:      func(m *MockEmployeeRepository) {},
			expectedStatus: 400,
		},
		{
			name:           "malformed phone number",
			mutate:         func(d *EmployeeDraft) { d.PhoneNumber = "12-34" },
			setupMock:      func(m *MockEmployeeRepository) {},
			expectedStatus: 400,
		},
		{
			name:   "duplicate email",
			mutate: func(d *EmployeeDraft) {},
			setupMock: func(m *MockEmployeeRepository) {
				m.On("ExistsByEmail", mock.Anything, "ada@x.com").Return(true, nil)
			},
			expectedStatus: 409,
		},
		{
			name:   "duplicate phone number",
			mutate: func(d *EmployeeDraft) {},
			setupMock: func(m *MockEmployeeRepository) {
				m.On("ExistsByEmail", mock.Anything, "ada@x.com").Return(false, nil)
				m.On("ExistsByPhoneNumber", mock.Anything, "+12345678").Return(true, nil)
			},
			expectedStatus: 409,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockEmployeeRepository)
			tt.setupMock(mockRepo)

			draft := validDraft()
			tt.mutate(&draft)

			service := NewEmployeeService(mockRepo)
			employee, err := service.Create(context.Background(), draft)

			if tt.expectedStatus != 0 {
				assertAppError(t, err, tt.expectedStatus)
				assert.Nil(t, employee)
				mockRepo.AssertNotCalled(t, "Create")
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, employee)
				assert.NotEqual(t, uuid.Nil, employee.ID)
				assert.Equal(t, draft.Email, employee.Email)
				assert.True(t, employee.Salary.Equal(draft.Salary))
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestEmployeeService_Create_UniqueIdentifiers(t *testing.T) {
	mockRepo := new(MockEmployeeRepository)
	mockRepo.On("ExistsByEmail", mock.Anything, mock.Anything).Return(false, nil)
	mockRepo.On("ExistsByPhoneNumber", mock.Anything, mock.Anything).Return(false, nil)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Employee")).Return(nil)

	service := NewEmployeeService(mockRepo)

	seen := map[uuid.UUID]bool{}
	for i := 0; i < 10; i++ {
		draft := validDraft()
		employee, err := service.Create(context.Background(), draft)
		assert.NoError(t, err)
		assert.False(t, seen[employee.ID], "identifier %s assigned twice", employee.ID)
		seen[employee.ID] = true
	}
}

func TestEmployeeService_Get(t *testing.T) {
	mockRepo := new(MockEmployeeRepository)
	id := uuid.New()
	mockRepo.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

	service := NewEmployeeService(mockRepo)
	employee, err := service.Get(context.Background(), id)

	assertAppError(t, err, 404)
	assert.Nil(t, employee)
}

func TestEmployeeService_Update(t *testing.T) {
	upd := EmployeeUpdate{
		Email:       "ada@x.com",
		PhoneNumber: "+12345678",
		Position:    "Principal Engineer",
		Salary:      decimal.NewFromFloat(2000.00),
	}

	t.Run("missing record is not upserted", func(t *testing.T) {
		mockRepo := new(MockEmployeeRepository)
		id := uuid.New()
		mockRepo.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

		service := NewEmployeeService(mockRepo)
		employee, err := service.Update(context.Background(), id, upd)

		assertAppError(t, err, 404)
		assert.Nil(t, employee)
		mockRepo.AssertNotCalled(t, "Create")
		mockRepo.AssertNotCalled(t, "Update")
	})

	t.Run("unchanged email and phone skip uniqueness checks", func(t *testing.T) {
		existing := storedEmployee()
		mockRepo := new(MockEmployeeRepository)
		mockRepo.On("FindByID", mock.Anything, existing.ID).Return(existing, nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Employee")).Return(nil)

		service := NewEmployeeService(mockRepo)
		employee, err := service.Update(context.Background(), existing.ID, upd)

		assert.NoError(t, err)
		assert.Equal(t, "Principal Engineer", employee.Position)
		assert.True(t, employee.Salary.Equal(upd.Salary))
		mockRepo.AssertNotCalled(t, "ExistsByEmail")
		mockRepo.AssertNotCalled(t, "ExistsByPhoneNumber")
	})

	t.Run("changed email re-checked for uniqueness", func(t *testing.T) {
		existing := storedEmployee()
		changed := upd
		changed.Email = "taken@x.com"

		mockRepo := new(MockEmployeeRepository)
		mockRepo.On("FindByID", mock.Anything, existing.ID).Return(existing, nil)
		mockRepo.On("ExistsByEmail", mock.Anything, "taken@x.com").Return(true, nil)

		service := NewEmployeeService(mockRepo)
		employee, err := service.Update(context.Background(), existing.ID, changed)

		assertAppError(t, err, 409)
		assert.Nil(t, employee)
		mockRepo.AssertNotCalled(t, "Update")
	})

	t.Run("names and hire date are not altered", func(t *testing.T) {
		existing := storedEmployee()
		originalFirst := existing.FirstName
		originalLast := existing.LastName
		originalHire := existing.HireDate

		mockRepo := new(MockEmployeeRepository)
		mockRepo.On("FindByID", mock.Anything, existing.ID).Return(existing, nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Employee")).Return(nil)

		service := NewEmployeeService(mockRepo)
		employee, err := service.Update(context.Background(), existing.ID, upd)

		assert.NoError(t, err)
		assert.Equal(t, originalFirst, employee.FirstName)
		assert.Equal(t, originalLast, employee.LastName)
		assert.Equal(t, originalHire, employee.HireDate)
	})
}

func TestEmployeeService_Patch(t *testing.T) {
	t.Run("patching only salary leaves other fields unchanged", func(t *testing.T) {
		existing := storedEmployee()
		originalFirst := existing.FirstName
		originalLast := existing.LastName
		originalHire := existing.HireDate
		newSalary := decimal.NewFromFloat(3500.50)

		mockRepo := new(MockEmployeeRepository)
		mockRepo.On("FindByID", mock.Anything, existing.ID).Return(existing, nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Employee")).Return(nil)

		service := NewEmployeeService(mockRepo)
		employee, err := service.Patch(context.Background(), existing.ID, EmployeePatch{Salary: &newSalary})

		assert.NoError(t, err)
		assert.True(t, employee.Salary.Equal(newSalary))
		assert.Equal(t, originalFirst, employee.FirstName)
		assert.Equal(t, originalLast, employee.LastName)
		assert.Equal(t, originalHire, employee.HireDate)
	})

	t.Run("empty patch leaves the record identical", func(t *testing.T) {
		existing := storedEmployee()
		snapshot := *existing

		mockRepo := new(MockEmployeeRepository)
		mockRepo.On("FindByID", mock.Anything, existing.ID).Return(existing, nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Employee")).Return(nil)

		service := NewEmployeeService(mockRepo)
		employee, err := service.Patch(context.Background(), existing.ID, EmployeePatch{})

		assert.NoError(t, err)
		assert.Equal(t, snapshot, *employee)
	})

	t.Run("blank name patch is rejected", func(t *testing.T) {
		existing := storedEmployee()
		blank := "  "

		mockRepo := new(MockEmployeeRepository)
		mockRepo.On("FindByID", mock.Anything, existing.ID).Return(existing, nil)

		service := NewEmployeeService(mockRepo)
		employee, err := service.Patch(context.Background(), existing.ID, EmployeePatch{FirstName: &blank})

		assertAppError(t, err, 400)
		assert.Nil(t, employee)
		mockRepo.AssertNotCalled(t, "Update")
	})

	t.Run("negative salary patch is rejected", func(t *testing.T) {
		existing := storedEmployee()
		negative := decimal.NewFromInt(-5)

		mockRepo := new(MockEmployeeRepository)
		mockRepo.On("FindByID", mock.Anything, existing.ID).Return(existing, nil)

		service := NewEmployeeService(mockRepo)
		_, err := service.Patch(context.Background(), existing.ID, EmployeePatch{Salary: &negative})

		assertAppError(t, err, 400)
		mockRepo.AssertNotCalled(t, "Update")
	})
}

func TestEmployeeService_Delete(t *testing.T) {
	t.Run("deleting twice fails the second time", func(t *testing.T) {
		existing := storedEmployee()

		mockRepo := new(MockEmployeeRepository)
		mockRepo.On("FindByID", mock.Anything, existing.ID).Return(existing, nil).Once()
		mockRepo.On("Delete", mock.Anything, existing.ID).Return(nil).Once()
		mockRepo.On("FindByID", mock.Anything, existing.ID).Return(nil, gorm.ErrRecordNotFound).Once()

		service := NewEmployeeService(mockRepo)

		assert.NoError(t, service.Delete(context.Background(), existing.ID))
		err := service.Delete(context.Background(), existing.ID)
		assertAppError(t, err, 404)

		mockRepo.AssertExpectations(t)
	})
}
