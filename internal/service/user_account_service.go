package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"staffdesk/internal/errors"
	"staffdesk/internal/model"
	"staffdesk/internal/repository"
)

const bcryptCost = 10

// UserAccountDraft carries credential fields submitted for account creation
// or update. Password and Role are optional on update.
type UserAccountDraft struct {
	Username string
	Password string
	Role     string
}

// UserAccountService validates account requests and coordinates persistence.
type UserAccountService struct {
	repo repository.UserAccountRepository
}

// NewUserAccountService creates a new user-account service.
func NewUserAccountService(repo repository.UserAccountRepository) *UserAccountService {
	return &UserAccountService{repo: repo}
}

// ListUsers returns every user account.
func (s *UserAccountService) ListUsers(ctx context.Context) ([]model.UserAccount, error) {
	return s.repo.List(ctx)
}

// GetUser returns the account with the given id.
func (s *UserAccountService) GetUser(ctx context.Context, id uuid.UUID) (*model.UserAccount, error) {
	account, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NotFound(fmt.Sprintf("User account with id %s not found", id))
		}
		return nil, err
	}
	return account, nil
}

// CreateUser creates an account linked to the given employee. The raw
// password is hashed before storage and the role defaults to USER.
// One account per employee: a second account for the same employee conflicts.
func (s *UserAccountService) CreateUser(ctx context.Context, draft UserAccountDraft, employee *model.Employee) (*model.UserAccount, error) {
	taken, err := s.repo.ExistsByUsername(ctx, draft.Username)
	if err != nil {
		return nil, fmt.Errorf("check username uniqueness: %w", err)
	}
	if taken {
		return nil, errors.Conflict("Username already exists")
	}

	linked, err := s.repo.ExistsByEmployeeID(ctx, employee.ID)
	if err != nil {
		return nil, fmt.Errorf("check employee link: %w", err)
	}
	if linked {
		return nil, errors.Conflict(fmt.Sprintf("Employee %s already has a user account", employee.ID))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(draft.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	role := draft.Role
	if role == "" {
		role = model.DefaultRole
	}

	account := &model.UserAccount{
		ID:           uuid.New(),
		Username:     draft.Username,
		PasswordHash: string(hash),
		Role:         role,
		EmployeeID:   employee.ID,
	}

	if err := s.repo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("create user account: %w", err)
	}
	return account, nil
}

// UpdateUser updates an existing account. Username uniqueness is re-checked
// only when it changes; password is re-hashed only when a non-empty value is
// supplied; role is replaced only when non-empty.
func (s *UserAccountService) UpdateUser(ctx context.Context, id uuid.UUID, draft UserAccountDraft) (*model.UserAccount, error) {
	existing, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if draft.Username != existing.Username {
		taken, err := s.repo.ExistsByUsername(ctx, draft.Username)
		if err != nil {
			return nil, fmt.Errorf("check username uniqueness: %w", err)
		}
		if taken {
			return nil, errors.Conflict("Username already exists")
		}
	}

	existing.Username = draft.Username
	if draft.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(draft.Password), bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		existing.PasswordHash = string(hash)
	}
	if draft.Role != "" {
		existing.Role = draft.Role
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("update user account: %w", err)
	}
	return existing, nil
}

// DeleteUser removes an existing account.
func (s *UserAccountService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetUser(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user account: %w", err)
	}
	return nil
}

// FindByUsername returns the account with the given username.
func (s *UserAccountService) FindByUsername(ctx context.Context, username string) (*model.UserAccount, error) {
	account, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NotFound("User not found with username: " + username)
		}
		return nil, err
	}
	return account, nil
}
