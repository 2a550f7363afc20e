package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"staffdesk/internal/model"
)

// UserAccountRepository defines user-account persistence operations.
type UserAccountRepository interface {
	Create(ctx context.Context, account *model.UserAccount) error
	Update(ctx context.Context, account *model.UserAccount) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.UserAccount, error)
	FindByUsername(ctx context.Context, username string) (*model.UserAccount, error)
	List(ctx context.Context) ([]model.UserAccount, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmployeeID(ctx context.Context, employeeID uuid.UUID) (bool, error)
}

type userAccountRepository struct {
	db *gorm.DB
}

// NewUserAccountRepository builds a GORM-backed repository.
func NewUserAccountRepository(db *gorm.DB) UserAccountRepository {
	return &userAccountRepository{db: db}
}

func (r *userAccountRepository) Create(ctx context.Context, account *model.UserAccount) error {
	return r.db.WithContext(ctx).Create(account).Error
}

func (r *userAccountRepository) Update(ctx context.Context, account *model.UserAccount) error {
	return r.db.WithContext(ctx).Save(account).Error
}

func (r *userAccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.UserAccount, error) {
	var account model.UserAccount
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *userAccountRepository) FindByUsername(ctx context.Context, username string) (*model.UserAccount, error) {
	var account model.UserAccount
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *userAccountRepository) List(ctx context.Context) ([]model.UserAccount, error) {
	var accounts []model.UserAccount
	if err := r.db.WithContext(ctx).Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}

func (r *userAccountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.UserAccount{}).Error
}

func (r *userAccountRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.UserAccount{}).
		Where("username = ?", username).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *userAccountRepository) ExistsByEmployeeID(ctx context.Context, employeeID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.UserAccount{}).
		Where("employee_id = ?", employeeID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
