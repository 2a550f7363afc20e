package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultRole is assigned to accounts created without an explicit role.
const DefaultRole = "USER"

// UserAccount represents login credentials linked one-to-one to an Employee.
type UserAccount struct {
	ID           uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:50;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role         string    `json:"role" gorm:"size:20;not null;default:'USER'"`
	EmployeeID   uuid.UUID `json:"employee_id" gorm:"type:char(36);uniqueIndex;not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Employee Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID"`
}

// BeforeCreate sets UUID before creating the record.
func (u *UserAccount) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
