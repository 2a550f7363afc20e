package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Employee represents an employee record.
type Employee struct {
	ID          uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	FirstName   string          `json:"firstName" gorm:"size:100;not null"`
	LastName    string          `json:"lastName" gorm:"size:100;not null"`
	Email       string          `json:"email" gorm:"uniqueIndex;size:100;not null"`
	PhoneNumber string          `json:"phoneNumber" gorm:"uniqueIndex;size:15;not null"`
	Position    string          `json:"position" gorm:"size:50;not null"`
	Salary      decimal.Decimal `json:"salary" gorm:"type:decimal(12,2);not null"`
	HireDate    Date            `json:"hireDate" gorm:"type:date;not null"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (e *Employee) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
