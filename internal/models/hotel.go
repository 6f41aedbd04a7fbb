package models

import "gorm.io/gorm"

// Hotel account statuses. Inactive hotels cannot log in or place orders.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Hotel represents a buyer account placing daily produce orders.
type Hotel struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name       string `json:"name" gorm:"type:varchar(255)" validate:"required,min=2,max=255"`
	Email      string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password   string `json:"-" gorm:"type:varchar(255)" validate:"required,min=6"` // bcrypt hash, never serialised
	Address    string `json:"address" validate:"required"`
	Contact    string `json:"contact" validate:"required"`
	Status     string `json:"status" gorm:"type:varchar(20);default:active"`
	gorm.Model `json:"-"` // CreatedAt, UpdatedAt, DeletedAt
}
