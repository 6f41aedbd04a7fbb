package models

import "gorm.io/gorm"

// Dealer represents the supplier account. There is normally a single
// dealer (or a handful), with the same lifecycle shape as Hotel.
type Dealer struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name       string `json:"name" gorm:"type:varchar(255)" validate:"required,min=2,max=255"`
	Email      string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password   string `json:"-" gorm:"type:varchar(255)" validate:"required,min=6"` // bcrypt hash, never serialised
	Contact    string `json:"contact" validate:"required"`
	Status     string `json:"status" gorm:"type:varchar(20);default:active"`
	gorm.Model `json:"-"`
}
