package models

import "gorm.io/gorm"

// Vegetable is a catalog entry. Orders reference vegetables by free-text
// item name, not by id, so no relation is enforced towards Order.
type Vegetable struct {
	ID         string  `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name       string  `json:"name" gorm:"index;type:varchar(255)" validate:"required,min=2,max=255"`
	Price      float64 `json:"price" validate:"required,gt=0"`
	gorm.Model `json:"-"`
}
