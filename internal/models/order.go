package models

import "time"

// Order statuses. An order is created pending and is moved to completed
// exclusively by the dealer; completed is terminal.
const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
)

// DefaultUnit is applied to order items that do not specify a unit.
const DefaultUnit = "kg"

// OrderItem is a single line within an order. Item names are free text
// (not foreign keys into the vegetable catalog).
type OrderItem struct {
	ID       uint    `json:"-" gorm:"primaryKey"`
	OrderID  string  `json:"-" gorm:"index;type:varchar(64)"`
	ItemName string  `json:"itemName" validate:"required"`
	Quantity float64 `json:"quantity" validate:"gte=0"`
	Unit     string  `json:"unit"`
}

// Order is a hotel's produce order for one calendar day.
type Order struct {
	ID         string      `json:"id" gorm:"primaryKey;type:varchar(64)"`
	HotelID    string      `json:"hotelId" gorm:"index;type:varchar(36)"`
	HotelName  string      `json:"hotelName"`
	Items      []OrderItem `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" validate:"required,min=1,dive"`
	Status     string      `json:"status" gorm:"index;type:varchar(20);default:pending"`
	DealerNote string      `json:"dealerNote"`
	Date       string      `json:"date" gorm:"index;type:varchar(10)"` // YYYY-MM-DD, server-local
	CreatedAt  time.Time   `json:"timestamp"`
}
