package repositories

import (
	"mandi/internal/models"
)

// OrderRepository defines the interface for order data access. All
// hotel-facing mutations are keyed on (orderID, hotelID) so a hotel can
// never touch another hotel's orders; the dealer-side operations
// (GetAnyByID, Complete) are deliberately unscoped.
type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(orderID, hotelID string) (*models.Order, error)
	GetAnyByID(orderID string) (*models.Order, error)
	ListPendingByHotel(hotelID string) ([]models.Order, error)
	ListPendingByDate(date string) ([]models.Order, error)
	HasCompletedOrder(hotelID, date string) (bool, error)
	Update(order *models.Order) error
	Delete(orderID, hotelID string) error
	Complete(orderID, note string) error
}
