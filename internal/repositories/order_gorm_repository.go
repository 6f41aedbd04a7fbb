package repositories

import (
	"fmt"

	"mandi/internal/apperrors"
	"mandi/internal/models"

	"gorm.io/gorm"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// Create inserts a new order together with its items.
func (r *GORMOrderRepository) Create(order *models.Order) error {
	if err := r.db.Create(order).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// GetByID retrieves a single order owned by the given hotel.
func (r *GORMOrderRepository) GetByID(orderID, hotelID string) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Items").First(&order, "id = ? AND hotel_id = ?", orderID, hotelID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("order with ID %s: %w", orderID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get order %s: %w", orderID, err)
	}
	return &order, nil
}

// GetAnyByID retrieves an order without hotel scoping. Dealer-side only.
func (r *GORMOrderRepository) GetAnyByID(orderID string) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Items").First(&order, "id = ?", orderID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("order with ID %s: %w", orderID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get order %s: %w", orderID, err)
	}
	return &order, nil
}

// ListPendingByHotel returns the hotel's non-completed orders, most
// recent first.
func (r *GORMOrderRepository) ListPendingByHotel(hotelID string) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Items").
		Where("hotel_id = ? AND status <> ?", hotelID, models.OrderStatusCompleted).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list pending orders for hotel %s: %w", hotelID, err)
	}
	return orders, nil
}

// ListPendingByDate returns every hotel's pending orders for a calendar
// day. Used by the dealer dashboard rollup.
func (r *GORMOrderRepository) ListPendingByDate(date string) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Items").
		Where("status = ? AND date = ?", models.OrderStatusPending, date).
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list pending orders for %s: %w", date, err)
	}
	return orders, nil
}

// HasCompletedOrder reports whether the hotel's day is already locked by
// a dealer-completed order.
func (r *GORMOrderRepository) HasCompletedOrder(hotelID, date string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Order{}).
		Where("hotel_id = ? AND date = ? AND status = ?", hotelID, date, models.OrderStatusCompleted).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check completed order for hotel %s on %s: %w", hotelID, date, err)
	}
	return count > 0, nil
}

// Update replaces the order's items, hotel name and date. Status and
// creation timestamp are left untouched.
func (r *GORMOrderRepository) Update(order *models.Order) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Order{}).
			Where("id = ?", order.ID).
			Updates(map[string]interface{}{
				"hotel_name": order.HotelName,
				"date":       order.Date,
			})
		if res.Error != nil {
			return fmt.Errorf("failed to update order %s: %w", order.ID, res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("order with ID %s: %w", order.ID, apperrors.ErrNotFound)
		}

		// Replace the item rows wholesale; the request carries the full list.
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
			return fmt.Errorf("failed to clear items of order %s: %w", order.ID, err)
		}
		for i := range order.Items {
			order.Items[i].ID = 0
			order.Items[i].OrderID = order.ID
		}
		if err := tx.Create(&order.Items).Error; err != nil {
			return fmt.Errorf("failed to insert items of order %s: %w", order.ID, err)
		}
		return nil
	})
}

// Delete removes the order and its items if owned by the hotel.
func (r *GORMOrderRepository) Delete(orderID, hotelID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.Order{}, "id = ? AND hotel_id = ?", orderID, hotelID)
		if res.Error != nil {
			return fmt.Errorf("failed to delete order %s: %w", orderID, res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("order with ID %s: %w", orderID, apperrors.ErrNotFound)
		}
		if err := tx.Where("order_id = ?", orderID).Delete(&models.OrderItem{}).Error; err != nil {
			return fmt.Errorf("failed to delete items of order %s: %w", orderID, err)
		}
		return nil
	})
}

// Complete marks the order completed and stores the dealer's note.
func (r *GORMOrderRepository) Complete(orderID, note string) error {
	res := r.db.Model(&models.Order{}).
		Where("id = ?", orderID).
		Updates(map[string]interface{}{
			"status":      models.OrderStatusCompleted,
			"dealer_note": note,
		})
	if res.Error != nil {
		return fmt.Errorf("failed to complete order %s: %w", orderID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("order with ID %s: %w", orderID, apperrors.ErrNotFound)
	}
	return nil
}
