package repositories

import (
	"fmt"
	"sort"
	"sync"

	"mandi/internal/apperrors"
	"mandi/internal/models"
)

// MockOrderRepository is an in-memory implementation of OrderRepository.
// It mirrors the GORM implementation's semantics (ownership scoping,
// newest-first pending lists) so service tests exercise the same rules.
type MockOrderRepository struct {
	orders map[string]models.Order
	mu     sync.RWMutex
}

// NewMockOrderRepository creates a new instance of MockOrderRepository.
func NewMockOrderRepository() *MockOrderRepository {
	return &MockOrderRepository{
		orders: make(map[string]models.Order),
	}
}

// Create adds a new order.
func (r *MockOrderRepository) Create(order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders[order.ID] = cloneOrder(*order)
	return nil
}

// GetByID returns an order owned by the given hotel.
func (r *MockOrderRepository) GetByID(orderID, hotelID string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[orderID]
	if !ok || order.HotelID != hotelID {
		return nil, fmt.Errorf("order with ID %s: %w", orderID, apperrors.ErrNotFound)
	}
	copied := cloneOrder(order)
	return &copied, nil
}

// GetAnyByID returns an order without hotel scoping.
func (r *MockOrderRepository) GetAnyByID(orderID string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[orderID]
	if !ok {
		return nil, fmt.Errorf("order with ID %s: %w", orderID, apperrors.ErrNotFound)
	}
	copied := cloneOrder(order)
	return &copied, nil
}

// ListPendingByHotel returns the hotel's non-completed orders, most
// recent first.
func (r *MockOrderRepository) ListPendingByHotel(hotelID string) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pending := make([]models.Order, 0)
	for _, order := range r.orders {
		if order.HotelID == hotelID && order.Status != models.OrderStatusCompleted {
			pending = append(pending, cloneOrder(order))
		}
	}
	sort.Slice(pending, func(i, j int) bool {
		return pending[i].CreatedAt.After(pending[j].CreatedAt)
	})
	return pending, nil
}

// ListPendingByDate returns all pending orders for the given day.
func (r *MockOrderRepository) ListPendingByDate(date string) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pending := make([]models.Order, 0)
	for _, order := range r.orders {
		if order.Status == models.OrderStatusPending && order.Date == date {
			pending = append(pending, cloneOrder(order))
		}
	}
	return pending, nil
}

// HasCompletedOrder reports whether a completed order locks the hotel's day.
func (r *MockOrderRepository) HasCompletedOrder(hotelID, date string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, order := range r.orders {
		if order.HotelID == hotelID && order.Date == date && order.Status == models.OrderStatusCompleted {
			return true, nil
		}
	}
	return false, nil
}

// Update replaces items, hotel name and date of an existing order.
func (r *MockOrderRepository) Update(order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.orders[order.ID]
	if !ok {
		return fmt.Errorf("order with ID %s: %w", order.ID, apperrors.ErrNotFound)
	}
	existing.HotelName = order.HotelName
	existing.Date = order.Date
	existing.Items = cloneItems(order.Items)
	r.orders[order.ID] = existing
	return nil
}

// Delete removes an order owned by the hotel.
func (r *MockOrderRepository) Delete(orderID, hotelID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[orderID]
	if !ok || order.HotelID != hotelID {
		return fmt.Errorf("order with ID %s: %w", orderID, apperrors.ErrNotFound)
	}
	delete(r.orders, orderID)
	return nil
}

// Complete marks an order completed with the dealer's note.
func (r *MockOrderRepository) Complete(orderID, note string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[orderID]
	if !ok {
		return fmt.Errorf("order with ID %s: %w", orderID, apperrors.ErrNotFound)
	}
	order.Status = models.OrderStatusCompleted
	order.DealerNote = note
	r.orders[orderID] = order
	return nil
}

// cloneOrder copies an order including its item slice so callers cannot
// mutate the repository's state through returned values.
func cloneOrder(order models.Order) models.Order {
	order.Items = cloneItems(order.Items)
	return order
}

func cloneItems(items []models.OrderItem) []models.OrderItem {
	copied := make([]models.OrderItem, len(items))
	copy(copied, items)
	return copied
}
