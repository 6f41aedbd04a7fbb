package services

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"mandi/internal/apperrors"
	"mandi/internal/models"
	"mandi/internal/repositories"
	"mandi/pkg/rabbitmq"

	"github.com/google/uuid"
)

// OrderService is the order lifecycle manager. The state machine per
// (hotel, calendar day) is NONE -> PENDING -> COMPLETED: pending orders
// may be updated or deleted by their owning hotel, a completed order is
// terminal and locks the whole day for that hotel.
type OrderService struct {
	orderRepo repositories.OrderRepository
	mqClient  *rabbitmq.Client
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, mqClient *rabbitmq.Client) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		mqClient:  mqClient,
	}
}

// CreateOrder creates a pending order for the hotel's current day. It
// fails with ErrDailyOrderLocked once the dealer has completed an order
// for that (hotel, day). A second pending order on the same day is
// allowed; only completion locks the day.
func (s *OrderService) CreateOrder(hotelID, hotelName string, items []models.OrderItem) (*models.Order, error) {
	if err := normalizeItems(items); err != nil {
		return nil, err
	}

	today := currentDate()
	locked, err := s.orderRepo.HasCompletedOrder(hotelID, today)
	if err != nil {
		return nil, fmt.Errorf("failed to check daily lock for hotel %s: %w", hotelID, err)
	}
	if locked {
		return nil, fmt.Errorf("hotel %s on %s: %w", hotelID, today, apperrors.ErrDailyOrderLocked)
	}

	order := &models.Order{
		ID:         newOrderID(),
		HotelID:    hotelID,
		HotelName:  hotelName,
		Items:      items,
		Status:     models.OrderStatusPending,
		DealerNote: "",
		Date:       today,
		CreatedAt:  time.Now(),
	}

	if err := s.orderRepo.Create(order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.publishOrderEvent("order.created", order)

	return order, nil
}

// ListPendingOrders returns the hotel's non-completed orders, most
// recent first. Completed orders never appear here.
func (s *OrderService) ListPendingOrders(hotelID string) ([]models.Order, error) {
	return s.orderRepo.ListPendingByHotel(hotelID)
}

// GetOrder returns a single order owned by the hotel.
func (s *OrderService) GetOrder(orderID, hotelID string) (*models.Order, error) {
	return s.orderRepo.GetByID(orderID, hotelID)
}

// UpdateOrder replaces the items and hotel name of a pending order and
// refreshes its date to today. Status and creation timestamp are kept.
// A completed order fails with ErrOrderLocked.
func (s *OrderService) UpdateOrder(orderID, hotelID string, items []models.OrderItem, hotelName string) (*models.Order, error) {
	if err := normalizeItems(items); err != nil {
		return nil, err
	}

	existing, err := s.orderRepo.GetByID(orderID, hotelID)
	if err != nil {
		return nil, err
	}
	if existing.Status == models.OrderStatusCompleted {
		return nil, fmt.Errorf("order %s: %w", orderID, apperrors.ErrOrderLocked)
	}

	existing.Items = items
	existing.HotelName = hotelName
	existing.Date = currentDate()

	if err := s.orderRepo.Update(existing); err != nil {
		return nil, fmt.Errorf("failed to update order %s: %w", orderID, err)
	}

	return s.orderRepo.GetByID(orderID, hotelID)
}

// DeleteOrder removes a pending order owned by the hotel. Completed
// orders are immutable, so deletion is refused with ErrOrderLocked
// just like update.
func (s *OrderService) DeleteOrder(orderID, hotelID string) error {
	existing, err := s.orderRepo.GetByID(orderID, hotelID)
	if err != nil {
		return err
	}
	if existing.Status == models.OrderStatusCompleted {
		return fmt.Errorf("order %s: %w", orderID, apperrors.ErrOrderLocked)
	}
	return s.orderRepo.Delete(orderID, hotelID)
}

// CompleteOrder is the dealer-side transition to completed; it is never
// exposed to hotels. Completing an already completed order is a no-op.
func (s *OrderService) CompleteOrder(orderID, note string) (*models.Order, error) {
	existing, err := s.orderRepo.GetAnyByID(orderID)
	if err != nil {
		return nil, err
	}
	if existing.Status == models.OrderStatusCompleted {
		return existing, nil
	}

	if err := s.orderRepo.Complete(orderID, note); err != nil {
		return nil, fmt.Errorf("failed to complete order %s: %w", orderID, err)
	}

	completed, err := s.orderRepo.GetAnyByID(orderID)
	if err != nil {
		return nil, err
	}

	s.publishOrderEvent("order.completed", completed)

	return completed, nil
}

// publishOrderEvent publishes an order lifecycle event. Publishing is
// best effort: a missing broker or a publish failure is logged, never
// surfaced to the caller.
func (s *OrderService) publishOrderEvent(event string, order *models.Order) {
	if s.mqClient == nil {
		log.Println("RabbitMQ client is not initialized. Skipping message publication.")
		return
	}

	body, err := json.Marshal(map[string]interface{}{
		"orderId":   order.ID,
		"hotelId":   order.HotelID,
		"hotelName": order.HotelName,
		"status":    order.Status,
		"date":      order.Date,
	})
	if err != nil {
		log.Printf("Failed to marshal %s event for order %s: %v", event, order.ID, err)
		return
	}

	if err := s.mqClient.PublishOrderEvent(event, body); err != nil {
		log.Printf("Warning: failed to publish %s event for order %s: %v", event, order.ID, err)
		return
	}
	log.Printf("Published %s event for order %s", event, order.ID)
}

// normalizeItems rejects empty item lists and negative quantities and
// applies the default unit.
func normalizeItems(items []models.OrderItem) error {
	if len(items) == 0 {
		return fmt.Errorf("order needs at least one item: %w", apperrors.ErrValidation)
	}
	for i := range items {
		if items[i].ItemName == "" {
			return fmt.Errorf("item %d has no name: %w", i, apperrors.ErrValidation)
		}
		if items[i].Quantity < 0 {
			return fmt.Errorf("item %q has negative quantity: %w", items[i].ItemName, apperrors.ErrValidation)
		}
		if items[i].Unit == "" {
			items[i].Unit = models.DefaultUnit
		}
	}
	return nil
}

// newOrderID mirrors the historical id format so existing clients keep
// working: order_<unix millis>.<10 hex chars>.
func newOrderID() string {
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:10]
	return fmt.Sprintf("order_%d.%s", time.Now().UnixMilli(), suffix)
}

// currentDate is the server-local calendar day used as the order's
// lifecycle key.
func currentDate() string {
	return time.Now().Format("2006-01-02")
}
