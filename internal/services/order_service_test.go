package services_test

import (
	"strings"
	"testing"
	"time"

	"mandi/internal/apperrors"
	"mandi/internal/models"
	"mandi/internal/repositories"
	"mandi/internal/services"

	"github.com/stretchr/testify/assert"
)

func today() string {
	return time.Now().Format("2006-01-02")
}

func TestOrderService_CreateOrder(t *testing.T) {
	repo := repositories.NewMockOrderRepository()
	orderService := services.NewOrderService(repo, nil) // nil RabbitMQ client

	items := []models.OrderItem{
		{ItemName: "tomato", Quantity: 10, Unit: "kg"},
		{ItemName: "onion", Quantity: 5}, // unit omitted, should default
	}

	order, err := orderService.CreateOrder("hotel-1", "Grand Delhi Palace", items)
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(order.ID, "order_"))
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, today(), order.Date)
	assert.Equal(t, "", order.DealerNote)
	assert.Equal(t, "kg", order.Items[1].Unit)
	assert.False(t, order.CreatedAt.IsZero())

	// A second pending order on the same day is allowed; only a
	// completed order locks the day.
	second, err := orderService.CreateOrder("hotel-1", "Grand Delhi Palace", items)
	assert.NoError(t, err)
	assert.NotEqual(t, order.ID, second.ID)
}

func TestOrderService_CreateOrder_Validation(t *testing.T) {
	repo := repositories.NewMockOrderRepository()
	orderService := services.NewOrderService(repo, nil)

	_, err := orderService.CreateOrder("hotel-1", "Grand Delhi Palace", nil)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = orderService.CreateOrder("hotel-1", "Grand Delhi Palace", []models.OrderItem{
		{ItemName: "tomato", Quantity: -1},
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = orderService.CreateOrder("hotel-1", "Grand Delhi Palace", []models.OrderItem{
		{Quantity: 2},
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestOrderService_CreateOrder_DailyLock(t *testing.T) {
	repo := repositories.NewMockOrderRepository()
	orderService := services.NewOrderService(repo, nil)

	items := []models.OrderItem{{ItemName: "tomato", Quantity: 10, Unit: "kg"}}

	order, err := orderService.CreateOrder("hotel-1", "Grand Delhi Palace", items)
	assert.NoError(t, err)

	_, err = orderService.CompleteOrder(order.ID, "delivering at 7am")
	assert.NoError(t, err)

	// The dealer completed the day; creation is now locked for this
	// hotel but untouched for others.
	_, err = orderService.CreateOrder("hotel-1", "Grand Delhi Palace", items)
	assert.ErrorIs(t, err, apperrors.ErrDailyOrderLocked)

	_, err = orderService.CreateOrder("hotel-2", "Sea View Inn", items)
	assert.NoError(t, err)
}

func TestOrderService_ListPendingOrders(t *testing.T) {
	repo := repositories.NewMockOrderRepository()
	orderService := services.NewOrderService(repo, nil)

	base := time.Now()
	older := models.Order{
		ID: "order_1.aaaaaaaaaa", HotelID: "hotel-1", HotelName: "Grand Delhi Palace",
		Items:  []models.OrderItem{{ItemName: "tomato", Quantity: 1, Unit: "kg"}},
		Status: models.OrderStatusPending, Date: today(), CreatedAt: base.Add(-2 * time.Hour),
	}
	newer := models.Order{
		ID: "order_2.bbbbbbbbbb", HotelID: "hotel-1", HotelName: "Grand Delhi Palace",
		Items:  []models.OrderItem{{ItemName: "onion", Quantity: 2, Unit: "kg"}},
		Status: models.OrderStatusPending, Date: today(), CreatedAt: base.Add(-1 * time.Hour),
	}
	foreign := models.Order{
		ID: "order_3.cccccccccc", HotelID: "hotel-2", HotelName: "Sea View Inn",
		Items:  []models.OrderItem{{ItemName: "potato", Quantity: 3, Unit: "kg"}},
		Status: models.OrderStatusPending, Date: today(), CreatedAt: base,
	}
	assert.NoError(t, repo.Create(&older))
	assert.NoError(t, repo.Create(&newer))
	assert.NoError(t, repo.Create(&foreign))

	pending, err := orderService.ListPendingOrders("hotel-1")
	assert.NoError(t, err)
	assert.Len(t, pending, 2)
	// Most recent first.
	assert.Equal(t, newer.ID, pending[0].ID)
	assert.Equal(t, older.ID, pending[1].ID)

	// A completed order never shows up in the pending list.
	_, err = orderService.CompleteOrder(newer.ID, "")
	assert.NoError(t, err)

	pending, err = orderService.ListPendingOrders("hotel-1")
	assert.NoError(t, err)
	assert.Len(t, pending, 1)
	assert.Equal(t, older.ID, pending[0].ID)
}

func TestOrderService_GetOrder(t *testing.T) {
	repo := repositories.NewMockOrderRepository()
	orderService := services.NewOrderService(repo, nil)

	order, err := orderService.CreateOrder("hotel-1", "Grand Delhi Palace",
		[]models.OrderItem{{ItemName: "tomato", Quantity: 10, Unit: "kg"}})
	assert.NoError(t, err)

	got, err := orderService.GetOrder(order.ID, "hotel-1")
	assert.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)

	// Foreign hotel and unknown id both come back as not found.
	_, err = orderService.GetOrder(order.ID, "hotel-2")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = orderService.GetOrder("order_0.ffffffffff", "hotel-1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestOrderService_UpdateOrder(t *testing.T) {
	repo := repositories.NewMockOrderRepository()
	orderService := services.NewOrderService(repo, nil)

	order, err := orderService.CreateOrder("hotel-1", "Grand Delhi Palace",
		[]models.OrderItem{{ItemName: "tomato", Quantity: 10, Unit: "kg"}})
	assert.NoError(t, err)

	newItems := []models.OrderItem{
		{ItemName: "cabbage", Quantity: 4, Unit: "kg"},
		{ItemName: "spinach", Quantity: 2},
	}
	updated, err := orderService.UpdateOrder(order.ID, "hotel-1", newItems, "Grand Delhi Palace & Spa")
	assert.NoError(t, err)
	assert.Equal(t, "Grand Delhi Palace & Spa", updated.HotelName)
	assert.Len(t, updated.Items, 2)
	assert.Equal(t, "kg", updated.Items[1].Unit)
	// Status and creation timestamp survive the update.
	assert.Equal(t, models.OrderStatusPending, updated.Status)
	assert.Equal(t, order.CreatedAt.Unix(), updated.CreatedAt.Unix())

	_, err = orderService.UpdateOrder("order_0.ffffffffff", "hotel-1", newItems, "x")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = orderService.UpdateOrder(order.ID, "hotel-2", newItems, "x")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestOrderService_UpdateOrder_Locked(t *testing.T) {
	repo := repositories.NewMockOrderRepository()
	orderService := services.NewOrderService(repo, nil)

	order, err := orderService.CreateOrder("hotel-1", "Grand Delhi Palace",
		[]models.OrderItem{{ItemName: "tomato", Quantity: 10, Unit: "kg"}})
	assert.NoError(t, err)

	_, err = orderService.CompleteOrder(order.ID, "")
	assert.NoError(t, err)

	_, err = orderService.UpdateOrder(order.ID, "hotel-1",
		[]models.OrderItem{{ItemName: "onion", Quantity: 1, Unit: "kg"}}, "Grand Delhi Palace")
	assert.ErrorIs(t, err, apperrors.ErrOrderLocked)
}

func TestOrderService_DeleteOrder(t *testing.T) {
	repo := repositories.NewMockOrderRepository()
	orderService := services.NewOrderService(repo, nil)

	order, err := orderService.CreateOrder("hotel-1", "Grand Delhi Palace",
		[]models.OrderItem{{ItemName: "tomato", Quantity: 10, Unit: "kg"}})
	assert.NoError(t, err)

	err = orderService.DeleteOrder(order.ID, "hotel-2")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	err = orderService.DeleteOrder("order_0.ffffffffff", "hotel-1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	err = orderService.DeleteOrder(order.ID, "hotel-1")
	assert.NoError(t, err)

	pending, err := orderService.ListPendingOrders("hotel-1")
	assert.NoError(t, err)
	assert.Empty(t, pending)
}

func TestOrderService_DeleteOrder_Locked(t *testing.T) {
	repo := repositories.NewMockOrderRepository()
	orderService := services.NewOrderService(repo, nil)

	order, err := orderService.CreateOrder("hotel-1", "Grand Delhi Palace",
		[]models.OrderItem{{ItemName: "tomato", Quantity: 10, Unit: "kg"}})
	assert.NoError(t, err)

	_, err = orderService.CompleteOrder(order.ID, "")
	assert.NoError(t, err)

	// Completed orders are immutable, including against deletion.
	err = orderService.DeleteOrder(order.ID, "hotel-1")
	assert.ErrorIs(t, err, apperrors.ErrOrderLocked)
}

func TestOrderService_CompleteOrder(t *testing.T) {
	repo := repositories.NewMockOrderRepository()
	orderService := services.NewOrderService(repo, nil)

	order, err := orderService.CreateOrder("hotel-1", "Grand Delhi Palace",
		[]models.OrderItem{{ItemName: "tomato", Quantity: 10, Unit: "kg"}})
	assert.NoError(t, err)

	completed, err := orderService.CompleteOrder(order.ID, "delivering at 7am")
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusCompleted, completed.Status)
	assert.Equal(t, "delivering at 7am", completed.DealerNote)

	// Completing again is a no-op; the original note is kept.
	again, err := orderService.CompleteOrder(order.ID, "different note")
	assert.NoError(t, err)
	assert.Equal(t, "delivering at 7am", again.DealerNote)

	_, err = orderService.CompleteOrder("order_0.ffffffffff", "")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
