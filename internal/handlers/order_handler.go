package handlers

import (
	"log"

	"mandi/internal/models"
	"mandi/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for the hotel-facing order
// lifecycle. All routes assume the hotel middleware has populated the
// hotel_id / hotel_name locals.
type OrderHandler struct {
	service  *services.OrderService
	validate *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Post("/", h.HandleCreateOrder)
	orderRoutes.Get("/", h.HandleListPendingOrders)
	orderRoutes.Get("/:id", h.HandleGetOrder)
	orderRoutes.Put("/:id", h.HandleUpdateOrder)
	orderRoutes.Delete("/:id", h.HandleDeleteOrder)
}

// OrderItemRequest is one line of an order create/update request.
type OrderItemRequest struct {
	ItemName string  `json:"itemName" validate:"required"`
	Quantity float64 `json:"quantity" validate:"gte=0"`
	Unit     string  `json:"unit"`
}

// OrderRequest represents the request body for creating or updating an
// order. HotelName is optional; the authenticated hotel's name is used
// when it is absent.
type OrderRequest struct {
	HotelName string             `json:"hotelName"`
	Items     []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

func (r *OrderRequest) toItems() []models.OrderItem {
	items := make([]models.OrderItem, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, models.OrderItem{
			ItemName: item.ItemName,
			Quantity: item.Quantity,
			Unit:     item.Unit,
		})
	}
	return items
}

// principal reads the authenticated hotel from the request locals.
func principal(c *fiber.Ctx) (hotelID, hotelName string) {
	hotelID, _ = c.Locals("hotel_id").(string)
	hotelName, _ = c.Locals("hotel_name").(string)
	return hotelID, hotelName
}

// HandleCreateOrder creates a pending order for the hotel's current day.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var req OrderRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing order request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationResponse(c, err)
	}

	hotelID, hotelName := principal(c)
	if req.HotelName != "" {
		hotelName = req.HotelName
	}

	order, err := h.service.CreateOrder(hotelID, hotelName, req.toItems())
	if err != nil {
		log.Printf("Error creating order for hotel %s: %v", hotelID, err)
		return errorResponse(c, "Could not create order", err)
	}

	return c.Status(fiber.StatusCreated).JSON(order)
}

// HandleListPendingOrders returns the hotel's non-completed orders,
// most recent first.
func (h *OrderHandler) HandleListPendingOrders(c *fiber.Ctx) error {
	hotelID, _ := principal(c)

	orders, err := h.service.ListPendingOrders(hotelID)
	if err != nil {
		log.Printf("Error listing orders for hotel %s: %v", hotelID, err)
		return errorResponse(c, "Could not retrieve orders", err)
	}
	return c.JSON(orders)
}

// HandleGetOrder returns a single order owned by the hotel.
func (h *OrderHandler) HandleGetOrder(c *fiber.Ctx) error {
	orderID := c.Params("id")
	hotelID, _ := principal(c)

	order, err := h.service.GetOrder(orderID, hotelID)
	if err != nil {
		log.Printf("Error getting order %s for hotel %s: %v", orderID, hotelID, err)
		return errorResponse(c, "Could not retrieve order", err)
	}
	return c.JSON(order)
}

// HandleUpdateOrder replaces the items and hotel name of a pending
// order.
func (h *OrderHandler) HandleUpdateOrder(c *fiber.Ctx) error {
	orderID := c.Params("id")

	var req OrderRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing order update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationResponse(c, err)
	}

	hotelID, hotelName := principal(c)
	if req.HotelName != "" {
		hotelName = req.HotelName
	}

	order, err := h.service.UpdateOrder(orderID, hotelID, req.toItems(), hotelName)
	if err != nil {
		log.Printf("Error updating order %s for hotel %s: %v", orderID, hotelID, err)
		return errorResponse(c, "Could not update order", err)
	}
	return c.JSON(order)
}

// HandleDeleteOrder deletes a pending order owned by the hotel.
func (h *OrderHandler) HandleDeleteOrder(c *fiber.Ctx) error {
	orderID := c.Params("id")
	hotelID, _ := principal(c)

	if err := h.service.DeleteOrder(orderID, hotelID); err != nil {
		log.Printf("Error deleting order %s for hotel %s: %v", orderID, hotelID, err)
		return errorResponse(c, "Could not delete order", err)
	}
	return c.JSON(fiber.Map{
		"message": "Order deleted",
	})
}
