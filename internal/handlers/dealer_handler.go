package handlers

import (
	"log"
	"time"

	"mandi/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// DealerHandler handles the dealer-facing surface: login, the demand
// dashboard and order completion.
type DealerHandler struct {
	authService      *services.AuthService
	orderService     *services.OrderService
	dashboardService *services.DashboardService
	validate         *validator.Validate
}

// NewDealerHandler creates a new DealerHandler.
func NewDealerHandler(authService *services.AuthService, orderService *services.OrderService, dashboardService *services.DashboardService) *DealerHandler {
	return &DealerHandler{
		authService:      authService,
		orderService:     orderService,
		dashboardService: dashboardService,
		validate:         validator.New(),
	}
}

// RegisterRoutes registers the dealer routes. Login is public; the
// dashboard and completion routes sit behind the dealer middleware.
func (h *DealerHandler) RegisterRoutes(router fiber.Router, dealerAuth fiber.Handler) {
	dealerRoutes := router.Group("/dealer")
	dealerRoutes.Post("/login", h.HandleLogin)

	protected := dealerRoutes.Group("", dealerAuth)
	protected.Get("/dashboard", h.HandleDashboard)
	protected.Patch("/orders/:id/complete", h.HandleCompleteOrder)
}

// HandleLogin verifies dealer credentials and issues a bearer token.
func (h *DealerHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing dealer login body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationResponse(c, err)
	}

	dealer, token, err := h.authService.LoginDealer(req.Email, req.Password)
	if err != nil {
		log.Printf("Error during dealer login for %s: %v", req.Email, err)
		return errorResponse(c, "Authentication failed", err)
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"dealer":  dealer,
		"token":   token,
	})
}

// HandleDashboard returns the aggregated pending demand for a day. The
// optional date query parameter must be YYYY-MM-DD; it defaults to the
// current server day.
func (h *DealerHandler) HandleDashboard(c *fiber.Ctx) error {
	date := c.Query("date")
	if date != "" {
		if _, err := time.Parse("2006-01-02", date); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid date, expected YYYY-MM-DD",
				"error":   err.Error(),
			})
		}
	}

	report, err := h.dashboardService.Dashboard(date)
	if err != nil {
		log.Printf("Error building dashboard for %s: %v", date, err)
		return errorResponse(c, "Could not build dashboard", err)
	}
	return c.JSON(report)
}

// CompleteOrderRequest carries the optional dealer note attached when
// finalizing an order.
type CompleteOrderRequest struct {
	DealerNote string `json:"dealerNote"`
}

// HandleCompleteOrder finalizes a hotel's order, locking its day. The
// transition is idempotent: completing a completed order is a no-op.
func (h *DealerHandler) HandleCompleteOrder(c *fiber.Ctx) error {
	orderID := c.Params("id")

	var req CompleteOrderRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			log.Printf("Error parsing complete order body: %v", err)
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid request body",
				"error":   err.Error(),
			})
		}
	}

	order, err := h.orderService.CompleteOrder(orderID, req.DealerNote)
	if err != nil {
		log.Printf("Error completing order %s: %v", orderID, err)
		return errorResponse(c, "Could not complete order", err)
	}
	return c.JSON(order)
}
