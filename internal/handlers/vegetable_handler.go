package handlers

import (
	"log"

	"mandi/internal/models"
	"mandi/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// VegetableHandler handles HTTP requests for the vegetable catalog.
type VegetableHandler struct {
	service  *services.VegetableService
	validate *validator.Validate
}

// NewVegetableHandler creates a new VegetableHandler.
func NewVegetableHandler(service *services.VegetableService) *VegetableHandler {
	return &VegetableHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the vegetable routes with the Fiber app.
func (h *VegetableHandler) RegisterRoutes(router fiber.Router) {
	vegRoutes := router.Group("/vegetables")
	vegRoutes.Post("/", h.HandleCreateVegetables)
	vegRoutes.Get("/", h.HandleGetVegetables)
	vegRoutes.Get("/:id", h.HandleGetVegetable)
	vegRoutes.Put("/:id", h.HandleUpdateVegetable)
	vegRoutes.Delete("/:id", h.HandleDeleteVegetable)
}

// VegetableRequest represents one catalog entry in a create or update
// request.
type VegetableRequest struct {
	Name  string  `json:"name" validate:"required,min=2,max=255"`
	Price float64 `json:"price" validate:"required,gt=0"`
}

// HandleCreateVegetables adds a batch of catalog entries from an array
// body; ids are generated automatically.
func (h *VegetableHandler) HandleCreateVegetables(c *fiber.Ctx) error {
	var reqs []VegetableRequest
	if err := c.BodyParser(&reqs); err != nil {
		log.Printf("Error parsing vegetables request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body, expected an array of vegetables",
			"error":   err.Error(),
		})
	}
	if len(reqs) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "At least one vegetable is required",
		})
	}

	veggies := make([]models.Vegetable, 0, len(reqs))
	for i := range reqs {
		if err := h.validate.Struct(reqs[i]); err != nil {
			return validationResponse(c, err)
		}
		veggies = append(veggies, models.Vegetable{
			Name:  reqs[i].Name,
			Price: reqs[i].Price,
		})
	}

	created, err := h.service.CreateVegetables(veggies)
	if err != nil {
		log.Printf("Error creating vegetables: %v", err)
		return errorResponse(c, "Could not create vegetables", err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// HandleGetVegetables lists the catalog with an optional name filter.
func (h *VegetableHandler) HandleGetVegetables(c *fiber.Ctx) error {
	veggies, err := h.service.GetAllVegetables(c.Query("name"))
	if err != nil {
		log.Printf("Error getting vegetables: %v", err)
		return errorResponse(c, "Could not retrieve vegetables", err)
	}
	return c.JSON(veggies)
}

// HandleGetVegetable returns a single catalog entry by its ID.
func (h *VegetableHandler) HandleGetVegetable(c *fiber.Ctx) error {
	id := c.Params("id")
	veg, err := h.service.GetVegetable(id)
	if err != nil {
		log.Printf("Error getting vegetable %s: %v", id, err)
		return errorResponse(c, "Could not retrieve vegetable", err)
	}
	return c.JSON(veg)
}

// HandleUpdateVegetable replaces a catalog entry's name and price.
func (h *VegetableHandler) HandleUpdateVegetable(c *fiber.Ctx) error {
	id := c.Params("id")

	var req VegetableRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing vegetable update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationResponse(c, err)
	}

	veg, err := h.service.UpdateVegetable(id, models.Vegetable{
		Name:  req.Name,
		Price: req.Price,
	})
	if err != nil {
		log.Printf("Error updating vegetable %s: %v", id, err)
		return errorResponse(c, "Could not update vegetable", err)
	}
	return c.JSON(veg)
}

// HandleDeleteVegetable removes a catalog entry by its ID.
func (h *VegetableHandler) HandleDeleteVegetable(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.DeleteVegetable(id); err != nil {
		log.Printf("Error deleting vegetable %s: %v", id, err)
		return errorResponse(c, "Could not delete vegetable", err)
	}
	return c.JSON(fiber.Map{
		"message": "Vegetable " + id + " deleted",
	})
}
