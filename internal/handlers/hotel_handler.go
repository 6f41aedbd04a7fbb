package handlers

import (
	"log"

	"mandi/internal/models"
	"mandi/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// HotelHandler handles HTTP requests for hotel onboarding and record
// management.
type HotelHandler struct {
	service  *services.HotelService
	validate *validator.Validate
}

// NewHotelHandler creates a new HotelHandler.
func NewHotelHandler(service *services.HotelService) *HotelHandler {
	return &HotelHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the hotel routes with the Fiber app.
func (h *HotelHandler) RegisterRoutes(router fiber.Router) {
	hotelRoutes := router.Group("/hotels")
	hotelRoutes.Post("/", h.HandleCreateHotels)
	hotelRoutes.Get("/", h.HandleGetHotels)
	hotelRoutes.Get("/:id", h.HandleGetHotel)
	hotelRoutes.Put("/:id", h.HandleUpdateHotel)
	hotelRoutes.Delete("/:id", h.HandleDeleteHotel)
}

// HotelRequest represents one hotel in a create or update request.
type HotelRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Address  string `json:"address" validate:"required"`
	Contact  string `json:"contact" validate:"required"`
}

func (r *HotelRequest) toModel() models.Hotel {
	return models.Hotel{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
		Address:  r.Address,
		Contact:  r.Contact,
	}
}

// HandleCreateHotels onboards a batch of hotels from an array body. A
// validation failure or duplicate email on any element fails the whole
// request.
func (h *HotelHandler) HandleCreateHotels(c *fiber.Ctx) error {
	var reqs []HotelRequest
	if err := c.BodyParser(&reqs); err != nil {
		log.Printf("Error parsing hotels request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body, expected an array of hotels",
			"error":   err.Error(),
		})
	}
	if len(reqs) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "At least one hotel is required",
		})
	}

	hotels := make([]models.Hotel, 0, len(reqs))
	for i := range reqs {
		if err := h.validate.Struct(reqs[i]); err != nil {
			return validationResponse(c, err)
		}
		hotels = append(hotels, reqs[i].toModel())
	}

	created, err := h.service.CreateHotels(hotels)
	if err != nil {
		log.Printf("Error creating hotels: %v", err)
		return errorResponse(c, "Could not create hotels", err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// HandleGetHotels lists hotels with optional email and name filters.
func (h *HotelHandler) HandleGetHotels(c *fiber.Ctx) error {
	hotels, err := h.service.GetAllHotels(c.Query("email"), c.Query("name"))
	if err != nil {
		log.Printf("Error getting hotels: %v", err)
		return errorResponse(c, "Could not retrieve hotels", err)
	}
	return c.JSON(hotels)
}

// HandleGetHotel returns a single hotel by its ID.
func (h *HotelHandler) HandleGetHotel(c *fiber.Ctx) error {
	id := c.Params("id")
	hotel, err := h.service.GetHotel(id)
	if err != nil {
		log.Printf("Error getting hotel %s: %v", id, err)
		return errorResponse(c, "Could not retrieve hotel", err)
	}
	return c.JSON(hotel)
}

// HandleUpdateHotel updates a hotel's identity fields.
func (h *HotelHandler) HandleUpdateHotel(c *fiber.Ctx) error {
	id := c.Params("id")

	var req HotelRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing hotel update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationResponse(c, err)
	}

	hotel, err := h.service.UpdateHotel(id, req.toModel())
	if err != nil {
		log.Printf("Error updating hotel %s: %v", id, err)
		return errorResponse(c, "Could not update hotel", err)
	}
	return c.JSON(hotel)
}

// HandleDeleteHotel removes a hotel by its ID.
func (h *HotelHandler) HandleDeleteHotel(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.DeleteHotel(id); err != nil {
		log.Printf("Error deleting hotel %s: %v", id, err)
		return errorResponse(c, "Could not delete hotel", err)
	}
	return c.JSON(fiber.Map{
		"message": "Hotel " + id + " deleted successfully",
	})
}
