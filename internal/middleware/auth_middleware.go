package middleware

import (
	"log"
	"strings"

	"mandi/internal/services"

	"github.com/gofiber/fiber/v2"
)

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header. The second return value is false when the header is missing or
// malformed.
func bearerToken(c *fiber.Ctx) (string, bool) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	return parts[1], true
}

// HotelRequired is a Fiber middleware resolving the bearer token to a
// verified, active hotel. The hotel id and name are stored in the
// request locals for the handlers downstream.
func HotelRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := bearerToken(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Hotel authorization required",
			})
		}

		hotel, err := authService.ResolveHotel(token)
		if err != nil {
			log.Printf("Hotel token resolution failed: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or inactive hotel",
			})
		}

		c.Locals("hotel_id", hotel.ID)
		c.Locals("hotel_name", hotel.Name)

		return c.Next()
	}
}

// DealerRequired is a Fiber middleware resolving the bearer token to a
// verified, active dealer. Dealer-only operations (dashboard, order
// completion) sit behind it so hotels can never reach them.
func DealerRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := bearerToken(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Dealer authorization required",
			})
		}

		dealer, err := authService.ResolveDealer(token)
		if err != nil {
			log.Printf("Dealer token resolution failed: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or inactive dealer",
			})
		}

		c.Locals("dealer_id", dealer.ID)

		return c.Next()
	}
}
