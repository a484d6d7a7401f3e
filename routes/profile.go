package routes

import (
	"comanda/db"
	"comanda/models"

	"github.com/gofiber/fiber/v2"
)

// getMyProfile - GET /api/perfiles/me
// The profile is created on first access; callers never need to know its id.
func getMyProfile(c *fiber.Ctx) error {
	claims := currentUser(c)
	if claims == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	var profile models.Profile
	if err := db.DB.Where(models.Profile{UserID: claims.UserID()}).
		FirstOrCreate(&profile).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to resolve profile",
		})
	}

	return c.JSON(profile)
}

// updateMyProfile - PUT/PATCH /api/perfiles/me
func updateMyProfile(c *fiber.Ctx) error {
	claims := currentUser(c)
	if claims == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	update := new(models.Profile)
	if err := c.BodyParser(update); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	var profile models.Profile
	if err := db.DB.Where(models.Profile{UserID: claims.UserID()}).
		FirstOrCreate(&profile).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to resolve profile",
		})
	}

	// Only the avatar is caller-editable; the identity binding is fixed.
	if err := db.DB.Model(&profile).Update("image", update.Image).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update profile",
		})
	}

	return c.JSON(profile)
}
