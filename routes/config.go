package routes

import (
	"comanda/db"
	"comanda/models"

	"github.com/gofiber/fiber/v2"
)

// The configuration row is pinned to id 1. FirstOrCreate over the primary
// key keeps concurrent first reads from creating duplicates.
const configurationID = 1

// getConfiguration - GET /api/configuracion/ (any :id is ignored)
func getConfiguration(c *fiber.Ctx) error {
	var config models.Configuration
	if err := db.DB.Where(models.Configuration{ID: configurationID}).
		FirstOrCreate(&config).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to resolve configuration",
		})
	}

	return c.JSON(config)
}

// updateConfiguration - PUT/PATCH /api/configuracion/ (any :id is ignored)
func updateConfiguration(c *fiber.Ctx) error {
	update := new(models.Configuration)
	if err := c.BodyParser(update); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	var config models.Configuration
	if err := db.DB.Where(models.Configuration{ID: configurationID}).
		FirstOrCreate(&config).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to resolve configuration",
		})
	}

	update.ID = configurationID
	if err := db.DB.Model(&config).Updates(update).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update configuration",
		})
	}

	return c.JSON(config)
}
