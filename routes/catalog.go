package routes

import (
	"comanda/db"
	"comanda/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// createCategory - POST /api/categorias/
func createCategory(c *fiber.Ctx) error {
	category := new(models.Category)
	if err := c.BodyParser(category); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if err := validate.Struct(category); err != nil {
		return validationFailed(c, err)
	}

	// Children are managed through their own endpoints.
	category.Subcategories = nil
	category.Products = nil

	if err := db.DB.Create(&category).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Category name already in use",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(category)
}

// getAllCategories - GET /api/categorias/
func getAllCategories(c *fiber.Ctx) error {
	var categories []models.Category

	dbQuery := db.DB.Model(&models.Category{})
	if nombre := c.Query("nombre"); nombre != "" {
		dbQuery = dbQuery.Where("name = ?", nombre)
	}
	dbQuery = paginate(c, dbQuery)

	if err := dbQuery.Find(&categories).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get categories",
		})
	}

	return c.JSON(categories)
}

// getCategory - GET /api/categorias/:id
func getCategory(c *fiber.Ctx) error {
	id := c.Params("id")
	var category models.Category

	if err := db.DB.Preload("Subcategories").First(&category, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Category not found",
		})
	}

	return c.JSON(category)
}

// updateCategory - PUT/PATCH /api/categorias/:id
func updateCategory(c *fiber.Ctx) error {
	id := c.Params("id")
	category := new(models.Category)

	if err := c.BodyParser(category); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	var existing models.Category
	if err := db.DB.First(&existing, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Category not found",
		})
	}

	category.Subcategories = nil
	category.Products = nil

	if err := db.DB.Model(&existing).Updates(category).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Category name already in use",
		})
	}

	return c.JSON(existing)
}

// deleteCategory - DELETE /api/categorias/:id
// Removing a category takes its subcategories and products with it.
func deleteCategory(c *fiber.Ctx) error {
	id := c.Params("id")

	var category models.Category
	if err := db.DB.First(&category, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Category not found",
		})
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", category.ID).Delete(&models.Product{}).Error; err != nil {
			return err
		}
		if err := tx.Where("category_id = ?", category.ID).Delete(&models.Subcategory{}).Error; err != nil {
			return err
		}
		return tx.Delete(&category).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete category",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// createSubcategory - POST /api/subcategorias/
func createSubcategory(c *fiber.Ctx) error {
	subcategory := new(models.Subcategory)
	if err := c.BodyParser(subcategory); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if err := validate.Struct(subcategory); err != nil {
		return validationFailed(c, err)
	}

	var category models.Category
	if err := db.DB.First(&category, subcategory.CategoryID).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Category not found",
		})
	}

	if err := db.DB.Create(&subcategory).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Subcategory name already in use within this category",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(subcategory)
}

// getAllSubcategories - GET /api/subcategorias/
func getAllSubcategories(c *fiber.Ctx) error {
	var subcategories []models.Subcategory

	dbQuery := db.DB.Model(&models.Subcategory{})
	if categoria := c.Query("categoria"); categoria != "" {
		dbQuery = dbQuery.Where("category_id = ?", categoria)
	}
	dbQuery = paginate(c, dbQuery)

	if err := dbQuery.Find(&subcategories).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get subcategories",
		})
	}

	return c.JSON(subcategories)
}

// getSubcategory - GET /api/subcategorias/:id
func getSubcategory(c *fiber.Ctx) error {
	id := c.Params("id")
	var subcategory models.Subcategory

	if err := db.DB.First(&subcategory, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Subcategory not found",
		})
	}

	return c.JSON(subcategory)
}

// updateSubcategory - PUT/PATCH /api/subcategorias/:id
func updateSubcategory(c *fiber.Ctx) error {
	id := c.Params("id")
	subcategory := new(models.Subcategory)

	if err := c.BodyParser(subcategory); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	var existing models.Subcategory
	if err := db.DB.First(&existing, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Subcategory not found",
		})
	}

	if subcategory.CategoryID != 0 {
		var category models.Category
		if err := db.DB.First(&category, subcategory.CategoryID).Error; err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Category not found",
			})
		}
	}

	if err := db.DB.Model(&existing).Updates(subcategory).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Subcategory name already in use within this category",
		})
	}

	return c.JSON(existing)
}

// deleteSubcategory - DELETE /api/subcategorias/:id
// Products survive with their subcategory reference cleared.
func deleteSubcategory(c *fiber.Ctx) error {
	id := c.Params("id")

	var subcategory models.Subcategory
	if err := db.DB.First(&subcategory, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Subcategory not found",
		})
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Product{}).Where("subcategory_id = ?", subcategory.ID).
			Update("subcategory_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&subcategory).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete subcategory",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
