package routes

import (
	"os"
	"path/filepath"

	"comanda/db"
	"comanda/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// UploadDir is where product images land; main.go points it at the
// COMANDA_UPLOAD_DIR value.
var UploadDir = "uploads"

// createProduct - POST /api/productos/
func createProduct(c *fiber.Ctx) error {
	product := new(models.Product)
	if err := c.BodyParser(product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if err := validate.Struct(product); err != nil {
		return validationFailed(c, err)
	}

	var category models.Category
	if err := db.DB.First(&category, product.CategoryID).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Category not found",
		})
	}
	if product.SubcategoryID != nil {
		var subcategory models.Subcategory
		if err := db.DB.First(&subcategory, *product.SubcategoryID).Error; err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Subcategory not found",
			})
		}
	}

	if err := db.DB.Create(&product).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create product",
		})
	}

	db.DB.Preload("Category").Preload("Subcategory").First(&product, product.ID)
	return c.Status(fiber.StatusCreated).JSON(product)
}

// getAllProducts - GET /api/productos/
func getAllProducts(c *fiber.Ctx) error {
	var products []models.Product

	dbQuery := db.DB.Preload("Category").Preload("Subcategory")
	if nombre := c.Query("nombre"); nombre != "" {
		dbQuery = dbQuery.Where("name = ?", nombre)
	}
	if categoria := c.Query("categoria"); categoria != "" {
		dbQuery = dbQuery.Where("category_id = ?", categoria)
	}
	if subcategoria := c.Query("subcategoria"); subcategoria != "" {
		dbQuery = dbQuery.Where("subcategory_id = ?", subcategoria)
	}
	if disponible := c.Query("disponible"); disponible != "" {
		dbQuery = dbQuery.Where("available = ?", disponible == "true")
	}
	if precio := c.Query("precio"); precio != "" {
		dbQuery = dbQuery.Where("price = ?", precio)
	}
	if fecha := c.Query("fecha_creacion"); fecha != "" {
		dbQuery = dateEquals(dbQuery, "created_at", fecha)
	}
	dbQuery = paginate(c, dbQuery)

	if err := dbQuery.Find(&products).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get products",
		})
	}

	return c.JSON(products)
}

// getProduct - GET /api/productos/:id
func getProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	var product models.Product

	if err := db.DB.Preload("Category").Preload("Subcategory").First(&product, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Product not found",
		})
	}

	return c.JSON(product)
}

// updateProduct - PUT/PATCH /api/productos/:id
func updateProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	product := new(models.Product)

	if err := c.BodyParser(product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	var existing models.Product
	if err := db.DB.First(&existing, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Product not found",
		})
	}

	if product.Price < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Validation failed",
			"details": fiber.Map{"Price": "failed 'gte' validation"},
		})
	}
	if product.CategoryID != 0 {
		var category models.Category
		if err := db.DB.First(&category, product.CategoryID).Error; err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Category not found",
			})
		}
	}
	if product.SubcategoryID != nil {
		var subcategory models.Subcategory
		if err := db.DB.First(&subcategory, *product.SubcategoryID).Error; err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Subcategory not found",
			})
		}
	}

	product.Category = models.Category{}
	product.Subcategory = nil

	if err := db.DB.Model(&existing).Updates(product).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update product",
		})
	}

	db.DB.Preload("Category").Preload("Subcategory").First(&existing, existing.ID)
	return c.JSON(existing)
}

// deleteProduct - DELETE /api/productos/:id
func deleteProduct(c *fiber.Ctx) error {
	id := c.Params("id")

	var product models.Product
	if err := db.DB.First(&product, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Product not found",
		})
	}

	if err := db.DB.Delete(&product).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete product",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// uploadProductImage - POST /api/productos/:id/upload
func uploadProductImage(c *fiber.Ctx) error {
	id := c.Params("id")

	var product models.Product
	if err := db.DB.First(&product, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Product not found",
		})
	}

	file, err := c.FormFile("imagen")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No image sent",
		})
	}

	dir := filepath.Join(UploadDir, "productos")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to prepare upload directory",
		})
	}

	filename := uuid.New().String() + filepath.Ext(file.Filename)
	if err := c.SaveFile(file, filepath.Join(dir, filename)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save file",
		})
	}

	imagePath := "/uploads/productos/" + filename
	if err := db.DB.Model(&product).Update("image", imagePath).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to store image reference",
		})
	}

	return c.JSON(fiber.Map{"imagen": imagePath})
}
