package routes

import (
	"errors"

	"comanda/db"
	"comanda/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// createInvoice - POST /api/facturas/
// Invoicing is an explicit step after order placement, and each order gets
// exactly one invoice.
func createInvoice(c *fiber.Ctx) error {
	invoice := new(models.Invoice)
	if err := c.BodyParser(invoice); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if err := validate.Struct(invoice); err != nil {
		return validationFailed(c, err)
	}

	var order models.Order
	if err := db.DB.First(&order, invoice.OrderID).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Order not found",
		})
	}

	var existing models.Invoice
	err := db.DB.Where("order_id = ?", invoice.OrderID).First(&existing).Error
	if err == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Order already has an invoice",
		})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to check existing invoice",
		})
	}

	if err := db.DB.Create(&invoice).Error; err != nil {
		// The unique index backstops a concurrent double-create.
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Order already has an invoice",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(invoice)
}

// getAllInvoices - GET /api/facturas/
func getAllInvoices(c *fiber.Ctx) error {
	var invoices []models.Invoice

	dbQuery := db.DB.Model(&models.Invoice{})
	if pedido := c.Query("pedido"); pedido != "" {
		dbQuery = dbQuery.Where("order_id = ?", pedido)
	}
	if vendedor := c.Query("nombre_vendedor"); vendedor != "" {
		dbQuery = dbQuery.Where("seller_name = ?", vendedor)
	}
	if destinatario := c.Query("nombre_destinatario"); destinatario != "" {
		dbQuery = dbQuery.Where("recipient_name = ?", destinatario)
	}
	if metodo := c.Query("metodo_pago"); metodo != "" {
		dbQuery = dbQuery.Where("payment_method = ?", metodo)
	}
	if fecha := c.Query("fecha_expedicion"); fecha != "" {
		dbQuery = dateEquals(dbQuery, "issue_date", fecha)
	}
	dbQuery = paginate(c, dbQuery)

	if err := dbQuery.Find(&invoices).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get invoices",
		})
	}

	return c.JSON(invoices)
}

// getInvoice - GET /api/facturas/:id
func getInvoice(c *fiber.Ctx) error {
	id := c.Params("id")
	var invoice models.Invoice

	if err := db.DB.First(&invoice, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Invoice not found",
		})
	}

	return c.JSON(invoice)
}

// updateInvoice - PUT/PATCH /api/facturas/:id
func updateInvoice(c *fiber.Ctx) error {
	id := c.Params("id")
	invoice := new(models.Invoice)

	if err := c.BodyParser(invoice); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	var existing models.Invoice
	if err := db.DB.First(&existing, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Invoice not found",
		})
	}

	// The order binding is immutable once issued.
	invoice.OrderID = existing.OrderID

	if err := db.DB.Model(&existing).Updates(invoice).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update invoice",
		})
	}

	return c.JSON(existing)
}

// deleteInvoice - DELETE /api/facturas/:id
func deleteInvoice(c *fiber.Ctx) error {
	id := c.Params("id")

	var invoice models.Invoice
	if err := db.DB.First(&invoice, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Invoice not found",
		})
	}

	if err := db.DB.Delete(&invoice).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete invoice",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
