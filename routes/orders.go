package routes

import (
	"fmt"

	"comanda/auth"
	"comanda/db"
	"comanda/models"

	"github.com/gofiber/fiber/v2"
)

type orderLineRequest struct {
	ProductID uint     `json:"producto" validate:"required"`
	Quantity  int      `json:"cantidad" validate:"required,gte=1"`
	UnitPrice *float64 `json:"precio_unitario" validate:"omitempty,gte=0"`
}

type orderRequest struct {
	DeliveryAddress string             `json:"direccion_entrega" validate:"required"`
	Contact         string             `json:"contacto" validate:"required"`
	ExtraInfo       string             `json:"info_adicional"`
	Status          string             `json:"estado" validate:"omitempty,oneof=pendiente preparacion enviado entregado pagado cancelado"`
	VendorID        *uint              `json:"vendedor"`
	CourierID       *uint              `json:"repartidor"`
	Lines           []orderLineRequest `json:"productos" validate:"omitempty,dive"`
}

// createOrder - POST /api/pedidos/
// The order is always bound to the calling customer. Lines are persisted in
// the same transaction; the unit price is locked at creation, defaulting to
// the product's current price.
func createOrder(c *fiber.Ctx) error {
	claims := currentUser(c)

	var req orderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if err := validate.Struct(&req); err != nil {
		return validationFailed(c, err)
	}

	order := models.Order{
		CustomerID:      claims.UserID(),
		VendorID:        req.VendorID,
		CourierID:       req.CourierID,
		DeliveryAddress: req.DeliveryAddress,
		Contact:         req.Contact,
		ExtraInfo:       req.ExtraInfo,
		Status:          req.Status,
	}
	if order.Status == "" {
		order.Status = models.OrderStatusPending
	}

	tx := db.DB.Begin()
	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create order",
		})
	}

	for _, line := range req.Lines {
		var product models.Product
		if err := tx.First(&product, line.ProductID).Error; err != nil {
			tx.Rollback()
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Product %d not found", line.ProductID),
			})
		}

		unitPrice := product.Price
		if line.UnitPrice != nil {
			unitPrice = *line.UnitPrice
		}

		if err := tx.Create(&models.OrderLine{
			OrderID:   order.ID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: unitPrice,
		}).Error; err != nil {
			tx.Rollback()
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to create order lines",
			})
		}
	}

	if err := tx.Commit().Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to commit transaction",
		})
	}

	db.DB.Preload("Lines").First(&order, order.ID)
	broadcastEvent("pedido_creado", order)
	return c.Status(fiber.StatusCreated).JSON(order)
}

// getAllOrders - GET /api/pedidos/
// Admins and vendors see everything; customers only their own orders.
func getAllOrders(c *fiber.Ctx) error {
	claims := currentUser(c)
	var orders []models.Order

	dbQuery := db.DB.Preload("Lines")
	if !claims.HasAnyRole(auth.RoleAdmin, auth.RoleVendor) {
		dbQuery = dbQuery.Where("customer_id = ?", claims.UserID())
	}

	if cliente := c.Query("cliente"); cliente != "" {
		dbQuery = dbQuery.Where("customer_id = ?", cliente)
	}
	if vendedor := c.Query("vendedor"); vendedor != "" {
		dbQuery = dbQuery.Where("vendor_id = ?", vendedor)
	}
	if repartidor := c.Query("repartidor"); repartidor != "" {
		dbQuery = dbQuery.Where("courier_id = ?", repartidor)
	}
	if estado := c.Query("estado"); estado != "" {
		dbQuery = dbQuery.Where("status = ?", estado)
	}
	if fecha := c.Query("fecha_creacion"); fecha != "" {
		dbQuery = dateEquals(dbQuery, "created_at", fecha)
	}
	dbQuery = paginate(c, dbQuery)

	if err := dbQuery.Find(&orders).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get orders",
		})
	}

	return c.JSON(orders)
}

// getOrder - GET /api/pedidos/:id
func getOrder(c *fiber.Ctx) error {
	claims := currentUser(c)
	id := c.Params("id")
	var order models.Order

	dbQuery := db.DB.Preload("Lines")
	if !claims.HasAnyRole(auth.RoleAdmin, auth.RoleVendor) {
		dbQuery = dbQuery.Where("customer_id = ?", claims.UserID())
	}

	if err := dbQuery.First(&order, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Order not found",
		})
	}

	return c.JSON(order)
}

// updateOrder - PUT/PATCH /api/pedidos/:id
func updateOrder(c *fiber.Ctx) error {
	id := c.Params("id")

	var req orderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if req.Status != "" {
		if err := validate.Var(req.Status, "oneof=pendiente preparacion enviado entregado pagado cancelado"); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":   "Validation failed",
				"details": fiber.Map{"estado": "failed 'oneof' validation"},
			})
		}
	}

	var existing models.Order
	if err := db.DB.First(&existing, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Order not found",
		})
	}

	statusChanged := req.Status != "" && req.Status != existing.Status

	update := models.Order{
		DeliveryAddress: req.DeliveryAddress,
		Contact:         req.Contact,
		ExtraInfo:       req.ExtraInfo,
		Status:          req.Status,
		VendorID:        req.VendorID,
		CourierID:       req.CourierID,
	}
	if err := db.DB.Model(&existing).Updates(update).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update order",
		})
	}

	db.DB.Preload("Lines").First(&existing, existing.ID)
	if statusChanged {
		broadcastEvent("pedido_actualizado", existing)
	}
	return c.JSON(existing)
}

// deleteOrder - DELETE /api/pedidos/:id
// Lines, the invoice and the delivery record go with the order.
func deleteOrder(c *fiber.Ctx) error {
	id := c.Params("id")

	var order models.Order
	if err := db.DB.First(&order, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Order not found",
		})
	}

	tx := db.DB.Begin()
	if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderLine{}).Error; err != nil {
		tx.Rollback()
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete order lines",
		})
	}
	if err := tx.Where("order_id = ?", order.ID).Delete(&models.Invoice{}).Error; err != nil {
		tx.Rollback()
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete invoice",
		})
	}
	if err := tx.Where("order_id = ?", order.ID).Delete(&models.Delivery{}).Error; err != nil {
		tx.Rollback()
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete delivery",
		})
	}
	if err := tx.Delete(&order).Error; err != nil {
		tx.Rollback()
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete order",
		})
	}
	if err := tx.Commit().Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to commit transaction",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
