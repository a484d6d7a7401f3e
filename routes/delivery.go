package routes

import (
	"errors"

	"comanda/db"
	"comanda/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// createRoute - POST /api/rutas/
func createRoute(c *fiber.Ctx) error {
	route := new(models.Route)
	if err := c.BodyParser(route); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if err := validate.Struct(route); err != nil {
		return validationFailed(c, err)
	}

	if err := db.DB.Create(&route).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create route",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(route)
}

// getAllRoutes - GET /api/rutas/
func getAllRoutes(c *fiber.Ctx) error {
	var routes []models.Route

	dbQuery := db.DB.Model(&models.Route{})
	if nombre := c.Query("nombre"); nombre != "" {
		dbQuery = dbQuery.Where("name = ?", nombre)
	}
	if activa := c.Query("activa"); activa != "" {
		dbQuery = dbQuery.Where("active = ?", activa == "true")
	}
	dbQuery = paginate(c, dbQuery)

	if err := dbQuery.Find(&routes).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get routes",
		})
	}

	return c.JSON(routes)
}

// getRoute - GET /api/rutas/:id
func getRoute(c *fiber.Ctx) error {
	id := c.Params("id")
	var route models.Route

	if err := db.DB.First(&route, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Route not found",
		})
	}

	return c.JSON(route)
}

// updateRoute - PUT/PATCH /api/rutas/:id
func updateRoute(c *fiber.Ctx) error {
	id := c.Params("id")
	route := new(models.Route)

	if err := c.BodyParser(route); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	var existing models.Route
	if err := db.DB.First(&existing, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Route not found",
		})
	}

	if err := db.DB.Model(&existing).Updates(route).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update route",
		})
	}

	return c.JSON(existing)
}

// deleteRoute - DELETE /api/rutas/:id
// Customer registrations on the route are removed; deliveries keep living
// with the route reference cleared.
func deleteRoute(c *fiber.Ctx) error {
	id := c.Params("id")

	var route models.Route
	if err := db.DB.First(&route, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Route not found",
		})
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("route_id = ?", route.ID).Delete(&models.CustomerRoute{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Delivery{}).Where("route_id = ?", route.ID).
			Update("route_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&route).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete route",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// createDelivery - POST /api/entregas/
func createDelivery(c *fiber.Ctx) error {
	delivery := new(models.Delivery)
	if err := c.BodyParser(delivery); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if err := validate.Struct(delivery); err != nil {
		return validationFailed(c, err)
	}

	var order models.Order
	if err := db.DB.First(&order, delivery.OrderID).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Order not found",
		})
	}
	if delivery.RouteID != nil {
		var route models.Route
		if err := db.DB.First(&route, *delivery.RouteID).Error; err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Route not found",
			})
		}
	}

	var existing models.Delivery
	err := db.DB.Where("order_id = ?", delivery.OrderID).First(&existing).Error
	if err == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Order already has a delivery",
		})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to check existing delivery",
		})
	}

	if delivery.Status == "" {
		delivery.Status = models.DeliveryStatusPending
	}

	if err := db.DB.Create(&delivery).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Order already has a delivery",
		})
	}

	broadcastEvent("entrega_creada", delivery)
	return c.Status(fiber.StatusCreated).JSON(delivery)
}

// getAllDeliveries - GET /api/entregas/
func getAllDeliveries(c *fiber.Ctx) error {
	var deliveries []models.Delivery

	dbQuery := db.DB.Model(&models.Delivery{})
	if pedido := c.Query("pedido"); pedido != "" {
		dbQuery = dbQuery.Where("order_id = ?", pedido)
	}
	if repartidor := c.Query("repartidor"); repartidor != "" {
		dbQuery = dbQuery.Where("courier_id = ?", repartidor)
	}
	if ruta := c.Query("ruta"); ruta != "" {
		dbQuery = dbQuery.Where("route_id = ?", ruta)
	}
	if estado := c.Query("estado"); estado != "" {
		dbQuery = dbQuery.Where("status = ?", estado)
	}
	if fecha := c.Query("fecha_asignacion"); fecha != "" {
		dbQuery = dateEquals(dbQuery, "assigned_at", fecha)
	}
	if fecha := c.Query("fecha_entrega"); fecha != "" {
		dbQuery = dateEquals(dbQuery, "delivered_at", fecha)
	}
	dbQuery = paginate(c, dbQuery)

	if err := dbQuery.Find(&deliveries).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get deliveries",
		})
	}

	return c.JSON(deliveries)
}

// getDelivery - GET /api/entregas/:id
func getDelivery(c *fiber.Ctx) error {
	id := c.Params("id")
	var delivery models.Delivery

	if err := db.DB.First(&delivery, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Delivery not found",
		})
	}

	return c.JSON(delivery)
}

// updateDelivery - PUT/PATCH /api/entregas/:id
func updateDelivery(c *fiber.Ctx) error {
	id := c.Params("id")
	delivery := new(models.Delivery)

	if err := c.BodyParser(delivery); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	var existing models.Delivery
	if err := db.DB.First(&existing, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Delivery not found",
		})
	}

	if delivery.Status != "" {
		if err := validate.Var(delivery.Status, "oneof=pendiente en_ruta entregada"); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":   "Validation failed",
				"details": fiber.Map{"estado": "failed 'oneof' validation"},
			})
		}
	}
	if delivery.RouteID != nil {
		var route models.Route
		if err := db.DB.First(&route, *delivery.RouteID).Error; err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Route not found",
			})
		}
	}

	// The order binding is fixed for the delivery's lifetime.
	delivery.OrderID = existing.OrderID
	statusChanged := delivery.Status != "" && delivery.Status != existing.Status

	if err := db.DB.Model(&existing).Updates(delivery).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update delivery",
		})
	}

	if statusChanged {
		broadcastEvent("entrega_actualizada", existing)
	}
	return c.JSON(existing)
}

// deleteDelivery - DELETE /api/entregas/:id
func deleteDelivery(c *fiber.Ctx) error {
	id := c.Params("id")

	var delivery models.Delivery
	if err := db.DB.First(&delivery, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Delivery not found",
		})
	}

	if err := db.DB.Delete(&delivery).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete delivery",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// createCustomerRoute - POST /api/clientes-ruta/
func createCustomerRoute(c *fiber.Ctx) error {
	cr := new(models.CustomerRoute)
	if err := c.BodyParser(cr); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if err := validate.Struct(cr); err != nil {
		return validationFailed(c, err)
	}

	var user models.User
	if err := db.DB.First(&user, cr.CustomerID).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Customer not found",
		})
	}
	var route models.Route
	if err := db.DB.First(&route, cr.RouteID).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Route not found",
		})
	}

	if err := db.DB.Create(&cr).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create customer route",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(cr)
}

// getAllCustomerRoutes - GET /api/clientes-ruta/
func getAllCustomerRoutes(c *fiber.Ctx) error {
	var crs []models.CustomerRoute

	dbQuery := db.DB.Model(&models.CustomerRoute{})
	if cliente := c.Query("cliente"); cliente != "" {
		dbQuery = dbQuery.Where("customer_id = ?", cliente)
	}
	if ruta := c.Query("ruta"); ruta != "" {
		dbQuery = dbQuery.Where("route_id = ?", ruta)
	}
	dbQuery = paginate(c, dbQuery)

	if err := dbQuery.Find(&crs).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get customer routes",
		})
	}

	return c.JSON(crs)
}

// getCustomerRoute - GET /api/clientes-ruta/:id
func getCustomerRoute(c *fiber.Ctx) error {
	id := c.Params("id")
	var cr models.CustomerRoute

	if err := db.DB.First(&cr, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Customer route not found",
		})
	}

	return c.JSON(cr)
}

// updateCustomerRoute - PUT/PATCH /api/clientes-ruta/:id
func updateCustomerRoute(c *fiber.Ctx) error {
	id := c.Params("id")
	cr := new(models.CustomerRoute)

	if err := c.BodyParser(cr); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	var existing models.CustomerRoute
	if err := db.DB.First(&existing, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Customer route not found",
		})
	}

	if cr.RouteID != 0 {
		var route models.Route
		if err := db.DB.First(&route, cr.RouteID).Error; err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Route not found",
			})
		}
	}

	if err := db.DB.Model(&existing).Updates(cr).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update customer route",
		})
	}

	return c.JSON(existing)
}

// deleteCustomerRoute - DELETE /api/clientes-ruta/:id
func deleteCustomerRoute(c *fiber.Ctx) error {
	id := c.Params("id")

	var cr models.CustomerRoute
	if err := db.DB.First(&cr, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Customer route not found",
		})
	}

	if err := db.DB.Delete(&cr).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete customer route",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
