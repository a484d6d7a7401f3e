package routes

import (
	"comanda/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App) {
	go runBroadcaster()

	app.Get("/ws", wsHandler())

	app.Use(authenticate)

	api := app.Group("/api")

	api.Post("/token/", obtainToken)
	api.Post("/token/refresh/", refreshToken)

	categories := api.Group("/categorias")
	categories.Get("/", requirePermission(auth.ResourceCategory, auth.ActionList), getAllCategories)
	categories.Post("/", requirePermission(auth.ResourceCategory, auth.ActionCreate), createCategory)
	categories.Get("/:id", requirePermission(auth.ResourceCategory, auth.ActionRetrieve), getCategory)
	categories.Put("/:id", requirePermission(auth.ResourceCategory, auth.ActionUpdate), updateCategory)
	categories.Patch("/:id", requirePermission(auth.ResourceCategory, auth.ActionUpdate), updateCategory)
	categories.Delete("/:id", requirePermission(auth.ResourceCategory, auth.ActionDestroy), deleteCategory)

	subcategories := api.Group("/subcategorias")
	subcategories.Get("/", requirePermission(auth.ResourceSubcategory, auth.ActionList), getAllSubcategories)
	subcategories.Post("/", requirePermission(auth.ResourceSubcategory, auth.ActionCreate), createSubcategory)
	subcategories.Get("/:id", requirePermission(auth.ResourceSubcategory, auth.ActionRetrieve), getSubcategory)
	subcategories.Put("/:id", requirePermission(auth.ResourceSubcategory, auth.ActionUpdate), updateSubcategory)
	subcategories.Patch("/:id", requirePermission(auth.ResourceSubcategory, auth.ActionUpdate), updateSubcategory)
	subcategories.Delete("/:id", requirePermission(auth.ResourceSubcategory, auth.ActionDestroy), deleteSubcategory)

	products := api.Group("/productos")
	products.Get("/", requirePermission(auth.ResourceProduct, auth.ActionList), getAllProducts)
	products.Post("/", requirePermission(auth.ResourceProduct, auth.ActionCreate), createProduct)
	products.Get("/:id", requirePermission(auth.ResourceProduct, auth.ActionRetrieve), getProduct)
	products.Put("/:id", requirePermission(auth.ResourceProduct, auth.ActionUpdate), updateProduct)
	products.Patch("/:id", requirePermission(auth.ResourceProduct, auth.ActionUpdate), updateProduct)
	products.Delete("/:id", requirePermission(auth.ResourceProduct, auth.ActionDestroy), deleteProduct)
	products.Post("/:id/upload", requirePermission(auth.ResourceProduct, auth.ActionUpdate), uploadProductImage)

	orders := api.Group("/pedidos")
	orders.Get("/", requirePermission(auth.ResourceOrder, auth.ActionList), getAllOrders)
	orders.Post("/", requirePermission(auth.ResourceOrder, auth.ActionCreate), createOrder)
	orders.Get("/:id", requirePermission(auth.ResourceOrder, auth.ActionRetrieve), getOrder)
	orders.Put("/:id", requirePermission(auth.ResourceOrder, auth.ActionUpdate), updateOrder)
	orders.Patch("/:id", requirePermission(auth.ResourceOrder, auth.ActionUpdate), updateOrder)
	orders.Delete("/:id", requirePermission(auth.ResourceOrder, auth.ActionDestroy), deleteOrder)

	invoices := api.Group("/facturas")
	invoices.Get("/", requirePermission(auth.ResourceInvoice, auth.ActionList), getAllInvoices)
	invoices.Post("/", requirePermission(auth.ResourceInvoice, auth.ActionCreate), createInvoice)
	invoices.Get("/:id", requirePermission(auth.ResourceInvoice, auth.ActionRetrieve), getInvoice)
	invoices.Put("/:id", requirePermission(auth.ResourceInvoice, auth.ActionUpdate), updateInvoice)
	invoices.Patch("/:id", requirePermission(auth.ResourceInvoice, auth.ActionUpdate), updateInvoice)
	invoices.Delete("/:id", requirePermission(auth.ResourceInvoice, auth.ActionDestroy), deleteInvoice)

	deliveryRoutes := api.Group("/rutas")
	deliveryRoutes.Get("/", requirePermission(auth.ResourceRoute, auth.ActionList), getAllRoutes)
	deliveryRoutes.Post("/", requirePermission(auth.ResourceRoute, auth.ActionCreate), createRoute)
	deliveryRoutes.Get("/:id", requirePermission(auth.ResourceRoute, auth.ActionRetrieve), getRoute)
	deliveryRoutes.Put("/:id", requirePermission(auth.ResourceRoute, auth.ActionUpdate), updateRoute)
	deliveryRoutes.Patch("/:id", requirePermission(auth.ResourceRoute, auth.ActionUpdate), updateRoute)
	deliveryRoutes.Delete("/:id", requirePermission(auth.ResourceRoute, auth.ActionDestroy), deleteRoute)

	deliveries := api.Group("/entregas")
	deliveries.Get("/", requirePermission(auth.ResourceDelivery, auth.ActionList), getAllDeliveries)
	deliveries.Post("/", requirePermission(auth.ResourceDelivery, auth.ActionCreate), createDelivery)
	deliveries.Get("/:id", requirePermission(auth.ResourceDelivery, auth.ActionRetrieve), getDelivery)
	deliveries.Put("/:id", requirePermission(auth.ResourceDelivery, auth.ActionUpdate), updateDelivery)
	deliveries.Patch("/:id", requirePermission(auth.ResourceDelivery, auth.ActionUpdate), updateDelivery)
	deliveries.Delete("/:id", requirePermission(auth.ResourceDelivery, auth.ActionDestroy), deleteDelivery)

	customerRoutes := api.Group("/clientes-ruta")
	customerRoutes.Get("/", requirePermission(auth.ResourceCustomerRoute, auth.ActionList), getAllCustomerRoutes)
	customerRoutes.Post("/", requirePermission(auth.ResourceCustomerRoute, auth.ActionCreate), createCustomerRoute)
	customerRoutes.Get("/:id", requirePermission(auth.ResourceCustomerRoute, auth.ActionRetrieve), getCustomerRoute)
	customerRoutes.Put("/:id", requirePermission(auth.ResourceCustomerRoute, auth.ActionUpdate), updateCustomerRoute)
	customerRoutes.Patch("/:id", requirePermission(auth.ResourceCustomerRoute, auth.ActionUpdate), updateCustomerRoute)
	customerRoutes.Delete("/:id", requirePermission(auth.ResourceCustomerRoute, auth.ActionDestroy), deleteCustomerRoute)

	profiles := api.Group("/perfiles")
	profiles.Get("/me", getMyProfile)
	profiles.Put("/me", updateMyProfile)
	profiles.Patch("/me", updateMyProfile)

	config := api.Group("/configuracion")
	config.Get("/", requirePermission(auth.ResourceConfiguration, auth.ActionList), getConfiguration)
	config.Put("/", requirePermission(auth.ResourceConfiguration, auth.ActionUpdate), updateConfiguration)
	config.Patch("/", requirePermission(auth.ResourceConfiguration, auth.ActionUpdate), updateConfiguration)
	config.Get("/:id", requirePermission(auth.ResourceConfiguration, auth.ActionRetrieve), getConfiguration)
	config.Put("/:id", requirePermission(auth.ResourceConfiguration, auth.ActionUpdate), updateConfiguration)
	config.Patch("/:id", requirePermission(auth.ResourceConfiguration, auth.ActionUpdate), updateConfiguration)

	users := api.Group("/usuarios")
	users.Get("/", requirePermission(auth.ResourceUser, auth.ActionList), getAllUsers)
	users.Post("/", requirePermission(auth.ResourceUser, auth.ActionCreate), createUser)
	users.Get("/:id", requirePermission(auth.ResourceUser, auth.ActionRetrieve), getUser)
	users.Put("/:id", requirePermission(auth.ResourceUser, auth.ActionUpdate), updateUser)
	users.Patch("/:id", requirePermission(auth.ResourceUser, auth.ActionUpdate), updateUser)
	users.Delete("/:id", requirePermission(auth.ResourceUser, auth.ActionDestroy), deleteUser)
}
