package main

import (
	"comanda/db"
	"comanda/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func mustHash(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return string(hash)
}

func ptr[T any](v T) *T { return &v }

// seedDemoData loads a realistic Spanish-language dataset for the Cañas,
// Guanacaste central district: one account per role, a small menu, delivery
// routes, and a complete order with its invoice and delivery.
func seedDemoData() error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		users := []models.User{
			{Username: "admin", Password: mustHash("admin123"), FirstName: "Ana", LastName: "Mora", IsSuperuser: true, Roles: []string{"Administrador"}},
			{Username: "cliente", Password: mustHash("cliente123"), FirstName: "Juan", LastName: "Pérez", Roles: []string{"Cliente"}},
			{Username: "vendedor", Password: mustHash("vendedor123"), FirstName: "Luis", LastName: "Soto", Roles: []string{"Vendedor"}},
			{Username: "repartidor", Password: mustHash("repartidor123"), FirstName: "Marco", LastName: "Rojas", Roles: []string{"Repartidor"}},
		}
		for i := range users {
			if err := tx.Where(models.User{Username: users[i].Username}).
				FirstOrCreate(&users[i]).Error; err != nil {
				return err
			}
		}
		cliente, vendedor, repartidor := users[1], users[2], users[3]

		categories := map[string]*models.Category{}
		for _, name := range []string{"Desayuno", "Almuerzo", "Bebidas", "Snacks"} {
			cat := &models.Category{Name: name}
			if err := tx.Where(models.Category{Name: name}).FirstOrCreate(cat).Error; err != nil {
				return err
			}
			categories[name] = cat
		}

		subcategories := map[string]*models.Subcategory{}
		for _, sc := range []struct{ name, category string }{
			{"Típico", "Desayuno"},
			{"Casado", "Almuerzo"},
			{"Natural", "Bebidas"},
			{"Empanadas", "Snacks"},
		} {
			sub := &models.Subcategory{Name: sc.name, CategoryID: categories[sc.category].ID}
			if err := tx.Where(models.Subcategory{Name: sc.name, CategoryID: sub.CategoryID}).
				FirstOrCreate(sub).Error; err != nil {
				return err
			}
			subcategories[sc.name] = sub
		}

		products := []models.Product{
			{Name: "Gallo Pinto", Price: 2500, Description: "Desayuno típico costarricense", CategoryID: categories["Desayuno"].ID, SubcategoryID: &subcategories["Típico"].ID},
			{Name: "Casado de Pollo", Price: 3500, Description: "Arroz, frijoles, ensalada, plátano y pollo", CategoryID: categories["Almuerzo"].ID, SubcategoryID: &subcategories["Casado"].ID},
			{Name: "Refresco Natural", Price: 1000, Description: "Bebida de frutas frescas", CategoryID: categories["Bebidas"].ID, SubcategoryID: &subcategories["Natural"].ID},
			{Name: "Empanada de Queso", Price: 800, Description: "Empanada artesanal rellena de queso", CategoryID: categories["Snacks"].ID, SubcategoryID: &subcategories["Empanadas"].ID},
		}
		for i := range products {
			if err := tx.Where(models.Product{Name: products[i].Name}).
				FirstOrCreate(&products[i]).Error; err != nil {
				return err
			}
		}

		routeRows := []models.Route{
			{Name: "Ruta Central", Description: "Centro de Cañas, Parque Central"},
			{Name: "Ruta Barrio San José", Description: "Barrio San José, cerca de la iglesia"},
			{Name: "Ruta Barrio Lajas", Description: "Barrio Lajas, frente a la escuela"},
			{Name: "Ruta Barrio Santa Lucía", Description: "Barrio Santa Lucía, costado sur del Ebais"},
		}
		for i := range routeRows {
			if err := tx.Where(models.Route{Name: routeRows[i].Name}).
				FirstOrCreate(&routeRows[i]).Error; err != nil {
				return err
			}
		}

		customerRoutes := []models.CustomerRoute{
			{CustomerID: cliente.ID, RouteID: routeRows[0].ID, Latitude: ptr(10.4271), Longitude: ptr(-85.0998), Address: "Parque Central, Cañas"},
			{CustomerID: cliente.ID, RouteID: routeRows[1].ID, Latitude: ptr(10.4300), Longitude: ptr(-85.0950), Address: "Barrio San José, Cañas"},
		}
		for i := range customerRoutes {
			if err := tx.Where(models.CustomerRoute{
				CustomerID: customerRoutes[i].CustomerID,
				RouteID:    customerRoutes[i].RouteID,
			}).FirstOrCreate(&customerRoutes[i]).Error; err != nil {
				return err
			}
		}

		order := models.Order{
			CustomerID:      cliente.ID,
			VendorID:        &vendedor.ID,
			CourierID:       &repartidor.ID,
			DeliveryAddress: "Parque Central, Cañas",
			Contact:         "8888-1111",
			ExtraInfo:       "Entregar antes de las 12pm",
			Status:          models.OrderStatusPending,
		}
		if err := tx.Where(models.Order{CustomerID: cliente.ID, Contact: "8888-1111"}).
			FirstOrCreate(&order).Error; err != nil {
			return err
		}
		lines := []models.OrderLine{
			{OrderID: order.ID, ProductID: products[0].ID, Quantity: 2, UnitPrice: 2500},
			{OrderID: order.ID, ProductID: products[2].ID, Quantity: 1, UnitPrice: 1000},
		}
		for i := range lines {
			if err := tx.Where(models.OrderLine{OrderID: order.ID, ProductID: lines[i].ProductID}).
				FirstOrCreate(&lines[i]).Error; err != nil {
				return err
			}
		}

		invoice := models.Invoice{
			OrderID:          order.ID,
			SellerName:       "Soda La Central",
			SellerAddress:    "Parque Central, Cañas",
			RecipientName:    "Juan Pérez",
			RecipientAddress: "Barrio San José, Cañas",
			GoodsDescription: "Gallo Pinto x2, Refresco Natural x1",
			PackagingType:    "Caja",
			Marks:            "-",
			Numbers:          "-",
			Classes:          "-",
			Quantities:       "3",
			CommercialTerm:   "Contado",
			PlaceOfIssue:     "Cañas, Guanacaste",
			PaymentMethod:    "Efectivo",
			TotalAmount:      6000,
		}
		if err := tx.Where(models.Invoice{OrderID: order.ID}).
			FirstOrCreate(&invoice).Error; err != nil {
			return err
		}

		delivery := models.Delivery{
			OrderID:   order.ID,
			CourierID: &repartidor.ID,
			RouteID:   &routeRows[0].ID,
			Status:    models.DeliveryStatusPending,
		}
		if err := tx.Where(models.Delivery{OrderID: order.ID}).
			FirstOrCreate(&delivery).Error; err != nil {
			return err
		}

		config := models.Configuration{
			ID:      1,
			Name:    "Soda La Central",
			Address: "Parque Central, Cañas, Guanacaste",
			Phone:   "2669-0000",
		}
		return tx.Where(models.Configuration{ID: 1}).FirstOrCreate(&config).Error
	})
}
