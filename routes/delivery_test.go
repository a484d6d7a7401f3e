package routes

import (
	"net/http"
	"testing"

	"comanda/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRoute(t *testing.T, name string) models.Route {
	t.Helper()
	route := models.Route{Name: name}
	require.NoError(t, dbCreate(&route))
	return route
}

func TestRouteReadPublicWriteAdminOnly(t *testing.T) {
	app := setupApp(t)
	_, courierToken := newTestUser(t, "repartidor", "Repartidor")
	_, adminToken := newTestUser(t, "admin", "Administrador")

	payload := map[string]interface{}{"nombre": "Ruta Norte"}

	resp := doJSON(t, app, http.MethodGet, "/api/rutas/", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/rutas/", "", payload)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/rutas/", courierToken, payload)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/rutas/", adminToken, payload)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created models.Route
	decodeBody(t, resp, &created)
	assert.Equal(t, "Ruta Norte", created.Name)
	require.NotNil(t, created.Active)
	assert.True(t, *created.Active, "routes start active")
}

func TestRouteDeactivateAndFilter(t *testing.T) {
	app := setupApp(t)
	_, adminToken := newTestUser(t, "admin", "Administrador")
	norte := newTestRoute(t, "Ruta Norte")
	newTestRoute(t, "Ruta Sur")

	resp := doJSON(t, app, http.MethodPatch, "/api/rutas/"+itoa(norte.ID), adminToken, map[string]interface{}{
		"activa": false,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var routes []models.Route
	resp = doJSON(t, app, http.MethodGet, "/api/rutas/?activa=true", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &routes)
	require.Len(t, routes, 1)
	assert.Equal(t, "Ruta Sur", routes[0].Name)
}

func TestRouteDeleteCascades(t *testing.T) {
	app := setupApp(t)
	customer, _ := newTestUser(t, "cliente", "Cliente")
	_, adminToken := newTestUser(t, "admin", "Administrador")
	route := newTestRoute(t, "Ruta Norte")

	cr := models.CustomerRoute{CustomerID: customer.ID, RouteID: route.ID}
	require.NoError(t, dbCreate(&cr))
	order := newTestOrder(t, customer.ID)
	delivery := models.Delivery{OrderID: order.ID, RouteID: &route.ID, Status: models.DeliveryStatusPending}
	require.NoError(t, dbCreate(&delivery))

	resp := doJSON(t, app, http.MethodDelete, "/api/rutas/"+itoa(route.ID), adminToken, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	// Registrations go with the route, deliveries survive unassigned.
	assert.Error(t, dbFirst(&models.CustomerRoute{}, cr.ID))
	var survivor models.Delivery
	require.NoError(t, dbFirst(&survivor, delivery.ID))
	assert.Nil(t, survivor.RouteID)
}

func TestDeliveryRequiresAdminOrCourier(t *testing.T) {
	app := setupApp(t)
	customer, customerToken := newTestUser(t, "cliente", "Cliente")
	_, vendorToken := newTestUser(t, "vendedor", "Vendedor")
	_, courierToken := newTestUser(t, "repartidor", "Repartidor")
	order := newTestOrder(t, customer.ID)

	resp := doJSON(t, app, http.MethodGet, "/api/entregas/", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/entregas/", customerToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/entregas/", vendorToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/entregas/", courierToken, map[string]interface{}{
		"pedido": order.ID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created models.Delivery
	decodeBody(t, resp, &created)
	assert.Equal(t, models.DeliveryStatusPending, created.Status)
	assert.False(t, created.AssignedAt.IsZero())
}

func TestDeliveryOnePerOrder(t *testing.T) {
	app := setupApp(t)
	customer, _ := newTestUser(t, "cliente", "Cliente")
	_, courierToken := newTestUser(t, "repartidor", "Repartidor")
	order := newTestOrder(t, customer.ID)

	resp := doJSON(t, app, http.MethodPost, "/api/entregas/", courierToken, map[string]interface{}{
		"pedido": order.ID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/entregas/", courierToken, map[string]interface{}{
		"pedido": order.ID,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDeliveryRejectsDanglingReferences(t *testing.T) {
	app := setupApp(t)
	customer, _ := newTestUser(t, "cliente", "Cliente")
	_, courierToken := newTestUser(t, "repartidor", "Repartidor")
	order := newTestOrder(t, customer.ID)

	resp := doJSON(t, app, http.MethodPost, "/api/entregas/", courierToken, map[string]interface{}{
		"pedido": 999,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/entregas/", courierToken, map[string]interface{}{
		"pedido": order.ID,
		"ruta":   999,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDeliveryStatusProgression(t *testing.T) {
	app := setupApp(t)
	customer, _ := newTestUser(t, "cliente", "Cliente")
	courier, courierToken := newTestUser(t, "repartidor", "Repartidor")
	order := newTestOrder(t, customer.ID)

	delivery := models.Delivery{OrderID: order.ID, Status: models.DeliveryStatusPending}
	require.NoError(t, dbCreate(&delivery))

	resp := doJSON(t, app, http.MethodPatch, "/api/entregas/"+itoa(delivery.ID), courierToken, map[string]interface{}{
		"repartidor": courier.ID,
		"estado":     "en_ruta",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated models.Delivery
	decodeBody(t, resp, &updated)
	assert.Equal(t, models.DeliveryStatusEnRoute, updated.Status)
	require.NotNil(t, updated.CourierID)
	assert.Equal(t, courier.ID, *updated.CourierID)

	// Only the three known statuses pass.
	resp = doJSON(t, app, http.MethodPatch, "/api/entregas/"+itoa(delivery.ID), courierToken, map[string]interface{}{
		"estado": "perdida",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDeliveryOrderBindingImmutable(t *testing.T) {
	app := setupApp(t)
	customer, _ := newTestUser(t, "cliente", "Cliente")
	_, courierToken := newTestUser(t, "repartidor", "Repartidor")
	order := newTestOrder(t, customer.ID)
	other := newTestOrder(t, customer.ID)

	delivery := models.Delivery{OrderID: order.ID, Status: models.DeliveryStatusPending}
	require.NoError(t, dbCreate(&delivery))

	resp := doJSON(t, app, http.MethodPut, "/api/entregas/"+itoa(delivery.ID), courierToken, map[string]interface{}{
		"pedido": other.ID,
		"estado": "en_ruta",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated models.Delivery
	decodeBody(t, resp, &updated)
	assert.Equal(t, order.ID, updated.OrderID)
}

func TestDeliveryFilterByCourier(t *testing.T) {
	app := setupApp(t)
	customer, _ := newTestUser(t, "cliente", "Cliente")
	courier, courierToken := newTestUser(t, "repartidor", "Repartidor")

	first := newTestOrder(t, customer.ID)
	second := newTestOrder(t, customer.ID)
	require.NoError(t, dbCreate(&models.Delivery{OrderID: first.ID, CourierID: &courier.ID, Status: models.DeliveryStatusEnRoute}))
	require.NoError(t, dbCreate(&models.Delivery{OrderID: second.ID, Status: models.DeliveryStatusPending}))

	resp := doJSON(t, app, http.MethodGet, "/api/entregas/?repartidor="+itoa(courier.ID), courierToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var deliveries []models.Delivery
	decodeBody(t, resp, &deliveries)
	require.Len(t, deliveries, 1)
	assert.Equal(t, first.ID, deliveries[0].OrderID)
}

func TestCustomerRouteRegistration(t *testing.T) {
	app := setupApp(t)
	customer, customerToken := newTestUser(t, "cliente", "Cliente")
	_, courierToken := newTestUser(t, "repartidor", "Repartidor")
	route := newTestRoute(t, "Ruta Norte")

	payload := map[string]interface{}{
		"cliente":   customer.ID,
		"ruta":      route.ID,
		"latitud":   10.4267,
		"longitud":  -85.0934,
		"direccion": "Barrio San José, Cañas",
	}

	resp := doJSON(t, app, http.MethodPost, "/api/clientes-ruta/", "", payload)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/clientes-ruta/", courierToken, payload)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/clientes-ruta/", customerToken, payload)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created models.CustomerRoute
	decodeBody(t, resp, &created)
	assert.Equal(t, customer.ID, created.CustomerID)
	require.NotNil(t, created.Latitude)
	assert.InDelta(t, 10.4267, *created.Latitude, 0.0001)
}

func TestCustomerRouteRejectsDanglingReferences(t *testing.T) {
	app := setupApp(t)
	customer, customerToken := newTestUser(t, "cliente", "Cliente")
	route := newTestRoute(t, "Ruta Norte")

	resp := doJSON(t, app, http.MethodPost, "/api/clientes-ruta/", customerToken, map[string]interface{}{
		"cliente": 999, "ruta": route.ID,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/clientes-ruta/", customerToken, map[string]interface{}{
		"cliente": customer.ID, "ruta": 999,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
