package routes

import (
	"net/http"
	"testing"

	"comanda/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryWritesAreAdminOnly(t *testing.T) {
	app := setupApp(t)
	_, vendorToken := newTestUser(t, "vendedor", "Vendedor")
	_, adminToken := newTestUser(t, "admin", "Administrador")

	payload := map[string]interface{}{"nombre": "Desayuno"}

	// Reads are public.
	resp := doJSON(t, app, http.MethodGet, "/api/categorias/", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/categorias/", "", payload)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/categorias/", vendorToken, payload)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/categorias/", adminToken, payload)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestCategoryNameUnique(t *testing.T) {
	app := setupApp(t)
	_, adminToken := newTestUser(t, "admin", "Administrador")
	newTestCategory(t, "Bebidas")

	resp := doJSON(t, app, http.MethodPost, "/api/categorias/", adminToken, map[string]interface{}{
		"nombre": "Bebidas",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSubcategoryUniqueWithinCategory(t *testing.T) {
	app := setupApp(t)
	_, adminToken := newTestUser(t, "admin", "Administrador")
	desayuno := newTestCategory(t, "Desayuno")
	almuerzo := newTestCategory(t, "Almuerzo")

	resp := doJSON(t, app, http.MethodPost, "/api/subcategorias/", adminToken, map[string]interface{}{
		"nombre": "Típico", "categoria": desayuno.ID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// Same name under the same category fails.
	resp = doJSON(t, app, http.MethodPost, "/api/subcategorias/", adminToken, map[string]interface{}{
		"nombre": "Típico", "categoria": desayuno.ID,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Same name under a different category is fine.
	resp = doJSON(t, app, http.MethodPost, "/api/subcategorias/", adminToken, map[string]interface{}{
		"nombre": "Típico", "categoria": almuerzo.ID,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestSubcategoryRejectsDanglingCategory(t *testing.T) {
	app := setupApp(t)
	_, adminToken := newTestUser(t, "admin", "Administrador")

	resp := doJSON(t, app, http.MethodPost, "/api/subcategorias/", adminToken, map[string]interface{}{
		"nombre": "Huérfana", "categoria": 999,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSubcategoryFilterByCategory(t *testing.T) {
	app := setupApp(t)
	desayuno := newTestCategory(t, "Desayuno")
	bebidas := newTestCategory(t, "Bebidas")
	require.NoError(t, dbCreate(&models.Subcategory{Name: "Típico", CategoryID: desayuno.ID}))
	require.NoError(t, dbCreate(&models.Subcategory{Name: "Natural", CategoryID: bebidas.ID}))

	resp := doJSON(t, app, http.MethodGet, "/api/subcategorias/?categoria="+itoa(bebidas.ID), "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var subcategories []models.Subcategory
	decodeBody(t, resp, &subcategories)
	require.Len(t, subcategories, 1)
	assert.Equal(t, "Natural", subcategories[0].Name)
}

func TestCategoryCascadeDelete(t *testing.T) {
	app := setupApp(t)
	_, adminToken := newTestUser(t, "admin", "Administrador")

	category := newTestCategory(t, "Desayuno")
	subcategory := models.Subcategory{Name: "Típico", CategoryID: category.ID}
	require.NoError(t, dbCreate(&subcategory))
	product := newTestProduct(t, "Gallo Pinto", 2500, category.ID)

	resp := doJSON(t, app, http.MethodDelete, "/api/categorias/"+itoa(category.ID), adminToken, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	assert.Error(t, dbFirst(&models.Category{}, category.ID))
	assert.Error(t, dbFirst(&models.Subcategory{}, subcategory.ID))
	assert.Error(t, dbFirst(&models.Product{}, product.ID))
}

func TestSubcategoryDeleteClearsProductReference(t *testing.T) {
	app := setupApp(t)
	_, adminToken := newTestUser(t, "admin", "Administrador")

	category := newTestCategory(t, "Desayuno")
	subcategory := models.Subcategory{Name: "Típico", CategoryID: category.ID}
	require.NoError(t, dbCreate(&subcategory))
	product := models.Product{Name: "Gallo Pinto", Price: 2500, CategoryID: category.ID, SubcategoryID: &subcategory.ID}
	require.NoError(t, dbCreate(&product))

	resp := doJSON(t, app, http.MethodDelete, "/api/subcategorias/"+itoa(subcategory.ID), adminToken, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	var survivor models.Product
	require.NoError(t, dbFirst(&survivor, product.ID))
	assert.Nil(t, survivor.SubcategoryID)
}
