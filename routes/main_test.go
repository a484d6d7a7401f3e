package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"comanda/auth"
	"comanda/db"
	"comanda/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// setupApp gives every test a fresh in-memory database and a wired app. The
// shared-cache DSN keeps gorm's pooled connections on the same database.
func setupApp(t *testing.T) *fiber.App {
	t.Helper()
	db.Connect("file:" + uuid.New().String() + "?mode=memory&cache=shared")
	UploadDir = t.TempDir()
	app := fiber.New()
	SetupRoutes(app)
	return app
}

// newTestUser persists an account with the given roles and returns it with a
// valid access token. The password is always "<username>123".
func newTestUser(t *testing.T, username string, roles ...string) (models.User, string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(username+"123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{Username: username, Password: string(hash), Roles: roles}
	require.NoError(t, db.DB.Create(&user).Error)

	pair, err := auth.IssueTokenPair(&user)
	require.NoError(t, err)
	return user, pair.Access
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func dbFirst(out interface{}, id uint) error {
	return db.DB.First(out, id).Error
}

func dbCreate(value interface{}) error {
	return db.DB.Create(value).Error
}

// Shared fixtures.

func newTestCategory(t *testing.T, name string) models.Category {
	t.Helper()
	category := models.Category{Name: name}
	require.NoError(t, db.DB.Create(&category).Error)
	return category
}

func newTestProduct(t *testing.T, name string, price float64, categoryID uint) models.Product {
	t.Helper()
	product := models.Product{Name: name, Price: price, CategoryID: categoryID}
	require.NoError(t, db.DB.Create(&product).Error)
	return product
}

func newTestOrder(t *testing.T, customerID uint) models.Order {
	t.Helper()
	order := models.Order{
		CustomerID:      customerID,
		DeliveryAddress: "Parque Central, Cañas",
		Contact:         "8888-1111",
		Status:          models.OrderStatusPending,
	}
	require.NoError(t, db.DB.Create(&order).Error)
	return order
}
