package routes

import (
	"net/http"
	"testing"

	"comanda/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObtainTokenSuccess(t *testing.T) {
	app := setupApp(t)
	newTestUser(t, "admin", "Administrador")

	resp := doJSON(t, app, http.MethodPost, "/api/token/", "", map[string]string{
		"username": "admin",
		"password": "admin123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var pair auth.TokenPair
	decodeBody(t, resp, &pair)
	assert.NotEmpty(t, pair.Access)
	assert.NotEmpty(t, pair.Refresh)

	claims, err := auth.ParseToken(pair.Access)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, []string{"Administrador"}, claims.Groups)
}

func TestObtainTokenBadPassword(t *testing.T) {
	app := setupApp(t)
	newTestUser(t, "admin", "Administrador")

	resp := doJSON(t, app, http.MethodPost, "/api/token/", "", map[string]string{
		"username": "admin",
		"password": "incorrecto",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestObtainTokenUnknownUser(t *testing.T) {
	app := setupApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/token/", "", map[string]string{
		"username": "nadie",
		"password": "whatever",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestObtainTokenMissingFields(t *testing.T) {
	app := setupApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/token/", "", map[string]string{
		"username": "admin",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRefreshToken(t *testing.T) {
	app := setupApp(t)
	newTestUser(t, "cliente", "Cliente")

	resp := doJSON(t, app, http.MethodPost, "/api/token/", "", map[string]string{
		"username": "cliente",
		"password": "cliente123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var pair auth.TokenPair
	decodeBody(t, resp, &pair)

	resp = doJSON(t, app, http.MethodPost, "/api/token/refresh/", "", map[string]string{
		"refresh": pair.Refresh,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	claims, err := auth.ParseToken(body["access"])
	require.NoError(t, err)
	assert.Equal(t, auth.TokenTypeAccess, claims.TokenType)
	assert.Equal(t, "cliente", claims.Username)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	app := setupApp(t)
	_, access := newTestUser(t, "cliente", "Cliente")

	resp := doJSON(t, app, http.MethodPost, "/api/token/refresh/", "", map[string]string{
		"refresh": access,
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAccessTokenCannotBeRefreshTokenOnAPI(t *testing.T) {
	app := setupApp(t)
	user, _ := newTestUser(t, "cliente", "Cliente")

	pair, err := auth.IssueTokenPair(&user)
	require.NoError(t, err)

	// A refresh token is not accepted as a bearer credential.
	resp := doJSON(t, app, http.MethodGet, "/api/configuracion/", pair.Refresh, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMalformedBearerHeader(t *testing.T) {
	app := setupApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/configuracion/", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
