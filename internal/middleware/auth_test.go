package middleware

import (
	"Shelved/internal/config"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func setupAuthApp(t *testing.T) (*fiber.App, *AuthMiddleware) {
	t.Helper()
	cfg := &config.Configuration{}
	cfg.Auth.JWTSecret = "test-secret"
	auth := NewAuthMiddleware(cfg)

	app := fiber.New()
	app.Get("/whoami", auth.RequireAuth, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": CurrentUserID(c)})
	})
	return app, auth
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	app, _ := setupAuthApp(t)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAuth_MalformedHeader(t *testing.T) {
	app, _ := setupAuthApp(t)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "token abc")
	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	app, _ := setupAuthApp(t)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAuth_ValidTokenExposesUser(t *testing.T) {
	app, auth := setupAuthApp(t)

	token, err := auth.SignToken("user-42")
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireAuth_WrongSecretRejected(t *testing.T) {
	app, _ := setupAuthApp(t)

	otherCfg := &config.Configuration{}
	otherCfg.Auth.JWTSecret = "other-secret"
	other := NewAuthMiddleware(otherCfg)
	token, err := other.SignToken("user-42")
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
