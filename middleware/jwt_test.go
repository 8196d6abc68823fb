package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"learntrack/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{JWTKey: "test-secret"}

	app := fiber.New()
	app.Get("/protected", JWTMiddleware, func(c *fiber.Ctx) error {
		return JsonResponse(c, fiber.StatusOK, true, "ok", fiber.Map{
			"userId": c.Locals("userId"),
			"role":   c.Locals("userRole"),
		})
	})
	return app
}

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(config.AppConfig.JWTKey))
	require.NoError(t, err)
	return signed
}

func TestJWTMiddlewareAcceptsValidToken(t *testing.T) {
	app := setupAuthApp(t)

	signed, err := GenerateJWT(7, "Test User", "LEARNER", "test@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signed)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestJWTMiddlewareRejectsMissingHeader(t *testing.T) {
	app := setupAuthApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestJWTMiddlewareRejectsNonNumericUserIDClaim(t *testing.T) {
	app := setupAuthApp(t)

	// Well-signed token with a claim shape this server never issues
	signed := signToken(t, jwt.MapClaims{
		"userId": "not-a-number",
		"exp":    time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signed)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestJWTMiddlewareRejectsMissingUserIDClaim(t *testing.T) {
	app := setupAuthApp(t)

	signed := signToken(t, jwt.MapClaims{
		"role": "LEARNER",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signed)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestJWTMiddlewareRejectsWrongSigningKey(t *testing.T) {
	app := setupAuthApp(t)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": 7,
		"exp":    time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("some-other-secret"))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signed)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
