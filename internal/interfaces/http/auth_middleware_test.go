package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/olivarmoveis/contagem-api/internal/interfaces/http"
	pkgjwt "github.com/olivarmoveis/contagem-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de teste
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testLogin     = "almoxarife"
	testIssuer    = "contagem-api-test"
	testExpMin    = 60
)

// buildProtectedApp constrói uma aplicação Fiber mínima com o AuthMiddleware
// e um handler que devolve os locals gravados.
func buildProtectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"user_id": apphttp.GetUserID(c),
				"login":   apphttp.GetLogin(c),
			})
		},
	)
	return app
}

func validToken(t *testing.T) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testLogin, testIssuer, testExpMin)
	require.NoError(t, err)
	return "Bearer " + tok
}

func doProtected(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

// Token válido: passa e os locals ficam disponíveis para o handler.
func TestAuthMiddleware_TokenValidoCarregaLocals(t *testing.T) {
	app := buildProtectedApp()

	resp := doProtected(t, app, validToken(t))
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]string
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, testUserID, out["user_id"])
	assert.Equal(t, testLogin, out["login"])
}

func TestAuthMiddleware_SemHeaderAuthorization(t *testing.T) {
	app := buildProtectedApp()

	resp := doProtected(t, app, "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_FormatoInvalido(t *testing.T) {
	app := buildProtectedApp()

	for _, header := range []string{"Basic abc123", "Bearer", "token-solto"} {
		resp := doProtected(t, app, header)
		resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "header: %q", header)
	}
}

func TestAuthMiddleware_AssinaturaIncorreta(t *testing.T) {
	app := buildProtectedApp()

	tok, err := pkgjwt.Generate("outro-secret", testUserID, testLogin, testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doProtected(t, app, "Bearer "+tok)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenExpirado(t *testing.T) {
	app := buildProtectedApp()

	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testLogin, testIssuer, -5)
	require.NoError(t, err)

	resp := doProtected(t, app, "Bearer "+tok)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// "bearer" minúsculo também é aceito.
func TestAuthMiddleware_PrefixoCaseInsensitive(t *testing.T) {
	app := buildProtectedApp()

	resp := doProtected(t, app, "bearer "+validToken(t)[len("Bearer "):])
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
