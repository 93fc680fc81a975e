package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/tempero-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/tempero-api/pkg/jwt"
	"github.com/jhoicas/tempero-api/pkg/logger"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUsername  = "caixa"
	testIssuer    = "tempero-test"
	testExpMin    = 60
)

// buildProtectedApp app fiber mínima con AuthMiddleware y un handler que
// devuelve el usuario del token.
func buildProtectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"username": apphttp.GetUsername(c)})
	})
	return app
}

func bearer(t *testing.T) string {
	t.Helper()
	tok, _, err := pkgjwt.Generate(testJWTSecret, testUsername, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

func doMe(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestAuthMiddleware_ExtraeUsuario(t *testing.T) {
	resp := doMe(t, buildProtectedApp(), bearer(t))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUsername, body["username"])
}

func TestAuthMiddleware_SinHeader_Retorna401(t *testing.T) {
	resp := doMe(t, buildProtectedApp(), "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

func TestAuthMiddleware_FormatoInvalido_Retorna401(t *testing.T) {
	resp := doMe(t, buildProtectedApp(), "Token abc")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

func TestAuthMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	resp := doMe(t, buildProtectedApp(), "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenExpirado_Retorna401(t *testing.T) {
	tok, _, err := pkgjwt.Generate(testJWTSecret, testUsername, testIssuer, -1)
	require.NoError(t, err)

	resp := doMe(t, buildProtectedApp(), "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequestLogger_RegistraUsuario(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "info", Output: &buf})
	app := apphttp.NewApp(apphttp.AppConfig{Name: "tempero-test"}, log)
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp := doMe(t, app, bearer(t))
	resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	assert.Equal(t, "request", line["message"])
	assert.Equal(t, testUsername, line["user"])
	assert.Equal(t, "/me", line["path"])

	buf.Reset()
	resp = doMe(t, app, "")
	resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	line = nil
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	assert.NotContains(t, line, "user")
}
