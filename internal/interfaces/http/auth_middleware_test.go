package http_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/chinawok-ops/internal/domain/entity"
	apphttp "github.com/tu-usuario/chinawok-ops/internal/interfaces/http"
	"github.com/tu-usuario/chinawok-ops/pkg/jwt"
)

const testJWTSecret = "secreto-de-pruebas"

func tokenFor(t *testing.T, correo, nombre, role string) string {
	t.Helper()
	token, err := jwt.Generate(testJWTSecret, correo, nombre, role, "chinawok-ops-test", 5)
	require.NoError(t, err)
	return token
}

// buildTestApp app mínima con middleware de auth y una ruta con restricción de rol.
func buildTestApp(requiredRoles ...string) *fiber.App {
	app := fiber.New()
	grp := app.Group("/", apphttp.AuthMiddleware(testJWTSecret))

	handler := func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"correo": apphttp.GetCorreo(c),
			"nombre": apphttp.GetNombre(c),
			"role":   apphttp.GetRole(c),
		})
	}
	if len(requiredRoles) > 0 {
		grp.Get("/protegido", apphttp.RequireRole(requiredRoles...), handler)
	} else {
		grp.Get("/protegido", handler)
	}
	return app
}

func doRequest(t *testing.T, app *fiber.App, authHeader string) (int, map[string]string) {
	t.Helper()
	req := httptest.NewRequest("GET", "/protegido", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	out := map[string]string{}
	_ = json.Unmarshal(body, &out)
	return resp.StatusCode, out
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_TokenValidoExtraeClaims(t *testing.T) {
	app := buildTestApp()
	token := tokenFor(t, "carla@chinawok.pe", "Carla", entity.RoleCliente)

	status, body := doRequest(t, app, "Bearer "+token)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "carla@chinawok.pe", body["correo"])
	assert.Equal(t, "Carla", body["nombre"])
	assert.Equal(t, entity.RoleCliente, body["role"])
}

func TestAuthMiddleware_SinHeader(t *testing.T) {
	status, body := doRequest(t, buildTestApp(), "")
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "MISSING_TOKEN", body["code"])
}

func TestAuthMiddleware_FormatoInvalido(t *testing.T) {
	status, body := doRequest(t, buildTestApp(), "Token abc")
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "INVALID_TOKEN", body["code"])
}

func TestAuthMiddleware_TokenCorrupto(t *testing.T) {
	status, body := doRequest(t, buildTestApp(), "Bearer no.es.un.jwt")
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "INVALID_TOKEN", body["code"])
}

func TestAuthMiddleware_FirmaDeOtroSecreto(t *testing.T) {
	token, err := jwt.Generate("otro-secreto", "x@chinawok.pe", "X", entity.RoleAdmin, "test", 5)
	require.NoError(t, err)

	status, _ := doRequest(t, buildTestApp(), "Bearer "+token)
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestAuthMiddleware_TokenExpirado(t *testing.T) {
	token, err := jwt.Generate(testJWTSecret, "x@chinawok.pe", "X", entity.RoleAdmin, "test", -5)
	require.NoError(t, err)

	status, _ := doRequest(t, buildTestApp(), "Bearer "+token)
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

// ──────────────────────────────────────────────────────────────────────────────
// RequireRole
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireRole_RolPermitido(t *testing.T) {
	app := buildTestApp(entity.RoleAdmin, entity.RoleGerente)
	token := tokenFor(t, "gus@chinawok.pe", "Gus", entity.RoleGerente)

	status, _ := doRequest(t, app, "Bearer "+token)
	assert.Equal(t, fiber.StatusOK, status)
}

func TestRequireRole_ComparaSinMayusculas(t *testing.T) {
	app := buildTestApp(entity.RoleAdmin)
	token := tokenFor(t, "ana@chinawok.pe", "Ana", "admin")

	status, _ := doRequest(t, app, "Bearer "+token)
	assert.Equal(t, fiber.StatusOK, status)
}

func TestRequireRole_RolNoPermitido(t *testing.T) {
	app := buildTestApp(entity.RoleAdmin)
	token := tokenFor(t, "carla@chinawok.pe", "Carla", entity.RoleCliente)

	status, body := doRequest(t, app, "Bearer "+token)
	assert.Equal(t, fiber.StatusForbidden, status)
	assert.Equal(t, "FORBIDDEN", body["code"])
}

func TestRequireRole_TokenSinRol(t *testing.T) {
	app := buildTestApp(entity.RoleAdmin)
	token := tokenFor(t, "x@chinawok.pe", "X", "")

	status, body := doRequest(t, app, "Bearer "+token)
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "MISSING_ROLE", body["code"])
}

// ──────────────────────────────────────────────────────────────────────────────
// jwt: ida y vuelta
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerarYParsear(t *testing.T) {
	token, err := jwt.Generate(testJWTSecret, "ana@chinawok.pe", "Ana", entity.RoleAdmin, "chinawok-ops", 60)
	require.NoError(t, err)

	correo, nombre, role, err := jwt.Parse(testJWTSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "ana@chinawok.pe", correo)
	assert.Equal(t, "Ana", nombre)
	assert.Equal(t, entity.RoleAdmin, role)
}
