package http_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpiface "github.com/bnsant/estoque-api/internal/interfaces/http"
	"github.com/bnsant/estoque-api/pkg/jwt"
)

const segredoTeste = "segredo-de-teste"

func appProtegido(handlers ...fiber.Handler) *fiber.App {
	app := fiber.New()
	chain := append([]fiber.Handler{httpiface.AuthMiddleware(segredoTeste)}, handlers...)
	chain = append(chain, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": httpiface.GetUserID(c),
			"papel":   httpiface.GetPapel(c),
		})
	})
	app.Get("/protegido", chain...)
	return app
}

func tokenTeste(t *testing.T, papel string) string {
	t.Helper()
	token, err := jwt.Generate(segredoTeste, "user-123", papel, "estoque-api", 5)
	require.NoError(t, err)
	return token
}

func TestAuthMiddleware_SemHeader(t *testing.T) {
	app := appProtegido()

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/protegido", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_FormatoInvalido(t *testing.T) {
	app := appProtegido()

	for _, header := range []string{"token-sem-prefixo", "Basic abc123", "Bearer "} {
		req := httptest.NewRequest(fiber.MethodGet, "/protegido", nil)
		req.Header.Set("Authorization", header)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, "header %q", header)
	}
}

func TestAuthMiddleware_TokenValido_ExtraiClaims(t *testing.T) {
	app := appProtegido()

	req := httptest.NewRequest(fiber.MethodGet, "/protegido", nil)
	req.Header.Set("Authorization", "Bearer "+tokenTeste(t, "operador"))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAuthMiddleware_SegredoErrado(t *testing.T) {
	app := appProtegido()

	token, err := jwt.Generate("outro-segredo", "user-123", "admin", "estoque-api", 5)
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodGet, "/protegido", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenExpirado(t *testing.T) {
	app := appProtegido()

	token, err := jwt.Generate(segredoTeste, "user-123", "admin", "estoque-api", -5)
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodGet, "/protegido", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequirePapel_Autorizado(t *testing.T) {
	app := appProtegido(httpiface.RequirePapel("admin", "operador"))

	req := httptest.NewRequest(fiber.MethodGet, "/protegido", nil)
	req.Header.Set("Authorization", "Bearer "+tokenTeste(t, "operador"))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequirePapel_PapelSemPermissao(t *testing.T) {
	app := appProtegido(httpiface.RequirePapel("admin"))

	req := httptest.NewRequest(fiber.MethodGet, "/protegido", nil)
	req.Header.Set("Authorization", "Bearer "+tokenTeste(t, "operador"))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
