package httpapi_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pasteleria-pos/internal/infrastructure/mockbackend"
	"github.com/jhoicas/pasteleria-pos/internal/interfaces/httpapi"
	"github.com/jhoicas/pasteleria-pos/pkg/logger"
)

func buildApp() *fiber.App {
	backend := mockbackend.New(mockbackend.Config{
		JWTSecret: "test-secret", JWTIssuer: "test", JWTExpMins: 60,
	})
	return httpapi.NewApp(backend, logger.Nop())
}

func doRequest(t *testing.T, app *fiber.App, method, path, body string) *http.Response {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestHealth_RespondeOK(t *testing.T) {
	resp := doRequest(t, buildApp(), http.MethodGet, "/health", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `"status":"ok"`)
}

// El endpoint acepta el sobre como texto plano, sin exigir Content-Type.
func TestAPI_LoginPorTextoPlano(t *testing.T) {
	resp := doRequest(t, buildApp(), http.MethodPost, "/api",
		`{"action":"login","email":"demo@pasteleria.mx","password":"123","token":null}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `"success":true`)
	assert.Contains(t, string(body), `"token"`)
	assert.Contains(t, string(body), "Usuario Demo")
}

func TestAPI_PasswordIncorrectaDevuelveErrorEnElSobre(t *testing.T) {
	resp := doRequest(t, buildApp(), http.MethodPost, "/api",
		`{"action":"login","email":"demo@pasteleria.mx","password":"mala","token":null}`)
	defer resp.Body.Close()

	// El contrato reporta fallas dentro del sobre, con HTTP 200.
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `"success":false`)
	assert.Contains(t, string(body), "Credenciales inválidas (Use pass: 123)")
}

func TestAPI_CuerpoInvalidoDevuelve500(t *testing.T) {
	resp := doRequest(t, buildApp(), http.MethodPost, "/api", "esto no es json")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "error interno del servidor")
}
