package transport_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pasteleria-pos/internal/transport"
)

// tokenStub fuente de token fija para los tests.
type tokenStub string

func (t tokenStub) Token() string { return string(t) }

// El sobre saliente siempre lleva action y token; sin sesión el token
// viaja como null explícito, no se omite.
func TestMockTransport_PayloadLlevaActionYToken(t *testing.T) {
	var visto map[string]any
	respond := func(action string, params map[string]any) map[string]any {
		visto = params
		return map[string]any{"success": true}
	}

	tr := transport.NewMockTransport(respond, tokenStub("tok-123"), 0)
	_, err := tr.Call(context.Background(), "getProducts", map[string]any{"activos": true})
	require.NoError(t, err)

	assert.Equal(t, "getProducts", visto["action"])
	assert.Equal(t, "tok-123", visto["token"])
	assert.Equal(t, true, visto["activos"])
}

func TestMockTransport_SinSesionTokenEsNull(t *testing.T) {
	var visto map[string]any
	respond := func(_ string, params map[string]any) map[string]any {
		visto = params
		return map[string]any{"success": true}
	}

	tr := transport.NewMockTransport(respond, tokenStub(""), 0)
	_, err := tr.Call(context.Background(), "login", map[string]any{"email": "a@b.c"})
	require.NoError(t, err)

	v, presente := visto["token"]
	assert.True(t, presente, "el campo token debe existir en el payload")
	assert.Nil(t, v, "sin sesión el token debe ser null")
}

// success == false se traduce a BackendError con el mensaje verbatim.
func TestMockTransport_FallaDelBackendEsBackendError(t *testing.T) {
	respond := func(string, map[string]any) map[string]any {
		return map[string]any{"success": false, "error": "Credenciales inválidas (Use pass: 123)"}
	}

	tr := transport.NewMockTransport(respond, tokenStub(""), 0)
	_, err := tr.Call(context.Background(), "login", nil)

	require.Error(t, err)
	assert.True(t, transport.IsBackendError(err))
	assert.EqualError(t, err, "Credenciales inválidas (Use pass: 123)")
}

// Un sobre exitoso se devuelve completo: el llamador decodifica sus
// campos de datos del mismo JSON.
func TestMockTransport_DevuelveSobreCompleto(t *testing.T) {
	respond := func(string, map[string]any) map[string]any {
		return map[string]any{"success": true, "message": "Venta registrada con éxito", "idVenta": "V-ABC12345"}
	}

	tr := transport.NewMockTransport(respond, tokenStub("tok"), 0)
	raw, err := tr.Call(context.Background(), "createSale", nil)
	require.NoError(t, err)

	var out struct {
		IDVenta string `json:"idVenta"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "V-ABC12345", out.IDVenta)
	assert.Equal(t, "Venta registrada con éxito", out.Message)
}

func TestMockTransport_ContextoCanceladoCortaLaEspera(t *testing.T) {
	respond := func(string, map[string]any) map[string]any {
		return map[string]any{"success": true}
	}
	tr := transport.NewMockTransport(respond, tokenStub(""), time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := tr.Call(ctx, "getProducts", nil)
	assert.ErrorIs(t, err, context.Canceled)
}
