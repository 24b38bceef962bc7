package transport_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pasteleria-pos/internal/transport"
)

// handlerStub contesta en proceso, como el host embebido.
type handlerStub struct {
	visto string
	resp  string
}

func (h *handlerStub) DoPost(_ context.Context, body string) (string, error) {
	h.visto = body
	return h.resp, nil
}

func TestBridgeTransport_EnviaElSobreYResuelve(t *testing.T) {
	h := &handlerStub{resp: `{"success":true,"stockNuevo":42}`}
	tr := transport.NewBridgeTransport(h, tokenStub("tok"))

	raw, err := tr.Call(context.Background(), "updateStock", map[string]any{"id": "1", "cantidad": 5})
	require.NoError(t, err)

	assert.Contains(t, h.visto, `"action":"updateStock"`)
	assert.Contains(t, h.visto, `"token":"tok"`)
	assert.Contains(t, string(raw), `"stockNuevo":42`)
}

func TestBridgeTransport_FallaDelHostEsBackendError(t *testing.T) {
	h := &handlerStub{resp: `{"success":false,"error":"sesión inválida o expirada"}`}
	tr := transport.NewBridgeTransport(h, tokenStub("viejo"))

	_, err := tr.Call(context.Background(), "getInsumos", nil)
	require.Error(t, err)
	assert.True(t, transport.IsBackendError(err))
	assert.EqualError(t, err, "sesión inválida o expirada")
}
