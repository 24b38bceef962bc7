package transport

import (
	"context"
	"encoding/json"
)

// Handler contrato de entrada del host embebido: recibe el cuerpo de la
// petición como texto y devuelve la respuesta como texto (el equivalente
// del doPost del backend).
type Handler interface {
	DoPost(ctx context.Context, body string) (string, error)
}

// BridgeTransport despacha en proceso a través del puente del host, sin
// pasar por la red. Se usa cuando el cliente corre embebido junto al
// backend (y en demos con el backend de demostración).
type BridgeTransport struct {
	handler Handler
	tokens  TokenSource
}

// NewBridgeTransport construye el transporte puente.
func NewBridgeTransport(handler Handler, tokens TokenSource) *BridgeTransport {
	return &BridgeTransport{handler: handler, tokens: tokens}
}

// Call implementa Transport.
func (t *BridgeTransport) Call(ctx context.Context, action string, params map[string]any) (json.RawMessage, error) {
	body, err := buildPayload(action, params, t.tokens)
	if err != nil {
		return nil, err
	}
	out, err := t.handler.DoPost(ctx, string(body))
	if err != nil {
		return nil, err
	}
	return resolve(action, []byte(out))
}
