package transport

import (
	"context"
	"encoding/json"
	"time"
)

// Responder produce la respuesta local para una acción (modo demo sin
// backend). Acciones desconocidas deben resolver `{success: true}`.
type Responder func(action string, params map[string]any) map[string]any

// MockTransport fabrica respuestas locales tras una latencia simulada
// fija, para demos de la UI sin backend configurado.
type MockTransport struct {
	respond Responder
	tokens  TokenSource
	delay   time.Duration
}

// NewMockTransport construye el transporte mock. delay simula la latencia
// de red (500 ms en la demo; los tests pasan 0).
func NewMockTransport(respond Responder, tokens TokenSource, delay time.Duration) *MockTransport {
	return &MockTransport{respond: respond, tokens: tokens, delay: delay}
}

// Call implementa Transport.
func (t *MockTransport) Call(ctx context.Context, action string, params map[string]any) (json.RawMessage, error) {
	body, err := buildPayload(action, params, t.tokens)
	if err != nil {
		return nil, err
	}
	// El payload viaja igual que en los otros modos: el responder ve
	// action y token como lo haría el backend real.
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, err
	}

	if t.delay > 0 {
		select {
		case <-time.After(t.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	raw, err := json.Marshal(t.respond(action, payload))
	if err != nil {
		return nil, err
	}
	return resolve(action, raw)
}
