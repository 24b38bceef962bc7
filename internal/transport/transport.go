// Package transport implementa la llamada genérica al backend RPC.
//
// El backend expone una única operación: recibe `{action, ...params, token}`
// serializado como texto y responde `{success, error?, ...}`. Existen tres
// estrategias según el entorno de ejecución: puente embebido (el cliente
// corre dentro del host del backend), HTTP (endpoint remoto) y mock (demo
// local sin backend). La estrategia se selecciona una sola vez al arranque.
package transport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Transport ejecuta una acción contra el backend y devuelve el sobre
// completo de respuesta ya verificado (success == true).
type Transport interface {
	Call(ctx context.Context, action string, params map[string]any) (json.RawMessage, error)
}

// TokenSource provee el token de sesión vigente; todo payload saliente lo
// incluye para que el backend autorice o rechace.
type TokenSource interface {
	Token() string
}

// BackendError error reportado por el backend en el campo `error` de un
// sobre con success == false. Se muestra al usuario tal cual.
type BackendError struct {
	Action  string
	Message string
}

func (e *BackendError) Error() string { return e.Message }

// IsBackendError indica si err proviene del backend (vs. red o decodificación).
func IsBackendError(err error) bool {
	var be *BackendError
	return errors.As(err, &be)
}

// envelope campos de control del sobre de respuesta.
type envelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// buildPayload arma el sobre de petición: params + action + token.
func buildPayload(action string, params map[string]any, tokens TokenSource) ([]byte, error) {
	payload := make(map[string]any, len(params)+2)
	for k, v := range params {
		payload[k] = v
	}
	payload["action"] = action
	if t := tokens.Token(); t != "" {
		payload["token"] = t
	} else {
		payload["token"] = nil
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("transport: serializar payload de %s: %w", action, err)
	}
	return body, nil
}

// resolve verifica el sobre: success ⇒ devuelve el sobre completo,
// si no ⇒ BackendError con el mensaje del backend.
func resolve(action string, raw []byte) (json.RawMessage, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("transport: respuesta de %s no es JSON válido: %w", action, err)
	}
	if !env.Success {
		return nil, &BackendError{Action: action, Message: env.Error}
	}
	return json.RawMessage(raw), nil
}
