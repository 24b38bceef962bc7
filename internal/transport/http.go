package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/jhoicas/pasteleria-pos/internal/domain"
	"github.com/jhoicas/pasteleria-pos/pkg/logger"
)

// HTTPTransport envía el sobre por POST al endpoint remoto.
//
// El cuerpo va como texto plano: deliberadamente NO se envía el header
// `Content-Type: application/json`, porque dispararía un preflight CORS
// (OPTIONS) que el backend no sabe contestar.
type HTTPTransport struct {
	url    string
	client *http.Client
	tokens TokenSource
	log    *logger.Logger
}

// NewHTTPTransport construye el transporte HTTP con un timeout generoso:
// el backend puede tardar varios segundos en responder en frío.
func NewHTTPTransport(url string, tokens TokenSource, log *logger.Logger) *HTTPTransport {
	return &HTTPTransport{
		url:    url,
		client: &http.Client{Timeout: 60 * time.Second},
		tokens: tokens,
		log:    log,
	}
}

// Call implementa Transport. Las fallas de red se traducen al mensaje
// fijo de conexión; las fallas reportadas por el backend viajan verbatim.
func (t *HTTPTransport) Call(ctx context.Context, action string, params map[string]any) (json.RawMessage, error) {
	body, err := buildPayload(action, params, t.tokens)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	// Sin Content-Type explícito: viaja como text/plain.

	resp, err := t.client.Do(req)
	if err != nil {
		t.log.Error().Err(err).Str("action", action).Msg("fallo de red hacia el backend")
		return nil, domain.ErrConexion
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.log.Error().Err(err).Str("action", action).Msg("lectura de respuesta del backend")
		return nil, domain.ErrConexion
	}

	return resolve(action, raw)
}
