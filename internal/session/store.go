// Package session guarda la sesión autenticada: token y perfil, en
// memoria y en un archivo local durable bajo dos claves fijas.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/jhoicas/pasteleria-pos/internal/apiclient"
	"github.com/jhoicas/pasteleria-pos/internal/domain/entity"
	"github.com/jhoicas/pasteleria-pos/pkg/logger"
)

// Claves fijas del estado durable; el mismo par que usaba la versión web
// en su almacenamiento local.
const (
	keyToken = "auth_token"
	keyUser  = "user_info"
)

// Store sesión vigente. Implementa transport.TokenSource.
type Store struct {
	mu    sync.RWMutex
	path  string
	token string
	user  *entity.Usuario
	log   *logger.Logger
}

// New construye el store. path vacío usa el directorio de configuración
// del usuario.
func New(path string, log *logger.Logger) (*Store, error) {
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("session: directorio de configuración: %w", err)
		}
		path = filepath.Join(dir, "pasteleria-pos", "session.json")
	}
	return &Store{path: path, log: log}, nil
}

// Restore carga la sesión durable si existe. Un token presente se asume
// válido: el arranque no revalida contra el backend (UI optimista).
func (s *Store) Restore() bool {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.log.Warn().Err(err).Str("path", s.path).Msg("no se pudo leer la sesión guardada")
		}
		return false
	}
	var data map[string]json.RawMessage
	if err := json.Unmarshal(raw, &data); err != nil {
		s.log.Warn().Err(err).Msg("sesión guardada corrupta, se ignora")
		return false
	}

	var token string
	if err := json.Unmarshal(data[keyToken], &token); err != nil || token == "" {
		return false
	}
	var user entity.Usuario
	if err := json.Unmarshal(data[keyUser], &user); err != nil {
		return false
	}

	s.mu.Lock()
	s.token = token
	s.user = &user
	s.mu.Unlock()
	return true
}

// Login llama la acción login; en éxito persiste token y perfil. El
// error del backend se propaga verbatim al llamador.
func (s *Store) Login(ctx context.Context, api *apiclient.Client, email, password string) (*entity.Usuario, error) {
	resp, err := api.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.token = resp.Token
	s.user = &resp.User
	s.mu.Unlock()

	if err := s.persist(resp.Token, resp.User); err != nil {
		// La sesión en memoria sigue siendo usable; solo no sobrevive al reinicio.
		s.log.Warn().Err(err).Msg("no se pudo persistir la sesión")
	}
	return &resp.User, nil
}

// Logout limpia memoria y estado durable.
func (s *Store) Logout() {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		s.log.Warn().Err(err).Msg("no se pudo borrar la sesión durable")
	}
}

// Token devuelve el token vigente ("" si no hay sesión).
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User devuelve el perfil vigente o nil.
func (s *Store) User() *entity.Usuario {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *Store) persist(token string, user entity.Usuario) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	raw, err := json.Marshal(map[string]any{
		keyToken: token,
		keyUser:  user,
	})
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o600)
}
