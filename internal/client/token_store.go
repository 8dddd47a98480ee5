package client

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// TokenStore persiste el token de sesión en disco para que el cliente
// sobreviva reinicios. Es la única copia del token: el servidor no guarda
// sesiones.
type TokenStore struct {
	path string
}

// NewTokenStore crea un store sobre el archivo dado.
func NewTokenStore(path string) *TokenStore {
	return &TokenStore{path: path}
}

// DefaultTokenPath resuelve la ruta estándar del token bajo el directorio de
// configuración del usuario.
func DefaultTokenPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "datosempleado", "token"), nil
}

// Load devuelve el token guardado, o cadena vacía si no hay ninguno.
func (s *TokenStore) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// Save guarda el token con permisos restringidos al usuario.
func (s *TokenStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(token), 0o600)
}

// Clear descarta el token guardado.
func (s *TokenStore) Clear() error {
	err := os.Remove(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
