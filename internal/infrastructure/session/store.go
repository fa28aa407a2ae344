package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Store persiste el token de autenticación (uno solo, proceso completo) en un
// archivo bajo una ruta fija, análogo al localStorage del navegador: sobrevive
// reinicios y se destruye en logout o ante un 401. El token se lee por cada
// petición saliente y se escribe únicamente desde login/logout/401, así que un
// RWMutex basta; no hay más estado persistido que este.
type Store struct {
	mu    sync.RWMutex
	path  string
	token string
}

// DefaultPath devuelve la ruta por defecto del archivo de sesión
// (~/.invorya/session).
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("session: resolver home: %w", err)
	}
	return filepath.Join(home, ".invorya", "session"), nil
}

// NewStore abre el almacén en la ruta dada y carga el token persistido si
// existe. Un archivo ausente no es error: simplemente no hay sesión.
func NewStore(path string) (*Store, error) {
	s := &Store{path: path}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("session: leer %s: %w", path, err)
	}
	s.token = strings.TrimSpace(string(raw))
	return s, nil
}

// Token devuelve el token vigente y si está presente. Nunca bloquea contra
// disco: la copia en memoria es la fuente de lectura.
func (s *Store) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != ""
}

// Save persiste el token (escritura atómica: archivo temporal + rename) y
// actualiza la copia en memoria.
func (s *Store) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("session: crear directorio %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, "session-*")
	if err != nil {
		return fmt.Errorf("session: archivo temporal: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.WriteString(token); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("session: escribir token: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("session: cerrar temporal: %w", err)
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("session: permisos: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("session: reemplazar %s: %w", s.path, err)
	}
	s.token = token
	return nil
}

// Clear destruye el token en memoria y en disco. Que el archivo no exista no
// es error.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("session: eliminar %s: %w", s.path, err)
	}
	return nil
}
