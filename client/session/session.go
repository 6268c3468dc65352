// session.go - Persistent credential store for the terminal client
//
// Mirrors the browser local storage the web UI used: a tiny key-value file
// holding exactly two entries, the bearer token and the cached user snapshot.
// Set on successful login/register, cleared on logout and on any 401.

package session

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

const (
	KeyAuthToken = "auth_token"
	KeyUser      = "user"
)

type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore opens a store backed by the given file. The file is created lazily
// on the first Set.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath places the session file under the user's home directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".catalog", "session.json"), nil
}

// Get returns the stored value for key, or "" when absent.
func (s *Store) Get(key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.read()
	if err != nil {
		return ""
	}
	return data[key]
}

func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.read()
	if err != nil {
		return err
	}
	data[key] = value
	return s.write(data)
}

func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.read()
	if err != nil {
		return err
	}
	if _, ok := data[key]; !ok {
		return nil
	}
	delete(data, key)
	return s.write(data)
}

// Clear removes both credential entries.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(map[string]string{})
}

func (s *Store) read() (map[string]string, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, err
	}
	data := map[string]string{}
	if err := json.Unmarshal(raw, &data); err != nil {
		// A corrupt session file is treated as logged out.
		return map[string]string{}, nil
	}
	return data, nil
}

func (s *Store) write(data map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o600)
}
