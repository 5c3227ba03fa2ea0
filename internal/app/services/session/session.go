package session

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Store holds at most one bearer token for the current app session.
// Login sets it, logout clears it, authenticated requests only read it.
type Store struct {
	mu    sync.RWMutex
	token string
}

func NewStore() *Store {
	return &Store{}
}

func NewStoreWithToken(token string) *Store {
	store := NewStore()
	store.SetToken(token)
	return store
}

func (s *Store) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != ""
}

func (s *Store) HasToken() bool {
	_, ok := s.Token()
	return ok
}

func (s *Store) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = strings.TrimSpace(token)
}

func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
}

// LoadFromFile returns an empty store when the file does not exist.
func LoadFromFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return NewStore(), nil
	}
	if err != nil {
		return nil, err
	}
	return NewStoreWithToken(string(data)), nil
}

// SaveToFile writes the token with owner-only permissions, or removes the file when there is no token.
func (s *Store) SaveToFile(path string) error {
	token, ok := s.Token()
	if !ok {
		err := os.Remove(path)
		if err != nil && !os.IsNotExist(err) {
			return err
		}
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(token), 0o600)
}
