package client

import (
	"errors"
	"os"
	"strings"
)

// TokenStore persists the identity token between client instances, mirroring
// the browser's durable storage role.
type TokenStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// FileTokenStore keeps the token in a single file with owner-only permissions.
type FileTokenStore struct {
	Path string
}

func NewFileTokenStore(path string) *FileTokenStore {
	return &FileTokenStore{Path: path}
}

// Load returns the stored token, or "" when none has been saved.
func (s *FileTokenStore) Load() (string, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func (s *FileTokenStore) Save(token string) error {
	return os.WriteFile(s.Path, []byte(token), 0o600)
}

func (s *FileTokenStore) Clear() error {
	err := os.Remove(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// memoryTokenStore is the fallback used when no store is supplied.
type memoryTokenStore struct {
	token string
}

func (s *memoryTokenStore) Load() (string, error)   { return s.token, nil }
func (s *memoryTokenStore) Save(token string) error { s.token = token; return nil }
func (s *memoryTokenStore) Clear() error            { s.token = ""; return nil }
