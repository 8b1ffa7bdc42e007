// Package localstore is the persistent local storage each surface keeps its
// token, cached profile and (for unauthenticated patients) appointments
// mirror in. One JSON file per key; unreadable or malformed state is treated
// as absent rather than fatal.
package localstore

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Store reads and writes JSON values under a directory.
type Store struct {
	dir string
}

// Open ensures the directory exists and returns a store over it.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Get unmarshals the value stored under key into v. It reports false when
// the key is missing or the stored bytes do not parse.
func (s *Store) Get(key string, v any) bool {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return false
	}
	return json.Unmarshal(data, v) == nil
}

// Set stores v under key, replacing any previous value.
func (s *Store) Set(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(key), data, 0o600)
}

// Remove deletes the value under key. Removing an absent key is not an error.
func (s *Store) Remove(key string) {
	_ = os.Remove(s.path(key))
}
