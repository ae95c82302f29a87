package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/abreai/abreai-api/utils"
)

// FileStore keeps one <key>.json file per storage key under a data
// directory. Writes go through a temp file and rename so a crashed write
// never leaves a half-written collection behind.
type FileStore struct {
	dir string
}

// NewFileStore creates the data directory if needed and returns the store
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %v", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Get reads and decodes the collection stored under key. Missing and
// corrupt files both degrade to ErrNotFound; corruption is logged.
func (s *FileStore) Get(key string, dest interface{}) error {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrNotFound
		}
		utils.LogError("Failed to read state for key %s: %v", key, err)
		return ErrNotFound
	}
	if err := json.Unmarshal(data, dest); err != nil {
		utils.LogError("Corrupt state for key %s, falling back to empty: %v", key, err)
		return ErrNotFound
	}
	return nil
}

// Put serializes the value and replaces the key's file atomically
func (s *FileStore) Put(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to serialize state for key %s: %v", key, err)
	}

	tmp, err := os.CreateTemp(s.dir, key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file for key %s: %v", key, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write state for key %s: %v", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp file for key %s: %v", key, err)
	}
	if err := os.Rename(tmp.Name(), s.path(key)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace state for key %s: %v", key, err)
	}
	return nil
}

// Delete removes the key's file if present
func (s *FileStore) Delete(key string) error {
	if err := os.Remove(s.path(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete state for key %s: %v", key, err)
	}
	return nil
}
