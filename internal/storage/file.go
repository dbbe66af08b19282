package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileStore persists each collection as <dir>/<collection>.json. Writes go
// through a temp file and rename so a crash mid-write cannot leave a
// half-written collection behind.
type FileStore struct {
	mu  sync.Mutex
	dir string
}

// NewFileStore creates the data directory if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir %q: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

func (s *FileStore) Get(_ context.Context, collection string, dest interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path(collection))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading collection %q: %w", collection, err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("decoding collection %q: %w", collection, err)
	}
	return nil
}

func (s *FileStore) Set(_ context.Context, collection string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding collection %q: %w", collection, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tmp := s.path(collection) + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("writing collection %q: %w", collection, err)
	}
	if err := os.Rename(tmp, s.path(collection)); err != nil {
		return fmt.Errorf("replacing collection %q: %w", collection, err)
	}
	return nil
}

func (s *FileStore) Close() error {
	return nil
}
