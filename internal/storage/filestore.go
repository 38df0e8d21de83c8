package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/muhhuz-coder/volunteerBazaarFullstack-sub001/pkg/logger"
)

// FileStore persists each dataset as one JSON file under a data directory.
// This mirrors the flat-file model the application started with: every
// mutation rewrites the whole file. Writes go through a temp file and rename
// so a load never observes a partially written dataset.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore creates the data directory if needed and returns the store.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %v", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Load reads the dataset file for key. A missing file is not an error; out
// keeps its caller-supplied default.
func (s *FileStore) Load(ctx context.Context, key string, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		logger.Log.WithError(err).WithField("dataset", key).Error("Failed to read dataset file")
		return fmt.Errorf("failed to load dataset %q: %v", key, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		logger.Log.WithError(err).WithField("dataset", key).Error("Failed to decode dataset file")
		return fmt.Errorf("failed to decode dataset %q: %v", key, err)
	}
	return nil
}

// Save replaces the dataset file for key.
func (s *FileStore) Save(ctx context.Context, key string, value any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode dataset %q: %v", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		logger.Log.WithError(err).WithField("dataset", key).Error("Failed to write dataset file")
		return fmt.Errorf("failed to save dataset %q: %v", key, err)
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		logger.Log.WithError(err).WithField("dataset", key).Error("Failed to replace dataset file")
		return fmt.Errorf("failed to save dataset %q: %v", key, err)
	}
	return nil
}
