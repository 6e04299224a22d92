package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// FileStore is a Store persisted as a flat JSON object in a single file
type FileStore struct {
	fs     afero.Fs
	path   string
	logger *zap.Logger

	mu     sync.Mutex
	data   map[string]string
	loaded bool
}

// NewFileStore creates a FileStore at path on fs. Nothing is read until first use.
func NewFileStore(fs afero.Fs, path string, logger *zap.Logger) *FileStore {
	return &FileStore{
		fs:     fs,
		path:   path,
		logger: logger,
	}
}

// Get returns the value stored under key
func (s *FileStore) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(); err != nil {
		return "", false, err
	}

	value, ok := s.data[key]
	return value, ok, nil
}

// Set stores value under key and flushes the whole file
func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(); err != nil {
		return err
	}

	s.data[key] = value
	if err := s.save(); err != nil {
		return err
	}

	s.logger.Debug("Store value written",
		zap.String("key", key),
		zap.String("path", s.path))

	return nil
}

// load reads the state file once; a missing file is an empty store
func (s *FileStore) load() error {
	if s.loaded {
		return nil
	}

	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.data = make(map[string]string)
			s.loaded = true
			return nil
		}
		return fmt.Errorf("failed to read state file: %w", err)
	}

	state := make(map[string]string)
	if len(data) > 0 {
		if err := json.Unmarshal(data, &state); err != nil {
			return fmt.Errorf("failed to parse state file: %w", err)
		}
	}

	s.data = state
	s.loaded = true
	s.logger.Debug("State file loaded",
		zap.String("path", s.path),
		zap.Int("keys", len(state)))

	return nil
}

// save writes to a temp file and renames it over the state file
func (s *FileStore) save() error {
	data, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create state dir: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}
	if err := s.fs.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace state file: %w", err)
	}

	return nil
}
