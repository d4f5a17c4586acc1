package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const fileStoreVersion = "1.0"

// fileStoreDocument is the on-disk layout of a FileStore.
type fileStoreDocument struct {
	Version string            `json:"version"`
	Entries map[string]string `json:"entries"`
}

// FileStore persists entries to a single JSON document. Every Set and
// Delete rewrites the document atomically.
type FileStore struct {
	path    string
	mu      sync.RWMutex
	version string
	entries map[string]string
}

// NewFileStore creates a FileStore and loads it from disk. A missing file
// yields an empty store; a malformed file is an error.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{
		path:    path,
		version: fileStoreVersion,
		entries: make(map[string]string),
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	if err := s.Load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	}

	return s, nil
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the document from disk, replacing in-memory entries.
func (s *FileStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}

	var doc fileStoreDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse store %s: %w", s.path, err)
	}

	s.version = doc.Version
	s.entries = doc.Entries
	if s.entries == nil {
		s.entries = make(map[string]string)
	}

	return nil
}

// Get returns the value stored under key.
func (s *FileStore) Get(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.entries[key]
	if !ok {
		return nil, ErrNotFound
	}
	return []byte(value), nil
}

// Set stores value under key and flushes to disk. The in-memory entry is
// rolled back if the flush fails.
func (s *FileStore) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous, existed := s.entries[key]
	s.entries[key] = string(value)

	if err := s.save(); err != nil {
		if existed {
			s.entries[key] = previous
		} else {
			delete(s.entries, key)
		}
		return err
	}
	return nil
}

// Delete removes key and flushes to disk.
func (s *FileStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[key]; !ok {
		return nil
	}
	delete(s.entries, key)
	return s.save()
}

// save writes the document atomically. Callers hold the write lock.
func (s *FileStore) save() error {
	doc := fileStoreDocument{
		Version: s.version,
		Entries: s.entries,
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal store: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}

var _ Store = (*FileStore)(nil)
