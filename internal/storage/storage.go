// Package storage provides the local key-value persistence used for theme
// settings. Values are opaque byte blobs keyed by string, the same contract
// a browser's localStorage offers.
package storage

import (
	"errors"
	"sort"
	"sync"
)

var (
	// ErrNotFound is returned by Get when the key has never been written.
	ErrNotFound = errors.New("key not found")

	// ErrQuotaExceeded is returned by Set when the write would exceed the
	// configured capacity.
	ErrQuotaExceeded = errors.New("storage quota exceeded")
)

// Store is a string-keyed blob store.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

// MemoryStore keeps values in process memory. A non-zero quota bounds the
// total number of value bytes held.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string][]byte
	quota  int
}

// MemoryOption customises a MemoryStore.
type MemoryOption func(*MemoryStore)

// WithQuota bounds the total value bytes a MemoryStore accepts.
func WithQuota(bytes int) MemoryOption {
	return func(s *MemoryStore) {
		s.quota = bytes
	}
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore(opts ...MemoryOption) *MemoryStore {
	s := &MemoryStore{values: make(map[string][]byte)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns a copy of the stored value.
func (s *MemoryStore) Get(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), value...), nil
}

// Set stores a copy of value under key.
func (s *MemoryStore) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.quota > 0 {
		used := len(value)
		for k, v := range s.values {
			if k != key {
				used += len(v)
			}
		}
		if used > s.quota {
			return ErrQuotaExceeded
		}
	}

	s.values[key] = append([]byte(nil), value...)
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *MemoryStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
	return nil
}

// Keys lists stored keys in sorted order.
func (s *MemoryStore) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var _ Store = (*MemoryStore)(nil)
