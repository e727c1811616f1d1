// Package memory provides an in-memory ConfigStore for tests and for runs
// that must not touch the user's config directory.
package memory

import (
	"sync"

	"github.com/custodia-labs/ghsuggest/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore is an in-memory implementation of driven.ConfigStore.
// SetErr makes every Set fail, for exercising error paths.
type ConfigStore struct {
	mu     sync.RWMutex
	values map[string]any
	sets   int

	SetErr error
}

// NewConfigStore creates an empty in-memory config store.
func NewConfigStore() *ConfigStore {
	return NewConfigStoreFrom(nil)
}

// NewConfigStoreFrom creates a store seeded with dot-notation values.
func NewConfigStoreFrom(values map[string]any) *ConfigStore {
	s := &ConfigStore{values: make(map[string]any, len(values))}
	for k, v := range values {
		s.values[k] = v
	}
	return s
}

// Get retrieves a configuration value by key.
func (s *ConfigStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.values[key]
	return val, ok
}

// GetString retrieves a string configuration value.
func (s *ConfigStore) GetString(key string) string {
	str, _ := getAs[string](s, key)
	return str
}

// GetInt retrieves an integer configuration value.
// Accepts the integer shapes TOML and JSON decoders produce.
func (s *ConfigStore) GetInt(key string) int {
	val, ok := s.Get(key)
	if !ok {
		return 0
	}
	switch v := val.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}

// Set stores a configuration value.
func (s *ConfigStore) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SetErr != nil {
		return s.SetErr
	}
	s.values[key] = value
	s.sets++
	return nil
}

// Sets returns how many values have been stored successfully.
func (s *ConfigStore) Sets() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sets
}

// Save is a no-op.
func (s *ConfigStore) Save() error {
	return nil
}

// Load is a no-op.
func (s *ConfigStore) Load() error {
	return nil
}

// Path returns a marker instead of a file path.
func (s *ConfigStore) Path() string {
	return ":memory:"
}

func getAs[T any](s *ConfigStore, key string) (T, bool) {
	var zero T
	val, ok := s.Get(key)
	if !ok {
		return zero, false
	}
	t, ok := val.(T)
	if !ok {
		return zero, false
	}
	return t, true
}
