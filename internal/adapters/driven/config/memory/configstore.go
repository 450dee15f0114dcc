// Package memory provides an in-memory configuration store.
// It backs the application when no config directory is writable and
// stands in for the TOML store in tests.
package memory

import (
	"maps"
	"sync"

	"github.com/custodia-labs/sercha-finder/internal/adapters/driven/config"
	"github.com/custodia-labs/sercha-finder/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore is an in-memory implementation of driven.ConfigStore.
// Load restores the seed values the store was created with.
type ConfigStore struct {
	mu     sync.RWMutex
	seed   map[string]any
	values map[string]any
}

// NewConfigStore creates an empty in-memory config store.
func NewConfigStore() *ConfigStore {
	return NewConfigStoreWith(nil)
}

// NewConfigStoreWith creates an in-memory config store seeded with values.
func NewConfigStoreWith(seed map[string]any) *ConfigStore {
	s := &ConfigStore{seed: maps.Clone(seed)}
	if s.seed == nil {
		s.seed = make(map[string]any)
	}
	s.values = maps.Clone(s.seed)
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
	val, _ := s.Get(key)
	return config.AsString(val)
}

// GetInt retrieves an integer configuration value.
func (s *ConfigStore) GetInt(key string) int {
	val, _ := s.Get(key)
	return config.AsInt(val)
}

// GetFloat retrieves a numeric configuration value.
func (s *ConfigStore) GetFloat(key string) (float64, bool) {
	val, _ := s.Get(key)
	return config.AsFloat(val)
}

// Set stores a configuration value.
func (s *ConfigStore) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

// Save is a no-op; values live only for the process lifetime.
func (s *ConfigStore) Save() error {
	return nil
}

// Load discards changes and restores the seed values.
func (s *ConfigStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = maps.Clone(s.seed)
	return nil
}

// Path returns the configuration file path.
func (s *ConfigStore) Path() string {
	return ":memory:"
}
