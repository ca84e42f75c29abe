package settings

import (
	"fmt"
	"sync"
)

// Store is the single owner of the live settings. Callers read immutable
// snapshots and change settings only through Update, which persists every
// accepted change.
type Store struct {
	mu       sync.RWMutex
	path     string
	settings Settings
}

// Open loads the settings at path into a new Store.
func Open(path string) (*Store, error) {
	s, err := Load(path)
	if err != nil {
		return nil, err
	}
	return NewStore(path, s), nil
}

// NewStore wraps s without touching the file system.
func NewStore(path string, s Settings) *Store {
	return &Store{path: path, settings: s.Clone()}
}

// Path returns the file the store writes to. Empty means the default path.
func (s *Store) Path() string {
	return s.path
}

// Snapshot returns a copy of the current settings.
func (s *Store) Snapshot() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings.Clone()
}

// Update applies fn to a copy of the current settings, validates and saves
// the result, and only then makes it current. The stored settings are left
// untouched when any step fails.
func (s *Store) Update(fn func(*Settings) error) (Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.settings.Clone()
	if err := fn(&next); err != nil {
		return s.settings.Clone(), err
	}
	if err := next.Validate(); err != nil {
		return s.settings.Clone(), err
	}
	if err := Save(s.path, next); err != nil {
		return s.settings.Clone(), fmt.Errorf("save settings: %w", err)
	}
	s.settings = next
	return next.Clone(), nil
}

// Set is a shorthand for an Update that changes a single key.
func (s *Store) Set(key, value string) (Settings, error) {
	return s.Update(func(next *Settings) error {
		return next.Set(key, value)
	})
}
