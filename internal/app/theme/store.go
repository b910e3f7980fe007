package theme

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"folio/internal/app/errors"
	"folio/internal/config"
)

// state is the persisted theme record
type state struct {
	Theme     Theme     `json:"theme"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Store persists the theme across sessions
type Store interface {
	Read() (Theme, bool)
	Write(t Theme) error
	Clear() error
}

// fileStore implements Store on a small JSON state file
type fileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a Store backed by the given file path
func NewFileStore(path string) Store {
	return &fileStore{path: path}
}

// NewDefaultStore creates a Store under the user config directory, falling
// back to the working directory when it cannot be resolved
func NewDefaultStore() Store {
	return NewFileStore(statePath())
}

// Read returns the persisted theme. A missing file, unreadable file, or
// unknown value all report ok=false; callers fall back to the default.
func (s *fileStore) Read() (Theme, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.load()
	if err != nil {
		return Default, false
	}

	if !st.Theme.Valid() {
		return Default, false
	}

	return st.Theme, true
}

// Write persists the theme value
func (s *fileStore) Write(t Theme) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.save(&state{Theme: t, UpdatedAt: time.Now()})
}

// Clear removes the persisted theme; a missing file is not an error
func (s *fileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%w: %w", errors.ErrThemeStateWrite, err)
	}

	return nil
}

func (s *fileStore) save(st *state) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrThemeStateDirCreate, err)
	}

	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrThemeStateWrite, err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrThemeStateWrite, err)
	}

	return nil
}

func (s *fileStore) load() (*state, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ErrThemeStateNotFound
		}

		return nil, err
	}

	var st state
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrThemeStateCorrupted, err)
	}

	return &st, nil
}

func statePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}

	return filepath.Join(dir, config.ThemeStateDirName, config.ThemeStateFileName)
}
