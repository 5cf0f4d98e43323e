// Package store persists the player's local state as a single JSON
// document: theme, liked songs, the anonymous device ID, and the last
// known cloud session.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"iretro/cloud"
	"iretro/core"
)

const (
	configDirName = "iretro"
	prefsFileName = "prefs.json"

	DefaultTheme = "silver"
)

// Themes is the fixed palette of theme identifiers.
var Themes = []string{"silver", "blue", "pink", "yellow", "red"}

// Prefs is the persisted document.
type Prefs struct {
	Theme      string         `json:"theme"`
	LikedSongs []core.Track   `json:"liked_songs"`
	DeviceID   string         `json:"device_id"`
	Session    *cloud.Session `json:"session,omitempty"`
}

// Store reads and writes the preference document at a fixed path.
type Store struct {
	path string
}

// DefaultStore places the document under the user config dir:
// ~/.config/iretro/prefs.json on Linux.
func DefaultStore() (*Store, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("getting user config dir: %w", err)
	}
	return &Store{path: filepath.Join(configDir, configDirName, prefsFileName)}, nil
}

// NewStore creates a Store with a custom path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the file path where preferences are stored.
func (s *Store) Path() string {
	return s.path
}

func defaults() Prefs {
	return Prefs{
		Theme:    DefaultTheme,
		DeviceID: uuid.NewString(),
	}
}

// Load reads the document from disk. A missing or unreadable file yields
// defaults with a fresh device ID rather than an error; losing a corrupt
// prefs file is preferable to refusing to start.
func (s *Store) Load() Prefs {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			slog.Warn("reading prefs file", "path", s.path, "error", err)
		}
		return defaults()
	}

	var p Prefs
	if err := json.Unmarshal(data, &p); err != nil {
		slog.Warn("prefs file corrupt, starting fresh", "path", s.path, "error", err)
		return defaults()
	}

	if !ValidTheme(p.Theme) {
		p.Theme = DefaultTheme
	}
	if p.DeviceID == "" {
		p.DeviceID = uuid.NewString()
	}
	return p
}

// LoadOrCreate behaves like Load, but when no document exists yet it
// writes the defaults back out so the freshly minted device ID survives
// restarts instead of being re-minted every launch.
func (s *Store) LoadOrCreate() Prefs {
	if _, err := os.Stat(s.path); errors.Is(err, os.ErrNotExist) {
		p := defaults()
		if err := s.Save(p); err != nil {
			slog.Warn("persisting initial prefs", "path", s.path, "error", err)
		}
		return p
	}
	return s.Load()
}

// Save writes the document, creating the parent directory if needed.
func (s *Store) Save(p Prefs) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding prefs: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("writing prefs file: %w", err)
	}
	return nil
}

// ValidTheme reports whether name is one of the fixed theme identifiers.
func ValidTheme(name string) bool {
	for _, t := range Themes {
		if t == name {
			return true
		}
	}
	return false
}
