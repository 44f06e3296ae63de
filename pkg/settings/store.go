package settings

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"sync"

	"github.com/windysky/claude-notification-wsl2/pkg/lang"
	"github.com/windysky/claude-notification-wsl2/pkg/notify"
)

// fileName is the settings document name inside the config directory.
const fileName = "config.json"

// Values is the flat settings document. Unknown keys pass through untouched.
type Values map[string]any

// Defaults returns the documented default settings.
func Defaults() Values {
	return Values{
		"enabled":          true,
		"default_type":     string(notify.TypeInformation),
		"default_duration": string(notify.DurationNormal),
		"language":         lang.Fallback,
		"sound_enabled":    true,
		"position":         string(notify.PositionTopRight),
	}
}

// Merge overlays override on top of base and returns the merged document.
// Neither input is modified.
func Merge(base, override Values) Values {
	merged := maps.Clone(base)
	if merged == nil {
		merged = make(Values, len(override))
	}
	maps.Copy(merged, override)
	return merged
}

// DefaultDir returns the default config directory, ~/.wsl-toast.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".wsl-toast"), nil
}

// Store reads and writes the settings document of one config directory,
// caching the loaded document until Save or ClearCache. Safe for concurrent
// use.
type Store struct {
	dir    string
	logger *slog.Logger

	mu    sync.Mutex
	cache Values
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithStoreLogger sets the logger used to report degraded loads.
// If not specified, a discard logger is used.
func WithStoreLogger(logger *slog.Logger) StoreOption {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewStore creates a Store bound to the given config directory, or to the
// default directory when dir is empty.
func NewStore(dir string, opts ...StoreOption) (*Store, error) {
	if dir == "" {
		var err error
		dir, err = DefaultDir()
		if err != nil {
			return nil, err
		}
	}

	s := &Store{
		dir:    dir,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Path returns the settings file path.
func (s *Store) Path() string {
	return filepath.Join(s.dir, fileName)
}

// Exists reports whether the settings file exists.
func (s *Store) Exists() bool {
	info, err := os.Stat(s.Path())
	return err == nil && !info.IsDir()
}

// Load returns the settings document: the file content merged over the
// defaults. A missing, unreadable or malformed file degrades to pure
// defaults. The result is cached until Save or ClearCache; the returned map
// is a copy and safe to modify.
func (s *Store) Load() Values {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cache == nil {
		s.cache = s.read()
	}
	return maps.Clone(s.cache)
}

func (s *Store) read() Values {
	values := Defaults()

	content, err := os.ReadFile(s.Path())
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.logger.Warn("Settings file unreadable, using defaults",
				slog.String("path", s.Path()),
				slog.String("error", err.Error()),
			)
		}
		return values
	}

	var fileValues Values
	if err := json.Unmarshal(content, &fileValues); err != nil {
		s.logger.Warn("Settings file malformed, using defaults",
			slog.String("path", s.Path()),
			slog.String("error", err.Error()),
		)
		return values
	}

	return Merge(values, fileValues)
}

// Save persists the document and invalidates the cache so the next Load
// re-reads the file.
func (s *Store) Save(v Values) error {
	content, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Join(ErrFailedToWrite, err)
	}
	content = append(content, '\n')

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return errors.Join(ErrFailedToWrite, err)
	}
	if err := os.WriteFile(s.Path(), content, 0o644); err != nil {
		return errors.Join(ErrFailedToWrite, err)
	}

	s.mu.Lock()
	s.cache = nil
	s.mu.Unlock()

	return nil
}

// Get returns the value for key, falling back to def when the key is absent.
func (s *Store) Get(key string, def any) any {
	values := s.Load()
	if val, ok := values[key]; ok {
		return val
	}
	return def
}

// Set updates a single key and persists the whole document.
func (s *Store) Set(key string, value any) error {
	values := s.Load()
	values[key] = value
	return s.Save(values)
}

// Reset persists the default settings.
func (s *Store) Reset() error {
	return s.Save(Defaults())
}

// ClearCache drops the cached document; the next Load re-reads the file.
func (s *Store) ClearCache() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache = nil
}
