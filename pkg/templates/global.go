package templates

import (
	"context"
	"os"
	"path/filepath"
	"sync"
)

var (
	defaultMu       sync.Mutex
	defaultResolver *Resolver
)

// DefaultDir returns the default template directory,
// ~/.wsl-toast/templates.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".wsl-toast", "templates"), nil
}

// Default returns the process-wide resolver, creating it on first use over
// the default template directory with JSON documents. Use SetDefault to
// install a resolver over a different storage location.
func Default() (*Resolver, error) {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultResolver != nil {
		return defaultResolver, nil
	}

	dir, err := DefaultDir()
	if err != nil {
		return nil, err
	}

	r, err := New(NewDirSource(NewJSONParser(), dir))
	if err != nil {
		return nil, err
	}

	defaultResolver = r
	return r, nil
}

// SetDefault replaces the process-wide resolver.
func SetDefault(r *Resolver) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultResolver = r
}

// ResetDefault drops the process-wide resolver; the next call to Default
// recreates it over the default directory. Intended for tests.
func ResetDefault() {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultResolver = nil
}

// Resolve resolves a template using the process-wide resolver.
func Resolve(ctx context.Context, key, language string) (Template, error) {
	r, err := Default()
	if err != nil {
		return Template{}, err
	}
	return r.Resolve(ctx, key, language)
}

// ResolveFormatted resolves and formats a template using the process-wide
// resolver.
func ResolveFormatted(ctx context.Context, key, language string, params map[string]string) (Template, error) {
	r, err := Default()
	if err != nil {
		return Template{}, err
	}
	return r.ResolveFormatted(ctx, key, language, params)
}
