package templates

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/windysky/claude-notification-wsl2/pkg/lang"
)

// Template is a resolved notification template.
type Template struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// Resolver resolves (key, language) pairs to templates, caching document
// loads per language. Safe for concurrent use.
type Resolver struct {
	source   Source
	fallback string
	logger   *slog.Logger

	mu    sync.RWMutex
	cache map[string]Document
}

// Option is a function that configures a Resolver instance.
type Option func(*Resolver)

// WithLogger provides a logger for fallback diagnostics.
// If not specified, a discard logger is used.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithFallback overrides the canonical fallback language. Unsupported codes
// are ignored, keeping lang.Fallback.
func WithFallback(code string) Option {
	return func(r *Resolver) {
		if lang.IsSupported(code) {
			r.fallback = code
		}
	}
}

// New creates a new Resolver reading documents from the given source.
func New(source Source, opts ...Option) (*Resolver, error) {
	if source == nil {
		return nil, fmt.Errorf("source is nil")
	}

	r := &Resolver{
		source:   source,
		fallback: lang.Fallback,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		cache:    make(map[string]Document),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

// Resolve resolves key in the requested language, falling back to the
// canonical language when the language is unsupported, its document cannot be
// loaded, or the key is absent. The fallback chain has depth one: requested
// language, then canonical, nothing in between.
//
// Terminal failures are ErrUnsupportedLanguage, ErrLoadFailed,
// ErrTemplateNotFound and ErrMalformedTemplate; the last one is returned
// without any fallback attempt since a present-but-broken entry indicates
// corrupted data that fallback would only mask.
func (r *Resolver) Resolve(ctx context.Context, key, language string) (Template, error) {
	chain := []string{language}
	if language != r.fallback {
		chain = append(chain, r.fallback)
	}

	for i, code := range chain {
		last := i == len(chain)-1

		if !lang.IsSupported(code) {
			if last {
				return Template{}, fmt.Errorf("%w: %s", ErrUnsupportedLanguage, code)
			}
			continue
		}

		doc, err := r.document(ctx, code)
		if err != nil {
			if last {
				return Template{}, errors.Join(ErrLoadFailed, err)
			}
			r.logger.LogAttrs(ctx, slog.LevelWarn, "Template document unavailable, falling back",
				slog.String("language", code),
				slog.String("fallback", r.fallback),
				slog.String("error", err.Error()),
			)
			continue
		}

		entry, ok := doc[key]
		if !ok {
			if last {
				return Template{}, fmt.Errorf("%w: %s", ErrTemplateNotFound, key)
			}
			continue
		}

		return templateFromEntry(key, entry)
	}

	// Unreachable: the chain always ends in a terminal branch.
	return Template{}, fmt.Errorf("%w: %s", ErrTemplateNotFound, key)
}

// ResolveFormatted resolves key like Resolve, then substitutes the named
// {placeholder} parameters into the message. Substitution is best effort: if
// any placeholder is malformed or lacks a value, the unformatted message is
// returned so formatting problems never block a notification.
func (r *Resolver) ResolveFormatted(ctx context.Context, key, language string, params map[string]string) (Template, error) {
	tmpl, err := r.Resolve(ctx, key, language)
	if err != nil {
		return Template{}, err
	}

	if len(params) == 0 {
		return tmpl, nil
	}

	formatted, err := FormatMessage(tmpl.Message, params)
	if err != nil {
		r.logger.LogAttrs(ctx, slog.LevelWarn, "Message formatting failed, using raw template",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		return tmpl, nil
	}

	tmpl.Message = formatted
	return tmpl, nil
}

// AvailableLanguages returns the supported languages whose backing document
// currently exists in storage, in the fixed supported-language order. The
// probe is not cached and does not load or validate the documents.
func (r *Resolver) AvailableLanguages() []string {
	codes := lang.Supported()
	available := make([]string, 0, len(codes))
	for _, code := range codes {
		if r.source.Exists(code) {
			available = append(available, code)
		}
	}
	return available
}

// ClearCache drops all cached documents so subsequent resolutions reload
// from storage.
func (r *Resolver) ClearCache() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache = make(map[string]Document)
}

// document returns the cached document for a language, loading it on first
// request.
func (r *Resolver) document(ctx context.Context, language string) (Document, error) {
	r.mu.RLock()
	doc, ok := r.cache[language]
	r.mu.RUnlock()
	if ok {
		return doc, nil
	}

	doc, err := r.source.Load(ctx, language)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.cache[language] = doc
	r.mu.Unlock()

	return doc, nil
}

// templateFromEntry validates that an entry carries both required fields.
func templateFromEntry(key string, entry map[string]any) (Template, error) {
	title, okTitle := entry["title"].(string)
	message, okMessage := entry["message"].(string)
	if !okTitle || !okMessage {
		return Template{}, fmt.Errorf("%w: %s", ErrMalformedTemplate, key)
	}
	return Template{Title: title, Message: message}, nil
}
