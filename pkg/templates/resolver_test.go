package templates_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/windysky/claude-notification-wsl2/pkg/templates"
)

func testSource() *templates.MapSource {
	return &templates.MapSource{
		Data: map[string]templates.Document{
			"en": {
				"tool_completed": {"title": "Done", "message": "Task {name} finished"},
				"error_occurred": {"title": "Error", "message": "Something went wrong"},
				"only_english":   {"title": "English only", "message": "No overlay for this one"},
			},
			"ko": {
				"tool_completed": {"title": "완료", "message": "작업 {name} 완료"},
			},
			"ja": {
				"broken": {"title": "タイトルのみ"},
			},
		},
	}
}

func newResolver(t *testing.T, source templates.Source) *templates.Resolver {
	t.Helper()
	r, err := templates.New(source)
	require.NoError(t, err)
	return r
}

func TestNewRequiresSource(t *testing.T) {
	_, err := templates.New(nil)
	require.Error(t, err)
}

func TestResolveExactEntry(t *testing.T) {
	r := newResolver(t, testSource())

	tmpl, err := r.Resolve(context.Background(), "tool_completed", "ko")
	require.NoError(t, err)
	assert.Equal(t, "완료", tmpl.Title)
	assert.Equal(t, "작업 {name} 완료", tmpl.Message)
}

func TestResolveKeyFallsBackToCanonical(t *testing.T) {
	r := newResolver(t, testSource())

	// "error_occurred" exists only in the canonical document.
	tmpl, err := r.Resolve(context.Background(), "error_occurred", "ko")
	require.NoError(t, err)
	assert.Equal(t, "Error", tmpl.Title)
	assert.Equal(t, "Something went wrong", tmpl.Message)
}

func TestResolveUnsupportedLanguageFallsBack(t *testing.T) {
	r := newResolver(t, testSource())

	tmpl, err := r.Resolve(context.Background(), "tool_completed", "fr")
	require.NoError(t, err)

	canonical, err := r.Resolve(context.Background(), "tool_completed", "en")
	require.NoError(t, err)
	assert.Equal(t, canonical, tmpl)
}

func TestResolveMissingDocumentFallsBack(t *testing.T) {
	r := newResolver(t, testSource())

	// "zh" is supported but has no document; resolution retries canonical.
	tmpl, err := r.Resolve(context.Background(), "tool_completed", "zh")
	require.NoError(t, err)
	assert.Equal(t, "Done", tmpl.Title)
}

func TestResolveCanonicalLoadFailure(t *testing.T) {
	r := newResolver(t, &templates.MapSource{Data: map[string]templates.Document{}})

	_, err := r.Resolve(context.Background(), "tool_completed", "en")
	require.Error(t, err)
	assert.ErrorIs(t, err, templates.ErrLoadFailed)
	assert.ErrorIs(t, err, templates.ErrDocumentNotFound)
}

func TestResolveTemplateNotFound(t *testing.T) {
	r := newResolver(t, testSource())

	_, err := r.Resolve(context.Background(), "no_such_key", "en")
	assert.ErrorIs(t, err, templates.ErrTemplateNotFound)

	// Absent everywhere: the cascade ends at canonical with the same error.
	_, err = r.Resolve(context.Background(), "no_such_key", "ja")
	assert.ErrorIs(t, err, templates.ErrTemplateNotFound)
}

func TestResolveMalformedTemplateNoFallback(t *testing.T) {
	source := testSource()
	// Canonical has a well-formed entry under the same key, which must NOT
	// mask the structural problem in the requested language.
	source.Data["en"]["broken"] = map[string]any{"title": "ok", "message": "ok"}
	r := newResolver(t, source)

	_, err := r.Resolve(context.Background(), "broken", "ja")
	assert.ErrorIs(t, err, templates.ErrMalformedTemplate)
}

func TestResolveMalformedVariants(t *testing.T) {
	source := &templates.MapSource{
		Data: map[string]templates.Document{
			"en": {
				"no_title":   {"message": "m"},
				"no_message": {"title": "t"},
				"not_a_map":  nil,
				"wrong_type": {"title": 42, "message": "m"},
			},
		},
	}
	r := newResolver(t, source)

	for _, key := range []string{"no_title", "no_message", "not_a_map", "wrong_type"} {
		_, err := r.Resolve(context.Background(), key, "en")
		assert.ErrorIs(t, err, templates.ErrMalformedTemplate, "key %s", key)
	}
}

func TestWithFallbackIgnoresUnsupportedCode(t *testing.T) {
	// WithFallback ignores unsupported codes, so the canonical stays "en"
	// and the contradictory unsupported-canonical state is unreachable via
	// configuration.
	r, err := templates.New(testSource(), templates.WithFallback("fr"))
	require.NoError(t, err)

	tmpl, err := r.Resolve(context.Background(), "tool_completed", "fr")
	require.NoError(t, err)
	assert.Equal(t, "Done", tmpl.Title)
}

func TestResolveCachesDocuments(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "en.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"greet":{"title":"Hi","message":"old"}}`), 0o644))

	r := newResolver(t, templates.NewDirSource(templates.NewJSONParser(), dir))

	tmpl, err := r.Resolve(context.Background(), "greet", "en")
	require.NoError(t, err)
	assert.Equal(t, "old", tmpl.Message)

	// Rewrite the file; the cached document must keep serving the old value.
	require.NoError(t, os.WriteFile(path, []byte(`{"greet":{"title":"Hi","message":"new"}}`), 0o644))

	tmpl, err = r.Resolve(context.Background(), "greet", "en")
	require.NoError(t, err)
	assert.Equal(t, "old", tmpl.Message)

	// Clearing the cache forces a re-read.
	r.ClearCache()

	tmpl, err = r.Resolve(context.Background(), "greet", "en")
	require.NoError(t, err)
	assert.Equal(t, "new", tmpl.Message)
}

func TestAvailableLanguages(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ja.json"), []byte(`{}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "en.json"), []byte(`{}`), 0o644))

	r := newResolver(t, templates.NewDirSource(templates.NewJSONParser(), dir))

	// Fixed canonical order regardless of creation order; ko and zh are
	// supported but have no backing files.
	assert.Equal(t, []string{"en", "ja"}, r.AvailableLanguages())

	// The probe reflects storage state at call time.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "zh.json"), []byte(`{}`), 0o644))
	assert.Equal(t, []string{"en", "ja", "zh"}, r.AvailableLanguages())
}

func TestResolveFormatted(t *testing.T) {
	r := newResolver(t, testSource())

	t.Run("all placeholders substituted", func(t *testing.T) {
		tmpl, err := r.ResolveFormatted(context.Background(), "tool_completed", "en", map[string]string{"name": "build"})
		require.NoError(t, err)
		assert.Equal(t, "Done", tmpl.Title)
		assert.Equal(t, "Task build finished", tmpl.Message)
	})

	t.Run("missing substitution keeps raw message", func(t *testing.T) {
		tmpl, err := r.ResolveFormatted(context.Background(), "tool_completed", "en", map[string]string{"other": "x"})
		require.NoError(t, err)
		assert.Equal(t, "Task {name} finished", tmpl.Message)
	})

	t.Run("nil params keep raw message", func(t *testing.T) {
		tmpl, err := r.ResolveFormatted(context.Background(), "tool_completed", "en", nil)
		require.NoError(t, err)
		assert.Equal(t, "Task {name} finished", tmpl.Message)
	})

	t.Run("resolution errors pass through", func(t *testing.T) {
		_, err := r.ResolveFormatted(context.Background(), "no_such_key", "en", map[string]string{"name": "x"})
		assert.ErrorIs(t, err, templates.ErrTemplateNotFound)
	})
}
