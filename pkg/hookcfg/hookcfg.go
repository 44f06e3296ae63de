package hookcfg

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Package-specific errors.
var (
	// ErrNoHooks indicates the settings document has no hooks section.
	ErrNoHooks = errors.New("no hooks section in settings document")

	// ErrInvalidSettings indicates the settings file is not valid JSON.
	ErrInvalidSettings = errors.New("invalid settings document")
)

// sessionEvents are the hook events that take no matcher.
var sessionEvents = []string{"SessionStart", "SessionEnd"}

// Fix normalizes the hooks configuration in the settings file at path,
// writing the document back only when something changed. It reports whether
// the file was modified.
func Fix(path string) (bool, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}

	var doc map[string]any
	if err := json.Unmarshal(content, &doc); err != nil {
		return false, errors.Join(ErrInvalidSettings, err)
	}

	changed, err := Apply(doc)
	if err != nil || !changed {
		return false, err
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return false, err
	}
	out = append(out, '\n')

	if err := os.WriteFile(path, out, 0o644); err != nil {
		return false, err
	}
	return true, nil
}

// Apply normalizes the hooks section of a decoded settings document in
// place and reports whether anything changed.
func Apply(doc map[string]any) (bool, error) {
	hooks, ok := doc["hooks"].(map[string]any)
	if !ok {
		return false, ErrNoHooks
	}

	changed := false

	for _, event := range sessionEvents {
		if fixSessionEvent(hooks, event) {
			changed = true
		}
	}

	if entries, ok := hooks["PostToolUse"].([]any); ok {
		for _, raw := range entries {
			entry, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			if fixMatcher(entry) {
				changed = true
			}
		}
	}

	return changed, nil
}

// fixSessionEvent wraps bare hook arrays and strips empty matchers for
// events that take no matcher.
func fixSessionEvent(hooks map[string]any, event string) bool {
	entries, ok := hooks[event].([]any)
	if !ok || len(entries) == 0 {
		return false
	}

	first, isMap := entries[0].(map[string]any)
	if !isMap {
		hooks[event] = []any{map[string]any{"hooks": entries}}
		return true
	}

	if _, hasHooks := first["hooks"]; !hasHooks {
		// Old format: a bare array of hook commands.
		hooks[event] = []any{map[string]any{"hooks": entries}}
		return true
	}

	if matcher, hasMatcher := first["matcher"]; hasMatcher {
		if m, ok := matcher.(map[string]any); ok && len(m) == 0 {
			delete(first, "matcher")
			return true
		}
	}

	return false
}

// fixMatcher coerces a PostToolUse matcher to a string pattern.
func fixMatcher(entry map[string]any) bool {
	raw, ok := entry["matcher"]
	if !ok {
		return false
	}

	switch matcher := raw.(type) {
	case string:
		return false
	case map[string]any:
		toolsRaw, ok := matcher["tools"]
		if !ok {
			return false
		}
		if tools, ok := toolsRaw.([]any); ok {
			parts := make([]string, 0, len(tools))
			for _, tool := range tools {
				parts = append(parts, fmt.Sprint(tool))
			}
			entry["matcher"] = strings.Join(parts, "|")
		} else {
			entry["matcher"] = fmt.Sprint(toolsRaw)
		}
		return true
	default:
		entry["matcher"] = fmt.Sprint(matcher)
		return true
	}
}
