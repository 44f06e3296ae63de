// Package templates resolves notification templates across languages with a
// deterministic fallback to the canonical language.
//
// Templates live in per-language documents, one per supported language code
// (see the lang package), each mapping a template key such as
// "tool_completed" to a title and message pair. The canonical language is
// expected to carry every key; other languages are partial overlays. When a
// requested language is unsupported, its document is missing or unparseable,
// or the key is absent, resolution retries once against the canonical
// language — never against any intermediate language, and never merging
// fields across languages.
//
// Documents are loaded lazily through a Source and cached per language for
// the lifetime of the resolver; ClearCache drops the cache so the next
// resolution re-reads storage.
//
// # Usage
//
//	source := templates.NewDirSource(templates.NewJSONParser(), "./templates")
//	resolver, err := templates.New(source)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	tmpl, err := resolver.Resolve(ctx, "tool_completed", "ko")
//	if err != nil {
//		// errors.Is against ErrUnsupportedLanguage, ErrTemplateNotFound,
//		// ErrMalformedTemplate or ErrLoadFailed.
//	}
//
// ResolveFormatted additionally substitutes named {placeholder} parameters
// into the message. Substitution is best effort: a missing parameter or a
// malformed placeholder leaves the message untouched rather than failing the
// notification or producing a partially substituted string.
//
// A process-wide default resolver over the default template directory is
// available through Default, with SetDefault and ResetDefault providing an
// explicit lifecycle for tests and custom storage locations.
package templates
