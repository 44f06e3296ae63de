package templates

import "errors"

// Resolution errors. All four are terminal: the fallback cascade absorbs
// intermediate-language failures internally, so these surface only when the
// canonical language itself cannot satisfy the request (or, for
// ErrMalformedTemplate, when a found entry is structurally broken).
var (
	// ErrUnsupportedLanguage indicates the requested language is outside the
	// supported set and no fallback is possible.
	ErrUnsupportedLanguage = errors.New("unsupported language")

	// ErrTemplateNotFound indicates the key is absent even from the canonical
	// language document.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrMalformedTemplate indicates an entry exists but is missing its title
	// or message field. Structural corruption is never masked by fallback.
	ErrMalformedTemplate = errors.New("malformed template")

	// ErrLoadFailed indicates the canonical language document could not be
	// loaded from storage.
	ErrLoadFailed = errors.New("failed to load template document")
)

// Storage and parsing errors, wrapped into load failures by the sources.
var (
	ErrDocumentNotFound  = errors.New("template document not found")
	ErrFailedToReadFile  = errors.New("failed to read template file")
	ErrFailedToParseJSON = errors.New("failed to parse JSON template document")
	ErrFailedToParseYAML = errors.New("failed to parse YAML template document")
)

// Formatting errors, returned by FormatMessage. ResolveFormatted recovers
// from both by keeping the unformatted message.
var (
	ErrMalformedPlaceholder = errors.New("malformed placeholder")
	ErrMissingSubstitution  = errors.New("missing substitution value")
)
