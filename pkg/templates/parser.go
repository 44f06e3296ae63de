package templates

import (
	"context"
	"strings"
)

// Document is a loosely typed per-language template document: template key to
// field map. Entries are kept untyped so that resolution can distinguish a
// missing key from an entry with missing fields. A non-map entry is stored as
// a nil field map and reported as malformed at resolve time.
type Document map[string]map[string]any

// Parser parses the serialized content of a template document.
type Parser interface {
	// Parse processes the given content and returns the template document.
	Parse(ctx context.Context, content string) (Document, error)

	// SupportsFileExtension checks if the parser supports a given file
	// extension, with or without a leading dot.
	SupportsFileExtension(ext string) bool
}

// ParserForFile returns a parser based on the file extension, or nil when the
// extension is not recognized.
func ParserForFile(filename string) Parser {
	ext := filename
	if idx := strings.LastIndex(filename, "."); idx != -1 {
		ext = filename[idx+1:]
	}

	switch strings.ToLower(ext) {
	case "json":
		return NewJSONParser()
	case "yaml", "yml":
		return NewYAMLParser()
	default:
		return nil
	}
}

// asDocument converts a raw decoded map into a Document, preserving entries
// whose value is not a map as nil field maps.
func asDocument(raw map[string]any) Document {
	doc := make(Document, len(raw))
	for key, val := range raw {
		if fields, ok := val.(map[string]any); ok {
			doc[key] = fields
			continue
		}
		doc[key] = nil
	}
	return doc
}
