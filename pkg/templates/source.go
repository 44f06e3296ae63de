package templates

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

// Source provides per-language template documents from some storage backend.
type Source interface {
	// Load reads and parses the document for the given language.
	Load(ctx context.Context, language string) (Document, error)

	// Exists reports whether a backing document exists for the language
	// without loading or validating it.
	Exists(language string) bool
}

// knownExtensions lists the file extensions a directory source probes, in
// preference order. The configured parser decides which of them apply.
var knownExtensions = []string{"json", "yaml", "yml"}

// DirSource reads documents from a directory holding one <language>.<ext>
// file per language.
type DirSource struct {
	parser Parser
	dir    string
}

// NewDirSource creates a new DirSource instance.
// Returns nil if parser is nil or dir is empty.
func NewDirSource(parser Parser, dir string) *DirSource {
	if parser == nil || dir == "" {
		return nil
	}
	return &DirSource{parser: parser, dir: dir}
}

// file returns the path of the first existing document file for the language.
func (s *DirSource) file(language string) (string, bool) {
	for _, ext := range knownExtensions {
		if !s.parser.SupportsFileExtension(ext) {
			continue
		}
		p := filepath.Join(s.dir, language+"."+ext)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, true
		}
	}
	return "", false
}

// Load implements the Source interface.
func (s *DirSource) Load(ctx context.Context, language string) (Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p, ok := s.file(language)
	if !ok {
		return nil, fmt.Errorf("%w: no %s document in %s", ErrDocumentNotFound, language, s.dir)
	}

	content, err := os.ReadFile(p)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("template file %q is empty", p)
	}

	return s.parser.Parse(ctx, string(content))
}

// Exists implements the Source interface.
func (s *DirSource) Exists(language string) bool {
	_, ok := s.file(language)
	return ok
}

// FSSource reads documents from an fs.FS, typically an embedded filesystem
// bundling default templates with the binary.
type FSSource struct {
	parser Parser
	fsys   fs.FS
	dir    string
}

// NewFSSource creates a new FSSource instance rooted at dir within fsys.
// Use "." for the filesystem root. Returns nil if parser or fsys is nil or
// dir is empty.
func NewFSSource(parser Parser, fsys fs.FS, dir string) *FSSource {
	if parser == nil || fsys == nil || dir == "" {
		return nil
	}
	return &FSSource{parser: parser, fsys: fsys, dir: dir}
}

func (s *FSSource) file(language string) (string, bool) {
	for _, ext := range knownExtensions {
		if !s.parser.SupportsFileExtension(ext) {
			continue
		}
		p := path.Join(s.dir, language+"."+ext)
		if info, err := fs.Stat(s.fsys, p); err == nil && !info.IsDir() {
			return p, true
		}
	}
	return "", false
}

// Load implements the Source interface.
func (s *FSSource) Load(ctx context.Context, language string) (Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p, ok := s.file(language)
	if !ok {
		return nil, fmt.Errorf("%w: no %s document in %s", ErrDocumentNotFound, language, s.dir)
	}

	content, err := fs.ReadFile(s.fsys, p)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("template file %q is empty", p)
	}

	return s.parser.Parse(ctx, string(content))
}

// Exists implements the Source interface.
func (s *FSSource) Exists(language string) bool {
	_, ok := s.file(language)
	return ok
}

// MapSource serves documents from an in-memory map, keyed by language code.
// Useful for tests and for callers that assemble templates programmatically.
type MapSource struct {
	Data map[string]Document
}

// Load implements the Source interface.
func (s *MapSource) Load(_ context.Context, language string) (Document, error) {
	doc, ok := s.Data[language]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrDocumentNotFound, language)
	}
	return doc, nil
}

// Exists implements the Source interface.
func (s *MapSource) Exists(language string) bool {
	_, ok := s.Data[language]
	return ok
}
