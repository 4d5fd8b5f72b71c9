// Package fileaccess is the uniform random-access read layer over a
// package root (spec §4.1). It is modeled as a capability interface,
// not a class hierarchy: the directory, ZIP, and S3-like remote
// variants differ only in construction and per-operation bodies, the
// way the teacher's FileSystemInterface abstracts RealFileSystem vs.
// test doubles in internal/core/file_service.go.
package fileaccess

import (
	"errors"
	"io"
	"strings"

	"github.com/standardbeagle/elearning-parser/internal/elerrors"
)

// ErrNotFound is the sentinel wrapped by every *elerrors.FileAccessError
// with Kind KindFileAccessNotFound.
var ErrNotFound = errors.New("fileaccess: no entry matches path")

// RootPath is an opaque identifier for a package location. Its
// semantics depend on the FileAccess variant: a filesystem path for
// Directory, an archive path for ZIP, an "s3://bucket/prefix" URI for
// Remote.
type RootPath string

// FileAccess is the uniform read-only view of a package as a tree of
// files addressable by forward-slash relative path.
type FileAccess interface {
	// Exists reports whether at least one stored entry matches path,
	// case-insensitively.
	Exists(path string) bool

	// List returns every stored entry within dir (empty dir means the
	// root), including nested descendants in their stored form. Order
	// is not guaranteed (spec §5).
	List(dir string) ([]string, error)

	// Open returns an independent, positioned reader over path. The
	// caller owns the returned stream and must Close it on every exit
	// path. Fails with a *elerrors.FileAccessError{Kind:
	// KindFileAccessNotFound} if no entry matches.
	Open(path string) (io.ReadCloser, error)

	// Root returns the opaque root identifier this instance was
	// constructed over.
	Root() RootPath

	// Close releases any resources the variant holds open (archive
	// handles, cached listings). Safe to call more than once.
	Close() error
}

// normalize converts a path to the internal forward-slash, no-leading-
// slash, cleaned form every variant indexes by. This is the single
// place path joining happens so every variant treats ".." and
// leading-slash input identically.
func normalize(path string) string {
	path = strings.ReplaceAll(path, `\`, "/")
	path = strings.TrimPrefix(path, "/")
	parts := strings.Split(path, "/")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		switch p {
		case "", ".":
			continue
		case "..":
			if len(out) > 0 {
				out = out[:len(out)-1]
			}
		default:
			out = append(out, p)
		}
	}
	return strings.Join(out, "/")
}

// caseFold is the case-insensitive comparison key for a normalized
// path. Stored-casing is preserved in the index; only lookups fold.
func caseFold(path string) string {
	return strings.ToLower(path)
}

// index is the shared case-insensitive lookup table every in-memory
// variant (ZIP, Remote) builds once at construction. Directory does
// its own stat-based lookup since walking the whole tree up front
// would defeat lazy filesystem access.
type index struct {
	// foldToStored maps the case-folded path to its stored-casing form.
	foldToStored map[string]string
}

func newIndex(storedPaths []string) *index {
	idx := &index{foldToStored: make(map[string]string, len(storedPaths))}
	for _, p := range storedPaths {
		idx.foldToStored[caseFold(p)] = p
	}
	return idx
}

// Resolve returns the stored-casing path matching the case-insensitive
// lookup key, and whether a match was found. Rules and parsers use
// this to emit accurate location strings (spec §9 design note).
func (idx *index) Resolve(path string) (string, bool) {
	stored, ok := idx.foldToStored[caseFold(normalize(path))]
	return stored, ok
}

func (idx *index) List(dir string) []string {
	dir = normalize(dir)
	var out []string
	for _, stored := range idx.foldToStored {
		if dir == "" || strings.HasPrefix(caseFold(stored), caseFold(dir)+"/") || caseFold(stored) == caseFold(dir) {
			out = append(out, stored)
		}
	}
	return out
}

func notFound(op, path string) error {
	return elerrors.NewFileAccessError(elerrors.KindFileAccessNotFound, op, path, ErrNotFound)
}
