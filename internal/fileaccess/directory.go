package fileaccess

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/standardbeagle/elearning-parser/internal/elerrors"
	"github.com/standardbeagle/elearning-parser/internal/logging"
)

// Directory is the FileAccess variant rooted at a plain filesystem
// directory. Unlike ZIP/Remote it does not pre-index the tree: list
// walks the filesystem lazily via doublestar so a package root with a
// very deep or very wide tree never pays for entries the caller never
// asks about.
type Directory struct {
	root   string
	log    *logging.Logger
}

// NewDirectory constructs a Directory FileAccess rooted at root. root
// must already exist; it is not created.
func NewDirectory(root string) (*Directory, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, elerrors.NewFileAccessError(elerrors.KindFileAccessIO, "stat", root, err)
	}
	if !info.IsDir() {
		return nil, elerrors.NewFileAccessError(elerrors.KindFileAccessIO, "stat", root, os.ErrInvalid)
	}
	return &Directory{root: root, log: logging.Default()}, nil
}

func (d *Directory) resolve(path string) (string, bool) {
	want := normalize(path)
	if want == "" {
		return d.root, true
	}
	// Fast path: exact case match, the overwhelmingly common case.
	exact := filepath.Join(d.root, filepath.FromSlash(want))
	if _, err := os.Stat(exact); err == nil {
		return exact, true
	}
	// Slow path: case-insensitive walk to find the stored-casing match.
	var found string
	_ = filepath.Walk(d.root, func(p string, info os.FileInfo, err error) error {
		if err != nil || found != "" {
			return nil
		}
		rel, relErr := filepath.Rel(d.root, p)
		if relErr != nil {
			return nil
		}
		if strings.EqualFold(filepath.ToSlash(rel), want) {
			found = p
		}
		return nil
	})
	if found == "" {
		return "", false
	}
	return found, true
}

func (d *Directory) Exists(path string) bool {
	_, ok := d.resolve(path)
	return ok
}

func (d *Directory) List(dir string) ([]string, error) {
	base, ok := d.resolve(dir)
	if !ok {
		return nil, notFound("list", dir)
	}
	var out []string
	pattern := "**"
	matches, err := doublestar.Glob(os.DirFS(base), pattern)
	if err != nil {
		return nil, elerrors.NewFileAccessError(elerrors.KindFileAccessIO, "list", dir, err)
	}
	for _, m := range matches {
		if m == "." {
			continue
		}
		out = append(out, filepath.ToSlash(m))
	}
	return out, nil
}

func (d *Directory) Open(path string) (io.ReadCloser, error) {
	full, ok := d.resolve(path)
	if !ok {
		return nil, notFound("open", path)
	}
	f, err := os.Open(full)
	if err != nil {
		return nil, elerrors.NewFileAccessError(elerrors.KindFileAccessIO, "open", path, err)
	}
	d.log.Debugf("fileaccess.directory", "opened %s", path)
	return f, nil
}

func (d *Directory) Root() RootPath { return RootPath(d.root) }

func (d *Directory) Close() error { return nil }
