package fileaccess

import (
	"io"
	"runtime"

	"github.com/standardbeagle/elearning-parser/internal/logging"
)

// Safety wraps any FileAccess and logs a warning whenever a stream it
// handed out is released only by garbage collection rather than an
// explicit Close. This is a debugging aid for catching scoped-resource
// discipline violations, not part of the FileAccess contract itself
// (spec §4.1, §9).
type Safety struct {
	inner FileAccess
	log   *logging.Logger
}

// WrapSafety returns inner wrapped with finalizer-leak detection.
func WrapSafety(inner FileAccess) *Safety {
	return &Safety{inner: inner, log: logging.Default()}
}

func (s *Safety) Exists(path string) bool        { return s.inner.Exists(path) }
func (s *Safety) List(dir string) ([]string, error) { return s.inner.List(dir) }
func (s *Safety) Root() RootPath                  { return s.inner.Root() }
func (s *Safety) Close() error                    { return s.inner.Close() }

func (s *Safety) Open(path string) (io.ReadCloser, error) {
	rc, err := s.inner.Open(path)
	if err != nil {
		return nil, err
	}
	tracked := &trackedStream{ReadCloser: rc, path: path, log: s.log}
	runtime.SetFinalizer(tracked, func(t *trackedStream) {
		if !t.closed {
			t.log.Warnf("fileaccess.safety", "stream for %q released by GC, not explicit Close", t.path)
		}
	})
	return tracked, nil
}

type trackedStream struct {
	io.ReadCloser
	path   string
	log    *logging.Logger
	closed bool
}

func (t *trackedStream) Close() error {
	t.closed = true
	runtime.SetFinalizer(t, nil)
	return t.ReadCloser.Close()
}
