package manifest

import (
	"io"
	"path"
	"strings"

	"github.com/standardbeagle/elearning-parser/internal/elerrors"
	"github.com/standardbeagle/elearning-parser/internal/fileaccess"
)

// LoadLOM resolves lm.Location() against dir (the directory containing
// the manifest that declared it) and, if the file exists, reads it
// through fa and calls lm.SetLOM. A missing file is not an error (spec
// §3, §4.9, §6) — LoadLOM simply returns nil and leaves the LOM slot
// unset. The domain vocabulary of LOM fields themselves is out of
// scope for this module; the fragment is kept as opaque bytes.
func LoadLOM(fa fileaccess.FileAccess, dir string, lm LoadableMetadata) error {
	loc := strings.TrimSpace(lm.Location())
	if loc == "" {
		return nil
	}

	resolved := loc
	if !strings.HasPrefix(loc, "/") && dir != "" {
		resolved = path.Join(dir, loc)
	}

	if !fa.Exists(resolved) {
		return nil
	}

	rc, err := fa.Open(resolved)
	if err != nil {
		return nil // race between Exists and Open is treated the same as "not found"
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return elerrors.NewMetadataError(resolved, err)
	}

	lm.SetLOM(LOM{set: true, Source: resolved, Raw: data})
	return nil
}
