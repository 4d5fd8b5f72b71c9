package parser

import (
	"path"

	"github.com/standardbeagle/elearning-parser/internal/fileaccess"
	"github.com/standardbeagle/elearning-parser/internal/manifest"
)

// lomLoaderFor returns a lomLoaderFunc that resolves every
// LoadableMetadata element the decoded manifest collected against the
// directory containing manifestPath (spec §4.9 step 3, §6): SCORM 1.2
// and 2004 are the only standards whose manifest elements expose the
// LoadableMetadata capability, so AICC/cmi5/xAPI parsers pass nil
// instead of this.
func lomLoaderFor(manifestPath string) lomLoaderFunc {
	dir := path.Dir(manifestPath)
	if dir == "." {
		dir = ""
	}
	return func(fa fileaccess.FileAccess, pm *manifest.PackageManifest) error {
		for _, lm := range pm.LoadableElements {
			if err := manifest.LoadLOM(fa, dir, lm); err != nil {
				return err
			}
		}
		return nil
	}
}
