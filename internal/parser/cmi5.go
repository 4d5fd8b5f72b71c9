package parser

import (
	"github.com/standardbeagle/elearning-parser/internal/detect"
	"github.com/standardbeagle/elearning-parser/internal/fileaccess"
	"github.com/standardbeagle/elearning-parser/internal/manifest"
)

// NewCMI5Parser builds the cmi5 Parser (spec §4.9). cmi5 has no
// LoadableMetadata concept, so loadMetadata is left nil (BaseParser
// treats that as a no-op, spec §4.9 step 3).
func NewCMI5Parser(fa fileaccess.FileAccess, options Options) Parser {
	manifestPath, ok := detect.LocateCaseInsensitive(fa, "cmi5.xml")
	if !ok {
		manifestPath = "cmi5.xml"
	}
	return &BaseParser{
		fa:           fa,
		options:      options,
		moduleType:   manifest.CMI5,
		manifestPath: manifestPath,
		decode:       decodeCMI5,
	}
}

func decodeCMI5(data []byte, path string) (*manifest.PackageManifest, string, error) {
	m, cs, err := manifest.DecodeCMI5Manifest(data, path)
	if err != nil {
		return nil, cs, err
	}
	return m.ToPackageManifest(), cs, nil
}
