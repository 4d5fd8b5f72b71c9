package parser

import (
	"github.com/standardbeagle/elearning-parser/internal/detect"
	"github.com/standardbeagle/elearning-parser/internal/fileaccess"
	"github.com/standardbeagle/elearning-parser/internal/manifest"
)

const defaultManifestName = "imsmanifest.xml"

// NewSCORM12Parser builds the SCORM 1.2 Parser (spec §4.9): BaseParser
// configured with the SCORM 1.2 decode path and LOM loader. Detection
// having already matched this package to SCORM 1.2 guarantees
// imsmanifest.xml exists case-insensitively somewhere at the root;
// LocateCaseInsensitive resolves its stored casing so FileAccess.Open
// and error locations reflect what is actually on disk.
func NewSCORM12Parser(fa fileaccess.FileAccess, options Options) Parser {
	manifestPath, ok := detect.LocateCaseInsensitive(fa, defaultManifestName)
	if !ok {
		manifestPath = defaultManifestName
	}
	return &BaseParser{
		fa:           fa,
		options:      options,
		moduleType:   manifest.SCORM12,
		manifestPath: manifestPath,
		decode:       decodeSCORM12,
		loadMetadata: lomLoaderFor(manifestPath),
	}
}

func decodeSCORM12(data []byte, path string) (*manifest.PackageManifest, string, error) {
	m, cs, err := manifest.DecodeSCORM12Manifest(data, path)
	if err != nil {
		return nil, cs, err
	}
	return m.ToPackageManifest(), cs, nil
}
