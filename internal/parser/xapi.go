package parser

import (
	"github.com/standardbeagle/elearning-parser/internal/detect"
	"github.com/standardbeagle/elearning-parser/internal/fileaccess"
	"github.com/standardbeagle/elearning-parser/internal/manifest"
)

// NewXAPIParser builds the xAPI/TinCan Parser (spec §4.9). Like cmi5,
// xAPI's tincan.xml has no LoadableMetadata concept.
func NewXAPIParser(fa fileaccess.FileAccess, options Options) Parser {
	manifestPath, ok := detect.LocateCaseInsensitive(fa, "tincan.xml")
	if !ok {
		manifestPath = "tincan.xml"
	}
	return &BaseParser{
		fa:           fa,
		options:      options,
		moduleType:   manifest.XAPI,
		manifestPath: manifestPath,
		decode:       decodeXAPI,
	}
}

func decodeXAPI(data []byte, path string) (*manifest.PackageManifest, string, error) {
	m, cs, err := manifest.DecodeXAPIManifest(data, path)
	if err != nil {
		return nil, cs, err
	}
	return m.ToPackageManifest(), cs, nil
}
