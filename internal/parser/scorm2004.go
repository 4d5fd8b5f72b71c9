package parser

import (
	"github.com/standardbeagle/elearning-parser/internal/detect"
	"github.com/standardbeagle/elearning-parser/internal/fileaccess"
	"github.com/standardbeagle/elearning-parser/internal/manifest"
	"github.com/standardbeagle/elearning-parser/internal/xsd"
)

// NewSCORM2004Parser builds the SCORM 2004 Parser (spec §4.9). When
// options.ValidateXMLAgainstSchema is set, the opt-in XSD validator
// (spec §6) is wired in as an additional pass merged into the
// returned ValidationResult; it is nil (skipped) otherwise.
func NewSCORM2004Parser(fa fileaccess.FileAccess, options Options) Parser {
	manifestPath, ok := detect.LocateCaseInsensitive(fa, defaultManifestName)
	if !ok {
		manifestPath = defaultManifestName
	}
	p := &BaseParser{
		fa:           fa,
		options:      options,
		moduleType:   manifest.SCORM2004,
		manifestPath: manifestPath,
		decode:       decodeSCORM2004,
		loadMetadata: lomLoaderFor(manifestPath),
	}
	if options.ValidateXMLAgainstSchema {
		p.schemaValidate = xsd.ValidateSCORM2004Manifest
	}
	return p
}

func decodeSCORM2004(data []byte, path string) (*manifest.PackageManifest, string, error) {
	m, cs, err := manifest.DecodeSCORM2004Manifest(data, path)
	if err != nil {
		return nil, cs, err
	}
	return m.ToPackageManifest(), cs, nil
}
