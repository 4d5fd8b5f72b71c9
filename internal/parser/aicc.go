package parser

import (
	"io"

	"github.com/standardbeagle/elearning-parser/internal/detect"
	"github.com/standardbeagle/elearning-parser/internal/elerrors"
	"github.com/standardbeagle/elearning-parser/internal/fileaccess"
	"github.com/standardbeagle/elearning-parser/internal/manifest"
	"github.com/standardbeagle/elearning-parser/internal/rules"
	"github.com/standardbeagle/elearning-parser/internal/validate"
)

// AICCParser implements Parser directly rather than embedding
// BaseParser: AICC has no single manifest file (spec §6, §4.7) — its
// course descriptor is split across a .crs and a .au file — so
// BaseParser's single-manifestPath template method does not fit.
type AICCParser struct {
	fa      fileaccess.FileAccess
	options Options
	crsPath string
	auPath  string
}

// NewAICCParser locates the package's .crs and .au descriptor files
// (spec §4.5's detection already proved both exist) and builds the
// AICC Parser.
func NewAICCParser(fa fileaccess.FileAccess, options Options) (Parser, error) {
	crsPath, ok := detect.LocateBySuffix(fa, ".crs")
	if !ok {
		return nil, elerrors.NewFileAccessError(elerrors.KindFileAccessNotFound, "locate", "*.crs", fileaccess.ErrNotFound)
	}
	auPath, ok := detect.LocateBySuffix(fa, ".au")
	if !ok {
		return nil, elerrors.NewFileAccessError(elerrors.KindFileAccessNotFound, "locate", "*.au", fileaccess.ErrNotFound)
	}
	return &AICCParser{fa: fa, options: options, crsPath: crsPath, auPath: auPath}, nil
}

func (p *AICCParser) readFile(path string) ([]byte, error) {
	rc, err := p.fa.Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, elerrors.NewFileAccessError(elerrors.KindFileAccessIO, "read", path, err)
	}
	p.options.notify(path, int64(len(data)), int64(len(data)))
	return data, nil
}

func (p *AICCParser) decode() (*manifest.PackageManifest, []byte, error) {
	crs, err := p.readFile(p.crsPath)
	if err != nil {
		return nil, nil, elerrors.NewManifestError(elerrors.KindManifestParse, "failed to read AICC course descriptor", err)
	}
	au, err := p.readFile(p.auPath)
	if err != nil {
		return nil, nil, elerrors.NewManifestError(elerrors.KindManifestParse, "failed to read AICC assignable units", err)
	}
	raw := manifest.ParseAICCDescriptors(crs, au)
	combined := append(append([]byte(nil), crs...), au...)
	return raw.ToPackageManifest(), combined, nil
}

// ParseAndValidate implements Parser (spec §4.9).
func (p *AICCParser) ParseAndValidate() (Result, error) {
	pm, raw, err := p.decode()
	if err != nil {
		return Result{}, err
	}
	validation := validate.RunAll(rules.For(manifest.AICC), pm)
	md := newMetadata(pm)
	md.ContentHash = contentHash(raw)
	return Result{Validation: validation, Metadata: md}, nil
}

// ParseOnly implements Parser (spec §4.9): skips the rule list.
func (p *AICCParser) ParseOnly() (Metadata, error) {
	pm, raw, err := p.decode()
	if err != nil {
		return Metadata{}, err
	}
	md := newMetadata(pm)
	md.ContentHash = contentHash(raw)
	return md, nil
}
