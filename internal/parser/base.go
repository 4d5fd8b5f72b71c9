package parser

import (
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"

	"github.com/standardbeagle/elearning-parser/internal/elerrors"
	"github.com/standardbeagle/elearning-parser/internal/fileaccess"
	"github.com/standardbeagle/elearning-parser/internal/manifest"
	"github.com/standardbeagle/elearning-parser/internal/rules"
	"github.com/standardbeagle/elearning-parser/internal/validate"
)

// Parser is the public surface of spec §6: parseAndValidate combines
// rule evaluation and metadata extraction; parseOnly skips the rule
// list entirely.
type Parser interface {
	ParseAndValidate() (Result, error)
	ParseOnly() (Metadata, error)
}

// decodeFunc turns manifest bytes into the normalized PackageManifest,
// the effective charset, and a possible fatal decode error.
type decodeFunc func(data []byte, path string) (*manifest.PackageManifest, string, error)

// lomLoaderFunc attaches any external LOM metadata the manifest
// references, via fa (spec §4.9 step 3, §6). The cmi5 and xAPI parsers,
// which have no LOM concept, leave it nil and BaseParser skips the step.
type lomLoaderFunc func(fa fileaccess.FileAccess, pm *manifest.PackageManifest) error

// schemaValidateFunc runs the opt-in XSD validator (spec §6); nil
// unless Options.ValidateXMLAgainstSchema is set and the standard
// supports it (SCORM 2004 only).
type schemaValidateFunc func(data []byte) (validate.Result, error)

// BaseParser is the template-method orchestrator of spec §4.9, shared
// by every standard's parser through struct embedding. Each
// per-standard constructor supplies the manifest path and the three
// strategy functions above; BaseParser implements the four-step
// parseAndValidate/parseOnly sequence once.
type BaseParser struct {
	fa           fileaccess.FileAccess
	options      Options
	moduleType   manifest.ModuleType
	manifestPath string

	decode         decodeFunc
	loadMetadata   lomLoaderFunc
	schemaValidate schemaValidateFunc
}

func (p *BaseParser) readManifestBytes() ([]byte, error) {
	rc, err := p.fa.Open(p.manifestPath)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, elerrors.NewFileAccessError(elerrors.KindFileAccessIO, "read", p.manifestPath, err)
	}
	p.options.notify(p.manifestPath, int64(len(data)), int64(len(data)))
	return data, nil
}

// step1 is spec §4.9 step (1): manifest <- xml_read(...). Any
// Xml/*, Io/*, or FileAccess/* error here is fatal and wrapped as a
// Manifest/Parse error; no Result is produced (spec §4.9, §7).
func (p *BaseParser) step1() (*manifest.PackageManifest, []byte, error) {
	data, err := p.readManifestBytes()
	if err != nil {
		return nil, nil, elerrors.NewManifestError(elerrors.KindManifestParse,
			fmt.Sprintf("failed to read %s manifest", p.moduleType), err)
	}
	pm, _, err := p.decode(data, p.manifestPath)
	if err != nil {
		return nil, nil, elerrors.NewManifestError(elerrors.KindManifestParse,
			fmt.Sprintf("failed to decode %s manifest", p.moduleType), err)
	}
	return pm, data, nil
}

// ParseAndValidate is the full template method of spec §4.9.
func (p *BaseParser) ParseAndValidate() (Result, error) {
	pm, raw, err := p.step1()
	if err != nil {
		return Result{}, err
	}

	validation := validate.RunAll(rules.For(p.moduleType), pm)

	if p.schemaValidate != nil {
		schemaResult, serr := p.schemaValidate(raw)
		if serr != nil {
			return Result{}, elerrors.NewManifestError(elerrors.KindManifestSchemaValidation,
				"SCORM 2004 schema validation failed to run", serr)
		}
		validation = validation.Merge(schemaResult)
	}

	metadataErr := p.attachMetadata(pm)
	if metadataErr != nil {
		if p.options.StrictMode {
			return Result{}, metadataErr
		}
		// Lenient: attach as a validation error rather than abort the
		// parse (spec §4.9 step 3, §7).
		validation = validation.Merge(validate.Of(validate.Error(
			"METADATA_LOAD_FAILED", metadataErr.Error(), p.manifestPath)))
	}

	md := newMetadata(pm)
	md.ContentHash = contentHash(raw)

	return Result{Validation: validation, Metadata: md}, nil
}

// ParseOnly is spec §4.9's parseOnly: identical to steps (1) and (3)
// with validation fixed at Valid().
func (p *BaseParser) ParseOnly() (Metadata, error) {
	pm, raw, err := p.step1()
	if err != nil {
		return Metadata{}, err
	}
	if err := p.attachMetadata(pm); err != nil && p.options.StrictMode {
		return Metadata{}, err
	}
	md := newMetadata(pm)
	md.ContentHash = contentHash(raw)
	return md, nil
}

func (p *BaseParser) attachMetadata(pm *manifest.PackageManifest) error {
	if p.loadMetadata == nil {
		return nil
	}
	return p.loadMetadata(p.fa, pm)
}

func contentHash(data []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}

// StrictWrap applies the strict-mode policy of spec §4.9/§4.10: calls
// ParseAndValidate, then raises Manifest/Parse if
// strictMode && validation.HasErrors(), with the formatted error block
// as the message and the ValidationResult attached for structured
// access.
func StrictWrap(p Parser, moduleType manifest.ModuleType, strict bool) (Result, error) {
	result, err := p.ParseAndValidate()
	if err != nil {
		return Result{}, err
	}
	if strict && result.Validation.HasErrors() {
		msg := fmt.Sprintf("Failed to parse %s manifest\n%s", moduleType, result.Validation.FormatErrors())
		return Result{}, elerrors.NewManifestError(elerrors.KindManifestParse, msg, nil).WithResult(result.Validation)
	}
	return result, nil
}
