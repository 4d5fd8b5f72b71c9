package parser

import (
	"os"

	"github.com/standardbeagle/elearning-parser/internal/detect"
	"github.com/standardbeagle/elearning-parser/internal/elerrors"
	"github.com/standardbeagle/elearning-parser/internal/fileaccess"
	"github.com/standardbeagle/elearning-parser/internal/logging"
	"github.com/standardbeagle/elearning-parser/internal/manifest"
)

// Factory is the ParserFactory of spec §4.10: it constructs a
// FileAccess over a package root, runs detection, and returns the
// matching Parser. The detector's plugin list is owned per-Factory
// instance (spec §9: "detector plugin lists are per-detector
// instance, not process-wide"), so registering a plugin (e.g. the
// opt-in xAPI detector, see SPEC_FULL.md supplement 3) on one Factory
// never affects another.
type Factory struct {
	detector *detect.ModuleTypeDetector
	log      *logging.Logger
}

// NewFactory builds a Factory with the default plugin set (spec
// §4.5): SCORM, cmi5, AICC. The xAPI plugin is opt-in; call
// RegisterXAPI to add it.
func NewFactory() *Factory {
	return &Factory{detector: detect.NewModuleTypeDetector(), log: logging.Default()}
}

// RegisterPlugin adds (or replaces) a detector plugin on this Factory
// only.
func (f *Factory) RegisterPlugin(p detect.Plugin) { f.detector.Register(p) }

// RegisterXAPI opts this Factory into the xAPI/TinCan detector plugin
// (spec §4.5 Open Question; SPEC_FULL.md supplement 3).
func (f *Factory) RegisterXAPI() { f.detector.RegisterXAPI() }

// Open constructs a FileAccess over path (a directory or a ZIP
// archive file, chosen by introspecting the filesystem entry — spec
// §4.10 step 1), detects the package's standard, and returns the
// matching Parser already wrapped in the strict-mode policy (spec
// §4.9/§4.10). The caller owns the returned FileAccess and must Close
// it on every exit path (spec §5's scoped-resource discipline);
// ParserFactory itself does not retain it.
func (f *Factory) Open(path string, options Options) (Parser, fileaccess.FileAccess, manifest.ModuleType, error) {
	fa, err := openLocalFileAccess(path)
	if err != nil {
		return nil, nil, "", err
	}

	p, mt, err := f.build(fa, options)
	if err != nil {
		fa.Close()
		return nil, nil, "", err
	}
	return p, fa, mt, nil
}

// OpenFileAccess is Open's second half, for callers that already hold
// a FileAccess (e.g. a Remote instance constructed from a config
// profile — spec §4.1's Remote variant has no single "path" to
// introspect). The caller retains ownership of fa.
func (f *Factory) OpenFileAccess(fa fileaccess.FileAccess, options Options) (Parser, manifest.ModuleType, error) {
	return f.build(fa, options)
}

func (f *Factory) build(fa fileaccess.FileAccess, options Options) (Parser, manifest.ModuleType, error) {
	mt, err := f.detector.Detect(fa)
	if err != nil {
		return nil, "", err
	}
	f.log.Debugf("parser", "detected %s at %s", mt, fa.Root())

	inner, err := newStandardParser(fa, mt, options)
	if err != nil {
		return nil, "", err
	}
	return &strictParser{inner: inner, moduleType: mt, strict: options.StrictMode}, mt, nil
}

func newStandardParser(fa fileaccess.FileAccess, mt manifest.ModuleType, options Options) (Parser, error) {
	switch mt {
	case manifest.SCORM12:
		return NewSCORM12Parser(fa, options), nil
	case manifest.SCORM2004:
		return NewSCORM2004Parser(fa, options), nil
	case manifest.AICC:
		return NewAICCParser(fa, options)
	case manifest.CMI5:
		return NewCMI5Parser(fa, options), nil
	case manifest.XAPI:
		return NewXAPIParser(fa, options), nil
	default:
		return nil, elerrors.NewDetectionError(string(fa.Root()))
	}
}

func openLocalFileAccess(path string) (fileaccess.FileAccess, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, elerrors.NewFileAccessError(elerrors.KindFileAccessNotFound, "stat", path, err)
	}
	if info.IsDir() {
		return fileaccess.NewDirectory(path)
	}
	return fileaccess.NewZip(path)
}

// strictParser applies the strict-mode wrapper of spec §4.9/§4.10 on
// top of whatever Parser the standard-specific constructor built:
// ParseAndValidate escalates validation.HasErrors() into a fatal
// Manifest/Parse error when Options.StrictMode is set; ParseOnly is
// untouched since it never produces validation findings to escalate.
type strictParser struct {
	inner      Parser
	moduleType manifest.ModuleType
	strict     bool
}

func (s *strictParser) ParseAndValidate() (Result, error) {
	return StrictWrap(s.inner, s.moduleType, s.strict)
}

func (s *strictParser) ParseOnly() (Metadata, error) {
	return s.inner.ParseOnly()
}
