package config

import (
	"github.com/standardbeagle/elearning-parser/internal/elerrors"
)

// Validator validates a loaded Config, the same "validator type with a
// single entry point" shape as the teacher's config.Validator.
type Validator struct{}

// NewValidator creates a new configuration validator.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateAndSetDefaults validates cfg and normalizes it. Config has no
// field combination the spec calls invalid (both booleans are
// independently meaningful in any combination), so the only thing it
// rejects is a nil Config; the method exists to mirror the teacher's
// load-then-validate pipeline shape and gives future fields a home
// without changing Load's signature.
func (v *Validator) ValidateAndSetDefaults(cfg *Config) error {
	if cfg == nil {
		return elerrors.NewManifestError(elerrors.KindManifestParse, "config: nil Config", nil)
	}
	return nil
}
