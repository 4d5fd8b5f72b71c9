package rules

import (
	"github.com/standardbeagle/elearning-parser/internal/manifest"
	"github.com/standardbeagle/elearning-parser/internal/validate"
)

// For returns the full ordered rule list for a module type: the
// per-standard rules followed by the common rules, matching the
// template-method step 2 of spec §4.9 ("dispatches to rule list").
func For(moduleType manifest.ModuleType) []validate.Rule {
	var specific []validate.Rule
	switch moduleType {
	case manifest.SCORM12:
		specific = SCORM12()
	case manifest.SCORM2004:
		specific = SCORM2004()
	case manifest.AICC:
		specific = AICC()
	case manifest.CMI5:
		specific = CMI5()
	case manifest.XAPI:
		specific = XAPI()
	}
	return append(append([]validate.Rule{}, specific...), Common()...)
}
