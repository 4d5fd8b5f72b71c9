package rules

import "github.com/standardbeagle/elearning-parser/internal/validate"

// SCORM2004 reuses the SCORM 1.2 rule set verbatim (spec §4.7: "same
// as SCORM 1.2 where concepts align"). The normalized PackageManifest
// representation is identical across the two standards, the item walk
// in ResourceReferenceValid is already recursive, and
// Duplicate/Path/Orphan are the shared common rules — so there is
// nothing standard-specific left to adapt.
func SCORM2004() []validate.Rule {
	return SCORM12()
}
