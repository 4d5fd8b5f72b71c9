package rules

import (
	"github.com/standardbeagle/elearning-parser/internal/manifest"
	"github.com/standardbeagle/elearning-parser/internal/validate"
)

var cmi5CourseRequired = validate.Rule{
	Name:    "CourseRequired",
	SpecRef: "spec §4.7 cmi5",
	Evaluate: func(pm *manifest.PackageManifest) validate.Result {
		if !pm.HasCourseElement {
			return validate.Of(validate.Error("CMI5_MISSING_COURSE",
				"<course> element is required", "courseStructure"))
		}
		return validate.Valid()
	},
}

// cmi5TitlePresent defers to CourseRequired when <course> is itself
// absent (spec §4.7: "the title rule defers when <course> is absent —
// the course-required rule reports that").
var cmi5TitlePresent = validate.Rule{
	Name:    "TitlePresent",
	SpecRef: "spec §4.7 cmi5",
	Evaluate: func(pm *manifest.PackageManifest) validate.Result {
		if !pm.HasCourseElement {
			return validate.Valid()
		}
		if isBlank(pm.Title) {
			return validate.Of(validate.Error("CMI5_MISSING_TITLE",
				"course title is required", "course"))
		}
		return validate.Valid()
	},
}

var cmi5LaunchURLPresent = validate.Rule{
	Name:    "LaunchURLPresent",
	SpecRef: "spec §4.7 cmi5",
	Evaluate: func(pm *manifest.PackageManifest) validate.Result {
		if isBlank(pm.LaunchURL) {
			return validate.Of(validate.Error("CMI5_MISSING_LAUNCH_URL",
				"no assignable unit declares a non-empty url", "courseStructure"))
		}
		return validate.Valid()
	},
}

// CMI5 is the three-rule cmi5 validator (spec §4.7).
func CMI5() []validate.Rule {
	return []validate.Rule{cmi5CourseRequired, cmi5TitlePresent, cmi5LaunchURLPresent}
}
