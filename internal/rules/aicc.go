package rules

import (
	"github.com/standardbeagle/elearning-parser/internal/manifest"
	"github.com/standardbeagle/elearning-parser/internal/validate"
)

var aiccCourseDescriptorPresent = validate.Rule{
	Name:    "CourseDescriptorPresent",
	SpecRef: "spec §4.7 AICC",
	Evaluate: func(pm *manifest.PackageManifest) validate.Result {
		if isBlank(pm.Identifier) {
			return validate.Of(validate.Error("AICC_MISSING_COURSE_ID",
				"course descriptor (.crs Course_ID) is required", "course"))
		}
		return validate.Valid()
	},
}

var aiccTitlePresent = validate.Rule{
	Name:    "TitlePresent",
	SpecRef: "spec §4.7 AICC",
	Evaluate: func(pm *manifest.PackageManifest) validate.Result {
		if isBlank(pm.Title) {
			return validate.Of(validate.Error("AICC_MISSING_TITLE",
				"course title (.crs Course_Title) is required", "course"))
		}
		return validate.Valid()
	},
}

var aiccLaunchURLPresent = validate.Rule{
	Name:    "LaunchURLPresent",
	SpecRef: "spec §4.7 AICC",
	Evaluate: func(pm *manifest.PackageManifest) validate.Result {
		if isBlank(pm.LaunchURL) {
			return validate.Of(validate.Error("AICC_MISSING_LAUNCH_URL",
				"no assignable unit declares a launch URL", "course"))
		}
		return validate.Valid()
	},
}

// AICC is the three-rule AICC validator (spec §4.7).
func AICC() []validate.Rule {
	return []validate.Rule{aiccCourseDescriptorPresent, aiccTitlePresent, aiccLaunchURLPresent}
}
