package rules

import (
	"github.com/standardbeagle/elearning-parser/internal/manifest"
	"github.com/standardbeagle/elearning-parser/internal/validate"
)

var xapiAtLeastOneActivity = validate.Rule{
	Name:    "AtLeastOneActivity",
	SpecRef: "spec §4.7 xAPI",
	Evaluate: func(pm *manifest.PackageManifest) validate.Result {
		if len(pm.Resources) == 0 {
			return validate.Of(validate.Error("XAPI_NO_ACTIVITIES",
				"tincan.xml declares no activities", "activities"))
		}
		return validate.Valid()
	},
}

var xapiLaunchURLPresent = validate.Rule{
	Name:    "LaunchURLPresent",
	SpecRef: "spec §4.7 xAPI",
	Evaluate: func(pm *manifest.PackageManifest) validate.Result {
		if isBlank(pm.LaunchURL) {
			return validate.Of(validate.Error("XAPI_MISSING_LAUNCH_URL",
				"no activity declares a non-empty launch URL", "activities"))
		}
		return validate.Valid()
	},
}

// XAPI is the two-rule xAPI validator (spec §4.7).
func XAPI() []validate.Rule {
	return []validate.Rule{xapiAtLeastOneActivity, xapiLaunchURLPresent}
}
