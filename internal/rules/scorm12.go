package rules

import (
	"fmt"
	"strings"

	"github.com/standardbeagle/elearning-parser/internal/manifest"
	"github.com/standardbeagle/elearning-parser/internal/validate"
)

var scorm12ManifestIdentifierRequired = validate.Rule{
	Name:    "ManifestIdentifierRequired",
	SpecRef: "spec §4.7 SCORM 1.2",
	Evaluate: func(pm *manifest.PackageManifest) validate.Result {
		if isBlank(pm.Identifier) {
			return validate.Of(validate.Error("SCORM12_MISSING_MANIFEST_IDENTIFIER",
				"manifest identifier is required", "manifest"))
		}
		return validate.Valid()
	},
}

var scorm12OrganizationsRequired = validate.Rule{
	Name:    "OrganizationsRequired",
	SpecRef: "spec §4.7 SCORM 1.2",
	Evaluate: func(pm *manifest.PackageManifest) validate.Result {
		if !pm.HasOrganizationsElement {
			return validate.Of(validate.Error("SCORM12_MISSING_ORGANIZATIONS",
				"<organizations> element is required", "manifest"))
		}
		return validate.Valid()
	},
}

var scorm12DefaultOrganizationValid = validate.Rule{
	Name:    "DefaultOrganizationValid",
	SpecRef: "spec §4.7 SCORM 1.2",
	Evaluate: func(pm *manifest.PackageManifest) validate.Result {
		if pm.DefaultOrganizationID == nil {
			return validate.Valid()
		}
		for _, org := range pm.Organizations {
			if org.Identifier == *pm.DefaultOrganizationID {
				return validate.Valid()
			}
		}
		return validate.Of(validate.Error("SCORM12_INVALID_DEFAULT_ORGANIZATION",
			fmt.Sprintf("default organization %q does not exist", *pm.DefaultOrganizationID),
			"organizations"))
	},
}

var scorm12ResourcesRequired = validate.Rule{
	Name:    "ResourcesRequired",
	SpecRef: "spec §4.7 SCORM 1.2",
	Evaluate: func(pm *manifest.PackageManifest) validate.Result {
		if !pm.HasResourcesElement {
			return validate.Of(validate.Error("SCORM12_MISSING_RESOURCES",
				"<resources> element is required", "manifest"))
		}
		return validate.Valid()
	},
}

var scorm12ResourceReferenceValid = validate.Rule{
	Name:    "ResourceReferenceValid",
	SpecRef: "spec §4.7 SCORM 1.2",
	Evaluate: func(pm *manifest.PackageManifest) validate.Result {
		known := make(map[string]bool, len(pm.Resources))
		ids := make([]string, 0, len(pm.Resources))
		for _, r := range pm.Resources {
			known[r.Identifier] = true
			ids = append(ids, r.Identifier)
		}
		var issues []validate.Issue
		walkItemReferences(pm.Items, known, ids, &issues)
		return validate.Of(issues...)
	},
}

func walkItemReferences(items []*manifest.Item, known map[string]bool, ids []string, issues *[]validate.Issue) {
	for _, it := range items {
		if it.IdentifierRef != nil && !known[*it.IdentifierRef] {
			issue := validate.Error("SCORM12_MISSING_RESOURCE_REF",
				fmt.Sprintf("item %q references unknown resource %q", it.Identifier, *it.IdentifierRef),
				"item "+it.Identifier)
			if suggestion := nearestIdentifier(*it.IdentifierRef, ids); suggestion != "" {
				issue = issue.WithSuggestedFix(suggestion)
			}
			*issues = append(*issues, issue)
		}
		walkItemReferences(it.Children, known, ids, issues)
	}
}

var scorm12ResourceHrefRequired = validate.Rule{
	Name:    "ResourceHrefRequired",
	SpecRef: "spec §4.7 SCORM 1.2",
	Evaluate: func(pm *manifest.PackageManifest) validate.Result {
		var issues []validate.Issue
		for _, r := range pm.Resources {
			if r.ScormType != nil && strings.EqualFold(strings.TrimSpace(*r.ScormType), "sco") && isBlank(r.Href) {
				issues = append(issues, validate.Error("SCORM12_MISSING_SCO_HREF",
					fmt.Sprintf("SCO resource %q has no href", r.Identifier), "resource "+r.Identifier))
			}
		}
		return validate.Of(issues...)
	},
}

var scorm12LaunchableResourceRequired = validate.Rule{
	Name:    "LaunchableResourceRequired",
	SpecRef: "spec §4.7 SCORM 1.2",
	Evaluate: func(pm *manifest.PackageManifest) validate.Result {
		for _, r := range pm.Resources {
			if !isBlank(r.Href) {
				return validate.Valid()
			}
		}
		return validate.Of(validate.Error("SCORM12_NO_LAUNCHABLE_RESOURCE",
			"no resource declares an href", "resources"))
	},
}

// SCORM12 is the ordered rule list for SCORM 1.2 manifests (spec
// §4.7: "rule order does not affect semantics", listed here in spec
// reading order for readability).
func SCORM12() []validate.Rule {
	return []validate.Rule{
		scorm12ManifestIdentifierRequired,
		scorm12OrganizationsRequired,
		scorm12DefaultOrganizationValid,
		scorm12ResourcesRequired,
		scorm12ResourceReferenceValid,
		scorm12ResourceHrefRequired,
		scorm12LaunchableResourceRequired,
	}
}
