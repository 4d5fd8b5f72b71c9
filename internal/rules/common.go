// Package rules implements the common and per-standard ValidationRule
// sets of spec §4.7: eighteen rule values in total (three common,
// shared wherever a standard has the target concepts, plus seven
// SCORM 1.2 rules that SCORM 2004 reuses, three AICC, three cmi5 and
// two xAPI rules), composed by the validator as a plain slice
// (spec §9: "prefer a vector/array of rule values... over class
// inheritance").
package rules

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hbollon/go-edlib"

	"github.com/standardbeagle/elearning-parser/internal/manifest"
	"github.com/standardbeagle/elearning-parser/internal/security"
	"github.com/standardbeagle/elearning-parser/internal/validate"
)

// DuplicateIdentifier collects every declared identifier (manifest,
// organization, resource, item) and reports one ERROR per identifier
// with multiplicity > 1, listing every location it was declared at
// (spec §4.7).
var DuplicateIdentifier = validate.Rule{
	Name:    "DuplicateIdentifier",
	SpecRef: "spec §4.7 common/DuplicateIdentifier",
	Evaluate: func(pm *manifest.PackageManifest) validate.Result {
		byID := map[string][]string{}
		var order []string
		for _, occ := range pm.RawIdentifiers {
			if _, seen := byID[occ.Identifier]; !seen {
				order = append(order, occ.Identifier)
			}
			byID[occ.Identifier] = append(byID[occ.Identifier], occ.Location)
		}
		var issues []validate.Issue
		for _, id := range order {
			locs := byID[id]
			if len(locs) <= 1 {
				continue
			}
			issues = append(issues, validate.Error(
				"DUPLICATE_IDENTIFIER",
				fmt.Sprintf("identifier %q is declared %d times", id, len(locs)),
				strings.Join(locs, ", "),
			))
		}
		return validate.Of(issues...)
	},
}

// PathSecurity checks every resource href and file href against
// security.CheckPath, producing exactly one issue per offending path
// (spec §4.7).
var PathSecurity = validate.Rule{
	Name:    "PathSecurity",
	SpecRef: "spec §4.7 common/PathSecurity",
	Evaluate: func(pm *manifest.PackageManifest) validate.Result {
		var issues []validate.Issue
		checkAndAppend := func(href, location string) {
			if href == "" {
				return
			}
			offense := security.CheckPath(href)
			if offense == security.OffenseNone {
				return
			}
			issues = append(issues, validate.Error(string(offense),
				fmt.Sprintf("unsafe path %q", href), location))
		}
		for _, r := range pm.Resources {
			if r.Href != nil {
				checkAndAppend(*r.Href, "resource "+r.Identifier)
			}
			for _, f := range r.Files {
				checkAndAppend(f, "resource "+r.Identifier+" file "+f)
			}
		}
		return validate.Of(issues...)
	},
}

// OrphanedResources recursively collects every item identifierref and
// reports a WARNING for each resource whose identifier is never
// referenced (spec §4.7). Warnings never invalidate the result.
var OrphanedResources = validate.Rule{
	Name:    "OrphanedResources",
	SpecRef: "spec §4.7 common/OrphanedResources",
	Evaluate: func(pm *manifest.PackageManifest) validate.Result {
		refs := map[string]bool{}
		for _, org := range pm.Organizations {
			collectIdentifierRefs(org.Items, refs)
		}
		collectIdentifierRefs(pm.Items, refs)

		var issues []validate.Issue
		for _, r := range pm.Resources {
			if refs[r.Identifier] {
				continue
			}
			issues = append(issues, validate.Warning(
				"ORPHANED_RESOURCE",
				fmt.Sprintf("resource %q is never referenced by any item", r.Identifier),
				"resource "+r.Identifier,
			))
		}
		return validate.Of(issues...)
	},
}

func collectIdentifierRefs(items []*manifest.Item, out map[string]bool) {
	for _, it := range items {
		if it.IdentifierRef != nil {
			out[*it.IdentifierRef] = true
		}
		collectIdentifierRefs(it.Children, out)
	}
}

// Common is every common rule, in the fixed order the spec lists them.
func Common() []validate.Rule {
	return []validate.Rule{DuplicateIdentifier, PathSecurity, OrphanedResources}
}

// isBlank treats whitespace-only strings as absent, per spec §4.7's
// tie-breaking policy for "required non-empty" rules.
func isBlank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

// nearestIdentifier finds the closest known identifier to target by
// Levenshtein distance, for a rule's SuggestedFix. Returns "" if
// candidates is empty or no match clears edlib's internal threshold.
func nearestIdentifier(target string, candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}
	sorted := append([]string(nil), candidates...)
	sort.Strings(sorted)
	match, err := edlib.FuzzySearch(target, sorted, edlib.Levenshtein)
	if err != nil {
		return ""
	}
	return match
}
