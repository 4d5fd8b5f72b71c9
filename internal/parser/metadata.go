package parser

import (
	"github.com/standardbeagle/elearning-parser/internal/manifest"
	"github.com/standardbeagle/elearning-parser/internal/validate"
)

// Metadata is the extracted, caller-facing view of a parsed package
// (spec §4.9 step 3): populated even when validation carries errors
// (lenient semantics — spec §3, invariant 1 of §8).
type Metadata struct {
	ModuleType    manifest.ModuleType
	Identifier    string
	Title         string
	LaunchURL     string
	Organizations []manifest.Organization
	Resources     []manifest.Resource
	Items         []*manifest.Item
	ActivityTree  *manifest.ActivityTree

	// ContentHash fingerprints the manifest bytes that were parsed
	// (see SPEC_FULL.md supplement 2). Every parser sets it: over the
	// manifest file for the XML standards, and over the .crs bytes
	// followed by the .au bytes for AICC.
	ContentHash string
}

func newMetadata(pm *manifest.PackageManifest) Metadata {
	md := Metadata{
		ModuleType:    pm.ModuleType,
		Organizations: pm.Organizations,
		Resources:     pm.Resources,
		Items:         pm.Items,
		ActivityTree:  pm.ActivityTree,
	}
	if pm.Identifier != nil {
		md.Identifier = *pm.Identifier
	}
	if pm.Title != nil {
		md.Title = *pm.Title
	}
	if pm.LaunchURL != nil {
		md.LaunchURL = *pm.LaunchURL
	}
	return md
}

// Result is the ParseResult pair of spec §3: validation plus
// metadata, with metadata always populated when no fatal error was
// raised.
type Result struct {
	Validation validate.Result
	Metadata   Metadata
}
