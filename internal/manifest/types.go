// Package manifest holds the typed per-standard manifest object models
// (spec §3, §4.9) and the normalized PackageManifest view the parser
// layer extracts metadata from. Each standard gets its own raw
// encoding/xml struct tree (grounded on the teacher's preference for
// small typed structs per concern, see internal/config in the
// retrieval pack); ToPackageManifest on each raw type projects it down
// to the shared, standard-agnostic shape.
package manifest

// ModuleType is one of the five publishing standards this module
// understands.
type ModuleType string

const (
	SCORM12   ModuleType = "SCORM_1_2"
	SCORM2004 ModuleType = "SCORM_2004"
	AICC      ModuleType = "AICC"
	CMI5      ModuleType = "CMI5"
	XAPI      ModuleType = "XAPI"
)

// PackageManifest is the normalized surface every standard's raw
// manifest is projected onto (spec §3). Pointer fields model the
// optionality called out in the spec ("identifier?", "title?", ...);
// a nil pointer means the concept was absent, not empty.
type PackageManifest struct {
	ModuleType    ModuleType
	Identifier    *string
	Title         *string
	LaunchURL     *string
	Organizations []Organization
	Resources     []Resource
	Items         []*Item
	ActivityTree  *ActivityTree

	// DefaultOrganizationID is the organizations/@default attribute, as
	// declared (possibly referencing an organization id that does not
	// exist — that's what DefaultOrganizationValid checks for).
	DefaultOrganizationID *string

	// HasOrganizationsElement/HasResourcesElement distinguish "the
	// element was present but described zero organizations/resources"
	// from "the element was entirely absent from the manifest", which
	// SCORM12's OrganizationsRequired/ResourcesRequired rules need to
	// tell apart from a merely-empty collection.
	HasOrganizationsElement bool
	HasResourcesElement     bool

	// HasCourseElement is cmi5-specific: whether <course> was present
	// in cmi5.xml, which CourseRequired/TitlePresent (spec §4.7 cmi5)
	// need to tell apart from "course present but title empty".
	HasCourseElement bool

	// LoadableElements is every manifest element exposing the
	// LoadableMetadata capability (spec §4.9, §6), collected during
	// decoding so the parser can resolve and attach external LOM
	// fragments without needing access to the raw per-standard struct
	// tree.
	LoadableElements []LoadableMetadata

	// RawIdentifiers is every identifier-bearing string declared
	// anywhere in the source manifest (manifest id, organization ids,
	// resource ids, item ids), tagged with a human-readable location,
	// for the DuplicateIdentifier rule. Populated by each standard's
	// ToPackageManifest.
	RawIdentifiers []IdentifierOccurrence
}

// IdentifierOccurrence records one declared identifier and where it
// was declared, for duplicate-detection rules that need to list every
// offending location.
type IdentifierOccurrence struct {
	Identifier string
	Location   string
}

// Organization is a SCORM organization element: an identifier, title,
// and its own item tree (the default organization's tree also becomes
// PackageManifest.Items and feeds the ActivityTree builder).
type Organization struct {
	Identifier string
	Title      string
	Items      []*Item
}

// Item is a course-tree node (spec §3): identifierref is a weak
// reference to a Resource by identifier, never an owning pointer, so
// that building the tree can never introduce a reference cycle through
// resource ownership.
type Item struct {
	Identifier     string
	IdentifierRef  *string
	Title          string
	Visible        *bool
	Children       []*Item
}

// Resource is (identifier, scormType?, href?, files[]) per spec §3,
// owned by the manifest's Resources collection.
type Resource struct {
	Identifier string
	ScormType  *string
	Href       *string
	Files      []string
}

// LOM is the external Learning Object Metadata fragment, loaded
// on-demand through the LoadableMetadata capability (spec §3, §4.9 and
// §6). An empty LOM (IsSet() == false) means either no location was
// declared or the declared file did not exist, neither of which is an
// error.
type LOM struct {
	set    bool
	Source string
	Raw    []byte
}

func (l LOM) IsSet() bool { return l.set }

// LoadableMetadata is the capability any manifest element with a LOM
// location attribute exposes (spec §4.9, §6): a relative path to
// resolve against the package's FileAccess, and a setter the loader
// calls after successfully reading it.
type LoadableMetadata interface {
	Location() string
	SetLOM(lom LOM)
}
