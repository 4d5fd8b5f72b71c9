package manifest

import (
	"encoding/xml"
	"strconv"
	"strings"

	"github.com/standardbeagle/elearning-parser/internal/xmlreader"
)

// SCORM2004Manifest is the raw decode target for a SCORM 2004
// imsmanifest.xml. Shape mirrors SCORM12Manifest closely; the two are
// kept as distinct types (rather than one struct with optional 2004
// fields) because ToPackageManifest's semantics diverge — 2004 also
// feeds the ActivityTree builder (spec §4.8).
type SCORM2004Manifest struct {
	XMLName       xml.Name               `xml:"manifest"`
	Identifier    string                 `xml:"identifier,attr"`
	Metadata      *SCORM2004Metadata      `xml:"metadata"`
	Organizations *SCORM2004Organizations `xml:"organizations"`
	Resources     *SCORM2004Resources     `xml:"resources"`
}

type SCORM2004Metadata struct {
	Schema        string `xml:"schema"`
	SchemaVersion string `xml:"schemaversion"`
	LocationAttr  string `xml:"location,attr"`
	lom           LOM
}

func (m *SCORM2004Metadata) Location() string { return m.LocationAttr }
func (m *SCORM2004Metadata) SetLOM(lom LOM)    { m.lom = lom }
func (m *SCORM2004Metadata) LOM() LOM          { return m.lom }

type SCORM2004Organizations struct {
	Default       string                `xml:"default,attr"`
	Organizations []SCORM2004Organization `xml:"organization"`
}

type SCORM2004Organization struct {
	Identifier string          `xml:"identifier,attr"`
	Title      string          `xml:"title"`
	Items      []SCORM2004Item `xml:"item"`
}

type SCORM2004Item struct {
	Identifier    string          `xml:"identifier,attr"`
	IdentifierRef string          `xml:"identifierref,attr"`
	IsVisible     string          `xml:"isvisible,attr"`
	Title         string          `xml:"title"`
	Children      []SCORM2004Item `xml:"item"`
}

type SCORM2004Resources struct {
	Resources []SCORM2004Resource `xml:"resource"`
}

type SCORM2004Resource struct {
	Identifier string             `xml:"identifier,attr"`
	Type       string             `xml:"type,attr"`
	ScormType  string             `xml:"scormtype,attr"`
	Href       string             `xml:"href,attr"`
	Files      []SCORM2004File    `xml:"file"`
	Metadata   *SCORM2004Metadata `xml:"metadata"`
}

type SCORM2004File struct {
	Href string `xml:"href,attr"`
}

func DecodeSCORM2004Manifest(data []byte, path string) (*SCORM2004Manifest, string, error) {
	var m SCORM2004Manifest
	cs, err := xmlreader.ReadBytes(data, path, &m)
	if err != nil {
		return nil, "", err
	}
	return &m, string(cs), nil
}

func (m *SCORM2004Manifest) ToPackageManifest() *PackageManifest {
	pm := &PackageManifest{ModuleType: SCORM2004}

	if strings.TrimSpace(m.Identifier) != "" {
		id := m.Identifier
		pm.Identifier = &id
		pm.RawIdentifiers = append(pm.RawIdentifiers, IdentifierOccurrence{id, "manifest"})
	}
	if m.Metadata != nil {
		pm.LoadableElements = append(pm.LoadableElements, m.Metadata)
	}

	pm.HasOrganizationsElement = m.Organizations != nil
	pm.HasResourcesElement = m.Resources != nil

	var defaultOrg *SCORM2004Organization
	var defaultItems []*Item
	if m.Organizations != nil {
		if strings.TrimSpace(m.Organizations.Default) != "" {
			def := m.Organizations.Default
			pm.DefaultOrganizationID = &def
		}
		for i := range m.Organizations.Organizations {
			org := &m.Organizations.Organizations[i]
			pm.RawIdentifiers = append(pm.RawIdentifiers, IdentifierOccurrence{org.Identifier, "organization " + org.Identifier})
			orgItems := convertSCORM2004Items(org.Items, pm)
			pm.Organizations = append(pm.Organizations, Organization{
				Identifier: org.Identifier,
				Title:      org.Title,
				Items:      orgItems,
			})
			if org.Identifier == m.Organizations.Default || (m.Organizations.Default == "" && defaultOrg == nil) {
				defaultOrg = org
				defaultItems = orgItems
			}
		}
	}
	pm.Items = defaultItems
	if defaultOrg != nil && strings.TrimSpace(defaultOrg.Title) != "" {
		title := defaultOrg.Title
		pm.Title = &title
	}

	var rawResources []SCORM2004Resource
	if m.Resources != nil {
		rawResources = m.Resources.Resources
	}
	for _, r := range rawResources {
		pm.RawIdentifiers = append(pm.RawIdentifiers, IdentifierOccurrence{r.Identifier, "resource " + r.Identifier})
		res := Resource{Identifier: r.Identifier}
		if strings.TrimSpace(r.ScormType) != "" {
			st := r.ScormType
			res.ScormType = &st
		}
		if strings.TrimSpace(r.Href) != "" {
			href := r.Href
			res.Href = &href
		}
		for _, f := range r.Files {
			res.Files = append(res.Files, f.Href)
		}
		pm.Resources = append(pm.Resources, res)

		if pm.LaunchURL == nil && res.Href != nil && isSCOType(r.ScormType) {
			pm.LaunchURL = res.Href
		}
	}
	if pm.LaunchURL == nil {
		for _, res := range pm.Resources {
			if res.Href != nil {
				pm.LaunchURL = res.Href
				break
			}
		}
	}

	if defaultOrg != nil {
		pm.ActivityTree = BuildActivityTree(defaultOrg.Identifier, defaultOrg.Title, defaultItems)
	}

	return pm
}

func convertSCORM2004Items(raw []SCORM2004Item, pm *PackageManifest) []*Item {
	out := make([]*Item, 0, len(raw))
	for _, it := range raw {
		pm.RawIdentifiers = append(pm.RawIdentifiers, IdentifierOccurrence{it.Identifier, "item " + it.Identifier})
		item := &Item{Identifier: it.Identifier, Title: it.Title}
		if strings.TrimSpace(it.IdentifierRef) != "" {
			ref := it.IdentifierRef
			item.IdentifierRef = &ref
		}
		if v, err := strconv.ParseBool(it.IsVisible); err == nil {
			item.Visible = &v
		}
		item.Children = convertSCORM2004Items(it.Children, pm)
		out = append(out, item)
	}
	return out
}
