package manifest

import (
	"encoding/xml"
	"strings"

	"github.com/standardbeagle/elearning-parser/internal/xmlreader"
)

// SCORM12Manifest is the raw typed decode target for a SCORM 1.2
// imsmanifest.xml. Struct tags are deliberately permissive about
// namespace prefixes (encoding/xml matches by local name when no
// namespace is declared on the tag), since authoring tools are
// inconsistent about the adlcp prefix.
type SCORM12Manifest struct {
	XMLName       xml.Name             `xml:"manifest"`
	Identifier    string               `xml:"identifier,attr"`
	Xmlns         string               `xml:"xmlns,attr"`
	XmlnsAdlcp    string               `xml:"adlcp,attr"`
	Metadata      *SCORM12Metadata      `xml:"metadata"`
	Organizations *SCORM12Organizations `xml:"organizations"`
	Resources     *SCORM12Resources     `xml:"resources"`
}

type SCORM12Metadata struct {
	Schema        string `xml:"schema"`
	SchemaVersion string `xml:"schemaversion"`
	LocationAttr  string `xml:"location,attr"`
	lom           LOM
}

func (m *SCORM12Metadata) Location() string { return m.LocationAttr }
func (m *SCORM12Metadata) SetLOM(lom LOM)    { m.lom = lom }
func (m *SCORM12Metadata) LOM() LOM          { return m.lom }

type SCORM12Organizations struct {
	Default       string              `xml:"default,attr"`
	Organizations []SCORM12Organization `xml:"organization"`
}

type SCORM12Organization struct {
	Identifier string        `xml:"identifier,attr"`
	Title      string        `xml:"title"`
	Items      []SCORM12Item `xml:"item"`
}

type SCORM12Item struct {
	Identifier    string        `xml:"identifier,attr"`
	IdentifierRef string        `xml:"identifierref,attr"`
	IsVisible     string        `xml:"isvisible,attr"`
	Title         string        `xml:"title"`
	Children      []SCORM12Item `xml:"item"`
}

type SCORM12Resources struct {
	Resources []SCORM12Resource `xml:"resource"`
}

type SCORM12Resource struct {
	Identifier string           `xml:"identifier,attr"`
	Type       string           `xml:"type,attr"`
	ScormType  string           `xml:"scormtype,attr"`
	Href       string           `xml:"href,attr"`
	Files      []SCORM12File    `xml:"file"`
	Metadata   *SCORM12Metadata `xml:"metadata"`
}

type SCORM12File struct {
	Href string `xml:"href,attr"`
}

// DecodeSCORM12Manifest reads and decodes a SCORM 1.2 imsmanifest.xml
// via the shared secure XmlReader.
func DecodeSCORM12Manifest(data []byte, path string) (*SCORM12Manifest, string, error) {
	var m SCORM12Manifest
	cs, err := xmlreader.ReadBytes(data, path, &m)
	if err != nil {
		return nil, "", err
	}
	return &m, string(cs), nil
}

// ToPackageManifest projects the raw SCORM 1.2 tree onto the
// normalized PackageManifest (spec §3).
func (m *SCORM12Manifest) ToPackageManifest() *PackageManifest {
	pm := &PackageManifest{ModuleType: SCORM12}

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

	var items []*Item
	if m.Organizations != nil {
		if strings.TrimSpace(m.Organizations.Default) != "" {
			def := m.Organizations.Default
			pm.DefaultOrganizationID = &def
		}
		for _, org := range m.Organizations.Organizations {
			pm.RawIdentifiers = append(pm.RawIdentifiers, IdentifierOccurrence{org.Identifier, "organization " + org.Identifier})
			orgItems := convertSCORM12Items(org.Items, pm)
			pm.Organizations = append(pm.Organizations, Organization{
				Identifier: org.Identifier,
				Title:      org.Title,
				Items:      orgItems,
			})
			if org.Identifier == m.Organizations.Default || m.Organizations.Default == "" {
				items = orgItems
				if strings.TrimSpace(org.Title) != "" {
					title := org.Title
					pm.Title = &title
				}
			}
		}
	}
	pm.Items = items

	var rawResources []SCORM12Resource
	if m.Resources != nil {
		rawResources = m.Resources.Resources
	}
	for _, r := range rawResources {
		pm.RawIdentifiers = append(pm.RawIdentifiers, IdentifierOccurrence{r.Identifier, "resource " + r.Identifier})
		if r.Metadata != nil {
			pm.LoadableElements = append(pm.LoadableElements, r.Metadata)
		}
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

	return pm
}

func isSCOType(scormType string) bool {
	return strings.EqualFold(strings.TrimSpace(scormType), "sco")
}

func convertSCORM12Items(raw []SCORM12Item, pm *PackageManifest) []*Item {
	out := make([]*Item, 0, len(raw))
	for _, it := range raw {
		pm.RawIdentifiers = append(pm.RawIdentifiers, IdentifierOccurrence{it.Identifier, "item " + it.Identifier})
		item := &Item{Identifier: it.Identifier, Title: it.Title}
		if strings.TrimSpace(it.IdentifierRef) != "" {
			ref := it.IdentifierRef
			item.IdentifierRef = &ref
		}
		item.Children = convertSCORM12Items(it.Children, pm)
		out = append(out, item)
	}
	return out
}
