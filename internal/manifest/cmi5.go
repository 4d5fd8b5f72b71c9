package manifest

import (
	"encoding/xml"
	"strings"

	"github.com/standardbeagle/elearning-parser/internal/xmlreader"
)

// CMI5Manifest is the raw decode target for cmi5.xml.
type CMI5Manifest struct {
	XMLName xml.Name    `xml:"courseStructure"`
	Course  *CMI5Course `xml:"course"`
	AUs     []CMI5AU    `xml:"au"`
}

type CMI5Course struct {
	ID    string          `xml:"id,attr"`
	Title CMI5LangStrings `xml:"title"`
}

type CMI5AU struct {
	ID    string          `xml:"id,attr"`
	Title CMI5LangStrings `xml:"title"`
	URL   string          `xml:"url"`
}

// CMI5LangStrings models the <title><langstring lang="en">...</langstring></title>
// wrapper; the first non-empty entry is used as the flattened title.
type CMI5LangStrings struct {
	Strings []CMI5LangString `xml:"langstring"`
}

type CMI5LangString struct {
	Lang  string `xml:"lang,attr"`
	Value string `xml:",chardata"`
}

func (l CMI5LangStrings) First() string {
	for _, s := range l.Strings {
		if strings.TrimSpace(s.Value) != "" {
			return strings.TrimSpace(s.Value)
		}
	}
	return ""
}

func DecodeCMI5Manifest(data []byte, path string) (*CMI5Manifest, string, error) {
	var m CMI5Manifest
	cs, err := xmlreader.ReadBytes(data, path, &m)
	if err != nil {
		return nil, "", err
	}
	return &m, string(cs), nil
}

func (m *CMI5Manifest) ToPackageManifest() *PackageManifest {
	pm := &PackageManifest{ModuleType: CMI5}

	pm.HasCourseElement = m.Course != nil
	if m.Course != nil {
		if strings.TrimSpace(m.Course.ID) != "" {
			id := m.Course.ID
			pm.Identifier = &id
			pm.RawIdentifiers = append(pm.RawIdentifiers, IdentifierOccurrence{id, "course"})
		}
		if title := m.Course.Title.First(); title != "" {
			pm.Title = &title
		}
	}

	for _, au := range m.AUs {
		pm.RawIdentifiers = append(pm.RawIdentifiers, IdentifierOccurrence{au.ID, "au " + au.ID})
		res := Resource{Identifier: au.ID}
		if strings.TrimSpace(au.URL) != "" {
			url := au.URL
			res.Href = &url
		}
		pm.Resources = append(pm.Resources, res)
		if pm.LaunchURL == nil && strings.TrimSpace(au.URL) != "" {
			url := au.URL
			pm.LaunchURL = &url
		}
	}

	return pm
}
