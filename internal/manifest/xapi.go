package manifest

import (
	"encoding/xml"
	"strings"

	"github.com/standardbeagle/elearning-parser/internal/xmlreader"
)

// XAPIManifest is the raw decode target for a tincan.xml activities
// descriptor.
type XAPIManifest struct {
	XMLName    xml.Name         `xml:"tincan"`
	Activities XAPIActivityList `xml:"activities"`
}

type XAPIActivityList struct {
	Activities []XAPIActivity `xml:"activity"`
}

type XAPIActivity struct {
	ID     string `xml:"id,attr"`
	Name   XAPIName `xml:"name"`
	Launch string `xml:"launch"`
}

type XAPIName struct {
	Value string `xml:",chardata"`
}

func DecodeXAPIManifest(data []byte, path string) (*XAPIManifest, string, error) {
	var m XAPIManifest
	cs, err := xmlreader.ReadBytes(data, path, &m)
	if err != nil {
		return nil, "", err
	}
	return &m, string(cs), nil
}

func (m *XAPIManifest) ToPackageManifest() *PackageManifest {
	pm := &PackageManifest{ModuleType: XAPI}

	for _, a := range m.Activities.Activities {
		pm.RawIdentifiers = append(pm.RawIdentifiers, IdentifierOccurrence{a.ID, "activity " + a.ID})
		res := Resource{Identifier: a.ID}
		if strings.TrimSpace(a.Launch) != "" {
			launch := a.Launch
			res.Href = &launch
		}
		pm.Resources = append(pm.Resources, res)
		if pm.Title == nil && strings.TrimSpace(a.Name.Value) != "" {
			title := strings.TrimSpace(a.Name.Value)
			pm.Title = &title
		}
		if pm.LaunchURL == nil && strings.TrimSpace(a.Launch) != "" {
			launch := a.Launch
			pm.LaunchURL = &launch
		}
	}
	if len(m.Activities.Activities) > 0 {
		id := m.Activities.Activities[0].ID
		pm.Identifier = &id
	}

	return pm
}
