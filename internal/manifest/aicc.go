package manifest

import (
	"bufio"
	"bytes"
	"strings"
)

// AICCManifest is the normalized view of an AICC package's descriptor
// files. AICC predates XML manifests entirely: course description
// lives in a .crs file (INI-style sections) and assignable units in a
// .au file (comma-delimited rows with a header line), so this type has
// no encoding/xml struct tree to speak of — it is built directly by
// ParseAICCDescriptors from the two files' raw bytes.
type AICCManifest struct {
	CourseID    string
	CourseTitle string
	AUs         []AICCAssignableUnit
}

type AICCAssignableUnit struct {
	SystemID string
	Title    string
	URL      string
}

// ParseAICCDescriptors parses a .crs file's [Course] section and a
// .au file's delimited rows. Either may be empty if the file did not
// exist; the caller (the AICC parser) is responsible for locating and
// reading them through FileAccess.
func ParseAICCDescriptors(crs, au []byte) *AICCManifest {
	m := &AICCManifest{}
	section := ""
	scanner := bufio.NewScanner(bytes.NewReader(crs))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			section = strings.ToLower(strings.Trim(line, "[]"))
			continue
		}
		if section != "course" {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		switch strings.ToLower(strings.TrimSpace(key)) {
		case "course_id":
			m.CourseID = strings.TrimSpace(value)
		case "course_title":
			m.CourseTitle = strings.TrimSpace(value)
		}
	}

	auScanner := bufio.NewScanner(bytes.NewReader(au))
	var header []string
	first := true
	for auScanner.Scan() {
		line := strings.TrimSpace(auScanner.Text())
		if line == "" {
			continue
		}
		fields := splitAICCRow(line)
		if first {
			header = lowerAll(fields)
			first = false
			continue
		}
		unit := AICCAssignableUnit{}
		for i, col := range header {
			if i >= len(fields) {
				break
			}
			switch col {
			case "system_id":
				unit.SystemID = fields[i]
			case "au_title", "title":
				unit.Title = fields[i]
			case "file_name", "web_launch", "url":
				if unit.URL == "" {
					unit.URL = fields[i]
				}
			}
		}
		m.AUs = append(m.AUs, unit)
	}

	return m
}

func splitAICCRow(line string) []string {
	raw := strings.Split(line, ",")
	out := make([]string, len(raw))
	for i, f := range raw {
		out[i] = strings.Trim(strings.TrimSpace(f), `"`)
	}
	return out
}

func lowerAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(strings.TrimSpace(s))
	}
	return out
}

func (m *AICCManifest) ToPackageManifest() *PackageManifest {
	pm := &PackageManifest{ModuleType: AICC}
	if strings.TrimSpace(m.CourseID) != "" {
		id := m.CourseID
		pm.Identifier = &id
		pm.RawIdentifiers = append(pm.RawIdentifiers, IdentifierOccurrence{id, "course"})
	}
	if strings.TrimSpace(m.CourseTitle) != "" {
		title := m.CourseTitle
		pm.Title = &title
	}
	for _, au := range m.AUs {
		res := Resource{Identifier: au.SystemID}
		if au.URL != "" {
			url := au.URL
			res.Href = &url
		}
		pm.Resources = append(pm.Resources, res)
		if pm.LaunchURL == nil && au.URL != "" {
			pm.LaunchURL = &au.URL
		}
	}
	return pm
}
