// Package detect implements the ScormVersionDetector (spec §4.4) and
// the priority-ordered ModuleTypeDetector plugin chain (spec §4.5).
package detect

import (
	"bytes"
	"io"
	"regexp"
	"strings"

	"github.com/standardbeagle/elearning-parser/internal/charset"
	"github.com/standardbeagle/elearning-parser/internal/elerrors"
	"github.com/standardbeagle/elearning-parser/internal/fileaccess"
	"github.com/standardbeagle/elearning-parser/internal/manifest"
)

const manifestFileName = "imsmanifest.xml"

var (
	schemaRe        = regexp.MustCompile(`(?is)<schema>\s*(.*?)\s*</schema>`)
	schemaVersionRe = regexp.MustCompile(`(?is)<schemaversion>\s*(.*?)\s*</schemaversion>`)
	adlcpAttrRe     = regexp.MustCompile(`(?is)xmlns:adlcp\s*=\s*["']([^"']*)["']`)
)

// DetectSCORMVersion implements spec §4.4: locate imsmanifest.xml
// case-insensitively at the root, read it under a cascading charset
// retry, and discriminate 1.2 vs 2004 from <schema>/<schemaversion> or
// the xmlns:adlcp attribute, defaulting to SCORM 1.2.
func DetectSCORMVersion(fa fileaccess.FileAccess) (manifest.ModuleType, error) {
	manifestPath, ok := locateManifest(fa)
	if !ok {
		return "", elerrors.NewFileAccessError(elerrors.KindFileAccessNotFound, "locate", manifestFileName, fileaccess.ErrNotFound)
	}

	text, err := readWithCascadingCharset(fa, manifestPath)
	if err != nil {
		return "", err
	}

	if m := schemaRe.FindStringSubmatch(text); m != nil && strings.EqualFold(strings.TrimSpace(m[1]), "ADL SCORM") {
		if v := schemaVersionRe.FindStringSubmatch(text); v != nil {
			version := strings.TrimSpace(v[1])
			switch {
			case version == "1.2":
				return manifest.SCORM12, nil
			case strings.HasPrefix(version, "2004"):
				return manifest.SCORM2004, nil
			}
		}
	}

	if m := adlcpAttrRe.FindStringSubmatch(text); m != nil {
		ns := m[1]
		if strings.Contains(ns, "adlcp_v1p3") || strings.Contains(ns, "adlcp_v1p2") {
			return manifest.SCORM2004, nil
		}
	}

	return manifest.SCORM12, nil
}

func locateManifest(fa fileaccess.FileAccess) (string, bool) {
	if fa.Exists(manifestFileName) {
		return manifestFileName, true
	}
	entries, err := fa.List("")
	if err != nil {
		return "", false
	}
	for _, e := range entries {
		if strings.EqualFold(e, manifestFileName) {
			return e, true
		}
	}
	return "", false
}

// readWithCascadingCharset implements the detector's "silent error
// handler": decode under the detector's own charset pass first, and on
// a conversion failure retry under ISO-8859-1 then windows-1252,
// ignoring warnings and only propagating a hard I/O failure.
func readWithCascadingCharset(fa fileaccess.FileAccess, path string) (string, error) {
	rc, err := fa.Open(path)
	if err != nil {
		return "", err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return "", elerrors.NewFileAccessError(elerrors.KindFileAccessIO, "read", path, err)
	}

	result := charset.Detect(data)
	if text, err := decodeUnder(data, result.Charset); err == nil {
		return text, nil
	}
	for _, fallback := range []charset.Charset{charset.ISO88591, charset.Windows1252} {
		if text, err := decodeUnder(data, fallback); err == nil {
			return text, nil
		}
	}
	// Every charset attempted failed outright (not merely unmappable
	// characters); fall back to a raw best-effort string so schema
	// discrimination can still proceed on the ASCII structural markup.
	return string(data), nil
}

func decodeUnder(data []byte, cs charset.Charset) (string, error) {
	r, err := charset.NewUTF8Reader(charset.Result{Charset: cs, Reader: bytes.NewReader(data)})
	if err != nil {
		return "", err
	}
	out, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
