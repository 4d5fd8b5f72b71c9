// Package security implements the path-safety checks used by the
// PathSecurity validation rule.
// It is adapted from the teacher's header/content sniffing validator
// (internal/security/file_validator.go): a pool of independent,
// single-purpose checks composed by the caller, rather than one
// monolithic regular expression.
package security

import "strings"

// Offense names a specific unsafe-path pattern. Values are stable,
// upper-snake-case strings suitable for use as ValidationIssue codes.
type Offense string

const (
	OffenseNone             Offense = ""
	OffensePathTraversal    Offense = "UNSAFE_PATH_TRAVERSAL"
	OffenseAbsolutePath     Offense = "UNSAFE_ABSOLUTE_PATH"
	OffenseExternalURL      Offense = "UNSAFE_EXTERNAL_URL"
	OffenseNullByte         Offense = "UNSAFE_NULL_BYTE"
)

// CheckPath classifies a resource/file href against the unsafe
// patterns in spec §4.7 (PathSecurity rule). Checks are evaluated in a
// fixed order and the first match wins, since a path can plausibly
// trip more than one (e.g. "/../x" contains both "../" and a leading
// "/") and the rule only needs one issue per offending path.
func CheckPath(href string) Offense {
	if strings.ContainsRune(href, 0) {
		return OffenseNullByte
	}
	if strings.Contains(href, "../") || strings.Contains(href, `..\`) {
		return OffensePathTraversal
	}
	if isExternalURL(href) {
		return OffenseExternalURL
	}
	if isAbsolutePath(href) {
		return OffenseAbsolutePath
	}
	return OffenseNone
}

func isExternalURL(href string) bool {
	lower := strings.ToLower(href)
	if strings.HasPrefix(lower, "//") {
		return true
	}
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return true
	}
	return false
}

func isAbsolutePath(href string) bool {
	if strings.HasPrefix(href, "/") || strings.HasPrefix(href, `\`) {
		return true
	}
	// Drive-letter absolute path, e.g. "C:\..." or "C:/...".
	if len(href) >= 2 && isASCIILetter(href[0]) && href[1] == ':' {
		return true
	}
	return false
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
