package xmlreader

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"encoding/xml"
)

// scalarDecodeError marks a failure in one of this package's custom
// UnmarshalXML/UnmarshalXMLAttr implementations, so Read can tell a
// malformed scalar value apart from a malformed document and raise
// elerrors.KindXMLScalarDecode instead of KindXMLMalformed.
type scalarDecodeError struct {
	field string
	value string
	err   error
}

func (e *scalarDecodeError) Error() string {
	return fmt.Sprintf("xmlreader: cannot decode %q as %s: %v", e.value, e.field, e.err)
}

func (e *scalarDecodeError) Unwrap() error { return e.err }

func asScalarDecodeError(err error) (*scalarDecodeError, bool) {
	var sd *scalarDecodeError
	if errors.As(err, &sd) {
		return sd, true
	}
	return nil, false
}

var (
	isoDurationRe = regexp.MustCompile(`^P(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+(?:\.\d+)?)S)?)?$`)
	clockRe       = regexp.MustCompile(`^(\d+):(\d+):(\d+)(?:\.\d+)?$`)
	bareNumberRe  = regexp.MustCompile(`^\d+(?:\.\d+)?$`)
)

// Duration decodes the ISO-8601 duration grammar SCORM 2004/cmi5
// elements use: canonical P[nD]T[nH][nM][nS], a bare number
// (interpreted as whole seconds, fractional part truncated), or
// HH:MM:SS (exactly two colons; any other colon count is an error).
// Years and months are rejected outright: the data model has no
// calendar to resolve them against.
type Duration time.Duration

func (d *Duration) UnmarshalXMLAttr(attr xml.Attr) error {
	parsed, err := parseDuration(attr.Value)
	if err != nil {
		return &scalarDecodeError{field: attr.Name.Local, value: attr.Value, err: err}
	}
	*d = Duration(parsed)
	return nil
}

func (d *Duration) UnmarshalXML(dec *xml.Decoder, start xml.StartElement) error {
	var s string
	if err := dec.DecodeElement(&s, &start); err != nil {
		return err
	}
	parsed, err := parseDuration(s)
	if err != nil {
		return &scalarDecodeError{field: start.Name.Local, value: s, err: err}
	}
	*d = Duration(parsed)
	return nil
}

func parseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}

	if strings.HasPrefix(s, "P") {
		// isoDurationRe only admits D before T and H/M/S after T, so a
		// year or a month component (neither of which this data model
		// has a calendar to resolve against) fails the match here and
		// falls through to the generic error below.
		m := isoDurationRe.FindStringSubmatch(s)
		if m == nil {
			return 0, fmt.Errorf("%q is not a valid ISO-8601 duration (years and months are not supported)", s)
		}
		days := atoiOr0(m[1])
		hours := atoiOr0(m[2])
		minutes := atoiOr0(m[3])
		seconds, _ := strconv.ParseFloat(orZero(m[4]), 64)
		total := time.Duration(days)*24*time.Hour +
			time.Duration(hours)*time.Hour +
			time.Duration(minutes)*time.Minute +
			time.Duration(seconds)*time.Second
		return total, nil
	}

	if m := clockRe.FindStringSubmatch(s); m != nil {
		return clockDurationFromParts(m[1], m[2], m[3])
	}
	if strings.Count(s, ":") > 0 {
		return 0, fmt.Errorf("%q has the wrong number of colon-separated fields for HH:MM:SS", s)
	}

	if bareNumberRe.MatchString(s) {
		f, _ := strconv.ParseFloat(s, 64)
		return time.Duration(f) * time.Second, nil
	}

	return 0, fmt.Errorf("%q is neither an ISO-8601 duration, HH:MM:SS, nor a bare number", s)
}

// ClockDuration decodes the strict HH:MM:SS form used by fields (such
// as SCORM 1.2's cmi.core.session_time) that never accept the ISO-8601
// grammar.
type ClockDuration time.Duration

func (d *ClockDuration) UnmarshalXMLAttr(attr xml.Attr) error {
	parsed, err := parseClockDuration(attr.Value)
	if err != nil {
		return &scalarDecodeError{field: attr.Name.Local, value: attr.Value, err: err}
	}
	*d = ClockDuration(parsed)
	return nil
}

func (d *ClockDuration) UnmarshalXML(dec *xml.Decoder, start xml.StartElement) error {
	var s string
	if err := dec.DecodeElement(&s, &start); err != nil {
		return err
	}
	parsed, err := parseClockDuration(s)
	if err != nil {
		return &scalarDecodeError{field: start.Name.Local, value: s, err: err}
	}
	*d = ClockDuration(parsed)
	return nil
}

func parseClockDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	m := clockRe.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("%q is not HH:MM:SS", s)
	}
	return clockDurationFromParts(m[1], m[2], m[3])
}

func clockDurationFromParts(hh, mm, ss string) (time.Duration, error) {
	h := atoiOr0(hh)
	m := atoiOr0(mm)
	s := atoiOr0(ss)
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(s)*time.Second, nil
}

// Instant decodes an ISO-8601 timestamp. An empty string decodes to
// the Unix epoch rather than an error, matching the common case of an
// optional timestamp field left blank by authoring tools.
type Instant time.Time

var instantLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func (t *Instant) UnmarshalXMLAttr(attr xml.Attr) error {
	parsed, err := parseInstant(attr.Value)
	if err != nil {
		return &scalarDecodeError{field: attr.Name.Local, value: attr.Value, err: err}
	}
	*t = Instant(parsed)
	return nil
}

func (t *Instant) UnmarshalXML(dec *xml.Decoder, start xml.StartElement) error {
	var s string
	if err := dec.DecodeElement(&s, &start); err != nil {
		return err
	}
	parsed, err := parseInstant(s)
	if err != nil {
		return &scalarDecodeError{field: start.Name.Local, value: s, err: err}
	}
	*t = Instant(parsed)
	return nil
}

func parseInstant(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Unix(0, 0).UTC(), nil
	}
	var lastErr error
	for _, layout := range instantLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			return parsed.UTC(), nil
		} else {
			lastErr = err
		}
	}
	return time.Time{}, lastErr
}

func atoiOr0(s string) int {
	if s == "" {
		return 0
	}
	n, _ := strconv.Atoi(s)
	return n
}

func orZero(s string) string {
	if s == "" {
		return "0"
	}
	return s
}
