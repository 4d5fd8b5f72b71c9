package xmlreader

import (
	"strings"
	"testing"
	"time"

	"github.com/standardbeagle/elearning-parser/internal/elerrors"
)

type testDoc struct {
	Title    string   `xml:"title"`
	Duration Duration `xml:"duration"`
	Clock    ClockDuration `xml:"clock"`
	Started  Instant  `xml:"started"`
	Unknown  string   `xml:"-"`
}

func TestReadBytesDecodesKnownAndIgnoresUnknownElements(t *testing.T) {
	doc := `<?xml version="1.0"?>
<root>
  <title>Intro to Go</title>
  <duration>PT1H30M</duration>
  <clock>01:02:03</clock>
  <started>2024-01-02T03:04:05Z</started>
  <somethingElseEntirely attr="x"><nested/></somethingElseEntirely>
</root>`
	var out testDoc
	cs, err := ReadBytes([]byte(doc), "imsmanifest.xml", &out)
	if err != nil {
		t.Fatalf("ReadBytes: %v", err)
	}
	if cs != "UTF-8" {
		t.Fatalf("charset = %q, want UTF-8", cs)
	}
	if out.Title != "Intro to Go" {
		t.Fatalf("Title = %q", out.Title)
	}
	if time.Duration(out.Duration) != 90*time.Minute {
		t.Fatalf("Duration = %v, want 90m", time.Duration(out.Duration))
	}
	if time.Duration(out.Clock) != time.Hour+2*time.Minute+3*time.Second {
		t.Fatalf("Clock = %v", time.Duration(out.Clock))
	}
}

func TestReadBytesMalformedXMLRaisesXMLError(t *testing.T) {
	var out testDoc
	_, err := ReadBytes([]byte(`<root><title>unclosed</root>`), "bad.xml", &out)
	if err == nil {
		t.Fatal("expected an error for malformed XML")
	}
	xerr, ok := err.(*elerrors.XMLError)
	if !ok {
		t.Fatalf("error type = %T, want *elerrors.XMLError", err)
	}
	if xerr.Kind != elerrors.KindXMLMalformed {
		t.Fatalf("Kind = %v, want KindXMLMalformed", xerr.Kind)
	}
}

func TestReadBytesBadScalarRaisesScalarDecodeKind(t *testing.T) {
	var out testDoc
	_, err := ReadBytes([]byte(`<root><duration>P2Y</duration></root>`), "bad.xml", &out)
	if err == nil {
		t.Fatal("expected an error for a year-bearing duration")
	}
	xerr, ok := err.(*elerrors.XMLError)
	if !ok {
		t.Fatalf("error type = %T, want *elerrors.XMLError", err)
	}
	if xerr.Kind != elerrors.KindXMLScalarDecode {
		t.Fatalf("Kind = %v, want KindXMLScalarDecode", xerr.Kind)
	}
	if xerr.Field != "duration" {
		t.Fatalf("Field = %q, want duration", xerr.Field)
	}
}

func TestParseDurationForms(t *testing.T) {
	cases := []struct {
		in   string
		want time.Duration
	}{
		{"PT1H30M", 90 * time.Minute},
		{"P1DT2H", 24*time.Hour + 2*time.Hour},
		{"3600", 3600 * time.Second},
		{"01:02:03", time.Hour + 2*time.Minute + 3*time.Second},
		{"", 0},
	}
	for _, tc := range cases {
		got, err := parseDuration(tc.in)
		if err != nil {
			t.Fatalf("parseDuration(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("parseDuration(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseDurationRejectsYearsAndBadColonCounts(t *testing.T) {
	if _, err := parseDuration("P2Y"); err == nil {
		t.Fatal("expected years to be rejected")
	}
	if _, err := parseDuration("01:02:03:04"); err == nil {
		t.Fatal("expected a wrong colon count to be rejected")
	}
}

func TestParseInstantEmptyIsEpoch(t *testing.T) {
	got, err := parseInstant("")
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(time.Unix(0, 0).UTC()) {
		t.Fatalf("parseInstant(\"\") = %v, want epoch", got)
	}
}

func TestReadBytesWindows1252Document(t *testing.T) {
	// 0xE9 is 'é' in windows-1252; no BOM and no encoding declaration,
	// so the heuristic fallback must classify it and the reader must
	// transcode before decoding.
	doc := "<root><title>caf\xe9</title></root>"
	var out testDoc
	cs, err := ReadBytes([]byte(doc), "legacy.xml", &out)
	if err != nil {
		t.Fatalf("ReadBytes: %v", err)
	}
	if cs != "windows-1252" {
		t.Fatalf("charset = %q, want windows-1252", cs)
	}
	if !strings.Contains(out.Title, "caf") {
		t.Fatalf("Title = %q", out.Title)
	}
}
