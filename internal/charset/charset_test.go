package charset

import (
	"io"
	"testing"
)

func TestDetectBOM(t *testing.T) {
	cases := []struct {
		name string
		bom  []byte
		want Charset
	}{
		{"utf8", []byte{0xEF, 0xBB, 0xBF}, UTF8},
		{"utf16be", []byte{0xFE, 0xFF}, UTF16BE},
		{"utf16le", []byte{0xFF, 0xFE}, UTF16LE},
		{"utf32be", []byte{0x00, 0x00, 0xFE, 0xFF}, UTF32BE},
		{"utf32le", []byte{0xFF, 0xFE, 0x00, 0x00}, UTF32LE},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			payload := append(append([]byte{}, tc.bom...), []byte("<root/>")...)
			res := Detect(payload)
			if res.Charset != tc.want {
				t.Fatalf("Detect() charset = %q, want %q", res.Charset, tc.want)
			}
			got, err := io.ReadAll(res.Reader)
			if err != nil {
				t.Fatal(err)
			}
			if string(got) != "<root/>" {
				t.Fatalf("Reader content = %q, want %q (BOM not consumed)", got, "<root/>")
			}
		})
	}
}

func TestDetectHeuristicAllASCII(t *testing.T) {
	res := Detect([]byte(`<root attr="plain ascii"/>`))
	if res.Charset != UTF8 {
		t.Fatalf("charset = %q, want UTF-8", res.Charset)
	}
}

func TestDetectDeclaredUTF8NoAttr(t *testing.T) {
	res := Detect([]byte(`<?xml version="1.0"?><root/>`))
	if res.Charset != UTF8 {
		t.Fatalf("charset = %q, want UTF-8 (no encoding attr defaults to UTF-8)", res.Charset)
	}
}

func TestDetectDeclaredMismatchFallsBackToHeuristic(t *testing.T) {
	// Declares UTF-8 but the byte 0xE9 ('é' in Windows-1252) is not
	// valid as a UTF-8 continuation sequence here; the verification
	// pass should reject the declaration and fall back to the
	// heuristic, which picks windows-1252 for non-UTF-8 high-bit data.
	body := append([]byte(`<?xml version="1.0" encoding="UTF-8"?><root attr="`), 0xE9)
	body = append(body, []byte(`"/>`)...)
	res := Detect(body)
	if res.Charset != Windows1252 {
		t.Fatalf("charset = %q, want windows-1252 after declaration rejection", res.Charset)
	}
}

func TestHeuristicRejectsInvalidLeadBytes(t *testing.T) {
	if looksLikeUTF8([]byte{0xC0, 0x80}) {
		t.Fatal("C0 80 must never be accepted as UTF-8 (overlong encoding)")
	}
	if looksLikeUTF8([]byte{0xF5, 0x80, 0x80, 0x80}) {
		t.Fatal("F5 is above the valid UTF-8 lead-byte range")
	}
}

func TestHeuristicAcceptsTruncatedTrailingSequence(t *testing.T) {
	if !looksLikeUTF8([]byte{'a', 0xE2, 0x82}) {
		t.Fatal("a truncated trailing multi-byte sequence at buffer end should be tolerated")
	}
}
