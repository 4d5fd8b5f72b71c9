// Package charset implements the EncodingDetector of spec §4.2: BOM
// sniff, then a verified XML-declaration parse, then a UTF-8/
// Windows-1252 heuristic fallback. It is grounded on the
// golang.org/x/text BOM-override pattern used by cuelang.org/go's
// internal/encoding.NewDecoder (unicode.BOMOverride +
// transform.NewReader) in the retrieval pack, generalized from "assume
// UTF-8" to the full multi-charset contract the spec requires.
package charset

import (
	"bytes"
	"io"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
	"golang.org/x/text/transform"
)

// Charset is the detected character encoding of an XML byte stream.
type Charset string

const (
	UTF8        Charset = "UTF-8"
	UTF16BE     Charset = "UTF-16BE"
	UTF16LE     Charset = "UTF-16LE"
	UTF32BE     Charset = "UTF-32BE"
	UTF32LE     Charset = "UTF-32LE"
	ISO88591    Charset = "ISO-8859-1"
	Windows1252 Charset = "windows-1252"
)

// Result is the outcome of Detect: the classified charset and a
// reader positioned past any BOM but otherwise unchanged.
type Result struct {
	Charset Charset
	Reader  io.Reader
}

const declSampleSize = 8192
const declProbeSize = 200

var encodingAttr = regexp.MustCompile(`(?i)<\?xml[^>]*\bencoding\s*=\s*["']([^"']+)["']`)
var xmlDeclPresent = regexp.MustCompile(`(?is)<\?xml\b[^>]*\?>`)

// Detect classifies the charset of data (the full byte content of an
// XML document) and returns a Result whose Reader starts after any
// BOM. Buffering the whole document up front, rather than a streaming
// mark/reset reader, is sufficient here since manifest/LOM documents
// are bounded in size and XmlReader decodes the whole document anyway.
func Detect(data []byte) Result {
	if cs, n := detectBOM(data); cs != "" {
		return Result{Charset: cs, Reader: bytes.NewReader(data[n:])}
	}

	if cs, ok := detectDeclared(data); ok {
		return Result{Charset: cs, Reader: bytes.NewReader(data)}
	}

	return Result{Charset: heuristic(data), Reader: bytes.NewReader(data)}
}

func detectBOM(data []byte) (Charset, int) {
	switch {
	case len(data) >= 4 && data[0] == 0x00 && data[1] == 0x00 && data[2] == 0xFE && data[3] == 0xFF:
		return UTF32BE, 4
	case len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF:
		return UTF8, 3
	case len(data) >= 2 && data[0] == 0xFE && data[1] == 0xFF:
		return UTF16BE, 2
	case len(data) >= 4 && data[0] == 0xFF && data[1] == 0xFE && data[2] == 0x00 && data[3] == 0x00:
		return UTF32LE, 4
	case len(data) >= 2 && data[0] == 0xFF && data[1] == 0xFE:
		return UTF16LE, 2
	default:
		return "", 0
	}
}

// detectDeclared tries decoding the first declProbeSize bytes of a
// declSampleSize sample under each candidate charset, looking for a
// resolvable <?xml ... encoding="..."?> declaration, then verifies the
// declared charset decodes the sample without error before trusting
// it. Packages in the wild declare encodings they don't use; the
// verification pass is what keeps a bad declaration from corrupting
// downstream parsing (spec §4.2 rationale).
func detectDeclared(data []byte) (Charset, bool) {
	sample := data
	if len(sample) > declSampleSize {
		sample = sample[:declSampleSize]
	}

	candidates := []Charset{UTF8, ISO88591, UTF16BE, UTF16LE, "UTF-16"}
	for _, cs := range candidates {
		probe := sample
		if len(probe) > declProbeSize {
			probe = probe[:declProbeSize]
		}
		text, err := decodeBestEffort(probe, cs)
		if err != nil {
			continue
		}
		if !xmlDeclPresent.MatchString(text) {
			continue
		}
		m := encodingAttr.FindStringSubmatch(text)
		if m == nil {
			// Declaration present without an encoding attribute: default
			// to UTF-8 per spec §4.2 step 2.
			return UTF8, true
		}
		declared, ok := resolveCharsetName(m[1])
		if !ok {
			// Unknown encoding name: fall through to the heuristic.
			return "", false
		}
		if err := verify(sample, declared); err != nil {
			return "", false
		}
		return declared, true
	}
	return "", false
}

func resolveCharsetName(name string) (Charset, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "utf-8", "utf8":
		return UTF8, true
	case "utf-16", "utf16":
		return "UTF-16", true
	case "utf-16be":
		return UTF16BE, true
	case "utf-16le":
		return UTF16LE, true
	case "utf-32", "utf-32be":
		return UTF32BE, true
	case "utf-32le":
		return UTF32LE, true
	case "iso-8859-1", "iso8859-1", "latin1":
		return ISO88591, true
	case "windows-1252", "cp1252":
		return Windows1252, true
	default:
		return "", false
	}
}

// heuristic implements spec §4.2 step 3: no high-bit bytes, or a valid
// UTF-8 byte sequence (tolerating a truncated trailing multi-byte
// sequence), means UTF-8; anything else falls back to windows-1252,
// which is the single-byte charset most legacy authoring tools emit.
func heuristic(data []byte) Charset {
	if !hasHighBit(data) {
		return UTF8
	}
	if looksLikeUTF8(data) {
		return UTF8
	}
	return Windows1252
}

func hasHighBit(data []byte) bool {
	for _, b := range data {
		if b >= 0x80 {
			return true
		}
	}
	return false
}

func looksLikeUTF8(data []byte) bool {
	i := 0
	for i < len(data) {
		b := data[i]
		switch {
		case b < 0x80:
			i++
		case b >= 0xC2 && b <= 0xDF:
			if !hasContinuation(data, i+1, 1) {
				return false
			}
			i += 2
		case b >= 0xE0 && b <= 0xEF:
			if !hasContinuation(data, i+1, 2) {
				return false
			}
			i += 3
		case b >= 0xF0 && b <= 0xF4:
			if !hasContinuation(data, i+1, 3) {
				return false
			}
			i += 4
		default:
			// C0, C1, and bytes above F4 are never valid UTF-8 lead bytes.
			return false
		}
	}
	return true
}

// hasContinuation reports whether there are n valid UTF-8 continuation
// bytes (0x80..0xBF) starting at off, or the sequence is merely
// truncated at the end of the buffer (which the spec treats as valid,
// since the detector only ever sees a prefix of the real document).
func hasContinuation(data []byte, off, n int) bool {
	for k := 0; k < n; k++ {
		if off+k >= len(data) {
			return true // truncated at buffer end: treat as UTF-8
		}
		b := data[off+k]
		if b < 0x80 || b > 0xBF {
			return false
		}
	}
	return true
}

// decodeBestEffort decodes data under cs, returning an error only for
// charsets whose decoder can fail outright (UTF-16 variants on
// malformed surrogate pairs); single-byte charsets never fail to
// produce *a* string, even if some bytes are unmappable.
func decodeBestEffort(data []byte, cs Charset) (string, error) {
	enc, ok := encodingFor(cs)
	if !ok {
		return string(data), nil
	}
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// verify re-decodes sample under cs and fails if the result contains
// the Unicode replacement character, which both x/text single-byte
// decoders and multi-byte decoders emit in place of malformed input or
// unmappable code points (REPORT-equivalent check, spec §4.2 step 2).
func verify(sample []byte, cs Charset) error {
	if cs == UTF8 {
		// encodingFor(UTF8) is encoding.Nop, which copies bytes through
		// unchanged rather than validating them — it can never surface a
		// malformed-input error, so UTF-8 needs its own check.
		if !utf8.Valid(sample) {
			return errUnmappableCharacter
		}
		return nil
	}
	enc, ok := encodingFor(cs)
	if !ok {
		return errUnsupportedCharset
	}
	dec := enc.NewDecoder()
	transformed, _, err := transform.Bytes(dec, sample)
	if err != nil {
		return err
	}
	if bytes.ContainsRune(transformed, utf8.RuneError) {
		return errUnmappableCharacter
	}
	return nil
}

var errUnsupportedCharset = errUnmappableErr("charset: unsupported declared charset")
var errUnmappableCharacter = errUnmappableErr("charset: unmappable character under declared charset")

type errUnmappableErr string

func (e errUnmappableErr) Error() string { return string(e) }

// NewUTF8Reader wraps r (the stream from a Result, in its declared
// charset) in a transform.Reader that re-encodes it to UTF-8, the only
// encoding XmlReader's underlying decoder accepts.
func NewUTF8Reader(r Result) (io.Reader, error) {
	if r.Charset == UTF8 {
		return r.Reader, nil
	}
	enc, ok := encodingFor(r.Charset)
	if !ok {
		return nil, errUnsupportedCharset
	}
	return transform.NewReader(r.Reader, enc.NewDecoder()), nil
}

func encodingFor(cs Charset) (encoding.Encoding, bool) {
	switch cs {
	case UTF8:
		return encoding.Nop, true
	case ISO88591:
		return charmap.ISO8859_1, true
	case Windows1252:
		return charmap.Windows1252, true
	case UTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), true
	case UTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), true
	case "UTF-16":
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM), true
	case UTF32BE:
		return utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM), true
	case UTF32LE:
		return utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM), true
	default:
		return nil, false
	}
}
