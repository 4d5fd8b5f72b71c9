// Package parser implements the per-standard Parser/BaseParser
// template method and ParserFactory orchestration of spec §4.9-§4.10.
package parser

// ProgressListener receives byte-granular progress callbacks from
// streaming I/O (spec §3). The parsers call it once per descriptor file,
// after the file has been read in full, with current and total both set
// to the number of bytes read.
type ProgressListener func(path string, current, total int64)

// Options configures a parse (spec §3). The zero value is the lenient,
// non-schema-validating default.
type Options struct {
	StrictMode               bool
	ValidateXMLAgainstSchema bool
	ProgressListener         ProgressListener
}

func (o Options) notify(path string, current, total int64) {
	if o.ProgressListener != nil {
		o.ProgressListener(path, current, total)
	}
}
