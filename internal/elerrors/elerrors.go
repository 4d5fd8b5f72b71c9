// Package elerrors defines the fatal-error taxonomy of the parsing core
// (spec §7). Validation findings are data (ValidationIssue), never
// errors; this package covers only the structural/fatal kinds that
// abort a parse: FileAccess, XML, Manifest, Metadata and Detection
// failures.
package elerrors

import (
	"fmt"
	"time"
)

// Kind identifies which family of fatal error occurred.
type Kind string

const (
	KindFileAccessNotFound Kind = "FileAccess/NotFound"
	KindFileAccessIO       Kind = "FileAccess/Io"
	KindFileAccessClosed   Kind = "FileAccess/Closed"

	KindXMLMalformed         Kind = "Xml/Malformed"
	KindXMLScalarDecode      Kind = "Xml/ScalarDecode"
	KindXMLEncodingMismatch  Kind = "Xml/EncodingMismatch"

	KindManifestParse            Kind = "Manifest/Parse"
	KindManifestSchemaValidation Kind = "Manifest/SchemaValidation"

	KindMetadataLoad Kind = "Metadata/Load"

	KindDetectionUnknown Kind = "Detection/Unknown"
)

// FileAccessError wraps a failure reading from a FileAccess root.
type FileAccessError struct {
	Kind      Kind
	Path      string
	Operation string
	Err       error
	At        time.Time
}

func NewFileAccessError(kind Kind, op, path string, err error) *FileAccessError {
	return &FileAccessError{Kind: kind, Path: path, Operation: op, Err: err, At: time.Now()}
}

func (e *FileAccessError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %s failed: %v", e.Kind, e.Operation, e.Err)
	}
	return fmt.Sprintf("%s: %s failed for %q: %v", e.Kind, e.Operation, e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error { return e.Err }

// XMLError wraps a decode-time failure: malformed XML, an encoding
// mismatch caught by the charset detector's verification pass, or a
// scalar-decoder failure on a typed field. The message always carries
// the containing file path and the effective charset, per spec §4.3.
type XMLError struct {
	Kind     Kind
	Path     string
	Charset  string
	Field    string
	Err      error
	At       time.Time
}

func NewXMLError(kind Kind, path, charset string, err error) *XMLError {
	return &XMLError{Kind: kind, Path: path, Charset: charset, Err: err, At: time.Now()}
}

func (e *XMLError) WithField(field string) *XMLError {
	e.Field = field
	return e
}

func (e *XMLError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s (charset=%s, field=%s): %v", e.Kind, e.Path, e.Charset, e.Field, e.Err)
	}
	return fmt.Sprintf("%s: %s (charset=%s): %v", e.Kind, e.Path, e.Charset, e.Err)
}

func (e *XMLError) Unwrap() error { return e.Err }

// ManifestError is the composite envelope a parser raises when a
// manifest cannot be materialized at all, or when strict mode escalates
// a non-empty ValidationResult into a fatal error. Message is built by
// the caller (parser or strict-mode wrapper); Err carries the cause.
type ManifestError struct {
	Kind    Kind
	Message string
	Err     error
	At      time.Time
	// Result carries the structured ValidationResult for strict-mode
	// escalation, as interface{} to avoid an import cycle with the
	// validate package; callers type-assert to *validate.Result.
	Result interface{}
}

func NewManifestError(kind Kind, message string, err error) *ManifestError {
	return &ManifestError{Kind: kind, Message: message, Err: err, At: time.Now()}
}

func (e *ManifestError) WithResult(result interface{}) *ManifestError {
	e.Result = result
	return e
}

func (e *ManifestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *ManifestError) Unwrap() error { return e.Err }

// MetadataError wraps a malformed external LOM file. A missing file is
// never an error (spec §4.9); only a present-but-unparseable file
// reaches this type.
type MetadataError struct {
	Path string
	Err  error
	At   time.Time
}

func NewMetadataError(path string, err error) *MetadataError {
	return &MetadataError{Path: path, Err: err, At: time.Now()}
}

func (e *MetadataError) Error() string {
	return fmt.Sprintf("Metadata/Load: failed to load external metadata %q: %v", e.Path, e.Err)
}

func (e *MetadataError) Unwrap() error { return e.Err }

// DetectionError is raised when no detector plugin claims a package.
type DetectionError struct {
	RootPath string
	At       time.Time
}

func NewDetectionError(rootPath string) *DetectionError {
	return &DetectionError{RootPath: rootPath, At: time.Now()}
}

func (e *DetectionError) Error() string {
	return fmt.Sprintf("Detection/Unknown: no detector plugin matched package at %q", e.RootPath)
}
