// Package xsd implements the opt-in SCORM 2004 schema validator of
// spec §6/§7 (Manifest/SchemaValidation): a configuration switch, not
// a contract of the core, so it lives outside the internal/rules
// framework entirely and is only ever invoked by the SCORM 2004
// parser when ParserOptions.ValidateXMLAgainstSchema is set.
//
// Grounded on the agentflare-ai/go-xsd usage pattern shown in
// agentflare-ai/agentml-go's validator/validator.go (other_examples):
// that validator also treats XSD validation as one layer feeding into
// a larger diagnostics list, which is the same shape a
// validate.Result slots into here.
package xsd

import (
	_ "embed"
	"fmt"
	"sync"

	gxsd "github.com/agentflare-ai/go-xsd"

	"github.com/standardbeagle/elearning-parser/internal/validate"
)

//go:embed scorm2004.xsd
var scorm2004Schema []byte

var (
	compileOnce sync.Once
	compiled    *gxsd.Schema
	compileErr  error
)

func scorm2004() (*gxsd.Schema, error) {
	compileOnce.Do(func() {
		compiled, compileErr = gxsd.ParseSchema(scorm2004Schema)
	})
	return compiled, compileErr
}

// ValidateSCORM2004Manifest runs data (the raw imsmanifest.xml bytes)
// against the embedded reduced SCORM 2004 schema and translates every
// schema violation into an ERROR issue carrying a
// "imsmanifest.xml:line:column" location string, per spec §6's
// "reported as a Manifest/SchemaValidation error with line/column".
// Returns a non-nil error only if the validator itself could not run
// (e.g. the embedded schema failed to compile); schema violations in
// the document are reported as issues, not as a Go error.
func ValidateSCORM2004Manifest(data []byte) (validate.Result, error) {
	schema, err := scorm2004()
	if err != nil {
		return validate.Result{}, fmt.Errorf("xsd: compile embedded SCORM 2004 schema: %w", err)
	}

	violations, err := schema.ValidateBytes(data)
	if err != nil {
		return validate.Result{}, fmt.Errorf("xsd: validate imsmanifest.xml: %w", err)
	}

	issues := make([]validate.Issue, 0, len(violations))
	for _, v := range violations {
		issues = append(issues, validate.Error(
			"SCORM2004_SCHEMA_VIOLATION",
			v.Message,
			fmt.Sprintf("imsmanifest.xml:%d:%d", v.Line, v.Column),
		))
	}
	return validate.Of(issues...), nil
}
