// Package validate implements the rule contract, issue type, and
// composition algebra of spec §4.6: ValidationRule is a stateless,
// thread-safe function from a manifest to a ValidationResult; results
// compose by an associative merge with Valid() as identity.
package validate

import (
	"fmt"
	"strings"

	"github.com/standardbeagle/elearning-parser/internal/manifest"
)

// Severity is ERROR or WARNING (spec §3).
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityWarning Severity = "WARNING"
)

// Issue is an immutable, value-typed validation finding (spec §3).
type Issue struct {
	Severity     Severity
	Code         string
	Message      string
	Location     string
	SuggestedFix string // empty means absent
}

func Error(code, message, location string) Issue {
	return Issue{Severity: SeverityError, Code: code, Message: message, Location: location}
}

func Warning(code, message, location string) Issue {
	return Issue{Severity: SeverityWarning, Code: code, Message: message, Location: location}
}

func (i Issue) WithSuggestedFix(fix string) Issue {
	i.SuggestedFix = fix
	return i
}

// Result is an ordered, immutable sequence of Issues (spec §4.6).
// Every operation returns a new Result; the zero value is Valid().
type Result struct {
	issues []Issue
}

// Valid is the empty Result: the left and right identity of Merge.
func Valid() Result {
	return Result{}
}

// Of builds a Result from a fixed set of issues, preserving order.
func Of(issues ...Issue) Result {
	return Result{issues: append([]Issue(nil), issues...)}
}

// Merge concatenates r's issues followed by other's, left to right.
// Associative; Valid() is identity on both sides (spec invariants 3-4,
// §8).
func (r Result) Merge(other Result) Result {
	if len(r.issues) == 0 {
		return other
	}
	if len(other.issues) == 0 {
		return r
	}
	merged := make([]Issue, 0, len(r.issues)+len(other.issues))
	merged = append(merged, r.issues...)
	merged = append(merged, other.issues...)
	return Result{issues: merged}
}

// MergeAll folds a slice of Results left to right with Valid() as the
// starting accumulator; this is how a validator composes its rule list
// (spec §4.6, §4.9 step 2).
func MergeAll(results ...Result) Result {
	acc := Valid()
	for _, r := range results {
		acc = acc.Merge(r)
	}
	return acc
}

// Issues returns the ordered issue sequence. Callers must not mutate
// the returned slice; Result never mutates its own backing array after
// construction.
func (r Result) Issues() []Issue {
	return r.issues
}

// HasErrors reports whether any issue has ERROR severity.
func (r Result) HasErrors() bool {
	for _, i := range r.issues {
		if i.Severity == SeverityError {
			return true
		}
	}
	return false
}

// IsValid is the negation of HasErrors (spec invariant: isValid ↔
// ¬hasErrors — warnings never invalidate).
func (r Result) IsValid() bool {
	return !r.HasErrors()
}

// FormatErrors renders the human-readable error block of spec §4.6:
// header "N error(s) found", then one numbered line per ERROR issue
// with its code and message, followed by indented Location/Suggestion
// lines when present.
func (r Result) FormatErrors() string {
	var errs []Issue
	for _, i := range r.issues {
		if i.Severity == SeverityError {
			errs = append(errs, i)
		}
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d error(s) found\n", len(errs))
	for idx, i := range errs {
		fmt.Fprintf(&b, "%d. [%s] %s\n", idx+1, i.Code, i.Message)
		if i.Location != "" {
			fmt.Fprintf(&b, "   Location: %s\n", i.Location)
		}
		if i.SuggestedFix != "" {
			fmt.Fprintf(&b, "   Suggestion: %s\n", i.SuggestedFix)
		}
	}
	return b.String()
}

// Rule is the contract of spec §4.6: a stateless function of a
// manifest, paired with a human name and a spec reference for
// diagnostics. Rule values are safe to evaluate concurrently across
// distinct manifests.
type Rule struct {
	Name      string
	SpecRef   string
	Evaluate  func(pm *manifest.PackageManifest) Result
}

// Run evaluates the rule, fail-fasting with a panic naming the rule
// if pm is nil. A nil manifest never reaches here in the normal parser
// flow (spec §4.6); this is a defensive invariant, not a recoverable
// case the rule list is expected to handle gracefully.
func (rule Rule) Run(pm *manifest.PackageManifest) Result {
	if pm == nil {
		panic(fmt.Sprintf("validate: rule %q invoked with a nil manifest", rule.Name))
	}
	return rule.Evaluate(pm)
}

// RunAll evaluates every rule against pm and merges the results in
// rule order (spec §4.6: "no rule short-circuits another").
func RunAll(rules []Rule, pm *manifest.PackageManifest) Result {
	results := make([]Result, len(rules))
	for i, rule := range rules {
		results[i] = rule.Run(pm)
	}
	return MergeAll(results...)
}
