package validate

import (
	"reflect"
	"testing"

	"github.com/standardbeagle/elearning-parser/internal/manifest"
)

func TestMergeIsAssociativeAndValidIsIdentity(t *testing.T) {
	a := Of(Error("E1", "first", "loc1"))
	b := Of(Warning("W1", "second", "loc2"))
	c := Of(Error("E2", "third", "loc3"))

	left := a.Merge(b).Merge(c)
	right := a.Merge(b.Merge(c))
	if !reflect.DeepEqual(left.Issues(), right.Issues()) {
		t.Fatalf("merge is not associative: %+v vs %+v", left.Issues(), right.Issues())
	}

	if !reflect.DeepEqual(a.Merge(Valid()).Issues(), a.Issues()) {
		t.Fatal("Valid() must be a right identity for Merge")
	}
	if !reflect.DeepEqual(Valid().Merge(a).Issues(), a.Issues()) {
		t.Fatal("Valid() must be a left identity for Merge")
	}
}

func TestMergeIsOrderedConcatenation(t *testing.T) {
	a := Of(Error("E1", "m1", ""))
	b := Of(Error("E2", "m2", ""))
	merged := a.Merge(b)
	want := []Issue{a.Issues()[0], b.Issues()[0]}
	if !reflect.DeepEqual(merged.Issues(), want) {
		t.Fatalf("Merge() = %+v, want ordered concatenation %+v", merged.Issues(), want)
	}
}

func TestHasErrorsAndIsValid(t *testing.T) {
	onlyWarnings := Of(Warning("W1", "w", ""))
	if onlyWarnings.HasErrors() {
		t.Fatal("a warning-only result must not HasErrors")
	}
	if !onlyWarnings.IsValid() {
		t.Fatal("a warning-only result must be valid")
	}

	withError := Of(Warning("W1", "w", ""), Error("E1", "e", ""))
	if !withError.HasErrors() {
		t.Fatal("expected HasErrors() with an ERROR issue present")
	}
	if withError.IsValid() {
		t.Fatal("IsValid must be the negation of HasErrors")
	}
}

func TestFormatErrorsHeaderAndBody(t *testing.T) {
	r := Of(
		Error("CODE_A", "message A", "loc A").WithSuggestedFix("fix A"),
		Warning("CODE_W", "ignored", ""),
		Error("CODE_B", "message B", ""),
	)
	out := r.FormatErrors()
	if out == "" {
		t.Fatal("expected non-empty output")
	}
	want := "2 error(s) found\n1. [CODE_A] message A\n   Location: loc A\n   Suggestion: fix A\n2. [CODE_B] message B\n"
	if out != want {
		t.Fatalf("FormatErrors() =\n%q\nwant\n%q", out, want)
	}
}

func TestRunAllDoesNotShortCircuit(t *testing.T) {
	calls := 0
	rules := []Rule{
		{Name: "r1", Evaluate: func(pm *manifest.PackageManifest) Result {
			calls++
			return Of(Error("R1", "first", ""))
		}},
		{Name: "r2", Evaluate: func(pm *manifest.PackageManifest) Result {
			calls++
			return Of(Error("R2", "second", ""))
		}},
	}
	result := RunAll(rules, &manifest.PackageManifest{})
	if calls != 2 {
		t.Fatalf("calls = %d, want both rules evaluated regardless of an earlier error", calls)
	}
	if len(result.Issues()) != 2 {
		t.Fatalf("Issues() = %+v, want both rules' issues merged", result.Issues())
	}
}

func TestRuleRunPanicsOnNilManifest(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected Run to panic on a nil manifest")
		}
	}()
	rule := Rule{Name: "r", Evaluate: func(pm *manifest.PackageManifest) Result { return Valid() }}
	rule.Run(nil)
}
