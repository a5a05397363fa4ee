package guard_test

import (
	"errors"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	. "github.com/npillmayer/refined/guard"
	"github.com/npillmayer/refined/result"
)

func TestRangeGuardBoundaries(t *testing.T) {
	if result.IsOk(Gt(5)(5)) {
		t.Error("expected gt(5, 5) to fail, didn't")
	}
	if _, err := result.Unpack(Gt(5)(5)); !errors.As(err, &BelowRangeError{}) {
		t.Errorf("expected gt(5, 5) to fail with BelowRange, got %v", err)
	}
	if v, err := result.Unpack(Gt(5)(6)); err != nil || v != 6 {
		t.Errorf("expected gt(5, 6) = Ok 6, got (%d, %v)", v, err)
	}
	if v, err := result.Unpack(Gte(5)(5)); err != nil || v != 5 {
		t.Errorf("expected gte(5, 5) = Ok 5, got (%d, %v)", v, err)
	}
	if result.IsOk(Lt(5)(5)) {
		t.Error("expected lt(5, 5) to fail, didn't")
	}
	if _, err := result.Unpack(Lt(5)(5)); !errors.As(err, &AboveRangeError{}) {
		t.Errorf("expected lt(5, 5) to fail with AboveRange, got %v", err)
	}
	if v, err := result.Unpack(Lte(5)(5)); err != nil || v != 5 {
		t.Errorf("expected lte(5, 5) = Ok 5, got (%d, %v)", v, err)
	}
}

func TestRangeGuardProperties(t *testing.T) {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 200
	props := gopter.NewProperties(params)

	props.Property("gt fails iff v <= bound", prop.ForAll(
		func(bound, v int) bool {
			return result.IsOk(Gt(bound)(v)) == (v > bound)
		},
		gen.IntRange(-1000, 1000), gen.IntRange(-1000, 1000),
	))
	props.Property("gte fails iff v < bound", prop.ForAll(
		func(bound, v int) bool {
			return result.IsOk(Gte(bound)(v)) == (v >= bound)
		},
		gen.IntRange(-1000, 1000), gen.IntRange(-1000, 1000),
	))
	props.Property("lt fails iff v >= bound", prop.ForAll(
		func(bound, v int) bool {
			return result.IsOk(Lt(bound)(v)) == (v < bound)
		},
		gen.IntRange(-1000, 1000), gen.IntRange(-1000, 1000),
	))
	props.Property("lte fails iff v > bound", prop.ForAll(
		func(bound, v int) bool {
			return result.IsOk(Lte(bound)(v)) == (v <= bound)
		},
		gen.IntRange(-1000, 1000), gen.IntRange(-1000, 1000),
	))
	props.Property("successful guard returns the input unchanged", prop.ForAll(
		func(bound, v int) bool {
			r := Gte(bound)(v)
			if w, err := result.Unpack(r); err == nil {
				return w == v
			}
			return true
		},
		gen.IntRange(-1000, 1000), gen.IntRange(-1000, 1000),
	))

	props.TestingRun(t)
}

func TestStringGuards(t *testing.T) {
	if _, err := result.Unpack(MinLength(3)("ab")); !errors.As(err, &TooShortError{}) {
		t.Errorf("expected minLength(3, \"ab\") to fail TooShort, got %v", err)
	}
	if v, err := result.Unpack(MinLength(3)("abc")); err != nil || v != "abc" {
		t.Errorf("expected minLength(3, \"abc\") = Ok, got (%q, %v)", v, err)
	}
	if _, err := result.Unpack(MaxLength(3)("abcd")); !errors.As(err, &TooLongError{}) {
		t.Errorf("expected maxLength(3, \"abcd\") to fail TooLong, got %v", err)
	}
	if v, err := result.Unpack(MaxLength(3)("abc")); err != nil || v != "abc" {
		t.Errorf("expected maxLength(3, \"abc\") = Ok, got (%q, %v)", v, err)
	}
}

func TestRegexGuard(t *testing.T) {
	g := Regex("^a.*z$")
	if v, err := result.Unpack(g("abz")); err != nil || v != "abz" {
		t.Errorf("expected regexMatch(^a.*z$, abz) = Ok, got (%q, %v)", v, err)
	}
	if _, err := result.Unpack(g("abc")); !errors.As(err, &NoRegexMatchError{}) {
		t.Errorf("expected regexMatch(^a.*z$, abc) to fail NotMatchingRegex, got %v", err)
	}
	// match-anywhere semantics
	if !result.IsOk(Regex("b")("abc")) {
		t.Error("expected pattern \"b\" to match inside \"abc\", didn't")
	}
}

func TestRegexGuardBadPattern(t *testing.T) {
	g := Regex("([") // does not compile => matches nothing
	if result.IsOk(g("anything")) {
		t.Error("expected unparsable pattern to fail every input, didn't")
	}
	if _, err := result.Unpack(g("")); !errors.As(err, &NoRegexMatchError{}) {
		t.Errorf("expected NotMatchingRegex for bad pattern, got %v", err)
	}
}

func TestGuardChaining(t *testing.T) {
	percent := func(n int) result.Result[int] {
		return result.AndThen(Lte(100), Gte(1)(n))
	}
	if result.IsOk(percent(0)) {
		t.Error("expected percent(0) to fail, didn't")
	}
	if result.IsOk(percent(101)) {
		t.Error("expected percent(101) to fail, didn't")
	}
	if v, err := result.Unpack(percent(50)); err != nil || v != 50 {
		t.Errorf("expected percent(50) = Ok 50, got (%d, %v)", v, err)
	}
}
