package maybe_test

import (
	"testing"

	. "github.com/npillmayer/refined/maybe"
)

func TestMaybeMatch(t *testing.T) {
	x := Just(7)
	y := Nothing[int]()

	var v int
	switch m := x.Match(); m {
	case m.Just(&v):
		t.Logf("Just(%d)", v)
	case m.Nothing():
		t.Logf("Nothing")
	}
	if v != 7 {
		t.Errorf("expected v to be 7, is %#v", v)
	}

	var w int
	switch m := y.Match(); m {
	case m.Just(&w):
		t.Logf("Just(%d)", w)
	case m.Nothing():
		t.Logf("Nothing")
	}
	if w != 0 {
		t.Errorf("expected w to be 0, is %#v", w)
	}
}

func TestMaybeMatchSliceValue(t *testing.T) {
	x := Just([]string{"a", "b"})
	var v []string
	switch m := x.Match(); m {
	case m.Just(&v):
		t.Logf("Just(%v)", v)
	case m.Nothing():
		t.Logf("Nothing")
	}
	if len(v) != 2 || v[1] != "b" {
		t.Errorf("expected v to be [a b], is %v", v)
	}
	if _, ok := Unwrap(Nothing[[]string]()); ok {
		t.Error("expected Unwrap(Nothing) over a slice to be false, isn't")
	}
}

func TestMaybeWithDefault(t *testing.T) {
	if xx := Just(7).WithDefault(100); xx != 7 {
		t.Logf("x = %d", xx)
		t.Error("expected Just(7) to have value 7, hasn't")
	}
	if yy := Nothing[int]().WithDefault(100); yy != 100 {
		t.Logf("y = %d", yy)
		t.Error("expected Nothing to default to 100, doesn't")
	}
}

func TestMaybeUnwrap(t *testing.T) {
	if v, ok := Unwrap(Just("hello")); !ok || v != "hello" {
		t.Errorf("expected Unwrap(Just hello) = (hello, true), is (%q, %v)", v, ok)
	}
	if v, ok := Unwrap(Nothing[string]()); ok || v != "" {
		t.Errorf("expected Unwrap(Nothing) = (\"\", false), is (%q, %v)", v, ok)
	}
}

func TestMaybeMap(t *testing.T) {
	double := func(n int) int { return n * 2 }
	if v, _ := Unwrap(Just(7).Map(double)); v != 14 {
		t.Logf("x * 2 = %d", v)
		t.Error("expected Just(7).Map(…) to return 14, didn't")
	}
	if IsJust(Nothing[int]().Map(double)) {
		t.Error("expected Nothing.Map(…) to stay Nothing, didn't")
	}
	render := func(n int) string { return string(rune('a' + n)) }
	if v, _ := Unwrap(Map(render, Just(1))); v != "b" {
		t.Logf("rendered = %q", v)
		t.Error("expected Map(…, Just 1) to return \"b\", didn't")
	}
}

func TestMaybeAndThen(t *testing.T) {
	gt0 := func(n int) Maybe[bool] {
		if n > 0 {
			return Just(true)
		}
		return Nothing[bool]()
	}
	if !IsJust(AndThen(gt0, Just(7))) {
		t.Error("expected Just(7) |> andThen(gt0) to be Just, isn't")
	}
	if IsJust(AndThen(gt0, Just(-7))) {
		t.Error("expected Just(-7) |> andThen(gt0) to be Nothing, isn't")
	}
}

func TestMaybeFilter(t *testing.T) {
	even := func(n int) bool { return n%2 == 0 }
	if !IsJust(Filter(even, Just(4))) {
		t.Error("expected Filter(even, Just 4) to be Just, isn't")
	}
	if IsJust(Filter(even, Just(3))) {
		t.Error("expected Filter(even, Just 3) to be Nothing, isn't")
	}
}
