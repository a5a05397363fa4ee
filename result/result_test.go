package result_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/npillmayer/refined/maybe"
	. "github.com/npillmayer/refined/result"
)

var errBoom = errors.New("boom")

func TestResultMatch(t *testing.T) {
	x := Ok(7)
	var v int
	var err error
	switch m := x.Match(); m {
	case m.Ok(&v):
		t.Logf("Ok(%d)", v)
	case m.Err(&err):
		t.Logf("Err(%v)", err)
	}
	if v != 7 {
		t.Errorf("expected v to be 7, is %d", v)
	}

	y := Err[int](errBoom)
	v, err = 0, nil
	switch m := y.Match(); m {
	case m.Ok(&v):
		t.Logf("Ok(%d)", v)
	case m.Err(&err):
		t.Logf("Err(%v)", err)
	}
	if err != errBoom {
		t.Errorf("expected err to be boom, is %v", err)
	}
}

func TestResultMatchSliceValue(t *testing.T) {
	x := Ok([]int{1, 2, 3})
	var v []int
	var err error
	switch m := x.Match(); m {
	case m.Ok(&v):
		t.Logf("Ok(%v)", v)
	case m.Err(&err):
		t.Logf("Err(%v)", err)
	}
	if len(v) != 3 || v[2] != 3 {
		t.Errorf("expected v to be [1 2 3], is %v", v)
	}
	if _, err := Unpack(Err[[]int](errBoom)); err != errBoom {
		t.Errorf("expected Unpack(Err boom) to surface boom, got %v", err)
	}
}

func TestResultUnpack(t *testing.T) {
	if v, err := Unpack(Ok("hello")); err != nil || v != "hello" {
		t.Errorf("expected Unpack(Ok hello) = (hello, nil), is (%q, %v)", v, err)
	}
	if _, err := Unpack(Err[string](errBoom)); err != errBoom {
		t.Errorf("expected Unpack(Err boom) to surface boom, got %v", err)
	}
}

func TestResultMap(t *testing.T) {
	r := Map(strconv.Itoa, Ok(7))
	if v, _ := Unpack(r); v != "7" {
		t.Errorf("expected map(itoa, Ok 7) = Ok \"7\", is %q", v)
	}
	r = Map(strconv.Itoa, Err[int](errBoom))
	if IsOk(r) {
		t.Error("expected map over Err to stay Err, didn't")
	}
}

func TestResultMap2(t *testing.T) {
	add := func(a, b int) int { return a + b }
	if v, _ := Unpack(Map2(add, Ok(3), Ok(4))); v != 7 {
		t.Errorf("expected map2(+, Ok 3, Ok 4) = Ok 7, is %d", v)
	}
	if IsOk(Map2(add, Ok(3), Err[int](errBoom))) {
		t.Error("expected map2 with an Err operand to be Err, isn't")
	}
}

func TestResultAndThen(t *testing.T) {
	atoi := func(s string) Result[int] {
		n, err := strconv.Atoi(s)
		if err != nil {
			return Err[int](err)
		}
		return Ok(n)
	}
	if v, _ := Unpack(AndThen(atoi, Ok("42"))); v != 42 {
		t.Errorf("expected Ok \"42\" |> andThen atoi = Ok 42, is %d", v)
	}
	if IsOk(AndThen(atoi, Ok("x"))) {
		t.Error("expected Ok \"x\" |> andThen atoi to be Err, isn't")
	}
}

func TestResultMapError(t *testing.T) {
	wrap := func(err error) error { return errors.New("wrapped: " + err.Error()) }
	_, err := Unpack(MapError(wrap, Err[int](errBoom)))
	if err == nil || err.Error() != "wrapped: boom" {
		t.Errorf("expected wrapped error, got %v", err)
	}
	if v, _ := Unpack(MapError(wrap, Ok(1))); v != 1 {
		t.Error("expected mapError to leave Ok alone, didn't")
	}
}

func TestResultWithDefault(t *testing.T) {
	if v := WithDefault(99, Ok(7)); v != 7 {
		t.Errorf("expected withDefault(99, Ok 7) = 7, is %d", v)
	}
	if v := WithDefault(99, Err[int](errBoom)); v != 99 {
		t.Errorf("expected withDefault(99, Err) = 99, is %d", v)
	}
}

func TestResultMaybeConversion(t *testing.T) {
	if !maybe.IsJust(ToMaybe(Ok(7))) {
		t.Error("expected toMaybe(Ok 7) to be Just, isn't")
	}
	if maybe.IsJust(ToMaybe(Err[int](errBoom))) {
		t.Error("expected toMaybe(Err) to be Nothing, isn't")
	}
	if v, _ := Unpack(FromMaybe(errBoom, maybe.Just(7))); v != 7 {
		t.Error("expected fromMaybe(Just 7) to be Ok 7, isn't")
	}
	if _, err := Unpack(FromMaybe(errBoom, maybe.Nothing[int]())); err != errBoom {
		t.Error("expected fromMaybe(Nothing) to carry the given error, doesn't")
	}
}
