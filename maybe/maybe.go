package maybe

/*
module Maybe exposing (Maybe(Just,Nothing), andThen, map, filter, withDefault)

{-| A `Maybe` models a value which may or may not be there. Lookups in the
dict packages of this module return `Maybe`s, and a dict update receives and
produces one.

# Definition
@docs Maybe

# Common Helpers
@docs map, filter, withDefault

# Chaining Maybes
@docs andThen

-}
*/

type Maybe[T any] interface {
	Match() Matcher[T]
	WithDefault(T) T
	Map(func(T) T) Maybe[T]
}

type maybe[T any] struct {
	value T
	tag   bool
}

func Just[T any](x T) Maybe[T] {
	return maybe[T]{value: x, tag: true}
}

func Nothing[T any]() Maybe[T] {
	return maybe[T]{tag: false}
}

func (m maybe[T]) Match() Matcher[T] {
	return matcher[T]{m: &m}
}

func (m maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

func (m maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

// Unwrap is an escape hatch into Go's comma-ok idiom. For a Just it returns
// the contained value and true, for a Nothing the zero value and false.
func Unwrap[T any](x Maybe[T]) (T, bool) {
	var v T
	switch m := x.Match(); m {
	case m.Just(&v):
		return v, true
	case m.Nothing():
	}
	return v, false
}

// IsJust returns true iff x carries a value.
func IsJust[T any](x Maybe[T]) bool {
	_, ok := Unwrap(x)
	return ok
}

func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	if v, ok := Unwrap(x); ok {
		return f(v)
	}
	return Nothing[S]()
}

func Map[T, S any](f func(T) S, x Maybe[T]) Maybe[S] {
	if v, ok := Unwrap(x); ok {
		return Just(f(v))
	}
	return Nothing[S]()
}

// Filter keeps a Just only if its value satisfies pred.
func Filter[T any](pred func(T) bool, x Maybe[T]) Maybe[T] {
	if v, ok := Unwrap(x); ok && pred(v) {
		return x
	}
	return Nothing[T]()
}

// --- Matching --------------------------------------------------------------

type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

// matcher holds its maybe by pointer: match branches compare Matcher
// interface values, and a pointer stays comparable for every T.
type matcher[T any] struct {
	m *maybe[T]
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.tag {
		*v = mm.m.value
		return mm
	}
	return nil
}

func (mm matcher[T]) Nothing() Matcher[T] {
	if !mm.m.tag {
		return mm
	}
	return nil
}
