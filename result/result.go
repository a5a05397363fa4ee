package result

/*
{-| A `Result` is the result of a computation that may fail. Guard functions
and decoders in this module all return `Result`s; there is no silent
coercion and no default-value fallback anywhere.

# Type and Constructors
@docs Result

# Mapping
@docs map, map2

# Chaining
@docs andThen

# Handling Errors
@docs withDefault, toMaybe, fromMaybe, mapError
-}
*/

import (
	"github.com/npillmayer/refined/maybe"
)

type Result[T any] interface {
	Match() Matcher[T]
}

type result[T any] struct {
	value T
	err   error
}

func Ok[T any](x T) Result[T] {
	return result[T]{value: x}
}

func Err[T any](err error) Result[T] {
	return result[T]{err: err}
}

func (r result[T]) Match() Matcher[T] {
	return matcher[T]{r: &r}
}

// Unpack is an escape hatch into Go's (value, error) idiom.
func Unpack[T any](r Result[T]) (T, error) {
	var v T
	var err error
	switch m := r.Match(); m {
	case m.Ok(&v):
	case m.Err(&err):
	}
	return v, err
}

// IsOk returns true iff r carries a value.
func IsOk[T any](r Result[T]) bool {
	_, err := Unpack(r)
	return err == nil
}

func Map[T, S any](f func(T) S, r Result[T]) Result[S] {
	v, err := Unpack(r)
	if err != nil {
		return Err[S](err)
	}
	return Ok(f(v))
}

func Map2[A, B, S any](f func(A, B) S, ra Result[A], rb Result[B]) Result[S] {
	a, err := Unpack(ra)
	if err != nil {
		return Err[S](err)
	}
	b, err := Unpack(rb)
	if err != nil {
		return Err[S](err)
	}
	return Ok(f(a, b))
}

func AndThen[T, S any](f func(T) Result[S], r Result[T]) Result[S] {
	v, err := Unpack(r)
	if err != nil {
		return Err[S](err)
	}
	return f(v)
}

func MapError[T any](f func(error) error, r Result[T]) Result[T] {
	v, err := Unpack(r)
	if err != nil {
		return Err[T](f(err))
	}
	return Ok(v)
}

func WithDefault[T any](def T, r Result[T]) T {
	if v, err := Unpack(r); err == nil {
		return v
	}
	return def
}

func ToMaybe[T any](r Result[T]) maybe.Maybe[T] {
	if v, err := Unpack(r); err == nil {
		return maybe.Just(v)
	}
	return maybe.Nothing[T]()
}

func FromMaybe[T any](err error, m maybe.Maybe[T]) Result[T] {
	if v, ok := maybe.Unwrap(m); ok {
		return Ok(v)
	}
	return Err[T](err)
}

// --- Matching --------------------------------------------------------------

type Matcher[T any] interface {
	Ok(*T) Matcher[T]
	Err(*error) Matcher[T]
}

// matcher holds its result by pointer: match branches compare Matcher
// interface values, and a pointer stays comparable for every T.
type matcher[T any] struct {
	r *result[T]
}

func (rm matcher[T]) Ok(v *T) Matcher[T] {
	if rm.r.err == nil {
		*v = rm.r.value
		return rm
	}
	return nil
}

func (rm matcher[T]) Err(err *error) Matcher[T] {
	if rm.r.err != nil {
		*err = rm.r.err
		return rm
	}
	return nil
}
