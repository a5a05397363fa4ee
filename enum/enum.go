/*
Package enum pairs a closed list of values with a canonical string
rendering. Lookups scan the value list in definition order, so rendering is
assumed to be injective: no two values of an enum may render to the same
string. Constructing an enum violating this is a programming error; Find
will then deterministically answer with the first-defined value.
*/
package enum

import (
	"github.com/npillmayer/refined/codec"
	"github.com/npillmayer/refined/maybe"
	"github.com/npillmayer/refined/result"
)

// Enum is a finite, ordered set of values of A together with a canonical
// string rendering. Build one with Make; enums are never mutated afterwards.
type Enum[A any] struct {
	values []A
	render func(A) string
}

// Make builds an enum from a literal value list and a rendering function.
// No validation is performed; the caller vouches for distinctness of the
// rendered strings.
func Make[A any](values []A, toString func(A) string) Enum[A] {
	vs := make([]A, len(values))
	copy(vs, values)
	return Enum[A]{values: vs, render: toString}
}

// Values returns the enum's values in definition order.
func (e Enum[A]) Values() []A {
	vs := make([]A, len(e.values))
	copy(vs, e.values)
	return vs
}

// ToString renders a value to its canonical string.
func (e Enum[A]) ToString(a A) string {
	return e.render(a)
}

// Find resolves a string to the first value rendering to it.
func (e Enum[A]) Find(s string) maybe.Maybe[A] {
	for _, v := range e.values {
		if e.render(v) == s {
			return maybe.Just(v)
		}
	}
	return maybe.Nothing[A]()
}

// Decoder decodes a serialized string through Find. The failure message
// carries the offending raw string.
func (e Enum[A]) Decoder() codec.Decoder[A] {
	return codec.AndThen(func(s string) codec.Decoder[A] {
		if v, ok := maybe.Unwrap(e.Find(s)); ok {
			return codec.Succeed(v)
		}
		return codec.Fail[A]("\"" + s + "\" does not match any enum value")
	}, codec.String())
}

// Encode renders a value as a serialized string fragment.
func (e Enum[A]) Encode(a A) codec.Value {
	return codec.StringValue(e.render(a))
}

// KeyString renders a value for use as a map key.
func (e Enum[A]) KeyString(a A) string {
	return e.render(a)
}

// FromKeyString resolves a map key back to a value.
func (e Enum[A]) FromKeyString(s string) result.Result[A] {
	return result.FromMaybe[A](
		codec.Errorf("%q does not match any enum value", s),
		e.Find(s),
	)
}
