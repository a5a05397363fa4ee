package refined

import (
	"github.com/npillmayer/refined/codec"
	"github.com/npillmayer/refined/result"
)

// Refined bundles everything needed to construct, serialize and unbox a
// validated type A over a base type I. Bundles are defined once and never
// mutated; the instances of A they produce are immutable as well.
type Refined[I, A any] struct {
	guard   func(I) result.Result[A]
	decBase codec.Decoder[I]
	encBase func(I) codec.Value
	errStr  func(error) string
	unbox   func(A) I
}

// Define builds a refined-type bundle.
//
// guard is the sole gate for producing an A; it may normalize the base
// value on the way in. decodeBase and encodeBase handle the base type's
// serialized form. errString renders guard failures for humans; passing nil
// selects err.Error(). unbox extracts the validated base value from an A.
func Define[I, A any](
	guard func(I) result.Result[A],
	decodeBase codec.Decoder[I],
	encodeBase func(I) codec.Value,
	errString func(error) string,
	unbox func(A) I,
) Refined[I, A] {
	if errString == nil {
		errString = func(err error) string { return err.Error() }
	}
	return Refined[I, A]{
		guard:   guard,
		decBase: decodeBase,
		encBase: encodeBase,
		errStr:  errString,
		unbox:   unbox,
	}
}

// Build applies the guard to a base value. This is the only construction
// path for A.
func (r Refined[I, A]) Build(i I) result.Result[A] {
	return r.guard(i)
}

// Unbox extracts the base value from a validated instance. It is total and
// need not be a bit-for-bit inverse of Build, since the guard may have
// normalized the input.
func (r Refined[I, A]) Unbox(a A) I {
	return r.unbox(a)
}

// ErrString renders a guard failure.
func (r Refined[I, A]) ErrString(err error) string {
	return r.errStr(err)
}

// Decoder decodes the base type and runs the guard over it. Guard failures
// surface as decode errors rendered through ErrString.
func (r Refined[I, A]) Decoder() codec.Decoder[A] {
	return func(v codec.Value) result.Result[A] {
		return result.AndThen(func(i I) result.Result[A] {
			return result.MapError(func(err error) error {
				return codec.DecodeError{Msg: r.errStr(err)}
			}, r.guard(i))
		}, r.decBase(v))
	}
}

// Encode serializes a validated instance through its base value.
func (r Refined[I, A]) Encode(a A) codec.Value {
	return r.encBase(r.unbox(a))
}

// KeyString renders a validated instance to a bare string suitable as a map
// key: the serialized form with one layer of string quoting stripped, or
// the serialized form verbatim if it is not a quoted string. An int-backed
// type thus keys as its plain decimal representation.
func (r Refined[I, A]) KeyString(a A) string {
	v := r.Encode(a)
	if v.Kind() == codec.KindString {
		return v.Str()
	}
	return v.JSON()
}

// FromKeyString parses a map key back into a validated instance. The key is
// first decoded as a serialized document; if that fails it is retried as a
// bare string scalar, which covers string-backed refined types.
func (r Refined[I, A]) FromKeyString(s string) result.Result[A] {
	if a, err := result.Unpack(codec.DecodeString(r.Decoder(), s)); err == nil {
		return result.Ok(a)
	}
	return r.Decoder()(codec.StringValue(s))
}
