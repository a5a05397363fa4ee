package codec

import (
	"github.com/npillmayer/refined/result"
)

// Decoder turns a document fragment into a T, or fails with a DecodeError.
// Decoders compose with Map, AndThen, Field and List.
type Decoder[T any] func(Value) result.Result[T]

// DecodeBytes parses a JSON document and runs d on it.
func DecodeBytes[T any](d Decoder[T], data []byte) result.Result[T] {
	return result.AndThen(func(v Value) result.Result[T] { return d(v) }, Parse(data))
}

// DecodeString parses a JSON document given as a string and runs d on it.
func DecodeString[T any](d Decoder[T], doc string) result.Result[T] {
	return DecodeBytes(d, []byte(doc))
}

// DecodeYAML parses a YAML document and runs d on it.
func DecodeYAML[T any](d Decoder[T], data []byte) result.Result[T] {
	return result.AndThen(func(v Value) result.Result[T] { return d(v) }, ParseYAML(data))
}

// --- Primitives ------------------------------------------------------------

func String() Decoder[string] {
	return func(v Value) result.Result[string] {
		if v.kind != KindString {
			return result.Err[string](Errorf("expected a string, got %s", v.kind))
		}
		return result.Ok(v.str)
	}
}

func Int() Decoder[int] {
	return func(v Value) result.Result[int] {
		if v.kind != KindNumber {
			return result.Err[int](Errorf("expected an integer, got %s", v.kind))
		}
		n, err := v.num.Int64()
		if err != nil {
			return result.Err[int](Errorf("expected an integer, got number %s", v.num))
		}
		return result.Ok(int(n))
	}
}

func Float() Decoder[float64] {
	return func(v Value) result.Result[float64] {
		if v.kind != KindNumber {
			return result.Err[float64](Errorf("expected a number, got %s", v.kind))
		}
		f, err := v.num.Float64()
		if err != nil {
			return result.Err[float64](Errorf("malformed number %s", v.num))
		}
		return result.Ok(f)
	}
}

func Bool() Decoder[bool] {
	return func(v Value) result.Result[bool] {
		if v.kind != KindBool {
			return result.Err[bool](Errorf("expected a bool, got %s", v.kind))
		}
		return result.Ok(v.flag)
	}
}

// --- Combinators -----------------------------------------------------------

// Succeed ignores its input and decodes to x.
func Succeed[T any](x T) Decoder[T] {
	return func(Value) result.Result[T] {
		return result.Ok(x)
	}
}

// Fail ignores its input and fails with msg.
func Fail[T any](msg string) Decoder[T] {
	return func(Value) result.Result[T] {
		return result.Err[T](DecodeError{Msg: msg})
	}
}

func Map[A, B any](f func(A) B, d Decoder[A]) Decoder[B] {
	return func(v Value) result.Result[B] {
		return result.Map(f, d(v))
	}
}

func AndThen[A, B any](f func(A) Decoder[B], d Decoder[A]) Decoder[B] {
	return func(v Value) result.Result[B] {
		return result.AndThen(func(a A) result.Result[B] { return f(a)(v) }, d(v))
	}
}

// Field decodes the member `name` of an object with d. A missing member or a
// non-object input is a decode failure.
func Field[T any](name string, d Decoder[T]) Decoder[T] {
	return func(v Value) result.Result[T] {
		if v.kind != KindObject {
			return result.Err[T](Errorf("expected an object with field %q, got %s", name, v.kind))
		}
		for _, f := range v.fields {
			if f.Name == name {
				return d(f.Value)
			}
		}
		return result.Err[T](Errorf("object has no field %q", name))
	}
}

// List decodes every element of an array with d.
func List[T any](d Decoder[T]) Decoder[[]T] {
	return func(v Value) result.Result[[]T] {
		if v.kind != KindArray {
			return result.Err[[]T](Errorf("expected an array, got %s", v.kind))
		}
		xs := make([]T, 0, len(v.items))
		for i, item := range v.items {
			x, err := result.Unpack(d(item))
			if err != nil {
				return result.Err[[]T](Errorf("element %d: %v", i, err))
			}
			xs = append(xs, x)
		}
		return result.Ok(xs)
	}
}
