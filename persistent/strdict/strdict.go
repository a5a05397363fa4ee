/*
Package strdict adapts the ordered map of package dict to keys carrying a
canonical string rendering, i.e. enumeration values and refined types. The
derived key is fixed to the key's canonical string, supplied by a KeyCodec.

On top of the map contract the package offers decoding and encoding of
string-keyed serialized objects, resolving each field name through the
KeyCodec.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package strdict

import (
	"cmp"

	"github.com/npillmayer/refined/codec"
	"github.com/npillmayer/refined/persistent/dict"
	"github.com/npillmayer/refined/result"
)

// KeyCodec renders map keys to their canonical string and resolves such
// strings back to keys. Enum and Refined both satisfy it.
type KeyCodec[K any] interface {
	KeyString(K) string
	FromKeyString(string) result.Result[K]
}

// Empty creates an empty dict keyed by kc's canonical string rendering.
func Empty[K, V any](kc KeyCodec[K], opts ...dict.Option) dict.Dict[K, string, V] {
	return dict.Empty[K, string, V](kc.KeyString, opts...)
}

// Singleton creates a dict holding a single entry.
func Singleton[K, V any](kc KeyCodec[K], key K, value V, opts ...dict.Option) dict.Dict[K, string, V] {
	return Empty[K, V](kc, opts...).Insert(key, value)
}

// FromList left-folds Insert over entries: later entries win on rendered-key
// collision.
func FromList[K, V any](kc KeyCodec[K], entries []dict.Entry[K, V], opts ...dict.Option) dict.Dict[K, string, V] {
	m := Empty[K, V](kc, opts...)
	for _, e := range entries {
		m = m.Insert(e.Key, e.Value)
	}
	return m
}

// Decoder decodes a serialized object into a dict, resolving each field
// name through kc and each field value through valueDecoder. The first field
// that fails to resolve fails the whole decode with a message naming the
// field; later failures go unreported.
func Decoder[K, V any](kc KeyCodec[K], valueDecoder codec.Decoder[V], opts ...dict.Option,
) codec.Decoder[dict.Dict[K, string, V]] {
	return func(v codec.Value) result.Result[dict.Dict[K, string, V]] {
		if v.Kind() != codec.KindObject {
			return result.Err[dict.Dict[K, string, V]](
				codec.Errorf("expected an object, have %s", v.Kind()))
		}
		m := Empty[K, V](kc, opts...)
		for _, field := range v.Fields() {
			key, err := result.Unpack(kc.FromKeyString(field.Name))
			if err != nil {
				return result.Err[dict.Dict[K, string, V]](
					codec.Errorf("cannot resolve object key %q: %s", field.Name, err))
			}
			value, err := result.Unpack(valueDecoder(field.Value))
			if err != nil {
				return result.Err[dict.Dict[K, string, V]](
					codec.Errorf("value for object key %q: %s", field.Name, err))
			}
			m = m.Insert(key, value)
		}
		return result.Ok(m)
	}
}

// Encode renders a dict into a serialized object, keyed by each entry's
// canonical string. Fields appear in map order.
func Encode[K, V any](kc KeyCodec[K], encodeValue func(V) codec.Value, m dict.Dict[K, string, V]) codec.Value {
	fields := make([]codec.Member, 0, m.Size())
	for _, e := range m.ToList() {
		fields = append(fields, codec.Member{
			Name:  kc.KeyString(e.Key),
			Value: encodeValue(e.Value),
		})
	}
	return codec.ObjectValue(fields...)
}

// Strings projects a dict down to a plain string-keyed one, discarding the
// wrapped key type in favor of its canonical string, transforming values
// with f. Entry order is unchanged.
func Strings[K, V, W any](kc KeyCodec[K], f func(V) W, m dict.Dict[K, string, V]) dict.Dict[string, string, W] {
	proj := dict.Empty[string, string, W](func(s string) string { return s })
	for _, e := range m.ToList() {
		proj = proj.Insert(kc.KeyString(e.Key), f(e.Value))
	}
	return proj
}

// Unboxed projects a dict down to one keyed by the base values underlying
// its refined keys, transforming values with f. Entries are reordered by
// the base type's own ordering.
func Unboxed[K any, I cmp.Ordered, V, W any](unbox func(K) I, f func(V) W, m dict.Dict[K, string, V]) dict.Dict[I, I, W] {
	proj := dict.Empty[I, I, W](func(i I) I { return i })
	for _, e := range m.ToList() {
		proj = proj.Insert(unbox(e.Key), f(e.Value))
	}
	return proj
}
