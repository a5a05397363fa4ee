/*
Package refined builds value types whose every live instance already passed
validation. A refined type A wraps a base type I; the only way to obtain an
A is to run the bundle's guard function over an I. Together with package
enum and the dict packages under persistent/, this gives validated domain
types which can serve as ordered map keys.

A bundle is defined once and holds five functions: the guard, a decoder and
an encoder for the base type, an error rendering, and the unboxing back to
the base type:

    percent := refined.Define(
        func(n int) result.Result[Percent] {
            return result.Map(wrap, result.AndThen(guard.Lte(100), guard.Gte(1)(n)))
        },
        codec.Int(), codec.IntValue,
        nil, // default error rendering
        Percent.Unbox,
    )

To uphold the "only valid instances exist" guarantee, keep the refined
type's representation unexported in its defining package and expose no
constructor besides the guarded one.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package refined
