/*
Package guard is a library of reusable guard functions for refined types.
A guard takes a base value and either passes it through unchanged or fails
with a descriptive error value. Guards do not compose on their own; chain
them at the call site with result.AndThen:

    percent := func(n int) result.Result[int] {
        return result.AndThen(guard.Lte(100), guard.Gte(1)(n))
    }

Range guards work for any ordered base type. Gt and Lt are strict, Gte and
Lte include the bound itself.
*/
package guard

import (
	"cmp"
	"fmt"
	"regexp"

	"github.com/npillmayer/refined/result"
)

// --- Range guards ----------------------------------------------------------

// Gt passes values strictly greater than bound.
func Gt[N cmp.Ordered](bound N) func(N) result.Result[N] {
	return func(v N) result.Result[N] {
		if v <= bound {
			return result.Err[N](BelowRangeError{Bound: bound, Value: v})
		}
		return result.Ok(v)
	}
}

// Gte passes values greater than or equal to bound.
func Gte[N cmp.Ordered](bound N) func(N) result.Result[N] {
	return func(v N) result.Result[N] {
		if v < bound {
			return result.Err[N](BelowRangeError{Bound: bound, Value: v})
		}
		return result.Ok(v)
	}
}

// Lt passes values strictly less than bound.
func Lt[N cmp.Ordered](bound N) func(N) result.Result[N] {
	return func(v N) result.Result[N] {
		if v >= bound {
			return result.Err[N](AboveRangeError{Bound: bound, Value: v})
		}
		return result.Ok(v)
	}
}

// Lte passes values less than or equal to bound.
func Lte[N cmp.Ordered](bound N) func(N) result.Result[N] {
	return func(v N) result.Result[N] {
		if v > bound {
			return result.Err[N](AboveRangeError{Bound: bound, Value: v})
		}
		return result.Ok(v)
	}
}

// --- String guards ---------------------------------------------------------

// MinLength passes strings of at least bound bytes.
func MinLength(bound int) func(string) result.Result[string] {
	return func(s string) result.Result[string] {
		if len(s) < bound {
			return result.Err[string](TooShortError{MinLength: bound, Length: len(s)})
		}
		return result.Ok(s)
	}
}

// MaxLength passes strings of at most bound bytes.
func MaxLength(bound int) func(string) result.Result[string] {
	return func(s string) result.Result[string] {
		if len(s) > bound {
			return result.Err[string](TooLongError{MaxLength: bound, Length: len(s)})
		}
		return result.Ok(s)
	}
}

// Regex passes strings which the pattern matches anywhere. An unparsable
// pattern compiles to a guard that matches nothing, i.e. one that always
// fails; it never panics.
func Regex(pattern string) func(string) result.Result[string] {
	re, err := regexp.Compile(pattern)
	return func(s string) result.Result[string] {
		if err != nil || !re.MatchString(s) {
			return result.Err[string](NoRegexMatchError{Pattern: pattern})
		}
		return result.Ok(s)
	}
}

// --- Error values ----------------------------------------------------------

// BelowRangeError reports a value failing a lower bound.
type BelowRangeError struct {
	Bound any
	Value any
}

func (e BelowRangeError) Error() string {
	return fmt.Sprintf("value %v is below the bound %v", e.Value, e.Bound)
}

// AboveRangeError reports a value failing an upper bound.
type AboveRangeError struct {
	Bound any
	Value any
}

func (e AboveRangeError) Error() string {
	return fmt.Sprintf("value %v is above the bound %v", e.Value, e.Bound)
}

// TooShortError reports a string shorter than a minimum length.
type TooShortError struct {
	MinLength int
	Length    int
}

func (e TooShortError) Error() string {
	return fmt.Sprintf("string of length %d is shorter than %d", e.Length, e.MinLength)
}

// TooLongError reports a string longer than a maximum length.
type TooLongError struct {
	MaxLength int
	Length    int
}

func (e TooLongError) Error() string {
	return fmt.Sprintf("string of length %d is longer than %d", e.Length, e.MaxLength)
}

// NoRegexMatchError reports a string not matched by a pattern. It is also
// the failure for patterns which do not compile.
type NoRegexMatchError struct {
	Pattern string
}

func (e NoRegexMatchError) Error() string {
	return fmt.Sprintf("string does not match pattern %q", e.Pattern)
}
