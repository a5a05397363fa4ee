/*
Package trie implements a persistent (immutable) map over raw string keys,
physically organized as a trie over the key's characters rather than as a
comparison-based tree. The external contract matches package dict with the
derived key fixed to the string itself: at most one entry per key, and
listing operations yield entries in ascending lexicographic (byte) order,
which the depth-first, label-ascending traversal produces naturally.

Every mutating-looking operation returns a new trie incarnation and leaves
the receiver untouched; incarnations share structure.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package trie

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'refined.trie'.
func tracer() tracing.Trace {
	return tracing.Select("refined.trie")
}
