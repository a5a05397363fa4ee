/*
Package dict implements a persistent (immutable) ordered map over derived
keys. Uniqueness and traversal order of entries are determined by a
caller-supplied projection toKey(K) → C rather than by K's own identity:
at most one entry exists per distinct derived key, and listing operations
yield entries in strictly increasing derived-key order.

The backing structure is a persistent in-memory B-tree. A good introduction
to B-trees and their algorithms may be found at
https://algorithmtutor.com/Data-Structures/Tree/B-Trees/.
*/
package dict

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'refined.dict'.
func tracer() tracing.Trace {
	return tracing.Select("refined.dict")
}
