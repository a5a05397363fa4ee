package trie

import (
	"github.com/npillmayer/refined/maybe"
)

// Trie is a persistent string-keyed map backed by a character trie. The
// zero value is an empty trie, ready to use.
type Trie[V any] struct {
	root *tnode[V]
	size int
}

// Entry is one (key, value) pair of a trie.
type Entry[V any] struct {
	Key   string
	Value V
}

// Empty creates an empty trie.
func Empty[V any]() Trie[V] {
	return Trie[V]{}
}

// Singleton creates a trie holding a single entry.
func Singleton[V any](key string, value V) Trie[V] {
	return Empty[V]().Insert(key, value)
}

// FromList left-folds Insert over entries: later entries win on key
// collision.
func FromList[V any](entries []Entry[V]) Trie[V] {
	t := Empty[V]()
	for _, e := range entries {
		t = t.Insert(e.Key, e.Value)
	}
	return t
}

// IsEmpty returns true iff the trie holds no entries.
func (t Trie[V]) IsEmpty() bool {
	return t.size == 0
}

// Size returns the number of entries.
func (t Trie[V]) Size() int {
	return t.size
}

// Get returns the value stored for key, if any. The empty string is a
// legal key.
func (t Trie[V]) Get(key string) maybe.Maybe[V] {
	if v := find(t.root, key); v != nil {
		return maybe.Just(*v)
	}
	return maybe.Nothing[V]()
}

// Member returns true iff an entry for key exists.
func (t Trie[V]) Member(key string) bool {
	return maybe.IsJust(t.Get(key))
}

// Insert returns a trie incarnation with an entry for key added. An already
// present entry for key is replaced.
func (t Trie[V]) Insert(key string, value V) Trie[V] {
	root, added := insert(t.root, key, value)
	tracer().Debugf("insert %q: added=%v", key, added)
	size := t.size
	if added {
		size++
	}
	return Trie[V]{root: root, size: size}
}

// Remove returns a trie incarnation without an entry for key. It is a
// no-op if no such entry exists.
func (t Trie[V]) Remove(key string) Trie[V] {
	root, removed := remove(t.root, key)
	if !removed {
		return t
	}
	tracer().Debugf("removed %q", key)
	return Trie[V]{root: root, size: t.size - 1}
}

// Update looks up the current value for key (or Nothing), applies f, and
// either stores f's Just result under key or removes the entry on Nothing.
func (t Trie[V]) Update(key string, f func(maybe.Maybe[V]) maybe.Maybe[V]) Trie[V] {
	if value, ok := maybe.Unwrap(f(t.Get(key))); ok {
		return t.Insert(key, value)
	}
	return t.Remove(key)
}
