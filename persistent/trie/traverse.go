package trie

// --- Listing ---------------------------------------------------------------

// ToList returns all entries in ascending lexicographic key order.
func (t Trie[V]) ToList() []Entry[V] {
	entries := make([]Entry[V], 0, t.size)
	t.root.each(nil, func(key string, value V) {
		entries = append(entries, Entry[V]{Key: key, Value: value})
	})
	return entries
}

// Keys returns all keys in ascending lexicographic order.
func (t Trie[V]) Keys() []string {
	keys := make([]string, 0, t.size)
	t.root.each(nil, func(key string, _ V) {
		keys = append(keys, key)
	})
	return keys
}

// Values returns all values, ordered by their entry's key.
func (t Trie[V]) Values() []V {
	values := make([]V, 0, t.size)
	t.root.each(nil, func(_ string, value V) {
		values = append(values, value)
	})
	return values
}

// --- Folding and mapping ---------------------------------------------------

// Foldl folds f over all entries in ascending key order.
func Foldl[V, R any](f func(string, V, R) R, zero R, t Trie[V]) R {
	acc := zero
	t.root.each(nil, func(key string, value V) {
		acc = f(key, value, acc)
	})
	return acc
}

// Foldr folds f over all entries in descending key order. Prefer Foldl
// where the direction does not matter; see eachReverse.
func Foldr[V, R any](f func(string, V, R) R, zero R, t Trie[V]) R {
	acc := zero
	t.root.eachReverse(nil, func(key string, value V) {
		acc = f(key, value, acc)
	})
	return acc
}

// Map transforms all stored values, preserving keys, ordering and trie
// shape.
func Map[V, W any](f func(string, V) W, t Trie[V]) Trie[W] {
	return Trie[W]{
		root: mapNode(f, nil, t.root),
		size: t.size,
	}
}

func mapNode[V, W any](f func(string, V) W, prefix []byte, node *tnode[V]) *tnode[W] {
	if node == nil {
		return nil
	}
	cow := &tnode[W]{}
	if node.value != nil {
		w := f(string(prefix), *node.value)
		cow.value = &w
	}
	if len(node.edges) > 0 {
		cow.edges = make([]edge[W], len(node.edges))
		for i, e := range node.edges {
			cow.edges[i] = edge[W]{
				label: e.label,
				node:  mapNode(f, append(prefix, e.label), e.node),
			}
		}
	}
	return cow
}

// --- Filtering -------------------------------------------------------------

// Filter keeps the entries satisfying pred, order preserved.
func (t Trie[V]) Filter(pred func(string, V) bool) Trie[V] {
	kept := Empty[V]()
	t.root.each(nil, func(key string, value V) {
		if pred(key, value) {
			kept = kept.Insert(key, value)
		}
	})
	return kept
}

// Partition splits the trie into the entries satisfying pred and those
// which don't, both preserving order.
func (t Trie[V]) Partition(pred func(string, V) bool) (Trie[V], Trie[V]) {
	matching, rest := Empty[V](), Empty[V]()
	t.root.each(nil, func(key string, value V) {
		if pred(key, value) {
			matching = matching.Insert(key, value)
		} else {
			rest = rest.Insert(key, value)
		}
	})
	return matching, rest
}

// --- Combining -------------------------------------------------------------

// Union combines two tries, preferring a's value on key collision.
func (a Trie[V]) Union(b Trie[V]) Trie[V] {
	return Merge(
		func(k string, v V, acc Trie[V]) Trie[V] { return acc.Insert(k, v) },
		func(k string, vA V, _ V, acc Trie[V]) Trie[V] { return acc.Insert(k, vA) },
		func(k string, v V, acc Trie[V]) Trie[V] { return acc.Insert(k, v) },
		a, b, Empty[V](),
	)
}

// Intersect keeps a's entries whose key is also present in b.
func (a Trie[V]) Intersect(b Trie[V]) Trie[V] {
	return Merge(
		func(_ string, _ V, acc Trie[V]) Trie[V] { return acc },
		func(k string, vA V, _ V, acc Trie[V]) Trie[V] { return acc.Insert(k, vA) },
		func(_ string, _ V, acc Trie[V]) Trie[V] { return acc },
		a, b, Empty[V](),
	)
}

// Diff keeps a's entries whose key is absent from b.
func (a Trie[V]) Diff(b Trie[V]) Trie[V] {
	return Merge(
		func(k string, v V, acc Trie[V]) Trie[V] { return acc.Insert(k, v) },
		func(_ string, _ V, _ V, acc Trie[V]) Trie[V] { return acc },
		func(_ string, _ V, acc Trie[V]) Trie[V] { return acc },
		a, b, Empty[V](),
	)
}

// Merge is the general three-way traversal over the union of the keys of a
// and b, in a single ascending pass: onlyLeft for keys present only in a,
// both for keys present in both, onlyRight for keys present only in b.
// Union, Intersect and Diff are derived from it.
func Merge[V, W, R any](
	onlyLeft func(string, V, R) R,
	both func(string, V, W, R) R,
	onlyRight func(string, W, R) R,
	a Trie[V], b Trie[W], zero R,
) R {
	la, lb := a.ToList(), b.ToList()
	acc := zero
	i, j := 0, 0
	for i < len(la) && j < len(lb) {
		switch {
		case la[i].Key < lb[j].Key:
			acc = onlyLeft(la[i].Key, la[i].Value, acc)
			i++
		case la[i].Key > lb[j].Key:
			acc = onlyRight(lb[j].Key, lb[j].Value, acc)
			j++
		default:
			acc = both(la[i].Key, la[i].Value, lb[j].Value, acc)
			i++
			j++
		}
	}
	for ; i < len(la); i++ {
		acc = onlyLeft(la[i].Key, la[i].Value, acc)
	}
	for ; j < len(lb); j++ {
		acc = onlyRight(lb[j].Key, lb[j].Value, acc)
	}
	return acc
}
