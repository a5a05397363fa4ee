package dict

import (
	"cmp"
)

// --- Listing ---------------------------------------------------------------

// ToList returns all entries in strictly increasing derived-key order.
func (m Dict[K, C, V]) ToList() []Entry[K, V] {
	entries := make([]Entry[K, V], 0, m.size)
	m.root.each(func(it xitem[K, C, V]) {
		entries = append(entries, Entry[K, V]{Key: it.key, Value: it.value})
	})
	return entries
}

// Keys returns all keys in strictly increasing derived-key order.
func (m Dict[K, C, V]) Keys() []K {
	keys := make([]K, 0, m.size)
	m.root.each(func(it xitem[K, C, V]) {
		keys = append(keys, it.key)
	})
	return keys
}

// Values returns all values, ordered by their entry's derived key.
func (m Dict[K, C, V]) Values() []V {
	values := make([]V, 0, m.size)
	m.root.each(func(it xitem[K, C, V]) {
		values = append(values, it.value)
	})
	return values
}

// items returns all node items in ascending derived-key order, for the
// merge-walk helpers below.
func (m Dict[K, C, V]) items() []xitem[K, C, V] {
	items := make([]xitem[K, C, V], 0, m.size)
	m.root.each(func(it xitem[K, C, V]) {
		items = append(items, it)
	})
	return items
}

// each walks the subtree in ascending derived-key order.
func (node *xnode[K, C, V]) each(f func(xitem[K, C, V])) {
	if node == nil {
		return
	}
	for i, item := range node.items {
		if !node.isLeaf() {
			node.children[i].each(f)
		}
		f(item)
	}
	if !node.isLeaf() {
		node.children[len(node.children)-1].each(f)
	}
}

// eachReverse walks the subtree in descending derived-key order. The tree
// shape favors ascending walks; the descending direction keeps more pending
// subtree state around and is the costlier of the two.
func (node *xnode[K, C, V]) eachReverse(f func(xitem[K, C, V])) {
	if node == nil {
		return
	}
	if !node.isLeaf() {
		node.children[len(node.children)-1].eachReverse(f)
	}
	for i := len(node.items) - 1; i >= 0; i-- {
		f(node.items[i])
		if !node.isLeaf() {
			node.children[i].eachReverse(f)
		}
	}
}

// --- Folding and mapping ---------------------------------------------------

// Foldl folds f over all entries in ascending derived-key order.
func Foldl[K any, C cmp.Ordered, V, R any](f func(K, V, R) R, zero R, m Dict[K, C, V]) R {
	acc := zero
	m.root.each(func(it xitem[K, C, V]) {
		acc = f(it.key, it.value, acc)
	})
	return acc
}

// Foldr folds f over all entries in descending derived-key order. Prefer
// Foldl where the direction does not matter; see eachReverse.
func Foldr[K any, C cmp.Ordered, V, R any](f func(K, V, R) R, zero R, m Dict[K, C, V]) R {
	acc := zero
	m.root.eachReverse(func(it xitem[K, C, V]) {
		acc = f(it.key, it.value, acc)
	})
	return acc
}

// Map transforms all stored values, preserving keys, ordering and tree
// shape. f receives the original key, not the derived one.
func Map[K any, C cmp.Ordered, V, W any](f func(K, V) W, m Dict[K, C, V]) Dict[K, C, W] {
	return Dict[K, C, W]{
		props: m.props,
		toKey: m.toKey,
		root:  mapNode(f, m.root),
		depth: m.depth,
		size:  m.size,
	}
}

func mapNode[K any, C cmp.Ordered, V, W any](f func(K, V) W, node *xnode[K, C, V]) *xnode[K, C, W] {
	if node == nil {
		return nil
	}
	cow := &xnode[K, C, W]{}
	cow.items = make([]xitem[K, C, W], len(node.items))
	for i, item := range node.items {
		cow.items[i] = xitem[K, C, W]{ckey: item.ckey, key: item.key, value: f(item.key, item.value)}
	}
	if !node.isLeaf() {
		cow.children = make([]*xnode[K, C, W], len(node.children))
		for i, child := range node.children {
			cow.children[i] = mapNode(f, child)
		}
	}
	return cow
}

// --- Filtering -------------------------------------------------------------

// Filter keeps the entries satisfying pred, order preserved.
func (m Dict[K, C, V]) Filter(pred func(K, V) bool) Dict[K, C, V] {
	kept := m.clear()
	m.root.each(func(it xitem[K, C, V]) {
		if pred(it.key, it.value) {
			kept = kept.Insert(it.key, it.value)
		}
	})
	return kept
}

// Partition splits the dict into the entries satisfying pred and those which
// don't, both preserving order.
func (m Dict[K, C, V]) Partition(pred func(K, V) bool) (Dict[K, C, V], Dict[K, C, V]) {
	matching, rest := m.clear(), m.clear()
	m.root.each(func(it xitem[K, C, V]) {
		if pred(it.key, it.value) {
			matching = matching.Insert(it.key, it.value)
		} else {
			rest = rest.Insert(it.key, it.value)
		}
	})
	return matching, rest
}

// --- Combining -------------------------------------------------------------

// Union combines two dicts, preferring a's pair on derived-key collision.
// The result adopts a's key projection.
func (a Dict[K, C, V]) Union(b Dict[K, C, V]) Dict[K, C, V] {
	return Merge(
		func(k K, v V, acc Dict[K, C, V]) Dict[K, C, V] { return acc.Insert(k, v) },
		func(k K, vA V, _ V, acc Dict[K, C, V]) Dict[K, C, V] { return acc.Insert(k, vA) },
		func(k K, v V, acc Dict[K, C, V]) Dict[K, C, V] { return acc.Insert(k, v) },
		a, b, a.clear(),
	)
}

// Intersect keeps a's entries whose derived key is also present in b.
func (a Dict[K, C, V]) Intersect(b Dict[K, C, V]) Dict[K, C, V] {
	return Merge(
		func(_ K, _ V, acc Dict[K, C, V]) Dict[K, C, V] { return acc },
		func(k K, vA V, _ V, acc Dict[K, C, V]) Dict[K, C, V] { return acc.Insert(k, vA) },
		func(_ K, _ V, acc Dict[K, C, V]) Dict[K, C, V] { return acc },
		a, b, a.clear(),
	)
}

// Diff keeps a's entries whose derived key is absent from b.
func (a Dict[K, C, V]) Diff(b Dict[K, C, V]) Dict[K, C, V] {
	return Merge(
		func(k K, v V, acc Dict[K, C, V]) Dict[K, C, V] { return acc.Insert(k, v) },
		func(_ K, _ V, _ V, acc Dict[K, C, V]) Dict[K, C, V] { return acc },
		func(_ K, _ V, acc Dict[K, C, V]) Dict[K, C, V] { return acc },
		a, b, a.clear(),
	)
}

// Merge is the general three-way traversal over the union of the derived
// keys of a and b, in a single ascending pass: onlyLeft for keys present
// only in a, both for keys present in both, onlyRight for keys present only
// in b. Union, Intersect and Diff are derived from it.
func Merge[K any, C cmp.Ordered, V, W, R any](
	onlyLeft func(K, V, R) R,
	both func(K, V, W, R) R,
	onlyRight func(K, W, R) R,
	a Dict[K, C, V], b Dict[K, C, W], zero R,
) R {
	la, lb := a.items(), b.items()
	acc := zero
	i, j := 0, 0
	for i < len(la) && j < len(lb) {
		switch {
		case la[i].ckey < lb[j].ckey:
			acc = onlyLeft(la[i].key, la[i].value, acc)
			i++
		case la[i].ckey > lb[j].ckey:
			acc = onlyRight(lb[j].key, lb[j].value, acc)
			j++
		default:
			acc = both(la[i].key, la[i].value, lb[j].value, acc)
			i++
			j++
		}
	}
	for ; i < len(la); i++ {
		acc = onlyLeft(la[i].key, la[i].value, acc)
	}
	for ; j < len(lb); j++ {
		acc = onlyRight(lb[j].key, lb[j].value, acc)
	}
	return acc
}
