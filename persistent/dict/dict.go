package dict

import (
	"cmp"

	"github.com/npillmayer/refined/maybe"
)

const defaultLowWaterMark uint = 3 // 2^n - 1
// high water mark includes space for +1 child link and for a stopper
var defaultHighWaterMark uint = uint(ceiling(int(defaultLowWaterMark)*2)) - 2

// props carries the tree geometry. Kept separate from type-parameterized
// code so that options need no type arguments.
type props struct {
	lowWaterMark  uint
	highWaterMark uint
}

func (p props) init() props {
	if p.highWaterMark == 0 {
		p.lowWaterMark = defaultLowWaterMark
		p.highWaterMark = defaultHighWaterMark
	}
	return p
}

// Option is a type to help initializing dicts at creation time.
type Option struct {
	config func(props) props
}

// Degree is an option to set the minimum number of children a node of the
// backing tree owns. The lower bound for the degree is 3.
//
// Use it like this:
//
//	m := dict.Empty[string, string, int](key, dict.Degree(16))
func Degree(n int) Option {
	conf := func(p props) props {
		low := max(2, n-1)
		p.lowWaterMark = uint(low)
		p.highWaterMark = uint(ceiling(low*2)) - 2
		return p
	}
	return Option{config: conf}
}

// Dict is a persistent ordered map from K to V, ordered and deduplicated by
// the derived key toKey(K) → C. Every mutating-looking operation returns a
// new incarnation and leaves the receiver untouched; incarnations share
// structure.
//
// If two distinct keys derive the same C, the later insert silently replaces
// the earlier entry — key and value both; only the derived-key identity
// survives.
type Dict[K any, C cmp.Ordered, V any] struct {
	props
	toKey func(K) C
	root  *xnode[K, C, V]
	depth uint
	size  int
}

// Entry is one (key, value) pair of a dict.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// Empty creates an empty dict with the given derived-key projection.
func Empty[K any, C cmp.Ordered, V any](toKey func(K) C, opts ...Option) Dict[K, C, V] {
	m := Dict[K, C, V]{toKey: toKey}
	m.props = m.props.init()
	for _, option := range opts {
		m.props = option.config(m.props)
	}
	return m
}

// Singleton creates a dict holding a single entry.
func Singleton[K any, C cmp.Ordered, V any](toKey func(K) C, key K, value V, opts ...Option) Dict[K, C, V] {
	return Empty[K, C, V](toKey, opts...).Insert(key, value)
}

// FromList left-folds Insert over entries: later entries win on derived-key
// collision.
func FromList[K any, C cmp.Ordered, V any](toKey func(K) C, entries []Entry[K, V], opts ...Option) Dict[K, C, V] {
	m := Empty[K, C, V](toKey, opts...)
	for _, e := range entries {
		m = m.Insert(e.Key, e.Value)
	}
	return m
}

// IsEmpty returns true iff the dict holds no entries.
func (m Dict[K, C, V]) IsEmpty() bool {
	return m.size == 0
}

// Size returns the number of entries.
func (m Dict[K, C, V]) Size() int {
	return m.size
}

// Get returns the value stored for key's derived key, if any.
func (m Dict[K, C, V]) Get(key K) maybe.Maybe[V] {
	if m.root == nil {
		return maybe.Nothing[V]()
	}
	var path slotPath[K, C, V] = make([]slot[K, C, V], m.depth)
	found, path := m.findKeyAndPath(m.toKey(key), path)
	if !found {
		return maybe.Nothing[V]()
	}
	return maybe.Just(path.last().item().value)
}

// Member returns true iff an entry for key's derived key exists.
func (m Dict[K, C, V]) Member(key K) bool {
	return maybe.IsJust(m.Get(key))
}

// Insert returns a dict incarnation with an entry for key added. An already
// present entry with the same derived key is replaced, key and value both.
func (m Dict[K, C, V]) Insert(key K, value V) Dict[K, C, V] {
	m.props = m.props.init()
	assertThat(m.toKey != nil, "dict was not initialized with a key projection")
	ckey := m.toKey(key)
	item := xitem[K, C, V]{ckey: ckey, key: key, value: value}
	var path slotPath[K, C, V] = make([]slot[K, C, V], m.depth)
	var found bool
	if found, path = m.findKeyAndPath(ckey, path); found {
		return m.replacing(item, path)
	}
	tracer().Debugf("insert: slot path = %s", path)
	if m.root == nil { // virgin dict ⇒ insert first node and return
		root := xnode[K, C, V]{}.withInsertedItem(item, 0)
		return m.withRoot(&root, 1, 1)
	}
	leafSlot := path.last()
	assertThat(leafSlot.node.isLeaf(), "attempt to insert item at non-leaf")
	cow := leafSlot.node.withInsertedItem(item, leafSlot.index) // copy-on-write
	tracer().Debugf("insert: created copy of (leaf + key@%d) = %s", leafSlot.index, &cow)
	newRoot := path.dropLast().foldR(splitAndClone[K, C, V](m.highWaterMark),
		slot[K, C, V]{node: &cow, index: leafSlot.index},
	)
	depth := m.depth
	if newRoot.node.overfull(m.highWaterMark) {
		newRoot = xnode[K, C, V]{}.splitChild(newRoot)
		depth++
	}
	return m.withRoot(newRoot.node, depth, m.size+1)
}

// Remove returns a dict incarnation without an entry for key's derived key.
// It is a no-op if no such entry exists.
func (m Dict[K, C, V]) Remove(key K) Dict[K, C, V] {
	m.props = m.props.init()
	if m.root == nil {
		return m
	}
	var path slotPath[K, C, V] = make([]slot[K, C, V], m.depth)
	var found bool
	if found, path = m.findKeyAndPath(m.toKey(key), path); !found {
		return m // no need for modification
	}
	tracer().Debugf("deletion: slot path = %s", path)
	del := path.last()
	var leafSlot slot[K, C, V]
	if del.node.isLeaf() {
		cow := del.node.withDeletedItem(del.index) // copy-on-write
		leafSlot = slot[K, C, V]{node: &cow, index: del.index}
	} else { // for inner node:
		// swap item with rightmost item of the left subtree, then delete there
		cow := del.node.clone()         // cow is clone of inner node
		path[len(path)-1].node = &cow   // remember clone in path
		node := cow.children[del.index] // descend into left subtree
		for !node.isLeaf() {            // walk to rightmost leaf
			path = append(path, slot[K, C, V]{node: node, index: len(node.items)})
			node = node.children[len(node.items)]
		}
		at := len(node.items) - 1 // steal predecessor = rightmost item of leaf
		path = append(path, slot[K, C, V]{node: node, index: at})
		cow.items[del.index] = node.items[at] // predecessor replaces deleted item
		cowLeaf := node.withDeletedItem(at)   // remove stolen item from leaf
		leafSlot = slot[K, C, V]{node: &cowLeaf, index: at}
	}
	// balance from leaf-node upwards, starting at the leaf where we deleted an item
	newRoot := path.dropLast().foldR(balanceAndClone[K, C, V](m.lowWaterMark),
		leafSlot,
	)
	tracer().Debugf("deletion: new root = %s", newRoot.node)
	root, depth := newRoot.node, m.depth
	switch { // catch border cases where root is empty after deletion
	case len(root.items) == 0 && !root.isLeaf() && root.children[0] != nil:
		root = root.children[0]
		depth--
	case len(root.items) == 0 && root.isLeaf():
		root = nil
		depth = 0
	}
	return m.withRoot(root, depth, m.size-1)
}

// Update looks up the current value for key (or Nothing), applies f, and
// either stores f's Just result under key or removes the entry on Nothing.
func (m Dict[K, C, V]) Update(key K, f func(maybe.Maybe[V]) maybe.Maybe[V]) Dict[K, C, V] {
	if value, ok := maybe.Unwrap(f(m.Get(key))); ok {
		return m.Insert(key, value)
	}
	return m.Remove(key)
}

// --- Internal helpers ------------------------------------------------------

// withRoot is a shallow clone, giving the incarnation a new root.
func (m Dict[K, C, V]) withRoot(root *xnode[K, C, V], depth uint, size int) Dict[K, C, V] {
	return Dict[K, C, V]{
		props: m.props,
		toKey: m.toKey,
		root:  root,
		depth: depth,
		size:  size,
	}
}

// clear is an empty incarnation keeping projection and geometry.
func (m Dict[K, C, V]) clear() Dict[K, C, V] {
	return m.withRoot(nil, 0, 0)
}

func (m Dict[K, C, V]) replacing(item xitem[K, C, V], path slotPath[K, C, V]) Dict[K, C, V] {
	assertThat(len(path) > 0, "cannot replace item without path")
	hit := path[len(path)-1] // slot where the derived key lives
	cow := hit.node.withReplacedItem(item, hit.index)
	newRoot := path.dropLast().foldR(cloneSeam[K, C, V], slot[K, C, V]{node: &cow, index: hit.index})
	tracer().Debugf("replace: top = %s", newRoot.node)
	return m.withRoot(newRoot.node, m.depth, m.size)
}

func (m Dict[K, C, V]) findKeyAndPath(ckey C, pathBuf slotPath[K, C, V]) (found bool, path slotPath[K, C, V]) {
	path = pathBuf[:0] // we track the path to the key's slot
	if m.root == nil {
		return
	}
	var index int
	var node *xnode[K, C, V] = m.root // walking nodes, start search at the top
	for !node.isLeaf() {
		found, index = node.findSlot(ckey)
		path = append(path, slot[K, C, V]{node: node, index: index})
		if found {
			return // we have an exact match
		}
		node = node.children[index]
	}
	found, index = node.findSlot(ckey)
	path = append(path, slot[K, C, V]{node: node, index: index})
	tracer().Debugf("slot path for key=%v -> %s", ckey, path)
	return
}

func splitAndClone[K any, C cmp.Ordered, V any](highWaterMark uint) func(slot[K, C, V], slot[K, C, V]) slot[K, C, V] {
	return func(parent, child slot[K, C, V]) slot[K, C, V] {
		if child.node.overfull(highWaterMark) {
			tracer().Debugf("child is overfull: %v", child)
			return parent.node.splitChild(child)
		}
		return cloneSeam(parent, child)
	}
}

func balanceAndClone[K any, C cmp.Ordered, V any](lowWaterMark uint) func(slot[K, C, V], slot[K, C, V]) slot[K, C, V] {
	return func(parent, child slot[K, C, V]) slot[K, C, V] {
		if child.underfull(lowWaterMark) {
			tracer().Debugf("child is underfull: %v", child)
			return parent.balance(child, lowWaterMark)
		}
		return cloneSeam(parent, child)
	}
}

func cloneSeam[K any, C cmp.Ordered, V any](parent, child slot[K, C, V]) slot[K, C, V] {
	cowParent := parent.node.clone()
	cowParent.children[parent.index] = child.node
	return slot[K, C, V]{node: &cowParent, index: parent.index}
}
