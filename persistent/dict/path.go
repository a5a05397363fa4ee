package dict

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
)

// --- Slot ------------------------------------------------------------------

// slot holds a step of a path: a node together with an item/child index.
type slot[K any, C cmp.Ordered, V any] struct {
	node  *xnode[K, C, V]
	index int
}

func (s slot[K, C, V]) String() string {
	return strconv.Itoa(s.index) + "@" + s.node.String()
}

func (s slot[K, C, V]) item() xitem[K, C, V] {
	return s.node.items[s.index]
}

// items returns a slice of items contained in s.node. If s is an empty slot
// (no node contained), a valid zero-length slice is returned (i.e., making it
// safe to call `s.items()` for empty slots).
func (s slot[K, C, V]) items() []xitem[K, C, V] {
	if s.node == nil {
		return []xitem[K, C, V]{}
	}
	return s.node.items
}

func (s slot[K, C, V]) len() int {
	if s.node == nil {
		return 0
	}
	return len(s.node.items)
}

func (s slot[K, C, V]) underfull(lowWaterMark uint) bool {
	if s.node == nil {
		return true
	}
	return s.node.underfull(lowWaterMark)
}

func (s slot[K, C, V]) replaceItem(item xitem[K, C, V]) xitem[K, C, V] {
	assertThat(s.index < len(s.node.items), "internal inconsistency: item index overflow")
	old := s.node.items[s.index]
	s.node.items[s.index] = item
	return old
}

func (s slot[K, C, V]) leftSibling(child slot[K, C, V]) slot[K, C, V] {
	if s.node == nil || len(s.node.children) == 0 || s.index == 0 {
		return slot[K, C, V]{}
	}
	assertThat(s.index <= len(s.node.children), "internal inconsistency: item index overflow")
	lsib := s.node.children[s.index-1]
	tracer().Debugf("left sibling of %s = %s, index in parent is %d", child, lsib, s.index-1)
	return slot[K, C, V]{node: lsib, index: len(lsib.items)}
}

func (s slot[K, C, V]) rightSibling(child slot[K, C, V]) slot[K, C, V] {
	if s.node == nil || len(s.node.children) == 0 || s.index >= len(s.node.children)-1 {
		return slot[K, C, V]{}
	}
	rsib := s.node.children[s.index+1]
	tracer().Debugf("right sibling of %s = %s, index in parent is %d", child, rsib, s.index+1)
	return slot[K, C, V]{node: rsib, index: len(rsib.items)}
}

// mergeinfo is an ad-hoc tuple for merging tree nodes. It points to the parent
// node, together with its two child nodes to be merged.
type mergeinfo[K any, C cmp.Ordered, V any] struct {
	parent slot[K, C, V]
	left   slot[K, C, V]
	right  slot[K, C, V]
}

// siblings2 returns child and a sibling (either left or right) as a correctly
// ordered pair. If child is an only child, a pair with an empty right sibling
// will be returned.
func (s slot[K, C, V]) siblings2(child slot[K, C, V]) mergeinfo[K, C, V] {
	assertThat(!s.node.isLeaf(), "attempt to find siblings for leaf")
	assertThat(s.index < len(s.node.children), "internal inconsistency: child index overflow")
	mi := mergeinfo[K, C, V]{parent: s}
	sbl := s.leftSibling(child)
	if sbl.node != nil {
		mi.left, mi.right = sbl, child
		mi.parent.index--
	} else { // no left sibling available
		sbl = s.rightSibling(child)
		mi.left, mi.right = child, sbl
	}
	assertThat(mi.left.node != nil, "sibling-pair needs to have non-empty left sibling")
	return mi
}

// balance re-establishes the low water mark for an underfull child, either by
// stealing an item from a sibling or by merging the child with one.
func (parent slot[K, C, V]) balance(child slot[K, C, V], lowWaterMark uint) slot[K, C, V] {
	assertThat(len(parent.node.children) > 0, "attempt to balance parent w/ zero children")
	if !parent.leftSibling(child).underfull(lowWaterMark + 1) {
		// steal item from left sibling ⇒ rotate right
		return parent.rotateRight(parent.leftSibling(child), child)
	} else if !parent.rightSibling(child).underfull(lowWaterMark + 1) {
		// steal item from right sibling ⇒ rotate left
		return parent.rotateLeft(child, parent.rightSibling(child))
	}
	// steal item from parent and merge with a sibling
	return parent.merge(parent.siblings2(child))
}

// merge steals an item from parent and merges child with a sibling. Returns a
// new parent which may be underfull or even empty (in case of parent being
// root).
func (parent slot[K, C, V]) merge(mi mergeinfo[K, C, V]) slot[K, C, V] {
	p := mi.parent
	assertThat(p.len() > 0, "attempt to extract an item from an empty parent node")
	cow := p.node.withDeletedItem(p.index)
	newParent := slot[K, C, V]{node: &cow, index: p.index}
	lsbl, rsbl := mi.left, mi.right // rsbl may be slot{}, i.e. empty
	cowch := lsbl.node.cloneWithCapacity(lsbl.len() + rsbl.len() + 1)
	cowch.items = append(cowch.items, p.item())
	cowch.items = append(cowch.items, rsbl.items()...)
	if !cowch.isLeaf() && rsbl.len() > 0 {
		cowch.children = append(cowch.children, rsbl.node.children...)
		assertThat(len(cowch.children) == len(cowch.items)+1, "internal inconsistency")
	}
	cow.children[p.index] = &cowch // link new parent to new child
	return newParent
}

func (parent slot[K, C, V]) rotateRight(lsbl, rsbl slot[K, C, V]) slot[K, C, V] {
	cow := parent.node.clone()
	newParent := slot[K, C, V]{node: &cow, index: parent.index}
	// the item separating the siblings sits left of the child's link
	sep := slot[K, C, V]{node: &cow, index: parent.index - 1}
	// cut rightmost item from left sibling
	cowlsbl, stolenItem, grandChild := lsbl.node.withCutRight()
	// replace separating parent item with item from left sibling
	parentItem := sep.replaceItem(stolenItem)
	// insert parent item as leftmost item in right sibling
	cowrsbl := xnode[K, C, V]{}
	cowrsbl.items = make([]xitem[K, C, V], 0, ceiling(rsbl.len()+1))
	cowrsbl.items = append(cowrsbl.items, parentItem)
	cowrsbl.items = append(cowrsbl.items, rsbl.items()...)
	if !cowlsbl.isLeaf() {
		cowrsbl.children = make([]*xnode[K, C, V], 0, ceiling(rsbl.len()+2))
		cowrsbl.children = append(cowrsbl.children, grandChild)
		cowrsbl.children = append(cowrsbl.children, rsbl.node.children...)
	}
	// link new children of parent/cow
	cow.children[parent.index-1] = &cowlsbl
	cow.children[parent.index] = &cowrsbl
	return newParent
}

func (parent slot[K, C, V]) rotateLeft(lsbl, rsbl slot[K, C, V]) slot[K, C, V] {
	cow := parent.node.clone()
	newParent := slot[K, C, V]{node: &cow, index: parent.index}
	// cut leftmost item from right sibling
	cowrsbl, stolenItem, grandChild := rsbl.node.withCutLeft()
	// replace parent item with item from right sibling
	parentItem := newParent.replaceItem(stolenItem)
	// insert parent item as rightmost item in left sibling
	cowlsbl := lsbl.node.cloneWithCapacity(lsbl.len() + 1)
	cowlsbl.items = append(cowlsbl.items, parentItem)
	if !cowlsbl.isLeaf() {
		cowlsbl.children = append(cowlsbl.children, grandChild)
		assertThat(len(cowlsbl.children) == len(cowlsbl.items)+1, "insertion logic failed")
	}
	// link new children of parent/cow
	cow.children[parent.index] = &cowlsbl
	cow.children[parent.index+1] = &cowrsbl
	return newParent
}

// --- Path ------------------------------------------------------------------

type slotPath[K any, C cmp.Ordered, V any] []slot[K, C, V]

func (path slotPath[K, C, V]) String() string {
	var sb = strings.Builder{}
	sb.WriteRune('[')
	for _, s := range path {
		sb.WriteString(fmt.Sprintf("⟨%s⟩", s))
	}
	sb.WriteRune(']')
	return sb.String()
}

func (path slotPath[K, C, V]) last() slot[K, C, V] {
	if len(path) == 0 {
		return slot[K, C, V]{}
	}
	return path[len(path)-1]
}

func (path slotPath[K, C, V]) foldR(f func(slot[K, C, V], slot[K, C, V]) slot[K, C, V],
	zero slot[K, C, V]) slot[K, C, V] {
	//
	if len(path) == 0 {
		return zero
	}
	r := zero
	for i := len(path) - 1; i >= 0; i-- {
		r = f(path[i], r)
	}
	return r
}

func (path slotPath[K, C, V]) dropLast() slotPath[K, C, V] {
	if len(path) == 0 {
		return path
	}
	return path[:len(path)-1]
}
