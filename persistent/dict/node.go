package dict

/*
Remarks:
--------

- 'cow' stands for copy-on-write and is used throughout the code for variables
  holding clones of nodes.

- Nodes store the derived key alongside the original (K, V) pair. All
  comparisons happen on the derived key only.

- A new modified incarnation of a dict always is reflected by a new root.

*/

import (
	"cmp"
	"fmt"
	"sort"
	"strings"
)

// xitem is one entry of a node: the derived key plus the stored pair.
type xitem[K any, C cmp.Ordered, V any] struct {
	ckey  C
	key   K
	value V
}

// xnode is a B-tree node. Leaf nodes have no children; inner nodes own
// len(items)+1 child links.
type xnode[K any, C cmp.Ordered, V any] struct {
	items    []xitem[K, C, V]
	children []*xnode[K, C, V]
}

func (node *xnode[K, C, V]) isLeaf() bool {
	return len(node.children) == 0
}

func (node *xnode[K, C, V]) overfull(highWaterMark uint) bool {
	return uint(len(node.items)) > highWaterMark
}

func (node *xnode[K, C, V]) underfull(lowWaterMark uint) bool {
	return uint(len(node.items)) < lowWaterMark
}

func (node *xnode[K, C, V]) String() string {
	if node == nil {
		return "⟨empty⟩"
	}
	var sb strings.Builder
	sb.WriteRune('⟨')
	for i, item := range node.items {
		if i > 0 {
			sb.WriteRune(' ')
		}
		sb.WriteString(fmt.Sprintf("%v", item.ckey))
	}
	sb.WriteRune('⟩')
	return sb.String()
}

// findSlot locates ckey within the node's items, or the slot where it would
// have to be inserted.
func (node *xnode[K, C, V]) findSlot(ckey C) (bool, int) {
	items, itemcnt := node.items, len(node.items)
	slotinx := sort.Search(itemcnt, func(i int) bool {
		return items[i].ckey >= ckey // sort.Search will find the smallest i for which this is true
	})
	return slotinx < itemcnt && ckey == items[slotinx].ckey, slotinx
}

func (node xnode[K, C, V]) clone() xnode[K, C, V] {
	return node.cloneWithCapacity(len(node.items))
}

func (node xnode[K, C, V]) cloneWithCapacity(cap int) xnode[K, C, V] {
	cow := xnode[K, C, V]{}
	if cap < len(node.items) {
		cap = len(node.items)
	}
	cow.items = make([]xitem[K, C, V], len(node.items), max(cap, ceiling(len(node.items))))
	copy(cow.items, node.items)
	if !node.isLeaf() {
		cow.children = make([]*xnode[K, C, V], len(node.children), max(cap+1, ceiling(len(node.children))))
		copy(cow.children, node.children)
	}
	return cow
}

// slice returns a copy of a node carrying items[from:to] and the child links
// belonging to them.
func (node xnode[K, C, V]) slice(from, to int) xnode[K, C, V] {
	cow := xnode[K, C, V]{}
	cow.items = make([]xitem[K, C, V], to-from, ceiling(to-from))
	copy(cow.items, node.items[from:to])
	if !node.isLeaf() {
		cow.children = make([]*xnode[K, C, V], to-from+1, ceiling(to-from+1))
		copy(cow.children, node.children[from:to+1])
	}
	return cow
}

// asNonLeaf ensures the node owns a child-link slice, len(items)+1 long.
func (node xnode[K, C, V]) asNonLeaf() xnode[K, C, V] {
	if !node.isLeaf() {
		return node
	}
	cow := node
	cow.children = make([]*xnode[K, C, V], len(node.items)+1)
	return cow
}

func (node xnode[K, C, V]) withReplacedItem(item xitem[K, C, V], at int) xnode[K, C, V] {
	assertThat(at < len(node.items), "given item index out of range: %d ≥ %d", at, len(node.items))
	cow := node.clone()
	cow.items[at] = item // replaces key and value, ckey identity is unchanged
	return cow
}

func (node xnode[K, C, V]) withInsertedItem(item xitem[K, C, V], at int) xnode[K, C, V] {
	assertThat(at <= len(node.items), "given item index out of range: %d > %d", at, len(node.items))
	cow := xnode[K, C, V]{}
	cow.items = make([]xitem[K, C, V], 0, ceiling(len(node.items)+1))
	cow.items = append(cow.items, node.items[:at]...)
	cow.items = append(cow.items, item)
	cow.items = append(cow.items, node.items[at:]...)
	if !node.isLeaf() {
		// leave a free child link right of the new item; splitChild fills it
		cow.children = make([]*xnode[K, C, V], 0, ceiling(len(node.children)+1))
		cow.children = append(cow.children, node.children[:at+1]...)
		cow.children = append(cow.children, nil)
		cow.children = append(cow.children, node.children[at+1:]...)
	}
	return cow
}

func (node xnode[K, C, V]) withDeletedItem(at int) xnode[K, C, V] {
	assertThat(at < len(node.items), "given item index out of range: %d ≥ %d", at, len(node.items))
	cow := xnode[K, C, V]{}
	cow.items = make([]xitem[K, C, V], 0, ceiling(len(node.items)))
	cow.items = append(cow.items, node.items[:at]...)
	cow.items = append(cow.items, node.items[at+1:]...)
	if !node.isLeaf() {
		cow.children = make([]*xnode[K, C, V], 0, ceiling(len(node.children)))
		cow.children = append(cow.children, node.children[:at]...)
		cow.children = append(cow.children, node.children[at+1:]...)
	}
	return cow
}

// withCutRight cuts the rightmost item, together with its right child link.
func (node xnode[K, C, V]) withCutRight() (xnode[K, C, V], xitem[K, C, V], *xnode[K, C, V]) {
	assertThat(len(node.items) > 0, "attempt to cut right item from empty node")
	cow := node.clone()
	item := cow.items[len(cow.items)-1]
	var rnode *xnode[K, C, V]
	cow.items = cow.items[:len(cow.items)-1]
	if !cow.isLeaf() {
		rnode = cow.children[len(cow.children)-1]
		cow.children = cow.children[:len(cow.children)-1]
	}
	return cow, item, rnode
}

// withCutLeft cuts the leftmost item, together with its left child link.
func (node xnode[K, C, V]) withCutLeft() (xnode[K, C, V], xitem[K, C, V], *xnode[K, C, V]) {
	assertThat(len(node.items) > 0, "attempt to cut left item from empty node")
	cow := node.clone()
	item := cow.items[0]
	var lnode *xnode[K, C, V]
	cow.items = cow.items[1:]
	if !cow.isLeaf() {
		lnode = cow.children[0]
		cow.children = cow.children[1:]
	}
	return cow, item, lnode
}

// splitChild splits an overfull child node. It is not checked if the child is
// indeed overfull. Returns a modified copy of node with 2 new children, where
// the left one substitutes a child of node.
//
// It's legal to call this on xnode{} (in order to create a new root).
func (node xnode[K, C, V]) splitChild(s slot[K, C, V]) slot[K, C, V] {
	child := s.node
	half := len(child.items) / 2
	medianItem := child.items[half]
	siblingL := child.slice(0, half)
	siblingR := child.slice(half+1, len(child.items))
	found, index := node.findSlot(medianItem.ckey)
	assertThat(!found, "internal inconsistency: child has same key as parent (during split)")
	cow := node.withInsertedItem(medianItem, index).asNonLeaf()
	cow.children[index] = &siblingL
	cow.children[index+1] = &siblingR
	return slot[K, C, V]{node: &cow, index: index}
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("dict: "+msg, msgargs...)
		panic(msg)
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func ceiling(n int) int {
	return ((n + 1) >> 1) << 1
}
