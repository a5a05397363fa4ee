package trie

import (
	"fmt"
	"sort"
	"strings"
)

// tnode is one trie node: an optional stored value (the key spelled out by
// the path from the root ends here) plus outgoing edges, one per distinct
// next byte, kept sorted by label.
type tnode[V any] struct {
	value *V
	edges []edge[V]
}

type edge[V any] struct {
	label byte
	node  *tnode[V]
}

func (node *tnode[V]) String() string {
	if node == nil {
		return "⟨empty⟩"
	}
	var sb strings.Builder
	sb.WriteRune('⟨')
	if node.value != nil {
		sb.WriteString(fmt.Sprintf("%v", *node.value))
	} else {
		sb.WriteRune('·')
	}
	for _, e := range node.edges {
		sb.WriteRune(' ')
		sb.WriteByte(e.label)
	}
	sb.WriteRune('⟩')
	return sb.String()
}

// findEdge locates the edge for label, or the position where it would have
// to be inserted.
func (node *tnode[V]) findEdge(label byte) (bool, int) {
	edges, edgecnt := node.edges, len(node.edges)
	inx := sort.Search(edgecnt, func(i int) bool {
		return edges[i].label >= label
	})
	return inx < edgecnt && edges[inx].label == label, inx
}

func (node *tnode[V]) clone() tnode[V] {
	cow := tnode[V]{value: node.value}
	if len(node.edges) > 0 {
		cow.edges = make([]edge[V], len(node.edges))
		copy(cow.edges, node.edges)
	}
	return cow
}

func (node *tnode[V]) withEdge(at int, e edge[V]) tnode[V] {
	cow := tnode[V]{value: node.value}
	cow.edges = make([]edge[V], 0, len(node.edges)+1)
	cow.edges = append(cow.edges, node.edges[:at]...)
	cow.edges = append(cow.edges, e)
	cow.edges = append(cow.edges, node.edges[at:]...)
	return cow
}

func (node *tnode[V]) withoutEdge(at int) tnode[V] {
	cow := tnode[V]{value: node.value}
	if len(node.edges) > 1 {
		cow.edges = make([]edge[V], 0, len(node.edges)-1)
		cow.edges = append(cow.edges, node.edges[:at]...)
		cow.edges = append(cow.edges, node.edges[at+1:]...)
	}
	return cow
}

// insert stores value under key below node, copying the nodes along the
// key's path. Returns the new subtree root and whether the key was not
// present before.
func insert[V any](node *tnode[V], key string, value V) (*tnode[V], bool) {
	var cow tnode[V]
	if node != nil {
		cow = node.clone()
	}
	if len(key) == 0 {
		added := cow.value == nil
		v := value
		cow.value = &v
		return &cow, added
	}
	found, at := cow.findEdge(key[0])
	var child *tnode[V]
	if found {
		child = cow.edges[at].node
	}
	newChild, added := insert(child, key[1:], value)
	if found {
		cow.edges[at].node = newChild
	} else {
		cow = cow.withEdge(at, edge[V]{label: key[0], node: newChild})
	}
	return &cow, added
}

// remove deletes the entry for key below node, copying the nodes along the
// key's path and pruning nodes which carry neither a value nor edges.
// Returns the new subtree root (nil if pruned away) and whether an entry
// was deleted. If key is absent, node is returned as is.
func remove[V any](node *tnode[V], key string) (*tnode[V], bool) {
	if node == nil {
		return nil, false
	}
	if len(key) == 0 {
		if node.value == nil {
			return node, false
		}
		cow := node.clone()
		cow.value = nil
		if len(cow.edges) == 0 {
			return nil, true
		}
		return &cow, true
	}
	found, at := node.findEdge(key[0])
	if !found {
		return node, false
	}
	newChild, removed := remove(node.edges[at].node, key[1:])
	if !removed {
		return node, false
	}
	if newChild == nil {
		cow := node.withoutEdge(at)
		if cow.value == nil && len(cow.edges) == 0 {
			return nil, true
		}
		return &cow, true
	}
	cow := node.clone()
	cow.edges[at].node = newChild
	return &cow, true
}

// find walks the key's path without copying anything.
func find[V any](node *tnode[V], key string) *V {
	for i := 0; node != nil; i++ {
		if i == len(key) {
			return node.value
		}
		found, at := node.findEdge(key[i])
		if !found {
			return nil
		}
		node = node.edges[at].node
	}
	return nil
}

// each walks the subtree in ascending lexicographic key order: a node's own
// entry precedes all entries below it.
func (node *tnode[V]) each(prefix []byte, f func(string, V)) {
	if node == nil {
		return
	}
	if node.value != nil {
		f(string(prefix), *node.value)
	}
	for _, e := range node.edges {
		e.node.each(append(prefix, e.label), f)
	}
}

// eachReverse walks the subtree in descending lexicographic key order. The
// trie shape favors ascending walks; the descending direction keeps more
// pending subtree state around and is the costlier of the two.
func (node *tnode[V]) eachReverse(prefix []byte, f func(string, V)) {
	if node == nil {
		return
	}
	for i := len(node.edges) - 1; i >= 0; i-- {
		e := node.edges[i]
		e.node.eachReverse(append(prefix, e.label), f)
	}
	if node.value != nil {
		f(string(prefix), *node.value)
	}
}
