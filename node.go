// SPDX-License-Identifier: MIT
package flattree

type (
	// Node holds a caller record once it has been placed in a [Tree].
	//
	// Synchronization is unnecessary, the type is owned by a single [Tree].
	Node[R any] struct {
		// record contains the caller's data.
		record R

		// parent contains a reference to the upper Node, nil for roots.
		parent *Node[R]

		// children holds references to nodes at a lower level in input order.
		children List[R]
	}

	// List is a type wrapper for []*Node.
	List[R any] []*Node[R]
)

// newNode instantiates a [Node] with an empty children list.
func newNode[R any](record R) *Node[R] {
	return &Node[R]{
		record:   record,
		children: List[R]{},
	}
}

// Record retrieves the [Node]'s data.
func (n *Node[R]) Record() R { return n.record }

// Parent retrieves a reference to the [Node]'s parent.
//
// Value is nil for root nodes.
func (n *Node[R]) Parent() *Node[R] { return n.parent }

// Children lists the immediate children of a [Node].
//
// The returned list is the node's own; callers should not modify it.
func (n *Node[R]) Children() List[R] { return n.children }

// IsRoot reports whether the [Node] sits in the forest's root list.
func (n *Node[R]) IsRoot() bool { return n.parent == nil }

// IsLeaf reports whether the [Node] lacks children.
func (n *Node[R]) IsLeaf() bool { return len(n.children) < 1 }

// appendChild attaches child as the last child of the [Node].
func (n *Node[R]) appendChild(child *Node[R]) {
	child.parent = n
	n.children = append(n.children, child)
}

// Len is the number of elements in the collection.
func (l List[R]) Len() int { return len(l) }

// Records returns the records held by a [List] in order.
func (l List[R]) Records() (records []R) {
	records = make([]R, len(l))
	for index := range l {
		records[index] = l[index].record
	}

	return
}

// Keys returns the identifiers of the records held by a [List] in order.
func Keys[R any, K comparable](l List[R], key KeyFunc[R, K]) (keys []K) {
	keys = make([]K, len(l))
	for index := range l {
		keys[index] = key(l[index].record)
	}

	return
}
