// SPDX-License-Identifier: MIT
package flattree

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"
)

// REF: https://stackoverflow.com/a/22367819
//
// Lookups are recursive & bounded by the depth of the forest; goroutine stacks grow on demand so
// only pathological inputs (millions of levels) are at risk.

type (
	// Tree defines a forest built from a flat list of records referencing their parents.
	//
	// Synchronization is unnecessary, the type is designed for a single owner; callers sharing a
	// Tree across goroutines must serialize access.
	Tree[R any, K comparable] struct {
		// cfg contains a pointer to the [Config] used by the Tree's operations.
		cfg *Config

		// key reads the identifier of a record.
		key KeyFunc[R, K]
		// parentKey reads the parent identifier of a record, false marks a root.
		parentKey ParentKeyFunc[R, K]

		// roots holds the forest's top level nodes in input order.
		roots List[R]
	}

	// KeyFunc reads the identifier field of a record.
	KeyFunc[R any, K comparable] func(R) K

	// ParentKeyFunc reads the parent identifier field of a record.
	//
	// ok is false when the record lacks a parent.
	ParentKeyFunc[R any, K comparable] func(R) (parentKey K, ok bool)

	// VisitFunc is applied to nodes during [Tree.Traverse]; returning true stops the traversal.
	VisitFunc[R any] func(*Node[R]) (stop bool)
)

// Errors encountered when mutating a Tree.
var (
	ErrParentNotFound = errors.New("parent not found")
)

// Config retrieves the [Tree]'s Config.
func (t *Tree[R, K]) Config() *Config { return t.cfg }

// Roots lists the forest's root nodes.
func (t *Tree[R, K]) Roots() List[R] { return t.roots }

// Len counts the nodes reachable from the forest.
func (t *Tree[R, K]) Len() (count int) {
	t.Traverse(func(*Node[R]) bool {
		count++
		return false
	})

	return
}

// Key reads the identifier of a record using the [Tree]'s KeyFunc.
func (t *Tree[R, K]) Key(record R) K { return t.key(record) }

// Find searches the forest for the node whose identifier matches ref's.
//
// Only the identifier of ref is read. The search is depth-first pre-order & the first match wins.
func (t *Tree[R, K]) Find(ref R) (node *Node[R], ok bool) { return t.Locate(t.key(ref)) }

// FindIn performs the Find operation on the subtree rooted at root, root included.
//
// A nil root searches the whole forest.
func (t *Tree[R, K]) FindIn(root *Node[R], ref R) (node *Node[R], ok bool) {
	if root == nil {
		return t.Find(ref)
	}

	id := t.key(ref)
	if t.key(root.record) == id {
		return root, true
	}

	node = t.locate(root.children, id)
	ok = node != nil

	return
}

// Locate searches the forest for an identifier & returns its node.
func (t *Tree[R, K]) Locate(id K) (node *Node[R], ok bool) {
	node = t.locate(t.roots, id)
	ok = node != nil

	return
}

func (t *Tree[R, K]) locate(list List[R], id K) *Node[R] {
	for _, node := range list {
		if t.key(node.record) == id {
			return node
		}

		if found := t.locate(node.children, id); found != nil {
			return found
		}
	}

	return nil
}

// GetChildren lists the immediate children of the node matching parentRef.
//
// A missing parent yields an empty list so the result is always iterable.
func (t *Tree[R, K]) GetChildren(parentRef R) List[R] {
	parent, ok := t.Find(parentRef)
	if !ok {
		return List[R]{}
	}

	return parent.children
}

// AddRoot appends a record to the forest's root list.
//
// Identifiers are not checked for uniqueness; adding a duplicate leaves two nodes under the same
// identifier & Find will only ever return the first in pre-order.
func (t *Tree[R, K]) AddRoot(record R) (node *Node[R]) {
	node = newNode(record)
	t.roots = append(t.roots, node)

	if t.cfg.Debug {
		t.cfg.Logger.Debugf("added root (%v)", t.key(record))
	}

	return
}

// AddChild appends child to the children of the node matching parentRef.
//
// The Tree is left untouched when the parent can't be located.
func (t *Tree[R, K]) AddChild(child, parentRef R) (node *Node[R], err error) {
	parent, ok := t.Find(parentRef)
	if !ok {
		err = fmt.Errorf("(%v) parent (%v) %w", t.key(child), t.key(parentRef), ErrParentNotFound)
		return
	}

	node = newNode(child)
	parent.appendChild(node)

	if t.cfg.Debug {
		t.cfg.Logger.Debugf("added child (%v) to (%v)", t.key(child), t.key(parentRef))
	}

	return
}

// Remove detaches the node matching ref, along with its subtree.
//
// The parent is resolved from ref's own parent identifier, falling back to the root list. Returns
// false when nothing was removed.
func (t *Tree[R, K]) Remove(ref R) (removed bool) {
	if _, ok := t.Find(ref); !ok {
		return
	}

	id := t.key(ref)
	if parentID, ok := t.parentKey(ref); ok {
		if parent, found := t.Locate(parentID); found {
			if index := t.indexOf(parent.children, id); index > -1 {
				parent.children = detach(parent.children, index)
				removed = true
			}
		}
	}

	if !removed {
		if index := t.indexOf(t.roots, id); index > -1 {
			t.roots = detach(t.roots, index)
			removed = true
		}
	}

	if t.cfg.Debug {
		t.cfg.Logger.Debugf("remove (%v): %t", id, removed)
	}

	return
}

// RemoveKey detaches the first node with the identifier id, along with its subtree.
//
// Unlike Remove, the node's tracked parent is used.
func (t *Tree[R, K]) RemoveKey(id K) (removed bool) {
	node, ok := t.Locate(id)
	if !ok {
		return
	}

	container := &t.roots
	if node.parent != nil {
		container = &node.parent.children
	}

	if index := slices.Index(*container, node); index > -1 {
		*container = detach(*container, index)
		removed = true
	}

	if t.cfg.Debug {
		t.cfg.Logger.Debugf("remove key (%v): %t", id, removed)
	}

	return
}

// indexOf returns the position of the first node in list whose identifier is id, -1 otherwise.
func (t *Tree[R, K]) indexOf(list List[R], id K) int {
	return slices.IndexFunc(list, func(node *Node[R]) bool { return t.key(node.record) == id })
}

// detach cuts the node at index from list, preserving the order of the remaining nodes.
func detach[R any](list List[R], index int) List[R] {
	list[index].parent = nil
	list = slices.Delete(list, index, index+1)

	// Clear the vacated slot so the detached subtree can be collected.
	list[:len(list)+1][len(list)] = nil

	return list
}

// Flatten lists every node of the forest in depth-first pre-order.
func (t *Tree[R, K]) Flatten() List[R] { return flatten(t.roots, make(List[R], 0)) }

// FlattenFrom lists root's descendants in depth-first pre-order, root excluded.
//
// A nil root flattens the whole forest.
func (t *Tree[R, K]) FlattenFrom(root *Node[R]) List[R] {
	if root == nil {
		return t.Flatten()
	}

	return flatten(root.children, make(List[R], 0))
}

func flatten[R any](list, acc List[R]) List[R] {
	for _, node := range list {
		acc = append(acc, node)
		acc = flatten(node.children, acc)
	}

	return acc
}

// Traverse applies visit to every node of the forest in depth-first pre-order.
//
// Returns true iff visit requested a stop.
func (t *Tree[R, K]) Traverse(visit VisitFunc[R]) (stopped bool) { return traverse(t.roots, visit) }

// TraverseFrom performs the Traverse operation on root's descendants, root excluded.
//
// A nil root traverses the whole forest.
func (t *Tree[R, K]) TraverseFrom(root *Node[R], visit VisitFunc[R]) (stopped bool) {
	if root == nil {
		return t.Traverse(visit)
	}

	return traverse(root.children, visit)
}

func traverse[R any](list List[R], visit VisitFunc[R]) bool {
	for _, node := range list {
		if visit(node) || traverse(node.children, visit) {
			return true
		}
	}

	return false
}
