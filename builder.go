// SPDX-License-Identifier: MIT
package flattree

import (
	"errors"
	"fmt"

	"github.com/davecgh/go-spew/spew"
)

// Tree building errors.
var (
	ErrBuildTree = errors.New("failed to build tree")

	ErrNilKeyFunc = errors.New("nil key function")
	ErrOrphanNode = errors.New("references a missing parent")

	ErrPanicked = errors.New("recovery from panic")
)

// New builds a [Tree] from a flat list of records.
//
// key reads a record's identifier & parentKey its parent's; records lacking a parent become roots.
// Roots & children retain their relative input order. An empty list yields an empty forest.
func New[R any, K comparable](records []R, key KeyFunc[R, K], parentKey ParentKeyFunc[R, K], options ...Option) (t *Tree[R, K], err error) {
	if key == nil || parentKey == nil {
		err = fmt.Errorf("%w: %w", ErrBuildTree, ErrNilKeyFunc)
		return
	}

	t = &Tree[R, K]{
		cfg:       newConfig(options...),
		key:       key,
		parentKey: parentKey,
		roots:     List[R]{},
	}

	if err = t.build(records); err != nil {
		t = nil
	}

	return
}

// build performs the two pass construction grunt work.
func (t *Tree[R, K]) build(records []R) (err error) {
	// remnants holds the records yet to be placed when the build fails.
	var remnants []R

	defer func() {
		if err != nil {
			err = fmt.Errorf("%w: %w", ErrBuildTree, err)
		}
	}()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrPanicked, r)
		}

		// Skip expensive operation if not debug.
		if err != nil && t.cfg.Debug {
			t.cfg.Logger.Debugf("current forest: %s \nsource remnants: %s", spew.Sprint(t.roots), spew.Sprint(remnants))
		}
	}()

	// Register every record, the first of duplicate identifiers wins.
	lookup := make(map[K]*Node[R], len(records))
	nodes := make(List[R], len(records))
	for index := range records {
		id := t.key(records[index])
		nodes[index] = newNode(records[index])

		if _, ok := lookup[id]; ok {
			t.cfg.Logger.Warnf("duplicate identifier (%v) at index %d", id, index)
			continue
		}
		lookup[id] = nodes[index]
	}

	// Attach every record to its parent or the root list.
	for index, node := range nodes {
		parentID, ok := t.parentKey(node.record)
		if !ok {
			t.roots = append(t.roots, node)
			continue
		}

		parent, found := lookup[parentID]
		if found {
			parent.appendChild(node)
			continue
		}

		if t.cfg.Orphans == PromoteOrphans {
			t.cfg.Logger.Warnf("(%v) %v (%v), promoted to root", t.key(node.record), ErrOrphanNode, parentID)
			t.roots = append(t.roots, node)

			continue
		}

		remnants = records[index:]
		err = fmt.Errorf("(%v) %w (%v)", t.key(node.record), ErrOrphanNode, parentID)

		return
	}

	if t.cfg.Debug {
		t.cfg.Logger.Debugf("built forest: %s", t)
	}

	return
}
