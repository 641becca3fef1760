// SPDX-License-Identifier: MIT
package flattree

import (
	"fmt"
	"strings"
)

const (
	// valueSplitter separates sibling identifiers.
	valueSplitter = ','

	// startMarker & endMarker enclose a node's children.
	startMarker = '('
	endMarker   = ')'
)

// String renders the forest's identifiers, nesting children in parentheses.
//
// Roots 3 & 1, with 9 under 3 & 11 under 9, render as "3(9(11)),1".
// Intended for logging only; the output isn't parsed back.
func (t *Tree[R, K]) String() string {
	var buffer strings.Builder
	t.format(&buffer, t.roots)

	return buffer.String()
}

// format performs the rendering grunt work.
func (t *Tree[R, K]) format(buffer *strings.Builder, list List[R]) {
	for index, node := range list {
		if index > 0 {
			buffer.WriteByte(valueSplitter)
		}
		fmt.Fprint(buffer, t.key(node.record))

		if len(node.children) < 1 {
			continue
		}

		buffer.WriteByte(startMarker)
		t.format(buffer, node.children)
		buffer.WriteByte(endMarker)
	}
}
