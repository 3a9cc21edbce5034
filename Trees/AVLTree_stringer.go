package Trees

import (
	"fmt"
	"strings"
)

// String draws the tree sideways, right subtree on top, each node followed by
// its cached height.
// Should not be used to print out large trees.
func (u *AVLTree[T]) String() string {
	if u == nil || u.root == nil {
		return "────┤ empty"
	}
	var b strings.Builder
	draw(&b, u.root, "", false, true)
	return b.String()
}

func draw[T Value[T]](b *strings.Builder, n *node[T], prefix string, tail, isRoot bool) {
	if r := n.ch[Right]; r != nil {
		next := prefix + "\t"
		if tail {
			next = prefix + "│\t"
		}
		draw(b, r, next, false, false)
	}
	switch {
	case isRoot:
		b.WriteString(prefix + "───")
	case tail:
		b.WriteString(prefix + "└──")
	default:
		b.WriteString(prefix + "┌──")
	}
	fmt.Fprintf(b, "─┤ %s h=%d\n", n.v, n.h)
	if l := n.ch[Left]; l != nil {
		next := prefix + "│\t"
		if tail || isRoot {
			next = prefix + "\t"
		}
		draw(b, l, next, true, false)
	}
}
