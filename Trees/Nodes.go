package Trees

import "strings"

// Side selects one of the two child slots of a node.
type Side uint8

const (
	Left Side = iota
	Right
)

// Opposite side.
func (s Side) Opposite() Side {
	return s ^ 1
}

func (s Side) String() string {
	if s == Left {
		return "Left"
	}
	return "Right"
}

// A node in the AVLTree
// h caches the height of the subtree rooted here: 1 for a leaf, 0 for an
// absent node. It's trusted by height and balance and must be refreshed by
// whatever changes the shape below the node.
type node[T Value[T]] struct {
	v  T
	ch [2]*node[T]
	h  uint
}

// newNode returns a leaf holding a clone of v.
func newNode[T Value[T]](v T) *node[T] {
	return &node[T]{v: v.Clone(), h: 1}
}

// height is the cached height; nil has height 0.
// Time: O(1); Space: O(1)
func (n *node[T]) height() uint {
	if n == nil {
		return 0
	}
	return n.h
}

func (n *node[T]) update() {
	n.h = 1 + max(n.ch[Left].height(), n.ch[Right].height())
}

// balance is height(left)-height(right). Between two fix-ups it stays in [-2,2].
func (n *node[T]) balance() int8 {
	return int8(int(n.ch[Left].height()) - int(n.ch[Right].height()))
}

// rotate the node at *p toward s: its child on the opposite side becomes the
// root of the subtree, *p drops to side s, and the risen child's s subtree moves
// under the dropped node. Returns false without doing anything if that child
// is missing.
// Time: O(1); Space: O(1)
func rotate[T Value[T]](p **node[T], s Side) bool {
	n := *p
	o := s.Opposite()
	c := n.ch[o]
	if c == nil {
		return false
	}
	n.ch[o] = c.ch[s]
	c.ch[s] = n
	n.update()
	c.update()
	*p = c
	return true
}

// rebalance the node at *p if its balance reached ±2, using a double rotation
// when the taller child leans the other way. Otherwise only its height is
// refreshed. Returns whether anything rotated.
// Time: O(1); Space: O(1)
func rebalance[T Value[T]](p **node[T]) bool {
	switch n := *p; n.balance() {
	case -2:
		if n.ch[Right].balance() == 1 {
			rotate(&n.ch[Right], Right)
		}
		return rotate(p, Left)
	case 2:
		if n.ch[Left].balance() == -1 {
			rotate(&n.ch[Left], Left)
		}
		return rotate(p, Right)
	default:
		n.update()
		return false
	}
}

// insert v into the subtree at *p recursively. Values order-equivalent to a
// node go to its left. It never fails, the return value is always true.
// Time: O(log n)
func insert[T Value[T]](p **node[T], v T) bool {
	n := *p
	if n == nil {
		*p = newNode(v)
		return true
	}
	s := Right
	if v.Compare(n.v) <= 0 {
		s = Left
	}
	insert(&n.ch[s], v)
	n.update()
	rebalance(p)
	return true
}

// removeMin unlinks the leftmost node of the subtree at *p and returns its value.
// *p must not be nil.
// Time: O(log n)
func removeMin[T Value[T]](p **node[T]) T {
	n := *p
	if n == nil {
		panic("Trees: removeMin on an empty subtree")
	}
	if n.ch[Left] == nil {
		*p = n.ch[Right]
		n.ch[Right] = nil
		return n.v
	}
	v := removeMin(&n.ch[Left])
	n.update()
	rebalance(p)
	return v
}

// remove the first node order-equivalent to v found on the search path in the
// subtree at *p. A node with a right child takes the value of its in-order
// successor, otherwise it's replaced by its left subtree. Returns the value
// that was in the matched node, and false when there was no match.
// Time: O(log n)
func remove[T Value[T]](p **node[T], v T) (old T, found bool) {
	n := *p
	if n == nil {
		return
	}
	if c := v.Compare(n.v); c == 0 {
		found = true
		if n.ch[Right] != nil {
			old, n.v = n.v, removeMin(&n.ch[Right])
		} else {
			old = n.v
			*p = n.ch[Left]
			n.ch[Left] = nil
		}
	} else if c < 0 {
		old, found = remove(&n.ch[Left], v)
	} else {
		old, found = remove(&n.ch[Right], v)
	}
	if *p != nil {
		rebalance(p)
	}
	return
}

// get the first node order-equivalent to v on the search path, nil if none.
// Time: O(log n); Space: O(1)
func get[T Value[T]](n *node[T], v T) *node[T] {
	for n != nil {
		if c := v.Compare(n.v); c == 0 {
			return n
		} else if c < 0 {
			n = n.ch[Left]
		} else {
			n = n.ch[Right]
		}
	}
	return nil
}

// getExact finds a node whose value is Equal to v. Order-equivalent values end
// up on both sides of each other after rotations, so both subtrees of every
// order-equivalent node are searched.
// Time: O(D+k) where k is the number of values order-equivalent to v.
func getExact[T Value[T]](n *node[T], v T) *node[T] {
	for n != nil {
		c := v.Compare(n.v)
		if c < 0 {
			n = n.ch[Left]
		} else if c > 0 {
			n = n.ch[Right]
		} else if n.v.Equal(v) {
			return n
		} else if r := getExact(n.ch[Left], v); r != nil {
			return r
		} else {
			n = n.ch[Right]
		}
	}
	return nil
}

// depth recomputes the height by visiting every node.
// Time: O(n)
func (n *node[T]) depth() uint {
	if n == nil {
		return 0
	}
	return 1 + max(n.ch[Left].depth(), n.ch[Right].depth())
}

// width counts leaves, where a leaf is a node missing at least one child. Below
// a node with one child, the missing side counts as 1.
// Time: O(n)
func (n *node[T]) width() uint {
	l, r := n.ch[Left], n.ch[Right]
	if l == nil && r == nil {
		return 1
	}
	w := uint(0)
	for _, c := range n.ch {
		if c == nil {
			w++
		} else {
			w += c.width()
		}
	}
	return w
}

// Time: O(n)
func (n *node[T]) count() uint {
	if n == nil {
		return 0
	}
	return 1 + n.ch[Left].count() + n.ch[Right].count()
}

// extreme follows the s side to its end.
// Time: O(log n); Space: O(1)
func (n *node[T]) extreme(s Side) *node[T] {
	for n.ch[s] != nil {
		n = n.ch[s]
	}
	return n
}

// isBalanced checks the AVL property with true depths, ignoring the cached heights.
// Time: O(n^2) worst case
func (n *node[T]) isBalanced() bool {
	if n == nil {
		return true
	}
	l, r := n.ch[Left].depth(), n.ch[Right].depth()
	if l > r+1 || r > l+1 {
		return false
	}
	return n.ch[Left].isBalanced() && n.ch[Right].isBalanced()
}

// sanityCheck verifies every cached height against its children. A stale cache
// is detected here even if the tree is balanced.
// Time: O(n)
func (n *node[T]) sanityCheck() bool {
	if n == nil {
		return true
	}
	return n.h == 1+max(n.ch[Left].height(), n.ch[Right].height()) &&
		n.ch[Left].sanityCheck() && n.ch[Right].sanityCheck()
}

// clone deep copies the subtree, cloning every value.
func (n *node[T]) clone() *node[T] {
	if n == nil {
		return nil
	}
	return &node[T]{n.v.Clone(), [2]*node[T]{n.ch[Left].clone(), n.ch[Right].clone()}, n.h}
}

// release zeroes the subtree post-order so no value stays reachable through it.
func (n *node[T]) release() {
	if n == nil {
		return
	}
	n.ch[Left].release()
	n.ch[Right].release()
	*n = node[T]{}
}

const dumpIndent = "   "

// dump writes n as [value,left,right] with null for absent children. When
// pretty, every element starts on a new line indented by level.
func (n *node[T]) dump(b *strings.Builder, pretty bool, level int) {
	var pad string
	if pretty {
		pad = "\n" + strings.Repeat(dumpIndent, level)
	}
	b.WriteByte('[')
	b.WriteString(pad)
	b.WriteString(n.v.String())
	for _, c := range n.ch {
		b.WriteByte(',')
		b.WriteString(pad)
		if c == nil {
			b.WriteString("null")
		} else {
			c.dump(b, pretty, level+1)
		}
	}
	if pretty {
		b.WriteByte('\n')
		b.WriteString(strings.Repeat(dumpIndent, level-1))
	}
	b.WriteByte(']')
}
