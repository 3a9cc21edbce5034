package Trees

import (
	"fmt"
	"io"
	"strings"
)

// AVLTree is a binary search tree that keeps, at every node, the heights of the
// two subtrees within 1 of each other, so D, the height of the tree, is less
// than 1.44*log2(n+2). Each node caches the height of its subtree.
// Values are placed with Value.Compare and order-equivalent values are allowed;
// they accumulate on the left of their equal ancestor. Lookups stop at the first
// order-equivalent node on the search path, so with a Compare that only looks
// at a key, Get returns whichever record with that key is met first.
// The zero value is an empty tree ready to use.
// An AVLTree is not safe for concurrent use; guard it with a mutex if needed.
type AVLTree[T Value[T]] struct {
	root *node[T]
}

// New returns an empty AVLTree.
func New[T Value[T]]() *AVLTree[T] {
	return &AVLTree[T]{}
}

// With returns an AVLTree holding a clone of v.
func With[T Value[T]](v T) *AVLTree[T] {
	return &AVLTree[T]{newNode(v)}
}

// From returns an AVLTree with every element of vs inserted in order.
func From[T Value[T]](vs ...T) *AVLTree[T] {
	u := New[T]()
	for _, v := range vs {
		u.Insert(v)
	}
	return u
}

// Insert [Tree.Insert]. Recursive.
// A clone of v is stored. Equal values are accepted, so it always returns true.
// Time: O(D)
func (u *AVLTree[T]) Insert(v T) bool {
	return insert(&u.root, v)
}

// InsertUnique inserts v unless a value Equal to it is already in the tree,
// in which case it returns ErrDuplicateInsert and leaves the tree untouched.
// Time: O(D+k) where k is the number of values order-equivalent to v.
func (u *AVLTree[T]) InsertUnique(v T) error {
	if u.ContainsExact(v) {
		return fmt.Errorf("insert %v: %w", v, ErrDuplicateInsert)
	}
	insert(&u.root, v)
	return nil
}

// Remove [Tree.Remove]. Recursive.
// The first order-equivalent value on the search path is removed and returned.
// If it isn't Equal to v the error wraps ErrMismatchedRemoval and the tree is
// still modified: callers whose Compare is a partial key should Get the exact
// value first.
// Time: O(D)
func (u *AVLTree[T]) Remove(v T) (T, error) {
	if u.root == nil {
		var zero T
		return zero, ErrEmptyTree
	}
	old, found := remove(&u.root, v)
	if !found {
		return old, fmt.Errorf("remove %v: %w", v, ErrNotFound)
	}
	if !old.Equal(v) {
		return old, fmt.Errorf("remove %v, got %v: %w", v, old, ErrMismatchedRemoval)
	}
	return old, nil
}

// Clear the tree. It stays usable.
// Time: O(1)
func (u *AVLTree[T]) Clear() {
	u.root = nil
}

// Delete every node, zeroing each of them, and leave u empty.
// Time: O(n)
func (u *AVLTree[T]) Delete() {
	u.root.release()
	u.root = nil
}

// Get a clone of the first value order-equivalent to v.
// Time: O(D); Space: O(1)
func (u *AVLTree[T]) Get(v T) (T, bool) {
	if n := get(u.root, v); n != nil {
		return n.v.Clone(), true
	}
	var zero T
	return zero, false
}

// Find returns a copy of the subtree rooted at the first value order-equivalent
// to v. The copy is independent of u.
// Time: O(D+m) where m is the size of the subtree.
func (u *AVLTree[T]) Find(v T) (*AVLTree[T], error) {
	n := get(u.root, v)
	if n == nil {
		return nil, fmt.Errorf("find %v: %w", v, ErrNotFound)
	}
	return &AVLTree[T]{n.clone()}, nil
}

// Contains [Tree.Contains]
// Order only.
// Time: O(D); Space: O(1)
func (u *AVLTree[T]) Contains(v T) bool {
	return get(u.root, v) != nil
}

// ContainsExact reports whether a value Equal to v is in the tree, looking at
// every order-equivalent value, not only the first one.
// Time: O(D+k) where k is the number of values order-equivalent to v.
func (u *AVLTree[T]) ContainsExact(v T) bool {
	return getExact(u.root, v) != nil
}

func (u *AVLTree[T]) IsEmpty() bool {
	return u.root == nil
}

// Height [Tree.Height]
// Read from the cache at the root, which is only as good as IsCorrect.
// Time: O(1); Space: O(1)
func (u *AVLTree[T]) Height() uint {
	return u.root.height()
}

// Depth [Tree.Depth]. Recursive.
// Time: O(n)
func (u *AVLTree[T]) Depth() uint {
	return u.root.depth()
}

// Width [Tree.Width]. Recursive.
// Time: O(n)
func (u *AVLTree[T]) Width() uint {
	if u.root == nil {
		return 0
	}
	return u.root.width()
}

// Count [Tree.Count]. Recursive.
// Time: O(n)
func (u *AVLTree[T]) Count() uint {
	return u.root.count()
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *AVLTree[T]) Minimum() (T, bool) {
	return u.extreme(Left)
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *AVLTree[T]) Maximum() (T, bool) {
	return u.extreme(Right)
}

func (u *AVLTree[T]) extreme(s Side) (T, bool) {
	if u.root == nil {
		var zero T
		return zero, false
	}
	return u.root.extreme(s).v.Clone(), true
}

// IsBalanced [Tree.IsBalanced]. Recursive.
// Time: O(n log n)
func (u *AVLTree[T]) IsBalanced() bool {
	return u.root.isBalanced()
}

// IsCorrect [Tree.IsCorrect]. Recursive.
// Time: O(n)
func (u *AVLTree[T]) IsCorrect() bool {
	return u.root.sanityCheck()
}

// Dump the tree as nested arrays [value,left,right], absent children being
// null. Values are written with their String method as they are; use a String
// that produces valid JSON to get JSON out. pretty puts each element on its
// own line, indented by 3 spaces per level.
func (u *AVLTree[T]) Dump(pretty bool) (string, error) {
	if u.root == nil {
		return "", ErrEmptyTree
	}
	var b strings.Builder
	u.root.dump(&b, pretty, 1)
	return b.String(), nil
}

// Print the Dump followed by a newline to w.
func (u *AVLTree[T]) Print(w io.Writer, pretty bool) error {
	s, err := u.Dump(pretty)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, s)
	return err
}
