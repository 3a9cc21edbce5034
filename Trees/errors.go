package Trees

import "errors"

var (
	// ErrEmptyTree is returned by operations that need at least one node.
	ErrEmptyTree = errors.New("tree has no node")
	// ErrNotFound is returned when no order-equivalent value is in the tree.
	ErrNotFound = errors.New("value not found")
	// ErrDuplicateInsert is returned by AVLTree.InsertUnique when a value Equal
	// to the inserted one is already present anywhere among its order-equivalents.
	ErrDuplicateInsert = errors.New("value already present")
	// ErrMismatchedRemoval means the removed value was order-equivalent to the
	// requested one but not Equal to it. The removal has still happened.
	ErrMismatchedRemoval = errors.New("removed value is not the requested one")
)
