package Trees

// Tree represents an ordered container implemented using nodes.
// Receivers that have a bool as the second return value indicate whether
// the first return value is defined. For example, calling Minimum on an
// empty tree returns (x T, false), and x is the zero value of T and
// shouldn't be used.
// Values are compared with Value.Compare for placement and lookups; Equal is
// only used where a receiver says "exact". Methods implemented recursively
// are noted, otherwise they are implemented iteratively.
type Tree[T Value[T]] interface {
	//Insert v to the Tree. Returning true if successful, false otherwise.
	//Exact behavior depend on implementation.
	Insert(v T) bool
	//Remove v from the Tree, returning the value actually removed. The error
	//reports an empty tree, a missing value, or a removed value that isn't
	//Equal to v.
	Remove(v T) (T, error)
	//Get the value order-equivalent to v.
	Get(v T) (T, bool)
	//Contains a value order-equivalent to v.
	Contains(v T) bool
	//ContainsExact a value Equal to v.
	ContainsExact(v T) bool
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//Count of the values in the tree.
	Count() uint
	//Height of the tree as recorded by the nodes; 0 when empty.
	Height() uint
	//Depth of the tree found by visiting every node. It equals Height
	//unless the recorded heights are corrupt.
	Depth() uint
	//Width is the number of nodes missing at least one child.
	Width() uint
	//IsBalanced reports whether the balancing property of that specific
	//implementation holds at every node.
	IsBalanced() bool
	//IsCorrect returns whether the bookkeeping stored in the nodes is
	//consistent. This is to be distinguished from whether the tree is
	//balanced or not.
	IsCorrect() bool
	//Clear the tree.
	Clear()
}

var _ Tree[Ordered[int]] = (*AVLTree[Ordered[int]])(nil)
