package Trees

import (
	"bytes"
	"encoding/json"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Value is what an AVLTree stores. T is normally the implementing type itself.
//
// Compare places values: it returns a negative number, zero or a positive
// number when the receiver is less than, order-equivalent to or greater than
// the argument. Compare may look at only part of the payload (a key), in which
// case Equal tells two order-equivalent values apart.
// Clone is called whenever a value is copied into the tree or out of it as a
// query result. String is the textual form embedded by Dump, verbatim.
type Value[T any] interface {
	fmt.Stringer
	Compare(T) int
	Equal(T) bool
	Clone() T
}

// Ordered adapts any built-in ordered type to Value. Order and equality are
// the same relation, so removals never mismatch.
// NaN must not be stored in a float Ordered: it is order-equivalent to
// everything and Equal to nothing, which breaks the ordering of the tree.
type Ordered[O constraints.Ordered] struct {
	V O
}

// Wrap v.
func Wrap[O constraints.Ordered](v O) Ordered[O] {
	return Ordered[O]{v}
}

// WrapAll wraps every element of vs.
func WrapAll[O constraints.Ordered](vs ...O) []Ordered[O] {
	r := make([]Ordered[O], len(vs))
	for i, v := range vs {
		r[i] = Ordered[O]{v}
	}
	return r
}

func (u Ordered[O]) Compare(o Ordered[O]) int {
	if u.V < o.V {
		return -1
	} else if o.V < u.V {
		return 1
	}
	return 0
}

func (u Ordered[O]) Equal(o Ordered[O]) bool {
	return u.V == o.V
}

func (u Ordered[O]) Clone() Ordered[O] {
	return u
}

// String writes strings as JSON strings so that a dump of an Ordered[string]
// tree is valid JSON. Everything else is printed with %v.
func (u Ordered[O]) String() string {
	if s, ok := any(u.V).(string); ok {
		var b bytes.Buffer
		enc := json.NewEncoder(&b)
		enc.SetEscapeHTML(false)
		// a string always encodes; invalid UTF-8 becomes U+FFFD
		_ = enc.Encode(s)
		return string(bytes.TrimSuffix(b.Bytes(), []byte{'\n'}))
	}
	return fmt.Sprint(u.V)
}
