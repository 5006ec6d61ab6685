// Released under an MIT license. See LICENSE.

// Package fixnum provides scratch's integer type.
package fixnum

import (
	"strconv"

	"github.com/michaelmacinnis/scratch/internal/common"
	"github.com/michaelmacinnis/scratch/internal/common/interface/cell"
	"github.com/michaelmacinnis/scratch/internal/common/interface/literal"
)

const name = "integer"

// T (fixnum) wraps Go's int64 type.
type T int64

type fixnum = T

// New creates a new fixnum cell from the integer i.
func New(i int64) cell.I {
	n := fixnum(i)

	return &n
}

// Parse creates a new fixnum from the base-10 text s. The whole of s,
// including an optional leading sign, must be a valid integer.
func Parse(s string) (cell.I, error) {
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, err
	}

	return New(i), nil
}

// Equal returns true if c is a fixnum with the same value as n.
func (n *fixnum) Equal(c cell.I) bool {
	return Is(c) && n.Int() == To(c).Int()
}

// Int returns the value of the fixnum n.
func (n *fixnum) Int() int64 {
	return int64(*n)
}

// Literal returns the literal representation of the fixnum n.
func (n *fixnum) Literal() string {
	return n.String()
}

// Name returns the type name for the fixnum n.
func (n *fixnum) Name() string {
	return name
}

// String returns the text of the fixnum n.
func (n *fixnum) String() string {
	return strconv.FormatInt(n.Int(), 10)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t fixnum

	// The fixnum type is a cell.
	_ = cell.I(&t)

	// The fixnum type has a literal representation.
	_ = literal.I(&t)

	// The fixnum type is a stringer.
	_ = common.Stringer(&t)
}
