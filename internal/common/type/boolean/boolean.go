// Released under an MIT license. See LICENSE.

// Package boolean provides scratch's boolean value type.
package boolean

import (
	"github.com/michaelmacinnis/scratch/internal/common"
	"github.com/michaelmacinnis/scratch/internal/common/interface/cell"
	"github.com/michaelmacinnis/scratch/internal/common/interface/literal"
)

const name = "boolean"

// T (boolean) wraps Go's bool type.
type T bool

type boolean = T

// New creates a new boolean. Readers never call New; they share the two
// booleans held by a heap.
func New(b bool) *T {
	v := boolean(b)

	return &v
}

// Bool returns the boolean value of the boolean b.
func (b *boolean) Bool() bool {
	return bool(*b)
}

// Equal returns true if c is a boolean with a matching value.
func (b *boolean) Equal(c cell.I) bool {
	return Is(c) && b.Bool() == To(c).Bool()
}

// Literal returns the literal representation of the boolean b.
func (b *boolean) Literal() string {
	return b.String()
}

// Name returns the type name for the boolean b.
func (b *boolean) Name() string {
	return name
}

// String returns the text of the boolean b.
func (b *boolean) String() string {
	if bool(*b) {
		return "#t"
	}

	return "#f"
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t boolean

	// The boolean type is a cell.
	_ = cell.I(&t)

	// The boolean type has a literal representation.
	_ = literal.I(&t)

	// The boolean type is a stringer.
	_ = common.Stringer(&t)
}
