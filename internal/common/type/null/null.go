// Released under an MIT license. See LICENSE.

// Package null provides the empty list.
package null

import (
	"github.com/michaelmacinnis/scratch/internal/common/interface/cell"
	"github.com/michaelmacinnis/scratch/internal/common/interface/literal"
)

const name = "null"

// T (null) is the empty list. It also marks the end of a proper list.
type T struct {
	_ byte // Distinct instances must have distinct addresses.
}

type null = T

// New creates an empty list. Readers never call New; they share the
// empty list held by a heap.
func New() *T {
	return &null{}
}

// Equal returns true if c is the same empty list as n.
func (n *null) Equal(c cell.I) bool {
	return Is(c) && To(c) == n
}

// Literal returns the literal representation of the empty list.
func (n *null) Literal() string {
	return "()"
}

// Name returns the type name for the empty list.
func (n *null) Name() string {
	return name
}

// String returns the text of the empty list.
func (n *null) String() string {
	return n.Literal()
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t null

	// The null type is a cell.
	_ = cell.I(&t)

	// The null type has a literal representation.
	_ = literal.I(&t)
}
