// Released under an MIT license. See LICENSE.

// Package sym provides scratch's symbol type.
//
// Symbols are interned. A Table holds at most one symbol per name so two
// symbols are equal only if they are the same symbol.
package sym

import (
	"github.com/michaelmacinnis/scratch/internal/common"
	"github.com/michaelmacinnis/scratch/internal/common/interface/cell"
	"github.com/michaelmacinnis/scratch/internal/common/interface/literal"
)

const name = "symbol"

// T (sym) is an interned name. Only a Table creates syms.
type T struct {
	name string
}

type sym = T

// Equal returns true if c is the same sym as s.
func (s *sym) Equal(c cell.I) bool {
	return Is(c) && To(c) == s
}

// Literal returns the literal representation of the sym s.
func (s *sym) Literal() string {
	return s.name
}

// Name returns the type name for the sym s.
func (s *sym) Name() string {
	return name
}

// String returns the text of the sym s.
func (s *sym) String() string {
	return s.name
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t sym

	// The sym type is a cell.
	_ = cell.I(&t)

	// The sym type has a literal representation.
	_ = literal.I(&t)

	// The sym type is a stringer.
	_ = common.Stringer(&t)
}
