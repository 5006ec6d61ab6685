// Released under an MIT license. See LICENSE.

// Package heap holds the values shared by every reader and printer that
// work together: the two booleans, the empty list and the symbol table.
//
// A program creates one heap at startup and passes it to each reader and
// printer. Values from different heaps must not be mixed; singletons are
// compared by identity.
package heap

import (
	"github.com/michaelmacinnis/scratch/internal/common/interface/cell"
	"github.com/michaelmacinnis/scratch/internal/common/type/boolean"
	"github.com/michaelmacinnis/scratch/internal/common/type/list"
	"github.com/michaelmacinnis/scratch/internal/common/type/null"
	"github.com/michaelmacinnis/scratch/internal/common/type/sym"
)

// T (heap) is the shared state for reading and printing.
type T struct {
	f       *boolean.T
	t       *boolean.T
	null    *null.T
	quote   *sym.T
	symbols *sym.Table
}

type heap = T

// New creates a heap with fresh singletons and an empty symbol table.
func New() *T {
	h := &heap{
		f:       boolean.New(false),
		t:       boolean.New(true),
		null:    null.New(),
		symbols: sym.NewTable(),
	}

	h.quote = h.symbols.Intern("quote")

	return h
}

// Bool returns the boolean singleton for b.
func (h *heap) Bool(b bool) *boolean.T {
	if b {
		return h.t
	}

	return h.f
}

// False returns the false singleton.
func (h *heap) False() *boolean.T {
	return h.f
}

// Intern returns the symbol named name.
func (h *heap) Intern(name string) *sym.T {
	return h.symbols.Intern(name)
}

// List creates a proper list of elements.
func (h *heap) List(elements ...cell.I) cell.I {
	return list.New(h.null, elements...)
}

// Null returns the empty list singleton.
func (h *heap) Null() *null.T {
	return h.null
}

// Quote returns the symbol quote.
func (h *heap) Quote() *sym.T {
	return h.quote
}

// Symbols returns the heap's symbol table.
func (h *heap) Symbols() *sym.Table {
	return h.symbols
}

// True returns the true singleton.
func (h *heap) True() *boolean.T {
	return h.t
}
