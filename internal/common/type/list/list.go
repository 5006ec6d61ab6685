// Released under an MIT license. See LICENSE.

// Package list provides common list operations. A list is not a true type.
// Lists are more of a type by convention. They are composed of cons cells
// and end with a terminator, the empty list for a proper list.
package list

import (
	"github.com/michaelmacinnis/scratch/internal/common/interface/cell"
	"github.com/michaelmacinnis/scratch/internal/common/type/pair"
)

// Length returns the number of pairs in the spine of list.
// The list must be non-circular.
func Length(list cell.I) int64 {
	var length int64

	for pair.Is(list) {
		length++

		list = pair.Cdr(list)
	}

	return length
}

// New creates a new list composed of all of the elements in elements.
// The cdr of the last pair is end.
func New(end cell.I, elements ...cell.I) cell.I {
	if len(elements) == 0 {
		return end
	}

	start := pair.Cons(elements[0], end)
	last := start

	for _, e := range elements[1:] {
		p := pair.Cons(e, end)
		pair.SetCdr(last, p)
		last = p
	}

	return start
}

// Terminator returns the value that ends the spine of list. This is the
// empty list for a proper list.
// The list must be non-circular.
func Terminator(list cell.I) cell.I {
	for pair.Is(list) {
		list = pair.Cdr(list)
	}

	return list
}
