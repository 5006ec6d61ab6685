// Released under an MIT license. See LICENSE.

// Package literal defines the interface for scratch types that can be
// written as literals.
package literal

import (
	"github.com/michaelmacinnis/scratch/internal/common/interface/cell"
)

// I (literal) is any type that can be expressed as a literal.
type I interface {
	Literal() string
}

// String returns the literal representation of c, if it has one.
func String(c cell.I) (string, bool) {
	l, ok := c.(I)
	if !ok {
		return "", false
	}

	return l.Literal(), true
}
