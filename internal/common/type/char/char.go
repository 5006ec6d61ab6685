// Released under an MIT license. See LICENSE.

// Package char provides scratch's character type.
package char

import (
	"github.com/michaelmacinnis/scratch/internal/common"
	"github.com/michaelmacinnis/scratch/internal/common/interface/cell"
	"github.com/michaelmacinnis/scratch/internal/common/interface/literal"
)

const name = "character"

// T (char) wraps Go's rune type.
type T rune

type char = T

//nolint:gochecknoglobals
var (
	named = map[string]rune{
		"newline": '\n',
		"space":   ' ',
	}
	spelled = map[rune]string{
		'\n': "newline",
		' ':  "space",
	}
)

// New creates a new char cell.
func New(r rune) cell.I {
	c := char(r)

	return &c
}

// Named returns the character with the reserved spelling s, if there is one.
func Named(s string) (rune, bool) {
	r, ok := named[s]

	return r, ok
}

// Spelling returns the reserved spelling for r, if there is one.
func Spelling(r rune) (string, bool) {
	s, ok := spelled[r]

	return s, ok
}

// Equal returns true if c is a char with the same rune as ch.
func (ch *char) Equal(c cell.I) bool {
	return Is(c) && ch.Rune() == To(c).Rune()
}

// Literal returns the literal representation of the char ch.
func (ch *char) Literal() string {
	if s, ok := Spelling(ch.Rune()); ok {
		return `#\` + s
	}

	return `#\` + ch.String()
}

// Name returns the name of the char type.
func (ch *char) Name() string {
	return name
}

// Rune returns the rune wrapped by ch.
func (ch *char) Rune() rune {
	return rune(*ch)
}

// String returns the character ch as a string.
func (ch *char) String() string {
	return string(*ch)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t char

	// The char type is a cell.
	_ = cell.I(&t)

	// The char type has a literal representation.
	_ = literal.I(&t)

	// The char type is a stringer.
	_ = common.Stringer(&t)
}
