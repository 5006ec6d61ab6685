// Released under an MIT license. See LICENSE.

// Package loc provides the type used to track the source of values read.
package loc

import (
	"strconv"
)

// T (loc) is a lexical location.
type T struct {
	Char int    // Character position (column).
	Line int    // Line number (row).
	Name string // Label for the source of this value.
}

type loc = T

// Start returns the location of the first character read from name.
func Start(name string) T {
	return loc{
		Char: 1,
		Line: 1,
		Name: name,
	}
}

func (l loc) String() string {
	return l.Name + ":" + strconv.Itoa(l.Line) + ":" + strconv.Itoa(l.Char)
}
