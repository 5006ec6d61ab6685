// Released under an MIT license. See LICENSE.

// Package scanner provides a rune cursor with a single rune of pushback.
//
// The scanner keeps its own lookahead instead of relying on the underlying
// reader's UnreadRune so that any io.Reader can be used as a source. It also
// tracks the line and column of the next rune for error reporting.
package scanner

import (
	"bufio"
	"errors"
	"io"
	"unicode/utf8"

	"github.com/michaelmacinnis/scratch/internal/common/struct/loc"
)

// ErrEncoding is returned by Next for bytes that are not valid UTF-8.
var ErrEncoding = errors.New("invalid UTF-8 encoding")

// T holds the state of the scanner.
type T struct {
	r io.RuneReader

	last    rune  // Most recently read rune.
	pending bool  // Has last been pushed back?
	read    bool  // Can last be pushed back?
	prev    loc.T // Location of last.
	source  loc.T // Location of the next rune.
}

type scanner = T

// New creates a new scanner for r. Name labels locations; it can be a file
// name or other identifier.
func New(name string, r io.Reader) *T {
	rr, ok := r.(io.RuneReader)
	if !ok {
		rr = bufio.NewReader(r)
	}

	return &scanner{
		r:      rr,
		source: loc.Start(name),
	}
}

// AtLineStart returns true if the next rune begins a line.
func (s *scanner) AtLineStart() bool {
	return s.source.Char == 1
}

// Last returns the location of the rune most recently returned by Next.
func (s *scanner) Last() loc.T {
	return s.prev
}

// Location returns the location of the next rune.
func (s *scanner) Location() loc.T {
	return s.source
}

// Next returns the next rune. At the end of input it returns io.EOF.
// An invalid byte is consumed, its location recorded, and ErrEncoding
// returned; it cannot be pushed back.
func (s *scanner) Next() (rune, error) {
	r := s.last

	if s.pending {
		s.pending = false
	} else {
		var (
			err  error
			size int
		)

		r, size, err = s.r.ReadRune()
		if err != nil {
			s.read = false

			return 0, err
		}

		if r == utf8.RuneError && size == 1 {
			s.prev = s.source
			s.source.Char++
			s.read = false

			return 0, ErrEncoding
		}
	}

	s.last = r
	s.prev = s.source
	s.read = true

	if r == '\n' {
		s.source.Line++
		s.source.Char = 1
	} else {
		s.source.Char++
	}

	return r, nil
}

// Peek returns the next rune without consuming it.
func (s *scanner) Peek() (rune, error) {
	r, err := s.Next()
	if err != nil {
		return 0, err
	}

	s.Unread()

	return r, nil
}

// SkipLine consumes runes up to and including the next newline.
// If input ends first it returns io.EOF.
func (s *scanner) SkipLine() error {
	for {
		r, err := s.Next()
		if err != nil {
			return err
		}

		if r == '\n' {
			return nil
		}
	}
}

// Unread pushes back the rune most recently returned by Next.
// Only one rune can be pushed back at a time.
func (s *scanner) Unread() {
	if !s.read {
		panic("unread without a preceding read")
	}

	s.pending = true
	s.read = false
	s.source = s.prev
}
