// Released under an MIT license. See LICENSE.

// Package reader converts text into scratch values.
//
// The reader is a hand-written recursive-descent parser with the lexer
// fused in. Each call to Read consumes exactly one value from its source.
package reader

import (
	"errors"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/michaelmacinnis/scratch/internal/common/interface/cell"
	"github.com/michaelmacinnis/scratch/internal/common/struct/heap"
	"github.com/michaelmacinnis/scratch/internal/common/struct/loc"
	"github.com/michaelmacinnis/scratch/internal/common/type/char"
	"github.com/michaelmacinnis/scratch/internal/common/type/fixnum"
	"github.com/michaelmacinnis/scratch/internal/common/type/list"
	"github.com/michaelmacinnis/scratch/internal/common/type/str"
	"github.com/michaelmacinnis/scratch/internal/reader/scanner"
)

// T (reader) reads values from a source.
type T struct {
	depth int
	heap  *heap.T
	limit int
	s     *scanner.T
}

type reader = T

// Option configures a reader.
type Option func(*T)

// MaxDepth limits the nesting of lists and quoted values to n levels.
// Zero, the default, means no limit.
func MaxDepth(n int) Option {
	return func(r *T) {
		r.limit = n
	}
}

// New creates a new reader for r. Symbols are interned in, and singletons
// taken from, the heap h. Name labels error locations.
func New(h *heap.T, name string, r io.Reader, opts ...Option) *T {
	rd := &reader{
		heap: h,
		s:    scanner.New(name, r),
	}

	for _, opt := range opts {
		opt(rd)
	}

	return rd
}

// Discard drops the rest of the current line. After a syntax error this
// lets an interactive caller resume reading at the next line.
func (r *reader) Discard() error {
	if r.s.AtLineStart() {
		return nil
	}

	err := r.s.SkipLine()
	if errors.Is(err, io.EOF) {
		return nil
	}

	return err
}

// Location returns the location of the next character to be read.
func (r *reader) Location() loc.T {
	return r.s.Location()
}

// Read returns the next value. At the end of input it returns io.EOF.
// Any other error aborts the read; no partial value is returned.
func (r *reader) Read() (cell.I, error) {
	r.depth = 0

	return r.read()
}

func (r *reader) read() (cell.I, error) {
	err := r.skip()
	if err != nil {
		return nil, err
	}

	at := r.s.Location()

	c, err := r.next()
	if err != nil {
		return nil, err
	}

	switch {
	case c == '(':
		return r.list(at)
	case c == '#':
		return r.hash(at)
	case c == '"':
		return r.string(at)
	case c == '\'':
		return r.quote(at)
	case c == '-' || c == '+' || isDigit(c):
		return r.integer(at, c)
	case isSymbolic(c):
		return r.symbol(c)
	}

	return nil, r.syntax(at, "unexpected character", string(c))
}

func (r *reader) character(at loc.T) (cell.I, error) {
	c, err := r.next()
	if err != nil {
		return nil, r.failed(at, "incomplete character", err)
	}

	if c == ' ' || c == '\n' {
		return char.New(c), nil
	}

	if !unicode.IsLetter(c) {
		return nil, r.syntax(at, "invalid character", `#\`+string(c))
	}

	s, err := r.token(c)
	if err != nil {
		return nil, err
	}

	if utf8.RuneCountInString(s) == 1 {
		return char.New(c), nil
	}

	if v, ok := char.Named(s); ok {
		return char.New(v), nil
	}

	return nil, r.syntax(at, "unknown character name", `#\`+s)
}

// comment consumes the rest of a comment, including the newline ending it.
func (r *reader) comment() error {
	for {
		c, err := r.next()
		if err != nil {
			return err
		}

		if c == '\n' {
			return nil
		}
	}
}

func (r *reader) enter(at loc.T) error {
	r.depth++

	if r.limit > 0 && r.depth > r.limit {
		return r.syntax(at, "nesting too deep", "")
	}

	return nil
}

func (r *reader) hash(at loc.T) (cell.I, error) {
	c, err := r.next()
	if err != nil {
		return nil, r.failed(at, "incomplete # syntax", err)
	}

	switch c {
	case 't':
		return r.heap.True(), nil
	case 'f':
		return r.heap.False(), nil
	case '\\':
		return r.character(at)
	}

	return nil, r.syntax(at, "unknown # syntax", "#"+string(c))
}

func (r *reader) integer(at loc.T, first rune) (cell.I, error) {
	s, err := r.token(first)
	if err != nil {
		return nil, err
	}

	n, err := fixnum.Parse(s)
	if err != nil {
		return nil, &SyntaxError{
			Err:    err,
			Reason: "invalid integer",
			Source: at,
			Text:   s,
		}
	}

	return n, nil
}

func (r *reader) leave() {
	r.depth--
}

func (r *reader) list(at loc.T) (cell.I, error) {
	const unterminated = "unterminated list"

	err := r.enter(at)
	if err != nil {
		return nil, err
	}
	defer r.leave()

	var elements []cell.I

	for {
		c, err := r.significant()
		if err != nil {
			return nil, r.failed(at, unterminated, err)
		}

		if c == ')' {
			return list.New(r.heap.Null(), elements...), nil
		}

		r.s.Unread()

		car, err := r.read()
		if err != nil {
			return nil, r.failed(at, unterminated, err)
		}

		elements = append(elements, car)

		c, err = r.significant()
		if err != nil {
			return nil, r.failed(at, unterminated, err)
		}

		if c != '.' {
			r.s.Unread()

			continue
		}

		dot := r.s.Last()

		c, err = r.next()
		if err != nil {
			return nil, r.failed(at, unterminated, err)
		}

		if !isSpace(c) {
			return nil, r.syntax(dot, "dot must be followed by space", "."+string(c))
		}

		cdr, err := r.read()
		if err != nil {
			return nil, r.failed(at, unterminated, err)
		}

		c, err = r.significant()
		if err != nil {
			return nil, r.failed(at, unterminated, err)
		}

		if c != ')' {
			return nil, r.syntax(r.s.Last(), "pair must end with ')'", string(c))
		}

		return list.New(cdr, elements...), nil
	}
}

func (r *reader) quote(at loc.T) (cell.I, error) {
	err := r.enter(at)
	if err != nil {
		return nil, err
	}
	defer r.leave()

	c, err := r.read()
	if err != nil {
		return nil, r.failed(at, "nothing to quote", err)
	}

	return r.heap.List(r.heap.Quote(), c), nil
}

// significant skips whitespace and comments and returns the next rune.
func (r *reader) significant() (rune, error) {
	err := r.skip()
	if err != nil {
		return 0, err
	}

	return r.next()
}

// skip consumes whitespace and comments leaving the next rune unread.
func (r *reader) skip() error {
	for {
		c, err := r.next()
		if err != nil {
			return err
		}

		switch {
		case c == ';':
			err = r.comment()
			if err != nil {
				return err
			}
		case isSpace(c):
		default:
			r.s.Unread()

			return nil
		}
	}
}

func (r *reader) string(at loc.T) (cell.I, error) {
	var b strings.Builder

	for {
		c, err := r.next()
		if err != nil {
			return nil, r.failed(at, "unterminated string", err)
		}

		if c == '"' {
			return str.New(b.String()), nil
		}

		b.WriteRune(c)
	}
}

func (r *reader) symbol(first rune) (cell.I, error) {
	var b strings.Builder

	b.WriteRune(first)

	for {
		c, err := r.next()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, err
		}

		if !isSymbolic(c) {
			r.s.Unread()

			break
		}

		b.WriteRune(c)
	}

	return r.heap.Intern(b.String()), nil
}

// token accumulates runes, starting with first, up to the next delimiter.
// The delimiter is left unread.
func (r *reader) token(first rune) (string, error) {
	var b strings.Builder

	b.WriteRune(first)

	for {
		c, err := r.next()
		if errors.Is(err, io.EOF) {
			return b.String(), nil
		} else if err != nil {
			return "", err
		}

		if isDelimiter(c) {
			r.s.Unread()

			return b.String(), nil
		}

		b.WriteRune(c)
	}
}

// Helper functions.

func isDelimiter(c rune) bool {
	return isSpace(c) || c == ')' || c == ';'
}

func isDigit(c rune) bool {
	return '0' <= c && c <= '9'
}

func isSpace(c rune) bool {
	return unicode.IsSpace(c)
}

func isSymbolic(c rune) bool {
	return c == '_' || unicode.IsLetter(c)
}
