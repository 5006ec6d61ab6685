// Released under an MIT license. See LICENSE.

// Package printer writes scratch values in their canonical textual form.
package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/michaelmacinnis/scratch/internal/common/interface/cell"
	"github.com/michaelmacinnis/scratch/internal/common/struct/heap"
	"github.com/michaelmacinnis/scratch/internal/common/type/boolean"
	"github.com/michaelmacinnis/scratch/internal/common/type/char"
	"github.com/michaelmacinnis/scratch/internal/common/type/fixnum"
	"github.com/michaelmacinnis/scratch/internal/common/type/null"
	"github.com/michaelmacinnis/scratch/internal/common/type/pair"
	"github.com/michaelmacinnis/scratch/internal/common/type/str"
	"github.com/michaelmacinnis/scratch/internal/common/type/sym"
)

// T (printer) writes values to an output.
type T struct {
	diag io.Writer
	heap *heap.T
	w    io.Writer
}

type printer = T

// New creates a printer that writes values to w. The heap h must be the
// heap the values were read with. Values that cannot be printed are
// reported on diag.
func New(h *heap.T, w, diag io.Writer) *T {
	return &printer{
		diag: diag,
		heap: h,
		w:    w,
	}
}

// String returns the canonical form of c, or the empty string if c cannot
// be printed.
func String(h *heap.T, c cell.I) string {
	var b strings.Builder

	_ = New(h, &b, io.Discard).Print(c)

	return b.String()
}

// Print writes the canonical form of c. If c, or any value it contains,
// cannot be printed the problem is reported and nothing is written.
// The only errors returned are those from the output.
func (p *printer) Print(c cell.I) error {
	var b strings.Builder

	if !p.print(&b, c) {
		return nil
	}

	_, err := io.WriteString(p.w, b.String())

	return err
}

func (p *printer) print(b *strings.Builder, c cell.I) bool {
	if missing(c) {
		p.report("cannot print nil value")

		return false
	}

	switch v := c.(type) {
	case *boolean.T:
		b.WriteString(v.Literal())
	case *char.T:
		b.WriteString(v.Literal())
	case *fixnum.T:
		b.WriteString(v.Literal())
	case *null.T:
		b.WriteString(v.Literal())
	case *pair.T:
		if p.quoted(v) {
			return p.print(b, pair.Cadr(v))
		}

		return p.pair(b, v)
	case *str.T:
		b.WriteString(v.Literal())
	case *sym.T:
		b.WriteString(v.Literal())
	default:
		p.report(fmt.Sprintf("cannot print value of unknown type %T", c))

		return false
	}

	return true
}

func (p *printer) pair(b *strings.Builder, v *pair.T) bool {
	b.WriteByte('(')

	if !p.print(b, pair.Car(v)) {
		return false
	}

	tail := pair.Cdr(v)
	for pair.Is(tail) && !missing(tail) {
		b.WriteByte(' ')

		if !p.print(b, pair.Car(tail)) {
			return false
		}

		tail = pair.Cdr(tail)
	}

	if tail != p.heap.Null() {
		b.WriteString(" . ")

		if !p.print(b, tail) {
			return false
		}
	}

	b.WriteByte(')')

	return true
}

// missing returns true if c is nil or a nil pointer to a known type.
func missing(c cell.I) bool {
	switch v := c.(type) {
	case nil:
		return true
	case *boolean.T:
		return v == nil
	case *char.T:
		return v == nil
	case *fixnum.T:
		return v == nil
	case *null.T:
		return v == nil
	case *pair.T:
		return v == nil
	case *str.T:
		return v == nil
	case *sym.T:
		return v == nil
	}

	return false
}

// quoted returns true if v is a list that starts with the symbol quote.
func (p *printer) quoted(v *pair.T) bool {
	cdr := pair.Cdr(v)

	return pair.Car(v) == p.heap.Quote() && pair.Is(cdr) && !missing(cdr)
}

func (p *printer) report(msg string) {
	fmt.Fprintln(p.diag, "printer: "+msg)
}
