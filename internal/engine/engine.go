// Released under an MIT license. See LICENSE.

// Package engine runs the read-eval-print loop for scratch.
//
// Evaluation is the identity function: every value evaluates to itself.
package engine

import (
	"errors"
	"fmt"
	"io"

	"github.com/michaelmacinnis/scratch/internal/common/interface/cell"
	"github.com/michaelmacinnis/scratch/internal/common/struct/heap"
	"github.com/michaelmacinnis/scratch/internal/printer"
)

// Reader is the interface for sources of values.
type Reader interface {
	Read() (cell.I, error)
}

// T (engine) is a facade in front of the machinery for printing values.
type T struct {
	errors  io.Writer
	output  io.Writer
	printer *printer.T
}

// New creates a new T that prints to output and reports errors to diag.
func New(h *heap.T, output, diag io.Writer) *T {
	return &T{
		errors:  diag,
		output:  output,
		printer: printer.New(h, output, diag),
	}
}

// Eval returns the value of c.
func Eval(c cell.I) cell.I {
	return c
}

// Evaluate evaluates c and prints the result followed by a newline.
func (e *T) Evaluate(c cell.I) error {
	err := e.printer.Print(Eval(c))
	if err != nil {
		return err
	}

	_, err = io.WriteString(e.output, "\n")

	return err
}

// Report writes err to the engine's error output.
func (e *T) Report(err error) {
	fmt.Fprintln(e.errors, err.Error())
}

// Run evaluates every value from r. It stops at the end of input or at
// the first error, which is reported before it is returned.
func (e *T) Run(r Reader) error {
	for {
		c, err := r.Read()
		if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			e.Report(err)

			return err
		}

		err = e.Evaluate(c)
		if err != nil {
			e.Report(err)

			return err
		}
	}
}
