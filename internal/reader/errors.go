// Released under an MIT license. See LICENSE.

package reader

import (
	"errors"
	"fmt"
	"io"

	"github.com/michaelmacinnis/adapted"
	"github.com/michaelmacinnis/scratch/internal/common/struct/loc"
	"github.com/michaelmacinnis/scratch/internal/reader/scanner"
)

// ErrSyntax is matched, using errors.Is, by every *SyntaxError.
var ErrSyntax = errors.New("syntax error")

// SyntaxError describes malformed input.
type SyntaxError struct {
	Err    error  // Underlying cause, if any.
	Reason string // What was wrong.
	Source loc.T  // Where the offending value starts.
	Text   string // The offending text, if any.
}

func (e *SyntaxError) Error() string {
	s := e.Source.String() + ": " + e.Reason

	if e.Text != "" {
		s += ": " + adapted.CanonicalString(e.Text)
	}

	if e.Err != nil {
		s += " (" + e.Err.Error() + ")"
	}

	return s
}

// Is reports whether target is ErrSyntax.
func (e *SyntaxError) Is(target error) bool {
	return target == ErrSyntax
}

// Unwrap returns the underlying cause.
func (e *SyntaxError) Unwrap() error {
	return e.Err
}

func (r *reader) syntax(at loc.T, reason, text string) error {
	return &SyntaxError{
		Reason: reason,
		Source: at,
		Text:   text,
	}
}

// failed converts an error encountered while reading the value that starts
// at at into the error returned to the caller. End of input is unexpected
// once a value has started.
func (r *reader) failed(at loc.T, reason string, err error) error {
	if errors.Is(err, io.EOF) {
		return &SyntaxError{
			Err:    io.ErrUnexpectedEOF,
			Reason: reason,
			Source: at,
		}
	}

	return err
}

// next returns the next rune. Invalid encoding is a syntax error. Other
// errors, except io.EOF, are annotated with the current location.
func (r *reader) next() (rune, error) {
	c, err := r.s.Next()
	if errors.Is(err, scanner.ErrEncoding) {
		return 0, &SyntaxError{
			Err:    err,
			Reason: "invalid character encoding",
			Source: r.s.Last(),
		}
	} else if err != nil && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("reading %s: %w", r.s.Location(), err)
	}

	return c, err
}
