// Released under an MIT license. See LICENSE.

// Package ui provides an interactive command-line interface for scratch.
package ui

import (
	"errors"
	"io"

	"github.com/michaelmacinnis/scratch/internal/common/interface/cell"
	"github.com/michaelmacinnis/scratch/internal/common/struct/heap"
	"github.com/michaelmacinnis/scratch/internal/reader"
	"github.com/michaelmacinnis/scratch/internal/system/history"
	"github.com/peterh/liner"
)

const (
	primary   = "> "
	secondary = ". "
)

// ErrInterrupted is returned by Read when the user presses Ctrl-C.
var ErrInterrupted = liner.ErrPromptAborted //nolint:gochecknoglobals

// Evaluator is the interface for things that want to process values read.
type Evaluator interface {
	Evaluate(c cell.I) error
	Report(err error)
}

type prompter interface {
	AppendHistory(item string)
	Prompt(p string) (string, error)
}

// input adapts line-at-a-time prompting to an io.Reader.
type input struct {
	buffer    []byte
	continued bool // Is a value partially read?
	prompter
}

// Read fills p from the current line, prompting for a new line when the
// current line has been consumed.
func (i *input) Read(p []byte) (int, error) {
	for len(i.buffer) == 0 {
		prompt := primary
		if i.continued {
			prompt = secondary
		}

		line, err := i.Prompt(prompt)
		if err != nil {
			i.continued = false

			return 0, err
		}

		i.AppendHistory(line)

		i.buffer = append([]byte(line), '\n')
		i.continued = true
	}

	n := copy(p, i.buffer)
	i.buffer = i.buffer[n:]

	return n, nil
}

// Run launches the UI which reads values, with a reader limited to depth
// levels of nesting, and sends them to the Evaluator. At the end of input
// a newline is written to output so the shell prompt starts a fresh line.
func Run(h *heap.T, e Evaluator, output io.Writer, depth int) error {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)

	err := history.Load(cli.ReadHistory)
	if err != nil {
		e.Report(err)
	}

	err = run(h, e, &input{prompter: cli}, output, depth)

	if herr := history.Save(cli.WriteHistory); herr != nil {
		e.Report(herr)
	}

	return err
}

func run(h *heap.T, e Evaluator, i *input, output io.Writer, depth int) error {
	r := reader.New(h, "stdin", i, reader.MaxDepth(depth))

	for {
		i.continued = false

		c, err := r.Read()

		switch {
		case err == nil:
			err = e.Evaluate(c)
			if err != nil {
				return err
			}
		case errors.Is(err, io.EOF):
			_, err = io.WriteString(output, "\n")

			return err
		case errors.Is(err, ErrInterrupted):
			continue
		case errors.Is(err, reader.ErrSyntax):
			e.Report(err)

			err = r.Discard()
			if err != nil {
				return err
			}
		default:
			return err
		}
	}
}
