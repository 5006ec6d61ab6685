// Released under an MIT license. See LICENSE.

/*
Scratch reads symbolic expressions and prints them back in canonical form.

	$ scratch -e "(1 . (2 . (3 . ())))"
	(1 2 3)
	$ scratch -e "#\space 'foo \"bar\""
	#\space
	foo
	"bar"

Scratch recognizes integers, booleans (#t and #f), characters (#\a,
#\space, #\newline), strings, symbols, proper and dotted lists, and the
quote shorthand 'x. Comments start with a semicolon and run to the end of
the line.

When stdin is a terminal, and no scripts or expression are given, scratch
prompts for input using a line editor with history.
*/
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/michaelmacinnis/scratch/internal/common/struct/heap"
	"github.com/michaelmacinnis/scratch/internal/engine"
	"github.com/michaelmacinnis/scratch/internal/reader"
	"github.com/michaelmacinnis/scratch/internal/system/options"
	"github.com/michaelmacinnis/scratch/internal/ui"
)

func main() {
	options.Parse()

	h := heap.New()
	e := engine.New(h, os.Stdout, os.Stderr)

	depth := reader.MaxDepth(options.Depth())

	if s := options.Expression(); s != "" {
		if e.Run(reader.New(h, "-e", strings.NewReader(s), depth)) != nil {
			os.Exit(1)
		}
	}

	for _, path := range options.Scripts() {
		if err := script(e, h, path, depth); err != nil {
			os.Exit(1)
		}
	}

	if options.Interactive() {
		if err := ui.Run(h, e, os.Stdout, options.Depth()); err != nil {
			e.Report(err)
			os.Exit(1)
		}
	} else if options.Expression() == "" && len(options.Scripts()) == 0 {
		if e.Run(reader.New(h, "stdin", os.Stdin, depth)) != nil {
			os.Exit(1)
		}
	}
}

func script(e *engine.T, h *heap.T, path string, depth reader.Option) error {
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())

		return err
	}
	defer f.Close()

	return e.Run(reader.New(h, path, f, depth))
}
