// Released under an MIT license. See LICENSE.

// Package options parses scratch's command-line arguments.
package options

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

// Version is the version reported by scratch -v.
const Version = "scratch 0.1.0"

// ErrDepth is returned for a nesting depth that is not a non-negative integer.
var ErrDepth = errors.New("depth must be a non-negative integer")

//nolint:gochecknoglobals
var (
	depth       int
	expression  string
	interactive bool
	scripts     []string
	usage       = `scratch

Usage:
  scratch [-i] [--depth=DEPTH] [SCRIPT...]
  scratch [--depth=DEPTH] -e EXPRESSION
  scratch -h
  scratch -v

Arguments:
  SCRIPT  Path to a file of expressions to read and print.

Options:
  -d, --depth=DEPTH            Maximum nesting of lists [default: 10000].
  -e, --expression=EXPRESSION  Read and print the expressions in EXPRESSION.
  -i, --interactive            Invert interactive mode.
  -h, --help                   Display this help.
  -v, --version                Print scratch version.

If scratch's stdin is a TTY and scratch was invoked with no scripts and no
expression, interactive mode is enabled. Otherwise, it is disabled.
`
)

// Depth returns the maximum nesting depth for the reader. Zero means no limit.
func Depth() int {
	return depth
}

// Expression returns the text passed with -e.
func Expression() string {
	return expression
}

// Interactive returns true if input should come from the line editor.
func Interactive() bool {
	return interactive
}

// Parse parses the process's command-line arguments.
// Help, version and usage errors are handled by printing and exiting.
func Parse() {
	err := parse(os.Args[1:], isatty.IsTerminal(os.Stdin.Fd()))
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		docopt.PrintHelpAndExit(err, usage)
	}
}

// Scripts returns the paths of the scripts to read.
func Scripts() []string {
	return scripts
}

func parse(argv []string, terminal bool) error {
	opts, err := docopt.ParseArgs(usage, argv, Version)
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}

	s, _ := opts.String("--depth")

	depth, err = strconv.Atoi(s)
	if err != nil || depth < 0 {
		return fmt.Errorf("%w: --depth=%s", ErrDepth, s)
	}

	expression, _ = opts.String("--expression")

	scripts, _ = opts["SCRIPT"].([]string)

	interactive = expression == "" && len(scripts) == 0 && terminal

	invertInteractive, _ := opts.Bool("--interactive")
	interactive = interactive != invertInteractive

	return nil
}
