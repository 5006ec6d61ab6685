package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/michaelmacinnis/scratch/internal/common/struct/heap"
	"github.com/michaelmacinnis/scratch/internal/engine"
	"github.com/michaelmacinnis/scratch/internal/reader"
)

const input = `
; Every value prints in canonical form.
42 -7 #t #f
#\a #\space #\newline
"hello
world"
(1 . (2 . (3 . ())))
(a b . c)
'sym
'(1 2)
((lambda) (x . 1))
`

const output = `42
-7
#t
#f
#\a
#\space
#\newline
"hello\nworld"
(1 2 3)
(a b . c)
sym
(1 2)
((lambda) (x . 1))
`

func TestInput(t *testing.T) {
	var out, diag strings.Builder

	h := heap.New()
	e := engine.New(h, &out, &diag)

	err := e.Run(reader.New(h, "input", strings.NewReader(input), reader.MaxDepth(10)))
	if err != nil {
		t.Fatalf("Unexpected error %v", err)
	}

	if got := out.String(); got != output {
		t.Fatalf("Expected:\n%s\ngot:\n%s", output, got)
	}

	if diag.Len() != 0 {
		t.Fatalf("Unexpected diagnostic %q", diag.String())
	}
}

func TestScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.scm")

	err := os.WriteFile(path, []byte("(1 2)\n(1 .2)\n3\n"), 0o600)
	if err != nil {
		t.Fatal(err)
	}

	var out, diag strings.Builder

	h := heap.New()
	e := engine.New(h, &out, &diag)

	err = script(e, h, path, reader.MaxDepth(0))
	if !errors.Is(err, reader.ErrSyntax) {
		t.Fatalf("Expected a syntax error; got %v", err)
	}

	if out.String() != "(1 2)\n" {
		t.Fatalf("Expected output to stop at the error; got %q", out.String())
	}

	if !strings.HasPrefix(diag.String(), path+":2:") {
		t.Fatalf("Expected the error to name %s line 2; got %q", path, diag.String())
	}
}

func TestMissingScript(t *testing.T) {
	h := heap.New()
	e := engine.New(h, &strings.Builder{}, &strings.Builder{})

	err := script(e, h, filepath.Join(t.TempDir(), "missing"), reader.MaxDepth(0))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Expected a missing file error; got %v", err)
	}
}
