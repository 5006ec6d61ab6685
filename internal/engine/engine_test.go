package engine

import (
	"errors"
	"strings"
	"testing"

	"github.com/michaelmacinnis/scratch/internal/common/struct/heap"
	"github.com/michaelmacinnis/scratch/internal/common/type/fixnum"
	"github.com/michaelmacinnis/scratch/internal/reader"
)

func run(t *testing.T, script string) (string, string, error) {
	t.Helper()

	var out, diag strings.Builder

	h := heap.New()
	e := New(h, &out, &diag)

	err := e.Run(reader.New(h, "script", strings.NewReader(script)))

	return out.String(), diag.String(), err
}

func TestRun(t *testing.T) {
	out, diag, err := run(t, `
; Values print in canonical form.
(1 . (2 . (3 . ())))
#\space
'foo
"bar"
`)
	if err != nil {
		t.Fatalf("Unexpected error %v", err)
	}

	if out != "(1 2 3)\n#\\space\nfoo\n\"bar\"\n" {
		t.Fatalf("Unexpected output %q", out)
	}

	if diag != "" {
		t.Fatalf("Unexpected diagnostics %q", diag)
	}
}

func TestRunEmpty(t *testing.T) {
	out, _, err := run(t, "")
	if err != nil || out != "" {
		t.Fatalf("Expected no output and no error; got %q, %v", out, err)
	}
}

func TestRunStopsAtSyntaxError(t *testing.T) {
	out, diag, err := run(t, "1\n(1 .2)\n3\n")

	if !errors.Is(err, reader.ErrSyntax) {
		t.Fatalf("Expected a syntax error; got %v", err)
	}

	if out != "1\n" {
		t.Fatalf("Expected only the first value to print; got %q", out)
	}

	if !strings.HasPrefix(diag, "script:2:4: dot must be followed by space") {
		t.Fatalf("Unexpected diagnostic %q", diag)
	}
}

func TestEvalIsIdentity(t *testing.T) {
	c := fixnum.New(7)

	if Eval(c) != c {
		t.Fatal("Expected a value to evaluate to itself")
	}
}

func TestEvaluate(t *testing.T) {
	var out, diag strings.Builder

	h := heap.New()

	err := New(h, &out, &diag).Evaluate(h.List(h.True(), h.Intern("x")))
	if err != nil {
		t.Fatalf("Unexpected error %v", err)
	}

	if out.String() != "(#t x)\n" {
		t.Fatalf("Unexpected output %q", out.String())
	}
}
