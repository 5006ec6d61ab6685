package options

import (
	"errors"
	"testing"
)

func TestDefaults(t *testing.T) {
	mustParse(t, []string{}, true)

	if !Interactive() {
		t.Fatal("Expected interactive mode on a terminal")
	}

	if Depth() != 10000 {
		t.Fatalf("Expected the default depth; got %d", Depth())
	}

	if Expression() != "" || len(Scripts()) != 0 {
		t.Fatal("Expected no expression and no scripts")
	}
}

func TestNotATerminal(t *testing.T) {
	mustParse(t, []string{}, false)

	if Interactive() {
		t.Fatal("Expected interactive mode to be off when stdin is not a terminal")
	}

	mustParse(t, []string{"-i"}, false)

	if !Interactive() {
		t.Fatal("Expected -i to turn interactive mode on")
	}
}

func TestScripts(t *testing.T) {
	mustParse(t, []string{"--depth=5", "a.scm", "b.scm"}, true)

	if Interactive() {
		t.Fatal("Expected scripts to turn interactive mode off")
	}

	if s := Scripts(); len(s) != 2 || s[0] != "a.scm" || s[1] != "b.scm" {
		t.Fatalf("Unexpected scripts %v", s)
	}

	if Depth() != 5 {
		t.Fatalf("Expected depth 5; got %d", Depth())
	}

	mustParse(t, []string{"-i", "a.scm"}, true)

	if !Interactive() {
		t.Fatal("Expected -i to turn interactive mode on after scripts")
	}
}

func TestExpression(t *testing.T) {
	mustParse(t, []string{"-e", "(1 2)"}, true)

	if Expression() != "(1 2)" {
		t.Fatalf("Unexpected expression %q", Expression())
	}

	if Interactive() {
		t.Fatal("Expected an expression to turn interactive mode off")
	}
}

func TestUnlimitedDepth(t *testing.T) {
	mustParse(t, []string{"-d", "0"}, false)

	if Depth() != 0 {
		t.Fatalf("Expected no limit; got %d", Depth())
	}
}

func TestInvalidDepth(t *testing.T) {
	for _, arg := range []string{"--depth=abc", "--depth=-5", "--depth=1O000"} {
		err := parse([]string{arg}, false)
		if !errors.Is(err, ErrDepth) {
			t.Fatalf("Expected %s to be rejected; got %v", arg, err)
		}
	}
}

func mustParse(t *testing.T, argv []string, terminal bool) {
	t.Helper()

	if err := parse(argv, terminal); err != nil {
		t.Fatalf("Unexpected error %v", err)
	}
}
