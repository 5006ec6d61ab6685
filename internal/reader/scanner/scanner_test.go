package scanner

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"
)

func TestNextAndUnread(t *testing.T) {
	s := New("test", strings.NewReader("ab"))

	expect(t, s, 'a')

	s.Unread()

	expect(t, s, 'a')
	expect(t, s, 'b')

	if _, err := s.Next(); err != io.EOF {
		t.Fatalf("Expected io.EOF; got %v", err)
	}
}

func TestUnreadTwicePanics(t *testing.T) {
	s := New("test", strings.NewReader("ab"))

	expect(t, s, 'a')
	s.Unread()

	defer func() {
		if recover() == nil {
			t.Fatal("Expected a second unread to panic")
		}
	}()

	s.Unread()
}

func TestPeek(t *testing.T) {
	s := New("test", strings.NewReader("xy"))

	r, err := s.Peek()
	if err != nil || r != 'x' {
		t.Fatalf("Expected to peek 'x'; got %q, %v", r, err)
	}

	expect(t, s, 'x')
	expect(t, s, 'y')
}

func TestLocation(t *testing.T) {
	s := New("test", strings.NewReader("ab\ncd"))

	for _, want := range []struct {
		r          rune
		line, char int
	}{
		{'a', 1, 1},
		{'b', 1, 2},
		{'\n', 1, 3},
		{'c', 2, 1},
		{'d', 2, 2},
	} {
		l := s.Location()
		if l.Line != want.line || l.Char != want.char {
			t.Fatalf("Expected %q at %d:%d; got %s", want.r, want.line, want.char, l.String())
		}

		expect(t, s, want.r)

		if s.Last() != l {
			t.Fatalf("Expected last location %s; got %s", l.String(), s.Last().String())
		}
	}
}

func TestUnreadRestoresLocation(t *testing.T) {
	s := New("test", strings.NewReader("a\nb"))

	expect(t, s, 'a')
	expect(t, s, '\n')

	if !s.AtLineStart() {
		t.Fatal("Expected to be at the start of a line after a newline")
	}

	s.Unread()

	if s.AtLineStart() || s.Location().Line != 1 || s.Location().Char != 2 {
		t.Fatalf("Expected 1:2 after unread; got %s", s.Location().String())
	}
}

func TestSkipLine(t *testing.T) {
	s := New("test", strings.NewReader("junk here\nok"))

	if err := s.SkipLine(); err != nil {
		t.Fatalf("Unexpected error %v", err)
	}

	expect(t, s, 'o')

	if err := s.SkipLine(); err != io.EOF {
		t.Fatalf("Expected io.EOF; got %v", err)
	}
}

func TestReaderErrors(t *testing.T) {
	s := New("test", iotest.ErrReader(io.ErrClosedPipe))

	if _, err := s.Next(); !errors.Is(err, io.ErrClosedPipe) {
		t.Fatalf("Expected the reader's error; got %v", err)
	}
}

func TestOneByteReads(t *testing.T) {
	// Multi-byte runes split across reads.
	s := New("test", iotest.OneByteReader(strings.NewReader("λé")))

	expect(t, s, 'λ')
	expect(t, s, 'é')
}

func expect(t *testing.T, s *T, want rune) {
	t.Helper()

	r, err := s.Next()
	if err != nil {
		t.Fatalf("Expected %q; got error %v", want, err)
	}

	if r != want {
		t.Fatalf("Expected %q; got %q", want, r)
	}
}

func TestInvalidEncoding(t *testing.T) {
	s := New("test", strings.NewReader("a\xffb�"))

	expect(t, s, 'a')

	if _, err := s.Next(); !errors.Is(err, ErrEncoding) {
		t.Fatalf("Expected ErrEncoding; got %v", err)
	}

	if l := s.Last(); l.Char != 2 {
		t.Fatalf("Expected the invalid byte at column 2; got %s", l.String())
	}

	// An encoded replacement character is valid input.
	expect(t, s, 'b')
	expect(t, s, '�')
}
