package snlvm

import (
	"errors"
	"strings"
	"testing"
)

func TestSourceLine(t *testing.T) {
	src := NewSource("test", "12\n345\n6")

	line, content, column := src.Line(0)
	if line != 1 || content != "12" || column != 0 {
		t.Fatalf("got %d %q %d", line, content, column)
	}

	line, content, column = src.Line(4)
	if line != 2 || content != "345" || column != 1 {
		t.Fatalf("got %d %q %d", line, content, column)
	}

	line, content, column = src.Line(7)
	if line != 3 || content != "6" || column != 0 {
		t.Fatalf("got %d %q %d", line, content, column)
	}
}

func TestPosError(t *testing.T) {
	src := NewSource("prog.snl", "12<34")
	err := WithPos(ErrAddressUnderflow, 2, src)

	msg := err.Error()
	if !strings.Contains(msg, "prog.snl:1:3") {
		t.Fatalf("got %q", msg)
	}
	if !strings.Contains(msg, "12<34\n  ^") {
		t.Fatalf("got %q", msg)
	}
	if !errors.Is(err, ErrAddressUnderflow) {
		t.Fatal(err)
	}
}

func TestWithPosNil(t *testing.T) {
	if err := WithPos(nil, 0, nil); err != nil {
		t.Fatal(err)
	}
}

func TestWithPosNoDoubleWrap(t *testing.T) {
	src := NewSource("test", "<")
	err := WithPos(ErrAddressUnderflow, 0, src)
	if again := WithPos(err, 3, src); again != err {
		t.Fatal("wrapped twice")
	}
}

func TestPosErrorNoSource(t *testing.T) {
	err := PosError{Err: ErrDivideByZero}
	if err.Error() != ErrDivideByZero.Error() {
		t.Fatalf("got %q", err.Error())
	}
}
