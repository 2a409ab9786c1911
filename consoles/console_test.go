package consoles

import (
	"errors"
	"strings"
	"testing"

	"github.com/reusee/intcode/intcode"
)

// in c; out c; repeat
var echoProgram = []int64{3, 100, 4, 100, 1105, 1, 0}

func TestConsole_ASCII(t *testing.T) {
	out := new(strings.Builder)
	c := &Console{
		Machine: intcode.New(echoProgram),
		In:      strings.NewReader("look\r\nnorth"),
		Out:     out,
		ASCII:   true,
	}
	if err := c.Run(t.Context()); err != nil {
		t.Fatal(err)
	}
	if got := out.String(); got != "look\nnorth\n" {
		t.Fatalf("got %q", got)
	}
}

func TestConsole_Numeric(t *testing.T) {
	// in a; in b; out a*b; halt
	program := []int64{3, 20, 3, 21, 2, 20, 21, 22, 4, 22, 99}
	out := new(strings.Builder)
	c := &Console{
		Machine: intcode.New(program),
		In:      strings.NewReader("6, 7\n"),
		Out:     out,
	}
	if err := c.Run(t.Context()); err != nil {
		t.Fatal(err)
	}
	if got := out.String(); got != "42\n" {
		t.Fatalf("got %q", got)
	}

	c = &Console{
		Machine: intcode.New(program),
		In:      strings.NewReader("6 x\n"),
		Out:     out,
	}
	if err := c.Run(t.Context()); err == nil {
		t.Fatal("should error")
	}
}

func TestConsole_NumericBlankLines(t *testing.T) {
	program := []int64{3, 20, 3, 21, 2, 20, 21, 22, 4, 22, 99}
	out := new(strings.Builder)
	c := &Console{
		Machine: intcode.New(program),
		In:      strings.NewReader("\n6\n  \n\r\n7\n"),
		Out:     out,
	}
	if err := c.Run(t.Context()); err != nil {
		t.Fatal(err)
	}
	if got := out.String(); got != "42\n" {
		t.Fatalf("got %q", got)
	}
}

func TestConsole_NonASCIIOutput(t *testing.T) {
	out := new(strings.Builder)
	c := &Console{
		Machine: intcode.New([]int64{104, 79, 104, 75, 104, 10, 104, 1000, 99}),
		In:      strings.NewReader(""),
		Out:     out,
		ASCII:   true,
	}
	if err := c.Run(t.Context()); err != nil {
		t.Fatal(err)
	}
	if got := out.String(); got != "OK\n1000\n" {
		t.Fatalf("got %q", got)
	}
}

func TestConsole_MaxOutputs(t *testing.T) {
	c := &Console{
		// out 1 forever
		Machine:    intcode.New([]int64{104, 1, 1105, 1, 0}),
		In:         strings.NewReader(""),
		Out:        new(strings.Builder),
		MaxOutputs: 100,
	}
	if err := c.Run(t.Context()); !errors.Is(err, ErrTooManyOutputs) {
		t.Fatalf("got %v", err)
	}
}

func TestConsole_DecodeError(t *testing.T) {
	c := &Console{
		Machine: intcode.New([]int64{104, 1, 42}),
		In:      strings.NewReader(""),
		Out:     new(strings.Builder),
	}
	if err := c.Run(t.Context()); !errors.Is(err, intcode.ErrUnknownOpcode) {
		t.Fatalf("got %v", err)
	}
}
