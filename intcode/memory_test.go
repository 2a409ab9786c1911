package intcode

import (
	"errors"
	"testing"
)

func TestMemory(t *testing.T) {
	mem := NewMemory([]int64{1, 2, 3})
	if v, err := mem.Read(2); err != nil || v != 3 {
		t.Fatalf("got %v %v", v, err)
	}
	// never written
	if v, err := mem.Read(1 << 40); err != nil || v != 0 {
		t.Fatalf("got %v %v", v, err)
	}
	if err := mem.Write(1<<40, 5); err != nil {
		t.Fatal(err)
	}
	if v, _ := mem.Read(1 << 40); v != 5 {
		t.Fatalf("got %v", v)
	}

	if _, err := mem.Read(-1); !errors.Is(err, ErrNegativeAddress) {
		t.Fatalf("got %v", err)
	}
	if err := mem.Write(-1, 1); !errors.Is(err, ErrNegativeAddress) {
		t.Fatalf("got %v", err)
	}

	clone := mem.Clone()
	clone[0] = 42
	if mem[0] != 1 {
		t.Fatal("clone shares storage")
	}
}
