package vars

import "testing"

func TestFirstNonZero(t *testing.T) {
	if v := FirstNonZero(0, 0, 3, 4); v != 3 {
		t.Fatalf("got %v", v)
	}
	if v := FirstNonZero[string](); v != "" {
		t.Fatalf("got %v", v)
	}
}

func TestStrToBool(t *testing.T) {
	for str, want := range map[string]bool{
		"true": true,
		"Y":    true,
		" on ": true,
		"1":    true,
		"no":   false,
		"0":    false,
		"x":    false,
	} {
		if got := StrToBool(str); got != want {
			t.Fatalf("%q: got %v", str, got)
		}
	}
}
