package debugs

import (
	"strings"
	"testing"

	"github.com/reusee/intcode/intcode"
	"go.starlark.net/starlark"
)

func TestToStarlarkValue(t *testing.T) {
	memory := func(kvs ...int64) starlark.Value {
		d := starlark.NewDict(len(kvs) / 2)
		for i := 0; i < len(kvs); i += 2 {
			d.SetKey(starlark.MakeInt64(kvs[i]), starlark.MakeInt64(kvs[i+1]))
		}
		return d
	}

	for _, c := range []struct {
		name  string
		input any
		want  starlark.Value
	}{
		{"nil", nil, starlark.None},
		{"bool", true, starlark.True},
		{"string", "halted", starlark.String("halted")},
		{"int", 3, starlark.MakeInt(3)},
		{"word", int64(-1125899906842624), starlark.MakeInt64(-1125899906842624)},
		{"outputs", []int64{1, -2}, starlark.NewList([]starlark.Value{
			starlark.MakeInt64(1), starlark.MakeInt64(-2),
		})},
		{"empty outputs", []int64(nil), starlark.NewList(nil)},
		{"memory", intcode.Memory{3: -7, 1000: 1}, memory(3, -7, 1000, 1)},
		{"memory snapshot", map[int64]int64{0: 99}, memory(0, 99)},
		{"state", intcode.StateHalted, starlark.String("halted")},
		{"opcode", intcode.OpAdjustBase, starlark.String("arb")},
		{"instruction", intcode.Instruction{
			Op: intcode.OpOut,
			Params: []intcode.Param{
				{Raw: 5, Mode: intcode.ModeLiteral},
			},
		}, starlark.String("out 5")},
	} {
		t.Run(c.name, func(t *testing.T) {
			got, err := toStarlarkValue(c.input)
			if err != nil {
				t.Fatal(err)
			}
			equal, err := starlark.Equal(got, c.want)
			if err != nil {
				t.Fatal(err)
			}
			if !equal {
				t.Fatalf("got %v, want %v", got, c.want)
			}
		})
	}

	if _, err := toStarlarkValue(1.5); err == nil {
		t.Fatal("should error")
	}
}

func TestMemoryDictOrder(t *testing.T) {
	d := memoryDict(map[int64]int64{
		100: 1,
		-1:  2,
		7:   3,
	})
	if got := d.Keys(); starlark.NewList(got).String() != "[-1, 7, 100]" {
		t.Fatalf("got %v", got)
	}
}

func TestToStringDict_Unsupported(t *testing.T) {
	_, err := toStringDict(map[string]any{
		"pc":  int64(0),
		"bad": make(chan int),
	})
	if err == nil || !strings.HasPrefix(err.Error(), "bad: ") {
		t.Fatalf("got %v", err)
	}
}
