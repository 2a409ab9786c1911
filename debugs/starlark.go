package debugs

import (
	"fmt"
	"maps"
	"slices"

	"github.com/reusee/intcode/intcode"
	"go.starlark.net/starlark"
)

// toStarlarkValue converts machine state snapshots. Words are int64 and
// stay exact in starlark.Int.
func toStarlarkValue(v any) (starlark.Value, error) {
	switch v := v.(type) {

	case nil:
		return starlark.None, nil

	case bool:
		return starlark.Bool(v), nil

	case string:
		return starlark.String(v), nil

	case int:
		return starlark.MakeInt(v), nil

	case int64:
		return starlark.MakeInt64(v), nil

	case []int64:
		elems := make([]starlark.Value, len(v))
		for i, word := range v {
			elems[i] = starlark.MakeInt64(word)
		}
		return starlark.NewList(elems), nil

	case intcode.Memory:
		return memoryDict(v), nil
	case map[int64]int64:
		return memoryDict(v), nil

	case fmt.Stringer:
		// states, opcodes and instructions
		return starlark.String(v.String()), nil

	}
	return nil, fmt.Errorf("unsupported type for starlark: %T", v)
}

// memoryDict iterates in address order.
func memoryDict(mem map[int64]int64) *starlark.Dict {
	d := starlark.NewDict(len(mem))
	for _, addr := range slices.Sorted(maps.Keys(mem)) {
		d.SetKey(starlark.MakeInt64(addr), starlark.MakeInt64(mem[addr]))
	}
	return d
}
