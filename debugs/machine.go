package debugs

import (
	"context"
	"strings"

	"github.com/reusee/intcode/intcode"
)

// TapMachine opens a REPL over the state of a machine.
type TapMachine func(ctx context.Context, what string, m *intcode.Machine)

func (Module) TapMachine(
	tap Tap,
) TapMachine {
	return func(ctx context.Context, what string, m *intcode.Machine) {
		tap(ctx, what, MachineGlobals(m))
	}
}

// MachineGlobals exposes the state of m to the REPL. The functions read the
// live machine, the other values are snapshots.
func MachineGlobals(m *intcode.Machine) map[string]any {
	return map[string]any{
		"pc":            m.PC,
		"relative_base": m.RelativeBase,
		"state":         m.State().String(),
		"steps":         m.Steps(),
		"memory":        map[int64]int64(m.Memory.Clone()),
		"outputs":       m.Outputs(),
		"pending":       m.PendingInputs(),

		"read": func(addr int64) int64 {
			return m.Memory[addr]
		},
		"disasm": func(addr int64) string {
			inst, err := intcode.Decode(m.Memory, addr)
			if err != nil {
				return err.Error()
			}
			return inst.String()
		},
		"ascii": func() string {
			var b strings.Builder
			for _, v := range m.Outputs() {
				if v >= 0 && v < 128 {
					b.WriteByte(byte(v))
				}
			}
			return b.String()
		},
	}
}
