package network

import (
	"context"
	"fmt"

	"github.com/reusee/intcode/intcode"
)

// Loop connects machines in a ring: outputs of machine i are queued as
// inputs of machine i+1, and the last machine feeds the first. seed is
// queued to the first machine before starting. Loop returns the last output
// of the last machine once it halts.
func Loop(ctx context.Context, machines []*intcode.Machine, seed int64) (int64, error) {
	if len(machines) == 0 {
		return 0, fmt.Errorf("no machines")
	}
	machines[0].PushInput(seed)
	last := machines[len(machines)-1]

	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		progress := false
		for i, m := range machines {
			next := machines[(i+1)%len(machines)]
			stepsBefore := m.Steps()

		run:
			for {
				intr := m.RunUntilInterrupt()
				switch intr.Kind {
				case intcode.ProducedOutput:
					next.PushInput(intr.Value)
				case intcode.NeedsInput, intcode.Halted:
					break run
				case intcode.DecodeError:
					return 0, fmt.Errorf("machine %d: %w", i, intr.Err)
				}
			}

			if m.Steps() != stepsBefore {
				progress = true
			}
		}

		if last.State() == intcode.StateHalted {
			v, ok := last.LastOutput()
			if !ok {
				return 0, fmt.Errorf("last machine halted without output")
			}
			return v, nil
		}
		if !progress {
			return 0, ErrDeadlock
		}
	}
}
