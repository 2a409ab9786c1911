package network

import (
	"context"
	"fmt"
	"sync"

	"github.com/reusee/intcode/intcode"
	"github.com/reusee/intcode/intcodeconfigs"
	"github.com/reusee/intcode/logs"
	"github.com/reusee/intcode/syncs"
)

// Sweep runs program once per input set, each on its own machine, and
// returns the outputs in input order.
type Sweep func(ctx context.Context, program []int64, inputSets [][]int64) ([][]int64, error)

func (Module) Sweep(
	logger logs.Logger,
	parallel intcodeconfigs.Parallel,
) Sweep {
	return func(ctx context.Context, program []int64, inputSets [][]int64) ([][]int64, error) {
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		base := intcode.New(program)
		results := make([][]int64, len(inputSets))
		errs := make([]error, len(inputSets))
		sem := syncs.NewSemaphore(max(1, int(parallel)))
		wg := new(sync.WaitGroup)

		for i, inputs := range inputSets {
			if err := sem.Acquire(ctx); err != nil {
				break
			}
			wg.Add(1)
			go func() {
				defer wg.Done()
				defer sem.Release()

				m := base.Clone()
				m.PushInput(inputs...)
				if err := m.RunUntilComplete(ctx, nil); err != nil {
					errs[i] = fmt.Errorf("input set %d: %w", i, err)
					cancel()
					return
				}
				results[i] = m.Outputs()
				logger.DebugContext(ctx, "sweep done",
					"set", i,
					"steps", m.Steps(),
				)
			}()
		}
		wg.Wait()

		for _, err := range errs {
			if err != nil {
				return nil, err
			}
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return results, nil
	}
}
