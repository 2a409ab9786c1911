package intcode

import (
	"context"
	"fmt"
	"math"
)

// Run executes the program, yielding at every input request, every output
// and at termination. After a terminal interrupt is yielded Run returns,
// and later calls yield the same terminal interrupt again.
//
// Yielding NeedsInput leaves the machine exactly as it was before the In
// instruction, so resuming after PushInput behaves as if the value had been
// queued all along. A caller that keeps resuming without pushing input will
// see NeedsInput again.
func (m *Machine) Run(yield func(*Interrupt, error) bool) {
	for {
		if m.terminal != nil {
			yield(m.terminal, m.terminal.Err)
			return
		}

		intr, err := m.step()
		if intr == nil {
			continue
		}
		if !yield(intr, err) {
			return
		}
		if intr.Terminal() {
			return
		}
	}
}

func (m *Machine) RunUntilInterrupt() *Interrupt {
	for intr := range m.Run {
		return intr
	}
	return m.terminal
}

// InputFunc supplies a value when a machine asks for input.
type InputFunc func(ctx context.Context) (int64, error)

// RunUntilComplete runs until the machine halts. Outputs stay in the output
// log. Input requests on an empty queue are served by input, or fail with
// ErrInputStarved if input is nil.
func (m *Machine) RunUntilComplete(ctx context.Context, input InputFunc) error {
	for intr, err := range m.Run {
		if err != nil {
			return err
		}
		switch intr.Kind {
		case NeedsInput:
			if input == nil {
				return fmt.Errorf("%w at %d", ErrInputStarved, m.PC)
			}
			v, err := input(ctx)
			if err != nil {
				return err
			}
			m.PushInput(v)
		case Halted:
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	return nil
}

// step executes at most one instruction and returns a non-nil interrupt
// when control should go back to the caller.
func (m *Machine) step() (*Interrupt, error) {
	inst, err := Decode(m.Memory, m.PC)
	if err != nil {
		return m.fail(err)
	}

	switch inst.Op {

	case OpAdd, OpMul, OpLessThan, OpEquals:
		a, err := m.load(inst.Params[0])
		if err != nil {
			return m.fail(err)
		}
		b, err := m.load(inst.Params[1])
		if err != nil {
			return m.fail(err)
		}
		dst, err := m.target(inst.Params[2])
		if err != nil {
			return m.fail(err)
		}
		var v int64
		switch inst.Op {
		case OpAdd:
			v, err = add(a, b)
		case OpMul:
			v, err = mul(a, b)
		case OpLessThan:
			v = boolToInt(a < b)
		case OpEquals:
			v = boolToInt(a == b)
		}
		if err != nil {
			return m.fail(err)
		}
		if err := m.Memory.Write(dst, v); err != nil {
			return m.fail(err)
		}
		m.PC += inst.Width()

	case OpIn:
		dst, err := m.target(inst.Params[0])
		if err != nil {
			return m.fail(err)
		}
		if dst < 0 {
			return m.fail(fmt.Errorf("%w: write %d", ErrNegativeAddress, dst))
		}
		if len(m.inputs) == 0 {
			m.state = StateAwaitingInput
			return InterruptNeedsInput, nil
		}
		v := m.inputs[0]
		m.inputs = m.inputs[1:]
		if err := m.Memory.Write(dst, v); err != nil {
			return m.fail(err)
		}
		m.state = StateRunnable
		m.PC += inst.Width()

	case OpOut:
		v, err := m.load(inst.Params[0])
		if err != nil {
			return m.fail(err)
		}
		m.outputs = append(m.outputs, v)
		m.PC += inst.Width()
		m.steps++
		return &Interrupt{
			Kind:  ProducedOutput,
			Value: v,
		}, nil

	case OpJumpIfTrue, OpJumpIfFalse:
		cond, err := m.load(inst.Params[0])
		if err != nil {
			return m.fail(err)
		}
		dst, err := m.load(inst.Params[1])
		if err != nil {
			return m.fail(err)
		}
		if (cond != 0) == (inst.Op == OpJumpIfTrue) {
			m.PC = dst
		} else {
			m.PC += inst.Width()
		}

	case OpAdjustBase:
		v, err := m.load(inst.Params[0])
		if err != nil {
			return m.fail(err)
		}
		base, err := add(m.RelativeBase, v)
		if err != nil {
			return m.fail(err)
		}
		m.RelativeBase = base
		m.PC += inst.Width()

	case OpHalt:
		m.state = StateHalted
		m.terminal = InterruptHalted
		return m.terminal, nil

	}

	m.steps++
	return nil, nil
}

func (m *Machine) fail(err error) (*Interrupt, error) {
	if word, rerr := m.Memory.Read(m.PC); rerr == nil {
		err = fmt.Errorf("pc %d, word %d: %w", m.PC, word, err)
	} else {
		err = fmt.Errorf("pc %d: %w", m.PC, err)
	}
	m.state = StateErrored
	m.terminal = &Interrupt{
		Kind: DecodeError,
		Err:  err,
	}
	return m.terminal, err
}

func add(a, b int64) (int64, error) {
	if (b > 0 && a > math.MaxInt64-b) ||
		(b < 0 && a < math.MinInt64-b) {
		return 0, fmt.Errorf("%w: %d + %d", ErrOverflow, a, b)
	}
	return a + b, nil
}

func mul(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	r := a * b
	if r/b != a ||
		(a == -1 && b == math.MinInt64) ||
		(b == -1 && a == math.MinInt64) {
		return 0, fmt.Errorf("%w: %d * %d", ErrOverflow, a, b)
	}
	return r, nil
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
