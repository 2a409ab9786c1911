package intcode

import (
	"fmt"
	"slices"
)

type State uint8

const (
	StateRunnable State = iota
	StateAwaitingInput
	StateHalted
	StateErrored
)

func (s State) String() string {
	switch s {
	case StateRunnable:
		return "runnable"
	case StateAwaitingInput:
		return "awaiting input"
	case StateHalted:
		return "halted"
	case StateErrored:
		return "errored"
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}

type Machine struct {
	Memory       Memory
	PC           int64
	RelativeBase int64

	inputs  []int64
	outputs []int64
	steps   int
	state   State
	// set once the machine reaches a terminal state
	terminal *Interrupt
}

func New(program []int64, inputs ...int64) *Machine {
	return &Machine{
		Memory: NewMemory(program),
		inputs: slices.Clone(inputs),
	}
}

func (m *Machine) State() State {
	return m.state
}

// Steps is the number of instructions executed so far.
func (m *Machine) Steps() int {
	return m.steps
}

func (m *Machine) PushInput(values ...int64) {
	m.inputs = append(m.inputs, values...)
}

// PushASCII queues one input per byte of s.
func (m *Machine) PushASCII(s string) {
	for i := 0; i < len(s); i++ {
		m.inputs = append(m.inputs, int64(s[i]))
	}
}

func (m *Machine) PendingInputs() int {
	return len(m.inputs)
}

func (m *Machine) LastOutput() (int64, bool) {
	if len(m.outputs) == 0 {
		return 0, false
	}
	return m.outputs[len(m.outputs)-1], true
}

func (m *Machine) Outputs() []int64 {
	return slices.Clone(m.outputs)
}

func (m *Machine) Clone() *Machine {
	ret := *m
	ret.Memory = m.Memory.Clone()
	ret.inputs = slices.Clone(m.inputs)
	ret.outputs = slices.Clone(m.outputs)
	return &ret
}
