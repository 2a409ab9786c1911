package intcode

import "fmt"

type InterruptKind uint8

const (
	NeedsInput InterruptKind = iota + 1
	ProducedOutput
	Halted
	DecodeError
)

func (k InterruptKind) String() string {
	switch k {
	case NeedsInput:
		return "needs input"
	case ProducedOutput:
		return "produced output"
	case Halted:
		return "halted"
	case DecodeError:
		return "decode error"
	}
	return fmt.Sprintf("interrupt(%d)", uint8(k))
}

// Interrupt is the value a run loop hands back to its caller when it
// suspends or terminates.
type Interrupt struct {
	Kind InterruptKind
	// set for ProducedOutput
	Value int64
	// set for DecodeError
	Err error
}

var (
	InterruptNeedsInput = &Interrupt{
		Kind: NeedsInput,
	}
	InterruptHalted = &Interrupt{
		Kind: Halted,
	}
)

func (i *Interrupt) Terminal() bool {
	return i.Kind == Halted || i.Kind == DecodeError
}

func (i *Interrupt) String() string {
	switch i.Kind {
	case ProducedOutput:
		return fmt.Sprintf("%s: %d", i.Kind, i.Value)
	case DecodeError:
		return fmt.Sprintf("%s: %v", i.Kind, i.Err)
	}
	return i.Kind.String()
}
