package intcode

import (
	"fmt"
	"strings"
)

type Instruction struct {
	Op     OpCode
	Params []Param
}

// Width is the number of memory words the instruction occupies.
func (i Instruction) Width() int64 {
	return 1 + int64(len(i.Params))
}

func (i Instruction) String() string {
	if len(i.Params) == 0 {
		return i.Op.String()
	}
	var b strings.Builder
	b.WriteString(i.Op.String())
	for n, p := range i.Params {
		if n == 0 {
			b.WriteString(" ")
		} else {
			b.WriteString(", ")
		}
		b.WriteString(p.String())
	}
	return b.String()
}

// Decode reads the instruction at pc. Nothing is cached: the same address
// may hold a different instruction the next time it is visited.
func Decode(mem Memory, pc int64) (inst Instruction, err error) {
	word, err := mem.Read(pc)
	if err != nil {
		return inst, err
	}

	op := OpCode(word % 100)
	info, ok := opInfos[op]
	if !ok {
		return inst, fmt.Errorf("%w: %d at %d", ErrUnknownOpcode, word, pc)
	}
	inst.Op = op

	modes := word / 100
	if info.numParams > 0 {
		inst.Params = make([]Param, info.numParams)
	}
	for i := range inst.Params {
		mode := Mode(modes % 10)
		modes /= 10
		switch mode {
		case ModeAddress, ModeLiteral, ModeRelative:
		default:
			return inst, fmt.Errorf("%w: %d in %d at %d", ErrUnknownMode, mode, word, pc)
		}
		if i == info.writes && mode == ModeLiteral {
			return inst, fmt.Errorf("%w: %s at %d", ErrLiteralWrite, op, pc)
		}
		raw, err := mem.Read(pc + 1 + int64(i))
		if err != nil {
			return inst, err
		}
		inst.Params[i] = Param{
			Raw:  raw,
			Mode: mode,
		}
	}

	return inst, nil
}
