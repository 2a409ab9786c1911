package intcode

import "fmt"

type OpCode int64

const (
	OpAdd OpCode = iota + 1
	OpMul
	OpIn
	OpOut
	OpJumpIfTrue
	OpJumpIfFalse
	OpLessThan
	OpEquals
	OpAdjustBase

	OpHalt OpCode = 99
)

type opInfo struct {
	name      string
	numParams int
	// index of the parameter written by the instruction, -1 if none
	writes int
}

var opInfos = map[OpCode]opInfo{
	OpAdd:         {"add", 3, 2},
	OpMul:         {"mul", 3, 2},
	OpIn:          {"in", 1, 0},
	OpOut:         {"out", 1, -1},
	OpJumpIfTrue:  {"jt", 2, -1},
	OpJumpIfFalse: {"jf", 2, -1},
	OpLessThan:    {"lt", 3, 2},
	OpEquals:      {"eq", 3, 2},
	OpAdjustBase:  {"arb", 1, -1},
	OpHalt:        {"halt", 0, -1},
}

func (o OpCode) Valid() bool {
	_, ok := opInfos[o]
	return ok
}

func (o OpCode) NumParams() int {
	return opInfos[o].numParams
}

func (o OpCode) String() string {
	if info, ok := opInfos[o]; ok {
		return info.name
	}
	return fmt.Sprintf("op(%d)", int64(o))
}
