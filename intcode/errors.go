package intcode

import "errors"

var (
	ErrUnknownOpcode   = errors.New("unknown opcode")
	ErrUnknownMode     = errors.New("unknown parameter mode")
	ErrLiteralWrite    = errors.New("literal parameter used as write target")
	ErrNegativeAddress = errors.New("negative address")
	ErrOverflow        = errors.New("integer overflow")
	ErrInputStarved    = errors.New("input starved")
	ErrEmptyProgram    = errors.New("empty program")
)
