package intcode

import (
	"fmt"
	"io"
)

// Disassemble writes a linear listing of program. Words that do not decode
// are listed as data.
func Disassemble(w io.Writer, program []int64) error {
	mem := NewMemory(program)
	end := int64(len(program))
	for pc := int64(0); pc < end; {
		inst, err := Decode(mem, pc)
		if err != nil || pc+inst.Width() > end {
			if _, err := fmt.Fprintf(w, "%6d: data %d\n", pc, mem[pc]); err != nil {
				return err
			}
			pc++
			continue
		}
		if _, err := fmt.Fprintf(w, "%6d: %s\n", pc, inst); err != nil {
			return err
		}
		pc += inst.Width()
	}
	return nil
}
