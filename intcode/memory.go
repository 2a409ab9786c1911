package intcode

import (
	"fmt"
	"maps"
)

// Memory is a sparse address space. Addresses never written read as zero.
type Memory map[int64]int64

func NewMemory(program []int64) Memory {
	mem := make(Memory, len(program))
	for i, v := range program {
		mem[int64(i)] = v
	}
	return mem
}

func (m Memory) Read(addr int64) (int64, error) {
	if addr < 0 {
		return 0, fmt.Errorf("%w: read %d", ErrNegativeAddress, addr)
	}
	return m[addr], nil
}

func (m Memory) Write(addr int64, value int64) error {
	if addr < 0 {
		return fmt.Errorf("%w: write %d", ErrNegativeAddress, addr)
	}
	m[addr] = value
	return nil
}

func (m Memory) Clone() Memory {
	return maps.Clone(m)
}
