package intcode

import (
	"fmt"
	"strconv"
)

type Param struct {
	Raw  int64
	Mode Mode
}

func (p Param) String() string {
	switch p.Mode {
	case ModeLiteral:
		return strconv.FormatInt(p.Raw, 10)
	case ModeRelative:
		if p.Raw < 0 {
			return fmt.Sprintf("[rb%d]", p.Raw)
		}
		return fmt.Sprintf("[rb+%d]", p.Raw)
	}
	return fmt.Sprintf("[%d]", p.Raw)
}

// load resolves p to an operand value.
func (m *Machine) load(p Param) (int64, error) {
	switch p.Mode {
	case ModeLiteral:
		return p.Raw, nil
	case ModeAddress:
		return m.Memory.Read(p.Raw)
	case ModeRelative:
		addr, err := add(p.Raw, m.RelativeBase)
		if err != nil {
			return 0, err
		}
		return m.Memory.Read(addr)
	}
	return 0, fmt.Errorf("%w: %d", ErrUnknownMode, p.Mode)
}

// target resolves p to a write address.
func (m *Machine) target(p Param) (int64, error) {
	switch p.Mode {
	case ModeAddress:
		return p.Raw, nil
	case ModeRelative:
		return add(p.Raw, m.RelativeBase)
	case ModeLiteral:
		return 0, ErrLiteralWrite
	}
	return 0, fmt.Errorf("%w: %d", ErrUnknownMode, p.Mode)
}
