package intcode

import "fmt"

type Mode uint8

const (
	ModeAddress  Mode = 0
	ModeLiteral  Mode = 1
	ModeRelative Mode = 2
)

func (m Mode) String() string {
	switch m {
	case ModeAddress:
		return "address"
	case ModeLiteral:
		return "literal"
	case ModeRelative:
		return "relative"
	}
	return fmt.Sprintf("mode(%d)", uint8(m))
}
