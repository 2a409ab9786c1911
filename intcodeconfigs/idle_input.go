package intcodeconfigs

import (
	"github.com/reusee/intcode/cmds"
	"github.com/reusee/intcode/configs"
)

// IdleInput is what a network node reads when it has nothing queued.
type IdleInput int64

var idleInputFlag = cmds.Var[*int64]("-idle-input")

const defaultIdleInput = -1

func (Module) IdleInput(
	loader configs.Loader,
) IdleInput {
	if v := *idleInputFlag; v != nil {
		return IdleInput(*v)
	}
	if v := configs.First[*int64](loader, "idle_input"); v != nil {
		return IdleInput(*v)
	}
	return defaultIdleInput
}
