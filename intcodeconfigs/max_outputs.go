package intcodeconfigs

import (
	"github.com/reusee/intcode/cmds"
	"github.com/reusee/intcode/configs"
	"github.com/reusee/intcode/vars"
)

// MaxOutputs bounds the outputs a console accepts. Zero means no bound.
type MaxOutputs int

var maxOutputsFlag = cmds.Var[int]("-max-outputs")

func (Module) MaxOutputs(
	loader configs.Loader,
) MaxOutputs {
	return MaxOutputs(vars.FirstNonZero(
		*maxOutputsFlag,
		configs.First[int](loader, "max_outputs"),
	))
}
