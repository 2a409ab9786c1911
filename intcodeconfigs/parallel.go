package intcodeconfigs

import (
	"runtime"

	"github.com/reusee/intcode/cmds"
	"github.com/reusee/intcode/configs"
	"github.com/reusee/intcode/vars"
)

type Parallel int

var parallelFlag = cmds.Var[int]("-parallel")

func (Module) Parallel(
	loader configs.Loader,
) Parallel {
	return Parallel(vars.FirstNonZero(
		*parallelFlag,
		configs.First[int](loader, "parallel"),
		runtime.NumCPU(),
	))
}
