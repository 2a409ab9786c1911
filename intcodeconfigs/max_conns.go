package intcodeconfigs

import (
	"github.com/reusee/intcode/cmds"
	"github.com/reusee/intcode/configs"
	"github.com/reusee/intcode/vars"
)

type MaxConns int

var maxConnsFlag = cmds.Var[int]("-max-conns")

const defaultMaxConns = 16

func (Module) MaxConns(
	loader configs.Loader,
) MaxConns {
	return MaxConns(vars.FirstNonZero(
		*maxConnsFlag,
		configs.First[int](loader, "max_conns"),
		defaultMaxConns,
	))
}
