package intcodeconfigs

import (
	"github.com/reusee/intcode/configs"
	"github.com/reusee/intcode/vars"
)

type ListenAddr string

const defaultListenAddr = "127.0.0.1:7777"

func (Module) ListenAddr(
	loader configs.Loader,
) ListenAddr {
	return ListenAddr(vars.FirstNonZero(
		configs.First[string](loader, "listen"),
		defaultListenAddr,
	))
}
