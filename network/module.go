package network

import (
	"github.com/reusee/dscope"
	"github.com/reusee/intcode/intcodeconfigs"
	"github.com/reusee/intcode/logs"
)

type Module struct {
	dscope.Module
	Logs    logs.Module
	Configs intcodeconfigs.Module
}
