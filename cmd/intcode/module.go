package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/intcode/debugs"
	"github.com/reusee/intcode/intcodeconfigs"
	"github.com/reusee/intcode/logs"
	"github.com/reusee/intcode/network"
)

type Module struct {
	dscope.Module
	Logs    logs.Module
	Configs intcodeconfigs.Module
	Debugs  debugs.Module
	Network network.Module
}
