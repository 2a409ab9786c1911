package cmds

import (
	"strings"
	"testing"
)

func TestUsage(t *testing.T) {
	executor := NewExecutor()
	executor.Define("run", Func(func(path string) {
	}).Desc("run a program"))
	executor.Define("net", Func(func(path string, nodes int) {
	}).Desc("run a network").Alias("network"))
	executor.Define("-input", Func(func(vs []int64) {
	}))

	buf := new(strings.Builder)
	executor.WriteUsage(buf)
	if got := buf.String(); got != strings.Join([]string{
		"--help, -h, -help, help\tprint this usage",
		"-input <[]int64>",
		"net, network <string> <int>\trun a network",
		"run <string>\trun a program",
		"",
	}, "\n") {
		t.Fatalf("got\n%s", got)
	}
}
