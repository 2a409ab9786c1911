package cmds

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	p.WriteUsage(os.Stderr)
}

// WriteUsage lists commands sorted by name, aliases on one line.
func (p *Executor) WriteUsage(w io.Writer) {
	names := make(map[*Command][]string)
	for name, cmd := range p.commands {
		names[cmd] = append(names[cmd], name)
	}
	var lines []string
	for cmd, ns := range names {
		slices.Sort(ns)
		line := strings.Join(ns, ", ")
		t := cmd.fn.Type()
		for i := range t.NumIn() {
			line += " <" + t.In(i).String() + ">"
		}
		if cmd.Description != "" {
			line += "\t" + cmd.Description
		}
		lines = append(lines, line)
	}
	slices.Sort(lines)
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
}
