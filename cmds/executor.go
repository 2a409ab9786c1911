package cmds

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

var ErrUnknownCommand = errors.New("unknown command")

type Executor struct {
	commands map[string]*Command
}

func NewExecutor() *Executor {
	ret := &Executor{
		commands: make(map[string]*Command),
	}
	ret.Define("-h", Func(func() {
		ret.PrintUsage()
		os.Exit(0)
	}).
		Desc("print this usage").
		Alias("help", "-help", "--help"))
	return ret
}

func (p *Executor) Define(name string, command *Command) {
	for _, name := range append([]string{name}, command.Aliases...) {
		if _, ok := p.commands[name]; ok {
			panic(fmt.Errorf("duplicated command %s", name))
		}
		p.commands[name] = command
	}
}

// Execute runs each command in args in order, each consuming its own
// arguments.
func (p *Executor) Execute(args []string) error {
	for len(args) > 0 {
		name := strings.TrimSpace(args[0])
		command, ok := p.commands[name]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
		}
		var err error
		args, err = command.call(args[1:])
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}
