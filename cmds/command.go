package cmds

import (
	"fmt"
	"reflect"
)

// Command is a flag or a verb. Its function takes one command line word
// per parameter; pointer parameters may be omitted at the end of the line.
type Command struct {
	fn          reflect.Value
	Description string
	Aliases     []string
}

var errorType = reflect.TypeFor[error]()

func Func(fn any) *Command {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func {
		panic(fmt.Errorf("must be function, got %T", fn))
	}
	t := v.Type()
	switch {
	case t.NumOut() > 1:
		panic(fmt.Errorf("%T: must return 0 or 1 value", fn))
	case t.NumOut() == 1 && t.Out(0) != errorType:
		panic(fmt.Errorf("%T: must return error", fn))
	}
	for i := range t.NumIn() {
		if err := checkArgType(t.In(i)); err != nil {
			panic(fmt.Errorf("%T: %w", fn, err))
		}
	}
	return &Command{
		fn: v,
	}
}

func (c *Command) Desc(desc string) *Command {
	c.Description = desc
	return c
}

func (c *Command) Alias(names ...string) *Command {
	c.Aliases = append(c.Aliases, names...)
	return c
}

func (c *Command) call(args []string) (rest []string, err error) {
	t := c.fn.Type()
	in := make([]reflect.Value, 0, t.NumIn())
	for i := range t.NumIn() {
		var v reflect.Value
		v, args, err = takeArg(t.In(i), args)
		if err != nil {
			return nil, err
		}
		in = append(in, v)
	}
	if rets := c.fn.Call(in); len(rets) > 0 && !rets[0].IsNil() {
		return nil, rets[0].Interface().(error)
	}
	return args, nil
}
