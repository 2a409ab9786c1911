package debugs

import (
	"context"
	"fmt"
	"maps"
	"reflect"
	"slices"

	"github.com/reusee/intcode/logs"
	"github.com/reusee/starlarkutil"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap opens a Starlark REPL on stdin with globals bound.
type Tap func(ctx context.Context, what string, globals map[string]any)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) {
		names := slices.Sorted(maps.Keys(globals))
		logger.InfoContext(ctx, "tap: "+what,
			"globals", names,
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		dict, err := toStringDict(globals)
		if err != nil {
			logger.ErrorContext(ctx, "tap: "+what, "error", err)
			return
		}

		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		}, &starlark.Thread{
			Name: what,
		}, dict)
	}
}

func toStringDict(globals map[string]any) (starlark.StringDict, error) {
	ret := make(starlark.StringDict, len(globals))
	for name, value := range globals {
		if t := reflect.TypeOf(value); t != nil && t.Kind() == reflect.Func {
			ret[name] = starlarkutil.MakeFunc(name, value)
			continue
		}
		v, err := toStarlarkValue(value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		ret[name] = v
	}
	return ret, nil
}
