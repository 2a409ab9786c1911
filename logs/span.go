package logs

import (
	"context"
	"errors"
	"fmt"
)

type Span string

type spanKey struct{}

var SpanKey spanKey

type machineKey struct{}

var MachineKey machineKey

// WithMachine tags records logged with ctx with the machine name.
func WithMachine(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, MachineKey, name)
}

// WrapSpan joins the span and machine of ctx into err.
func WrapSpan(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if v := ctx.Value(SpanKey); v != nil {
		err = errors.Join(err, fmt.Errorf("span: %s", v.(Span)))
	}
	if v := ctx.Value(MachineKey); v != nil {
		err = errors.Join(err, fmt.Errorf("machine: %s", v.(string)))
	}
	return err
}
