package consoles

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/reusee/intcode/intcode"
	"github.com/reusee/intcode/logs"
)

var ErrTooManyOutputs = errors.New("too many outputs")

// Console connects a machine to a line oriented reader and writer.
type Console struct {
	Machine *intcode.Machine
	In      io.Reader
	Out     io.Writer
	// bytes in ASCII mode, decimal numbers otherwise
	ASCII bool
	// zero for no limit
	MaxOutputs int
	Logger     logs.Logger
}

// Run returns nil when the machine halts or the input ends while the
// machine waits for it.
func (c *Console) Run(ctx context.Context) (retErr error) {
	in := bufio.NewReader(c.In)
	out := bufio.NewWriter(c.Out)
	defer func() {
		if err := out.Flush(); err != nil && retErr == nil {
			retErr = err
		}
	}()

	numOutputs := 0
	for intr, err := range c.Machine.Run {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		switch intr.Kind {

		case intcode.NeedsInput:
			if err := out.Flush(); err != nil {
				return err
			}
			line, err := in.ReadString('\n')
			if errors.Is(err, io.EOF) && line == "" {
				c.log(ctx, "input closed", "pc", c.Machine.PC)
				return nil
			} else if err != nil && !errors.Is(err, io.EOF) {
				return err
			}
			if err := c.push(line); err != nil {
				return err
			}

		case intcode.ProducedOutput:
			numOutputs++
			if c.MaxOutputs > 0 && numOutputs > c.MaxOutputs {
				return fmt.Errorf("%w: %d", ErrTooManyOutputs, c.MaxOutputs)
			}
			if c.ASCII && intr.Value >= 0 && intr.Value < 128 {
				if err := out.WriteByte(byte(intr.Value)); err != nil {
					return err
				}
			} else {
				if _, err := fmt.Fprintln(out, intr.Value); err != nil {
					return err
				}
			}

		case intcode.Halted:
			c.log(ctx, "halted",
				"steps", c.Machine.Steps(),
				"outputs", numOutputs,
			)
			return nil

		}
	}
	return nil
}

func (c *Console) push(line string) error {
	if c.ASCII {
		line = strings.TrimRight(line, "\r\n")
		c.Machine.PushASCII(line + "\n")
		return nil
	}
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\r' || r == '\n'
	})
	// blank lines are skipped, the machine asks again
	for _, field := range fields {
		v, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return fmt.Errorf("bad input %q: %w", field, err)
		}
		c.Machine.PushInput(v)
	}
	return nil
}

func (c *Console) log(ctx context.Context, msg string, args ...any) {
	if c.Logger != nil {
		c.Logger.InfoContext(ctx, msg, args...)
	}
}
