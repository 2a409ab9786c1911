package consoles

import (
	"context"
	"errors"
	"net"
	"sync"

	"github.com/reusee/intcode/intcode"
	"github.com/reusee/intcode/logs"
	"golang.org/x/net/netutil"
)

type ServeOptions struct {
	// cloned for every connection
	Machine    *intcode.Machine
	ASCII      bool
	MaxConns   int
	MaxOutputs int
	Logger     logs.Logger
}

// Serve runs a console per accepted connection until ctx is done.
func Serve(ctx context.Context, ln net.Listener, opts ServeOptions) error {
	if opts.MaxConns > 0 {
		ln = netutil.LimitListener(ln, opts.MaxConns)
	}

	ctx, cancel := context.WithCancel(ctx)
	wg := new(sync.WaitGroup)
	defer func() {
		// closes the listener and every open connection before waiting
		cancel()
		wg.Wait()
	}()
	go func() {
		<-ctx.Done()
		ln.Close()
	}()

	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			return err
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer conn.Close()
			// unblock reads on shutdown
			stop := context.AfterFunc(ctx, func() {
				conn.Close()
			})
			defer stop()

			connCtx := logs.WithMachine(ctx, conn.RemoteAddr().String())
			if opts.Logger != nil {
				opts.Logger.InfoContext(connCtx, "accept")
			}
			console := &Console{
				Machine:    opts.Machine.Clone(),
				In:         conn,
				Out:        conn,
				ASCII:      opts.ASCII,
				MaxOutputs: opts.MaxOutputs,
				Logger:     opts.Logger,
			}
			if err := console.Run(connCtx); err != nil && opts.Logger != nil {
				opts.Logger.WarnContext(connCtx, "console",
					"error", err,
				)
			}
		}()
	}
}
