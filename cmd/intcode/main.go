package main

import (
	"bufio"
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strings"

	"github.com/reusee/dscope"
	"github.com/reusee/intcode/cmds"
	"github.com/reusee/intcode/consoles"
	"github.com/reusee/intcode/debugs"
	"github.com/reusee/intcode/intcode"
	"github.com/reusee/intcode/intcodeconfigs"
	"github.com/reusee/intcode/logs"
	"github.com/reusee/intcode/modes"
	"github.com/reusee/intcode/network"
)

var (
	inputs = cmds.Collect[int64]("-input")
	ascii  = cmds.Switch("-ascii")
	tap    = cmds.Switch("-tap")
)

var action func(scope dscope.Scope, ctx context.Context) error

func init() {
	cmds.Define("run", cmds.Func(func(path string) {
		action = func(scope dscope.Scope, ctx context.Context) error {
			return run(scope, ctx, path)
		}
	}).Desc("run a program on stdin and stdout"))

	cmds.Define("disasm", cmds.Func(func(path string) {
		action = func(scope dscope.Scope, ctx context.Context) error {
			program, err := readProgram(path)
			if err != nil {
				return err
			}
			out := bufio.NewWriter(os.Stdout)
			if err := intcode.Disassemble(out, program); err != nil {
				return err
			}
			return out.Flush()
		}
	}).Desc("print a disassembly of a program"))

	cmds.Define("serve", cmds.Func(func(addr string, path string) {
		action = func(scope dscope.Scope, ctx context.Context) error {
			return serve(scope, ctx, addr, path)
		}
	}).Desc("serve a program over tcp, one machine per connection; empty addr for the configured one"))

	cmds.Define("loop", cmds.Func(func(path string) {
		action = func(scope dscope.Scope, ctx context.Context) error {
			return loop(ctx, path)
		}
	}).Desc("run one machine per -input phase in a feedback ring seeded with 0"))

	cmds.Define("net", cmds.Func(func(path string, nodes int) {
		action = func(scope dscope.Scope, ctx context.Context) error {
			return runNetwork(scope, ctx, path, nodes)
		}
	}).Desc("run a packet network of nodes until it goes idle"))

	cmds.Define("sweep", cmds.Func(func(path string) {
		action = func(scope dscope.Scope, ctx context.Context) error {
			return sweep(scope, ctx, path)
		}
	}).Desc("run a program once per comma separated input line on stdin"))
}

func main() {
	cmds.Execute(os.Args[1:])
	if action == nil {
		cmds.PrintUsage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	defer func() {
		if p := recover(); p != nil {
			fmt.Fprintln(os.Stderr, p)
			os.Exit(1)
		}
	}()
	ce(action(scope, ctx))
}

func readProgram(path string) ([]int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return intcode.ReadProgram(f)
}

func run(scope dscope.Scope, ctx context.Context, path string) (err error) {
	program, err := readProgram(path)
	if err != nil {
		return err
	}
	m := intcode.New(program, *inputs...)

	scope.Call(func(
		logger logs.Logger,
		maxOutputs intcodeconfigs.MaxOutputs,
		tapMachine debugs.TapMachine,
	) {
		ctx = logs.WithMachine(ctx, path)
		console := &consoles.Console{
			Machine:    m,
			In:         os.Stdin,
			Out:        os.Stdout,
			ASCII:      *ascii,
			MaxOutputs: int(maxOutputs),
			Logger:     logger,
		}
		err = console.Run(ctx)
		if err != nil {
			logger.ErrorContext(ctx, "run", "error", err)
		}
		if *tap {
			tapMachine(ctx, path, m)
		}
	})

	return
}

func serve(scope dscope.Scope, ctx context.Context, addr string, path string) (err error) {
	program, err := readProgram(path)
	if err != nil {
		return err
	}

	scope.Call(func(
		logger logs.Logger,
		listenAddr intcodeconfigs.ListenAddr,
		maxConns intcodeconfigs.MaxConns,
		maxOutputs intcodeconfigs.MaxOutputs,
	) {
		if addr == "" {
			addr = string(listenAddr)
		}
		var ln net.Listener
		ln, err = net.Listen("tcp", addr)
		if err != nil {
			return
		}
		logger.InfoContext(ctx, "listening", "addr", ln.Addr().String())
		err = consoles.Serve(ctx, ln, consoles.ServeOptions{
			Machine:    intcode.New(program, *inputs...),
			ASCII:      *ascii,
			MaxConns:   int(maxConns),
			MaxOutputs: int(maxOutputs),
			Logger:     logger,
		})
	})

	return
}

func sweep(scope dscope.Scope, ctx context.Context, path string) (err error) {
	program, err := readProgram(path)
	if err != nil {
		return err
	}

	var inputSets [][]int64
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		values, err := intcode.ParseProgram(line)
		if err != nil {
			return fmt.Errorf("input line %d: %w", len(inputSets)+1, err)
		}
		inputSets = append(inputSets, values)
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	scope.Call(func(
		sweep network.Sweep,
	) {
		var results [][]int64
		results, err = sweep(ctx, program, inputSets)
		if err != nil {
			return
		}
		out := bufio.NewWriter(os.Stdout)
		for _, outputs := range results {
			strs := make([]string, len(outputs))
			for i, v := range outputs {
				strs[i] = fmt.Sprint(v)
			}
			fmt.Fprintln(out, strings.Join(strs, ","))
		}
		err = out.Flush()
	})

	return
}

func loop(ctx context.Context, path string) error {
	program, err := readProgram(path)
	if err != nil {
		return err
	}
	var machines []*intcode.Machine
	for _, phase := range *inputs {
		machines = append(machines, intcode.New(program, phase))
	}
	v, err := network.Loop(ctx, machines, 0)
	if err != nil {
		return err
	}
	fmt.Println(v)
	return nil
}

func runNetwork(scope dscope.Scope, ctx context.Context, path string, nodes int) (err error) {
	program, err := readProgram(path)
	if err != nil {
		return err
	}

	scope.Call(func(
		newNetwork network.NewNetwork,
		logger logs.Logger,
	) {
		var machines []*intcode.Machine
		for i := range nodes {
			machines = append(machines, intcode.New(program, int64(i)))
		}
		nw := newNetwork(machines)
		nw.External = func(ctx context.Context, packet network.Packet) (bool, error) {
			fmt.Printf("%d -> %d: %v\n", packet.From, packet.To, packet.Values)
			return false, nil
		}
		nw.OnIdle = func(ctx context.Context) ([]network.Packet, bool, error) {
			logger.InfoContext(ctx, "network idle", "rounds", nw.Rounds())
			return nil, true, nil
		}
		err = nw.Run(ctx)
	})

	return
}
