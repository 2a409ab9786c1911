package network

import (
	"context"
	"fmt"

	"github.com/reusee/intcode/intcode"
	"github.com/reusee/intcode/intcodeconfigs"
	"github.com/reusee/intcode/logs"
)

type Packet struct {
	From   int
	To     int64
	Values []int64
}

// Network runs addressed machines round-robin. Node i is Machines[i]; every
// node's outputs are grouped into packets of a destination address followed
// by PacketSize values.
type Network struct {
	Machines []*intcode.Machine
	// payload values per packet, 2 if zero
	PacketSize int
	// delivered to a node asking for input with an empty queue
	IdleInput int64
	// receives packets to addresses outside the network. Returning true stops
	// the run.
	External func(ctx context.Context, packet Packet) (stop bool, err error)
	// called when a whole round passes with every node idle and no packet
	// sent. Returned packets are delivered; returning true stops the run.
	// Without OnIdle an idle network ends the run with ErrIdle.
	OnIdle func(ctx context.Context) (packets []Packet, stop bool, err error)

	Logger  logs.Logger
	NewSpan logs.NewSpan

	pending [][]int64
	// IdleInput is queued and not yet followed by anything else
	idleQueued []bool
	rounds     int
}

func (n *Network) packetSize() int {
	if n.PacketSize > 0 {
		return n.PacketSize
	}
	return 2
}

// Send delivers a packet. Packets to addresses outside the network go to
// External.
func (n *Network) Send(ctx context.Context, packet Packet) (stop bool, err error) {
	if packet.To >= 0 && packet.To < int64(len(n.Machines)) {
		n.Machines[packet.To].PushInput(packet.Values...)
		if n.Logger != nil {
			n.Logger.DebugContext(ctx, "packet",
				"from", packet.From,
				"to", packet.To,
				"values", packet.Values,
			)
		}
		return false, nil
	}
	if n.External == nil {
		return false, fmt.Errorf("no route to %d", packet.To)
	}
	return n.External(ctx, packet)
}

// Rounds is the number of completed round-robin passes.
func (n *Network) Rounds() int {
	return n.rounds
}

// Run returns nil when a handler stops it or every node has halted.
func (n *Network) Run(ctx context.Context) error {
	if n.pending == nil {
		n.pending = make([][]int64, len(n.Machines))
		n.idleQueued = make([]bool, len(n.Machines))
	}

	ctxs := make([]context.Context, len(n.Machines))
	for i := range n.Machines {
		nodeCtx := logs.WithMachine(ctx, fmt.Sprintf("node-%d", i))
		if n.NewSpan != nil {
			nodeCtx, _ = n.NewSpan(nodeCtx, "")
		}
		ctxs[i] = nodeCtx
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		idle := true
		live := 0
		for i, m := range n.Machines {
			if m.State() == intcode.StateHalted {
				continue
			}
			live++
			nodeIdle, stop, err := n.turn(ctxs[i], i)
			if err != nil {
				return logs.WrapSpan(ctxs[i], err)
			}
			if stop {
				return nil
			}
			if !nodeIdle {
				idle = false
			}
		}
		n.rounds++

		if live == 0 {
			return nil
		}
		if !idle {
			continue
		}

		if n.OnIdle == nil {
			return fmt.Errorf("%w after %d rounds", ErrIdle, n.rounds)
		}
		if n.Logger != nil {
			n.Logger.DebugContext(ctx, "idle", "rounds", n.rounds)
		}
		packets, stop, err := n.OnIdle(ctx)
		if err != nil {
			return err
		}
		if stop {
			return nil
		}
		for _, packet := range packets {
			stop, err := n.Send(ctx, packet)
			if err != nil {
				return err
			}
			if stop {
				return nil
			}
		}
	}
}

// turn runs node i until it asks for input. A node that started its turn
// with nothing but IdleInput queued and sent nothing is idle.
func (n *Network) turn(ctx context.Context, i int) (idle bool, stop bool, err error) {
	m := n.Machines[i]
	received := m.PendingInputs() > 1 ||
		(m.PendingInputs() == 1 && !n.idleQueued[i])
	n.idleQueued[i] = false
	sent := false
	for {
		intr := m.RunUntilInterrupt()
		switch intr.Kind {

		case intcode.ProducedOutput:
			n.pending[i] = append(n.pending[i], intr.Value)
			if len(n.pending[i]) < 1+n.packetSize() {
				continue
			}
			values := n.pending[i]
			n.pending[i] = nil
			sent = true
			stop, err := n.Send(ctx, Packet{
				From:   i,
				To:     values[0],
				Values: values[1:],
			})
			if err != nil || stop {
				return false, stop, err
			}

		case intcode.NeedsInput:
			m.PushInput(n.IdleInput)
			n.idleQueued[i] = true
			return !sent && !received, false, nil

		case intcode.Halted:
			if n.Logger != nil {
				n.Logger.InfoContext(ctx, "halted", "steps", m.Steps())
			}
			return !sent && !received, false, nil

		case intcode.DecodeError:
			return false, false, intr.Err
		}
	}
}

type NewNetwork func(machines []*intcode.Machine) *Network

func (Module) NewNetwork(
	logger logs.Logger,
	newSpan logs.NewSpan,
	idleInput intcodeconfigs.IdleInput,
) NewNetwork {
	return func(machines []*intcode.Machine) *Network {
		return &Network{
			Machines:  machines,
			IdleInput: int64(idleInput),
			Logger:    logger,
			NewSpan:   newSpan,
		}
	}
}
