package network

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/reusee/intcode/intcode"
)

var (
	// in addr; out 255, addr, addr; loop reading input
	announceProgram = []int64{
		3, 100,
		104, 255,
		4, 100,
		4, 100,
		3, 101,
		1105, 1, 8,
	}

	// in addr; loop: in x; if x != -1 { out 255, addr, x }
	relayProgram = []int64{
		3, 100,
		3, 101,
		1008, 101, -1, 102,
		1005, 102, 2,
		104, 255,
		4, 100,
		4, 101,
		1105, 1, 2,
	}
)

func newNetwork(t *testing.T, program []int64, n int) (net *Network) {
	var machines []*intcode.Machine
	for i := range n {
		machines = append(machines, intcode.New(program, int64(i)))
	}
	sweepScope(t).Call(func(
		newNetwork NewNetwork,
	) {
		net = newNetwork(machines)
	})
	if net.IdleInput != -1 {
		t.Fatalf("got %v", net.IdleInput)
	}
	return net
}

func TestNetwork_Idle(t *testing.T) {
	net := newNetwork(t, announceProgram, 3)
	var packets []Packet
	net.External = func(ctx context.Context, packet Packet) (bool, error) {
		packets = append(packets, packet)
		return false, nil
	}

	err := net.Run(t.Context())
	if !errors.Is(err, ErrIdle) {
		t.Fatalf("got %v", err)
	}
	if net.Rounds() != 2 {
		t.Fatalf("got %v", net.Rounds())
	}
	if str := fmt.Sprintf("%v", packets); str != "[{0 255 [0 0]} {1 255 [1 1]} {2 255 [2 2]}]" {
		t.Fatalf("got %s", str)
	}
}

func TestNetwork_Relay(t *testing.T) {
	net := newNetwork(t, relayProgram, 2)
	var packets []Packet
	net.External = func(ctx context.Context, packet Packet) (bool, error) {
		packets = append(packets, packet)
		return len(packets) == 2, nil
	}

	if _, err := net.Send(t.Context(), Packet{To: 1, Values: []int64{5, 6}}); err != nil {
		t.Fatal(err)
	}
	if err := net.Run(t.Context()); err != nil {
		t.Fatal(err)
	}
	if str := fmt.Sprintf("%v", packets); str != "[{1 255 [1 5]} {1 255 [1 6]}]" {
		t.Fatalf("got %s", str)
	}
}

func TestNetwork_OnIdle(t *testing.T) {
	net := newNetwork(t, relayProgram, 2)
	var packets []Packet
	net.External = func(ctx context.Context, packet Packet) (bool, error) {
		packets = append(packets, packet)
		return false, nil
	}
	idles := 0
	net.OnIdle = func(ctx context.Context) ([]Packet, bool, error) {
		idles++
		if idles == 1 {
			return []Packet{
				{To: 0, Values: []int64{7, 8}},
			}, false, nil
		}
		return nil, true, nil
	}

	if err := net.Run(t.Context()); err != nil {
		t.Fatal(err)
	}
	if idles != 2 {
		t.Fatalf("got %v", idles)
	}
	if str := fmt.Sprintf("%v", packets); str != "[{0 255 [0 7]} {0 255 [0 8]}]" {
		t.Fatalf("got %s", str)
	}
}

func TestNetwork_NoRoute(t *testing.T) {
	net := newNetwork(t, announceProgram, 1)
	err := net.Run(t.Context())
	if err == nil {
		t.Fatal("should error")
	}
	if errors.Is(err, ErrIdle) {
		t.Fatalf("got %v", err)
	}
}

func TestNetwork_AllHalted(t *testing.T) {
	net := newNetwork(t, []int64{3, 0, 99}, 2)
	if err := net.Run(t.Context()); err != nil {
		t.Fatal(err)
	}
}

func TestNetwork_SendToSelf(t *testing.T) {
	// in addr; send [addr 9 9]; loop: in x; if x == 9 { out 255, addr, x }
	program := []int64{
		3, 100,
		4, 100,
		104, 9,
		104, 9,
		3, 101,
		1008, 101, 9, 102,
		1006, 102, 8,
		104, 255,
		4, 100,
		4, 101,
		1105, 1, 8,
	}
	net := newNetwork(t, program, 1)
	var packets []Packet
	net.External = func(ctx context.Context, packet Packet) (bool, error) {
		packets = append(packets, packet)
		return len(packets) == 2, nil
	}
	if err := net.Run(t.Context()); err != nil {
		t.Fatal(err)
	}
	if str := fmt.Sprintf("%v", packets); str != "[{0 255 [0 9]} {0 255 [0 9]}]" {
		t.Fatalf("got %s", str)
	}
	if net.Rounds() != 0 {
		t.Fatalf("got %v", net.Rounds())
	}
}
