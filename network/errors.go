package network

import "errors"

var (
	ErrDeadlock = errors.New("deadlock")
	ErrIdle     = errors.New("network idle")
)
