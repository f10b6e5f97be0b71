package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// DispatchKind names which Application entry point a queued Dispatch targets.
type DispatchKind int32

const (
	// DispatchSend queues a call to Application.Send on the source side.
	DispatchSend DispatchKind = iota
	// DispatchReceive queues a call to Application.Receive on the destination side.
	DispatchReceive
	// DispatchTimeout queues a call to Application.Timeout on the source side.
	DispatchTimeout
)

// Dispatch is a deferred handler invocation the engine emits instead of
// calling an Application inline. Per spec.md section 5, these are queued in
// payload order and a driver (the Host) executes them after the engine call
// that produced them returns successfully.
type Dispatch struct {
	Kind DispatchKind `json:"kind"`

	// Target is the application address the invocation is routed to.
	Target Address `json:"target"`

	// Caller is the identity the application sees as the invocation's caller:
	// the original packet sender for Send, the relayer for Receive, and the
	// caller of timeout_packet for Timeout.
	Caller Address `json:"caller"`

	// Source and Destination are the two client arguments in the order the
	// target entry point takes them: the header's source then destination
	// for Send, and the header's destination then source for Receive and
	// Timeout. The engine swaps them when it builds a Receive or Timeout
	// Dispatch; keeper.Execute passes them through unchanged.
	Source       ClientRef `json:"source"`
	Destination  ClientRef `json:"destination"`
	Counterparty Address   `json:"counterparty"`
	Data         []byte    `json:"data,omitempty"`
	Funds        sdk.Coins `json:"funds,omitempty"`
}
