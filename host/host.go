// Package host defines the boundary a TAO engine driver sits behind: the
// storage, clock, and caller identity the keeper needs for a call, plus the
// dispatch queue and reply plumbing a driver loop empties after every
// engine call returns. spec.md's design notes describe this boundary in
// terms of a CosmWasm deps/env/info triple; Host is this port's stand-in.
package host

import (
	"context"
	"time"

	sdkstore "cosmossdk.io/core/store"

	"github.com/rnbguy/ibc-eureka-tao/x/tao/types"
)

// Host is the ambient environment a driver provides to the TAO engine and
// the applications/light clients it dispatches to. Implementations own the
// underlying KV store; the engine and applications only ever see it through
// the sdkstore.KVStoreService each keeper/app constructor is handed.
type Host interface {
	// StoreService returns the KV storage the engine and its registered
	// capabilities are built over.
	StoreService() sdkstore.KVStoreService

	// Context returns the context a driver passes to keeper calls for the
	// current operation, carrying whatever deadline/cancellation the
	// concrete host wants to enforce.
	Context() context.Context

	// Now returns the ambient wall-clock time used for timeout checks.
	Now() time.Time

	// Caller returns the identity the driver is executing on behalf of for
	// the current operation.
	Caller() types.Address

	// Enqueue appends dispatches to the pending queue, called by a driver
	// immediately after a successful SendPacket/ReceivePacket/TimeoutPacket
	// call returns its dispatch list.
	Enqueue(dispatches ...types.Dispatch)

	// DrainQueue removes and returns every currently queued dispatch, in
	// the order Enqueue appended them.
	DrainQueue() []types.Dispatch

	// NewRunID returns a fresh correlation identifier a driver can attach to
	// a batch of dispatches for logging and tracing, since a single
	// send/receive/timeout call can fan out to many application invocations.
	NewRunID() string
}
