package types

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// LightClient is the boundary capability the engine invokes to verify
// commitments from a remote chain at a stated proof height. Query operations
// MUST be side-effect-free; Update and Prune are the only state-mutating
// operations and the engine never calls them itself.
type LightClient interface {
	Update(ctx context.Context, header []byte) error
	Status(ctx context.Context) (LightClientStatus, error)
	Timestamp(ctx context.Context, height uint64) (uint64, error)
	CheckMembership(ctx context.Context, key, value, prefix []byte, height uint64, proof []byte) (bool, error)
	CheckNonMembership(ctx context.Context, key, prefix []byte, height uint64, proof []byte) (bool, error)
	Prune(ctx context.Context) error
}

// Application is the boundary capability that consumes and produces packet
// payloads. Implementations MUST reject calls whose caller is not the
// registered TAO address; the engine itself does not enforce this, mirroring
// the original contracts' own authorization checks (app/src/implementation.rs).
type Application interface {
	Send(
		ctx context.Context,
		packetSender Address,
		sourceClient, destinationClient ClientRef,
		applicationDestination Address,
		data []byte,
		funds sdk.Coins,
	) error

	Receive(
		ctx context.Context,
		destinationClient, sourceClient ClientRef,
		applicationSource Address,
		data []byte,
		relayer Address,
		funds sdk.Coins,
	) error

	Timeout(
		ctx context.Context,
		destinationClient, sourceClient ClientRef,
		applicationDestination Address,
		data []byte,
		caller Address,
		funds sdk.Coins,
	) error
}

// LightClientRouter resolves a registered light-client capability by address.
// This is the Go stand-in for the "trait-object polymorphism over any
// LightClient" design note: a tagged lookup rather than dynamic dispatch
// across a host boundary.
type LightClientRouter interface {
	GetLightClient(addr Address) (LightClient, bool)
}

// ApplicationRouter resolves a registered application capability by address.
type ApplicationRouter interface {
	GetApplication(addr Address) (Application, bool)
}
