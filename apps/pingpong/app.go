// Package pingpong implements the simplest possible Application capability:
// an authority-gated single value store that the TAO engine's receive
// dispatch overwrites, the Go port of app/src/{lib,interface,implementation}.rs.
// It has no registry or funds handling of its own — spec.md's Open Question
// on a minimal deployment model is satisfied by the engine's own
// Params.RegistryEnabled/FundsEnabled flags rather than duplicating those
// checks here.
package pingpong

import (
	"context"

	"cosmossdk.io/collections"
	sdkstore "cosmossdk.io/core/store"
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/rnbguy/ibc-eureka-tao/x/tao/types"
)

// ErrUnauthorized reports a Receive call whose caller is not the configured
// authority, the Go port of app/src/implementation.rs's
// StdError::generic_err("unauthorized").
var ErrUnauthorized = errorsmod.Register("pingpong", 1, "unauthorized")

// App is a single-value echo application: Send is a no-op, Receive
// overwrites its stored value with the packet data if the caller matches
// the configured authority.
type App struct {
	logger log.Logger

	Schema    collections.Schema
	Authority collections.Item[string]
	Value     collections.Item[string]
}

// New constructs a pingpong application over storeService. Authority and
// Value are left unset until Init is called, mirroring the original
// contract's instantiate entry point.
func New(storeService sdkstore.KVStoreService, logger log.Logger) *App {
	sb := collections.NewSchemaBuilder(storeService)

	a := &App{
		logger:    logger,
		Authority: collections.NewItem(sb, collections.NewPrefix(0), "authority", collections.StringValue),
		Value:     collections.NewItem(sb, collections.NewPrefix(1), "value", collections.StringValue),
	}

	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	a.Schema = schema

	return a
}

// Init sets the authority allowed to call Receive and seeds the initial
// value, exactly the original contract's instantiate defaults.
func (a *App) Init(ctx context.Context, authority types.Address) error {
	if err := a.Authority.Set(ctx, string(authority)); err != nil {
		return err
	}
	return a.Value.Set(ctx, "hello world")
}

func (a *App) Send(
	ctx context.Context,
	packetSender types.Address,
	sourceClient, destinationClient types.ClientRef,
	applicationDestination types.Address,
	data []byte,
	funds sdk.Coins,
) error {
	return nil
}

func (a *App) Receive(
	ctx context.Context,
	destinationClient, sourceClient types.ClientRef,
	applicationSource types.Address,
	data []byte,
	relayer types.Address,
	funds sdk.Coins,
) error {
	authority, err := a.Authority.Get(ctx)
	if err != nil {
		return err
	}
	if string(relayer) != authority {
		return ErrUnauthorized
	}
	return a.Value.Set(ctx, string(data))
}

func (a *App) Timeout(
	ctx context.Context,
	destinationClient, sourceClient types.ClientRef,
	applicationDestination types.Address,
	data []byte,
	caller types.Address,
	funds sdk.Coins,
) error {
	return nil
}

var _ types.Application = (*App)(nil)
