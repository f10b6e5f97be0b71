// Package keeper implements the TAO packet engine: channel identity, nonce
// sequencing, commitment storage, timeout/receive/replay discipline,
// light-client proof gating, and fan-out dispatch to application handlers.
package keeper

import (
	"context"

	"cosmossdk.io/collections"
	sdkstore "cosmossdk.io/core/store"
	"cosmossdk.io/log"
	"github.com/cosmos/cosmos-sdk/codec"

	"github.com/rnbguy/ibc-eureka-tao/x/tao/types"
)

// Keeper owns the commitment store, the registry, and the deployment-model
// parameters. It is the TAO engine.
type Keeper struct {
	storeService sdkstore.KVStoreService
	logger       log.Logger

	lightClients types.LightClientRouter
	applications types.ApplicationRouter

	Schema collections.Schema

	Params        collections.Item[types.Params]
	SentNonce     collections.Map[string, uint64]
	SentPacket    collections.Map[collections.Pair[string, uint64], types.Packet]
	ReceivedNonce collections.Map[string, uint64]
	ReceivedPacket collections.Map[collections.Pair[string, uint64], types.Packet]
	PacketStatus  collections.Map[collections.Pair[string, uint64], types.PacketStatus]
	Registry      collections.Map[string, bool]
	PendingDeploy collections.Map[uint64, uint64]
	NextReplyID   collections.Item[uint64]
}

// NewKeeper returns a new Keeper wired to the given storage service, logger,
// and the routers resolving the LightClient/Application capabilities it
// dispatches to. This mirrors x/pse/keeper.NewKeeper's constructor shape:
// a schema builder populated with every collection, built once and panicking
// on a malformed schema (a programmer error, not a runtime one).
func NewKeeper(
	storeService sdkstore.KVStoreService,
	logger log.Logger,
	lightClients types.LightClientRouter,
	applications types.ApplicationRouter,
) Keeper {
	sb := collections.NewSchemaBuilder(storeService)

	k := Keeper{
		storeService: storeService,
		logger:       logger,
		lightClients: lightClients,
		applications: applications,

		Params: collections.NewItem(
			sb,
			types.ParamsKey,
			"params",
			types.NewJSONValueCodec[types.Params]("params"),
		),
		SentNonce: collections.NewMap(
			sb,
			types.SentNonceKey,
			"sent_nonce",
			collections.StringKey,
			collections.Uint64Value,
		),
		SentPacket: collections.NewMap(
			sb,
			types.SentPacketKey,
			"sent_packet",
			collections.PairKeyCodec(collections.StringKey, collections.Uint64Key),
			types.NewJSONValueCodec[types.Packet]("packet"),
		),
		ReceivedNonce: collections.NewMap(
			sb,
			types.ReceivedNonceKey,
			"received_nonce",
			collections.StringKey,
			collections.Uint64Value,
		),
		ReceivedPacket: collections.NewMap(
			sb,
			types.ReceivedPacketKey,
			"received_packet",
			collections.PairKeyCodec(collections.StringKey, collections.Uint64Key),
			types.NewJSONValueCodec[types.Packet]("packet"),
		),
		PacketStatus: collections.NewMap(
			sb,
			types.PacketStatusKey,
			"packet_status",
			collections.PairKeyCodec(collections.StringKey, collections.Uint64Key),
			types.NewJSONValueCodec[types.PacketStatus]("packet_status"),
		),
		Registry: collections.NewMap(
			sb,
			types.RegistryKey,
			"registry",
			collections.StringKey,
			codec.BoolValue,
		),
		PendingDeploy: collections.NewMap(
			sb,
			types.PendingDeployKey,
			"pending_deploy",
			collections.Uint64Key,
			collections.Uint64Value,
		),
		NextReplyID: collections.NewItem(
			sb,
			types.NextReplyIDKey,
			"next_reply_id",
			collections.Uint64Value,
		),
	}

	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	k.Schema = schema

	return k
}

// Logger returns a module-scoped logger, following the Cosmos SDK keeper
// convention.
func (k Keeper) Logger() log.Logger {
	return k.logger.With("module", "x/"+types.ModuleName)
}

// GetParams returns the current parameters, falling back to defaults if none
// have been set (e.g. before InitGenesis on a fresh store in a unit test).
func (k Keeper) GetParams(ctx context.Context) (types.Params, error) {
	params, err := k.Params.Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return types.DefaultParams(), nil
		}
		return types.Params{}, err
	}
	return params, nil
}

// SetParams stores the module parameters.
func (k Keeper) SetParams(ctx context.Context, params types.Params) error {
	return k.Params.Set(ctx, params)
}
