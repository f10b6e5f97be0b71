package keeper

import (
	"context"

	"github.com/rnbguy/ibc-eureka-tao/x/tao/types"
)

// InitGenesis initializes the module's state from a provided genesis state,
// following x/pse/keeper/genesis.go's shape: set params, then write the
// registry and each connection's nonces and packets, marking every received
// packet as received. Existing entries are not cleared first; pending
// deploys, the reply-ID counter and timed-out statuses are not part of
// genesis.
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := k.Params.Set(ctx, genState.Params); err != nil {
		return err
	}

	for _, addr := range genState.Registry {
		if err := k.Register(ctx, addr); err != nil {
			return err
		}
	}

	for _, conn := range genState.Connections {
		connKey := ConnectionKey(conn.Connection)

		if conn.SentNonce > 0 {
			if err := k.SentNonce.Set(ctx, connKey, conn.SentNonce); err != nil {
				return err
			}
		}
		for nonce, packet := range conn.SentPackets {
			if err := k.SentPacket.Set(ctx, types.PacketKey(connKey, nonce), packet); err != nil {
				return err
			}
		}

		if conn.ReceivedNonce > 0 {
			if err := k.ReceivedNonce.Set(ctx, connKey, conn.ReceivedNonce); err != nil {
				return err
			}
		}
		for nonce, packet := range conn.ReceivedPackets {
			key := types.PacketKey(connKey, nonce)
			if err := k.ReceivedPacket.Set(ctx, key, packet); err != nil {
				return err
			}
			if err := k.PacketStatus.Set(ctx, key, types.PacketStatusReceived); err != nil {
				return err
			}
		}
	}

	return nil
}

// ExportGenesis returns the module's exported genesis, walking every
// collection in deterministic key order the way x/pse/keeper/genesis.go's
// ExportGenesis walks AllocationSchedule.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	genesis := types.DefaultGenesisState()

	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, err
	}
	genesis.Params = params

	registry, err := k.OwnedContracts(ctx)
	if err != nil {
		return nil, err
	}
	genesis.Registry = registry

	connections := map[string]*types.ConnectionState{}
	order := make([]string, 0)
	stateFor := func(connKey string, conn types.Connection) *types.ConnectionState {
		state, ok := connections[connKey]
		if !ok {
			state = &types.ConnectionState{
				Connection:      conn,
				SentPackets:     map[uint64]types.Packet{},
				ReceivedPackets: map[uint64]types.Packet{},
			}
			connections[connKey] = state
			order = append(order, connKey)
		}
		return state
	}

	sentIter, err := k.SentPacket.Iterate(ctx, nil)
	if err != nil {
		return nil, err
	}
	for ; sentIter.Valid(); sentIter.Next() {
		kv, err := sentIter.KeyValue()
		if err != nil {
			sentIter.Close()
			return nil, err
		}
		connKey, nonce := kv.Key.K1(), kv.Key.K2()
		state := stateFor(connKey, kv.Value.Connection())
		state.SentPackets[nonce] = kv.Value
	}
	sentIter.Close()

	receivedIter, err := k.ReceivedPacket.Iterate(ctx, nil)
	if err != nil {
		return nil, err
	}
	for ; receivedIter.Valid(); receivedIter.Next() {
		kv, err := receivedIter.KeyValue()
		if err != nil {
			receivedIter.Close()
			return nil, err
		}
		connKey, nonce := kv.Key.K1(), kv.Key.K2()
		state := stateFor(connKey, kv.Value.Connection())
		state.ReceivedPackets[nonce] = kv.Value
	}
	receivedIter.Close()

	for connKey, state := range connections {
		if nonce, err := k.SentNonce.Get(ctx, connKey); err == nil {
			state.SentNonce = nonce
		} else if !isNotFound(err) {
			return nil, err
		}
		if nonce, err := k.ReceivedNonce.Get(ctx, connKey); err == nil {
			state.ReceivedNonce = nonce
		} else if !isNotFound(err) {
			return nil, err
		}
	}

	exported := make([]types.ConnectionState, 0, len(order))
	for _, connKey := range order {
		exported = append(exported, *connections[connKey])
	}
	genesis.Connections = exported

	return genesis, nil
}
