package keeper

import (
	"context"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"

	"github.com/rnbguy/ibc-eureka-tao/x/tao/types"
)

// ReceivePacket implements spec.md section 4.1's receive_packet: check the
// timeout hasn't already elapsed, gate the caller-supplied registry
// membership of the destination endpoint, resolve the next expected nonce,
// enforce receive/timeout exclusivity per (connection, nonce), require the
// source-side light client to be live, verify the packet's membership
// commitment against the stated proof height, persist the received
// commitment and status, and queue one Dispatch per payload toward each
// payload's own application destination.
func (k Keeper) ReceivePacket(
	ctx context.Context,
	execCtx types.ExecContext,
	packet types.Packet,
	proofHeight uint64,
	proof []byte,
) ([]types.Dispatch, error) {
	header := packet.Header

	if header.Timeout <= execCtx.NowSeconds() {
		return nil, errorsmod.Wrapf(types.ErrTimeout, "timeout %d, now %d", header.Timeout, execCtx.NowSeconds())
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, err
	}

	if params.RegistryEnabled {
		if err := k.requireRegistered(ctx, header.Destination.Address, types.ErrUnauthorizedDestinationClient); err != nil {
			return nil, err
		}
		for _, payload := range packet.Payloads {
			if err := k.requireRegistered(ctx, payload.Header.ApplicationDestination, types.ErrUnauthorizedDestinationApplication); err != nil {
				return nil, err
			}
		}
	}

	connKey := ConnectionKey(packet.Connection())

	if header.Nonce != 0 {
		if err := k.checkNotFinalized(ctx, types.PacketKey(connKey, header.Nonce)); err != nil {
			return nil, err
		}
	}

	nonce, err := k.nextNonce(ctx, k.ReceivedNonce, connKey, header.Nonce, params.AllowZeroNonce)
	if err != nil {
		return nil, err
	}
	statusKey := types.PacketKey(connKey, nonce)

	if err := k.checkNotFinalized(ctx, statusKey); err != nil {
		return nil, err
	}

	lightClient, ok := k.lightClients.GetLightClient(header.Source.Address)
	if !ok {
		return nil, errorsmod.Wrapf(types.ErrUnknownLightClient, "address: %s", header.Source.Address)
	}

	status, err := lightClient.Status(ctx)
	if err != nil {
		return nil, err
	}
	if status != types.LightClientActive {
		return nil, errorsmod.Wrapf(types.ErrClientInactive, "client: %s", header.Source.Address)
	}

	digest, err := commitmentDigest(packet)
	if err != nil {
		return nil, err
	}
	path := commitmentPath(connKey, directionSent, nonce)

	ok, err = lightClient.CheckMembership(ctx, []byte(path), digest, header.Source.Prefix, proofHeight, proof)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errorsmod.Wrapf(types.ErrProofInvalid, "connection: %s, nonce: %d", connKey, nonce)
	}

	if err := k.ReceivedPacket.Set(ctx, statusKey, packet); err != nil {
		return nil, err
	}
	if err := k.ReceivedNonce.Set(ctx, connKey, nonce); err != nil {
		return nil, err
	}
	if err := k.PacketStatus.Set(ctx, statusKey, types.PacketStatusReceived); err != nil {
		return nil, err
	}

	dispatches := make([]types.Dispatch, 0, len(packet.Payloads))
	for _, payload := range packet.Payloads {
		dispatches = append(dispatches, types.Dispatch{
			Kind:         types.DispatchReceive,
			Target:       payload.Header.ApplicationDestination,
			Caller:       execCtx.Sender,
			Source:       header.Destination,
			Destination:  header.Source,
			Counterparty: payload.Header.ApplicationSource,
			Data:         payload.Data,
			Funds:        payload.Header.Funds,
		})
	}
	return dispatches, nil
}

// checkNotFinalized rejects a receive or timeout whose (connection, nonce)
// already carries a terminal status, resolving spec.md's Open Question on
// receive/timeout mutual exclusivity.
func (k Keeper) checkNotFinalized(ctx context.Context, statusKey collections.Pair[string, uint64]) error {
	status, err := k.PacketStatus.Get(ctx, statusKey)
	if err != nil {
		if isNotFound(err) {
			return nil
		}
		return err
	}
	if status != types.PacketStatusNone {
		return errorsmod.Wrapf(types.ErrAlreadyReceived, "status: %s", status)
	}
	return nil
}
