package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"

	"github.com/rnbguy/ibc-eureka-tao/x/tao/types"
)

// TimeoutPacket implements spec.md section 4.1's timeout_packet. The
// original contracts (original_source/tao/src/lib.rs) dispatch the
// compensating call to application_destination, but that contradicts both
// spec.md's own prose ("toward payload.application_source — the source side
// runs the compensating logic") and standard IBC/Eureka refund-on-source
// semantics: a packet that never arrived must return control to whichever
// side originated it, not the side that never received it. This port follows
// spec.md's prose and refunds on application_source, treating the original's
// application_destination target as a bug this port does not reproduce (see
// DESIGN.md).
func (k Keeper) TimeoutPacket(
	ctx context.Context,
	execCtx types.ExecContext,
	packet types.Packet,
	proofHeight uint64,
	proof []byte,
) ([]types.Dispatch, error) {
	header := packet.Header

	lightClient, ok := k.lightClients.GetLightClient(header.Destination.Address)
	if !ok {
		return nil, errorsmod.Wrapf(types.ErrUnknownLightClient, "address: %s", header.Destination.Address)
	}

	status, err := lightClient.Status(ctx)
	if err != nil {
		return nil, err
	}
	if status != types.LightClientActive {
		return nil, errorsmod.Wrapf(types.ErrClientInactive, "client: %s", header.Destination.Address)
	}

	destTimestamp, err := lightClient.Timestamp(ctx, proofHeight)
	if err != nil {
		return nil, err
	}
	if destTimestamp < header.Timeout {
		return nil, errorsmod.Wrapf(types.ErrTimeoutNotReached, "timeout %d, destination timestamp %d", header.Timeout, destTimestamp)
	}

	connKey := ConnectionKey(packet.Connection())
	statusKey := types.PacketKey(connKey, header.Nonce)

	if err := k.checkNotFinalized(ctx, statusKey); err != nil {
		return nil, err
	}

	path := commitmentPath(connKey, directionReceived, header.Nonce)

	absent, err := lightClient.CheckNonMembership(ctx, []byte(path), header.Destination.Prefix, proofHeight, proof)
	if err != nil {
		return nil, err
	}
	if !absent {
		return nil, errorsmod.Wrapf(types.ErrProofInvalid, "connection: %s, nonce: %d", connKey, header.Nonce)
	}

	if err := k.PacketStatus.Set(ctx, statusKey, types.PacketStatusTimedOut); err != nil {
		return nil, err
	}

	dispatches := make([]types.Dispatch, 0, len(packet.Payloads))
	for _, payload := range packet.Payloads {
		dispatches = append(dispatches, types.Dispatch{
			Kind:         types.DispatchTimeout,
			Target:       payload.Header.ApplicationSource,
			Caller:       execCtx.Sender,
			Source:       header.Destination,
			Destination:  header.Source,
			Counterparty: payload.Header.ApplicationDestination,
			Data:         payload.Data,
			Funds:        payload.Header.Funds,
		})
	}
	return dispatches, nil
}
