package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/rnbguy/ibc-eureka-tao/x/tao/types"
)

// SendPacket implements spec.md section 4.1's send_packet: validate the
// timeout is still ahead of the ambient clock, gate the source client and
// each payload's source application against the registry, check the
// caller's attached funds, assign or validate the nonce, persist the
// sent commitment, and queue one Dispatch per payload toward each payload's
// own application source (the side that originated the data being sent).
func (k Keeper) SendPacket(ctx context.Context, execCtx types.ExecContext, packet types.Packet) ([]types.Dispatch, error) {
	header := packet.Header

	if header.Timeout <= execCtx.NowSeconds() {
		return nil, errorsmod.Wrapf(types.ErrTimeout, "timeout %d, now %d", header.Timeout, execCtx.NowSeconds())
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, err
	}

	if params.RegistryEnabled {
		if err := k.requireRegistered(ctx, header.Source.Address, types.ErrUnauthorizedSourceClient); err != nil {
			return nil, err
		}
		for _, payload := range packet.Payloads {
			if err := k.requireRegistered(ctx, payload.Header.ApplicationSource, types.ErrUnauthorizedSourceApplication); err != nil {
				return nil, err
			}
		}
	}

	if params.FundsEnabled {
		if err := checkFundsAccounting(packet, execCtx.Funds); err != nil {
			return nil, err
		}
	}

	connKey := ConnectionKey(packet.Connection())

	nonce, err := k.nextNonce(ctx, k.SentNonce, connKey, header.Nonce, params.AllowZeroNonce)
	if err != nil {
		return nil, err
	}
	header.Nonce = nonce
	packet.Header = header

	if err := k.SentPacket.Set(ctx, types.PacketKey(connKey, nonce), packet); err != nil {
		return nil, err
	}
	if err := k.SentNonce.Set(ctx, connKey, nonce); err != nil {
		return nil, err
	}

	dispatches := make([]types.Dispatch, 0, len(packet.Payloads))
	for _, payload := range packet.Payloads {
		dispatches = append(dispatches, types.Dispatch{
			Kind:         types.DispatchSend,
			Target:       payload.Header.ApplicationSource,
			Caller:       execCtx.Sender,
			Source:       header.Source,
			Destination:  header.Destination,
			Counterparty: payload.Header.ApplicationDestination,
			Data:         payload.Data,
			Funds:        payload.Header.Funds,
		})
	}
	return dispatches, nil
}

// nextNonce resolves the nonce a send or receive call should use: one past
// whatever was last recorded for the connection. A zero request is assigned
// that value when AllowZeroNonce is on and rejected with ErrNonceMismatch
// when it is off; a non-zero request must equal it or ErrNonceMismatch is
// returned.
func (k Keeper) nextNonce(
	ctx context.Context,
	counter interface {
		Get(ctx context.Context, key string) (uint64, error)
	},
	connKey string,
	requested uint64,
	allowZero bool,
) (uint64, error) {
	last, err := counter.Get(ctx, connKey)
	if err != nil {
		if !isNotFound(err) {
			return 0, err
		}
		last = 0
	}
	expected := last + 1

	if requested == 0 {
		if !allowZero {
			return 0, errorsmod.Wrapf(types.ErrNonceMismatch, "expected %d, got 0", expected)
		}
		return expected, nil
	}
	if requested != expected {
		return 0, errorsmod.Wrapf(types.ErrNonceMismatch, "expected %d, got %d", expected, requested)
	}
	return requested, nil
}

// checkFundsAccounting verifies the funds actually attached to the call
// cover the sum the packet's payload headers declare, denom for denom.
func checkFundsAccounting(packet types.Packet, attached sdk.Coins) error {
	declared := packet.TotalFunds()
	if !declared.IsAllLTE(attached) {
		return errorsmod.Wrapf(types.ErrFundsMismatch, "declared %s, attached %s", declared, attached)
	}
	return nil
}
