// Package transfer implements a channel-bound fund-escrow Application, the
// Go port of applications/cw20-transfer/src/lib.rs with the CW20
// token-contract mechanics (instantiate-on-reply, mint, cw20 transfer
// messages) left out of scope: this port only escrows the native funds a
// packet carries and releases them on receive, gated by the single
// configured channel exactly as the original's set_allowed_channel /
// "ICS20 like check" does.
package transfer

import (
	"context"
	"encoding/json"
	stderrors "errors"

	"cosmossdk.io/collections"
	sdkstore "cosmossdk.io/core/store"
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/rnbguy/ibc-eureka-tao/x/tao/keeper"
	"github.com/rnbguy/ibc-eureka-tao/x/tao/types"
)

func errIsNotFound(err error) bool {
	return stderrors.Is(err, collections.ErrNotFound)
}

var (
	// ErrUnauthorized is returned by SetAllowedChannel when the caller is not
	// the owner.
	ErrUnauthorized = errorsmod.Register("transfer", 1, "unauthorized")
	// ErrChannelNotAllowed mirrors the original's "not allowed channel".
	ErrChannelNotAllowed = errorsmod.Register("transfer", 2, "not allowed channel")
	// ErrPacketTooLarge mirrors the original's 1024-byte packet size assertion.
	ErrPacketTooLarge = errorsmod.Register("transfer", 3, "packet size must be less than or equal to 1024 bytes")
)

const maxPacketBytes = 1024

// Packet is the opaque payload data a transfer application exchanges,
// the Go port of the original's TransferPacket (sender/receiver/fund/memo).
type Packet struct {
	Sender   types.Address `json:"sender"`
	Receiver types.Address `json:"receiver"`
	Fund     sdk.Coin      `json:"fund"`
	Memo     string        `json:"memo,omitempty"`
}

// App escrows funds on Send and releases them to the packet's receiver on
// Receive, restricted to a single configured channel.
type App struct {
	logger log.Logger

	Schema         collections.Schema
	Owner          collections.Item[string]
	TaoContract    collections.Item[string]
	AllowedChannel collections.Item[types.Channel]
	Escrow         collections.Map[string, sdk.Coins]
}

// New constructs a transfer application over storeService.
func New(storeService sdkstore.KVStoreService, logger log.Logger) *App {
	sb := collections.NewSchemaBuilder(storeService)

	a := &App{
		logger:      logger,
		Owner:       collections.NewItem(sb, collections.NewPrefix(0), "owner", collections.StringValue),
		TaoContract: collections.NewItem(sb, collections.NewPrefix(1), "tao_contract", collections.StringValue),
		AllowedChannel: collections.NewItem(
			sb, collections.NewPrefix(2), "allowed_channel", types.NewJSONValueCodec[types.Channel]("channel"),
		),
		Escrow: collections.NewMap(
			sb, collections.NewPrefix(3), "escrow", collections.StringKey,
			types.NewJSONValueCodec[sdk.Coins]("coins"),
		),
	}

	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	a.Schema = schema

	return a
}

// Init records the owner and the TAO engine address, the original contract's
// instantiate entry point. The TAO address is only stored: Send, Receive and
// Timeout do not check who calls them.
func (a *App) Init(ctx context.Context, owner, taoContract types.Address) error {
	if err := a.Owner.Set(ctx, string(owner)); err != nil {
		return err
	}
	return a.TaoContract.Set(ctx, string(taoContract))
}

// SetAllowedChannel restricts this application to a single channel, gated by
// owner authority exactly like the original's set_allowed_channel.
func (a *App) SetAllowedChannel(ctx context.Context, caller types.Address, channel types.Channel) error {
	owner, err := a.Owner.Get(ctx)
	if err != nil {
		return err
	}
	if string(caller) != owner {
		return ErrUnauthorized
	}
	return a.AllowedChannel.Set(ctx, channel)
}

func (a *App) checkAllowedChannel(ctx context.Context, sourceClient, destinationClient types.ClientRef, counterparty types.Address) error {
	allowed, err := a.AllowedChannel.Get(ctx)
	if err != nil {
		return err
	}
	channel := types.Channel{
		Source:      types.ApplicationInstance{Client: sourceClient},
		Destination: types.ApplicationInstance{Client: destinationClient, Application: counterparty},
	}
	if !allowed.Source.Client.Equal(channel.Source.Client) ||
		!allowed.Destination.Client.Equal(channel.Destination.Client) ||
		allowed.Destination.Application != channel.Destination.Application {
		return ErrChannelNotAllowed
	}
	return nil
}

func (a *App) Send(
	ctx context.Context,
	packetSender types.Address,
	sourceClient, destinationClient types.ClientRef,
	applicationDestination types.Address,
	data []byte,
	funds sdk.Coins,
) error {
	if len(data) > maxPacketBytes {
		return ErrPacketTooLarge
	}
	if err := a.checkAllowedChannel(ctx, sourceClient, destinationClient, applicationDestination); err != nil {
		return err
	}

	var packet Packet
	if err := json.Unmarshal(data, &packet); err != nil {
		return errorsmod.Wrap(err, "decode transfer packet")
	}

	escrowKey := keeper.ChannelKey(types.Channel{
		Source:      types.ApplicationInstance{Client: sourceClient},
		Destination: types.ApplicationInstance{Client: destinationClient, Application: applicationDestination},
	})

	escrowed, err := a.Escrow.Get(ctx, escrowKey)
	if err != nil {
		if !errIsNotFound(err) {
			return err
		}
		escrowed = sdk.NewCoins()
	}
	return a.Escrow.Set(ctx, escrowKey, escrowed.Add(packet.Fund))
}

func (a *App) Receive(
	ctx context.Context,
	destinationClient, sourceClient types.ClientRef,
	applicationSource types.Address,
	data []byte,
	relayer types.Address,
	funds sdk.Coins,
) error {
	if err := a.checkAllowedChannel(ctx, sourceClient, destinationClient, applicationSource); err != nil {
		return err
	}

	var packet Packet
	if err := json.Unmarshal(data, &packet); err != nil {
		return errorsmod.Wrap(err, "decode transfer packet")
	}

	escrowKey := keeper.ChannelKey(types.Channel{
		Source:      types.ApplicationInstance{Client: sourceClient},
		Destination: types.ApplicationInstance{Client: destinationClient},
	})

	escrowed, err := a.Escrow.Get(ctx, escrowKey)
	if err != nil {
		if !errIsNotFound(err) {
			return err
		}
		escrowed = sdk.NewCoins()
	}
	remaining, negative := escrowed.SafeSub(packet.Fund)
	if negative {
		return errorsmod.Wrapf(ErrChannelNotAllowed, "insufficient escrow for %s", packet.Fund)
	}
	return a.Escrow.Set(ctx, escrowKey, remaining)
}

// Timeout refunds an escrowed send back to its originating packet: the
// compensating logic spec.md assigns to application_source.
func (a *App) Timeout(
	ctx context.Context,
	destinationClient, sourceClient types.ClientRef,
	applicationDestination types.Address,
	data []byte,
	caller types.Address,
	funds sdk.Coins,
) error {
	var packet Packet
	if err := json.Unmarshal(data, &packet); err != nil {
		return errorsmod.Wrap(err, "decode transfer packet")
	}

	escrowKey := keeper.ChannelKey(types.Channel{
		Source:      types.ApplicationInstance{Client: sourceClient},
		Destination: types.ApplicationInstance{Client: destinationClient, Application: applicationDestination},
	})

	escrowed, err := a.Escrow.Get(ctx, escrowKey)
	if err != nil {
		if !errIsNotFound(err) {
			return err
		}
		escrowed = sdk.NewCoins()
	}
	remaining, negative := escrowed.SafeSub(packet.Fund)
	if negative {
		return errorsmod.Wrapf(ErrChannelNotAllowed, "insufficient escrow to refund %s", packet.Fund)
	}
	return a.Escrow.Set(ctx, escrowKey, remaining)
}

var _ types.Application = (*App)(nil)
