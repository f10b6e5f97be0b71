package keeper_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rnbguy/ibc-eureka-tao/x/tao/types"
)

func TestReceivePacket_HappyPath(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.Keeper.Register(f.Ctx, "client-remote"))
	require.NoError(t, f.Keeper.Register(f.Ctx, "app-remote"))

	lc := newFakeLightClient()
	f.Router.lightClients["client-local"] = lc

	packet := testPacket(t, 1, uint64(time.Now().Add(time.Hour).Unix()), "app-local")
	packet.Payloads[0].Header.ApplicationDestination = "app-remote"
	execCtx := types.ExecContext{Now: time.Now(), Sender: "relayer"}

	dispatches, err := f.Keeper.ReceivePacket(f.Ctx, execCtx, packet, 100, []byte("proof"))
	require.NoError(t, err)
	require.Len(t, dispatches, 1)

	d := dispatches[0]
	require.Equal(t, types.DispatchReceive, d.Kind)
	require.Equal(t, types.Address("app-remote"), d.Target)
	require.Equal(t, types.Address("app-local"), d.Counterparty)
	require.Equal(t, packet.Header.Destination, d.Source)
	require.Equal(t, packet.Header.Source, d.Destination)
}

func TestReceivePacket_RejectsUnregisteredClient(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.Keeper.Register(f.Ctx, "app-remote"))

	lc := newFakeLightClient()
	f.Router.lightClients["client-local"] = lc

	packet := testPacket(t, 1, uint64(time.Now().Add(time.Hour).Unix()), "app-local")
	packet.Payloads[0].Header.ApplicationDestination = "app-remote"
	execCtx := types.ExecContext{Now: time.Now(), Sender: "relayer"}

	_, err := f.Keeper.ReceivePacket(f.Ctx, execCtx, packet, 100, []byte("proof"))
	require.ErrorIs(t, err, types.ErrUnauthorizedDestinationClient)
}

func TestReceivePacket_RejectsInactiveClient(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.Keeper.Register(f.Ctx, "client-remote"))
	require.NoError(t, f.Keeper.Register(f.Ctx, "app-remote"))

	lc := newFakeLightClient()
	lc.status = types.LightClientInactive
	f.Router.lightClients["client-local"] = lc

	packet := testPacket(t, 1, uint64(time.Now().Add(time.Hour).Unix()), "app-local")
	packet.Payloads[0].Header.ApplicationDestination = "app-remote"
	execCtx := types.ExecContext{Now: time.Now(), Sender: "relayer"}

	_, err := f.Keeper.ReceivePacket(f.Ctx, execCtx, packet, 100, []byte("proof"))
	require.ErrorIs(t, err, types.ErrClientInactive)
}

func TestReceivePacket_RejectsBadProof(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.Keeper.Register(f.Ctx, "client-remote"))
	require.NoError(t, f.Keeper.Register(f.Ctx, "app-remote"))

	lc := newFakeLightClient()
	lc.membershipOK = false
	f.Router.lightClients["client-local"] = lc

	packet := testPacket(t, 1, uint64(time.Now().Add(time.Hour).Unix()), "app-local")
	packet.Payloads[0].Header.ApplicationDestination = "app-remote"
	execCtx := types.ExecContext{Now: time.Now(), Sender: "relayer"}

	_, err := f.Keeper.ReceivePacket(f.Ctx, execCtx, packet, 100, []byte("proof"))
	require.ErrorIs(t, err, types.ErrProofInvalid)
}

func TestReceivePacket_RejectsAlreadyReceived(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.Keeper.Register(f.Ctx, "client-remote"))
	require.NoError(t, f.Keeper.Register(f.Ctx, "app-remote"))

	lc := newFakeLightClient()
	f.Router.lightClients["client-local"] = lc

	packet := testPacket(t, 1, uint64(time.Now().Add(time.Hour).Unix()), "app-local")
	packet.Payloads[0].Header.ApplicationDestination = "app-remote"
	execCtx := types.ExecContext{Now: time.Now(), Sender: "relayer"}

	_, err := f.Keeper.ReceivePacket(f.Ctx, execCtx, packet, 100, []byte("proof"))
	require.NoError(t, err)

	// The replay carries nonce 1 while the connection now expects 2, so the
	// nonce check rejects it before any status lookup.
	_, err = f.Keeper.ReceivePacket(f.Ctx, execCtx, packet, 100, []byte("proof"))
	require.ErrorIs(t, err, types.ErrNonceMismatch)
}

func TestReceivePacket_RejectsPastTimeout(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.Keeper.Register(f.Ctx, "client-remote"))
	require.NoError(t, f.Keeper.Register(f.Ctx, "app-remote"))

	lc := newFakeLightClient()
	f.Router.lightClients["client-local"] = lc

	packet := testPacket(t, 1, uint64(time.Now().Add(-time.Hour).Unix()), "app-local")
	packet.Payloads[0].Header.ApplicationDestination = "app-remote"
	execCtx := types.ExecContext{Now: time.Now(), Sender: "relayer"}

	_, err := f.Keeper.ReceivePacket(f.Ctx, execCtx, packet, 100, []byte("proof"))
	require.ErrorIs(t, err, types.ErrTimeout)
}

// TestReceivePacket_ZeroNonceResolvesBeforeCommitmentPath exercises the
// AllowZeroNonce=true default: the received nonce counter and the received
// packet record must be keyed by the resolved nonce (1), never by the raw
// header nonce (0).
func TestReceivePacket_ZeroNonceResolvesBeforeCommitmentPath(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.Keeper.Register(f.Ctx, "client-remote"))
	require.NoError(t, f.Keeper.Register(f.Ctx, "app-remote"))

	lc := newFakeLightClient()
	f.Router.lightClients["client-local"] = lc

	packet := testPacket(t, 0, uint64(time.Now().Add(time.Hour).Unix()), "app-local")
	packet.Payloads[0].Header.ApplicationDestination = "app-remote"
	execCtx := types.ExecContext{Now: time.Now(), Sender: "relayer"}

	_, err := f.Keeper.ReceivePacket(f.Ctx, execCtx, packet, 100, []byte("proof"))
	require.NoError(t, err)

	nonce, err := f.Keeper.ReceivedNonce.Get(f.Ctx, keeperConnKey(packet))
	require.NoError(t, err)
	require.Equal(t, uint64(1), nonce)

	stored, err := f.Keeper.ReceivedPacket.Get(f.Ctx, types.PacketKey(keeperConnKey(packet), 1))
	require.NoError(t, err)
	require.Equal(t, packet.Header.Source, stored.Header.Source)
}
