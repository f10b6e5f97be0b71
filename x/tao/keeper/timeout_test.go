package keeper_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rnbguy/ibc-eureka-tao/x/tao/types"
)

func TestTimeoutPacket_HappyPath(t *testing.T) {
	f := newFixture(t)

	lc := newFakeLightClient()
	lc.timestamp = uint64(time.Now().Add(2 * time.Hour).Unix())
	f.Router.lightClients["client-remote"] = lc

	packet := testPacket(t, 1, uint64(time.Now().Add(time.Hour).Unix()), "app-local")
	execCtx := types.ExecContext{Now: time.Now(), Sender: "relayer"}

	dispatches, err := f.Keeper.TimeoutPacket(f.Ctx, execCtx, packet, 100, []byte("proof"))
	require.NoError(t, err)
	require.Len(t, dispatches, 1)

	d := dispatches[0]
	require.Equal(t, types.DispatchTimeout, d.Kind)
	// Resolved design decision: timeout dispatches to application_source,
	// the side that originated the packet, not application_destination.
	require.Equal(t, types.Address("app-local"), d.Target)
	require.Equal(t, types.Address("app-remote"), d.Counterparty)
}

func TestTimeoutPacket_RejectsBeforeDestinationTimestampPassesTimeout(t *testing.T) {
	f := newFixture(t)

	lc := newFakeLightClient()
	lc.timestamp = uint64(time.Now().Unix())
	f.Router.lightClients["client-remote"] = lc

	packet := testPacket(t, 1, uint64(time.Now().Add(time.Hour).Unix()), "app-local")
	execCtx := types.ExecContext{Now: time.Now(), Sender: "relayer"}

	_, err := f.Keeper.TimeoutPacket(f.Ctx, execCtx, packet, 100, []byte("proof"))
	require.ErrorIs(t, err, types.ErrTimeoutNotReached)
}

func TestTimeoutPacket_RejectsNonAbsentMembership(t *testing.T) {
	f := newFixture(t)

	lc := newFakeLightClient()
	lc.timestamp = uint64(time.Now().Add(2 * time.Hour).Unix())
	lc.nonMembershipOK = false
	f.Router.lightClients["client-remote"] = lc

	packet := testPacket(t, 1, uint64(time.Now().Add(time.Hour).Unix()), "app-local")
	execCtx := types.ExecContext{Now: time.Now(), Sender: "relayer"}

	_, err := f.Keeper.TimeoutPacket(f.Ctx, execCtx, packet, 100, []byte("proof"))
	require.ErrorIs(t, err, types.ErrProofInvalid)
}

// TestTimeoutPacket_NonMembershipUsesDestinationPrefix pins spec.md section
// 4.1 timeout_packet step 3: the non-membership check must be scoped by the
// destination client's own prefix, not the source client's.
func TestTimeoutPacket_NonMembershipUsesDestinationPrefix(t *testing.T) {
	f := newFixture(t)

	lc := newFakeLightClient()
	lc.timestamp = uint64(time.Now().Add(2 * time.Hour).Unix())
	f.Router.lightClients["client-remote"] = lc

	packet := testPacket(t, 1, uint64(time.Now().Add(time.Hour).Unix()), "app-local")
	packet.Header.Source.Prefix = []byte("source-prefix")
	packet.Header.Destination.Prefix = []byte("destination-prefix")
	execCtx := types.ExecContext{Now: time.Now(), Sender: "relayer"}

	_, err := f.Keeper.TimeoutPacket(f.Ctx, execCtx, packet, 100, []byte("proof"))
	require.NoError(t, err)
	require.Equal(t, []byte("destination-prefix"), lc.lastNonMembershipPrefix)
}

func TestTimeoutPacket_RejectsAlreadyFinalized(t *testing.T) {
	f := newFixture(t)

	lc := newFakeLightClient()
	lc.timestamp = uint64(time.Now().Add(2 * time.Hour).Unix())
	f.Router.lightClients["client-remote"] = lc

	packet := testPacket(t, 1, uint64(time.Now().Add(time.Hour).Unix()), "app-local")
	execCtx := types.ExecContext{Now: time.Now(), Sender: "relayer"}

	_, err := f.Keeper.TimeoutPacket(f.Ctx, execCtx, packet, 100, []byte("proof"))
	require.NoError(t, err)

	_, err = f.Keeper.TimeoutPacket(f.Ctx, execCtx, packet, 100, []byte("proof"))
	require.ErrorIs(t, err, types.ErrAlreadyReceived)
}
