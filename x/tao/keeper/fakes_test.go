package keeper_test

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/rnbguy/ibc-eureka-tao/x/tao/types"
)

// fakeLightClient is a deterministic LightClient test double: membership and
// non-membership answers are fixed by the test, grounded the same way
// lightclients/dummy/src/lib.rs's "always active, configurable verdict"
// light client is written.
type fakeLightClient struct {
	status          types.LightClientStatus
	timestamp       uint64
	membershipOK    bool
	nonMembershipOK bool

	lastMembershipPrefix    []byte
	lastNonMembershipPrefix []byte
}

func newFakeLightClient() *fakeLightClient {
	return &fakeLightClient{
		status:          types.LightClientActive,
		membershipOK:    true,
		nonMembershipOK: true,
	}
}

func (f *fakeLightClient) Update(ctx context.Context, header []byte) error { return nil }

func (f *fakeLightClient) Status(ctx context.Context) (types.LightClientStatus, error) {
	return f.status, nil
}

func (f *fakeLightClient) Timestamp(ctx context.Context, height uint64) (uint64, error) {
	return f.timestamp, nil
}

func (f *fakeLightClient) CheckMembership(ctx context.Context, key, value, prefix []byte, height uint64, proof []byte) (bool, error) {
	f.lastMembershipPrefix = prefix
	return f.membershipOK, nil
}

func (f *fakeLightClient) CheckNonMembership(ctx context.Context, key, prefix []byte, height uint64, proof []byte) (bool, error) {
	f.lastNonMembershipPrefix = prefix
	return f.nonMembershipOK, nil
}

func (f *fakeLightClient) Prune(ctx context.Context) error { return nil }

// recordingApplication is an Application test double that records every
// call it receives, so tests can assert on dispatch fan-out without a real
// contract behind the address.
type recordingApplication struct {
	sends     []sendCall
	receives  []receiveCall
	timeouts  []timeoutCall
	failNext  error
}

type sendCall struct {
	Sender                          types.Address
	SourceClient, DestinationClient types.ClientRef
	ApplicationDestination          types.Address
	Data                            []byte
	Funds                           sdk.Coins
}

type receiveCall struct {
	DestinationClient, SourceClient types.ClientRef
	ApplicationSource               types.Address
	Data                            []byte
	Relayer                         types.Address
	Funds                           sdk.Coins
}

type timeoutCall struct {
	DestinationClient, SourceClient types.ClientRef
	ApplicationDestination          types.Address
	Data                            []byte
	Caller                          types.Address
	Funds                           sdk.Coins
}

func newRecordingApplication() *recordingApplication {
	return &recordingApplication{}
}

func (a *recordingApplication) Send(
	ctx context.Context,
	packetSender types.Address,
	sourceClient, destinationClient types.ClientRef,
	applicationDestination types.Address,
	data []byte,
	funds sdk.Coins,
) error {
	if a.failNext != nil {
		return a.failNext
	}
	a.sends = append(a.sends, sendCall{packetSender, sourceClient, destinationClient, applicationDestination, data, funds})
	return nil
}

func (a *recordingApplication) Receive(
	ctx context.Context,
	destinationClient, sourceClient types.ClientRef,
	applicationSource types.Address,
	data []byte,
	relayer types.Address,
	funds sdk.Coins,
) error {
	if a.failNext != nil {
		return a.failNext
	}
	a.receives = append(a.receives, receiveCall{destinationClient, sourceClient, applicationSource, data, relayer, funds})
	return nil
}

func (a *recordingApplication) Timeout(
	ctx context.Context,
	destinationClient, sourceClient types.ClientRef,
	applicationDestination types.Address,
	data []byte,
	caller types.Address,
	funds sdk.Coins,
) error {
	if a.failNext != nil {
		return a.failNext
	}
	a.timeouts = append(a.timeouts, timeoutCall{destinationClient, sourceClient, applicationDestination, data, caller, funds})
	return nil
}
