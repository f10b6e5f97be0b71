// Package dummyclient implements a trivial LightClient capability that is
// always active and accepts every proof, the Go port of
// lightclients/dummy/src/lib.rs. It exists for local development and tests
// that need a working TAO connection without standing up a real consensus
// light client.
package dummyclient

import (
	"context"

	"cosmossdk.io/collections"
	sdkstore "cosmossdk.io/core/store"
	"cosmossdk.io/log"

	"github.com/rnbguy/ibc-eureka-tao/x/tao/types"
)

// Client is a LightClient whose membership/non-membership verdicts are
// fixed at construction time rather than cryptographically verified. Update
// and Prune are no-ops, matching the original contract's Response::default().
type Client struct {
	logger log.Logger

	acceptMembership    bool
	acceptNonMembership bool

	Schema         collections.Schema
	ClientState    collections.Item[[]byte]
	ConsensusState collections.Map[uint64, []byte]
}

// New constructs a dummy light client that accepts every membership and
// non-membership proof, the original contract's hardcoded behavior.
func New(storeService sdkstore.KVStoreService, logger log.Logger) *Client {
	sb := collections.NewSchemaBuilder(storeService)

	c := &Client{
		logger:              logger,
		acceptMembership:    true,
		acceptNonMembership: true,
		ClientState: collections.NewItem(
			sb, collections.NewPrefix(0), "client_state", collections.BytesValue,
		),
		ConsensusState: collections.NewMap(
			sb, collections.NewPrefix(1), "consensus_state", collections.Uint64Key, collections.BytesValue,
		),
	}

	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	c.Schema = schema

	return c
}

// WithMembershipVerdicts overrides the fixed membership/non-membership
// answers, letting tests exercise the engine's proof-rejection paths without
// a second LightClient implementation.
func (c *Client) WithMembershipVerdicts(membership, nonMembership bool) *Client {
	c.acceptMembership = membership
	c.acceptNonMembership = nonMembership
	return c
}

// Init seeds the client and genesis consensus states, mirroring the
// original contract's instantiate entry point.
func (c *Client) Init(ctx context.Context, clientState, consensusState []byte) error {
	if err := c.ClientState.Set(ctx, clientState); err != nil {
		return err
	}
	return c.ConsensusState.Set(ctx, 0, consensusState)
}

func (c *Client) Update(ctx context.Context, header []byte) error {
	return nil
}

func (c *Client) Status(ctx context.Context) (types.LightClientStatus, error) {
	return types.LightClientActive, nil
}

// Timestamp always reports the maximum representable timestamp, the Go
// analogue of the original's u64::MAX — every timeout proof check against
// this client trivially passes the "timeout has elapsed" comparison.
func (c *Client) Timestamp(ctx context.Context, height uint64) (uint64, error) {
	return ^uint64(0), nil
}

func (c *Client) CheckMembership(ctx context.Context, key, value, prefix []byte, height uint64, proof []byte) (bool, error) {
	return c.acceptMembership, nil
}

func (c *Client) CheckNonMembership(ctx context.Context, key, prefix []byte, height uint64, proof []byte) (bool, error) {
	return c.acceptNonMembership, nil
}

func (c *Client) Prune(ctx context.Context) error {
	return nil
}

var _ types.LightClient = (*Client)(nil)
