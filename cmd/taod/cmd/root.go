// Package cmd implements taod's cobra command tree: a local session wiring
// a MemHost, a Keeper, and the dummyclient/pingpong sample capabilities,
// driven by send/receive/timeout/deploy/query subcommands.
package cmd

import (
	"time"

	"cosmossdk.io/log"
	"github.com/spf13/cobra"

	"github.com/rnbguy/ibc-eureka-tao/apps/dummyclient"
	"github.com/rnbguy/ibc-eureka-tao/apps/pingpong"
	"github.com/rnbguy/ibc-eureka-tao/host"
	"github.com/rnbguy/ibc-eureka-tao/x/tao/keeper"
	"github.com/rnbguy/ibc-eureka-tao/x/tao/types"
)

const (
	dummyClientAddress types.Address = "dummyclient"
	pingpongAddress    types.Address = "pingpong"
)

// session bundles the in-process engine a command invocation drives.
type session struct {
	Host        *host.MemHost
	Keeper      keeper.Keeper
	Router      *router
	DummyClient *dummyclient.Client
	PingPong    *pingpong.App
}

// router is the minimal LightClientRouter/ApplicationRouter this CLI needs:
// a two-entry static table pointing at the sample dummyclient and pingpong
// capabilities.
type router struct {
	lightClient *dummyclient.Client
	application *pingpong.App
}

func (r *router) GetLightClient(addr types.Address) (types.LightClient, bool) {
	if addr == dummyClientAddress {
		return r.lightClient, true
	}
	return nil, false
}

func (r *router) GetApplication(addr types.Address) (types.Application, bool) {
	if addr == pingpongAddress {
		return r.application, true
	}
	return nil, false
}

func newSession() (*session, error) {
	h := host.NewMemHost(types.StoreKey, "operator", time.Now())
	logger := log.NewNopLogger()

	dc := dummyclient.New(h.StoreService(), logger)
	pp := pingpong.New(h.StoreService(), logger)
	r := &router{lightClient: dc, application: pp}

	k := keeper.NewKeeper(h.StoreService(), logger, r, r)

	if err := dc.Init(h.Context(), []byte("dummy-client-state"), []byte("dummy-consensus-state")); err != nil {
		return nil, err
	}
	if err := pp.Init(h.Context(), "operator"); err != nil {
		return nil, err
	}
	if err := k.Register(h.Context(), dummyClientAddress); err != nil {
		return nil, err
	}
	if err := k.Register(h.Context(), pingpongAddress); err != nil {
		return nil, err
	}

	return &session{Host: h, Keeper: k, Router: r, DummyClient: dc, PingPong: pp}, nil
}

// NewRootCmd builds the taod command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "taod",
		Short: "Local driver for the TAO packet engine",
	}

	root.AddCommand(
		newSendCmd(),
		newReceiveCmd(),
		newTimeoutCmd(),
		newDeployCmd(),
		newQueryCmd(),
	)

	return root
}
