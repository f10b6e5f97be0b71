package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/runtime"
	"github.com/cosmos/cosmos-sdk/testutil/integration"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/rnbguy/ibc-eureka-tao/x/tao/keeper"
	"github.com/rnbguy/ibc-eureka-tao/x/tao/types"
)

// testFixture bundles a Keeper wired to an in-memory multistore with a
// stub light-client/application router, the same lightweight harness shape
// cosmos-sdk modules build their own keeper_test.go fixtures around rather
// than booting a full simapp for module-local unit tests.
type testFixture struct {
	Keeper keeper.Keeper
	Ctx    sdk.Context
	Router *stubRouter
}

func newFixture(t *testing.T) *testFixture {
	t.Helper()

	key := storetypes.NewKVStoreKey(types.StoreKey)
	cms := integration.CreateMultiStore(map[string]*storetypes.KVStoreKey{types.StoreKey: key}, log.NewNopLogger())
	ctx := sdk.NewContext(cms, false, log.NewNopLogger()).WithBlockTime(time.Now().UTC())

	storeService := runtime.NewKVStoreService(key)
	router := newStubRouter()

	k := keeper.NewKeeper(storeService, log.NewNopLogger(), router, router)

	return &testFixture{Keeper: k, Ctx: ctx, Router: router}
}

// stubRouter is an in-memory LightClientRouter and ApplicationRouter
// double for exercising the engine without standing up real contracts.
type stubRouter struct {
	lightClients map[types.Address]types.LightClient
	applications map[types.Address]types.Application
}

func newStubRouter() *stubRouter {
	return &stubRouter{
		lightClients: map[types.Address]types.LightClient{},
		applications: map[types.Address]types.Application{},
	}
}

func (r *stubRouter) GetLightClient(addr types.Address) (types.LightClient, bool) {
	lc, ok := r.lightClients[addr]
	return lc, ok
}

func (r *stubRouter) GetApplication(addr types.Address) (types.Application, bool) {
	app, ok := r.applications[addr]
	return app, ok
}
