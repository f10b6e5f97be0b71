package host

import (
	"context"
	"sync"
	"time"

	sdkstore "cosmossdk.io/core/store"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/runtime"
	"github.com/cosmos/cosmos-sdk/testutil/integration"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"cosmossdk.io/log"

	"github.com/rnbguy/ibc-eureka-tao/x/tao/types"
)

// MemHost is an in-memory, deterministic Host reference implementation used
// by the CLI and the test suite: a single in-memory multistore, a
// caller-settable clock, and a mutex-guarded dispatch queue.
type MemHost struct {
	mu sync.Mutex

	storeKey     *storetypes.KVStoreKey
	storeService sdkstore.KVStoreService
	ctx          sdk.Context

	caller types.Address
	now    time.Time

	queue []types.Dispatch
}

// NewMemHost constructs a MemHost with a fresh in-memory multistore under
// storeKeyName and the given initial caller/clock.
func NewMemHost(storeKeyName string, caller types.Address, now time.Time) *MemHost {
	key := storetypes.NewKVStoreKey(storeKeyName)
	cms := integration.CreateMultiStore(map[string]*storetypes.KVStoreKey{storeKeyName: key}, log.NewNopLogger())
	ctx := sdk.NewContext(cms, false, log.NewNopLogger())

	return &MemHost{
		storeKey:     key,
		storeService: runtime.NewKVStoreService(key),
		ctx:          ctx,
		caller:       caller,
		now:          now,
	}
}

func (h *MemHost) StoreService() sdkstore.KVStoreService { return h.storeService }

func (h *MemHost) Context() context.Context { return h.ctx }

func (h *MemHost) Now() time.Time { return h.now }

// SetNow advances the host's clock, letting tests and the CLI simulate
// timeout elapsing without sleeping.
func (h *MemHost) SetNow(now time.Time) { h.now = now }

func (h *MemHost) Caller() types.Address { return h.caller }

// SetCaller changes the identity subsequent operations are attributed to.
func (h *MemHost) SetCaller(caller types.Address) { h.caller = caller }

func (h *MemHost) Enqueue(dispatches ...types.Dispatch) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.queue = append(h.queue, dispatches...)
}

func (h *MemHost) DrainQueue() []types.Dispatch {
	h.mu.Lock()
	defer h.mu.Unlock()
	drained := lo.Map(h.queue, func(d types.Dispatch, _ int) types.Dispatch { return d })
	h.queue = nil
	return drained
}

func (h *MemHost) NewRunID() string {
	return uuid.NewString()
}

var _ Host = (*MemHost)(nil)
