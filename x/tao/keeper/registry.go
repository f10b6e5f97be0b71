package keeper

import (
	"context"
	"sort"

	errorsmod "cosmossdk.io/errors"

	"github.com/rnbguy/ibc-eureka-tao/x/tao/types"
)

// IsRegistered reports whether addr was instantiated by this TAO engine and
// is therefore trusted to act as a local client or local application.
func (k Keeper) IsRegistered(ctx context.Context, addr types.Address) (bool, error) {
	ok, err := k.Registry.Has(ctx, string(addr))
	if err != nil {
		return false, err
	}
	return ok, nil
}

// requireRegistered fails with errOnMissing (wrapped with the offending
// address) when addr is absent from the registry.
func (k Keeper) requireRegistered(ctx context.Context, addr types.Address, errOnMissing error) error {
	ok, err := k.IsRegistered(ctx, addr)
	if err != nil {
		return err
	}
	if !ok {
		return errorsmod.Wrapf(errOnMissing, "address: %s", addr)
	}
	return nil
}

// Register admits addr into the registry. Called on successful deploy
// replies and by genesis/admin bootstrapping.
func (k Keeper) Register(ctx context.Context, addr types.Address) error {
	return k.Registry.Set(ctx, string(addr), true)
}

// OwnedContracts enumerates every address this TAO engine has admitted into
// its registry, sorted for deterministic output.
func (k Keeper) OwnedContracts(ctx context.Context) ([]types.Address, error) {
	iter, err := k.Registry.Iterate(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	var addrs []types.Address
	for ; iter.Valid(); iter.Next() {
		key, err := iter.Key()
		if err != nil {
			return nil, err
		}
		addrs = append(addrs, types.Address(key))
	}

	sort.Slice(addrs, func(i, j int) bool { return addrs[i] < addrs[j] })
	return addrs, nil
}
