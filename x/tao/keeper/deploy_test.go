package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rnbguy/ibc-eureka-tao/x/tao/types"
)

func TestDeploy_HandleReplyRegisters(t *testing.T) {
	f := newFixture(t)

	replyID, err := f.Keeper.Deploy(f.Ctx, 42)
	require.NoError(t, err)
	require.Equal(t, uint64(0), replyID)

	require.NoError(t, f.Keeper.HandleReply(f.Ctx, replyID, "new-contract"))

	ok, err := f.Keeper.IsRegistered(f.Ctx, "new-contract")
	require.NoError(t, err)
	require.True(t, ok)

	_, err = f.Keeper.PendingDeploy.Get(f.Ctx, replyID)
	require.Error(t, err)
}

func TestDeploy_UnknownReplyRejected(t *testing.T) {
	f := newFixture(t)

	err := f.Keeper.HandleReply(f.Ctx, 999, "new-contract")
	require.ErrorIs(t, err, types.ErrUnknownReply)
}

func TestDeploy_AllocatesDistinctReplyIDs(t *testing.T) {
	f := newFixture(t)

	first, err := f.Keeper.Deploy(f.Ctx, 1)
	require.NoError(t, err)
	second, err := f.Keeper.Deploy(f.Ctx, 2)
	require.NoError(t, err)

	require.NotEqual(t, first, second)
}
