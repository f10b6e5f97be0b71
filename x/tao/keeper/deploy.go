package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"

	"github.com/rnbguy/ibc-eureka-tao/x/tao/types"
)

// Deploy begins the instantiate-then-register flow a light client or
// application contract goes through before it is trusted by the engine:
// allocate a fresh reply ID, record the code ID it is waiting on, and return
// the reply ID the caller's wasm instantiate submessage must echo back on
// success. Grounded in applications/cw20-transfer/src/lib.rs's
// REPLY_INSTANTIATE_ID/pending_packet pattern, generalized from a single
// constant reply tag to an allocated one so multiple deploys can be
// in flight at once.
func (k Keeper) Deploy(ctx context.Context, codeID uint64) (uint64, error) {
	replyID, err := k.allocateReplyID(ctx)
	if err != nil {
		return 0, err
	}
	if err := k.PendingDeploy.Set(ctx, replyID, codeID); err != nil {
		return 0, err
	}
	return replyID, nil
}

func (k Keeper) allocateReplyID(ctx context.Context) (uint64, error) {
	next, err := k.NextReplyID.Get(ctx)
	if err != nil {
		if !isNotFound(err) {
			return 0, err
		}
		next = 0
	}
	if err := k.NextReplyID.Set(ctx, next+1); err != nil {
		return 0, err
	}
	return next, nil
}

// HandleReply completes a pending deploy: it looks up the code ID the reply
// ID was allocated against, admits the newly instantiated address into the
// registry, and clears the pending record. An unrecognized replyID — one
// never allocated by Deploy, or already consumed — is ErrUnknownReply,
// exactly the failure mode cw20-transfer's reply handler falls back to
// when ctx.reply.id doesn't match REPLY_INSTANTIATE_ID.
func (k Keeper) HandleReply(ctx context.Context, replyID uint64, instantiated types.Address) error {
	_, err := k.PendingDeploy.Get(ctx, replyID)
	if err != nil {
		if isNotFound(err) {
			return errorsmod.Wrapf(types.ErrUnknownReply, "reply id: %d", replyID)
		}
		return err
	}

	if err := k.Register(ctx, instantiated); err != nil {
		return err
	}
	return k.PendingDeploy.Remove(ctx, replyID)
}
