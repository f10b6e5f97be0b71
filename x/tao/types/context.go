package types

import (
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// ExecContext is the ambient call context the host shim provides to every
// engine entry point: the current wall-clock time, the invoking identity,
// and any funds attached to the call. It is the Go translation of the
// original contracts' sylvia ExecCtx (ctx.env.block.time, ctx.info.sender,
// ctx.info.funds).
type ExecContext struct {
	Now    time.Time
	Sender Address
	Funds  sdk.Coins
}

// NowSeconds returns the ambient time as Unix seconds, the unit spec.md's
// PacketHeader.Timeout is expressed in.
func (c ExecContext) NowSeconds() uint64 {
	if c.Now.Unix() < 0 {
		return 0
	}
	return uint64(c.Now.Unix())
}
