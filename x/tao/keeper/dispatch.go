package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"

	"github.com/rnbguy/ibc-eureka-tao/x/tao/types"
)

// Execute runs a single queued Dispatch against the application it targets,
// translating the engine-neutral Dispatch shape back into the positional
// Application capability call spec.md section 4.3 defines. A driver loop
// (the Host) calls this once per Dispatch, in payload order, after the
// engine call that produced them has already persisted its own state —
// mirroring the reply-after-commit discipline the original contracts get
// for free from the CosmWasm submessage queue.
func (k Keeper) Execute(ctx context.Context, d types.Dispatch) error {
	app, ok := k.applications.GetApplication(d.Target)
	if !ok {
		return errorsmod.Wrapf(types.ErrUnknownApplication, "address: %s", d.Target)
	}

	switch d.Kind {
	case types.DispatchSend:
		return app.Send(ctx, d.Caller, d.Source, d.Destination, d.Counterparty, d.Data, d.Funds)
	case types.DispatchReceive:
		return app.Receive(ctx, d.Source, d.Destination, d.Counterparty, d.Data, d.Caller, d.Funds)
	case types.DispatchTimeout:
		return app.Timeout(ctx, d.Source, d.Destination, d.Counterparty, d.Data, d.Caller, d.Funds)
	default:
		return errorsmod.Wrapf(types.ErrUnknownApplication, "unrecognized dispatch kind: %d", d.Kind)
	}
}

// ExecuteAll runs every queued Dispatch in order, stopping at the first
// failure. spec.md's design notes leave the queue's failure-atomicity model
// to the implementer; halting on first error keeps dispatch order meaningful
// for callers that want to attribute a failure to a specific payload index.
func (k Keeper) ExecuteAll(ctx context.Context, dispatches []types.Dispatch) error {
	for _, d := range dispatches {
		if err := k.Execute(ctx, d); err != nil {
			return err
		}
	}
	return nil
}
