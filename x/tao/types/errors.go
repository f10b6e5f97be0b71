package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// Registered errors. Descriptions carry the exact reserved substrings from
// spec.md section 6 so callers and tests can assert on them regardless of the
// context a call site wraps around them with Wrapf.
var (
	ErrTimeout                             = sdkerrors.Register(ModuleName, 2, "timeout is in the past")
	ErrTimeoutNotReached                    = sdkerrors.Register(ModuleName, 3, "timeout is in the future for proof height")
	ErrNonceMismatch                        = sdkerrors.Register(ModuleName, 4, "nonce mismatch")
	ErrUnauthorizedSourceClient             = sdkerrors.Register(ModuleName, 5, "unauthorized source client")
	ErrUnauthorizedSourceApplication        = sdkerrors.Register(ModuleName, 6, "unauthorized source application")
	ErrUnauthorizedDestinationClient        = sdkerrors.Register(ModuleName, 7, "unauthorized destination client")
	ErrUnauthorizedDestinationApplication   = sdkerrors.Register(ModuleName, 8, "unauthorized destination application")
	ErrClientInactive                       = sdkerrors.Register(ModuleName, 9, "light client is inactive")
	ErrProofInvalid                         = sdkerrors.Register(ModuleName, 10, "proof is invalid")
	ErrFundsMismatch                        = sdkerrors.Register(ModuleName, 11, "funds mismatch")
	ErrUnknownReply                         = sdkerrors.Register(ModuleName, 12, "Unknown reply id")
	ErrAlreadyReceived                      = sdkerrors.Register(ModuleName, 13, "packet already received")
	ErrUnknownConnection                    = sdkerrors.Register(ModuleName, 14, "unknown connection")
	ErrUnknownApplication                   = sdkerrors.Register(ModuleName, 15, "unknown application")
	ErrUnknownLightClient                   = sdkerrors.Register(ModuleName, 16, "unknown light client")
)
