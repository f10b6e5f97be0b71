package keeper

import (
	"errors"

	"cosmossdk.io/collections"
)

// isNotFound reports whether err is a collections "key not found" error, the
// same check x/pse's keeper makes before falling back to a zero value for an
// absent nonce counter.
func isNotFound(err error) bool {
	return errors.Is(err, collections.ErrNotFound)
}
