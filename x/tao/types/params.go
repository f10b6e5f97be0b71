package types

// Params captures the deployment-model feature flags spec.md's Open Questions
// leave to the implementer, following the same validated-struct-in-a-
// collections.Item pattern x/pse/types/params.go uses for its own module
// parameters.
type Params struct {
	// RegistryEnabled gates send_packet/receive_packet by the registry of
	// TAO-instantiated addresses (spec.md section 3/4.1). Defaults to true,
	// the most-developed TAO variant in original_source/.
	RegistryEnabled bool `json:"registry_enabled"`

	// FundsEnabled turns on the per-denom funds accounting check in
	// send_packet (spec.md section 4.1 step 3).
	FundsEnabled bool `json:"funds_enabled"`

	// AllowZeroNonce adopts spec.md's permissive nonce rule: nonce == 0 means
	// "engine assigns the next value". When false, callers must always
	// supply the exact expected nonce.
	AllowZeroNonce bool `json:"allow_zero_nonce"`
}

// DefaultParams returns the most-developed TAO variant's defaults: registry
// and funds accounting on, permissive zero-nonce assignment on.
func DefaultParams() Params {
	return Params{
		RegistryEnabled: true,
		FundsEnabled:    true,
		AllowZeroNonce:  true,
	}
}

// ValidateBasic performs basic validation on TAO parameters. There are no
// cross-field constraints today; the hook exists so SPEC_FULL additions to
// Params have somewhere to plug in validation, matching
// x/pse/types/params.go's ValidateBasic shape.
func (p Params) ValidateBasic() error {
	return nil
}
