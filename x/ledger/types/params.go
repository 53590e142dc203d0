package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Params defines the ledger module parameters.
type Params struct {
	// NativeDenom is the currency attached to payable calls.
	NativeDenom string `json:"native_denom"`
}

// DefaultParams returns a default set of parameters
func DefaultParams() Params {
	return Params{NativeDenom: DefaultNativeDenom}
}

// Validate validates the set of params
func (p Params) Validate() error {
	if err := sdk.ValidateDenom(p.NativeDenom); err != nil {
		return ErrInvalidParams.Wrapf("native denom: %v", err)
	}
	return nil
}
