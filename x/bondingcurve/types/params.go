package types

import (
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Params defines the bonding curve module parameters.
type Params struct {
	// NativeDenom is the ledger denom curves are bought and sold against.
	NativeDenom string `json:"native_denom"`
	// SellFee is withheld from every sell payout and stays in the reserve.
	SellFee sdkmath.LegacyDec `json:"sell_fee"`
}

// DefaultParams returns a default set of parameters
func DefaultParams() Params {
	return Params{
		NativeDenom: "apaw",
		SellFee:     sdkmath.LegacyZeroDec(),
	}
}

// Validate validates the set of params
func (p Params) Validate() error {
	if err := sdk.ValidateDenom(p.NativeDenom); err != nil {
		return ErrInvalidParams.Wrapf("native denom: %v", err)
	}
	if p.SellFee.IsNil() || p.SellFee.IsNegative() || p.SellFee.GTE(sdkmath.LegacyOneDec()) {
		return ErrInvalidParams.Wrap("sell fee must be in [0,1)")
	}
	return nil
}
