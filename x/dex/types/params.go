package types

import (
	"fmt"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Bootstrap share formulas used for the first deposit into an empty pool.
const (
	// BootstrapGeometricMean mints floor(sqrt(amountA * amountB)) shares.
	BootstrapGeometricMean = "geometric_mean"
	// BootstrapAmountA mints exactly amountA shares.
	BootstrapAmountA = "amount_a"
)

// Params defines the DEX module parameters.
type Params struct {
	// CreationFee is the exact native amount CreatePair must be paid with.
	CreationFee sdkmath.Int `json:"creation_fee"`
	// FeeDenom is the native denom the creation fee is paid in.
	FeeDenom string `json:"fee_denom"`
	// SwapFee is retained by the pool on every swap (0.003 == 997/1000 multiplier).
	SwapFee sdkmath.LegacyDec `json:"swap_fee"`
	// RatioTolerance bounds how far a deposit's B leg may deviate from the
	// amount implied by the current reserve ratio, as a fraction of that amount.
	RatioTolerance sdkmath.LegacyDec `json:"ratio_tolerance"`
	// BootstrapMode selects the share formula of the first deposit.
	BootstrapMode string `json:"bootstrap_mode"`
}

// DefaultParams returns a default set of parameters
func DefaultParams() Params {
	return Params{
		CreationFee:    sdkmath.NewIntWithDecimal(1, 16), // 0.01 native
		FeeDenom:       "apaw",
		SwapFee:        sdkmath.LegacyNewDecWithPrec(3, 3), // 0.3%
		RatioTolerance: sdkmath.LegacyNewDecWithPrec(1, 3), // 0.1%
		BootstrapMode:  BootstrapGeometricMean,
	}
}

// Validate validates the set of params
func (p Params) Validate() error {
	if p.CreationFee.IsNil() || p.CreationFee.IsNegative() {
		return ErrInvalidParams.Wrap("creation fee must be non-negative")
	}
	if err := sdk.ValidateDenom(p.FeeDenom); err != nil {
		return ErrInvalidParams.Wrapf("fee denom: %v", err)
	}
	if p.SwapFee.IsNil() || p.SwapFee.IsNegative() || p.SwapFee.GTE(sdkmath.LegacyOneDec()) {
		return ErrInvalidParams.Wrap("swap fee must be in [0,1)")
	}
	if p.RatioTolerance.IsNil() || p.RatioTolerance.IsNegative() || p.RatioTolerance.GTE(sdkmath.LegacyOneDec()) {
		return ErrInvalidParams.Wrap("ratio tolerance must be in [0,1)")
	}
	switch p.BootstrapMode {
	case BootstrapGeometricMean, BootstrapAmountA:
	default:
		return ErrInvalidParams.Wrap(fmt.Sprintf("unknown bootstrap mode %q", p.BootstrapMode))
	}
	return nil
}
