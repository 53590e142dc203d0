package types

import (
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Curve is a linear bonding curve: the price of one whole token is
// Slope * TotalSupply, with the supply counted in 18-decimal base units.
// The native asset paid in is held by the curve's own ledger account.
type Curve struct {
	Id            uint64            `json:"id"`
	Denom         string            `json:"denom"`
	Slope         sdkmath.LegacyDec `json:"slope"`
	TotalSupply   sdkmath.Int       `json:"total_supply"`
	NativeReserve sdkmath.Int       `json:"native_reserve"`
	Address       string            `json:"address"`
	Creator       string            `json:"creator"`
}

// NewCurve returns a curve whose whole initial supply belongs to the creator
// and whose reserve starts empty.
func NewCurve(id uint64, denom string, slope sdkmath.LegacyDec, initialSupply sdkmath.Int, creator sdk.AccAddress) Curve {
	return Curve{
		Id:            id,
		Denom:         denom,
		Slope:         slope,
		TotalSupply:   initialSupply,
		NativeReserve: sdkmath.ZeroInt(),
		Address:       CurveAddress(id).String(),
		Creator:       creator.String(),
	}
}

// GetAddress returns the ledger account holding the curve reserve.
func (c Curve) GetAddress() sdk.AccAddress {
	return CurveAddress(c.Id)
}

// Validate checks the curve's internal consistency.
func (c Curve) Validate() error {
	if c.Id == 0 {
		return ErrInvalidCurveState.Wrap("curve id cannot be zero")
	}
	if err := sdk.ValidateDenom(c.Denom); err != nil {
		return ErrInvalidDenom.Wrapf("curve %d: %v", c.Id, err)
	}
	if c.Slope.IsNil() || !c.Slope.IsPositive() {
		return ErrInvalidSlope.Wrapf("curve %d: slope must be positive", c.Id)
	}
	if c.TotalSupply.IsNil() || c.TotalSupply.IsNegative() {
		return ErrInvalidCurveState.Wrapf("curve %d: negative supply", c.Id)
	}
	if c.NativeReserve.IsNil() || c.NativeReserve.IsNegative() {
		return ErrInvalidCurveState.Wrapf("curve %d: negative reserve", c.Id)
	}
	return nil
}
