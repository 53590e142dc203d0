package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"

	"github.com/paw-chain/amm/x/bondingcurve/types"
)

// CurrentPrice returns the native cost of one whole token at the current supply.
func (k Keeper) CurrentPrice(ctx context.Context, curveID uint64) (math.Int, error) {
	curve, err := k.GetCurve(ctx, curveID)
	if err != nil {
		return math.ZeroInt(), err
	}
	price, err := SpotPrice(curve.TotalSupply, curve.Slope)
	if err != nil {
		return math.ZeroInt(), types.ErrOverflow.Wrapf("price: %v", err)
	}
	return price, nil
}

// QuoteBuy returns the tokens Buy would mint for value, without executing it.
func (k Keeper) QuoteBuy(ctx context.Context, curveID uint64, value math.Int) (math.Int, error) {
	if value.IsNil() || !value.IsPositive() {
		return math.ZeroInt(), types.ErrInvalidAmount.Wrap("value must be positive")
	}
	curve, err := k.GetCurve(ctx, curveID)
	if err != nil {
		return math.ZeroInt(), err
	}
	minted, err := MintAmount(curve.TotalSupply, value, curve.Slope)
	if err != nil {
		return math.ZeroInt(), types.ErrOverflow.Wrapf("mint amount: %v", err)
	}
	return minted, nil
}

// QuoteSell returns the payout Sell would release for amount, without
// executing it. It does not apply the reserve guard.
func (k Keeper) QuoteSell(ctx context.Context, curveID uint64, amount math.Int) (math.Int, error) {
	if amount.IsNil() || !amount.IsPositive() {
		return math.ZeroInt(), types.ErrInvalidAmount.Wrap("amount must be positive")
	}
	curve, err := k.GetCurve(ctx, curveID)
	if err != nil {
		return math.ZeroInt(), err
	}
	params, err := k.GetParams(ctx)
	if err != nil {
		return math.ZeroInt(), fmt.Errorf("QuoteSell: get params: %w", err)
	}
	payout, _, err := quoteSell(curve, params, amount)
	return payout, err
}

// quoteSell returns the net payout for burning amount and the fee withheld.
func quoteSell(curve *types.Curve, params types.Params, amount math.Int) (math.Int, math.Int, error) {
	if amount.GT(curve.TotalSupply) {
		return math.ZeroInt(), math.ZeroInt(), types.ErrInsufficientBalance.Wrapf("selling %s of %s supply", amount, curve.TotalSupply)
	}
	gross, err := BurnPayout(curve.TotalSupply, amount, curve.Slope)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), types.ErrOverflow.Wrapf("payout: %v", err)
	}
	// A positive fee is rounded up so it always withholds at least one unit.
	fee := math.ZeroInt()
	if params.SellFee.IsPositive() {
		fee = params.SellFee.MulInt(gross).Ceil().TruncateInt()
	}
	return gross.Sub(fee), fee, nil
}
