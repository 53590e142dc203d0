package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/amm/x/bondingcurve/types"
)

// Buy pays value of the native denom into the curve reserve and mints the
// tokens that value buys at the current supply.
func (k Keeper) Buy(ctx context.Context, buyer sdk.AccAddress, curveID uint64, value math.Int) (math.Int, error) {
	if buyer.Empty() {
		return math.ZeroInt(), types.ErrInvalidAddress.Wrap("buyer cannot be empty")
	}
	if value.IsNil() || !value.IsPositive() {
		return math.ZeroInt(), types.ErrInvalidAmount.Wrap("value must be positive")
	}

	curve, err := k.GetCurve(ctx, curveID)
	if err != nil {
		return math.ZeroInt(), err
	}
	params, err := k.GetParams(ctx)
	if err != nil {
		return math.ZeroInt(), fmt.Errorf("Buy: get params: %w", err)
	}

	minted, err := MintAmount(curve.TotalSupply, value, curve.Slope)
	if err != nil {
		return math.ZeroInt(), types.ErrOverflow.Wrapf("mint amount: %v", err)
	}
	if minted.IsZero() {
		k.metrics.Trades.WithLabelValues(curve.Denom, "buy", "failed").Inc()
		return math.ZeroInt(), types.ErrInvalidAmount.Wrapf("value %s buys no %s", value, curve.Denom)
	}

	newSupply, err := curve.TotalSupply.SafeAdd(minted)
	if err != nil {
		return math.ZeroInt(), types.ErrOverflow.Wrapf("supply: %v", err)
	}
	newReserve, err := curve.NativeReserve.SafeAdd(value)
	if err != nil {
		return math.ZeroInt(), types.ErrOverflow.Wrapf("reserve: %v", err)
	}
	balance, err := k.BalanceOf(ctx, curveID, buyer)
	if err != nil {
		return math.ZeroInt(), err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	cacheCtx, writeFn := sdkCtx.CacheContext()

	if err := k.ledgerKeeper.Transfer(cacheCtx, buyer, curve.GetAddress(), params.NativeDenom, value); err != nil {
		k.metrics.Trades.WithLabelValues(curve.Denom, "buy", "failed").Inc()
		return math.ZeroInt(), types.ErrInsufficientBalance.Wrapf("failed to pay %s%s: %v", value, params.NativeDenom, err)
	}

	curve.TotalSupply = newSupply
	curve.NativeReserve = newReserve
	if err := k.SetCurve(cacheCtx, curve); err != nil {
		return math.ZeroInt(), err
	}
	if err := k.setBalance(cacheCtx, curveID, buyer, balance.Add(minted)); err != nil {
		return math.ZeroInt(), err
	}

	writeFn()

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeCurveBuy,
			sdk.NewAttribute(types.AttributeKeyCurveID, fmt.Sprintf("%d", curveID)),
			sdk.NewAttribute(types.AttributeKeyBuyer, buyer.String()),
			sdk.NewAttribute(types.AttributeKeyValue, value.String()),
			sdk.NewAttribute(types.AttributeKeyMinted, minted.String()),
			sdk.NewAttribute(types.AttributeKeyTotalSupply, newSupply.String()),
		),
	)

	k.recordTrade(curve, "buy", value)
	return minted, nil
}

// Sell burns amount of the seller's curve tokens and pays the released value,
// less the sell fee, out of the reserve.
func (k Keeper) Sell(ctx context.Context, seller sdk.AccAddress, curveID uint64, amount math.Int) (math.Int, error) {
	if seller.Empty() {
		return math.ZeroInt(), types.ErrInvalidAddress.Wrap("seller cannot be empty")
	}
	if amount.IsNil() || !amount.IsPositive() {
		return math.ZeroInt(), types.ErrInvalidAmount.Wrap("amount must be positive")
	}

	curve, err := k.GetCurve(ctx, curveID)
	if err != nil {
		return math.ZeroInt(), err
	}
	balance, err := k.BalanceOf(ctx, curveID, seller)
	if err != nil {
		return math.ZeroInt(), err
	}
	if amount.GT(balance) {
		return math.ZeroInt(), types.ErrInsufficientBalance.Wrapf("have %s%s, selling %s", balance, curve.Denom, amount)
	}
	params, err := k.GetParams(ctx)
	if err != nil {
		return math.ZeroInt(), fmt.Errorf("Sell: get params: %w", err)
	}

	payout, fee, err := quoteSell(curve, params, amount)
	if err != nil {
		return math.ZeroInt(), err
	}
	if payout.GT(curve.NativeReserve) {
		k.metrics.GuardTrips.WithLabelValues(curve.Denom).Inc()
		k.metrics.Trades.WithLabelValues(curve.Denom, "sell", "failed").Inc()
		return math.ZeroInt(), types.ErrInsolvencyGuard.Wrapf("payout %s exceeds reserve %s", payout, curve.NativeReserve)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	cacheCtx, writeFn := sdkCtx.CacheContext()

	curve.TotalSupply = curve.TotalSupply.Sub(amount)
	curve.NativeReserve = curve.NativeReserve.Sub(payout)
	if err := k.SetCurve(cacheCtx, curve); err != nil {
		return math.ZeroInt(), err
	}
	if err := k.setBalance(cacheCtx, curveID, seller, balance.Sub(amount)); err != nil {
		return math.ZeroInt(), err
	}
	if err := k.ledgerKeeper.Transfer(cacheCtx, curve.GetAddress(), seller, params.NativeDenom, payout); err != nil {
		return math.ZeroInt(), types.ErrInsolvencyGuard.Wrapf("curve %d cannot pay %s%s: %v", curveID, payout, params.NativeDenom, err)
	}

	writeFn()

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeCurveSell,
			sdk.NewAttribute(types.AttributeKeyCurveID, fmt.Sprintf("%d", curveID)),
			sdk.NewAttribute(types.AttributeKeySeller, seller.String()),
			sdk.NewAttribute(types.AttributeKeyBurned, amount.String()),
			sdk.NewAttribute(types.AttributeKeyPayout, payout.String()),
			sdk.NewAttribute(types.AttributeKeyFee, fee.String()),
			sdk.NewAttribute(types.AttributeKeyTotalSupply, curve.TotalSupply.String()),
		),
	)

	k.recordTrade(curve, "sell", payout)
	return payout, nil
}

// Transfer moves curve tokens between holders without touching the reserve.
func (k Keeper) Transfer(ctx context.Context, curveID uint64, from, to sdk.AccAddress, amount math.Int) error {
	if from.Empty() || to.Empty() {
		return types.ErrInvalidAddress.Wrap("sender and recipient cannot be empty")
	}
	if amount.IsNil() || amount.IsNegative() {
		return types.ErrInvalidAmount.Wrap("amount must be non-negative")
	}
	if _, err := k.GetCurve(ctx, curveID); err != nil {
		return err
	}

	fromBalance, err := k.BalanceOf(ctx, curveID, from)
	if err != nil {
		return err
	}
	if amount.GT(fromBalance) {
		return types.ErrInsufficientBalance.Wrapf("have %s, sending %s", fromBalance, amount)
	}
	if amount.IsZero() || from.Equals(to) {
		return nil
	}
	toBalance, err := k.BalanceOf(ctx, curveID, to)
	if err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	cacheCtx, writeFn := sdkCtx.CacheContext()

	if err := k.setBalance(cacheCtx, curveID, from, fromBalance.Sub(amount)); err != nil {
		return err
	}
	if err := k.setBalance(cacheCtx, curveID, to, toBalance.Add(amount)); err != nil {
		return err
	}

	writeFn()

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeCurveTransfer,
			sdk.NewAttribute(types.AttributeKeyCurveID, fmt.Sprintf("%d", curveID)),
			sdk.NewAttribute(types.AttributeKeySender, from.String()),
			sdk.NewAttribute(types.AttributeKeyRecipient, to.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)
	return nil
}

func (k Keeper) recordTrade(curve *types.Curve, side string, value math.Int) {
	k.metrics.Trades.WithLabelValues(curve.Denom, side, "success").Inc()
	k.metrics.NativeVolume.WithLabelValues(curve.Denom, side).Add(amountToFloat(value))
	k.metrics.Reserve.WithLabelValues(curve.Denom).Set(amountToFloat(curve.NativeReserve))
	k.metrics.Supply.WithLabelValues(curve.Denom).Set(amountToFloat(curve.TotalSupply))
}
