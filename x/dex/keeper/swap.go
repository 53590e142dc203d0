package keeper

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/amm/x/dex/types"
)

// CalculateSwapOutput calculates the output amount for a swap using the constant product formula
// Formula: amountOut = floor(reserveOut * eff / (reserveIn + eff)) where eff = floor(amountIn * (1 - fee))
//
// The fee never leaves the pool: callers credit the full amountIn to reserveIn,
// which is what makes reserveIn * reserveOut grow on every swap.
func CalculateSwapOutput(amountIn, reserveIn, reserveOut math.Int, swapFee math.LegacyDec) (math.Int, error) {
	if amountIn.IsNil() || !amountIn.IsPositive() {
		return math.ZeroInt(), types.ErrInvalidAmount.Wrap("input amount must be positive")
	}

	if reserveIn.IsZero() || reserveOut.IsZero() {
		return math.ZeroInt(), types.ErrInsufficientLiquidity.Wrap("pool reserves must be positive")
	}

	// Calculate amount after fee: amountIn * (1 - fee)
	oneMinusFee := math.LegacyOneDec().Sub(swapFee)
	amountInAfterFee := math.LegacyNewDecFromInt(amountIn).Mul(oneMinusFee).TruncateInt()
	if amountInAfterFee.IsZero() {
		return math.ZeroInt(), types.ErrInsufficientLiquidity.Wrap("swap amount too small after fees")
	}

	denominator, err := reserveIn.SafeAdd(amountInAfterFee)
	if err != nil {
		return math.ZeroInt(), types.ErrOverflow.Wrapf("reserve in + amount in: %v", err)
	}
	amountOut, err := SafeMulDiv(reserveOut, amountInAfterFee, denominator)
	if err != nil {
		return math.ZeroInt(), types.ErrOverflow.Wrapf("swap output: %v", err)
	}

	if amountOut.IsZero() {
		return math.ZeroInt(), types.ErrInsufficientLiquidity.Wrap("output amount too small")
	}

	if amountOut.GTE(reserveOut) {
		return math.ZeroInt(), types.ErrInsolvencyGuard.Wrapf("output %s >= reserve %s", amountOut, reserveOut)
	}

	return amountOut, nil
}

// swapLegs resolves the direction of a swap. It returns the output denom and
// whether tokenIn is the pool's token A.
func swapLegs(pool *types.Pool, tokenIn string) (string, bool, error) {
	switch tokenIn {
	case pool.TokenA:
		return pool.TokenB, true, nil
	case pool.TokenB:
		return pool.TokenA, false, nil
	default:
		return "", false, types.ErrInvalidTokenPair.Wrapf("token %s is not traded by pool %d (%s/%s)",
			tokenIn, pool.Id, pool.TokenA, pool.TokenB)
	}
}

// Swap sells amountIn of tokenIn into the pool for the other asset. The
// trader must have approved the pool account for amountIn. A non-zero
// minAmountOut bounds slippage.
func (k Keeper) Swap(ctx context.Context, trader sdk.AccAddress, poolID uint64, tokenIn string, amountIn, minAmountOut math.Int) (math.Int, error) {
	// Track swap latency
	start := time.Now()
	defer func() {
		k.metrics.SwapLatency.Observe(time.Since(start).Seconds())
	}()

	poolIDStr := fmt.Sprintf("%d", poolID)

	// Validate inputs
	if trader.Empty() {
		return math.ZeroInt(), types.ErrInvalidAddress.Wrap("trader cannot be empty")
	}
	if amountIn.IsNil() || !amountIn.IsPositive() {
		// Neither the pool nor the token is known to exist yet
		k.metrics.SwapsTotal.WithLabelValues(invalidLabel, invalidLabel, invalidLabel, "failed").Inc()
		return math.ZeroInt(), types.ErrInvalidAmount.Wrap("swap amount must be positive")
	}

	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return math.ZeroInt(), err
	}
	tokenOut, isTokenAIn, err := swapLegs(pool, tokenIn)
	if err != nil {
		return math.ZeroInt(), err
	}

	reserveIn, reserveOut := pool.ReserveA, pool.ReserveB
	if !isTokenAIn {
		reserveIn, reserveOut = pool.ReserveB, pool.ReserveA
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return math.ZeroInt(), fmt.Errorf("Swap: get params: %w", err)
	}

	amountOut, err := CalculateSwapOutput(amountIn, reserveIn, reserveOut, params.SwapFee)
	if err != nil {
		k.metrics.SwapsTotal.WithLabelValues(poolIDStr, tokenIn, tokenOut, "failed").Inc()
		return math.ZeroInt(), err
	}

	if !minAmountOut.IsNil() && amountOut.LT(minAmountOut) {
		k.metrics.SwapsTotal.WithLabelValues(poolIDStr, tokenIn, tokenOut, "failed").Inc()
		return math.ZeroInt(), types.ErrSlippageTooHigh.Wrapf("expected at least %s, got %s", minAmountOut, amountOut)
	}

	newReserveIn, err := reserveIn.SafeAdd(amountIn)
	if err != nil {
		return math.ZeroInt(), types.ErrOverflow.Wrapf("overflow adding to reserve: %s + %s: %v", reserveIn, amountIn, err)
	}
	newReserveOut := reserveOut.Sub(amountOut)

	// The product may exceed 256 bits even when both reserves fit, so compare
	// it outside math.Int.
	oldK := new(big.Int).Mul(reserveIn.BigInt(), reserveOut.BigInt())
	newK := new(big.Int).Mul(newReserveIn.BigInt(), newReserveOut.BigInt())
	if newK.Cmp(oldK) < 0 {
		return math.ZeroInt(), types.ErrInvariantViolation.Wrapf(
			"constant product invariant violated in swap: old_k=%s, new_k=%s", oldK, newK)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	cacheCtx, writeFn := sdkCtx.CacheContext()
	poolAddr := pool.GetAddress()

	if err := k.ledgerKeeper.TransferFrom(cacheCtx, poolAddr, trader, poolAddr, tokenIn, amountIn); err != nil {
		k.metrics.SwapsTotal.WithLabelValues(poolIDStr, tokenIn, tokenOut, "failed").Inc()
		return math.ZeroInt(), types.ErrInsufficientBalance.Wrapf("failed to transfer input tokens: %v", err)
	}
	if err := k.ledgerKeeper.Transfer(cacheCtx, poolAddr, trader, tokenOut, amountOut); err != nil {
		return math.ZeroInt(), types.ErrInsufficientBalance.Wrapf("failed to transfer output tokens: %v", err)
	}

	if isTokenAIn {
		pool.ReserveA, pool.ReserveB = newReserveIn, newReserveOut
	} else {
		pool.ReserveB, pool.ReserveA = newReserveIn, newReserveOut
	}
	if err := k.SetPool(cacheCtx, pool); err != nil {
		return math.ZeroInt(), err
	}

	writeFn()

	feeAmount := amountIn.Sub(math.LegacyNewDecFromInt(amountIn).Mul(math.LegacyOneDec().Sub(params.SwapFee)).TruncateInt())
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSwap,
			sdk.NewAttribute(types.AttributeKeyPoolID, poolIDStr),
			sdk.NewAttribute(types.AttributeKeyTrader, trader.String()),
			sdk.NewAttribute(types.AttributeKeyTokenIn, tokenIn),
			sdk.NewAttribute(types.AttributeKeyTokenOut, tokenOut),
			sdk.NewAttribute(types.AttributeKeyAmountIn, amountIn.String()),
			sdk.NewAttribute(types.AttributeKeyAmountOut, amountOut.String()),
			sdk.NewAttribute(types.AttributeKeyFee, feeAmount.String()),
		),
	)

	// Record successful swap metrics
	k.metrics.SwapsTotal.WithLabelValues(poolIDStr, tokenIn, tokenOut, "success").Inc()
	k.metrics.SwapVolume.WithLabelValues(poolIDStr, tokenIn).Add(amountToFloat(amountIn))
	k.metrics.SwapFeesCollected.WithLabelValues(poolIDStr, tokenIn).Add(amountToFloat(feeAmount))
	k.metrics.recordReserves(pool)

	return amountOut, nil
}

// SimulateSwap quotes a swap without executing it
func (k Keeper) SimulateSwap(ctx context.Context, poolID uint64, tokenIn string, amountIn math.Int) (math.Int, error) {
	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return math.ZeroInt(), err
	}
	_, isTokenAIn, err := swapLegs(pool, tokenIn)
	if err != nil {
		return math.ZeroInt(), err
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return math.ZeroInt(), fmt.Errorf("SimulateSwap: get params: %w", err)
	}

	if isTokenAIn {
		return CalculateSwapOutput(amountIn, pool.ReserveA, pool.ReserveB, params.SwapFee)
	}
	return CalculateSwapOutput(amountIn, pool.ReserveB, pool.ReserveA, params.SwapFee)
}

// GetSpotPrice returns the marginal price of tokenIn in units of the other token
func (k Keeper) GetSpotPrice(ctx context.Context, poolID uint64, tokenIn string) (math.LegacyDec, error) {
	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return math.LegacyZeroDec(), err
	}
	_, isTokenAIn, err := swapLegs(pool, tokenIn)
	if err != nil {
		return math.LegacyZeroDec(), err
	}

	reserveIn, reserveOut := pool.ReserveA, pool.ReserveB
	if !isTokenAIn {
		reserveIn, reserveOut = pool.ReserveB, pool.ReserveA
	}

	// DIVISION BY ZERO PROTECTION
	if reserveIn.IsZero() || reserveOut.IsZero() {
		return math.LegacyZeroDec(), types.ErrInsufficientLiquidity.Wrap("pool reserves must be positive")
	}

	return math.LegacyNewDecFromInt(reserveOut).Quo(math.LegacyNewDecFromInt(reserveIn)), nil
}
