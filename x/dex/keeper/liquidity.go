package keeper

import (
	"context"
	"errors"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/amm/x/dex/types"
)

// GetLiquidity retrieves a user's liquidity position in a pool
func (k Keeper) GetLiquidity(ctx context.Context, poolID uint64, provider sdk.AccAddress) (math.Int, error) {
	store := k.getStore(ctx)
	bz := store.Get(LiquidityKey(poolID, provider))
	if bz == nil {
		return math.ZeroInt(), nil
	}

	var shares math.Int
	if err := shares.Unmarshal(bz); err != nil {
		return math.ZeroInt(), err
	}
	return shares, nil
}

// SetLiquidity sets a user's liquidity position in a pool
func (k Keeper) SetLiquidity(ctx context.Context, poolID uint64, provider sdk.AccAddress, shares math.Int) error {
	store := k.getStore(ctx)
	if shares.IsZero() {
		// Remove the liquidity position if shares are zero
		store.Delete(LiquidityKey(poolID, provider))
		return nil
	}

	bz, err := shares.Marshal()
	if err != nil {
		return err
	}
	store.Set(LiquidityKey(poolID, provider), bz)
	return nil
}

// IterateLiquidityByPool walks every provider position of one pool.
func (k Keeper) IterateLiquidityByPool(ctx context.Context, poolID uint64, cb func(provider sdk.AccAddress, shares math.Int) (stop bool)) error {
	store := k.getStore(ctx)
	prefix := LiquidityKeyByPoolPrefix(poolID)
	iterator := storetypes.KVStorePrefixIterator(store, prefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var shares math.Int
		if err := shares.Unmarshal(iterator.Value()); err != nil {
			return fmt.Errorf("IterateLiquidityByPool: unmarshal shares: %w", err)
		}
		provider := sdk.AccAddress(iterator.Key()[len(prefix):])
		if cb(provider, shares) {
			break
		}
	}
	return nil
}

// calculateMintShares returns the shares a deposit of (amountA, amountB)
// mints. The first deposit bootstraps the pool using params.BootstrapMode;
// later deposits must match the reserve ratio within params.RatioTolerance
// and mint the smaller of the two proportional legs.
func calculateMintShares(pool *types.Pool, params types.Params, amountA, amountB math.Int) (math.Int, error) {
	if pool.TotalShares.IsZero() {
		if !pool.ReserveA.IsZero() || !pool.ReserveB.IsZero() {
			return math.ZeroInt(), types.ErrInvalidPoolState.Wrap("pool has reserves but zero shares")
		}
		switch params.BootstrapMode {
		case types.BootstrapAmountA:
			return amountA, nil
		default:
			shares, err := SafeSqrt(amountA, amountB)
			if err != nil {
				return math.ZeroInt(), types.ErrOverflow.Wrapf("initial shares: %v", err)
			}
			return shares, nil
		}
	}

	if pool.ReserveA.IsZero() || pool.ReserveB.IsZero() {
		return math.ZeroInt(), types.ErrInvalidPoolState.Wrap("pool has shares but zero reserves")
	}

	// Price manipulation guard: amountB must track amountA * reserveB / reserveA.
	expectedB, err := SafeMulDiv(amountA, pool.ReserveB, pool.ReserveA)
	if err != nil {
		return math.ZeroInt(), types.ErrOverflow.Wrapf("expected amount B: %v", err)
	}
	tolerance := params.RatioTolerance.MulInt(expectedB).TruncateInt()
	if tolerance.LT(math.OneInt()) {
		tolerance = math.OneInt()
	}
	if AbsDiff(amountB, expectedB).GT(tolerance) {
		return math.ZeroInt(), types.ErrPriceManipulation.Wrapf(
			"deposit %s/%s deviates from reserve ratio: expected %s %s (tolerance %s)",
			amountA, amountB, expectedB, pool.TokenB, tolerance)
	}

	sharesA, err := SafeMulDiv(pool.TotalShares, amountA, pool.ReserveA)
	if err != nil {
		return math.ZeroInt(), types.ErrOverflow.Wrapf("shares from token A: %v", err)
	}
	sharesB, err := SafeMulDiv(pool.TotalShares, amountB, pool.ReserveB)
	if err != nil {
		return math.ZeroInt(), types.ErrOverflow.Wrapf("shares from token B: %v", err)
	}
	return math.MinInt(sharesA, sharesB), nil
}

// AddLiquidity deposits both pool assets and mints shares to the provider.
// The provider must have approved the pool account for both amounts.
func (k Keeper) AddLiquidity(ctx context.Context, provider sdk.AccAddress, poolID uint64, amountA, amountB math.Int) (math.Int, error) {
	// Validate inputs
	if provider.Empty() {
		return math.ZeroInt(), types.ErrInvalidAddress.Wrap("provider cannot be empty")
	}
	if amountA.IsNil() || amountB.IsNil() || !amountA.IsPositive() || !amountB.IsPositive() {
		return math.ZeroInt(), types.ErrInvalidAmount.Wrap("liquidity amounts must be positive")
	}

	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return math.ZeroInt(), err
	}
	params, err := k.GetParams(ctx)
	if err != nil {
		return math.ZeroInt(), fmt.Errorf("AddLiquidity: get params: %w", err)
	}

	poolIDStr := fmt.Sprintf("%d", poolID)
	newShares, err := calculateMintShares(pool, params, amountA, amountB)
	if err != nil {
		if errors.Is(err, types.ErrPriceManipulation) {
			k.metrics.DepositsRejected.WithLabelValues(poolIDStr).Inc()
		}
		return math.ZeroInt(), err
	}
	if newShares.IsZero() {
		return math.ZeroInt(), types.ErrInvalidAmount.Wrap("liquidity contribution too small")
	}

	// Update pool reserves and total shares with overflow protection
	newReserveA, err := pool.ReserveA.SafeAdd(amountA)
	if err != nil {
		return math.ZeroInt(), types.ErrOverflow.Wrapf("overflow adding to reserveA: %s + %s: %v", pool.ReserveA, amountA, err)
	}
	newReserveB, err := pool.ReserveB.SafeAdd(amountB)
	if err != nil {
		return math.ZeroInt(), types.ErrOverflow.Wrapf("overflow adding to reserveB: %s + %s: %v", pool.ReserveB, amountB, err)
	}
	newTotalShares, err := pool.TotalShares.SafeAdd(newShares)
	if err != nil {
		return math.ZeroInt(), types.ErrOverflow.Wrapf("overflow adding to total shares: %s + %s: %v", pool.TotalShares, newShares, err)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	cacheCtx, writeFn := sdkCtx.CacheContext()
	poolAddr := pool.GetAddress()

	// Pull both legs into the pool account before any bookkeeping is kept.
	if err := k.ledgerKeeper.TransferFrom(cacheCtx, poolAddr, provider, poolAddr, pool.TokenA, amountA); err != nil {
		return math.ZeroInt(), types.ErrInsufficientBalance.Wrapf("failed to transfer %s%s: %v", amountA, pool.TokenA, err)
	}
	if err := k.ledgerKeeper.TransferFrom(cacheCtx, poolAddr, provider, poolAddr, pool.TokenB, amountB); err != nil {
		return math.ZeroInt(), types.ErrInsufficientBalance.Wrapf("failed to transfer %s%s: %v", amountB, pool.TokenB, err)
	}

	pool.ReserveA = newReserveA
	pool.ReserveB = newReserveB
	pool.TotalShares = newTotalShares
	if err := k.SetPool(cacheCtx, pool); err != nil {
		return math.ZeroInt(), err
	}

	currentShares, err := k.GetLiquidity(cacheCtx, poolID, provider)
	if err != nil {
		return math.ZeroInt(), err
	}
	if err := k.SetLiquidity(cacheCtx, poolID, provider, currentShares.Add(newShares)); err != nil {
		return math.ZeroInt(), err
	}

	writeFn()

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeAddLiquidity,
			sdk.NewAttribute(types.AttributeKeyPoolID, poolIDStr),
			sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
			sdk.NewAttribute(types.AttributeKeyAmountA, amountA.String()),
			sdk.NewAttribute(types.AttributeKeyAmountB, amountB.String()),
			sdk.NewAttribute(types.AttributeKeySharesMinted, newShares.String()),
		),
	)

	k.metrics.LiquidityAdded.WithLabelValues(poolIDStr, pool.TokenA).Add(amountToFloat(amountA))
	k.metrics.LiquidityAdded.WithLabelValues(poolIDStr, pool.TokenB).Add(amountToFloat(amountB))
	k.metrics.recordReserves(pool)

	return newShares, nil
}

// RemoveLiquidity burns shares and pays out the proportional reserves,
// rounded down in the pool's favour.
func (k Keeper) RemoveLiquidity(ctx context.Context, provider sdk.AccAddress, poolID uint64, shares math.Int) (math.Int, math.Int, error) {
	// Validate inputs
	if provider.Empty() {
		return math.ZeroInt(), math.ZeroInt(), types.ErrInvalidAddress.Wrap("provider cannot be empty")
	}
	if shares.IsNil() || !shares.IsPositive() {
		return math.ZeroInt(), math.ZeroInt(), types.ErrInvalidAmount.Wrap("shares must be positive")
	}

	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}

	// DIVISION BY ZERO PROTECTION
	if pool.TotalShares.IsZero() {
		return math.ZeroInt(), math.ZeroInt(), types.ErrInvalidPoolState.Wrap("pool has zero total shares")
	}

	userShares, err := k.GetLiquidity(ctx, poolID, provider)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}
	if shares.GT(userShares) {
		return math.ZeroInt(), math.ZeroInt(), types.ErrInsufficientShares.Wrapf("have %s, need %s", userShares, shares)
	}

	amountA, err := SafeMulDiv(pool.ReserveA, shares, pool.TotalShares)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), types.ErrOverflow.Wrapf("withdrawal amount A: %v", err)
	}
	amountB, err := SafeMulDiv(pool.ReserveB, shares, pool.TotalShares)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), types.ErrOverflow.Wrapf("withdrawal amount B: %v", err)
	}
	if amountA.IsZero() && amountB.IsZero() {
		return math.ZeroInt(), math.ZeroInt(), types.ErrInvalidAmount.Wrap("withdrawal amounts too small")
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	cacheCtx, writeFn := sdkCtx.CacheContext()
	poolAddr := pool.GetAddress()

	pool.ReserveA = pool.ReserveA.Sub(amountA)
	pool.ReserveB = pool.ReserveB.Sub(amountB)
	pool.TotalShares = pool.TotalShares.Sub(shares)
	if err := k.SetPool(cacheCtx, pool); err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}
	if err := k.SetLiquidity(cacheCtx, poolID, provider, userShares.Sub(shares)); err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}

	if err := k.ledgerKeeper.Transfer(cacheCtx, poolAddr, provider, pool.TokenA, amountA); err != nil {
		return math.ZeroInt(), math.ZeroInt(), types.ErrInsufficientBalance.Wrapf("pool %d cannot pay %s%s: %v", poolID, amountA, pool.TokenA, err)
	}
	if err := k.ledgerKeeper.Transfer(cacheCtx, poolAddr, provider, pool.TokenB, amountB); err != nil {
		return math.ZeroInt(), math.ZeroInt(), types.ErrInsufficientBalance.Wrapf("pool %d cannot pay %s%s: %v", poolID, amountB, pool.TokenB, err)
	}

	writeFn()

	poolIDStr := fmt.Sprintf("%d", poolID)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRemoveLiquidity,
			sdk.NewAttribute(types.AttributeKeyPoolID, poolIDStr),
			sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
			sdk.NewAttribute(types.AttributeKeyAmountA, amountA.String()),
			sdk.NewAttribute(types.AttributeKeyAmountB, amountB.String()),
			sdk.NewAttribute(types.AttributeKeySharesBurned, shares.String()),
		),
	)

	k.metrics.LiquidityRemoved.WithLabelValues(poolIDStr, pool.TokenA).Add(amountToFloat(amountA))
	k.metrics.LiquidityRemoved.WithLabelValues(poolIDStr, pool.TokenB).Add(amountToFloat(amountB))
	k.metrics.recordReserves(pool)

	return amountA, amountB, nil
}
