package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// GetReserves returns the current reserves of a pool, ordered (A, B).
func (k Keeper) GetReserves(ctx context.Context, poolID uint64) (math.Int, math.Int, error) {
	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}
	return pool.ReserveA, pool.ReserveB, nil
}

// GetTotalShares returns the outstanding shares of a pool.
func (k Keeper) GetTotalShares(ctx context.Context, poolID uint64) (math.Int, error) {
	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return math.ZeroInt(), err
	}
	return pool.TotalShares, nil
}

// GetShares returns the shares provider holds in a pool. Unknown providers
// hold zero; unknown pools are an error.
func (k Keeper) GetShares(ctx context.Context, poolID uint64, provider sdk.AccAddress) (math.Int, error) {
	if _, err := k.GetPool(ctx, poolID); err != nil {
		return math.ZeroInt(), err
	}
	return k.GetLiquidity(ctx, poolID, provider)
}
