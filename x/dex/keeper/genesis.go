package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/amm/x/dex/types"
)

// InitGenesis initializes the dex module's state from a genesis state
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return fmt.Errorf("invalid dex genesis: %w", err)
	}

	// Set parameters
	if err := k.SetParams(ctx, genState.Params); err != nil {
		return fmt.Errorf("failed to set params: %w", err)
	}

	// Set next pool ID counter
	if genState.NextPoolId > 0 {
		k.SetNextPoolID(ctx, genState.NextPoolId)
	}

	// Initialize pools
	for _, pool := range genState.Pools {
		expected := types.PoolAddress(pool.Id).String()
		if pool.Address == "" {
			pool.Address = expected
		}
		if pool.Address != expected {
			return fmt.Errorf("pool %d: address %s does not match derived account %s", pool.Id, pool.Address, expected)
		}
		if _, err := sdk.AccAddressFromBech32(pool.Creator); err != nil {
			return fmt.Errorf("pool %d: invalid creator address: %w", pool.Id, err)
		}

		if err := k.SetPool(ctx, &pool); err != nil {
			return fmt.Errorf("failed to set pool %d: %w", pool.Id, err)
		}
		if !k.registerPair(ctx, pool.TokenA, pool.TokenB, pool.Id) {
			return types.ErrDuplicatePair.Wrapf("pool %d: pair %s/%s already registered", pool.Id, pool.TokenA, pool.TokenB)
		}
	}
	k.SetTotalPoolsCount(ctx, uint64(len(genState.Pools)))
	k.metrics.PoolsTotal.Set(float64(len(genState.Pools)))

	// Initialize liquidity positions
	for _, liqPos := range genState.Positions {
		provider, err := sdk.AccAddressFromBech32(liqPos.Provider)
		if err != nil {
			return fmt.Errorf("invalid liquidity provider address %s: %w", liqPos.Provider, err)
		}

		if err := k.SetLiquidity(ctx, liqPos.PoolId, provider, liqPos.Shares); err != nil {
			return fmt.Errorf("failed to set liquidity position for pool %d, provider %s: %w",
				liqPos.PoolId, liqPos.Provider, err)
		}
	}

	if err := k.SetFeePool(ctx, genState.FeePool); err != nil {
		return fmt.Errorf("failed to set fee pool: %w", err)
	}

	return nil
}

// ExportGenesis exports the dex module's state to a genesis state
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get params: %w", err)
	}

	var (
		pools        []types.Pool
		liqPositions []types.LiquidityPosition
		iterErr      error
	)
	err = k.IteratePools(ctx, func(pool types.Pool) bool {
		pools = append(pools, pool)
		iterErr = k.IterateLiquidityByPool(ctx, pool.Id, func(provider sdk.AccAddress, shares math.Int) bool {
			liqPositions = append(liqPositions, types.LiquidityPosition{
				PoolId:   pool.Id,
				Provider: provider.String(),
				Shares:   shares,
			})
			return false
		})
		return iterErr != nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to export pools: %w", err)
	}
	if iterErr != nil {
		return nil, fmt.Errorf("failed to export liquidity positions: %w", iterErr)
	}

	feePool, err := k.GetFeePool(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get fee pool: %w", err)
	}

	if pools == nil {
		pools = []types.Pool{}
	}
	if liqPositions == nil {
		liqPositions = []types.LiquidityPosition{}
	}

	return &types.GenesisState{
		Params:     params,
		Pools:      pools,
		Positions:  liqPositions,
		NextPoolId: k.PeekNextPoolID(ctx),
		FeePool:    feePool,
	}, nil
}
