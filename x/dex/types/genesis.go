package types

import (
	"fmt"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// LiquidityPosition is a provider's share balance in one pool.
type LiquidityPosition struct {
	PoolId   uint64      `json:"pool_id"`
	Provider string      `json:"provider"`
	Shares   sdkmath.Int `json:"shares"`
}

// GenesisState defines the DEX module's genesis state.
type GenesisState struct {
	Params     Params              `json:"params"`
	Pools      []Pool              `json:"pools"`
	Positions  []LiquidityPosition `json:"positions"`
	NextPoolId uint64              `json:"next_pool_id"`
	FeePool    sdkmath.Int         `json:"fee_pool"`
}

// DefaultGenesis returns the default genesis state for the DEX module.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:     DefaultParams(),
		Pools:      []Pool{},
		Positions:  []LiquidityPosition{},
		NextPoolId: 1,
		FeePool:    sdkmath.ZeroInt(),
	}
}

// Validate ensures the genesis state is well-formed.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}
	if gs.FeePool.IsNil() || gs.FeePool.IsNegative() {
		return ErrInvalidGenesis.Wrap("fee pool must be non-negative")
	}

	pools := make(map[uint64]Pool, len(gs.Pools))
	pairs := make(map[string]uint64, len(gs.Pools))
	for _, pool := range gs.Pools {
		if err := pool.Validate(); err != nil {
			return err
		}
		if _, dup := pools[pool.Id]; dup {
			return ErrInvalidGenesis.Wrapf("duplicate pool id %d", pool.Id)
		}
		if pool.Id >= gs.NextPoolId {
			return ErrInvalidGenesis.Wrapf("pool id %d >= next pool id %d", pool.Id, gs.NextPoolId)
		}
		pair := fmt.Sprintf("%s/%s", pool.TokenA, pool.TokenB)
		if other, dup := pairs[pair]; dup {
			return ErrDuplicatePair.Wrapf("pools %d and %d both trade %s", other, pool.Id, pair)
		}
		pools[pool.Id] = pool
		pairs[pair] = pool.Id
	}

	shareSums := make(map[uint64]sdkmath.Int, len(gs.Pools))
	seen := make(map[string]struct{}, len(gs.Positions))
	for _, pos := range gs.Positions {
		posKey := fmt.Sprintf("%d/%s", pos.PoolId, pos.Provider)
		if _, dup := seen[posKey]; dup {
			return ErrInvalidGenesis.Wrapf("duplicate position %s", posKey)
		}
		seen[posKey] = struct{}{}
		if _, ok := pools[pos.PoolId]; !ok {
			return ErrInvalidGenesis.Wrapf("position references unknown pool %d", pos.PoolId)
		}
		if _, err := sdk.AccAddressFromBech32(pos.Provider); err != nil {
			return ErrInvalidGenesis.Wrapf("position provider %q: %v", pos.Provider, err)
		}
		if pos.Shares.IsNil() || !pos.Shares.IsPositive() {
			return ErrInvalidGenesis.Wrapf("position of %s in pool %d must hold positive shares", pos.Provider, pos.PoolId)
		}
		sum, ok := shareSums[pos.PoolId]
		if !ok {
			sum = sdkmath.ZeroInt()
		}
		shareSums[pos.PoolId] = sum.Add(pos.Shares)
	}

	for id, pool := range pools {
		sum, ok := shareSums[id]
		if !ok {
			sum = sdkmath.ZeroInt()
		}
		if !sum.Equal(pool.TotalShares) {
			return ErrInvalidGenesis.Wrapf("pool %d: positions sum to %s, total shares %s", id, sum, pool.TotalShares)
		}
	}
	return nil
}
