package types

import (
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Pool is a constant-product pool over two assets. TokenA < TokenB
// lexicographically; the pair is fixed at creation.
type Pool struct {
	Id          uint64      `json:"id"`
	Address     string      `json:"address"`
	TokenA      string      `json:"token_a"`
	TokenB      string      `json:"token_b"`
	ReserveA    sdkmath.Int `json:"reserve_a"`
	ReserveB    sdkmath.Int `json:"reserve_b"`
	TotalShares sdkmath.Int `json:"total_shares"`
	Creator     string      `json:"creator"`
}

// NewPool returns an empty pool for an ordered pair.
func NewPool(id uint64, tokenA, tokenB string, creator sdk.AccAddress) Pool {
	return Pool{
		Id:          id,
		Address:     PoolAddress(id).String(),
		TokenA:      tokenA,
		TokenB:      tokenB,
		ReserveA:    sdkmath.ZeroInt(),
		ReserveB:    sdkmath.ZeroInt(),
		TotalShares: sdkmath.ZeroInt(),
		Creator:     creator.String(),
	}
}

// GetAddress returns the ledger account holding the pool reserves.
func (p Pool) GetAddress() sdk.AccAddress {
	return PoolAddress(p.Id)
}

// HasToken reports whether denom is one of the pool's two assets.
func (p Pool) HasToken(denom string) bool {
	return denom == p.TokenA || denom == p.TokenB
}

// Validate checks the pool's internal consistency: reserves and shares are
// either all zero (empty pool) or all positive.
func (p Pool) Validate() error {
	if p.Id == 0 {
		return ErrInvalidPoolState.Wrap("pool id cannot be zero")
	}
	if p.TokenA == "" || p.TokenB == "" || p.TokenA >= p.TokenB {
		return ErrInvalidPoolState.Wrapf("pool %d: tokens must be ordered and distinct, got %s/%s", p.Id, p.TokenA, p.TokenB)
	}
	if p.ReserveA.IsNil() || p.ReserveB.IsNil() || p.TotalShares.IsNil() {
		return ErrInvalidPoolState.Wrapf("pool %d: nil reserves or shares", p.Id)
	}
	if p.ReserveA.IsNegative() || p.ReserveB.IsNegative() || p.TotalShares.IsNegative() {
		return ErrInvalidPoolState.Wrapf("pool %d: negative reserves or shares", p.Id)
	}

	empty := p.ReserveA.IsZero() && p.ReserveB.IsZero() && p.TotalShares.IsZero()
	funded := p.ReserveA.IsPositive() && p.ReserveB.IsPositive() && p.TotalShares.IsPositive()
	if !empty && !funded {
		return ErrInvalidPoolState.Wrapf("pool %d: reserves %s/%s with %s shares",
			p.Id, p.ReserveA, p.ReserveB, p.TotalShares)
	}
	return nil
}

// OrderTokens returns the pair in canonical (lexicographic) order.
func OrderTokens(tokenA, tokenB string) (string, string) {
	if tokenA > tokenB {
		return tokenB, tokenA
	}
	return tokenA, tokenB
}
