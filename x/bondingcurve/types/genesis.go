package types

import (
	"fmt"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// CurveBalance is one holder's balance of a curve token.
type CurveBalance struct {
	CurveId uint64      `json:"curve_id"`
	Holder  string      `json:"holder"`
	Amount  sdkmath.Int `json:"amount"`
}

// GenesisState defines the bonding curve module's genesis state.
type GenesisState struct {
	Params      Params         `json:"params"`
	Curves      []Curve        `json:"curves"`
	Balances    []CurveBalance `json:"balances"`
	NextCurveId uint64         `json:"next_curve_id"`
}

// DefaultGenesis returns the default genesis state.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:      DefaultParams(),
		Curves:      []Curve{},
		Balances:    []CurveBalance{},
		NextCurveId: 1,
	}
}

// Validate ensures the genesis state is well-formed and that every curve's
// supply equals the sum of its holders' balances.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	curves := make(map[uint64]Curve, len(gs.Curves))
	denoms := make(map[string]uint64, len(gs.Curves))
	for _, c := range gs.Curves {
		if err := c.Validate(); err != nil {
			return err
		}
		if _, dup := curves[c.Id]; dup {
			return ErrInvalidGenesis.Wrapf("duplicate curve id %d", c.Id)
		}
		if c.Id >= gs.NextCurveId {
			return ErrInvalidGenesis.Wrapf("curve id %d >= next curve id %d", c.Id, gs.NextCurveId)
		}
		if other, dup := denoms[c.Denom]; dup {
			return ErrDuplicateDenom.Wrapf("curves %d and %d both issue %s", other, c.Id, c.Denom)
		}
		curves[c.Id] = c
		denoms[c.Denom] = c.Id
	}

	sums := make(map[uint64]sdkmath.Int, len(gs.Curves))
	seen := make(map[string]struct{}, len(gs.Balances))
	for _, b := range gs.Balances {
		key := fmt.Sprintf("%d/%s", b.CurveId, b.Holder)
		if _, dup := seen[key]; dup {
			return ErrInvalidGenesis.Wrapf("duplicate balance %s", key)
		}
		seen[key] = struct{}{}
		if _, ok := curves[b.CurveId]; !ok {
			return ErrInvalidGenesis.Wrapf("balance references unknown curve %d", b.CurveId)
		}
		if _, err := sdk.AccAddressFromBech32(b.Holder); err != nil {
			return ErrInvalidGenesis.Wrapf("balance holder %q: %v", b.Holder, err)
		}
		if b.Amount.IsNil() || !b.Amount.IsPositive() {
			return ErrInvalidGenesis.Wrapf("balance %s must be positive", key)
		}
		sum, ok := sums[b.CurveId]
		if !ok {
			sum = sdkmath.ZeroInt()
		}
		sums[b.CurveId] = sum.Add(b.Amount)
	}

	for id, c := range curves {
		sum, ok := sums[id]
		if !ok {
			sum = sdkmath.ZeroInt()
		}
		if !sum.Equal(c.TotalSupply) {
			return ErrInvalidGenesis.Wrapf("curve %d: balances sum to %s, total supply %s", id, sum, c.TotalSupply)
		}
	}
	return nil
}
