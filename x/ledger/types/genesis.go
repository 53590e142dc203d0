package types

import (
	"fmt"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Balance is a single account holding of one denom.
type Balance struct {
	Address string      `json:"address"`
	Denom   string      `json:"denom"`
	Amount  sdkmath.Int `json:"amount"`
}

// GenesisState defines the ledger module's genesis state.
type GenesisState struct {
	Params   Params    `json:"params"`
	Balances []Balance `json:"balances"`
}

// DefaultGenesis returns an empty ledger.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:   DefaultParams(),
		Balances: []Balance{},
	}
}

// Validate ensures the genesis state is well-formed.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return ErrInvalidGenesis.Wrapf("params: %v", err)
	}
	seen := make(map[string]struct{}, len(gs.Balances))
	for i, b := range gs.Balances {
		if _, err := sdk.AccAddressFromBech32(b.Address); err != nil {
			return ErrInvalidGenesis.Wrapf("balance %d: invalid address %q: %v", i, b.Address, err)
		}
		if err := sdk.ValidateDenom(b.Denom); err != nil {
			return ErrInvalidGenesis.Wrapf("balance %d: %v", i, err)
		}
		if b.Amount.IsNil() || b.Amount.IsNegative() {
			return ErrInvalidGenesis.Wrapf("balance %d: amount must be non-negative", i)
		}
		key := fmt.Sprintf("%s/%s", b.Address, b.Denom)
		if _, dup := seen[key]; dup {
			return ErrInvalidGenesis.Wrapf("duplicate balance for %s", key)
		}
		seen[key] = struct{}{}
	}
	return nil
}
