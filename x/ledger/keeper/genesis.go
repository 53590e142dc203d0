package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/amm/x/ledger/types"
)

// InitGenesis stores the params and mints every genesis balance into the
// ledger. The params record is always written so the store is never empty.
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return fmt.Errorf("InitGenesis: %w", err)
	}
	if err := k.SetParams(ctx, genState.Params); err != nil {
		return fmt.Errorf("InitGenesis: %w", err)
	}

	for _, b := range genState.Balances {
		addr, err := sdk.AccAddressFromBech32(b.Address)
		if err != nil {
			return fmt.Errorf("InitGenesis: %w", err)
		}
		if b.Amount.IsZero() {
			continue
		}
		if err := k.Mint(ctx, addr, b.Denom, b.Amount); err != nil {
			return fmt.Errorf("InitGenesis: mint %s%s to %s: %w", b.Amount, b.Denom, b.Address, err)
		}
	}
	return nil
}

// ExportGenesis returns every non-zero balance held in the ledger.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, fmt.Errorf("ExportGenesis: %w", err)
	}
	genesis := types.DefaultGenesis()
	genesis.Params = params
	err = k.IterateBalances(ctx, func(addr sdk.AccAddress, denom string, amount math.Int) bool {
		genesis.Balances = append(genesis.Balances, types.Balance{
			Address: addr.String(),
			Denom:   denom,
			Amount:  amount,
		})
		return false
	})
	if err != nil {
		return nil, fmt.Errorf("ExportGenesis: %w", err)
	}
	return genesis, nil
}
