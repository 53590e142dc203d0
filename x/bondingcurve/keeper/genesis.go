package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/amm/x/bondingcurve/types"
)

// InitGenesis initializes the bonding curve module's state from a genesis state
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return fmt.Errorf("invalid bondingcurve genesis: %w", err)
	}

	if err := k.SetParams(ctx, genState.Params); err != nil {
		return fmt.Errorf("failed to set params: %w", err)
	}
	k.SetNextCurveID(ctx, genState.NextCurveId)

	for _, curve := range genState.Curves {
		expected := types.CurveAddress(curve.Id).String()
		if curve.Address == "" {
			curve.Address = expected
		}
		if curve.Address != expected {
			return fmt.Errorf("curve %d: address %s does not match derived account %s", curve.Id, curve.Address, expected)
		}
		if err := k.SetCurve(ctx, &curve); err != nil {
			return fmt.Errorf("failed to set curve %d: %w", curve.Id, err)
		}
		k.getStore(ctx).Set(CurveByDenomKey(curve.Denom), sdk.Uint64ToBigEndian(curve.Id))
	}

	for _, b := range genState.Balances {
		holder, err := sdk.AccAddressFromBech32(b.Holder)
		if err != nil {
			return fmt.Errorf("invalid holder address %s: %w", b.Holder, err)
		}
		if err := k.setBalance(ctx, b.CurveId, holder, b.Amount); err != nil {
			return fmt.Errorf("failed to set balance of %s in curve %d: %w", b.Holder, b.CurveId, err)
		}
	}
	return nil
}

// ExportGenesis exports the bonding curve module's state to a genesis state
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get params: %w", err)
	}

	curves := []types.Curve{}
	balances := []types.CurveBalance{}
	var iterErr error
	err = k.IterateCurves(ctx, func(curve types.Curve) bool {
		curves = append(curves, curve)
		iterErr = k.IterateBalances(ctx, curve.Id, func(holder sdk.AccAddress, amount math.Int) bool {
			balances = append(balances, types.CurveBalance{
				CurveId: curve.Id,
				Holder:  holder.String(),
				Amount:  amount,
			})
			return false
		})
		return iterErr != nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to export curves: %w", err)
	}
	if iterErr != nil {
		return nil, fmt.Errorf("failed to export balances: %w", iterErr)
	}

	return &types.GenesisState{
		Params:      params,
		Curves:      curves,
		Balances:    balances,
		NextCurveId: k.PeekNextCurveID(ctx),
	}, nil
}
