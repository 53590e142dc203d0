package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/amm/x/bondingcurve/types"
)

// RegisterInvariants registers all bonding curve invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "supply-balances", SupplyBalancesInvariant(k))
	ir.RegisterRoute(types.ModuleName, "reserve-solvency", ReserveSolvencyInvariant(k))
}

// AllInvariants runs all invariants of the bonding curve module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := SupplyBalancesInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		return ReserveSolvencyInvariant(k)(ctx)
	}
}

// SupplyBalancesInvariant checks that each curve's supply equals the sum of
// its holders' balances
func SupplyBalancesInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		err := k.IterateCurves(ctx, func(curve types.Curve) bool {
			sum := math.ZeroInt()
			if err := k.IterateBalances(ctx, curve.Id, func(_ sdk.AccAddress, amount math.Int) bool {
				sum = sum.Add(amount)
				return false
			}); err != nil {
				count++
				msg += fmt.Sprintf("curve %d: %v\n", curve.Id, err)
				return false
			}
			if !sum.Equal(curve.TotalSupply) {
				count++
				msg += fmt.Sprintf("curve %d: balances sum to %s, total supply %s\n", curve.Id, sum, curve.TotalSupply)
			}
			return false
		})
		if err != nil {
			count++
			msg += err.Error() + "\n"
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "supply-balances",
			fmt.Sprintf("found %d curves with inconsistent supply\n%s", count, msg),
		), broken
	}
}

// ReserveSolvencyInvariant checks that each curve account holds at least its
// recorded native reserve, and that the reserve covers selling the whole
// supply back down the curve
func ReserveSolvencyInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		params, err := k.GetParams(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "reserve-solvency", err.Error()), true
		}

		err = k.IterateCurves(ctx, func(curve types.Curve) bool {
			balance := k.ledgerKeeper.GetBalance(ctx, curve.GetAddress(), params.NativeDenom)
			if balance.LT(curve.NativeReserve) {
				count++
				msg += fmt.Sprintf("curve %d: account holds %s%s, reserve %s\n",
					curve.Id, balance, params.NativeDenom, curve.NativeReserve)
			}
			owed, err := BurnPayout(curve.TotalSupply, curve.TotalSupply, curve.Slope)
			if err != nil || curve.NativeReserve.LT(owed) {
				count++
				msg += fmt.Sprintf("curve %d: reserve %s does not back supply %s (owed %s, err %v)\n",
					curve.Id, curve.NativeReserve, curve.TotalSupply, owed, err)
			}
			return false
		})
		if err != nil {
			count++
			msg += err.Error() + "\n"
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "reserve-solvency",
			fmt.Sprintf("found %d curves with unbacked reserves\n%s", count, msg),
		), broken
	}
}
