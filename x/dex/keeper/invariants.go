package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/amm/x/dex/types"
)

// RegisterInvariants registers all DEX invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "pool-shares", PoolSharesInvariant(k))
	ir.RegisterRoute(types.ModuleName, "positive-reserves", PositiveReservesInvariant(k))
	ir.RegisterRoute(types.ModuleName, "pool-account-balance", PoolAccountBalanceInvariant(k))
	ir.RegisterRoute(types.ModuleName, "fee-pool-balance", FeePoolBalanceInvariant(k))
}

// AllInvariants runs all invariants of the DEX module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := PoolSharesInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		res, stop = PositiveReservesInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		res, stop = PoolAccountBalanceInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		return FeePoolBalanceInvariant(k)(ctx)
	}
}

// PoolSharesInvariant checks that every pool's total shares equal the sum of
// its provider positions
func PoolSharesInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		err := k.IteratePools(ctx, func(pool types.Pool) bool {
			sum := math.ZeroInt()
			if err := k.IterateLiquidityByPool(ctx, pool.Id, func(_ sdk.AccAddress, shares math.Int) bool {
				sum = sum.Add(shares)
				return false
			}); err != nil {
				count++
				msg += fmt.Sprintf("pool %d: %v\n", pool.Id, err)
				return false
			}

			if !sum.Equal(pool.TotalShares) {
				count++
				msg += fmt.Sprintf("pool %d: positions sum to %s, total shares %s\n",
					pool.Id, sum, pool.TotalShares)
			}
			return false
		})
		if err != nil {
			count++
			msg += err.Error() + "\n"
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "pool-shares",
			fmt.Sprintf("found %d pools with inconsistent shares\n%s", count, msg),
		), broken
	}
}

// PositiveReservesInvariant checks that reserves and shares are either all
// zero or all positive
func PositiveReservesInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		err := k.IteratePools(ctx, func(pool types.Pool) bool {
			if err := pool.Validate(); err != nil {
				count++
				msg += err.Error() + "\n"
			}
			return false
		})
		if err != nil {
			count++
			msg += err.Error() + "\n"
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "positive-reserves",
			fmt.Sprintf("found %d pools in an invalid state\n%s", count, msg),
		), broken
	}
}

// PoolAccountBalanceInvariant checks that each pool account holds at least its
// recorded reserves
func PoolAccountBalanceInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		err := k.IteratePools(ctx, func(pool types.Pool) bool {
			poolAddr := pool.GetAddress()
			balanceA := k.ledgerKeeper.GetBalance(ctx, poolAddr, pool.TokenA)
			balanceB := k.ledgerKeeper.GetBalance(ctx, poolAddr, pool.TokenB)

			// Direct transfers into a pool account are possible, so check >= not ==
			if balanceA.LT(pool.ReserveA) {
				count++
				msg += fmt.Sprintf("pool %d: balance for %s (%s) < reserve (%s)\n",
					pool.Id, pool.TokenA, balanceA, pool.ReserveA)
			}
			if balanceB.LT(pool.ReserveB) {
				count++
				msg += fmt.Sprintf("pool %d: balance for %s (%s) < reserve (%s)\n",
					pool.Id, pool.TokenB, balanceB, pool.ReserveB)
			}
			return false
		})
		if err != nil {
			count++
			msg += err.Error() + "\n"
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "pool-account-balance",
			fmt.Sprintf("found %d reserves not backed by the pool account\n%s", count, msg),
		), broken
	}
}

// FeePoolBalanceInvariant checks that the module account backs the creation
// fee pool
func FeePoolBalanceInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		fees, err := k.GetFeePool(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "fee-pool-balance", err.Error()), true
		}
		params, err := k.GetParams(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "fee-pool-balance", err.Error()), true
		}

		balance := k.ledgerKeeper.GetBalance(ctx, k.GetModuleAddress(), params.FeeDenom)
		broken := balance.LT(fees)
		return sdk.FormatInvariant(
			types.ModuleName, "fee-pool-balance",
			fmt.Sprintf("module balance %s%s, fee pool %s%s\n", balance, params.FeeDenom, fees, params.FeeDenom),
		), broken
	}
}
