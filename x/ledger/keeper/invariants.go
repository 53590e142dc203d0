package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/amm/x/ledger/types"
)

// RegisterInvariants registers all ledger invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "total-supply", TotalSupplyInvariant(k))
}

// TotalSupplyInvariant checks that the balances of every denom add up to its
// minted supply. Transfers move value between accounts and never create it.
func TotalSupplyInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		sums := make(map[string]math.Int)
		var denoms []string

		err := k.IterateBalances(ctx, func(_ sdk.AccAddress, denom string, amount math.Int) bool {
			sum, ok := sums[denom]
			if !ok {
				sum = math.ZeroInt()
				denoms = append(denoms, denom)
			}
			sums[denom] = sum.Add(amount)
			return false
		})
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "total-supply", err.Error()), true
		}

		var (
			msg   string
			count int
		)
		for _, denom := range denoms {
			supply := k.GetSupply(ctx, denom)
			if !supply.Equal(sums[denom]) {
				count++
				msg += fmt.Sprintf("%s: sum of balances %s != supply %s\n", denom, sums[denom], supply)
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "total-supply",
			fmt.Sprintf("found %d denoms with mismatched supply\n%s", count, msg),
		), broken
	}
}
