package keeper

import (
	"testing"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/paw-chain/amm/x/bondingcurve/keeper"
	"github.com/paw-chain/amm/x/bondingcurve/types"
	ledgerkeeper "github.com/paw-chain/amm/x/ledger/keeper"
	ledgertypes "github.com/paw-chain/amm/x/ledger/types"
)

// BondingCurveKeeper creates a test keeper for the bonding curve module
// backed by a real ledger keeper on the same multistore.
func BondingCurveKeeper(t testing.TB) (*keeper.Keeper, *ledgerkeeper.Keeper, sdk.Context) {
	ledgerKey := storetypes.NewKVStoreKey(ledgertypes.StoreKey)
	curveKey := storetypes.NewKVStoreKey(types.StoreKey)
	ctx := newTestContext(t, ledgerKey, curveKey)

	lk := ledgerkeeper.NewKeeper(ledgerKey)
	k := keeper.NewKeeper(curveKey, lk)
	require.NoError(t, k.InitGenesis(ctx, *types.DefaultGenesis()))

	return k, lk, ctx
}
