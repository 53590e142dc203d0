package keeper

import (
	"testing"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/paw-chain/amm/x/dex/keeper"
	"github.com/paw-chain/amm/x/dex/types"
	ledgerkeeper "github.com/paw-chain/amm/x/ledger/keeper"
	ledgertypes "github.com/paw-chain/amm/x/ledger/types"
)

// DexOwner is the factory owner of keepers built by DexKeeper.
var DexOwner = TestAddr("dex-owner")

// DexKeeper creates a test keeper for the DEX module backed by a real ledger
// keeper on the same multistore.
func DexKeeper(t testing.TB) (*keeper.Keeper, *ledgerkeeper.Keeper, sdk.Context) {
	ledgerKey := storetypes.NewKVStoreKey(ledgertypes.StoreKey)
	dexKey := storetypes.NewKVStoreKey(types.StoreKey)
	ctx := newTestContext(t, ledgerKey, dexKey)

	lk := ledgerkeeper.NewKeeper(ledgerKey)
	k := keeper.NewKeeper(dexKey, lk, DexOwner.String())

	// Initialize module genesis
	require.NoError(t, k.InitGenesis(ctx, *types.DefaultGenesis()))

	return k, lk, ctx
}

// CreateTestPool creates a pair, paying the creation fee from a freshly
// funded creator, and returns its ID.
func CreateTestPool(t testing.TB, k *keeper.Keeper, lk *ledgerkeeper.Keeper, ctx sdk.Context, tokenA, tokenB string) uint64 {
	t.Helper()

	fee, err := k.CreationFee(ctx)
	require.NoError(t, err)

	creator := TestAddr("pool-creator-" + tokenA + "-" + tokenB)
	FundAccount(t, lk, ctx, creator, NativeDenom, fee)

	pool, err := k.CreatePair(ctx, creator, tokenA, tokenB, fee)
	require.NoError(t, err)
	return pool.Id
}

// FundAndApprove mints both pool assets to addr and approves the pool
// account to pull them.
func FundAndApprove(t testing.TB, k *keeper.Keeper, lk *ledgerkeeper.Keeper, ctx sdk.Context, poolID uint64, addr sdk.AccAddress, amountA, amountB math.Int) {
	t.Helper()

	pool, err := k.GetPool(ctx, poolID)
	require.NoError(t, err)

	FundAccount(t, lk, ctx, addr, pool.TokenA, amountA)
	FundAccount(t, lk, ctx, addr, pool.TokenB, amountB)
	require.NoError(t, lk.Approve(ctx, addr, pool.GetAddress(), pool.TokenA, amountA))
	require.NoError(t, lk.Approve(ctx, addr, pool.GetAddress(), pool.TokenB, amountB))
}

// CreatePoolWithLiquidity creates a pair and seeds it with the given reserves.
func CreatePoolWithLiquidity(t testing.TB, k *keeper.Keeper, lk *ledgerkeeper.Keeper, ctx sdk.Context, tokenA, tokenB string, amountA, amountB math.Int) (uint64, sdk.AccAddress) {
	t.Helper()

	poolID := CreateTestPool(t, k, lk, ctx, tokenA, tokenB)
	provider := TestAddr("seed-provider")
	FundAndApprove(t, k, lk, ctx, poolID, provider, amountA, amountB)

	_, err := k.AddLiquidity(ctx, provider, poolID, amountA, amountB)
	require.NoError(t, err)
	return poolID, provider
}
