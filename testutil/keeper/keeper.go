package keeper

import (
	"fmt"
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	"github.com/cometbft/cometbft/crypto"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	ledgerkeeper "github.com/paw-chain/amm/x/ledger/keeper"
	ledgertypes "github.com/paw-chain/amm/x/ledger/types"
)

// NativeDenom is the denom creation fees and curve trades use in tests.
const NativeDenom = ledgertypes.DefaultNativeDenom

// newTestContext mounts an IAVL store per key over an in-memory database and
// returns a context over the committed multistore.
func newTestContext(t testing.TB, keys ...*storetypes.KVStoreKey) sdk.Context {
	t.Helper()

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	for _, key := range keys {
		stateStore.MountStoreWithDB(key, storetypes.StoreTypeIAVL, db)
	}
	require.NoError(t, stateStore.LoadLatestVersion())

	return sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger())
}

// TestAddr derives a deterministic account address from a name.
func TestAddr(name string) sdk.AccAddress {
	return sdk.AccAddress(crypto.AddressHash([]byte(name)))
}

// LedgerKeeper creates a test keeper for the ledger module
func LedgerKeeper(t testing.TB) (*ledgerkeeper.Keeper, sdk.Context) {
	storeKey := storetypes.NewKVStoreKey(ledgertypes.StoreKey)
	ctx := newTestContext(t, storeKey)
	return ledgerkeeper.NewKeeper(storeKey), ctx
}

// FundAccount mints amount of denom to addr.
func FundAccount(t testing.TB, k *ledgerkeeper.Keeper, ctx sdk.Context, addr sdk.AccAddress, denom string, amount math.Int) {
	t.Helper()
	require.NoError(t, k.Mint(ctx, addr, denom, amount))
}

// RequireIntEqual asserts two amounts are numerically equal. require.Equal
// compares big.Int internals and may reject equal zero values.
func RequireIntEqual(t require.TestingT, expected, actual math.Int, msgAndArgs ...interface{}) {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	if expected.Equal(actual) {
		return
	}
	require.Fail(t, fmt.Sprintf("expected %s, got %s", expected, actual), msgAndArgs...)
}
