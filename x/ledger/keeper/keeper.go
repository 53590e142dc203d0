package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/amm/x/ledger/types"
)

// Keeper of the ledger store. It holds per-account balances of any number of
// fungible denoms and the allowances used for pull-based transfers.
type Keeper struct {
	storeKey storetypes.StoreKey
}

// NewKeeper creates a new ledger Keeper instance
func NewKeeper(key storetypes.StoreKey) *Keeper {
	return &Keeper{storeKey: key}
}

// getStore returns the KVStore for the ledger module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}

// Logger returns a module-specific logger
func (k Keeper) Logger(ctx context.Context) log.Logger {
	return sdk.UnwrapSDKContext(ctx).Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}
