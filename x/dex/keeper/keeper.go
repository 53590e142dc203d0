package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/amm/x/dex/types"
)

// Keeper of the dex store. It acts as the pool factory (pair registry and
// creation fee pool) and as the engine of every constant-product pool.
type Keeper struct {
	storeKey     storetypes.StoreKey
	ledgerKeeper types.LedgerKeeper
	authority    string // factory owner, the only account allowed to withdraw creation fees
	metrics      *DEXMetrics

	moduleAddressCache sdk.AccAddress
}

// NewKeeper creates a new dex Keeper instance
func NewKeeper(
	key storetypes.StoreKey,
	ledgerKeeper types.LedgerKeeper,
	authority string,
) *Keeper {
	return &Keeper{
		storeKey:           key,
		ledgerKeeper:       ledgerKeeper,
		authority:          authority,
		metrics:            NewDEXMetrics(),
		moduleAddressCache: types.ModuleAddress(),
	}
}

// getStore returns the KVStore for the dex module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}

// Logger returns a module-specific logger
func (k Keeper) Logger(ctx context.Context) log.Logger {
	return sdk.UnwrapSDKContext(ctx).Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// GetAuthority returns the factory owner address.
func (k Keeper) GetAuthority() string {
	return k.authority
}

// GetModuleAddress returns the cached module account address that holds the
// creation fee pool.
func (k Keeper) GetModuleAddress() sdk.AccAddress {
	return k.moduleAddressCache
}
