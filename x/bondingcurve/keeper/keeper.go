package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/amm/x/bondingcurve/types"
)

// Keeper of the bonding curve store
type Keeper struct {
	storeKey     storetypes.StoreKey
	ledgerKeeper types.LedgerKeeper
	metrics      *CurveMetrics
}

// NewKeeper creates a new bonding curve Keeper instance
func NewKeeper(key storetypes.StoreKey, ledgerKeeper types.LedgerKeeper) *Keeper {
	return &Keeper{
		storeKey:     key,
		ledgerKeeper: ledgerKeeper,
		metrics:      NewCurveMetrics(),
	}
}

func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	return sdk.UnwrapSDKContext(ctx).KVStore(k.storeKey)
}

// Logger returns a module-specific logger
func (k Keeper) Logger(ctx context.Context) log.Logger {
	return sdk.UnwrapSDKContext(ctx).Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}
