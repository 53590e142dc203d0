package types

import (
	"context"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// LedgerKeeper defines the native-asset ledger curves are paid in.
type LedgerKeeper interface {
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdkmath.Int
	Transfer(ctx context.Context, from, to sdk.AccAddress, denom string, amount sdkmath.Int) error
}
