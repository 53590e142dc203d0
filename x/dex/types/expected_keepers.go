package types

import (
	"context"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// LedgerKeeper defines the fungible-balance ledger the pools settle against.
// Pools pull deposits with TransferFrom, so providers and traders must first
// approve the pool account as spender.
type LedgerKeeper interface {
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdkmath.Int
	Transfer(ctx context.Context, from, to sdk.AccAddress, denom string, amount sdkmath.Int) error
	TransferFrom(ctx context.Context, spender, owner, to sdk.AccAddress, denom string, amount sdkmath.Int) error
}
