package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"
)

const (
	// ModuleName defines the module name
	ModuleName = "dex"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName
)

// ModuleAddress is the ledger account that holds collected pair creation fees.
func ModuleAddress() sdk.AccAddress {
	return address.Module(ModuleName)
}

// PoolAddress derives the ledger account that holds the reserves of a pool.
// Each pool gets its own account so that reserves of different pools sharing
// a token never mix.
func PoolAddress(poolID uint64) sdk.AccAddress {
	return address.Module(ModuleName, sdk.Uint64ToBigEndian(poolID))
}
