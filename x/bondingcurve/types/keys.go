package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"
)

const (
	// ModuleName defines the module name
	ModuleName = "bondingcurve"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName
)

// CurveAddress derives the ledger account holding a curve's native reserve.
func CurveAddress(curveID uint64) sdk.AccAddress {
	return address.Module(ModuleName, sdk.Uint64ToBigEndian(curveID))
}
