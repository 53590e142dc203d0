package keeper

import (
	"encoding/binary"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	// CurveKeyPrefix is the prefix for curve store keys
	CurveKeyPrefix = []byte{0x01}

	// CurveCountKey is the key for the next curve ID counter
	CurveCountKey = []byte{0x02}

	// CurveByDenomKeyPrefix indexes curves by the token they issue
	CurveByDenomKeyPrefix = []byte{0x03}

	// BalanceKeyPrefix is the prefix for curve token balances
	BalanceKeyPrefix = []byte{0x04}

	// ParamsKey is the key for module parameters
	ParamsKey = []byte{0x05}
)

// CurveKey returns the store key for a curve by ID
func CurveKey(curveID uint64) []byte {
	return append(append([]byte{}, CurveKeyPrefix...), sdk.Uint64ToBigEndian(curveID)...)
}

// CurveByDenomKey returns the index key for a curve token denom
func CurveByDenomKey(denom string) []byte {
	return append(append([]byte{}, CurveByDenomKeyPrefix...), []byte(denom)...)
}

// BalanceKey returns the store key for a holder's balance of a curve token
func BalanceKey(curveID uint64, holder sdk.AccAddress) []byte {
	return append(BalanceKeyByCurvePrefix(curveID), holder.Bytes()...)
}

// BalanceKeyByCurvePrefix returns the prefix for all balances of one curve
func BalanceKeyByCurvePrefix(curveID uint64) []byte {
	curveIDBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(curveIDBytes, curveID)
	return append(append([]byte{}, BalanceKeyPrefix...), curveIDBytes...)
}
