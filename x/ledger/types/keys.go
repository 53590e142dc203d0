package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"
)

const (
	// ModuleName defines the module name
	ModuleName = "ledger"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// DefaultNativeDenom is the 18-decimal native currency used for payable calls.
	DefaultNativeDenom = "apaw"
)

// Store key prefixes
var (
	BalanceKeyPrefix   = []byte{0x01} // prefix for account balances
	AllowanceKeyPrefix = []byte{0x02} // prefix for spender allowances
	SupplyKeyPrefix    = []byte{0x03} // prefix for per-denom total supply
	ParamsKey          = []byte{0x04} // module parameters
)

// BalanceKey returns the store key for an account balance: prefix | len(denom) | denom | len(addr) | addr
func BalanceKey(denom string, addr sdk.AccAddress) []byte {
	key := append([]byte{}, BalanceKeyPrefix...)
	key = append(key, address.MustLengthPrefix([]byte(denom))...)
	return append(key, address.MustLengthPrefix(addr)...)
}

// BalanceByDenomPrefix returns the prefix covering every balance of a denom
func BalanceByDenomPrefix(denom string) []byte {
	key := append([]byte{}, BalanceKeyPrefix...)
	return append(key, address.MustLengthPrefix([]byte(denom))...)
}

// AllowanceKey returns the store key for an allowance granted by owner to spender
func AllowanceKey(owner, spender sdk.AccAddress, denom string) []byte {
	key := append([]byte{}, AllowanceKeyPrefix...)
	key = append(key, address.MustLengthPrefix(owner)...)
	key = append(key, address.MustLengthPrefix(spender)...)
	return append(key, []byte(denom)...)
}

// SupplyKey returns the store key for the total supply of a denom
func SupplyKey(denom string) []byte {
	return append(append([]byte{}, SupplyKeyPrefix...), []byte(denom)...)
}

// ParseBalanceKey splits a balance key into its denom and address parts.
func ParseBalanceKey(key []byte) (string, sdk.AccAddress) {
	key = key[len(BalanceKeyPrefix):]
	denomLen := int(key[0])
	denom := string(key[1 : 1+denomLen])
	key = key[1+denomLen:]
	addrLen := int(key[0])
	return denom, sdk.AccAddress(key[1 : 1+addrLen])
}
