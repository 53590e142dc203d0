package keeper

import (
	"fmt"
	"math/big"

	"cosmossdk.io/math"
)

// SafeMath provides overflow-safe arithmetic for pool accounting. Every
// intermediate product is bounded to 256 bits, the width of the amounts
// themselves.

var maxUint256 = new(big.Int).Exp(big.NewInt(2), big.NewInt(256), nil)

// SafeMul multiplies two math.Int values with overflow checking
func SafeMul(a, b math.Int) (math.Int, error) {
	if a.IsZero() || b.IsZero() {
		return math.ZeroInt(), nil
	}

	result := new(big.Int).Mul(a.BigInt(), b.BigInt())
	if result.Cmp(maxUint256) >= 0 {
		return math.Int{}, fmt.Errorf("overflow: %s * %s exceeds 256 bits", a, b)
	}
	return math.NewIntFromBigInt(result), nil
}

// SafeMulDiv performs floor((a * b) / c) with overflow protection on the
// intermediate product.
func SafeMulDiv(a, b, c math.Int) (math.Int, error) {
	if c.IsZero() {
		return math.Int{}, fmt.Errorf("division by zero")
	}

	intermediate := new(big.Int).Mul(a.BigInt(), b.BigInt())
	if intermediate.Cmp(maxUint256) >= 0 {
		return math.Int{}, fmt.Errorf("overflow in multiplication step: %s * %s", a, b)
	}

	result := new(big.Int).Quo(intermediate, c.BigInt())
	return math.NewIntFromBigInt(result), nil
}

// SafeSqrt returns floor(sqrt(a * b)), the geometric mean used to bootstrap
// pool shares.
func SafeSqrt(a, b math.Int) (math.Int, error) {
	product, err := SafeMul(a, b)
	if err != nil {
		return math.Int{}, err
	}
	return math.NewIntFromBigInt(new(big.Int).Sqrt(product.BigInt())), nil
}

// AbsDiff returns |a - b|.
func AbsDiff(a, b math.Int) math.Int {
	if a.GTE(b) {
		return a.Sub(b)
	}
	return b.Sub(a)
}
