package keeper

import (
	"fmt"
	"math/big"

	"cosmossdk.io/math"
)

// Curve arithmetic works on raw big.Int values. A LegacyDec slope carries 18
// fractional digits, and curve supplies are 18-decimal base units, so every
// formula divides out one factor of 10^18 per scaled operand. Amounts paid
// out round down and amounts charged round up, which keeps the reserve on
// the winning side of every trade.

var (
	maxUint256 = new(big.Int).Lsh(big.NewInt(1), 256)
	precision  = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil) // one whole token / LegacyDec unit
	precision2 = new(big.Int).Mul(precision, precision)
)

func toInt(v *big.Int) (math.Int, error) {
	if v.Sign() < 0 {
		return math.Int{}, fmt.Errorf("negative result %s", v)
	}
	if v.Cmp(maxUint256) >= 0 {
		return math.Int{}, fmt.Errorf("result %s exceeds 256 bits", v)
	}
	return math.NewIntFromBigInt(v), nil
}

// SpotPrice returns floor(slope * supply): the native base units one whole
// token costs at the given supply.
func SpotPrice(supply math.Int, slope math.LegacyDec) (math.Int, error) {
	p := new(big.Int).Mul(slope.BigInt(), supply.BigInt())
	return toInt(p.Quo(p, precision))
}

// MintAmount returns how many base units value buys at the given supply:
// T = isqrt(S^2 + 2*value*10^18/slope) - S.
func MintAmount(supply, value math.Int, slope math.LegacyDec) (math.Int, error) {
	if !slope.IsPositive() {
		return math.Int{}, fmt.Errorf("slope must be positive")
	}
	s := supply.BigInt()

	// 2 * value * 10^36 / slopeRaw == 2 * value * 10^18 / slope
	area := new(big.Int).Mul(value.BigInt(), precision2)
	area.Lsh(area, 1)
	area.Quo(area, slope.BigInt())

	rad := new(big.Int).Mul(s, s)
	rad.Add(rad, area)
	t := new(big.Int).Sqrt(rad)
	return toInt(t.Sub(t, s))
}

// BurnPayout returns the native value released by burning amount base units
// from the given supply: floor(slope/2 * (S^2 - (S-amount)^2) / 10^18).
func BurnPayout(supply, amount math.Int, slope math.LegacyDec) (math.Int, error) {
	if amount.GT(supply) {
		return math.Int{}, fmt.Errorf("burn %s exceeds supply %s", amount, supply)
	}
	s := supply.BigInt()
	rest := new(big.Int).Sub(s, amount.BigInt())

	diff := new(big.Int).Mul(s, s)
	diff.Sub(diff, new(big.Int).Mul(rest, rest))

	payout := diff.Mul(diff, slope.BigInt())
	payout.Quo(payout, new(big.Int).Lsh(precision2, 1))
	return toInt(payout)
}

// MintCost returns the native value needed to mint amount base units on top
// of the given supply: ceil(slope/2 * ((S+amount)^2 - S^2) / 10^18).
func MintCost(supply, amount math.Int, slope math.LegacyDec) (math.Int, error) {
	s := supply.BigInt()
	next := new(big.Int).Add(s, amount.BigInt())

	diff := new(big.Int).Mul(next, next)
	diff.Sub(diff, new(big.Int).Mul(s, s))

	num := diff.Mul(diff, slope.BigInt())
	den := new(big.Int).Lsh(precision2, 1)
	cost, rem := new(big.Int).QuoRem(num, den, new(big.Int))
	if rem.Sign() > 0 {
		cost.Add(cost, big.NewInt(1))
	}
	return toInt(cost)
}
