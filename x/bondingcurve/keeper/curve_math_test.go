package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	keepertest "github.com/paw-chain/amm/testutil/keeper"
	"github.com/paw-chain/amm/x/bondingcurve/keeper"
)

func mustInt(t *testing.T, s string) math.Int {
	v, ok := math.NewIntFromString(s)
	require.True(t, ok, s)
	return v
}

// testSlope prices one whole token at 1e12 native base units once one whole
// token is in circulation.
func testSlope() math.LegacyDec {
	return math.LegacyNewDecWithPrec(1, 6)
}

func TestMintAmount(t *testing.T) {
	// T = isqrt(2 * 1e18 * 1e18 / 1e-6) from an empty curve
	minted, err := keeper.MintAmount(math.ZeroInt(), math.NewIntWithDecimal(1, 18), testSlope())
	require.NoError(t, err)
	keepertest.RequireIntEqual(t, mustInt(t, "1414213562373095048801"), minted)

	// The same value buys fewer tokens higher up the curve
	more, err := keeper.MintAmount(minted, math.NewIntWithDecimal(1, 18), testSlope())
	require.NoError(t, err)
	keepertest.RequireIntEqual(t, mustInt(t, "585786437626904951198"), more)

	_, err = keeper.MintAmount(math.ZeroInt(), math.OneInt(), math.LegacyZeroDec())
	require.Error(t, err)
}

func TestBurnPayout(t *testing.T) {
	supply := mustInt(t, "1414213562373095048801")

	payout, err := keeper.BurnPayout(supply, supply, testSlope())
	require.NoError(t, err)
	keepertest.RequireIntEqual(t, mustInt(t, "999999999999999999"), payout)

	zero, err := keeper.BurnPayout(supply, math.ZeroInt(), testSlope())
	require.NoError(t, err)
	require.True(t, zero.IsZero())

	_, err = keeper.BurnPayout(supply, supply.AddRaw(1), testSlope())
	require.Error(t, err)
}

func TestSpotPrice(t *testing.T) {
	price, err := keeper.SpotPrice(mustInt(t, "1414213562373095048801"), testSlope())
	require.NoError(t, err)
	keepertest.RequireIntEqual(t, mustInt(t, "1414213562373095"), price)

	price, err = keeper.SpotPrice(math.ZeroInt(), testSlope())
	require.NoError(t, err)
	require.True(t, price.IsZero())
}

func TestMintCost(t *testing.T) {
	cost, err := keeper.MintCost(math.ZeroInt(), math.NewIntWithDecimal(5, 18), testSlope())
	require.NoError(t, err)
	keepertest.RequireIntEqual(t, math.NewInt(12_500_000_000_000), cost)

	// Fractions of a base unit are charged in full
	cost, err = keeper.MintCost(math.ZeroInt(), math.NewInt(500), testSlope())
	require.NoError(t, err)
	keepertest.RequireIntEqual(t, math.OneInt(), cost)

	cost, err = keeper.MintCost(math.NewIntWithDecimal(5, 18), math.ZeroInt(), testSlope())
	require.NoError(t, err)
	require.True(t, cost.IsZero())
}

// Charging MintCost for a slice of the curve always buys at least that slice,
// and selling the slice back never releases more than was charged.
func TestMintCost_CoversCurve(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		slope := math.LegacyNewDecWithPrec(rapid.Int64Range(1, 1_000_000_000_000).Draw(rt, "slope"), 9)
		supply := math.NewIntWithDecimal(rapid.Int64Range(0, 1_000_000_000).Draw(rt, "supply"), rapid.IntRange(0, 27).Draw(rt, "supplyExp"))
		amount := math.NewIntWithDecimal(rapid.Int64Range(1, 1_000_000_000).Draw(rt, "amount"), rapid.IntRange(0, 27).Draw(rt, "amountExp"))

		cost, err := keeper.MintCost(supply, amount, slope)
		require.NoError(rt, err)

		minted, err := keeper.MintAmount(supply, cost, slope)
		require.NoError(rt, err)
		require.True(rt, minted.GTE(amount), "cost %s mints %s < %s", cost, minted, amount)

		payout, err := keeper.BurnPayout(supply.Add(amount), amount, slope)
		require.NoError(rt, err)
		require.True(rt, payout.LTE(cost), "payout %s > cost %s", payout, cost)
	})
}
