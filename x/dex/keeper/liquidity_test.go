package keeper_test

import (
	"math/big"
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	keepertest "github.com/paw-chain/amm/testutil/keeper"
	"github.com/paw-chain/amm/x/dex/keeper"
	"github.com/paw-chain/amm/x/dex/types"
)

func e18(n int64) math.Int {
	return math.NewIntWithDecimal(n, 18)
}

// wideAmount draws an amount in [lo, 1e9) scaled by up to 10^27, so reserves
// and trades reach well past the int64 range.
func wideAmount(rt *rapid.T, label string, lo int64) math.Int {
	return math.NewIntWithDecimal(rapid.Int64Range(lo, 1_000_000_000).Draw(rt, label), rapid.IntRange(0, 27).Draw(rt, label+"Exp"))
}

// TestAddLiquidity_Bootstrap tests the first deposit into an empty pool
func TestAddLiquidity_Bootstrap(t *testing.T) {
	k, lk, ctx := keepertest.DexKeeper(t)
	poolID := keepertest.CreateTestPool(t, k, lk, ctx, "tokena", "tokenb")
	provider := keepertest.TestAddr("provider")

	amountA := e18(1200)
	amountB := math.NewIntWithDecimal(9, 17)
	keepertest.FundAndApprove(t, k, lk, ctx, poolID, provider, amountA, amountB)

	shares, err := k.AddLiquidity(ctx, provider, poolID, amountA, amountB)
	require.NoError(t, err)
	require.True(t, shares.IsPositive())

	// floor(sqrt(1200e18 * 0.9e18))
	expected, ok := math.NewIntFromString("32863353450309966807")
	require.True(t, ok)
	keepertest.RequireIntEqual(t, expected, shares)

	reserveA, reserveB, err := k.GetReserves(ctx, poolID)
	require.NoError(t, err)
	keepertest.RequireIntEqual(t, amountA, reserveA)
	keepertest.RequireIntEqual(t, amountB, reserveB)

	owned, err := k.GetShares(ctx, poolID, provider)
	require.NoError(t, err)
	keepertest.RequireIntEqual(t, shares, owned)

	// Assets moved into the pool account
	pool, err := k.GetPool(ctx, poolID)
	require.NoError(t, err)
	keepertest.RequireIntEqual(t, amountA, lk.GetBalance(ctx, pool.GetAddress(), "tokena"))
	keepertest.RequireIntEqual(t, math.ZeroInt(), lk.GetBalance(ctx, provider, "tokena"))
}

func TestAddLiquidity_BootstrapAmountA(t *testing.T) {
	k, lk, ctx := keepertest.DexKeeper(t)
	params := types.DefaultParams()
	params.BootstrapMode = types.BootstrapAmountA
	require.NoError(t, k.SetParams(ctx, params))

	poolID := keepertest.CreateTestPool(t, k, lk, ctx, "tokena", "tokenb")
	provider := keepertest.TestAddr("provider")
	keepertest.FundAndApprove(t, k, lk, ctx, poolID, provider, e18(1200), math.NewIntWithDecimal(9, 17))

	shares, err := k.AddLiquidity(ctx, provider, poolID, e18(1200), math.NewIntWithDecimal(9, 17))
	require.NoError(t, err)
	keepertest.RequireIntEqual(t, e18(1200), shares)
}

// TestAddLiquidity_Proportional tests that a second deposit at the pool
// ratio mints shares proportional to its contribution
func TestAddLiquidity_Proportional(t *testing.T) {
	k, lk, ctx := keepertest.DexKeeper(t)
	poolID, seed := keepertest.CreatePoolWithLiquidity(t, k, lk, ctx, "tokena", "tokenb", e18(1200), math.NewIntWithDecimal(9, 17))

	seedShares, err := k.GetShares(ctx, poolID, seed)
	require.NoError(t, err)

	// 10% of the reserves
	provider := keepertest.TestAddr("second-provider")
	amountA := e18(120)
	amountB := math.NewIntWithDecimal(9, 16)
	keepertest.FundAndApprove(t, k, lk, ctx, poolID, provider, amountA, amountB)

	shares, err := k.AddLiquidity(ctx, provider, poolID, amountA, amountB)
	require.NoError(t, err)
	keepertest.RequireIntEqual(t, seedShares.QuoRaw(10), shares)

	totalShares, err := k.GetTotalShares(ctx, poolID)
	require.NoError(t, err)
	keepertest.RequireIntEqual(t, seedShares.Add(shares), totalShares)
}

// TestAddLiquidity_SkewedRejected tests the price manipulation guard leaves
// no trace of a rejected deposit
func TestAddLiquidity_SkewedRejected(t *testing.T) {
	k, lk, ctx := keepertest.DexKeeper(t)
	poolID, _ := keepertest.CreatePoolWithLiquidity(t, k, lk, ctx, "tokena", "tokenb", e18(1200), math.NewIntWithDecimal(9, 17))

	before, err := k.GetPool(ctx, poolID)
	require.NoError(t, err)

	provider := keepertest.TestAddr("skewed-provider")
	amountA := e18(120)
	amountB := math.NewIntWithDecimal(18, 16) // twice the ratio
	keepertest.FundAndApprove(t, k, lk, ctx, poolID, provider, amountA, amountB)

	_, err = k.AddLiquidity(ctx, provider, poolID, amountA, amountB)
	require.ErrorIs(t, err, types.ErrPriceManipulation)

	after, err := k.GetPool(ctx, poolID)
	require.NoError(t, err)
	keepertest.RequireIntEqual(t, before.ReserveA, after.ReserveA)
	keepertest.RequireIntEqual(t, before.ReserveB, after.ReserveB)
	keepertest.RequireIntEqual(t, before.TotalShares, after.TotalShares)

	shares, err := k.GetShares(ctx, poolID, provider)
	require.NoError(t, err)
	require.True(t, shares.IsZero())
	keepertest.RequireIntEqual(t, amountA, lk.GetBalance(ctx, provider, "tokena"))
	keepertest.RequireIntEqual(t, amountB, lk.GetBalance(ctx, provider, "tokenb"))
}

// TestAddLiquidity_WithinTolerance tests a deposit off the ratio by less
// than the tolerance is accepted
func TestAddLiquidity_WithinTolerance(t *testing.T) {
	k, lk, ctx := keepertest.DexKeeper(t)
	poolID, _ := keepertest.CreatePoolWithLiquidity(t, k, lk, ctx, "tokena", "tokenb", e18(1000), e18(1000))

	provider := keepertest.TestAddr("provider")
	amountA := e18(10)
	// 0.05% above the expected amount, tolerance is 0.1%
	amountB := e18(10).Add(math.NewIntWithDecimal(5, 15))
	keepertest.FundAndApprove(t, k, lk, ctx, poolID, provider, amountA, amountB)

	shares, err := k.AddLiquidity(ctx, provider, poolID, amountA, amountB)
	require.NoError(t, err)
	// The A leg is the smaller one
	keepertest.RequireIntEqual(t, e18(10), shares)
}

func TestAddLiquidity_InvalidInput(t *testing.T) {
	k, lk, ctx := keepertest.DexKeeper(t)
	poolID := keepertest.CreateTestPool(t, k, lk, ctx, "tokena", "tokenb")
	provider := keepertest.TestAddr("provider")

	_, err := k.AddLiquidity(ctx, provider, poolID, math.ZeroInt(), e18(1))
	require.ErrorIs(t, err, types.ErrInvalidAmount)

	_, err = k.AddLiquidity(ctx, provider, poolID, e18(1), math.ZeroInt())
	require.ErrorIs(t, err, types.ErrInvalidAmount)

	_, err = k.AddLiquidity(ctx, provider, poolID, e18(1), math.NewInt(-1))
	require.ErrorIs(t, err, types.ErrInvalidAmount)

	_, err = k.AddLiquidity(ctx, nil, poolID, e18(1), e18(1))
	require.ErrorIs(t, err, types.ErrInvalidAddress)

	_, err = k.AddLiquidity(ctx, provider, 42, e18(1), e18(1))
	require.ErrorIs(t, err, types.ErrPoolNotFound)
}

// TestAddLiquidity_NoAllowance tests that a failed second pull rolls back
// the first one
func TestAddLiquidity_NoAllowance(t *testing.T) {
	k, lk, ctx := keepertest.DexKeeper(t)
	poolID := keepertest.CreateTestPool(t, k, lk, ctx, "tokena", "tokenb")
	pool, err := k.GetPool(ctx, poolID)
	require.NoError(t, err)

	provider := keepertest.TestAddr("provider")
	keepertest.FundAccount(t, lk, ctx, provider, "tokena", e18(10))
	keepertest.FundAccount(t, lk, ctx, provider, "tokenb", e18(10))
	require.NoError(t, lk.Approve(ctx, provider, pool.GetAddress(), "tokena", e18(10)))

	_, err = k.AddLiquidity(ctx, provider, poolID, e18(10), e18(10))
	require.ErrorIs(t, err, types.ErrInsufficientBalance)

	keepertest.RequireIntEqual(t, e18(10), lk.GetBalance(ctx, provider, "tokena"))
	keepertest.RequireIntEqual(t, math.ZeroInt(), lk.GetBalance(ctx, pool.GetAddress(), "tokena"))

	pool, err = k.GetPool(ctx, poolID)
	require.NoError(t, err)
	require.True(t, pool.TotalShares.IsZero())
}

// TestRemoveLiquidity_Full tests that withdrawing every share zeroes the pool
func TestRemoveLiquidity_Full(t *testing.T) {
	k, lk, ctx := keepertest.DexKeeper(t)
	amountA := e18(1200)
	amountB := math.NewIntWithDecimal(9, 17)
	poolID, seed := keepertest.CreatePoolWithLiquidity(t, k, lk, ctx, "tokena", "tokenb", amountA, amountB)

	shares, err := k.GetShares(ctx, poolID, seed)
	require.NoError(t, err)

	outA, outB, err := k.RemoveLiquidity(ctx, seed, poolID, shares)
	require.NoError(t, err)
	keepertest.RequireIntEqual(t, amountA, outA)
	keepertest.RequireIntEqual(t, amountB, outB)

	pool, err := k.GetPool(ctx, poolID)
	require.NoError(t, err)
	require.True(t, pool.ReserveA.IsZero())
	require.True(t, pool.ReserveB.IsZero())
	require.True(t, pool.TotalShares.IsZero())

	keepertest.RequireIntEqual(t, amountA, lk.GetBalance(ctx, seed, "tokena"))
	keepertest.RequireIntEqual(t, amountB, lk.GetBalance(ctx, seed, "tokenb"))

	remaining, err := k.GetShares(ctx, poolID, seed)
	require.NoError(t, err)
	require.True(t, remaining.IsZero())
}

func TestRemoveLiquidity_Partial(t *testing.T) {
	k, lk, ctx := keepertest.DexKeeper(t)
	poolID, seed := keepertest.CreatePoolWithLiquidity(t, k, lk, ctx, "tokena", "tokenb", e18(1000), e18(4000))

	// sqrt(1000e18 * 4000e18) = 2000e18 shares, burn a quarter
	outA, outB, err := k.RemoveLiquidity(ctx, seed, poolID, e18(500))
	require.NoError(t, err)
	keepertest.RequireIntEqual(t, e18(250), outA)
	keepertest.RequireIntEqual(t, e18(1000), outB)

	reserveA, reserveB, err := k.GetReserves(ctx, poolID)
	require.NoError(t, err)
	keepertest.RequireIntEqual(t, e18(750), reserveA)
	keepertest.RequireIntEqual(t, e18(3000), reserveB)
}

func TestRemoveLiquidity_Errors(t *testing.T) {
	k, lk, ctx := keepertest.DexKeeper(t)
	emptyPool := keepertest.CreateTestPool(t, k, lk, ctx, "tokenc", "tokend")
	poolID, seed := keepertest.CreatePoolWithLiquidity(t, k, lk, ctx, "tokena", "tokenb", e18(1000), e18(1000))

	_, _, err := k.RemoveLiquidity(ctx, seed, poolID, math.ZeroInt())
	require.ErrorIs(t, err, types.ErrInvalidAmount)

	_, _, err = k.RemoveLiquidity(ctx, seed, poolID, e18(1001))
	require.ErrorIs(t, err, types.ErrInsufficientShares)

	_, _, err = k.RemoveLiquidity(ctx, keepertest.TestAddr("stranger"), poolID, math.OneInt())
	require.ErrorIs(t, err, types.ErrInsufficientShares)

	_, _, err = k.RemoveLiquidity(ctx, seed, emptyPool, math.OneInt())
	require.ErrorIs(t, err, types.ErrInvalidPoolState)
}

// TestAddLiquidity_ProportionalProperty checks that a deposit at the pool
// ratio never mints more than its share of the pool
func TestAddLiquidity_ProportionalProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		k, lk, ctx := keepertest.DexKeeper(t)

		reserveA := wideAmount(rt, "reserveA", 1_000_000)
		reserveB := wideAmount(rt, "reserveB", 1_000_000)
		poolID, _ := keepertest.CreatePoolWithLiquidity(t, k, lk, ctx, "tokena", "tokenb", reserveA, reserveB)

		before, err := k.GetPool(ctx, poolID)
		require.NoError(rt, err)

		amountA := wideAmount(rt, "amountA", 1_000)
		amountB, err := keeper.SafeMulDiv(amountA, reserveB, reserveA)
		require.NoError(rt, err)
		if amountB.IsZero() {
			rt.Skip("deposit rounds to zero")
		}

		provider := keepertest.TestAddr("property-provider")
		keepertest.FundAndApprove(t, k, lk, ctx, poolID, provider, amountA, amountB)

		shares, err := k.AddLiquidity(ctx, provider, poolID, amountA, amountB)
		if err != nil {
			require.ErrorIs(rt, err, types.ErrInvalidAmount)
			return
		}

		// shares / totalShares <= amountA / reserveA, compared cross-multiplied
		lhs := shares.Mul(before.ReserveA)
		rhs := amountA.Mul(before.TotalShares)
		require.True(rt, lhs.LTE(rhs), "minted %s shares for %s of %s", shares, amountA, before.ReserveA)

		// and loses at most the shares worth one unit of token B to rounding
		exact, err := keeper.SafeMulDiv(before.TotalShares, amountA, before.ReserveA)
		require.NoError(rt, err)
		slack := before.TotalShares.Quo(before.ReserveB).AddRaw(1)
		require.True(rt, keeper.AbsDiff(exact, shares).LTE(slack), "exact %s, minted %s", exact, shares)
	})
}

// pow2 returns 2^n base units.
func pow2(n uint) math.Int {
	return math.NewIntFromBigInt(new(big.Int).Lsh(big.NewInt(1), n))
}

func TestAddLiquidity_Overflow(t *testing.T) {
	k, lk, ctx := keepertest.DexKeeper(t)
	provider := keepertest.TestAddr("whale")

	// sqrt(2^128 * 2^128) needs a 256-bit product
	emptyPool := keepertest.CreateTestPool(t, k, lk, ctx, "tokenc", "tokend")
	keepertest.FundAndApprove(t, k, lk, ctx, emptyPool, provider, pow2(128), pow2(128))
	_, err := k.AddLiquidity(ctx, provider, emptyPool, pow2(128), pow2(128))
	require.ErrorIs(t, err, types.ErrOverflow)

	// 2^130 * reserveB(2^127) does not fit in 256 bits
	poolID, _ := keepertest.CreatePoolWithLiquidity(t, k, lk, ctx, "tokena", "tokenb", pow2(127), pow2(127))
	keepertest.FundAndApprove(t, k, lk, ctx, poolID, provider, pow2(130), pow2(130))
	_, err = k.AddLiquidity(ctx, provider, poolID, pow2(130), pow2(130))
	require.ErrorIs(t, err, types.ErrOverflow)

	pool, err := k.GetPool(ctx, poolID)
	require.NoError(t, err)
	keepertest.RequireIntEqual(t, pow2(127), pool.ReserveA)
	keepertest.RequireIntEqual(t, pow2(127), pool.TotalShares)
	keepertest.RequireIntEqual(t, pow2(130), lk.GetBalance(ctx, provider, "tokena"))
}
