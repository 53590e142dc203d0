package keeper_test

import (
	"math/big"
	"testing"

	"cosmossdk.io/math"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	keepertest "github.com/paw-chain/amm/testutil/keeper"
	"github.com/paw-chain/amm/x/dex/keeper"
	"github.com/paw-chain/amm/x/dex/types"
)

// TestSwap_Reference reproduces the reference trade against (1200e18, 0.9e18)
func TestSwap_Reference(t *testing.T) {
	k, lk, ctx := keepertest.DexKeeper(t)
	poolID, _ := keepertest.CreatePoolWithLiquidity(t, k, lk, ctx, "tokena", "tokenb", e18(1200), math.NewIntWithDecimal(9, 17))

	trader := keepertest.TestAddr("trader")
	keepertest.FundAndApprove(t, k, lk, ctx, poolID, trader, e18(50), math.ZeroInt())

	quote, err := k.SimulateSwap(ctx, poolID, "tokena", e18(50))
	require.NoError(t, err)

	amountOut, err := k.Swap(ctx, trader, poolID, "tokena", e18(50), math.ZeroInt())
	require.NoError(t, err)
	keepertest.RequireIntEqual(t, math.NewInt(35896307556906828), amountOut)
	keepertest.RequireIntEqual(t, quote, amountOut)

	reserveA, reserveB, err := k.GetReserves(ctx, poolID)
	require.NoError(t, err)
	keepertest.RequireIntEqual(t, e18(1250), reserveA)
	keepertest.RequireIntEqual(t, math.NewInt(864103692443093172), reserveB)

	keepertest.RequireIntEqual(t, math.ZeroInt(), lk.GetBalance(ctx, trader, "tokena"))
	keepertest.RequireIntEqual(t, amountOut, lk.GetBalance(ctx, trader, "tokenb"))
}

func TestSwap_ReverseDirection(t *testing.T) {
	k, lk, ctx := keepertest.DexKeeper(t)
	poolID, _ := keepertest.CreatePoolWithLiquidity(t, k, lk, ctx, "tokena", "tokenb", e18(1000), e18(2000))

	trader := keepertest.TestAddr("trader")
	keepertest.FundAndApprove(t, k, lk, ctx, poolID, trader, math.ZeroInt(), e18(100))

	amountOut, err := k.Swap(ctx, trader, poolID, "tokenb", e18(100), math.ZeroInt())
	require.NoError(t, err)

	expected, err := keeper.CalculateSwapOutput(e18(100), e18(2000), e18(1000), types.DefaultParams().SwapFee)
	require.NoError(t, err)
	keepertest.RequireIntEqual(t, expected, amountOut)

	reserveA, reserveB, err := k.GetReserves(ctx, poolID)
	require.NoError(t, err)
	keepertest.RequireIntEqual(t, e18(1000).Sub(amountOut), reserveA)
	keepertest.RequireIntEqual(t, e18(2100), reserveB)
}

func TestSwap_Errors(t *testing.T) {
	k, lk, ctx := keepertest.DexKeeper(t)
	emptyPool := keepertest.CreateTestPool(t, k, lk, ctx, "tokenc", "tokend")
	poolID, _ := keepertest.CreatePoolWithLiquidity(t, k, lk, ctx, "tokena", "tokenb", e18(1000), e18(1000))

	trader := keepertest.TestAddr("trader")
	keepertest.FundAndApprove(t, k, lk, ctx, poolID, trader, e18(10), e18(10))

	tests := []struct {
		name    string
		poolID  uint64
		tokenIn string
		amount  math.Int
		minOut  math.Int
		wantErr error
	}{
		{"zero amount", poolID, "tokena", math.ZeroInt(), math.ZeroInt(), types.ErrInvalidAmount},
		{"token not in pool", poolID, "tokenc", e18(1), math.ZeroInt(), types.ErrInvalidTokenPair},
		{"unknown pool", 77, "tokena", e18(1), math.ZeroInt(), types.ErrPoolNotFound},
		{"empty pool", emptyPool, "tokenc", e18(1), math.ZeroInt(), types.ErrInsufficientLiquidity},
		{"output rounds to zero", poolID, "tokena", math.OneInt(), math.ZeroInt(), types.ErrInsufficientLiquidity},
		{"slippage", poolID, "tokena", e18(1), e18(1), types.ErrSlippageTooHigh},
		{"no allowance left", poolID, "tokena", e18(11), math.ZeroInt(), types.ErrInsufficientBalance},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			before, err := k.GetPool(ctx, poolID)
			require.NoError(t, err)

			_, err = k.Swap(ctx, trader, tc.poolID, tc.tokenIn, tc.amount, tc.minOut)
			require.ErrorIs(t, err, tc.wantErr)

			after, err := k.GetPool(ctx, poolID)
			require.NoError(t, err)
			keepertest.RequireIntEqual(t, before.ReserveA, after.ReserveA)
			keepertest.RequireIntEqual(t, before.ReserveB, after.ReserveB)
		})
	}
}

func TestCalculateSwapOutput(t *testing.T) {
	fee := math.LegacyNewDecWithPrec(3, 3)

	out, err := keeper.CalculateSwapOutput(math.NewInt(1000), math.NewInt(1_000_000), math.NewInt(1_000_000), fee)
	require.NoError(t, err)
	// eff = 997, out = floor(1e6 * 997 / 1000997) = 996
	keepertest.RequireIntEqual(t, math.NewInt(996), out)

	_, err = keeper.CalculateSwapOutput(math.NewInt(1000), math.ZeroInt(), math.NewInt(1_000_000), fee)
	require.ErrorIs(t, err, types.ErrInsufficientLiquidity)

	// A fee that consumes the whole input leaves nothing to trade
	_, err = keeper.CalculateSwapOutput(math.OneInt(), math.NewInt(1_000_000), math.NewInt(1_000_000), fee)
	require.ErrorIs(t, err, types.ErrInsufficientLiquidity)

	// With a zero fee, a tiny reserveOut floors out to at most reserveOut - 1
	out, err = keeper.CalculateSwapOutput(e18(1_000_000), math.OneInt(), math.NewInt(2), math.LegacyZeroDec())
	require.NoError(t, err)
	keepertest.RequireIntEqual(t, math.OneInt(), out)
}

func TestSwap_Overflow(t *testing.T) {
	fee := math.LegacyNewDecWithPrec(3, 3)

	// reserveOut * eff reaches 2^256
	_, err := keeper.CalculateSwapOutput(pow2(130), pow2(127), pow2(127), fee)
	require.ErrorIs(t, err, types.ErrOverflow)

	k, lk, ctx := keepertest.DexKeeper(t)
	poolID, _ := keepertest.CreatePoolWithLiquidity(t, k, lk, ctx, "tokena", "tokenb", pow2(127), pow2(127))
	trader := keepertest.TestAddr("whale")
	keepertest.FundAndApprove(t, k, lk, ctx, poolID, trader, pow2(130), pow2(130))

	_, err = k.Swap(ctx, trader, poolID, "tokena", pow2(130), math.ZeroInt())
	require.ErrorIs(t, err, types.ErrOverflow)

	pool, err := k.GetPool(ctx, poolID)
	require.NoError(t, err)
	keepertest.RequireIntEqual(t, pow2(127), pool.ReserveA)
	keepertest.RequireIntEqual(t, pow2(127), pool.ReserveB)
	keepertest.RequireIntEqual(t, pow2(130), lk.GetBalance(ctx, trader, "tokena"))

	// 18-decimal amounts far past int64 still trade
	out, err := keeper.CalculateSwapOutput(math.NewIntWithDecimal(1, 30), math.NewIntWithDecimal(1, 36), math.NewIntWithDecimal(2, 36), fee)
	require.NoError(t, err)
	require.True(t, out.GT(math.NewIntWithDecimal(1, 30)))
}

// A zero amount is counted under fixed labels, whatever token it names.
func TestSwap_InvalidAmountMetricLabels(t *testing.T) {
	k, _, ctx := keepertest.DexKeeper(t)
	trader := keepertest.TestAddr("trader")
	swaps := keeper.NewDEXMetrics().SwapsTotal

	before := promtestutil.ToFloat64(swaps.WithLabelValues("invalid", "invalid", "invalid", "failed"))
	series := promtestutil.CollectAndCount(swaps)
	for _, token := range []string{"junk-1", "junk-2", "junk-3"} {
		_, err := k.Swap(ctx, trader, 42, token, math.ZeroInt(), math.ZeroInt())
		require.ErrorIs(t, err, types.ErrInvalidAmount)
	}
	require.Equal(t, before+3, promtestutil.ToFloat64(swaps.WithLabelValues("invalid", "invalid", "invalid", "failed")))
	require.Equal(t, series, promtestutil.CollectAndCount(swaps))
}

func TestGetSpotPrice(t *testing.T) {
	k, lk, ctx := keepertest.DexKeeper(t)
	poolID, _ := keepertest.CreatePoolWithLiquidity(t, k, lk, ctx, "tokena", "tokenb", e18(1000), e18(2000))

	price, err := k.GetSpotPrice(ctx, poolID, "tokena")
	require.NoError(t, err)
	require.True(t, price.Equal(math.LegacyNewDec(2)), "got %s", price)

	price, err = k.GetSpotPrice(ctx, poolID, "tokenb")
	require.NoError(t, err)
	require.True(t, price.Equal(math.LegacyNewDecWithPrec(5, 1)), "got %s", price)
}

// TestSwap_ConstantProductGrows checks reserveA * reserveB strictly grows on
// every successful swap
func TestSwap_ConstantProductGrows(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		k, lk, ctx := keepertest.DexKeeper(t)

		reserveA := wideAmount(rt, "reserveA", 1_000)
		reserveB := wideAmount(rt, "reserveB", 1_000)
		poolID, _ := keepertest.CreatePoolWithLiquidity(t, k, lk, ctx, "tokena", "tokenb", reserveA, reserveB)

		trader := keepertest.TestAddr("property-trader")
		swaps := rapid.IntRange(1, 5).Draw(rt, "swaps")
		for i := 0; i < swaps; i++ {
			tokenIn := rapid.SampledFrom([]string{"tokena", "tokenb"}).Draw(rt, "tokenIn")
			amountIn := wideAmount(rt, "amountIn", 1)

			pool, err := k.GetPool(ctx, poolID)
			require.NoError(rt, err)
			oldK := new(big.Int).Mul(pool.ReserveA.BigInt(), pool.ReserveB.BigInt())

			keepertest.FundAccount(t, lk, ctx, trader, tokenIn, amountIn)
			require.NoError(rt, lk.Approve(ctx, trader, pool.GetAddress(), tokenIn, amountIn))

			_, err = k.Swap(ctx, trader, poolID, tokenIn, amountIn, math.ZeroInt())
			if err != nil {
				require.ErrorIs(rt, err, types.ErrInsufficientLiquidity)
				continue
			}

			pool, err = k.GetPool(ctx, poolID)
			require.NoError(rt, err)
			newK := new(big.Int).Mul(pool.ReserveA.BigInt(), pool.ReserveB.BigInt())
			require.Equal(rt, 1, newK.Cmp(oldK), "k did not grow: %s -> %s", oldK, newK)
			require.True(rt, pool.ReserveA.IsPositive() && pool.ReserveB.IsPositive())
		}

		res, broken := keeper.AllInvariants(*k)(ctx)
		require.False(rt, broken, res)
	})
}
