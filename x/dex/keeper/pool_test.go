package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/paw-chain/amm/testutil/keeper"
	"github.com/paw-chain/amm/x/dex/types"
)

func creationFee() math.Int {
	return math.NewIntWithDecimal(1, 16)
}

// TestCreatePair_Valid tests successful pair creation and fee collection
func TestCreatePair_Valid(t *testing.T) {
	k, lk, ctx := keepertest.DexKeeper(t)
	creator := keepertest.TestAddr("creator")
	keepertest.FundAccount(t, lk, ctx, creator, keepertest.NativeDenom, creationFee())

	pool, err := k.CreatePair(ctx, creator, "tokenb", "tokena", creationFee())
	require.NoError(t, err)
	require.Equal(t, uint64(1), pool.Id)

	// Tokens are stored in canonical order
	require.Equal(t, "tokena", pool.TokenA)
	require.Equal(t, "tokenb", pool.TokenB)
	require.Equal(t, types.PoolAddress(1).String(), pool.Address)
	require.True(t, pool.ReserveA.IsZero())
	require.True(t, pool.TotalShares.IsZero())

	// Fee moved from the creator to the module account and into the fee pool
	keepertest.RequireIntEqual(t, math.ZeroInt(), lk.GetBalance(ctx, creator, keepertest.NativeDenom))
	keepertest.RequireIntEqual(t, creationFee(), lk.GetBalance(ctx, k.GetModuleAddress(), keepertest.NativeDenom))
	fees, err := k.GetFeePool(ctx)
	require.NoError(t, err)
	keepertest.RequireIntEqual(t, creationFee(), fees)

	require.Equal(t, uint64(1), k.GetTotalPoolsCount(ctx))
	require.Equal(t, uint64(2), k.PeekNextPoolID(ctx))

	var found bool
	for _, ev := range ctx.EventManager().Events() {
		if ev.Type != types.EventTypePairCreated {
			continue
		}
		found = true
		attrs := make(map[string]string)
		for _, attr := range ev.Attributes {
			attrs[attr.Key] = attr.Value
		}
		require.Equal(t, "1", attrs[types.AttributeKeyPoolID])
		require.Equal(t, pool.Address, attrs[types.AttributeKeyPoolAddress])
		require.Equal(t, "tokena", attrs[types.AttributeKeyTokenA])
		require.Equal(t, "tokenb", attrs[types.AttributeKeyTokenB])
	}
	require.True(t, found, "pair_created event not emitted")
}

// TestCreatePair_DuplicateEitherOrder tests the registry rejects a pair
// regardless of argument order
func TestCreatePair_DuplicateEitherOrder(t *testing.T) {
	k, lk, ctx := keepertest.DexKeeper(t)
	keepertest.CreateTestPool(t, k, lk, ctx, "tokena", "tokenb")

	creator := keepertest.TestAddr("second-creator")
	keepertest.FundAccount(t, lk, ctx, creator, keepertest.NativeDenom, creationFee().MulRaw(2))

	_, err := k.CreatePair(ctx, creator, "tokena", "tokenb", creationFee())
	require.ErrorIs(t, err, types.ErrDuplicatePair)

	_, err = k.CreatePair(ctx, creator, "tokenb", "tokena", creationFee())
	require.ErrorIs(t, err, types.ErrDuplicatePair)

	// No fee was taken for the rejected attempts
	keepertest.RequireIntEqual(t, creationFee().MulRaw(2), lk.GetBalance(ctx, creator, keepertest.NativeDenom))
	require.Equal(t, uint64(1), k.GetTotalPoolsCount(ctx))
}

func TestCreatePair_InvalidInput(t *testing.T) {
	creator := keepertest.TestAddr("creator")

	tests := []struct {
		name    string
		tokenA  string
		tokenB  string
		fee     math.Int
		wantErr error
	}{
		{"identical tokens", "tokena", "tokena", creationFee(), types.ErrInvalidTokenPair},
		{"empty token", "", "tokenb", creationFee(), types.ErrInvalidTokenPair},
		{"invalid denom", "tokena", "1bad", creationFee(), types.ErrInvalidTokenPair},
		{"fee too low", "tokena", "tokenb", creationFee().SubRaw(1), types.ErrInvalidFee},
		{"fee too high", "tokena", "tokenb", creationFee().AddRaw(1), types.ErrInvalidFee},
		{"nil fee", "tokena", "tokenb", math.Int{}, types.ErrInvalidFee},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			k, lk, ctx := keepertest.DexKeeper(t)
			keepertest.FundAccount(t, lk, ctx, creator, keepertest.NativeDenom, creationFee().MulRaw(2))

			_, err := k.CreatePair(ctx, creator, tc.tokenA, tc.tokenB, tc.fee)
			require.ErrorIs(t, err, tc.wantErr)
			require.Equal(t, uint64(0), k.GetTotalPoolsCount(ctx))
		})
	}
}

// TestCreatePair_UnpaidFee tests that a creator without funds leaves no pool behind
func TestCreatePair_UnpaidFee(t *testing.T) {
	k, _, ctx := keepertest.DexKeeper(t)
	creator := keepertest.TestAddr("broke-creator")

	_, err := k.CreatePair(ctx, creator, "tokena", "tokenb", creationFee())
	require.ErrorIs(t, err, types.ErrInsufficientBalance)

	require.False(t, k.HasPair(ctx, "tokena", "tokenb"))
	require.Equal(t, uint64(1), k.PeekNextPoolID(ctx))
	fees, err := k.GetFeePool(ctx)
	require.NoError(t, err)
	require.True(t, fees.IsZero())
}

func TestCreatePair_EmptyCreator(t *testing.T) {
	k, _, ctx := keepertest.DexKeeper(t)
	_, err := k.CreatePair(ctx, nil, "tokena", "tokenb", creationFee())
	require.ErrorIs(t, err, types.ErrInvalidAddress)
}

func TestGetPoolByTokens(t *testing.T) {
	k, lk, ctx := keepertest.DexKeeper(t)
	first := keepertest.CreateTestPool(t, k, lk, ctx, "tokena", "tokenb")
	second := keepertest.CreateTestPool(t, k, lk, ctx, "tokenb", "tokenc")
	require.Equal(t, first+1, second)

	pool, err := k.GetPoolByTokens(ctx, "tokenb", "tokena")
	require.NoError(t, err)
	require.Equal(t, first, pool.Id)

	pool, err = k.GetPoolByTokens(ctx, "tokenc", "tokenb")
	require.NoError(t, err)
	require.Equal(t, second, pool.Id)

	_, err = k.GetPoolByTokens(ctx, "tokena", "tokenc")
	require.ErrorIs(t, err, types.ErrPoolNotFound)

	_, err = k.GetPool(ctx, 99)
	require.ErrorIs(t, err, types.ErrPoolNotFound)

	pools, err := k.GetAllPools(ctx)
	require.NoError(t, err)
	require.Len(t, pools, 2)
}

func TestWithdrawFees(t *testing.T) {
	k, lk, ctx := keepertest.DexKeeper(t)
	keepertest.CreateTestPool(t, k, lk, ctx, "tokena", "tokenb")
	keepertest.CreateTestPool(t, k, lk, ctx, "tokena", "tokenc")

	// Only the owner may withdraw
	_, err := k.WithdrawFees(ctx, keepertest.TestAddr("intruder"))
	require.ErrorIs(t, err, types.ErrUnauthorized)

	withdrawn, err := k.WithdrawFees(ctx, keepertest.DexOwner)
	require.NoError(t, err)
	keepertest.RequireIntEqual(t, creationFee().MulRaw(2), withdrawn)
	keepertest.RequireIntEqual(t, withdrawn, lk.GetBalance(ctx, keepertest.DexOwner, keepertest.NativeDenom))

	fees, err := k.GetFeePool(ctx)
	require.NoError(t, err)
	require.True(t, fees.IsZero())

	// A second withdrawal finds an empty pool
	withdrawn, err = k.WithdrawFees(ctx, keepertest.DexOwner)
	require.NoError(t, err)
	require.True(t, withdrawn.IsZero())
}
