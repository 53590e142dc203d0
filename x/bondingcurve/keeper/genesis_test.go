package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/paw-chain/amm/testutil/keeper"
	"github.com/paw-chain/amm/x/bondingcurve/keeper"
	"github.com/paw-chain/amm/x/bondingcurve/types"
)

func TestGenesis_ImportExport(t *testing.T) {
	k, lk, ctx := keepertest.BondingCurveKeeper(t)
	curve := createTestCurve(t, k, lk, ctx, math.NewInt(500))
	buyer := keepertest.TestAddr("buyer")
	fundNative(t, lk, ctx, buyer, math.NewIntWithDecimal(1, 18))
	minted, err := k.Buy(ctx, buyer, curve.Id, math.NewIntWithDecimal(1, 18))
	require.NoError(t, err)

	exported, err := k.ExportGenesis(ctx)
	require.NoError(t, err)
	require.NoError(t, exported.Validate())
	require.Len(t, exported.Curves, 1)
	require.Len(t, exported.Balances, 2)
	require.Equal(t, uint64(2), exported.NextCurveId)

	k2, _, ctx2 := keepertest.BondingCurveKeeper(t)
	require.NoError(t, k2.InitGenesis(ctx2, *exported))

	imported, err := k2.GetCurveByDenom(ctx2, "curvetoken")
	require.NoError(t, err)
	keepertest.RequireIntEqual(t, minted.AddRaw(500), imported.TotalSupply)
	// The creator paid one base unit for the 500 initial tokens
	keepertest.RequireIntEqual(t, math.NewIntWithDecimal(1, 18).AddRaw(1), imported.NativeReserve)

	balance, err := k2.BalanceOf(ctx2, curve.Id, buyer)
	require.NoError(t, err)
	keepertest.RequireIntEqual(t, minted, balance)
	require.Equal(t, uint64(2), k2.PeekNextCurveID(ctx2))
}

func TestGenesis_Validate(t *testing.T) {
	holder := keepertest.TestAddr("holder")
	curve := types.NewCurve(1, "curvetoken", math.LegacyOneDec(), math.NewInt(10), holder)

	tests := []struct {
		name   string
		mutate func(gs *types.GenesisState)
		valid  bool
	}{
		{"default", func(gs *types.GenesisState) {}, true},
		{"curve with balances", func(gs *types.GenesisState) {
			gs.Curves = []types.Curve{curve}
			gs.Balances = []types.CurveBalance{{CurveId: 1, Holder: holder.String(), Amount: math.NewInt(10)}}
			gs.NextCurveId = 2
		}, true},
		{"supply mismatch", func(gs *types.GenesisState) {
			gs.Curves = []types.Curve{curve}
			gs.Balances = []types.CurveBalance{{CurveId: 1, Holder: holder.String(), Amount: math.NewInt(9)}}
			gs.NextCurveId = 2
		}, false},
		{"duplicate denom", func(gs *types.GenesisState) {
			other := types.NewCurve(2, "curvetoken", math.LegacyOneDec(), math.ZeroInt(), holder)
			gs.Curves = []types.Curve{types.NewCurve(1, "curvetoken", math.LegacyOneDec(), math.ZeroInt(), holder), other}
			gs.NextCurveId = 3
		}, false},
		{"next id too low", func(gs *types.GenesisState) {
			gs.Curves = []types.Curve{types.NewCurve(1, "curvetoken", math.LegacyOneDec(), math.ZeroInt(), holder)}
			gs.NextCurveId = 1
		}, false},
		{"sell fee of one", func(gs *types.GenesisState) {
			gs.Params.SellFee = math.LegacyOneDec()
		}, false},
		{"zero slope", func(gs *types.GenesisState) {
			bad := types.NewCurve(1, "curvetoken", math.LegacyZeroDec(), math.ZeroInt(), holder)
			gs.Curves = []types.Curve{bad}
			gs.NextCurveId = 2
		}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gs := types.DefaultGenesis()
			tc.mutate(gs)
			err := gs.Validate()
			if tc.valid {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}

func TestInvariants_DetectCorruption(t *testing.T) {
	k, lk, ctx := keepertest.BondingCurveKeeper(t)
	curve := createTestCurve(t, k, lk, ctx, math.ZeroInt())
	buyer := keepertest.TestAddr("buyer")
	fundNative(t, lk, ctx, buyer, math.NewIntWithDecimal(1, 18))
	_, err := k.Buy(ctx, buyer, curve.Id, math.NewIntWithDecimal(1, 18))
	require.NoError(t, err)

	res, broken := keeper.AllInvariants(*k)(ctx)
	require.False(t, broken, res)

	curve, err = k.GetCurve(ctx, curve.Id)
	require.NoError(t, err)
	curve.NativeReserve = curve.NativeReserve.AddRaw(1)
	curve.TotalSupply = curve.TotalSupply.AddRaw(1)
	require.NoError(t, k.SetCurve(ctx, curve))

	_, broken = keeper.SupplyBalancesInvariant(*k)(ctx)
	require.True(t, broken)
	_, broken = keeper.ReserveSolvencyInvariant(*k)(ctx)
	require.True(t, broken)
}

func TestMsgServer(t *testing.T) {
	k, lk, ctx := keepertest.BondingCurveKeeper(t)
	ms := keeper.NewMsgServerImpl(*k)
	creator := keepertest.TestAddr("creator")

	created, err := ms.CreateCurve(ctx, &types.MsgCreateCurve{
		Creator:       creator.String(),
		Denom:         "curvetoken",
		Slope:         math.LegacyNewDecWithPrec(1, 6),
		InitialSupply: math.ZeroInt(),
	})
	require.NoError(t, err)
	require.Equal(t, uint64(1), created.CurveId)

	fundNative(t, lk, ctx, creator, math.NewIntWithDecimal(1, 18))
	bought, err := ms.Buy(ctx, &types.MsgBuy{Buyer: creator.String(), CurveId: created.CurveId, Value: math.NewIntWithDecimal(1, 18)})
	require.NoError(t, err)
	require.True(t, bought.Minted.IsPositive())

	_, err = ms.Transfer(ctx, &types.MsgTransfer{
		Sender:    creator.String(),
		Recipient: keepertest.TestAddr("friend").String(),
		CurveId:   created.CurveId,
		Amount:    math.NewInt(1),
	})
	require.NoError(t, err)

	sold, err := ms.Sell(ctx, &types.MsgSell{Seller: creator.String(), CurveId: created.CurveId, Amount: bought.Minted.SubRaw(1)})
	require.NoError(t, err)
	require.True(t, sold.Payout.IsPositive())

	_, err = ms.Buy(ctx, &types.MsgBuy{Buyer: "not-an-address", CurveId: 1, Value: math.OneInt()})
	require.ErrorIs(t, err, types.ErrInvalidAddress)

	_, err = ms.Sell(ctx, &types.MsgSell{Seller: creator.String(), CurveId: 0, Amount: math.OneInt()})
	require.ErrorIs(t, err, types.ErrCurveNotFound)
}
