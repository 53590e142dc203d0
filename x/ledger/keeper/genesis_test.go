package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	keepertest "github.com/paw-chain/amm/testutil/keeper"
	"github.com/paw-chain/amm/x/ledger/keeper"
	"github.com/paw-chain/amm/x/ledger/types"
)

func TestGenesis_ImportExport(t *testing.T) {
	k, ctx := keepertest.LedgerKeeper(t)
	alice := keepertest.TestAddr("alice")
	bob := keepertest.TestAddr("bob")

	genState := types.GenesisState{
		Params: types.Params{NativeDenom: "aother"},
		Balances: []types.Balance{
			{Address: alice.String(), Denom: "tokena", Amount: math.NewInt(10)},
			{Address: bob.String(), Denom: "tokena", Amount: math.NewInt(5)},
			{Address: bob.String(), Denom: "tokenb", Amount: math.NewInt(7)},
		},
	}
	require.NoError(t, k.InitGenesis(ctx, genState))

	keepertest.RequireIntEqual(t, math.NewInt(15), k.GetSupply(ctx, "tokena"))
	keepertest.RequireIntEqual(t, math.NewInt(7), k.GetBalance(ctx, bob, "tokenb"))

	params, err := k.GetParams(ctx)
	require.NoError(t, err)
	require.Equal(t, "aother", params.NativeDenom)

	exported, err := k.ExportGenesis(ctx)
	require.NoError(t, err)
	require.Equal(t, genState.Params, exported.Params)
	require.Len(t, exported.Balances, len(genState.Balances))
	for _, want := range genState.Balances {
		found := false
		for _, got := range exported.Balances {
			if got.Address == want.Address && got.Denom == want.Denom {
				keepertest.RequireIntEqual(t, want.Amount, got.Amount)
				found = true
			}
		}
		require.True(t, found, "missing %s/%s", want.Address, want.Denom)
	}
}

func TestGenesis_Validate(t *testing.T) {
	alice := keepertest.TestAddr("alice").String()

	tests := []struct {
		name    string
		genesis types.GenesisState
		valid   bool
	}{
		{"default", *types.DefaultGenesis(), true},
		{"missing params", types.GenesisState{}, false},
		{"bad native denom", types.GenesisState{Params: types.Params{NativeDenom: "1x"}}, false},
		{"bad address", types.GenesisState{Params: types.DefaultParams(), Balances: []types.Balance{{Address: "nope", Denom: "tokena", Amount: math.OneInt()}}}, false},
		{"bad denom", types.GenesisState{Params: types.DefaultParams(), Balances: []types.Balance{{Address: alice, Denom: "x", Amount: math.OneInt()}}}, false},
		{"negative", types.GenesisState{Params: types.DefaultParams(), Balances: []types.Balance{{Address: alice, Denom: "tokena", Amount: math.NewInt(-1)}}}, false},
		{"duplicate", types.GenesisState{Params: types.DefaultParams(), Balances: []types.Balance{
			{Address: alice, Denom: "tokena", Amount: math.OneInt()},
			{Address: alice, Denom: "tokena", Amount: math.OneInt()},
		}}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.genesis.Validate()
			if tc.valid {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, types.ErrInvalidGenesis)
			}
		})
	}
}

// A genesis with no balances still records its params.
func TestInitGenesis_WritesParams(t *testing.T) {
	k, ctx := keepertest.LedgerKeeper(t)
	genState := types.DefaultGenesis()
	genState.Params.NativeDenom = "aother"
	require.NoError(t, k.InitGenesis(ctx, *genState))

	params, err := k.GetParams(ctx)
	require.NoError(t, err)
	require.Equal(t, "aother", params.NativeDenom)

	require.Error(t, k.SetParams(ctx, types.Params{NativeDenom: ""}))
}

// Random transfer sequences never create or destroy tokens.
func TestTotalSupplyInvariant_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		k, ctx := keepertest.LedgerKeeper(t)
		accounts := []sdk.AccAddress{
			keepertest.TestAddr("a"), keepertest.TestAddr("b"), keepertest.TestAddr("c"),
		}
		for _, acc := range accounts {
			require.NoError(rt, k.Mint(ctx, acc, "tokena", math.NewInt(1_000)))
		}

		steps := rapid.IntRange(1, 30).Draw(rt, "steps")
		for i := 0; i < steps; i++ {
			from := accounts[rapid.IntRange(0, 2).Draw(rt, "from")]
			to := accounts[rapid.IntRange(0, 2).Draw(rt, "to")]
			amount := math.NewInt(rapid.Int64Range(0, 1_500).Draw(rt, "amount"))
			_ = k.Transfer(ctx, from, to, "tokena", amount)
		}

		msg, broken := keeper.TotalSupplyInvariant(*k)(ctx)
		require.False(rt, broken, msg)
	})
}
