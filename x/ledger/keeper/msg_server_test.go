package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/paw-chain/amm/testutil/keeper"
	"github.com/paw-chain/amm/x/ledger/keeper"
	"github.com/paw-chain/amm/x/ledger/types"
)

func TestMsgServer_SendApproveTransferFrom(t *testing.T) {
	k, ctx := keepertest.LedgerKeeper(t)
	ms := keeper.NewMsgServerImpl(*k)

	alice := keepertest.TestAddr("alice")
	bob := keepertest.TestAddr("bob")
	carol := keepertest.TestAddr("carol")
	keepertest.FundAccount(t, k, ctx, alice, "tokena", math.NewInt(100))

	_, err := ms.Send(ctx, &types.MsgSend{Sender: alice.String(), Recipient: bob.String(), Denom: "tokena", Amount: math.NewInt(30)})
	require.NoError(t, err)

	_, err = ms.Approve(ctx, &types.MsgApprove{Owner: alice.String(), Spender: carol.String(), Denom: "tokena", Amount: math.NewInt(50)})
	require.NoError(t, err)

	_, err = ms.TransferFrom(ctx, &types.MsgTransferFrom{
		Spender: carol.String(), Owner: alice.String(), Recipient: bob.String(), Denom: "tokena", Amount: math.NewInt(20),
	})
	require.NoError(t, err)

	keepertest.RequireIntEqual(t, math.NewInt(50), k.GetBalance(ctx, alice, "tokena"))
	keepertest.RequireIntEqual(t, math.NewInt(50), k.GetBalance(ctx, bob, "tokena"))
	keepertest.RequireIntEqual(t, math.NewInt(30), k.GetAllowance(ctx, alice, carol, "tokena"))

	_, err = ms.TransferFrom(ctx, &types.MsgTransferFrom{
		Spender: carol.String(), Owner: alice.String(), Recipient: bob.String(), Denom: "tokena", Amount: math.NewInt(31),
	})
	require.ErrorIs(t, err, types.ErrInsufficientAllowance)

	_, err = ms.Send(ctx, &types.MsgSend{Sender: bob.String(), Recipient: alice.String(), Denom: "tokena", Amount: math.NewInt(51)})
	require.ErrorIs(t, err, types.ErrInsufficientBalance)
}

func TestMsgServer_ValidateBasic(t *testing.T) {
	k, ctx := keepertest.LedgerKeeper(t)
	ms := keeper.NewMsgServerImpl(*k)
	alice := keepertest.TestAddr("alice").String()

	_, err := ms.Send(ctx, &types.MsgSend{Sender: "bad", Recipient: alice, Denom: "tokena", Amount: math.OneInt()})
	require.ErrorIs(t, err, types.ErrInvalidAddress)

	_, err = ms.Send(ctx, &types.MsgSend{Sender: alice, Recipient: alice, Denom: "1x", Amount: math.OneInt()})
	require.ErrorIs(t, err, types.ErrInvalidDenom)

	_, err = ms.Approve(ctx, &types.MsgApprove{Owner: alice, Spender: alice, Denom: "tokena", Amount: math.NewInt(-1)})
	require.ErrorIs(t, err, types.ErrInvalidAmount)

	_, err = ms.TransferFrom(ctx, &types.MsgTransferFrom{Spender: alice, Owner: alice, Recipient: "", Denom: "tokena", Amount: math.OneInt()})
	require.ErrorIs(t, err, types.ErrInvalidAddress)
}
