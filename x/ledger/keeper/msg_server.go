package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/amm/x/ledger/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the ledger MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

func (ms msgServer) Send(goCtx context.Context, msg *types.MsgSend) (*types.MsgSendResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Send: validate: %w", err)
	}
	sender, _ := sdk.AccAddressFromBech32(msg.Sender)
	recipient, _ := sdk.AccAddressFromBech32(msg.Recipient)

	if err := ms.Keeper.Transfer(goCtx, sender, recipient, msg.Denom, msg.Amount); err != nil {
		return nil, fmt.Errorf("Send: %w", err)
	}
	return &types.MsgSendResponse{}, nil
}

func (ms msgServer) Approve(goCtx context.Context, msg *types.MsgApprove) (*types.MsgApproveResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Approve: validate: %w", err)
	}
	owner, _ := sdk.AccAddressFromBech32(msg.Owner)
	spender, _ := sdk.AccAddressFromBech32(msg.Spender)

	if err := ms.Keeper.Approve(goCtx, owner, spender, msg.Denom, msg.Amount); err != nil {
		return nil, fmt.Errorf("Approve: %w", err)
	}
	return &types.MsgApproveResponse{}, nil
}

func (ms msgServer) TransferFrom(goCtx context.Context, msg *types.MsgTransferFrom) (*types.MsgTransferFromResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("TransferFrom: validate: %w", err)
	}
	spender, _ := sdk.AccAddressFromBech32(msg.Spender)
	owner, _ := sdk.AccAddressFromBech32(msg.Owner)
	recipient, _ := sdk.AccAddressFromBech32(msg.Recipient)

	if err := ms.Keeper.TransferFrom(goCtx, spender, owner, recipient, msg.Denom, msg.Amount); err != nil {
		return nil, fmt.Errorf("TransferFrom: %w", err)
	}
	return &types.MsgTransferFromResponse{}, nil
}
