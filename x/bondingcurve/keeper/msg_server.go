package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/amm/x/bondingcurve/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the bonding curve MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

func (ms msgServer) CreateCurve(goCtx context.Context, msg *types.MsgCreateCurve) (*types.MsgCreateCurveResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("CreateCurve: validate: %w", err)
	}
	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return nil, fmt.Errorf("CreateCurve: invalid creator address: %w", err)
	}

	curve, err := ms.Keeper.CreateCurve(goCtx, creator, msg.Denom, msg.Slope, msg.InitialSupply)
	if err != nil {
		return nil, fmt.Errorf("CreateCurve: %w", err)
	}
	return &types.MsgCreateCurveResponse{CurveId: curve.Id, CurveAddress: curve.Address}, nil
}

func (ms msgServer) Buy(goCtx context.Context, msg *types.MsgBuy) (*types.MsgBuyResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Buy: validate: %w", err)
	}
	buyer, err := sdk.AccAddressFromBech32(msg.Buyer)
	if err != nil {
		return nil, fmt.Errorf("Buy: invalid buyer address: %w", err)
	}

	minted, err := ms.Keeper.Buy(goCtx, buyer, msg.CurveId, msg.Value)
	if err != nil {
		return nil, fmt.Errorf("Buy: %w", err)
	}
	return &types.MsgBuyResponse{Minted: minted}, nil
}

func (ms msgServer) Sell(goCtx context.Context, msg *types.MsgSell) (*types.MsgSellResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Sell: validate: %w", err)
	}
	seller, err := sdk.AccAddressFromBech32(msg.Seller)
	if err != nil {
		return nil, fmt.Errorf("Sell: invalid seller address: %w", err)
	}

	payout, err := ms.Keeper.Sell(goCtx, seller, msg.CurveId, msg.Amount)
	if err != nil {
		return nil, fmt.Errorf("Sell: %w", err)
	}
	return &types.MsgSellResponse{Payout: payout}, nil
}

func (ms msgServer) Transfer(goCtx context.Context, msg *types.MsgTransfer) (*types.MsgTransferResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Transfer: validate: %w", err)
	}
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, fmt.Errorf("Transfer: invalid sender address: %w", err)
	}
	recipient, err := sdk.AccAddressFromBech32(msg.Recipient)
	if err != nil {
		return nil, fmt.Errorf("Transfer: invalid recipient address: %w", err)
	}

	if err := ms.Keeper.Transfer(goCtx, msg.CurveId, sender, recipient, msg.Amount); err != nil {
		return nil, fmt.Errorf("Transfer: %w", err)
	}
	return &types.MsgTransferResponse{}, nil
}
