package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/paw-chain/amm/x/bondingcurve/types"
)

type queryServer struct {
	Keeper
}

// NewQueryServerImpl returns an implementation of the bonding curve QueryServer interface
func NewQueryServerImpl(keeper Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

var _ types.QueryServer = queryServer{}

// Params returns the module parameters
func (qs queryServer) Params(goCtx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	params, err := qs.Keeper.GetParams(goCtx)
	if err != nil {
		return nil, fmt.Errorf("Params: get params: %w", err)
	}
	return &types.QueryParamsResponse{Params: params}, nil
}

// Curve returns a curve by ID
func (qs queryServer) Curve(goCtx context.Context, req *types.QueryCurveRequest) (*types.QueryCurveResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	curve, err := qs.Keeper.GetCurve(goCtx, req.CurveId)
	if err != nil {
		return nil, fmt.Errorf("Curve: get curve %d: %w", req.CurveId, err)
	}
	return &types.QueryCurveResponse{Curve: *curve}, nil
}

// CurveByDenom returns the curve issuing a denom
func (qs queryServer) CurveByDenom(goCtx context.Context, req *types.QueryCurveByDenomRequest) (*types.QueryCurveResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	curve, err := qs.Keeper.GetCurveByDenom(goCtx, req.Denom)
	if err != nil {
		return nil, fmt.Errorf("CurveByDenom: %s: %w", req.Denom, err)
	}
	return &types.QueryCurveResponse{Curve: *curve}, nil
}

// CurrentPrice returns the spot price of one whole token
func (qs queryServer) CurrentPrice(goCtx context.Context, req *types.QueryCurrentPriceRequest) (*types.QueryCurrentPriceResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	price, err := qs.Keeper.CurrentPrice(goCtx, req.CurveId)
	if err != nil {
		return nil, fmt.Errorf("CurrentPrice: curve %d: %w", req.CurveId, err)
	}
	return &types.QueryCurrentPriceResponse{Price: price}, nil
}

// QuoteBuy returns the tokens a buy of the given value would mint
func (qs queryServer) QuoteBuy(goCtx context.Context, req *types.QueryQuoteBuyRequest) (*types.QueryQuoteBuyResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	minted, err := qs.Keeper.QuoteBuy(goCtx, req.CurveId, req.Value)
	if err != nil {
		return nil, fmt.Errorf("QuoteBuy: curve %d: %w", req.CurveId, err)
	}
	return &types.QueryQuoteBuyResponse{Minted: minted}, nil
}

// QuoteSell returns the net payout of selling the given amount
func (qs queryServer) QuoteSell(goCtx context.Context, req *types.QueryQuoteSellRequest) (*types.QueryQuoteSellResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	payout, err := qs.Keeper.QuoteSell(goCtx, req.CurveId, req.Amount)
	if err != nil {
		return nil, fmt.Errorf("QuoteSell: curve %d: %w", req.CurveId, err)
	}
	return &types.QueryQuoteSellResponse{Payout: payout}, nil
}

// Balance returns a holder's curve token balance
func (qs queryServer) Balance(goCtx context.Context, req *types.QueryBalanceRequest) (*types.QueryBalanceResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	holder, err := sdk.AccAddressFromBech32(req.Holder)
	if err != nil {
		return nil, fmt.Errorf("Balance: parse holder address: %w", err)
	}
	balance, err := qs.Keeper.BalanceOf(goCtx, req.CurveId, holder)
	if err != nil {
		return nil, fmt.Errorf("Balance: curve %d: %w", req.CurveId, err)
	}
	return &types.QueryBalanceResponse{Balance: balance}, nil
}
