package app

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	curvekeeper "github.com/paw-chain/amm/x/bondingcurve/keeper"
	curvetypes "github.com/paw-chain/amm/x/bondingcurve/types"
	dexkeeper "github.com/paw-chain/amm/x/dex/keeper"
	dextypes "github.com/paw-chain/amm/x/dex/types"
	ledgerkeeper "github.com/paw-chain/amm/x/ledger/keeper"
	ledgertypes "github.com/paw-chain/amm/x/ledger/types"
)

// msgRouter dispatches messages to the module message servers.
type msgRouter struct {
	ledger ledgertypes.MsgServer
	dex    dextypes.MsgServer
	curve  curvetypes.MsgServer
}

func newMsgRouter(lk ledgerkeeper.Keeper, dk dexkeeper.Keeper, ck curvekeeper.Keeper) *msgRouter {
	return &msgRouter{
		ledger: ledgerkeeper.NewMsgServerImpl(lk),
		dex:    dexkeeper.NewMsgServerImpl(dk),
		curve:  curvekeeper.NewMsgServerImpl(ck),
	}
}

func (r *msgRouter) route(ctx context.Context, msg any) (any, error) {
	switch msg := msg.(type) {
	case *ledgertypes.MsgSend:
		return r.ledger.Send(ctx, msg)
	case *ledgertypes.MsgApprove:
		return r.ledger.Approve(ctx, msg)
	case *ledgertypes.MsgTransferFrom:
		return r.ledger.TransferFrom(ctx, msg)

	case *dextypes.MsgCreatePair:
		return r.dex.CreatePair(ctx, msg)
	case *dextypes.MsgAddLiquidity:
		return r.dex.AddLiquidity(ctx, msg)
	case *dextypes.MsgRemoveLiquidity:
		return r.dex.RemoveLiquidity(ctx, msg)
	case *dextypes.MsgSwap:
		return r.dex.Swap(ctx, msg)
	case *dextypes.MsgWithdrawFees:
		return r.dex.WithdrawFees(ctx, msg)

	case *curvetypes.MsgCreateCurve:
		return r.curve.CreateCurve(ctx, msg)
	case *curvetypes.MsgBuy:
		return r.curve.Buy(ctx, msg)
	case *curvetypes.MsgSell:
		return r.curve.Sell(ctx, msg)
	case *curvetypes.MsgTransfer:
		return r.curve.Transfer(ctx, msg)

	default:
		return nil, sdkerrors.ErrUnknownRequest.Wrapf("unrecognized message type: %T", msg)
	}
}

// Deliver executes one message atomically and returns the message server's
// response together with the events it emitted.
func (app *App) Deliver(ctx context.Context, msg any) (any, sdk.Events, error) {
	var res any
	events, err := app.Execute(ctx, func(sdkCtx sdk.Context) error {
		var err error
		res, err = app.router.route(sdkCtx, msg)
		return err
	})
	if err != nil {
		app.logger.Debug("message failed", "type", fmt.Sprintf("%T", msg), "err", err)
		return nil, nil, err
	}
	return res, events, nil
}

// queryRouter dispatches read-only requests to the module query servers.
type queryRouter struct {
	dex   dextypes.QueryServer
	curve curvetypes.QueryServer
}

func newQueryRouter(dk dexkeeper.Keeper, ck curvekeeper.Keeper) *queryRouter {
	return &queryRouter{
		dex:   dexkeeper.NewQueryServerImpl(dk),
		curve: curvekeeper.NewQueryServerImpl(ck),
	}
}

func (r *queryRouter) route(ctx context.Context, req any) (any, error) {
	switch req := req.(type) {
	case *dextypes.QueryParamsRequest:
		return r.dex.Params(ctx, req)
	case *dextypes.QueryPoolRequest:
		return r.dex.Pool(ctx, req)
	case *dextypes.QueryPoolsRequest:
		return r.dex.Pools(ctx, req)
	case *dextypes.QueryPoolByTokensRequest:
		return r.dex.PoolByTokens(ctx, req)
	case *dextypes.QueryLiquidityRequest:
		return r.dex.Liquidity(ctx, req)
	case *dextypes.QuerySimulateSwapRequest:
		return r.dex.SimulateSwap(ctx, req)
	case *dextypes.QuerySpotPriceRequest:
		return r.dex.SpotPrice(ctx, req)
	case *dextypes.QueryFeePoolRequest:
		return r.dex.FeePool(ctx, req)

	case *curvetypes.QueryParamsRequest:
		return r.curve.Params(ctx, req)
	case *curvetypes.QueryCurveRequest:
		return r.curve.Curve(ctx, req)
	case *curvetypes.QueryCurveByDenomRequest:
		return r.curve.CurveByDenom(ctx, req)
	case *curvetypes.QueryCurrentPriceRequest:
		return r.curve.CurrentPrice(ctx, req)
	case *curvetypes.QueryQuoteBuyRequest:
		return r.curve.QuoteBuy(ctx, req)
	case *curvetypes.QueryQuoteSellRequest:
		return r.curve.QuoteSell(ctx, req)
	case *curvetypes.QueryBalanceRequest:
		return r.curve.Balance(ctx, req)

	default:
		return nil, sdkerrors.ErrUnknownRequest.Wrapf("unrecognized query type: %T", req)
	}
}

// RouteQuery answers one query request against the current state.
func (app *App) RouteQuery(ctx context.Context, req any) (any, error) {
	var res any
	err := app.Query(ctx, func(sdkCtx sdk.Context) error {
		var err error
		res, err = app.queries.route(sdkCtx, req)
		return err
	})
	return res, err
}
