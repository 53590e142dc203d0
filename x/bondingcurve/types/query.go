package types

import (
	"context"

	"cosmossdk.io/math"
)

// QueryServer defines the read-only query interface of the bonding curve module
type QueryServer interface {
	Params(context.Context, *QueryParamsRequest) (*QueryParamsResponse, error)
	Curve(context.Context, *QueryCurveRequest) (*QueryCurveResponse, error)
	CurveByDenom(context.Context, *QueryCurveByDenomRequest) (*QueryCurveResponse, error)
	CurrentPrice(context.Context, *QueryCurrentPriceRequest) (*QueryCurrentPriceResponse, error)
	QuoteBuy(context.Context, *QueryQuoteBuyRequest) (*QueryQuoteBuyResponse, error)
	QuoteSell(context.Context, *QueryQuoteSellRequest) (*QueryQuoteSellResponse, error)
	Balance(context.Context, *QueryBalanceRequest) (*QueryBalanceResponse, error)
}

type QueryParamsRequest struct{}

type QueryParamsResponse struct {
	Params Params `json:"params"`
}

type QueryCurveRequest struct {
	CurveId uint64 `json:"curve_id"`
}

type QueryCurveByDenomRequest struct {
	Denom string `json:"denom"`
}

type QueryCurveResponse struct {
	Curve Curve `json:"curve"`
}

type QueryCurrentPriceRequest struct {
	CurveId uint64 `json:"curve_id"`
}

type QueryCurrentPriceResponse struct {
	Price math.Int `json:"price"`
}

type QueryQuoteBuyRequest struct {
	CurveId uint64   `json:"curve_id"`
	Value   math.Int `json:"value"`
}

type QueryQuoteBuyResponse struct {
	Minted math.Int `json:"minted"`
}

type QueryQuoteSellRequest struct {
	CurveId uint64   `json:"curve_id"`
	Amount  math.Int `json:"amount"`
}

type QueryQuoteSellResponse struct {
	Payout math.Int `json:"payout"`
}

type QueryBalanceRequest struct {
	CurveId uint64 `json:"curve_id"`
	Holder  string `json:"holder"`
}

type QueryBalanceResponse struct {
	Balance math.Int `json:"balance"`
}
