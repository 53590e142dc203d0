package types

import (
	"context"

	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/types/query"
)

// QueryServer defines the read-only query interface of the dex module
type QueryServer interface {
	Params(context.Context, *QueryParamsRequest) (*QueryParamsResponse, error)
	Pool(context.Context, *QueryPoolRequest) (*QueryPoolResponse, error)
	Pools(context.Context, *QueryPoolsRequest) (*QueryPoolsResponse, error)
	PoolByTokens(context.Context, *QueryPoolByTokensRequest) (*QueryPoolByTokensResponse, error)
	Liquidity(context.Context, *QueryLiquidityRequest) (*QueryLiquidityResponse, error)
	SimulateSwap(context.Context, *QuerySimulateSwapRequest) (*QuerySimulateSwapResponse, error)
	SpotPrice(context.Context, *QuerySpotPriceRequest) (*QuerySpotPriceResponse, error)
	FeePool(context.Context, *QueryFeePoolRequest) (*QueryFeePoolResponse, error)
}

type QueryParamsRequest struct{}

type QueryParamsResponse struct {
	Params Params `json:"params"`
}

type QueryPoolRequest struct {
	PoolId uint64 `json:"pool_id"`
}

type QueryPoolResponse struct {
	Pool Pool `json:"pool"`
}

type QueryPoolsRequest struct {
	Pagination *query.PageRequest `json:"pagination,omitempty"`
}

type QueryPoolsResponse struct {
	Pools      []Pool              `json:"pools"`
	Pagination *query.PageResponse `json:"pagination,omitempty"`
}

type QueryPoolByTokensRequest struct {
	TokenA string `json:"token_a"`
	TokenB string `json:"token_b"`
}

type QueryPoolByTokensResponse struct {
	Pool Pool `json:"pool"`
}

type QueryLiquidityRequest struct {
	PoolId   uint64 `json:"pool_id"`
	Provider string `json:"provider"`
}

type QueryLiquidityResponse struct {
	Shares math.Int `json:"shares"`
}

type QuerySimulateSwapRequest struct {
	PoolId   uint64   `json:"pool_id"`
	TokenIn  string   `json:"token_in"`
	AmountIn math.Int `json:"amount_in"`
}

type QuerySimulateSwapResponse struct {
	AmountOut math.Int `json:"amount_out"`
}

type QuerySpotPriceRequest struct {
	PoolId  uint64 `json:"pool_id"`
	TokenIn string `json:"token_in"`
}

type QuerySpotPriceResponse struct {
	Price math.LegacyDec `json:"price"`
}

type QueryFeePoolRequest struct{}

type QueryFeePoolResponse struct {
	Owner  string   `json:"owner"`
	Amount math.Int `json:"amount"`
}
