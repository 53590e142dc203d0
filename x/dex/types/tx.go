package types

import (
	"context"

	"cosmossdk.io/math"
)

// MsgServer defines the message server interface
type MsgServer interface {
	CreatePair(context.Context, *MsgCreatePair) (*MsgCreatePairResponse, error)
	AddLiquidity(context.Context, *MsgAddLiquidity) (*MsgAddLiquidityResponse, error)
	RemoveLiquidity(context.Context, *MsgRemoveLiquidity) (*MsgRemoveLiquidityResponse, error)
	Swap(context.Context, *MsgSwap) (*MsgSwapResponse, error)
	WithdrawFees(context.Context, *MsgWithdrawFees) (*MsgWithdrawFeesResponse, error)
}

// Response types

// MsgCreatePairResponse defines the response for CreatePair
type MsgCreatePairResponse struct {
	PoolId      uint64 `json:"pool_id"`
	PoolAddress string `json:"pool_address"`
}

// MsgAddLiquidityResponse defines the response for AddLiquidity
type MsgAddLiquidityResponse struct {
	Shares math.Int `json:"shares"`
}

// MsgRemoveLiquidityResponse defines the response for RemoveLiquidity
type MsgRemoveLiquidityResponse struct {
	AmountA math.Int `json:"amount_a"`
	AmountB math.Int `json:"amount_b"`
}

// MsgSwapResponse defines the response for Swap
type MsgSwapResponse struct {
	AmountOut math.Int `json:"amount_out"`
}

// MsgWithdrawFeesResponse defines the response for WithdrawFees
type MsgWithdrawFeesResponse struct {
	Amount math.Int `json:"amount"`
}
