package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/amm/x/dex/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the dex MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// CreatePair handles pair registration through the factory
func (ms msgServer) CreatePair(goCtx context.Context, msg *types.MsgCreatePair) (*types.MsgCreatePairResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("CreatePair: validate: %w", err)
	}

	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return nil, fmt.Errorf("CreatePair: invalid creator address: %w", err)
	}

	pool, err := ms.Keeper.CreatePair(goCtx, creator, msg.TokenA, msg.TokenB, msg.Fee)
	if err != nil {
		return nil, fmt.Errorf("CreatePair: %w", err)
	}

	return &types.MsgCreatePairResponse{
		PoolId:      pool.Id,
		PoolAddress: pool.Address,
	}, nil
}

// AddLiquidity handles adding liquidity to an existing pool
func (ms msgServer) AddLiquidity(goCtx context.Context, msg *types.MsgAddLiquidity) (*types.MsgAddLiquidityResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("AddLiquidity: validate: %w", err)
	}

	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, fmt.Errorf("AddLiquidity: invalid provider address: %w", err)
	}

	shares, err := ms.Keeper.AddLiquidity(goCtx, provider, msg.PoolId, msg.AmountA, msg.AmountB)
	if err != nil {
		return nil, fmt.Errorf("AddLiquidity: %w", err)
	}

	return &types.MsgAddLiquidityResponse{
		Shares: shares,
	}, nil
}

// RemoveLiquidity handles removing liquidity from a pool
func (ms msgServer) RemoveLiquidity(goCtx context.Context, msg *types.MsgRemoveLiquidity) (*types.MsgRemoveLiquidityResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("RemoveLiquidity: validate: %w", err)
	}

	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, fmt.Errorf("RemoveLiquidity: invalid provider address: %w", err)
	}

	amountA, amountB, err := ms.Keeper.RemoveLiquidity(goCtx, provider, msg.PoolId, msg.Shares)
	if err != nil {
		return nil, fmt.Errorf("RemoveLiquidity: %w", err)
	}

	return &types.MsgRemoveLiquidityResponse{
		AmountA: amountA,
		AmountB: amountB,
	}, nil
}

// Swap handles token swaps
func (ms msgServer) Swap(goCtx context.Context, msg *types.MsgSwap) (*types.MsgSwapResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Swap: validate: %w", err)
	}

	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		return nil, fmt.Errorf("Swap: invalid trader address: %w", err)
	}

	if msg.TokenOut != "" {
		pool, err := ms.Keeper.GetPool(goCtx, msg.PoolId)
		if err != nil {
			return nil, fmt.Errorf("Swap: %w", err)
		}
		tokenOut, _, err := swapLegs(pool, msg.TokenIn)
		if err != nil {
			return nil, fmt.Errorf("Swap: %w", err)
		}
		if tokenOut != msg.TokenOut {
			return nil, types.ErrInvalidTokenPair.Wrapf("pool %d pays %s for %s, not %s", msg.PoolId, tokenOut, msg.TokenIn, msg.TokenOut)
		}
	}

	amountOut, err := ms.Keeper.Swap(goCtx, trader, msg.PoolId, msg.TokenIn, msg.AmountIn, msg.MinAmountOut)
	if err != nil {
		return nil, fmt.Errorf("Swap: %w", err)
	}

	return &types.MsgSwapResponse{
		AmountOut: amountOut,
	}, nil
}

// WithdrawFees handles the owner's withdrawal of collected creation fees
func (ms msgServer) WithdrawFees(goCtx context.Context, msg *types.MsgWithdrawFees) (*types.MsgWithdrawFeesResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("WithdrawFees: validate: %w", err)
	}

	owner, err := sdk.AccAddressFromBech32(msg.Owner)
	if err != nil {
		return nil, fmt.Errorf("WithdrawFees: invalid owner address: %w", err)
	}

	amount, err := ms.Keeper.WithdrawFees(goCtx, owner)
	if err != nil {
		return nil, fmt.Errorf("WithdrawFees: %w", err)
	}

	return &types.MsgWithdrawFeesResponse{
		Amount: amount,
	}, nil
}
