package keeper

import (
	"context"
	"encoding/json"
	"fmt"

	"cosmossdk.io/store/prefix"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/cosmos/cosmos-sdk/types/query"

	"github.com/paw-chain/amm/x/dex/types"
)

type queryServer struct {
	Keeper
}

const (
	defaultPaginationLimit = 100
	maxPaginationLimit     = 1000
)

// NewQueryServerImpl returns an implementation of the dex QueryServer interface
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

	return &types.QueryParamsResponse{
		Params: params,
	}, nil
}

// Pool returns a specific pool by ID
func (qs queryServer) Pool(goCtx context.Context, req *types.QueryPoolRequest) (*types.QueryPoolResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	pool, err := qs.Keeper.GetPool(goCtx, req.PoolId)
	if err != nil {
		return nil, fmt.Errorf("Pool: get pool %d: %w", req.PoolId, err)
	}

	return &types.QueryPoolResponse{
		Pool: *pool,
	}, nil
}

// Pools returns all pools with pagination
func (qs queryServer) Pools(goCtx context.Context, req *types.QueryPoolsRequest) (*types.QueryPoolsResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	// Enforce sane pagination defaults and caps to protect against unbounded queries.
	if req.Pagination == nil {
		req.Pagination = &query.PageRequest{Limit: defaultPaginationLimit}
	} else {
		if req.Pagination.Limit == 0 {
			req.Pagination.Limit = defaultPaginationLimit
		}
		if req.Pagination.Limit > maxPaginationLimit {
			req.Pagination.Limit = maxPaginationLimit
		}
	}

	pools := make([]types.Pool, 0, int(req.Pagination.Limit))
	poolStore := prefix.NewStore(qs.Keeper.getStore(goCtx), PoolKeyPrefix)

	pageRes, err := query.Paginate(poolStore, req.Pagination, func(key []byte, value []byte) error {
		var pool types.Pool
		if err := json.Unmarshal(value, &pool); err != nil {
			return fmt.Errorf("unmarshal pool: %w", err)
		}
		pools = append(pools, pool)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("Pools: paginate: %w", err)
	}

	return &types.QueryPoolsResponse{
		Pools:      pools,
		Pagination: pageRes,
	}, nil
}

// PoolByTokens returns a pool by its token pair
func (qs queryServer) PoolByTokens(goCtx context.Context, req *types.QueryPoolByTokensRequest) (*types.QueryPoolByTokensResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	pool, err := qs.Keeper.GetPoolByTokens(goCtx, req.TokenA, req.TokenB)
	if err != nil {
		return nil, fmt.Errorf("PoolByTokens: get pool by tokens %s/%s: %w", req.TokenA, req.TokenB, err)
	}

	return &types.QueryPoolByTokensResponse{
		Pool: *pool,
	}, nil
}

// Liquidity returns a user's liquidity position in a pool
func (qs queryServer) Liquidity(goCtx context.Context, req *types.QueryLiquidityRequest) (*types.QueryLiquidityResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	provider, err := sdk.AccAddressFromBech32(req.Provider)
	if err != nil {
		return nil, fmt.Errorf("Liquidity: parse provider address: %w", err)
	}

	shares, err := qs.Keeper.GetShares(goCtx, req.PoolId, provider)
	if err != nil {
		return nil, fmt.Errorf("Liquidity: get liquidity for pool %d: %w", req.PoolId, err)
	}

	return &types.QueryLiquidityResponse{
		Shares: shares,
	}, nil
}

// SimulateSwap simulates a swap without executing it
func (qs queryServer) SimulateSwap(goCtx context.Context, req *types.QuerySimulateSwapRequest) (*types.QuerySimulateSwapResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	amountOut, err := qs.Keeper.SimulateSwap(goCtx, req.PoolId, req.TokenIn, req.AmountIn)
	if err != nil {
		return nil, fmt.Errorf("SimulateSwap: simulate for pool %d: %w", req.PoolId, err)
	}

	return &types.QuerySimulateSwapResponse{
		AmountOut: amountOut,
	}, nil
}

// SpotPrice returns the marginal price of a pool asset
func (qs queryServer) SpotPrice(goCtx context.Context, req *types.QuerySpotPriceRequest) (*types.QuerySpotPriceResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	price, err := qs.Keeper.GetSpotPrice(goCtx, req.PoolId, req.TokenIn)
	if err != nil {
		return nil, fmt.Errorf("SpotPrice: pool %d: %w", req.PoolId, err)
	}

	return &types.QuerySpotPriceResponse{
		Price: price,
	}, nil
}

// FeePool returns the creation fees awaiting withdrawal and who may withdraw them
func (qs queryServer) FeePool(goCtx context.Context, req *types.QueryFeePoolRequest) (*types.QueryFeePoolResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	fees, err := qs.Keeper.GetFeePool(goCtx)
	if err != nil {
		return nil, fmt.Errorf("FeePool: %w", err)
	}

	return &types.QueryFeePoolResponse{
		Owner:  qs.Keeper.GetAuthority(),
		Amount: fees,
	}, nil
}
