package keeper

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/amm/x/dex/types"
)

// GetNextPoolID returns the next pool ID and increments the counter
func (k Keeper) GetNextPoolID(ctx context.Context) uint64 {
	store := k.getStore(ctx)
	bz := store.Get(PoolCountKey)

	var poolID uint64
	if bz == nil {
		poolID = 1
	} else {
		poolID = binary.BigEndian.Uint64(bz)
	}

	k.SetNextPoolID(ctx, poolID+1)
	return poolID
}

// PeekNextPoolID returns the ID the next pool will receive without consuming it
func (k Keeper) PeekNextPoolID(ctx context.Context) uint64 {
	bz := k.getStore(ctx).Get(PoolCountKey)
	if bz == nil {
		return 1
	}
	return binary.BigEndian.Uint64(bz)
}

// SetNextPoolID sets the next pool ID counter
func (k Keeper) SetNextPoolID(ctx context.Context, poolID uint64) {
	store := k.getStore(ctx)
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, poolID)
	store.Set(PoolCountKey, bz)
}

// GetTotalPoolsCount returns the total number of registered pools in O(1) time.
func (k Keeper) GetTotalPoolsCount(ctx context.Context) uint64 {
	store := k.getStore(ctx)
	bz := store.Get(TotalPoolsCountKey)
	if bz == nil {
		return 0
	}
	return binary.BigEndian.Uint64(bz)
}

// SetTotalPoolsCount sets the total pools count.
func (k Keeper) SetTotalPoolsCount(ctx context.Context, count uint64) {
	store := k.getStore(ctx)
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, count)
	store.Set(TotalPoolsCountKey, bz)
}

// CreatePair is the factory entry point. It registers a new empty pool for the
// unordered pair {tokenA, tokenB}, charging exactly the configured creation fee.
// Returns ErrDuplicatePair if a pool already trades the pair in either order
// and ErrInvalidFee if fee differs from the creation fee.
func (k Keeper) CreatePair(ctx context.Context, creator sdk.AccAddress, tokenA, tokenB string, fee math.Int) (*types.Pool, error) {
	// 1. Input validation
	if creator.Empty() {
		return nil, types.ErrInvalidAddress.Wrap("creator cannot be empty")
	}
	if tokenA == tokenB {
		return nil, types.ErrInvalidTokenPair.Wrap("cannot create pool with identical tokens")
	}
	if err := sdk.ValidateDenom(tokenA); err != nil {
		return nil, types.ErrInvalidTokenPair.Wrapf("token A: %v", err)
	}
	if err := sdk.ValidateDenom(tokenB); err != nil {
		return nil, types.ErrInvalidTokenPair.Wrapf("token B: %v", err)
	}

	// 2. Ensure consistent token ordering (lexicographic)
	tokenA, tokenB = types.OrderTokens(tokenA, tokenB)

	// 3. Registry lookup: at most one pool per unordered pair
	if k.HasPair(ctx, tokenA, tokenB) {
		return nil, types.ErrDuplicatePair.Wrapf("pool already exists for token pair %s/%s", tokenA, tokenB)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, fmt.Errorf("CreatePair: get params: %w", err)
	}
	if fee.IsNil() || !fee.Equal(params.CreationFee) {
		return nil, types.ErrInvalidFee.Wrapf("pair creation requires exactly %s%s, got %s", params.CreationFee, params.FeeDenom, fee)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	cacheCtx, writeFn := sdkCtx.CacheContext()

	// 4. Collect the creation fee into the module account
	if fee.IsPositive() {
		if err := k.ledgerKeeper.Transfer(cacheCtx, creator, k.GetModuleAddress(), params.FeeDenom, fee); err != nil {
			return nil, types.ErrInsufficientBalance.Wrapf("failed to pay creation fee: %v", err)
		}
		if err := k.addToFeePool(cacheCtx, fee); err != nil {
			return nil, err
		}
	}

	// 5. Instantiate and register the pool
	poolID := k.GetNextPoolID(cacheCtx)
	pool := types.NewPool(poolID, tokenA, tokenB, creator)

	if err := k.SetPool(cacheCtx, &pool); err != nil {
		return nil, fmt.Errorf("CreatePair: save pool: %w", err)
	}
	if !k.registerPair(cacheCtx, tokenA, tokenB, poolID) {
		return nil, types.ErrDuplicatePair.Wrapf("pool already exists for token pair %s/%s", tokenA, tokenB)
	}
	k.SetTotalPoolsCount(cacheCtx, k.GetTotalPoolsCount(cacheCtx)+1)

	writeFn()

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePairCreated,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyPoolAddress, pool.Address),
			sdk.NewAttribute(types.AttributeKeyCreator, creator.String()),
			sdk.NewAttribute(types.AttributeKeyTokenA, tokenA),
			sdk.NewAttribute(types.AttributeKeyTokenB, tokenB),
			sdk.NewAttribute(types.AttributeKeyFee, fee.String()),
		),
	)

	k.metrics.PoolsTotal.Inc()
	k.metrics.CreationFeesCollected.Add(amountToFloat(fee))
	k.Logger(ctx).Info("pair created", "pool_id", poolID, "token_a", tokenA, "token_b", tokenB)

	return &pool, nil
}

// GetPool retrieves a pool by its unique numeric ID.
// Returns ErrPoolNotFound if the pool does not exist.
func (k Keeper) GetPool(ctx context.Context, poolID uint64) (*types.Pool, error) {
	store := k.getStore(ctx)
	bz := store.Get(PoolKey(poolID))
	if bz == nil {
		return nil, types.ErrPoolNotFound.Wrapf("pool %d not found", poolID)
	}

	var pool types.Pool
	if err := json.Unmarshal(bz, &pool); err != nil {
		return nil, fmt.Errorf("GetPool: unmarshal pool %d: %w", poolID, err)
	}
	return &pool, nil
}

// SetPool saves a pool to the store
func (k Keeper) SetPool(ctx context.Context, pool *types.Pool) error {
	if err := pool.Validate(); err != nil {
		return err
	}

	store := k.getStore(ctx)
	bz, err := json.Marshal(pool)
	if err != nil {
		return fmt.Errorf("SetPool: marshal pool %d: %w", pool.Id, err)
	}
	store.Set(PoolKey(pool.Id), bz)
	return nil
}

// GetPoolByTokens retrieves a pool by its token pair (order-independent).
// Returns ErrPoolNotFound if not found.
func (k Keeper) GetPoolByTokens(ctx context.Context, tokenA, tokenB string) (*types.Pool, error) {
	store := k.getStore(ctx)
	bz := store.Get(PoolByTokensKey(tokenA, tokenB))
	if bz == nil {
		return nil, types.ErrPoolNotFound.Wrapf("pool not found for token pair %s/%s", tokenA, tokenB)
	}

	poolID := binary.BigEndian.Uint64(bz)
	return k.GetPool(ctx, poolID)
}

// HasPair reports whether a pool is registered for the unordered pair.
func (k Keeper) HasPair(ctx context.Context, tokenA, tokenB string) bool {
	return k.getStore(ctx).Has(PoolByTokensKey(tokenA, tokenB))
}

// registerPair indexes a pool by its token pair if the pair is still free.
// It reports false, leaving the registry untouched, when the pair is taken.
func (k Keeper) registerPair(ctx context.Context, tokenA, tokenB string, poolID uint64) bool {
	store := k.getStore(ctx)
	key := PoolByTokensKey(tokenA, tokenB)
	if store.Has(key) {
		return false
	}

	poolIDBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(poolIDBytes, poolID)
	store.Set(key, poolIDBytes)
	return true
}

// MaxIterationLimit is the maximum number of items to return in unbounded queries
const MaxIterationLimit = 100

// IteratePools iterates over all pools
func (k Keeper) IteratePools(ctx context.Context, cb func(pool types.Pool) (stop bool)) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, PoolKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var pool types.Pool
		if err := json.Unmarshal(iterator.Value(), &pool); err != nil {
			return fmt.Errorf("IteratePools: unmarshal pool: %w", err)
		}
		if cb(pool) {
			break
		}
	}
	return nil
}

// GetAllPools returns up to MaxIterationLimit pools in ID order
func (k Keeper) GetAllPools(ctx context.Context) ([]types.Pool, error) {
	pools := make([]types.Pool, 0, MaxIterationLimit)
	err := k.IteratePools(ctx, func(pool types.Pool) bool {
		pools = append(pools, pool)
		return len(pools) >= MaxIterationLimit
	})
	return pools, err
}
