package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/amm/x/dex/types"
)

// GetFeePool returns the creation fees collected and not yet withdrawn.
func (k Keeper) GetFeePool(ctx context.Context) (math.Int, error) {
	bz := k.getStore(ctx).Get(FeePoolKey)
	if bz == nil {
		return math.ZeroInt(), nil
	}

	var fees math.Int
	if err := fees.Unmarshal(bz); err != nil {
		return math.ZeroInt(), fmt.Errorf("GetFeePool: unmarshal: %w", err)
	}
	return fees, nil
}

// SetFeePool overwrites the creation fee pool.
func (k Keeper) SetFeePool(ctx context.Context, fees math.Int) error {
	if fees.IsNil() || fees.IsNegative() {
		return types.ErrInvalidAmount.Wrapf("fee pool cannot be %s", fees)
	}

	bz, err := fees.Marshal()
	if err != nil {
		return fmt.Errorf("SetFeePool: marshal: %w", err)
	}
	k.getStore(ctx).Set(FeePoolKey, bz)
	return nil
}

func (k Keeper) addToFeePool(ctx context.Context, amount math.Int) error {
	fees, err := k.GetFeePool(ctx)
	if err != nil {
		return err
	}
	newFees, err := fees.SafeAdd(amount)
	if err != nil {
		return types.ErrOverflow.Wrapf("fee pool: %v", err)
	}
	return k.SetFeePool(ctx, newFees)
}

// CreationFee returns the exact amount CreatePair must be paid with.
func (k Keeper) CreationFee(ctx context.Context) (math.Int, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return math.ZeroInt(), err
	}
	return params.CreationFee, nil
}

// WithdrawFees pays the whole creation fee pool to the factory owner and
// resets it. Only the owner may call it.
// Uses CacheContext pattern for atomic state changes.
func (k Keeper) WithdrawFees(ctx context.Context, caller sdk.AccAddress) (math.Int, error) {
	// CHECKS: Validate inputs without modifying state
	if caller.Empty() || caller.String() != k.authority {
		return math.ZeroInt(), types.ErrUnauthorized.Wrapf("only the factory owner %s may withdraw fees, got %s", k.authority, caller)
	}

	totalFees, err := k.GetFeePool(ctx)
	if err != nil {
		return math.ZeroInt(), err
	}
	if totalFees.IsZero() {
		return math.ZeroInt(), nil
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return math.ZeroInt(), fmt.Errorf("WithdrawFees: get params: %w", err)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)

	// Use CacheContext for atomic execution
	cacheCtx, writeFn := sdkCtx.CacheContext()

	if err := k.SetFeePool(cacheCtx, math.ZeroInt()); err != nil {
		return math.ZeroInt(), err
	}

	// INTERACTIONS: Transfer in cache context
	if err := k.ledgerKeeper.Transfer(cacheCtx, k.GetModuleAddress(), caller, params.FeeDenom, totalFees); err != nil {
		// Cache is automatically discarded - no state corruption
		return math.ZeroInt(), types.ErrInsufficientBalance.Wrapf("failed to send fees: %v", err)
	}

	// EFFECTS: Commit state changes only after successful transfer
	writeFn()

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeFeesWithdrawn,
			sdk.NewAttribute(types.AttributeKeyOwner, caller.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, totalFees.String()),
		),
	)

	k.metrics.CreationFeesWithdrawn.Add(amountToFloat(totalFees))
	k.Logger(ctx).Info("creation fees withdrawn", "owner", caller.String(), "amount", totalFees.String())

	return totalFees, nil
}
