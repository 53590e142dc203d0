package keeper

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/amm/x/bondingcurve/types"
)

// GetNextCurveID returns the next curve ID and increments the counter
func (k Keeper) GetNextCurveID(ctx context.Context) uint64 {
	curveID := k.PeekNextCurveID(ctx)
	k.SetNextCurveID(ctx, curveID+1)
	return curveID
}

// PeekNextCurveID returns the ID the next curve will receive
func (k Keeper) PeekNextCurveID(ctx context.Context) uint64 {
	bz := k.getStore(ctx).Get(CurveCountKey)
	if bz == nil {
		return 1
	}
	return binary.BigEndian.Uint64(bz)
}

// SetNextCurveID sets the next curve ID counter
func (k Keeper) SetNextCurveID(ctx context.Context, curveID uint64) {
	k.getStore(ctx).Set(CurveCountKey, sdk.Uint64ToBigEndian(curveID))
}

// CreateCurve issues a new curve token. The creator pays the curve price of
// the initial supply into the reserve and receives that supply, so the
// reserve always backs every token outstanding.
// Uses CacheContext pattern for atomic state changes.
func (k Keeper) CreateCurve(ctx context.Context, creator sdk.AccAddress, denom string, slope math.LegacyDec, initialSupply math.Int) (*types.Curve, error) {
	if creator.Empty() {
		return nil, types.ErrInvalidAddress.Wrap("creator cannot be empty")
	}
	if err := sdk.ValidateDenom(denom); err != nil {
		return nil, types.ErrInvalidDenom.Wrap(err.Error())
	}
	if slope.IsNil() || !slope.IsPositive() {
		return nil, types.ErrInvalidSlope.Wrapf("slope must be positive, got %s", slope)
	}
	if initialSupply.IsNil() || initialSupply.IsNegative() {
		return nil, types.ErrInvalidAmount.Wrap("initial supply must be non-negative")
	}
	if _, err := SpotPrice(initialSupply, slope); err != nil {
		return nil, types.ErrOverflow.Wrapf("initial price: %v", err)
	}
	cost, err := MintCost(math.ZeroInt(), initialSupply, slope)
	if err != nil {
		return nil, types.ErrOverflow.Wrapf("initial supply cost: %v", err)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, fmt.Errorf("CreateCurve: get params: %w", err)
	}
	if denom == params.NativeDenom {
		return nil, types.ErrInvalidDenom.Wrapf("%s is the native denom", denom)
	}
	if k.getStore(ctx).Has(CurveByDenomKey(denom)) {
		return nil, types.ErrDuplicateDenom.Wrapf("curve for %s already exists", denom)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	cacheCtx, writeFn := sdkCtx.CacheContext()

	curveID := k.GetNextCurveID(cacheCtx)
	curve := types.NewCurve(curveID, denom, slope, initialSupply, creator)
	curve.NativeReserve = cost

	if err := k.ledgerKeeper.Transfer(cacheCtx, creator, curve.GetAddress(), params.NativeDenom, cost); err != nil {
		return nil, types.ErrInsufficientBalance.Wrapf("failed to pay %s%s for the initial supply: %v", cost, params.NativeDenom, err)
	}
	if err := k.SetCurve(cacheCtx, &curve); err != nil {
		return nil, err
	}
	k.getStore(cacheCtx).Set(CurveByDenomKey(denom), sdk.Uint64ToBigEndian(curveID))
	if err := k.setBalance(cacheCtx, curveID, creator, initialSupply); err != nil {
		return nil, err
	}

	writeFn()

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeCurveCreated,
			sdk.NewAttribute(types.AttributeKeyCurveID, fmt.Sprintf("%d", curveID)),
			sdk.NewAttribute(types.AttributeKeyCurveAddress, curve.Address),
			sdk.NewAttribute(types.AttributeKeyDenom, denom),
			sdk.NewAttribute(types.AttributeKeyCreator, creator.String()),
			sdk.NewAttribute(types.AttributeKeySlope, slope.String()),
			sdk.NewAttribute(types.AttributeKeyTotalSupply, initialSupply.String()),
			sdk.NewAttribute(types.AttributeKeyValue, cost.String()),
		),
	)

	k.metrics.CurvesCreated.Inc()
	k.metrics.Supply.WithLabelValues(denom).Set(amountToFloat(initialSupply))
	k.metrics.Reserve.WithLabelValues(denom).Set(amountToFloat(cost))
	k.Logger(ctx).Info("curve created", "curve_id", curveID, "denom", denom, "slope", slope.String())

	return &curve, nil
}

// GetCurve retrieves a curve by ID.
// Returns ErrCurveNotFound if the curve does not exist.
func (k Keeper) GetCurve(ctx context.Context, curveID uint64) (*types.Curve, error) {
	bz := k.getStore(ctx).Get(CurveKey(curveID))
	if bz == nil {
		return nil, types.ErrCurveNotFound.Wrapf("curve %d not found", curveID)
	}

	var curve types.Curve
	if err := json.Unmarshal(bz, &curve); err != nil {
		return nil, fmt.Errorf("GetCurve: unmarshal curve %d: %w", curveID, err)
	}
	return &curve, nil
}

// GetCurveByDenom retrieves the curve issuing denom.
func (k Keeper) GetCurveByDenom(ctx context.Context, denom string) (*types.Curve, error) {
	bz := k.getStore(ctx).Get(CurveByDenomKey(denom))
	if bz == nil {
		return nil, types.ErrCurveNotFound.Wrapf("no curve issues %s", denom)
	}
	return k.GetCurve(ctx, binary.BigEndian.Uint64(bz))
}

// SetCurve saves a curve to the store
func (k Keeper) SetCurve(ctx context.Context, curve *types.Curve) error {
	if err := curve.Validate(); err != nil {
		return err
	}

	bz, err := json.Marshal(curve)
	if err != nil {
		return fmt.Errorf("SetCurve: marshal curve %d: %w", curve.Id, err)
	}
	k.getStore(ctx).Set(CurveKey(curve.Id), bz)
	return nil
}

// IterateCurves iterates over all curves
func (k Keeper) IterateCurves(ctx context.Context, cb func(curve types.Curve) (stop bool)) error {
	iterator := storetypes.KVStorePrefixIterator(k.getStore(ctx), CurveKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var curve types.Curve
		if err := json.Unmarshal(iterator.Value(), &curve); err != nil {
			return fmt.Errorf("IterateCurves: unmarshal curve: %w", err)
		}
		if cb(curve) {
			break
		}
	}
	return nil
}

// BalanceOf returns holder's balance of a curve token. Unknown holders hold zero.
func (k Keeper) BalanceOf(ctx context.Context, curveID uint64, holder sdk.AccAddress) (math.Int, error) {
	bz := k.getStore(ctx).Get(BalanceKey(curveID, holder))
	if bz == nil {
		return math.ZeroInt(), nil
	}

	var amount math.Int
	if err := amount.Unmarshal(bz); err != nil {
		return math.ZeroInt(), fmt.Errorf("BalanceOf: unmarshal: %w", err)
	}
	return amount, nil
}

func (k Keeper) setBalance(ctx context.Context, curveID uint64, holder sdk.AccAddress, amount math.Int) error {
	store := k.getStore(ctx)
	if amount.IsZero() {
		store.Delete(BalanceKey(curveID, holder))
		return nil
	}

	bz, err := amount.Marshal()
	if err != nil {
		return err
	}
	store.Set(BalanceKey(curveID, holder), bz)
	return nil
}

// IterateBalances walks every holder balance of one curve.
func (k Keeper) IterateBalances(ctx context.Context, curveID uint64, cb func(holder sdk.AccAddress, amount math.Int) (stop bool)) error {
	prefix := BalanceKeyByCurvePrefix(curveID)
	iterator := storetypes.KVStorePrefixIterator(k.getStore(ctx), prefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var amount math.Int
		if err := amount.Unmarshal(iterator.Value()); err != nil {
			return fmt.Errorf("IterateBalances: unmarshal: %w", err)
		}
		if cb(sdk.AccAddress(iterator.Key()[len(prefix):]), amount) {
			break
		}
	}
	return nil
}
