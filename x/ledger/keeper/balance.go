package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/amm/x/ledger/types"
)

// GetBalance returns the balance of addr in denom; unknown accounts hold zero.
func (k Keeper) GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) math.Int {
	return k.readInt(ctx, types.BalanceKey(denom, addr))
}

// GetSupply returns the total amount of denom ever minted into the ledger.
func (k Keeper) GetSupply(ctx context.Context, denom string) math.Int {
	return k.readInt(ctx, types.SupplyKey(denom))
}

// GetAllowance returns how much of owner's denom spender may still pull.
func (k Keeper) GetAllowance(ctx context.Context, owner, spender sdk.AccAddress, denom string) math.Int {
	return k.readInt(ctx, types.AllowanceKey(owner, spender, denom))
}

// Mint credits amount of denom to an account and grows the denom supply.
// It is used to fund accounts from genesis and from test harnesses.
func (k Keeper) Mint(ctx context.Context, to sdk.AccAddress, denom string, amount math.Int) error {
	if err := validateTransfer(to, denom, amount); err != nil {
		return err
	}

	balance, err := k.GetBalance(ctx, to, denom).SafeAdd(amount)
	if err != nil {
		return types.ErrInvalidAmount.Wrapf("balance overflow minting %s%s: %v", amount, denom, err)
	}
	supply, err := k.GetSupply(ctx, denom).SafeAdd(amount)
	if err != nil {
		return types.ErrInvalidAmount.Wrapf("supply overflow minting %s%s: %v", amount, denom, err)
	}

	if err := k.writeInt(ctx, types.BalanceKey(denom, to), balance); err != nil {
		return fmt.Errorf("Mint: %w", err)
	}
	if err := k.writeInt(ctx, types.SupplyKey(denom), supply); err != nil {
		return fmt.Errorf("Mint: %w", err)
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeMint,
			sdk.NewAttribute(types.AttributeKeyRecipient, to.String()),
			sdk.NewAttribute(types.AttributeKeyDenom, denom),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)
	return nil
}

// IterateBalances walks every non-zero balance in key order.
func (k Keeper) IterateBalances(ctx context.Context, cb func(addr sdk.AccAddress, denom string, amount math.Int) (stop bool)) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.BalanceKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var amount math.Int
		if err := amount.Unmarshal(iterator.Value()); err != nil {
			return fmt.Errorf("IterateBalances: unmarshal balance: %w", err)
		}
		denom, addr := types.ParseBalanceKey(iterator.Key())
		if cb(addr, denom, amount) {
			break
		}
	}
	return nil
}

func (k Keeper) readInt(ctx context.Context, key []byte) math.Int {
	bz := k.getStore(ctx).Get(key)
	if bz == nil {
		return math.ZeroInt()
	}

	var amount math.Int
	if err := amount.Unmarshal(bz); err != nil {
		// a stored amount that cannot be decoded means the store is corrupt
		panic(fmt.Errorf("ledger: decode amount at %X: %w", key, err))
	}
	return amount
}

func (k Keeper) writeInt(ctx context.Context, key []byte, amount math.Int) error {
	store := k.getStore(ctx)
	if amount.IsZero() {
		store.Delete(key)
		return nil
	}

	bz, err := amount.Marshal()
	if err != nil {
		return err
	}
	store.Set(key, bz)
	return nil
}

func validateTransfer(addr sdk.AccAddress, denom string, amount math.Int) error {
	if addr.Empty() {
		return types.ErrInvalidAddress.Wrap("address cannot be empty")
	}
	if err := sdk.ValidateDenom(denom); err != nil {
		return types.ErrInvalidDenom.Wrap(err.Error())
	}
	if amount.IsNil() || amount.IsNegative() {
		return types.ErrInvalidAmount.Wrap("amount must be non-negative")
	}
	return nil
}
