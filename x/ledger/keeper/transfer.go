package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/amm/x/ledger/types"
)

// Transfer moves amount of denom from one account to another. It fails with
// ErrInsufficientBalance without touching state when the sender is short.
func (k Keeper) Transfer(ctx context.Context, from, to sdk.AccAddress, denom string, amount math.Int) error {
	if from.Empty() {
		return types.ErrInvalidAddress.Wrap("sender cannot be empty")
	}
	if err := validateTransfer(to, denom, amount); err != nil {
		return err
	}

	fromBalance := k.GetBalance(ctx, from, denom)
	if fromBalance.LT(amount) {
		return types.ErrInsufficientBalance.Wrapf("%s has %s%s, needs %s%s", from, fromBalance, denom, amount, denom)
	}
	if amount.IsZero() || from.Equals(to) {
		return nil
	}

	toBalance, err := k.GetBalance(ctx, to, denom).SafeAdd(amount)
	if err != nil {
		return types.ErrInvalidAmount.Wrapf("recipient balance overflow: %v", err)
	}

	if err := k.writeInt(ctx, types.BalanceKey(denom, from), fromBalance.Sub(amount)); err != nil {
		return fmt.Errorf("Transfer: debit %s: %w", from, err)
	}
	if err := k.writeInt(ctx, types.BalanceKey(denom, to), toBalance); err != nil {
		return fmt.Errorf("Transfer: credit %s: %w", to, err)
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeTransfer,
			sdk.NewAttribute(types.AttributeKeySender, from.String()),
			sdk.NewAttribute(types.AttributeKeyRecipient, to.String()),
			sdk.NewAttribute(types.AttributeKeyDenom, denom),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)
	return nil
}

// Approve sets the amount of denom spender may pull from owner. A later call
// replaces the previous allowance.
func (k Keeper) Approve(ctx context.Context, owner, spender sdk.AccAddress, denom string, amount math.Int) error {
	if owner.Empty() {
		return types.ErrInvalidAddress.Wrap("owner cannot be empty")
	}
	if err := validateTransfer(spender, denom, amount); err != nil {
		return err
	}

	if err := k.writeInt(ctx, types.AllowanceKey(owner, spender, denom), amount); err != nil {
		return fmt.Errorf("Approve: %w", err)
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeApprove,
			sdk.NewAttribute(types.AttributeKeyOwner, owner.String()),
			sdk.NewAttribute(types.AttributeKeySpender, spender.String()),
			sdk.NewAttribute(types.AttributeKeyDenom, denom),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)
	return nil
}

// TransferFrom pulls amount of denom from owner to recipient on behalf of
// spender, consuming spender's allowance. Allowance and balance are both
// checked before any write.
func (k Keeper) TransferFrom(ctx context.Context, spender, owner, to sdk.AccAddress, denom string, amount math.Int) error {
	if spender.Empty() {
		return types.ErrInvalidAddress.Wrap("spender cannot be empty")
	}
	if err := validateTransfer(to, denom, amount); err != nil {
		return err
	}

	allowance := k.GetAllowance(ctx, owner, spender, denom)
	if allowance.LT(amount) {
		return types.ErrInsufficientAllowance.Wrapf("%s may pull %s%s from %s, needs %s%s", spender, allowance, denom, owner, amount, denom)
	}

	if err := k.Transfer(ctx, owner, to, denom, amount); err != nil {
		return err
	}

	if err := k.writeInt(ctx, types.AllowanceKey(owner, spender, denom), allowance.Sub(amount)); err != nil {
		return fmt.Errorf("TransferFrom: consume allowance: %w", err)
	}
	return nil
}
