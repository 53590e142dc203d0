package types

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MsgCreatePair registers a new pool for a token pair, paying the creation fee.
type MsgCreatePair struct {
	Creator string   `json:"creator"`
	TokenA  string   `json:"token_a"`
	TokenB  string   `json:"token_b"`
	Fee     math.Int `json:"fee"`
}

// ValidateBasic performs stateless checks
func (msg MsgCreatePair) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return ErrInvalidAddress.Wrapf("invalid creator address: %s", err)
	}
	if err := sdk.ValidateDenom(msg.TokenA); err != nil {
		return ErrInvalidTokenPair.Wrapf("token A: %s", err)
	}
	if err := sdk.ValidateDenom(msg.TokenB); err != nil {
		return ErrInvalidTokenPair.Wrapf("token B: %s", err)
	}
	if msg.TokenA == msg.TokenB {
		return ErrInvalidTokenPair.Wrap("cannot create pool with identical tokens")
	}
	if msg.Fee.IsNil() || msg.Fee.IsNegative() {
		return ErrInvalidFee.Wrap("fee cannot be negative")
	}
	return nil
}

// MsgAddLiquidity deposits both pool assets in exchange for shares.
type MsgAddLiquidity struct {
	Provider string   `json:"provider"`
	PoolId   uint64   `json:"pool_id"`
	AmountA  math.Int `json:"amount_a"`
	AmountB  math.Int `json:"amount_b"`
}

// ValidateBasic performs stateless checks
func (msg MsgAddLiquidity) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return ErrInvalidAddress.Wrapf("invalid provider address: %s", err)
	}
	if msg.PoolId == 0 {
		return ErrPoolNotFound.Wrap("pool id cannot be zero")
	}
	if msg.AmountA.IsNil() || !msg.AmountA.IsPositive() {
		return ErrInvalidAmount.Wrap("amount A must be positive")
	}
	if msg.AmountB.IsNil() || !msg.AmountB.IsPositive() {
		return ErrInvalidAmount.Wrap("amount B must be positive")
	}
	return nil
}

// MsgRemoveLiquidity burns shares for the proportional reserves.
type MsgRemoveLiquidity struct {
	Provider string   `json:"provider"`
	PoolId   uint64   `json:"pool_id"`
	Shares   math.Int `json:"shares"`
}

// ValidateBasic performs stateless checks
func (msg MsgRemoveLiquidity) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return ErrInvalidAddress.Wrapf("invalid provider address: %s", err)
	}
	if msg.PoolId == 0 {
		return ErrPoolNotFound.Wrap("pool id cannot be zero")
	}
	if msg.Shares.IsNil() || !msg.Shares.IsPositive() {
		return ErrInvalidAmount.Wrap("shares must be positive")
	}
	return nil
}

// MsgSwap sells AmountIn of TokenIn into a pool. TokenOut is optional; when
// set it must be the pool's other asset.
type MsgSwap struct {
	Trader       string   `json:"trader"`
	PoolId       uint64   `json:"pool_id"`
	TokenIn      string   `json:"token_in"`
	TokenOut     string   `json:"token_out,omitempty"`
	AmountIn     math.Int `json:"amount_in"`
	MinAmountOut math.Int `json:"min_amount_out"`
}

// ValidateBasic performs stateless checks
func (msg MsgSwap) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Trader); err != nil {
		return ErrInvalidAddress.Wrapf("invalid trader address: %s", err)
	}
	if msg.PoolId == 0 {
		return ErrPoolNotFound.Wrap("pool id cannot be zero")
	}
	if msg.TokenIn == "" {
		return ErrInvalidTokenPair.Wrap("token in cannot be empty")
	}
	if msg.TokenIn == msg.TokenOut {
		return ErrInvalidTokenPair.Wrap("cannot swap same token")
	}
	if msg.AmountIn.IsNil() || !msg.AmountIn.IsPositive() {
		return ErrInvalidAmount.Wrap("amount in must be positive")
	}
	if !msg.MinAmountOut.IsNil() && msg.MinAmountOut.IsNegative() {
		return ErrInvalidAmount.Wrap("min amount out cannot be negative")
	}
	return nil
}

// MsgWithdrawFees pays the creation fee pool to the factory owner.
type MsgWithdrawFees struct {
	Owner string `json:"owner"`
}

// ValidateBasic performs stateless checks
func (msg MsgWithdrawFees) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Owner); err != nil {
		return ErrInvalidAddress.Wrapf("invalid owner address: %s", err)
	}
	return nil
}
