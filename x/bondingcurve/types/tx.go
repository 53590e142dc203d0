package types

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MsgServer defines the message server interface
type MsgServer interface {
	CreateCurve(context.Context, *MsgCreateCurve) (*MsgCreateCurveResponse, error)
	Buy(context.Context, *MsgBuy) (*MsgBuyResponse, error)
	Sell(context.Context, *MsgSell) (*MsgSellResponse, error)
	Transfer(context.Context, *MsgTransfer) (*MsgTransferResponse, error)
}

// MsgCreateCurve issues a new curve token.
type MsgCreateCurve struct {
	Creator       string         `json:"creator"`
	Denom         string         `json:"denom"`
	Slope         math.LegacyDec `json:"slope"`
	InitialSupply math.Int       `json:"initial_supply"`
}

// ValidateBasic performs stateless checks
func (msg MsgCreateCurve) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return ErrInvalidAddress.Wrapf("invalid creator address: %s", err)
	}
	if err := sdk.ValidateDenom(msg.Denom); err != nil {
		return ErrInvalidDenom.Wrap(err.Error())
	}
	if msg.Slope.IsNil() || !msg.Slope.IsPositive() {
		return ErrInvalidSlope.Wrap("slope must be positive")
	}
	if msg.InitialSupply.IsNil() || msg.InitialSupply.IsNegative() {
		return ErrInvalidAmount.Wrap("initial supply must be non-negative")
	}
	return nil
}

// MsgBuy pays Value of the native denom into a curve.
type MsgBuy struct {
	Buyer   string   `json:"buyer"`
	CurveId uint64   `json:"curve_id"`
	Value   math.Int `json:"value"`
}

// ValidateBasic performs stateless checks
func (msg MsgBuy) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Buyer); err != nil {
		return ErrInvalidAddress.Wrapf("invalid buyer address: %s", err)
	}
	if msg.CurveId == 0 {
		return ErrCurveNotFound.Wrap("curve id cannot be zero")
	}
	if msg.Value.IsNil() || !msg.Value.IsPositive() {
		return ErrInvalidAmount.Wrap("value must be positive")
	}
	return nil
}

// MsgSell burns Amount curve tokens for native value.
type MsgSell struct {
	Seller  string   `json:"seller"`
	CurveId uint64   `json:"curve_id"`
	Amount  math.Int `json:"amount"`
}

// ValidateBasic performs stateless checks
func (msg MsgSell) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Seller); err != nil {
		return ErrInvalidAddress.Wrapf("invalid seller address: %s", err)
	}
	if msg.CurveId == 0 {
		return ErrCurveNotFound.Wrap("curve id cannot be zero")
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return ErrInvalidAmount.Wrap("amount must be positive")
	}
	return nil
}

// MsgTransfer moves curve tokens between holders.
type MsgTransfer struct {
	Sender    string   `json:"sender"`
	Recipient string   `json:"recipient"`
	CurveId   uint64   `json:"curve_id"`
	Amount    math.Int `json:"amount"`
}

// ValidateBasic performs stateless checks
func (msg MsgTransfer) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return ErrInvalidAddress.Wrapf("invalid sender address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Recipient); err != nil {
		return ErrInvalidAddress.Wrapf("invalid recipient address: %s", err)
	}
	if msg.CurveId == 0 {
		return ErrCurveNotFound.Wrap("curve id cannot be zero")
	}
	if msg.Amount.IsNil() || msg.Amount.IsNegative() {
		return ErrInvalidAmount.Wrap("amount must be non-negative")
	}
	return nil
}

type MsgCreateCurveResponse struct {
	CurveId      uint64 `json:"curve_id"`
	CurveAddress string `json:"curve_address"`
}

type MsgBuyResponse struct {
	Minted math.Int `json:"minted"`
}

type MsgSellResponse struct {
	Payout math.Int `json:"payout"`
}

type MsgTransferResponse struct{}
