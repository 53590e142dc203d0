package types

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MsgServer defines the message server interface
type MsgServer interface {
	Send(context.Context, *MsgSend) (*MsgSendResponse, error)
	Approve(context.Context, *MsgApprove) (*MsgApproveResponse, error)
	TransferFrom(context.Context, *MsgTransferFrom) (*MsgTransferFromResponse, error)
}

func validateAmount(denom string, amount math.Int) error {
	if err := sdk.ValidateDenom(denom); err != nil {
		return ErrInvalidDenom.Wrap(err.Error())
	}
	if amount.IsNil() || amount.IsNegative() {
		return ErrInvalidAmount.Wrap("amount must be non-negative")
	}
	return nil
}

// MsgSend moves Amount of Denom from Sender to Recipient.
type MsgSend struct {
	Sender    string   `json:"sender"`
	Recipient string   `json:"recipient"`
	Denom     string   `json:"denom"`
	Amount    math.Int `json:"amount"`
}

// ValidateBasic performs stateless checks
func (msg MsgSend) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return ErrInvalidAddress.Wrapf("invalid sender address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Recipient); err != nil {
		return ErrInvalidAddress.Wrapf("invalid recipient address: %s", err)
	}
	return validateAmount(msg.Denom, msg.Amount)
}

// MsgApprove sets the allowance Spender may pull from Owner.
type MsgApprove struct {
	Owner   string   `json:"owner"`
	Spender string   `json:"spender"`
	Denom   string   `json:"denom"`
	Amount  math.Int `json:"amount"`
}

// ValidateBasic performs stateless checks
func (msg MsgApprove) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Owner); err != nil {
		return ErrInvalidAddress.Wrapf("invalid owner address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Spender); err != nil {
		return ErrInvalidAddress.Wrapf("invalid spender address: %s", err)
	}
	return validateAmount(msg.Denom, msg.Amount)
}

// MsgTransferFrom spends Spender's allowance over Owner's balance.
type MsgTransferFrom struct {
	Spender   string   `json:"spender"`
	Owner     string   `json:"owner"`
	Recipient string   `json:"recipient"`
	Denom     string   `json:"denom"`
	Amount    math.Int `json:"amount"`
}

// ValidateBasic performs stateless checks
func (msg MsgTransferFrom) ValidateBasic() error {
	for role, addr := range map[string]string{"spender": msg.Spender, "owner": msg.Owner, "recipient": msg.Recipient} {
		if _, err := sdk.AccAddressFromBech32(addr); err != nil {
			return ErrInvalidAddress.Wrapf("invalid %s address: %s", role, err)
		}
	}
	return validateAmount(msg.Denom, msg.Amount)
}

type MsgSendResponse struct{}

type MsgApproveResponse struct{}

type MsgTransferFromResponse struct{}
