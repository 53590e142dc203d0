package types

import (
	"cosmossdk.io/errors"
)

// Ledger module sentinel errors
var (
	ErrInsufficientBalance   = errors.Register(ModuleName, 2, "insufficient balance")
	ErrInsufficientAllowance = errors.Register(ModuleName, 3, "insufficient allowance")
	ErrInvalidAmount         = errors.Register(ModuleName, 4, "invalid amount")
	ErrInvalidDenom          = errors.Register(ModuleName, 5, "invalid denomination")
	ErrInvalidAddress        = errors.Register(ModuleName, 6, "invalid address")
	ErrInvalidGenesis        = errors.Register(ModuleName, 7, "invalid genesis state")
	ErrInvalidParams         = errors.Register(ModuleName, 8, "invalid params")
)
